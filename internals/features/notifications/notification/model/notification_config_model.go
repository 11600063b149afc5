package model

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type NotificationConfigModel struct {
	// PK
	NotificationConfigsID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:notification_configs_id" json:"notification_configs_id"`

	// Una configuración por usuario
	NotificationConfigsUserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_notification_configs_user;column:notification_configs_user_id" json:"notification_configs_user_id"`

	// Canales
	NotificationConfigsPushEnabled  bool `gorm:"not null;default:true;column:notification_configs_push_enabled" json:"notification_configs_push_enabled"`
	NotificationConfigsEmailEnabled bool `gorm:"not null;default:true;column:notification_configs_email_enabled" json:"notification_configs_email_enabled"`

	// Por tipo
	NotificationConfigsNewActivity    bool `gorm:"not null;default:true;column:notification_configs_new_activity" json:"notification_configs_new_activity"`
	NotificationConfigsActivityGraded bool `gorm:"not null;default:true;column:notification_configs_activity_graded" json:"notification_configs_activity_graded"`
	NotificationConfigsCitation       bool `gorm:"not null;default:true;column:notification_configs_citation" json:"notification_configs_citation"`
	NotificationConfigsHighAbsence    bool `gorm:"not null;default:true;column:notification_configs_high_absence" json:"notification_configs_high_absence"`
	NotificationConfigsLowPerformance bool `gorm:"not null;default:true;column:notification_configs_low_performance" json:"notification_configs_low_performance"`
	NotificationConfigsReminders      bool `gorm:"not null;default:true;column:notification_configs_reminders" json:"notification_configs_reminders"`

	// Ventana horaria (HH:MM, comparación lexicográfica válida con ancho fijo)
	NotificationConfigsActiveStart string `gorm:"type:varchar(5);not null;default:'07:00';column:notification_configs_active_start" json:"notification_configs_active_start"`
	NotificationConfigsActiveEnd   string `gorm:"type:varchar(5);not null;default:'22:00';column:notification_configs_active_end" json:"notification_configs_active_end"`

	// Días activos ISO (1=lunes ... 7=domingo)
	NotificationConfigsActiveDays datatypes.JSON `gorm:"type:jsonb;column:notification_configs_active_days" json:"notification_configs_active_days"`

	// Audit
	NotificationConfigsCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:notification_configs_created_at" json:"notification_configs_created_at"`
	NotificationConfigsUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:notification_configs_updated_at" json:"notification_configs_updated_at"`
}

func (NotificationConfigModel) TableName() string { return "notification_configs" }

// DefaultConfig: ambos canales y todos los tipos activos, 07:00–22:00, todos los días.
func DefaultConfig(userID uuid.UUID) *NotificationConfigModel {
	days, _ := sonic.Marshal([]int{1, 2, 3, 4, 5, 6, 7})
	return &NotificationConfigModel{
		NotificationConfigsUserID:         userID,
		NotificationConfigsPushEnabled:    true,
		NotificationConfigsEmailEnabled:   true,
		NotificationConfigsNewActivity:    true,
		NotificationConfigsActivityGraded: true,
		NotificationConfigsCitation:       true,
		NotificationConfigsHighAbsence:    true,
		NotificationConfigsLowPerformance: true,
		NotificationConfigsReminders:      true,
		NotificationConfigsActiveStart:    "07:00",
		NotificationConfigsActiveEnd:      "22:00",
		NotificationConfigsActiveDays:     datatypes.JSON(days),
	}
}

// AllowsType indica si el usuario acepta este tipo de notificación.
// Los tipos sin interruptor propio (SISTEMA) siempre pasan.
func (m *NotificationConfigModel) AllowsType(typeName string) bool {
	switch typeName {
	case TypeNuevaActividad:
		return m.NotificationConfigsNewActivity
	case TypeActividadValorada:
		return m.NotificationConfigsActivityGraded
	case TypeCitacionComite:
		return m.NotificationConfigsCitation
	case TypeAltaInasistencia:
		return m.NotificationConfigsHighAbsence
	case TypeBajoRendimiento:
		return m.NotificationConfigsLowPerformance
	case TypeRecordatorio:
		return m.NotificationConfigsReminders
	}
	return true
}

// InActiveWindow indica si el instante cae dentro del horario y los días
// activos del usuario. Una lista de días vacía equivale a todos los días.
func (m *NotificationConfigModel) InActiveWindow(now time.Time) bool {
	hhmm := now.Format("15:04")
	if hhmm < m.NotificationConfigsActiveStart || hhmm > m.NotificationConfigsActiveEnd {
		return false
	}

	if len(m.NotificationConfigsActiveDays) == 0 {
		return true
	}
	var days []int
	if err := sonic.Unmarshal(m.NotificationConfigsActiveDays, &days); err != nil || len(days) == 0 {
		return true
	}

	isoDay := int(now.Weekday())
	if isoDay == 0 {
		isoDay = 7 // domingo
	}
	for _, d := range days {
		if d == isoDay {
			return true
		}
	}
	return false
}
