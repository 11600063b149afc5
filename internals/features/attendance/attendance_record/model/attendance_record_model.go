package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AttendanceStatus string

const (
	AttendanceStatusSinRegistrar AttendanceStatus = "SIN_REGISTRAR"
	AttendanceStatusPresente     AttendanceStatus = "PRESENTE"
	AttendanceStatusAusente      AttendanceStatus = "AUSENTE"
	AttendanceStatusJustificado  AttendanceStatus = "JUSTIFICADO"
	AttendanceStatusTarde        AttendanceStatus = "TARDE"
)

func (s AttendanceStatus) IsValid() bool {
	switch s {
	case AttendanceStatusSinRegistrar, AttendanceStatusPresente, AttendanceStatusAusente,
		AttendanceStatusJustificado, AttendanceStatusTarde:
		return true
	}
	return false
}

type AttendanceRecordModel struct {
	// PK
	AttendanceRecordsID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_records_id" json:"attendance_records_id"`

	// Un registro por aprendiz y llamado
	AttendanceRecordsRollCallID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_records_roll_call_apprentice;index;column:attendance_records_roll_call_id" json:"attendance_records_roll_call_id"`
	AttendanceRecordsApprenticeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_records_roll_call_apprentice;index;column:attendance_records_apprentice_id" json:"attendance_records_apprentice_id"`

	AttendanceRecordsStatus     AttendanceStatus `gorm:"type:varchar(15);not null;default:'SIN_REGISTRAR';index;column:attendance_records_status" json:"attendance_records_status"`
	AttendanceRecordsRecordedAt time.Time        `gorm:"type:timestamptz;not null;autoCreateTime;column:attendance_records_recorded_at" json:"attendance_records_recorded_at"`

	AttendanceRecordsLateMinutes  int     `gorm:"not null;default:0;column:attendance_records_late_minutes" json:"attendance_records_late_minutes"`
	AttendanceRecordsObservations *string `gorm:"type:varchar(500);column:attendance_records_observations" json:"attendance_records_observations,omitempty"`

	AttendanceRecordsEarlyDeparture bool            `gorm:"not null;default:false;column:attendance_records_early_departure" json:"attendance_records_early_departure"`
	AttendanceRecordsDepartureTime  *datatypes.Time `gorm:"type:time;column:attendance_records_departure_time" json:"attendance_records_departure_time,omitempty"`

	// Audit
	AttendanceRecordsCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:attendance_records_created_at" json:"attendance_records_created_at"`
	AttendanceRecordsUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:attendance_records_updated_at" json:"attendance_records_updated_at"`
	AttendanceRecordsDeletedAt gorm.DeletedAt `gorm:"column:attendance_records_deleted_at;index" json:"attendance_records_deleted_at,omitempty"`
}

func (AttendanceRecordModel) TableName() string { return "attendance_records" }

var (
	ErrLateMinutesRequireLate = errors.New("los minutos de retraso solo aplican cuando el estado es TARDE")
	ErrLateWithoutMinutes     = errors.New("el estado TARDE requiere minutos de retraso mayores que cero")
	ErrDepartureTimeMismatch  = errors.New("la hora de salida y la marca de salida anticipada van juntas")
)

// ValidateConsistency aplica las reglas cruzadas del registro:
// minutos de retraso > 0 sii TARDE; hora de salida sii salida anticipada.
func (m *AttendanceRecordModel) ValidateConsistency() error {
	if m.AttendanceRecordsStatus == AttendanceStatusTarde {
		if m.AttendanceRecordsLateMinutes <= 0 {
			return ErrLateWithoutMinutes
		}
	} else if m.AttendanceRecordsLateMinutes > 0 {
		return ErrLateMinutesRequireLate
	}

	hasTime := m.AttendanceRecordsDepartureTime != nil
	if m.AttendanceRecordsEarlyDeparture != hasTime {
		return ErrDepartureTimeMismatch
	}
	return nil
}

func (m *AttendanceRecordModel) BeforeSave(tx *gorm.DB) error {
	return m.ValidateConsistency()
}
