package model

import (
	"github.com/google/uuid"
)

// Nombres de tipo sembrados al arranque. El despacho los referencia por nombre.
const (
	TypeNuevaActividad    = "NUEVA_ACTIVIDAD"
	TypeActividadValorada = "ACTIVIDAD_VALORADA"
	TypeCitacionComite    = "CITACION_COMITE"
	TypeAltaInasistencia  = "ALTA_INASISTENCIA"
	TypeBajoRendimiento   = "BAJO_RENDIMIENTO"
	TypeRecordatorio      = "RECORDATORIO"
	TypeSistema           = "SISTEMA"
)

type NotificationTypeModel struct {
	NotificationTypesID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:notification_types_id" json:"notification_types_id"`
	NotificationTypesName        string    `gorm:"type:varchar(50);not null;uniqueIndex:uq_notification_types_name;column:notification_types_name" json:"notification_types_name"`
	NotificationTypesDescription string    `gorm:"type:text;not null;default:'';column:notification_types_description" json:"notification_types_description"`
	NotificationTypesIsActive    bool      `gorm:"not null;default:true;column:notification_types_is_active" json:"notification_types_is_active"`
}

func (NotificationTypeModel) TableName() string { return "notification_types" }
