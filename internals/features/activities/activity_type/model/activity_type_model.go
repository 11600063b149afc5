package model

import (
	"github.com/google/uuid"
)

// Nombres sembrados al arranque.
const (
	ActivityTypeTaller        = "TALLER"
	ActivityTypeEvidencia     = "EVIDENCIA"
	ActivityTypeProyecto      = "PROYECTO"
	ActivityTypeQuiz          = "QUIZ"
	ActivityTypeExamen        = "EXAMEN"
	ActivityTypeExposicion    = "EXPOSICION"
	ActivityTypePractica      = "PRACTICA"
	ActivityTypeInvestigacion = "INVESTIGACION"
	ActivityTypeForo          = "FORO"
	ActivityTypeOtro          = "OTRO"
)

func ActivityTypeNames() []string {
	return []string{
		ActivityTypeTaller, ActivityTypeEvidencia, ActivityTypeProyecto,
		ActivityTypeQuiz, ActivityTypeExamen, ActivityTypeExposicion,
		ActivityTypePractica, ActivityTypeInvestigacion, ActivityTypeForo,
		ActivityTypeOtro,
	}
}

type ActivityTypeModel struct {
	ActivityTypesID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:activity_types_id" json:"activity_types_id"`
	ActivityTypesName        string    `gorm:"type:varchar(30);not null;uniqueIndex:uq_activity_types_name;column:activity_types_name" json:"activity_types_name"`
	ActivityTypesDescription string    `gorm:"type:text;not null;default:'';column:activity_types_description" json:"activity_types_description"`
	ActivityTypesIsActive    bool      `gorm:"not null;default:true;column:activity_types_is_active" json:"activity_types_is_active"`
}

func (ActivityTypeModel) TableName() string { return "activity_types" }
