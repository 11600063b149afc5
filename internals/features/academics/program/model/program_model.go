package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tipo de formación ofertada por la institución.
type TrainingType string

const (
	TrainingTypeTecnico         TrainingType = "TECNICO"
	TrainingTypeTecnologo       TrainingType = "TECNOLOGO"
	TrainingTypeEspecializacion TrainingType = "ESPECIALIZACION"
	TrainingTypeCursoCorto      TrainingType = "CURSO_CORTO"
	TrainingTypeComplementaria  TrainingType = "COMPLEMENTARIA"
)

func (t TrainingType) IsValid() bool {
	switch t {
	case TrainingTypeTecnico, TrainingTypeTecnologo, TrainingTypeEspecializacion,
		TrainingTypeCursoCorto, TrainingTypeComplementaria:
		return true
	}
	return false
}

type ProgramModel struct {
	// PK
	ProgramsID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:programs_id" json:"programs_id"`

	// Identidad
	ProgramsCode         string       `gorm:"type:varchar(20);not null;uniqueIndex:uq_programs_code;column:programs_code" json:"programs_code"`
	ProgramsName         string       `gorm:"type:varchar(100);not null;column:programs_name" json:"programs_name"`
	ProgramsTrainingType TrainingType `gorm:"type:varchar(20);not null;index;column:programs_training_type" json:"programs_training_type"`

	ProgramsDurationHours int  `gorm:"not null;column:programs_duration_hours" json:"programs_duration_hours"`
	ProgramsIsActive      bool `gorm:"not null;default:true;index;column:programs_is_active" json:"programs_is_active"`

	// Audit
	ProgramsCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:programs_created_at" json:"programs_created_at"`
	ProgramsUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:programs_updated_at" json:"programs_updated_at"`
	ProgramsDeletedAt gorm.DeletedAt `gorm:"column:programs_deleted_at;index" json:"programs_deleted_at,omitempty"`
}

func (ProgramModel) TableName() string { return "programs" }

func (m *ProgramModel) BeforeSave(tx *gorm.DB) error {
	m.ProgramsCode = strings.ToUpper(strings.TrimSpace(m.ProgramsCode))
	m.ProgramsName = strings.TrimSpace(m.ProgramsName)
	return nil
}
