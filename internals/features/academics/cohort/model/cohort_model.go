package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Modality string

const (
	ModalityPresencial Modality = "PRESENCIAL"
	ModalityVirtual    Modality = "VIRTUAL"
	ModalityMixta      Modality = "MIXTA"
)

func (m Modality) IsValid() bool {
	switch m {
	case ModalityPresencial, ModalityVirtual, ModalityMixta:
		return true
	}
	return false
}

type Shift string

const (
	ShiftDiurna      Shift = "DIURNA"
	ShiftNocturna    Shift = "NOCTURNA"
	ShiftMixta       Shift = "MIXTA"
	ShiftFinesSemana Shift = "FINES_SEMANA"
)

func (s Shift) IsValid() bool {
	switch s {
	case ShiftDiurna, ShiftNocturna, ShiftMixta, ShiftFinesSemana:
		return true
	}
	return false
}

// Etapa de la ficha. TERMINADA desactiva la ficha al guardar.
type CohortStage string

const (
	CohortStageLectura   CohortStage = "LECTURA"
	CohortStageEjecucion CohortStage = "EJECUCION"
	CohortStageTerminada CohortStage = "TERMINADA"
	CohortStageCancelada CohortStage = "CANCELADA"
)

func (s CohortStage) IsValid() bool {
	switch s {
	case CohortStageLectura, CohortStageEjecucion, CohortStageTerminada, CohortStageCancelada:
		return true
	}
	return false
}

type CohortModel struct {
	// PK
	CohortsID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:cohorts_id" json:"cohorts_id"`

	// Identidad
	CohortsNumber    string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_cohorts_number;column:cohorts_number" json:"cohorts_number"`
	CohortsProgramID uuid.UUID `gorm:"type:uuid;not null;index;column:cohorts_program_id" json:"cohorts_program_id"`

	// Calendario lectivo
	CohortsStartDate      time.Time `gorm:"type:date;not null;index;column:cohorts_start_date" json:"cohorts_start_date"`
	CohortsLectiveEndDate time.Time `gorm:"type:date;not null;column:cohorts_lective_end_date" json:"cohorts_lective_end_date"`

	// Ubicación
	CohortsMunicipality   string `gorm:"type:varchar(100);not null;column:cohorts_municipality" json:"cohorts_municipality"`
	CohortsTrainingCenter string `gorm:"type:varchar(100);not null;column:cohorts_training_center" json:"cohorts_training_center"`
	CohortsVenue          string `gorm:"type:varchar(100);not null;column:cohorts_venue" json:"cohorts_venue"`

	// Cupos
	CohortsApprenticeCapacity int `gorm:"not null;column:cohorts_apprentice_capacity" json:"cohorts_apprentice_capacity"`
	CohortsInstructorCapacity int `gorm:"not null;column:cohorts_instructor_capacity" json:"cohorts_instructor_capacity"`

	CohortsModality Modality    `gorm:"type:varchar(20);not null;column:cohorts_modality" json:"cohorts_modality"`
	CohortsShift    Shift       `gorm:"type:varchar(20);not null;column:cohorts_shift" json:"cohorts_shift"`
	CohortsStage    CohortStage `gorm:"type:varchar(20);not null;default:'LECTURA';index;column:cohorts_stage" json:"cohorts_stage"`

	CohortsIsActive bool `gorm:"not null;default:true;index;column:cohorts_is_active" json:"cohorts_is_active"`

	// Audit
	CohortsCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:cohorts_created_at" json:"cohorts_created_at"`
	CohortsUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:cohorts_updated_at" json:"cohorts_updated_at"`
	CohortsDeletedAt gorm.DeletedAt `gorm:"column:cohorts_deleted_at;index" json:"cohorts_deleted_at,omitempty"`
}

func (CohortModel) TableName() string { return "cohorts" }

var ErrLectiveEndBeforeStart = errors.New("la fecha de fin lectiva debe ser posterior a la fecha de inicio")

func (m *CohortModel) BeforeSave(tx *gorm.DB) error {
	if !m.CohortsLectiveEndDate.After(m.CohortsStartDate) {
		return ErrLectiveEndBeforeStart
	}

	// Una ficha terminada nunca queda activa.
	if m.CohortsStage == CohortStageTerminada {
		m.CohortsIsActive = false
	}

	m.CohortsNumber = strings.TrimSpace(m.CohortsNumber)
	m.CohortsMunicipality = strings.TrimSpace(m.CohortsMunicipality)
	m.CohortsTrainingCenter = strings.TrimSpace(m.CohortsTrainingCenter)
	m.CohortsVenue = strings.TrimSpace(m.CohortsVenue)
	return nil
}

// Duración en días del calendario lectivo. Derivada, nunca se guarda.
func (m *CohortModel) DurationDays() int {
	return int(m.CohortsLectiveEndDate.Sub(m.CohortsStartDate).Hours() / 24)
}
