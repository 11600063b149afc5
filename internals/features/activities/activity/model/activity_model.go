package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActivityState string

const (
	ActivityStateBorrador   ActivityState = "BORRADOR"
	ActivityStatePublicada  ActivityState = "PUBLICADA"
	ActivityStateEnProgreso ActivityState = "EN_PROGRESO"
	ActivityStateFinalizada ActivityState = "FINALIZADA"
	ActivityStateCancelada  ActivityState = "CANCELADA"
)

func (s ActivityState) IsValid() bool {
	switch s {
	case ActivityStateBorrador, ActivityStatePublicada, ActivityStateEnProgreso,
		ActivityStateFinalizada, ActivityStateCancelada:
		return true
	}
	return false
}

// IsTerminal: de FINALIZADA o CANCELADA no se sale.
func (s ActivityState) IsTerminal() bool {
	return s == ActivityStateFinalizada || s == ActivityStateCancelada
}

type ActivityModel struct {
	// PK
	ActivitiesID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:activities_id" json:"activities_id"`

	// Contenido
	ActivitiesTitle       string    `gorm:"type:varchar(200);not null;column:activities_title" json:"activities_title"`
	ActivitiesDescription string    `gorm:"type:text;not null;default:'';column:activities_description" json:"activities_description"`
	ActivitiesTypeID      uuid.UUID `gorm:"type:uuid;not null;index;column:activities_type_id" json:"activities_type_id"`

	// Contexto académico
	ActivitiesLearningOutcomeID uuid.UUID `gorm:"type:uuid;not null;index;column:activities_learning_outcome_id" json:"activities_learning_outcome_id"`
	ActivitiesCohortID          uuid.UUID `gorm:"type:uuid;not null;index;column:activities_cohort_id" json:"activities_cohort_id"`
	ActivitiesInstructorID      uuid.UUID `gorm:"type:uuid;not null;index;column:activities_instructor_id" json:"activities_instructor_id"`

	// Calendario
	ActivitiesAssignedDate time.Time  `gorm:"type:date;not null;column:activities_assigned_date" json:"activities_assigned_date"`
	ActivitiesDueDate      time.Time  `gorm:"type:timestamptz;not null;index;column:activities_due_date" json:"activities_due_date"`
	ActivitiesHardDeadline *time.Time `gorm:"type:timestamptz;column:activities_hard_deadline" json:"activities_hard_deadline,omitempty"`

	// Calificación
	ActivitiesMaxScore           float64 `gorm:"type:numeric(5,2);not null;column:activities_max_score" json:"activities_max_score"`
	ActivitiesLatePenaltyPercent float64 `gorm:"type:numeric(5,2);not null;default:0;column:activities_late_penalty_percent" json:"activities_late_penalty_percent"`

	ActivitiesState      ActivityState `gorm:"type:varchar(20);not null;default:'BORRADOR';index;column:activities_state" json:"activities_state"`
	ActivitiesAllowsLate bool          `gorm:"not null;default:true;column:activities_allows_late" json:"activities_allows_late"`

	// Audit
	ActivitiesCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:activities_created_at" json:"activities_created_at"`
	ActivitiesUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:activities_updated_at" json:"activities_updated_at"`
	ActivitiesDeletedAt gorm.DeletedAt `gorm:"column:activities_deleted_at;index" json:"activities_deleted_at,omitempty"`
}

func (ActivityModel) TableName() string { return "activities" }

var ErrHardDeadlineBeforeDue = errors.New("la fecha límite definitiva no puede ser anterior a la fecha de entrega")

func (m *ActivityModel) BeforeSave(tx *gorm.DB) error {
	if m.ActivitiesHardDeadline != nil && m.ActivitiesHardDeadline.Before(m.ActivitiesDueDate) {
		return ErrHardDeadlineBeforeDue
	}
	m.ActivitiesTitle = strings.TrimSpace(m.ActivitiesTitle)
	return nil
}

// IsOverdue: la fecha de entrega ya pasó. Derivado, nunca se guarda.
func (m *ActivityModel) IsOverdue(now time.Time) bool {
	return now.After(m.ActivitiesDueDate)
}

// AcceptsSubmissions: publicada o en progreso y, si hay fecha límite
// definitiva, aún no vencida. La fecha de entrega ordinaria solo marca
// el retraso; no cierra la recepción cuando la actividad admite entregas
// tardías.
func (m *ActivityModel) AcceptsSubmissions(now time.Time) bool {
	if m.ActivitiesState != ActivityStatePublicada && m.ActivitiesState != ActivityStateEnProgreso {
		return false
	}
	if m.ActivitiesHardDeadline != nil && now.After(*m.ActivitiesHardDeadline) {
		return false
	}
	if m.IsOverdue(now) && !m.ActivitiesAllowsLate {
		return false
	}
	return true
}
