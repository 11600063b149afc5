package dto

import (
	"time"

	"github.com/google/uuid"

	model "akademiku_backend/internals/features/activities/activity/model"
)

/* ===================== REQUESTS ===================== */

type CreateActivityRequest struct {
	ActivitiesTitle       string    `json:"activities_title" validate:"required,max=200"`
	ActivitiesDescription string    `json:"activities_description" validate:"max=5000"`
	ActivitiesTypeID      uuid.UUID `json:"activities_type_id" validate:"required"`

	ActivitiesLearningOutcomeID uuid.UUID `json:"activities_learning_outcome_id" validate:"required"`
	ActivitiesCohortID          uuid.UUID `json:"activities_cohort_id" validate:"required"`

	// Solo lo usa el administrador para crear a nombre de un instructor.
	ActivitiesInstructorID *uuid.UUID `json:"activities_instructor_id"`

	ActivitiesAssignedDate *time.Time `json:"activities_assigned_date"`
	ActivitiesDueDate      time.Time  `json:"activities_due_date" validate:"required"`
	ActivitiesHardDeadline *time.Time `json:"activities_hard_deadline"`

	ActivitiesMaxScore           float64  `json:"activities_max_score" validate:"required,gt=0,lte=999.99"`
	ActivitiesLatePenaltyPercent *float64 `json:"activities_late_penalty_percent" validate:"omitempty,gte=0,lte=100"`
	ActivitiesAllowsLate         *bool    `json:"activities_allows_late"`
}

func (r CreateActivityRequest) ToModel(instructorID uuid.UUID) *model.ActivityModel {
	m := &model.ActivityModel{
		ActivitiesTitle:             r.ActivitiesTitle,
		ActivitiesDescription:       r.ActivitiesDescription,
		ActivitiesTypeID:            r.ActivitiesTypeID,
		ActivitiesLearningOutcomeID: r.ActivitiesLearningOutcomeID,
		ActivitiesCohortID:          r.ActivitiesCohortID,
		ActivitiesInstructorID:      instructorID,
		ActivitiesAssignedDate:      time.Now(),
		ActivitiesDueDate:           r.ActivitiesDueDate,
		ActivitiesHardDeadline:      r.ActivitiesHardDeadline,
		ActivitiesMaxScore:          r.ActivitiesMaxScore,
		ActivitiesState:             model.ActivityStateBorrador,
		ActivitiesAllowsLate:        true,
	}
	if r.ActivitiesAssignedDate != nil {
		m.ActivitiesAssignedDate = *r.ActivitiesAssignedDate
	}
	if r.ActivitiesLatePenaltyPercent != nil {
		m.ActivitiesLatePenaltyPercent = *r.ActivitiesLatePenaltyPercent
	}
	if r.ActivitiesAllowsLate != nil {
		m.ActivitiesAllowsLate = *r.ActivitiesAllowsLate
	}
	return m
}

type UpdateActivityRequest struct {
	ActivitiesTitle       *string    `json:"activities_title" validate:"omitempty,max=200"`
	ActivitiesDescription *string    `json:"activities_description" validate:"omitempty,max=5000"`
	ActivitiesTypeID      *uuid.UUID `json:"activities_type_id"`

	ActivitiesDueDate      *time.Time `json:"activities_due_date"`
	ActivitiesHardDeadline *time.Time `json:"activities_hard_deadline"`

	ActivitiesMaxScore           *float64 `json:"activities_max_score" validate:"omitempty,gt=0,lte=999.99"`
	ActivitiesLatePenaltyPercent *float64 `json:"activities_late_penalty_percent" validate:"omitempty,gte=0,lte=100"`
	ActivitiesAllowsLate         *bool    `json:"activities_allows_late"`
}

func (r UpdateActivityRequest) ApplyToModel(m *model.ActivityModel) {
	if r.ActivitiesTitle != nil {
		m.ActivitiesTitle = *r.ActivitiesTitle
	}
	if r.ActivitiesDescription != nil {
		m.ActivitiesDescription = *r.ActivitiesDescription
	}
	if r.ActivitiesTypeID != nil {
		m.ActivitiesTypeID = *r.ActivitiesTypeID
	}
	if r.ActivitiesDueDate != nil {
		m.ActivitiesDueDate = *r.ActivitiesDueDate
	}
	if r.ActivitiesHardDeadline != nil {
		m.ActivitiesHardDeadline = r.ActivitiesHardDeadline
	}
	if r.ActivitiesMaxScore != nil {
		m.ActivitiesMaxScore = *r.ActivitiesMaxScore
	}
	if r.ActivitiesLatePenaltyPercent != nil {
		m.ActivitiesLatePenaltyPercent = *r.ActivitiesLatePenaltyPercent
	}
	if r.ActivitiesAllowsLate != nil {
		m.ActivitiesAllowsLate = *r.ActivitiesAllowsLate
	}
}

type ChangeActivityStateRequest struct {
	ActivitiesState string `json:"activities_state" validate:"required,oneof=BORRADOR PUBLICADA EN_PROGRESO FINALIZADA CANCELADA"`
}

type ListActivitiesQuery struct {
	CohortID  *uuid.UUID `query:"cohort_id"`
	OutcomeID *uuid.UUID `query:"outcome_id"`
	TypeID    *uuid.UUID `query:"type_id"`
	State     *string    `query:"state"`
	Search    string     `query:"search"`
}

/* ===================== RESPONSES ===================== */

type ActivityResponse struct {
	ActivitiesID          uuid.UUID `json:"activities_id"`
	ActivitiesTitle       string    `json:"activities_title"`
	ActivitiesDescription string    `json:"activities_description"`
	ActivitiesTypeID      uuid.UUID `json:"activities_type_id"`
	TypeName              string    `json:"type_name,omitempty"`

	ActivitiesLearningOutcomeID uuid.UUID `json:"activities_learning_outcome_id"`
	ActivitiesCohortID          uuid.UUID `json:"activities_cohort_id"`
	ActivitiesInstructorID      uuid.UUID `json:"activities_instructor_id"`

	ActivitiesAssignedDate time.Time  `json:"activities_assigned_date"`
	ActivitiesDueDate      time.Time  `json:"activities_due_date"`
	ActivitiesHardDeadline *time.Time `json:"activities_hard_deadline,omitempty"`

	ActivitiesMaxScore           float64 `json:"activities_max_score"`
	ActivitiesLatePenaltyPercent float64 `json:"activities_late_penalty_percent"`

	ActivitiesState      string `json:"activities_state"`
	ActivitiesAllowsLate bool   `json:"activities_allows_late"`

	// Derivados sobre el reloj del servidor
	IsOverdue          bool `json:"is_overdue"`
	AcceptsSubmissions bool `json:"accepts_submissions"`

	ActivitiesCreatedAt time.Time `json:"activities_created_at"`
	ActivitiesUpdatedAt time.Time `json:"activities_updated_at"`
}

func NewActivityResponse(m *model.ActivityModel, typeName string) *ActivityResponse {
	if m == nil {
		return nil
	}
	now := time.Now()
	return &ActivityResponse{
		ActivitiesID:                 m.ActivitiesID,
		ActivitiesTitle:              m.ActivitiesTitle,
		ActivitiesDescription:        m.ActivitiesDescription,
		ActivitiesTypeID:             m.ActivitiesTypeID,
		TypeName:                     typeName,
		ActivitiesLearningOutcomeID:  m.ActivitiesLearningOutcomeID,
		ActivitiesCohortID:           m.ActivitiesCohortID,
		ActivitiesInstructorID:       m.ActivitiesInstructorID,
		ActivitiesAssignedDate:       m.ActivitiesAssignedDate,
		ActivitiesDueDate:            m.ActivitiesDueDate,
		ActivitiesHardDeadline:       m.ActivitiesHardDeadline,
		ActivitiesMaxScore:           m.ActivitiesMaxScore,
		ActivitiesLatePenaltyPercent: m.ActivitiesLatePenaltyPercent,
		ActivitiesState:              string(m.ActivitiesState),
		ActivitiesAllowsLate:         m.ActivitiesAllowsLate,
		IsOverdue:                    m.IsOverdue(now),
		AcceptsSubmissions:           m.AcceptsSubmissions(now),
		ActivitiesCreatedAt:          m.ActivitiesCreatedAt,
		ActivitiesUpdatedAt:          m.ActivitiesUpdatedAt,
	}
}

// Resumen de avance por resultado de aprendizaje para un aprendiz.
type OutcomeProgressResponse struct {
	LearningOutcomeID    uuid.UUID `json:"learning_outcome_id"`
	LearningOutcomeName  string    `json:"learning_outcome_name"`
	ActivitiesTotal      int64     `json:"activities_total"`
	GradedCount          int64     `json:"graded_count"`
	AveragePercentage    float64   `json:"average_percentage"`
	AttendancePercentage float64   `json:"attendance_percentage"`
}
