package dto

import (
	"time"

	"github.com/google/uuid"

	model "akademiku_backend/internals/features/attendance/roll_call/model"
)

/* ===================== REQUESTS ===================== */

type CreateRollCallRequest struct {
	// Opcional: un administrador puede abrir el llamado a nombre de un
	// instructor asignado. Los instructores lo abren a su propio nombre.
	RollCallsInstructorID *uuid.UUID `json:"roll_calls_instructor_id"`

	RollCallsLearningOutcomeID uuid.UUID `json:"roll_calls_learning_outcome_id" validate:"required"`
	RollCallsCohortID          uuid.UUID `json:"roll_calls_cohort_id" validate:"required"`

	RollCallsClassDate       *time.Time `json:"roll_calls_class_date"`
	RollCallsObservations    *string    `json:"roll_calls_observations" validate:"omitempty,max=1000"`
	RollCallsDurationMinutes *int       `json:"roll_calls_duration_minutes" validate:"omitempty,min=30,max=480"`
}

func (r CreateRollCallRequest) ToModel(instructorID uuid.UUID) *model.RollCallModel {
	m := &model.RollCallModel{
		RollCallsInstructorID:      instructorID,
		RollCallsLearningOutcomeID: r.RollCallsLearningOutcomeID,
		RollCallsCohortID:          r.RollCallsCohortID,
		RollCallsClassDate:         time.Now().Truncate(24 * time.Hour),
		RollCallsObservations:      r.RollCallsObservations,
		RollCallsDurationMinutes:   120,
	}
	if r.RollCallsClassDate != nil {
		m.RollCallsClassDate = *r.RollCallsClassDate
	}
	if r.RollCallsDurationMinutes != nil {
		m.RollCallsDurationMinutes = *r.RollCallsDurationMinutes
	}
	return m
}

// Solo observaciones y duración son editables después de abierto.
type UpdateRollCallRequest struct {
	RollCallsObservations    *string `json:"roll_calls_observations" validate:"omitempty,max=1000"`
	RollCallsDurationMinutes *int    `json:"roll_calls_duration_minutes" validate:"omitempty,min=30,max=480"`
}

func (r UpdateRollCallRequest) ApplyToModel(m *model.RollCallModel) {
	if r.RollCallsObservations != nil {
		m.RollCallsObservations = r.RollCallsObservations
	}
	if r.RollCallsDurationMinutes != nil {
		m.RollCallsDurationMinutes = *r.RollCallsDurationMinutes
	}
}

type ListRollCallsQuery struct {
	CohortID  *uuid.UUID `query:"cohort_id"`
	OutcomeID *uuid.UUID `query:"outcome_id"`
	DateFrom  *time.Time `query:"date_from"`
	DateTo    *time.Time `query:"date_to"`
}

/* ===================== RESPONSES ===================== */

type RollCallResponse struct {
	RollCallsID                uuid.UUID `json:"roll_calls_id"`
	RollCallsInstructorID      uuid.UUID `json:"roll_calls_instructor_id"`
	RollCallsLearningOutcomeID uuid.UUID `json:"roll_calls_learning_outcome_id"`
	RollCallsCohortID          uuid.UUID `json:"roll_calls_cohort_id"`
	RollCallsClassDate         time.Time `json:"roll_calls_class_date"`
	RollCallsCalledAt          time.Time `json:"roll_calls_called_at"`
	RollCallsObservations      *string   `json:"roll_calls_observations,omitempty"`
	RollCallsDurationMinutes   int       `json:"roll_calls_duration_minutes"`
	RollCallsCreatedAt         time.Time `json:"roll_calls_created_at"`
	RollCallsUpdatedAt         time.Time `json:"roll_calls_updated_at"`
}

func NewRollCallResponse(m *model.RollCallModel) *RollCallResponse {
	if m == nil {
		return nil
	}
	return &RollCallResponse{
		RollCallsID:                m.RollCallsID,
		RollCallsInstructorID:      m.RollCallsInstructorID,
		RollCallsLearningOutcomeID: m.RollCallsLearningOutcomeID,
		RollCallsCohortID:          m.RollCallsCohortID,
		RollCallsClassDate:         m.RollCallsClassDate,
		RollCallsCalledAt:          m.RollCallsCalledAt,
		RollCallsObservations:      m.RollCallsObservations,
		RollCallsDurationMinutes:   m.RollCallsDurationMinutes,
		RollCallsCreatedAt:         m.RollCallsCreatedAt,
		RollCallsUpdatedAt:         m.RollCallsUpdatedAt,
	}
}

func NewRollCallResponses(ms []model.RollCallModel) []RollCallResponse {
	out := make([]RollCallResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *NewRollCallResponse(&ms[i]))
	}
	return out
}
