package dto

import (
	"time"

	"github.com/google/uuid"

	model "akademiku_backend/internals/features/academics/instructor_assignment/model"
)

/* ===================== REQUESTS ===================== */

type CreateInstructorAssignmentRequest struct {
	InstructorAssignmentsInstructorID      uuid.UUID  `json:"instructor_assignments_instructor_id" validate:"required"`
	InstructorAssignmentsLearningOutcomeID uuid.UUID  `json:"instructor_assignments_learning_outcome_id" validate:"required"`
	InstructorAssignmentsCohortID          uuid.UUID  `json:"instructor_assignments_cohort_id" validate:"required"`
	InstructorAssignmentsStartDate         *time.Time `json:"instructor_assignments_start_date"`
	InstructorAssignmentsEndDate           *time.Time `json:"instructor_assignments_end_date"`
}

func (r CreateInstructorAssignmentRequest) ToModel(now time.Time) *model.InstructorAssignmentModel {
	m := &model.InstructorAssignmentModel{
		InstructorAssignmentsInstructorID:      r.InstructorAssignmentsInstructorID,
		InstructorAssignmentsLearningOutcomeID: r.InstructorAssignmentsLearningOutcomeID,
		InstructorAssignmentsCohortID:          r.InstructorAssignmentsCohortID,
		InstructorAssignmentsStartDate:         now,
		InstructorAssignmentsEndDate:           r.InstructorAssignmentsEndDate,
		InstructorAssignmentsIsActive:          true,
	}
	if r.InstructorAssignmentsStartDate != nil {
		m.InstructorAssignmentsStartDate = *r.InstructorAssignmentsStartDate
	}
	return m
}

type UpdateInstructorAssignmentRequest struct {
	InstructorAssignmentsStartDate *time.Time `json:"instructor_assignments_start_date"`
	InstructorAssignmentsEndDate   *time.Time `json:"instructor_assignments_end_date"`
	InstructorAssignmentsIsActive  *bool      `json:"instructor_assignments_is_active"`
}

func (r UpdateInstructorAssignmentRequest) ApplyToModel(m *model.InstructorAssignmentModel) {
	if r.InstructorAssignmentsStartDate != nil {
		m.InstructorAssignmentsStartDate = *r.InstructorAssignmentsStartDate
	}
	if r.InstructorAssignmentsEndDate != nil {
		m.InstructorAssignmentsEndDate = r.InstructorAssignmentsEndDate
	}
	if r.InstructorAssignmentsIsActive != nil {
		m.InstructorAssignmentsIsActive = *r.InstructorAssignmentsIsActive
	}
}

type ListInstructorAssignmentsQuery struct {
	InstructorID *uuid.UUID `query:"instructor_id"`
	CohortID     *uuid.UUID `query:"cohort_id"`
	OutcomeID    *uuid.UUID `query:"outcome_id"`
	IsActive     *bool      `query:"is_active"`
}

/* ===================== RESPONSES ===================== */

type InstructorAssignmentResponse struct {
	InstructorAssignmentsID                uuid.UUID  `json:"instructor_assignments_id"`
	InstructorAssignmentsInstructorID      uuid.UUID  `json:"instructor_assignments_instructor_id"`
	InstructorAssignmentsLearningOutcomeID uuid.UUID  `json:"instructor_assignments_learning_outcome_id"`
	InstructorAssignmentsCohortID          uuid.UUID  `json:"instructor_assignments_cohort_id"`
	InstructorAssignmentsStartDate         time.Time  `json:"instructor_assignments_start_date"`
	InstructorAssignmentsEndDate           *time.Time `json:"instructor_assignments_end_date,omitempty"`
	InstructorAssignmentsIsActive          bool       `json:"instructor_assignments_is_active"`
	InstructorAssignmentsCreatedAt         time.Time  `json:"instructor_assignments_created_at"`
}

func NewInstructorAssignmentResponse(m *model.InstructorAssignmentModel) *InstructorAssignmentResponse {
	if m == nil {
		return nil
	}
	return &InstructorAssignmentResponse{
		InstructorAssignmentsID:                m.InstructorAssignmentsID,
		InstructorAssignmentsInstructorID:      m.InstructorAssignmentsInstructorID,
		InstructorAssignmentsLearningOutcomeID: m.InstructorAssignmentsLearningOutcomeID,
		InstructorAssignmentsCohortID:          m.InstructorAssignmentsCohortID,
		InstructorAssignmentsStartDate:         m.InstructorAssignmentsStartDate,
		InstructorAssignmentsEndDate:           m.InstructorAssignmentsEndDate,
		InstructorAssignmentsIsActive:          m.InstructorAssignmentsIsActive,
		InstructorAssignmentsCreatedAt:         m.InstructorAssignmentsCreatedAt,
	}
}

func NewInstructorAssignmentResponses(ms []model.InstructorAssignmentModel) []InstructorAssignmentResponse {
	out := make([]InstructorAssignmentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *NewInstructorAssignmentResponse(&ms[i]))
	}
	return out
}
