package dto

import (
	"time"

	"github.com/google/uuid"

	model "akademiku_backend/internals/features/academics/learning_outcome/model"
)

/* ===================== REQUESTS ===================== */

type CreateLearningOutcomeRequest struct {
	LearningOutcomesCode          string    `json:"learning_outcomes_code" validate:"required,max=20"`
	LearningOutcomesName          string    `json:"learning_outcomes_name" validate:"required,max=100"`
	LearningOutcomesDescription   string    `json:"learning_outcomes_description" validate:"required"`
	LearningOutcomesProgramID     uuid.UUID `json:"learning_outcomes_program_id" validate:"required"`
	LearningOutcomesAssignedHours int       `json:"learning_outcomes_assigned_hours" validate:"required,min=1,max=1000"`
	LearningOutcomesQuarter       *int      `json:"learning_outcomes_quarter" validate:"omitempty,min=1,max=4"`
}

func (r CreateLearningOutcomeRequest) ToModel() *model.LearningOutcomeModel {
	m := &model.LearningOutcomeModel{
		LearningOutcomesCode:          r.LearningOutcomesCode,
		LearningOutcomesName:          r.LearningOutcomesName,
		LearningOutcomesDescription:   r.LearningOutcomesDescription,
		LearningOutcomesProgramID:     r.LearningOutcomesProgramID,
		LearningOutcomesAssignedHours: r.LearningOutcomesAssignedHours,
		LearningOutcomesQuarter:       1,
		LearningOutcomesIsActive:      true,
	}
	if r.LearningOutcomesQuarter != nil {
		m.LearningOutcomesQuarter = *r.LearningOutcomesQuarter
	}
	return m
}

type UpdateLearningOutcomeRequest struct {
	LearningOutcomesCode          *string `json:"learning_outcomes_code" validate:"omitempty,max=20"`
	LearningOutcomesName          *string `json:"learning_outcomes_name" validate:"omitempty,max=100"`
	LearningOutcomesDescription   *string `json:"learning_outcomes_description"`
	LearningOutcomesAssignedHours *int    `json:"learning_outcomes_assigned_hours" validate:"omitempty,min=1,max=1000"`
	LearningOutcomesQuarter       *int    `json:"learning_outcomes_quarter" validate:"omitempty,min=1,max=4"`
	LearningOutcomesIsActive      *bool   `json:"learning_outcomes_is_active"`
}

func (r UpdateLearningOutcomeRequest) ApplyToModel(m *model.LearningOutcomeModel) {
	if r.LearningOutcomesCode != nil {
		m.LearningOutcomesCode = *r.LearningOutcomesCode
	}
	if r.LearningOutcomesName != nil {
		m.LearningOutcomesName = *r.LearningOutcomesName
	}
	if r.LearningOutcomesDescription != nil {
		m.LearningOutcomesDescription = *r.LearningOutcomesDescription
	}
	if r.LearningOutcomesAssignedHours != nil {
		m.LearningOutcomesAssignedHours = *r.LearningOutcomesAssignedHours
	}
	if r.LearningOutcomesQuarter != nil {
		m.LearningOutcomesQuarter = *r.LearningOutcomesQuarter
	}
	if r.LearningOutcomesIsActive != nil {
		m.LearningOutcomesIsActive = *r.LearningOutcomesIsActive
	}
}

type ListLearningOutcomesQuery struct {
	ProgramID *uuid.UUID `query:"program_id"`
	Quarter   *int       `query:"quarter"`
	IsActive  *bool      `query:"is_active"`
	Search    string     `query:"search"`
}

/* ===================== RESPONSES ===================== */

type LearningOutcomeResponse struct {
	LearningOutcomesID            uuid.UUID `json:"learning_outcomes_id"`
	LearningOutcomesCode          string    `json:"learning_outcomes_code"`
	LearningOutcomesName          string    `json:"learning_outcomes_name"`
	LearningOutcomesDescription   string    `json:"learning_outcomes_description"`
	LearningOutcomesProgramID     uuid.UUID `json:"learning_outcomes_program_id"`
	LearningOutcomesAssignedHours int       `json:"learning_outcomes_assigned_hours"`
	LearningOutcomesQuarter       int       `json:"learning_outcomes_quarter"`
	LearningOutcomesIsActive      bool      `json:"learning_outcomes_is_active"`
	LearningOutcomesCreatedAt     time.Time `json:"learning_outcomes_created_at"`
	LearningOutcomesUpdatedAt     time.Time `json:"learning_outcomes_updated_at"`
}

func NewLearningOutcomeResponse(m *model.LearningOutcomeModel) *LearningOutcomeResponse {
	if m == nil {
		return nil
	}
	return &LearningOutcomeResponse{
		LearningOutcomesID:            m.LearningOutcomesID,
		LearningOutcomesCode:          m.LearningOutcomesCode,
		LearningOutcomesName:          m.LearningOutcomesName,
		LearningOutcomesDescription:   m.LearningOutcomesDescription,
		LearningOutcomesProgramID:     m.LearningOutcomesProgramID,
		LearningOutcomesAssignedHours: m.LearningOutcomesAssignedHours,
		LearningOutcomesQuarter:       m.LearningOutcomesQuarter,
		LearningOutcomesIsActive:      m.LearningOutcomesIsActive,
		LearningOutcomesCreatedAt:     m.LearningOutcomesCreatedAt,
		LearningOutcomesUpdatedAt:     m.LearningOutcomesUpdatedAt,
	}
}

func NewLearningOutcomeResponses(ms []model.LearningOutcomeModel) []LearningOutcomeResponse {
	out := make([]LearningOutcomeResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *NewLearningOutcomeResponse(&ms[i]))
	}
	return out
}
