package dto

import (
	"time"

	"github.com/google/uuid"

	model "akademiku_backend/internals/features/academics/program/model"
)

/* ===================== REQUESTS ===================== */

type CreateProgramRequest struct {
	ProgramsCode          string `json:"programs_code" validate:"required,max=20"`
	ProgramsName          string `json:"programs_name" validate:"required,max=100"`
	ProgramsTrainingType  string `json:"programs_training_type" validate:"required,oneof=TECNICO TECNOLOGO ESPECIALIZACION CURSO_CORTO COMPLEMENTARIA"`
	ProgramsDurationHours int    `json:"programs_duration_hours" validate:"required,gt=0"`
}

func (r CreateProgramRequest) ToModel() *model.ProgramModel {
	return &model.ProgramModel{
		ProgramsCode:          r.ProgramsCode,
		ProgramsName:          r.ProgramsName,
		ProgramsTrainingType:  model.TrainingType(r.ProgramsTrainingType),
		ProgramsDurationHours: r.ProgramsDurationHours,
		ProgramsIsActive:      true,
	}
}

type UpdateProgramRequest struct {
	ProgramsCode          *string `json:"programs_code" validate:"omitempty,max=20"`
	ProgramsName          *string `json:"programs_name" validate:"omitempty,max=100"`
	ProgramsTrainingType  *string `json:"programs_training_type" validate:"omitempty,oneof=TECNICO TECNOLOGO ESPECIALIZACION CURSO_CORTO COMPLEMENTARIA"`
	ProgramsDurationHours *int    `json:"programs_duration_hours" validate:"omitempty,gt=0"`
	ProgramsIsActive      *bool   `json:"programs_is_active"`
}

func (r UpdateProgramRequest) ApplyToModel(m *model.ProgramModel) {
	if r.ProgramsCode != nil {
		m.ProgramsCode = *r.ProgramsCode
	}
	if r.ProgramsName != nil {
		m.ProgramsName = *r.ProgramsName
	}
	if r.ProgramsTrainingType != nil {
		m.ProgramsTrainingType = model.TrainingType(*r.ProgramsTrainingType)
	}
	if r.ProgramsDurationHours != nil {
		m.ProgramsDurationHours = *r.ProgramsDurationHours
	}
	if r.ProgramsIsActive != nil {
		m.ProgramsIsActive = *r.ProgramsIsActive
	}
}

type ListProgramsQuery struct {
	TrainingType *string `query:"training_type"`
	IsActive     *bool   `query:"is_active"`
	Search       string  `query:"search"`
}

/* ===================== RESPONSES ===================== */

type ProgramResponse struct {
	ProgramsID            uuid.UUID `json:"programs_id"`
	ProgramsCode          string    `json:"programs_code"`
	ProgramsName          string    `json:"programs_name"`
	ProgramsTrainingType  string    `json:"programs_training_type"`
	ProgramsDurationHours int       `json:"programs_duration_hours"`
	ProgramsIsActive      bool      `json:"programs_is_active"`
	ProgramsCreatedAt     time.Time `json:"programs_created_at"`
	ProgramsUpdatedAt     time.Time `json:"programs_updated_at"`
}

func NewProgramResponse(m *model.ProgramModel) *ProgramResponse {
	if m == nil {
		return nil
	}
	return &ProgramResponse{
		ProgramsID:            m.ProgramsID,
		ProgramsCode:          m.ProgramsCode,
		ProgramsName:          m.ProgramsName,
		ProgramsTrainingType:  string(m.ProgramsTrainingType),
		ProgramsDurationHours: m.ProgramsDurationHours,
		ProgramsIsActive:      m.ProgramsIsActive,
		ProgramsCreatedAt:     m.ProgramsCreatedAt,
		ProgramsUpdatedAt:     m.ProgramsUpdatedAt,
	}
}

func NewProgramResponses(ms []model.ProgramModel) []ProgramResponse {
	out := make([]ProgramResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *NewProgramResponse(&ms[i]))
	}
	return out
}
