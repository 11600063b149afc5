package dto

import (
	"time"

	"github.com/google/uuid"

	model "akademiku_backend/internals/features/academics/cohort/model"
)

/* ===================== REQUESTS ===================== */

type CreateCohortRequest struct {
	CohortsNumber    string    `json:"cohorts_number" validate:"required,max=20"`
	CohortsProgramID uuid.UUID `json:"cohorts_program_id" validate:"required"`

	CohortsStartDate      time.Time `json:"cohorts_start_date" validate:"required"`
	CohortsLectiveEndDate time.Time `json:"cohorts_lective_end_date" validate:"required"`

	CohortsMunicipality   string `json:"cohorts_municipality" validate:"required,max=100"`
	CohortsTrainingCenter string `json:"cohorts_training_center" validate:"required,max=100"`
	CohortsVenue          string `json:"cohorts_venue" validate:"required,max=100"`

	CohortsApprenticeCapacity int `json:"cohorts_apprentice_capacity" validate:"required,min=1,max=1000"`
	CohortsInstructorCapacity int `json:"cohorts_instructor_capacity" validate:"required,min=1,max=100"`

	CohortsModality string  `json:"cohorts_modality" validate:"required,oneof=PRESENCIAL VIRTUAL MIXTA"`
	CohortsShift    string  `json:"cohorts_shift" validate:"required,oneof=DIURNA NOCTURNA MIXTA FINES_SEMANA"`
	CohortsStage    *string `json:"cohorts_stage" validate:"omitempty,oneof=LECTURA EJECUCION TERMINADA CANCELADA"`
}

func (r CreateCohortRequest) ToModel() *model.CohortModel {
	m := &model.CohortModel{
		CohortsNumber:             r.CohortsNumber,
		CohortsProgramID:          r.CohortsProgramID,
		CohortsStartDate:          r.CohortsStartDate,
		CohortsLectiveEndDate:     r.CohortsLectiveEndDate,
		CohortsMunicipality:       r.CohortsMunicipality,
		CohortsTrainingCenter:     r.CohortsTrainingCenter,
		CohortsVenue:              r.CohortsVenue,
		CohortsApprenticeCapacity: r.CohortsApprenticeCapacity,
		CohortsInstructorCapacity: r.CohortsInstructorCapacity,
		CohortsModality:           model.Modality(r.CohortsModality),
		CohortsShift:              model.Shift(r.CohortsShift),
		CohortsStage:              model.CohortStageLectura,
		CohortsIsActive:           true,
	}
	if r.CohortsStage != nil {
		m.CohortsStage = model.CohortStage(*r.CohortsStage)
	}
	return m
}

type UpdateCohortRequest struct {
	CohortsNumber    *string    `json:"cohorts_number" validate:"omitempty,max=20"`
	CohortsProgramID *uuid.UUID `json:"cohorts_program_id"`

	CohortsStartDate      *time.Time `json:"cohorts_start_date"`
	CohortsLectiveEndDate *time.Time `json:"cohorts_lective_end_date"`

	CohortsMunicipality   *string `json:"cohorts_municipality" validate:"omitempty,max=100"`
	CohortsTrainingCenter *string `json:"cohorts_training_center" validate:"omitempty,max=100"`
	CohortsVenue          *string `json:"cohorts_venue" validate:"omitempty,max=100"`

	CohortsApprenticeCapacity *int `json:"cohorts_apprentice_capacity" validate:"omitempty,min=1,max=1000"`
	CohortsInstructorCapacity *int `json:"cohorts_instructor_capacity" validate:"omitempty,min=1,max=100"`

	CohortsModality *string `json:"cohorts_modality" validate:"omitempty,oneof=PRESENCIAL VIRTUAL MIXTA"`
	CohortsShift    *string `json:"cohorts_shift" validate:"omitempty,oneof=DIURNA NOCTURNA MIXTA FINES_SEMANA"`
	CohortsStage    *string `json:"cohorts_stage" validate:"omitempty,oneof=LECTURA EJECUCION TERMINADA CANCELADA"`

	CohortsIsActive *bool `json:"cohorts_is_active"`
}

func (r UpdateCohortRequest) ApplyToModel(m *model.CohortModel) {
	if r.CohortsNumber != nil {
		m.CohortsNumber = *r.CohortsNumber
	}
	if r.CohortsProgramID != nil {
		m.CohortsProgramID = *r.CohortsProgramID
	}
	if r.CohortsStartDate != nil {
		m.CohortsStartDate = *r.CohortsStartDate
	}
	if r.CohortsLectiveEndDate != nil {
		m.CohortsLectiveEndDate = *r.CohortsLectiveEndDate
	}
	if r.CohortsMunicipality != nil {
		m.CohortsMunicipality = *r.CohortsMunicipality
	}
	if r.CohortsTrainingCenter != nil {
		m.CohortsTrainingCenter = *r.CohortsTrainingCenter
	}
	if r.CohortsVenue != nil {
		m.CohortsVenue = *r.CohortsVenue
	}
	if r.CohortsApprenticeCapacity != nil {
		m.CohortsApprenticeCapacity = *r.CohortsApprenticeCapacity
	}
	if r.CohortsInstructorCapacity != nil {
		m.CohortsInstructorCapacity = *r.CohortsInstructorCapacity
	}
	if r.CohortsModality != nil {
		m.CohortsModality = model.Modality(*r.CohortsModality)
	}
	if r.CohortsShift != nil {
		m.CohortsShift = model.Shift(*r.CohortsShift)
	}
	if r.CohortsStage != nil {
		m.CohortsStage = model.CohortStage(*r.CohortsStage)
	}
	if r.CohortsIsActive != nil {
		m.CohortsIsActive = *r.CohortsIsActive
	}
}

type ListCohortsQuery struct {
	ProgramID *uuid.UUID `query:"program_id"`
	Stage     *string    `query:"stage"`
	IsActive  *bool      `query:"is_active"`
	Search    string     `query:"search"`
}

/* ===================== RESPONSES ===================== */

type CohortResponse struct {
	CohortsID        uuid.UUID `json:"cohorts_id"`
	CohortsNumber    string    `json:"cohorts_number"`
	CohortsProgramID uuid.UUID `json:"cohorts_program_id"`
	ProgramName      string    `json:"program_name,omitempty"`

	CohortsStartDate      time.Time `json:"cohorts_start_date"`
	CohortsLectiveEndDate time.Time `json:"cohorts_lective_end_date"`
	DurationDays          int       `json:"duration_days"`

	CohortsMunicipality   string `json:"cohorts_municipality"`
	CohortsTrainingCenter string `json:"cohorts_training_center"`
	CohortsVenue          string `json:"cohorts_venue"`

	CohortsApprenticeCapacity int `json:"cohorts_apprentice_capacity"`
	CohortsInstructorCapacity int `json:"cohorts_instructor_capacity"`

	CohortsModality string `json:"cohorts_modality"`
	CohortsShift    string `json:"cohorts_shift"`
	CohortsStage    string `json:"cohorts_stage"`
	CohortsIsActive bool   `json:"cohorts_is_active"`

	CohortsCreatedAt time.Time `json:"cohorts_created_at"`
	CohortsUpdatedAt time.Time `json:"cohorts_updated_at"`
}

func NewCohortResponse(m *model.CohortModel, programName string) *CohortResponse {
	if m == nil {
		return nil
	}
	return &CohortResponse{
		CohortsID:                 m.CohortsID,
		CohortsNumber:             m.CohortsNumber,
		CohortsProgramID:          m.CohortsProgramID,
		ProgramName:               programName,
		CohortsStartDate:          m.CohortsStartDate,
		CohortsLectiveEndDate:     m.CohortsLectiveEndDate,
		DurationDays:              m.DurationDays(),
		CohortsMunicipality:       m.CohortsMunicipality,
		CohortsTrainingCenter:     m.CohortsTrainingCenter,
		CohortsVenue:              m.CohortsVenue,
		CohortsApprenticeCapacity: m.CohortsApprenticeCapacity,
		CohortsInstructorCapacity: m.CohortsInstructorCapacity,
		CohortsModality:           string(m.CohortsModality),
		CohortsShift:              string(m.CohortsShift),
		CohortsStage:              string(m.CohortsStage),
		CohortsIsActive:           m.CohortsIsActive,
		CohortsCreatedAt:          m.CohortsCreatedAt,
		CohortsUpdatedAt:          m.CohortsUpdatedAt,
	}
}
