package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "akademiku_backend/internals/features/academics/enrollment/model"
	userDTO "akademiku_backend/internals/features/users/user/dto"
)

/* ===================== REQUESTS ===================== */

type CreateEnrollmentRequest struct {
	EnrollmentsApprenticeID uuid.UUID `json:"enrollments_apprentice_id" validate:"required"`
	EnrollmentsCohortID     uuid.UUID `json:"enrollments_cohort_id" validate:"required"`
}

func (r CreateEnrollmentRequest) ToModel() *model.EnrollmentModel {
	return &model.EnrollmentModel{
		EnrollmentsApprenticeID: r.EnrollmentsApprenticeID,
		EnrollmentsCohortID:     r.EnrollmentsCohortID,
		EnrollmentsStatus:       model.EnrollmentStatusActivo,
		EnrollmentsIsActive:     true,
	}
}

type ChangeEnrollmentStatusRequest struct {
	EnrollmentsStatus string `json:"enrollments_status" validate:"required,oneof=ACTIVO INACTIVO RETIRADO APLAZADO CANCELADO"`
}

type ListEnrollmentsQuery struct {
	CohortID     *uuid.UUID `query:"cohort_id"`
	ApprenticeID *uuid.UUID `query:"apprentice_id"`
	Status       *string    `query:"status"`
}

/* ===================== RESPONSES ===================== */

type EnrollmentResponse struct {
	EnrollmentsID           uuid.UUID `json:"enrollments_id"`
	EnrollmentsApprenticeID uuid.UUID `json:"enrollments_apprentice_id"`
	EnrollmentsCohortID     uuid.UUID `json:"enrollments_cohort_id"`
	EnrollmentsEnrolledAt   time.Time `json:"enrollments_enrolled_at"`
	EnrollmentsStatus       string    `json:"enrollments_status"`
	EnrollmentsPhotoURL     *string   `json:"enrollments_photo_url,omitempty"`
	EnrollmentsIsActive     bool      `json:"enrollments_is_active"`
	EnrollmentsCreatedAt    time.Time `json:"enrollments_created_at"`

	Apprentice *userDTO.UserLiteResponse `json:"apprentice,omitempty"`
}

func NewEnrollmentResponse(m *model.EnrollmentModel) *EnrollmentResponse {
	if m == nil {
		return nil
	}
	return &EnrollmentResponse{
		EnrollmentsID:           m.EnrollmentsID,
		EnrollmentsApprenticeID: m.EnrollmentsApprenticeID,
		EnrollmentsCohortID:     m.EnrollmentsCohortID,
		EnrollmentsEnrolledAt:   m.EnrollmentsEnrolledAt,
		EnrollmentsStatus:       string(m.EnrollmentsStatus),
		EnrollmentsPhotoURL:     enrollmentPhotoURL(m.EnrollmentsPhotoURL),
		EnrollmentsIsActive:     m.EnrollmentsIsActive,
		EnrollmentsCreatedAt:    m.EnrollmentsCreatedAt,
	}
}

func NewEnrollmentResponses(ms []model.EnrollmentModel) []EnrollmentResponse {
	out := make([]EnrollmentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *NewEnrollmentResponse(&ms[i]))
	}
	return out
}

func enrollmentPhotoURL(rel *string) *string {
	if rel == nil || strings.TrimSpace(*rel) == "" {
		return nil
	}
	u := "/media/" + strings.TrimPrefix(*rel, "/")
	return &u
}
