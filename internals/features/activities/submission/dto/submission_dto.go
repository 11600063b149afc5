package dto

import (
	"time"

	"github.com/google/uuid"

	model "akademiku_backend/internals/features/activities/submission/model"
)

/* ===================== REQUESTS ===================== */

// El aprendiz crea o retoca su borrador; la actividad viene en la URL.
type UpsertDraftRequest struct {
	SubmissionsContent string `json:"submissions_content" validate:"max=20000"`
}

type ListSubmissionsQuery struct {
	State        *string    `query:"state"`
	ApprenticeID *uuid.UUID `query:"apprentice_id"`
	OnlyLate     *bool      `query:"only_late"`
}

/* ===================== RESPONSES ===================== */

type SubmissionResponse struct {
	SubmissionsID           uuid.UUID `json:"submissions_id"`
	SubmissionsActivityID   uuid.UUID `json:"submissions_activity_id"`
	SubmissionsApprenticeID uuid.UUID `json:"submissions_apprentice_id"`
	ApprenticeName          string    `json:"apprentice_name,omitempty"`

	SubmissionsState   string  `json:"submissions_state"`
	SubmissionsContent string  `json:"submissions_content"`
	SubmissionsFileURL *string `json:"submissions_file_url,omitempty"`

	SubmissionsSubmittedAt *time.Time `json:"submissions_submitted_at,omitempty"`
	SubmissionsIsLate      bool       `json:"submissions_is_late"`

	SubmissionsCreatedAt time.Time `json:"submissions_created_at"`
	SubmissionsUpdatedAt time.Time `json:"submissions_updated_at"`
}

func NewSubmissionResponse(m *model.SubmissionModel, apprenticeName string) *SubmissionResponse {
	if m == nil {
		return nil
	}
	return &SubmissionResponse{
		SubmissionsID:           m.SubmissionsID,
		SubmissionsActivityID:   m.SubmissionsActivityID,
		SubmissionsApprenticeID: m.SubmissionsApprenticeID,
		ApprenticeName:          apprenticeName,
		SubmissionsState:        string(m.SubmissionsState),
		SubmissionsContent:      m.SubmissionsContent,
		SubmissionsFileURL:      m.SubmissionsFileURL,
		SubmissionsSubmittedAt:  m.SubmissionsSubmittedAt,
		SubmissionsIsLate:       m.SubmissionsIsLate,
		SubmissionsCreatedAt:    m.SubmissionsCreatedAt,
		SubmissionsUpdatedAt:    m.SubmissionsUpdatedAt,
	}
}
