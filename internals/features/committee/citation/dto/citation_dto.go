package dto

import (
	"time"

	"github.com/google/uuid"

	model "akademiku_backend/internals/features/committee/citation/model"
)

/* ===================== REQUESTS ===================== */

type CreateCitationRequest struct {
	CommitteeCitationsApprenticeID uuid.UUID `json:"committee_citations_apprentice_id" validate:"required"`
	CommitteeCitationsCohortID     uuid.UUID `json:"committee_citations_cohort_id" validate:"required"`

	CommitteeCitationsReason      string `json:"committee_citations_reason" validate:"required,oneof=ACADEMICO DISCIPLINARIO INASISTENCIA OTRO"`
	CommitteeCitationsDescription string `json:"committee_citations_description" validate:"required,max=5000"`

	CommitteeCitationsDatetime time.Time `json:"committee_citations_datetime" validate:"required"`
	CommitteeCitationsPlace    string    `json:"committee_citations_place" validate:"required,max=150"`
}

func (r CreateCitationRequest) ToModel(reporterID uuid.UUID) *model.CitationModel {
	return &model.CitationModel{
		CommitteeCitationsApprenticeID: r.CommitteeCitationsApprenticeID,
		CommitteeCitationsCohortID:     r.CommitteeCitationsCohortID,
		CommitteeCitationsReporterID:   reporterID,
		CommitteeCitationsReason:       model.CitationReason(r.CommitteeCitationsReason),
		CommitteeCitationsDescription:  r.CommitteeCitationsDescription,
		CommitteeCitationsDatetime:     r.CommitteeCitationsDatetime,
		CommitteeCitationsPlace:        r.CommitteeCitationsPlace,
		CommitteeCitationsStatus:       model.CitationStatusPendiente,
	}
}

// Solo los datos logísticos se editan; el estado tiene su propio endpoint.
type UpdateCitationRequest struct {
	CommitteeCitationsReason      *string    `json:"committee_citations_reason" validate:"omitempty,oneof=ACADEMICO DISCIPLINARIO INASISTENCIA OTRO"`
	CommitteeCitationsDescription *string    `json:"committee_citations_description" validate:"omitempty,max=5000"`
	CommitteeCitationsDatetime    *time.Time `json:"committee_citations_datetime"`
	CommitteeCitationsPlace       *string    `json:"committee_citations_place" validate:"omitempty,max=150"`
	CommitteeCitationsResolution  *string    `json:"committee_citations_resolution" validate:"omitempty,max=5000"`
}

func (r UpdateCitationRequest) ApplyToModel(m *model.CitationModel) {
	if r.CommitteeCitationsReason != nil {
		m.CommitteeCitationsReason = model.CitationReason(*r.CommitteeCitationsReason)
	}
	if r.CommitteeCitationsDescription != nil {
		m.CommitteeCitationsDescription = *r.CommitteeCitationsDescription
	}
	if r.CommitteeCitationsDatetime != nil {
		m.CommitteeCitationsDatetime = *r.CommitteeCitationsDatetime
	}
	if r.CommitteeCitationsPlace != nil {
		m.CommitteeCitationsPlace = *r.CommitteeCitationsPlace
	}
	if r.CommitteeCitationsResolution != nil {
		m.CommitteeCitationsResolution = r.CommitteeCitationsResolution
	}
}

type ChangeCitationStatusRequest struct {
	CommitteeCitationsStatus string `json:"committee_citations_status" validate:"required,oneof=PENDIENTE NOTIFICADA REALIZADA CANCELADA"`

	// Opcional al pasar a REALIZADA
	CommitteeCitationsResolution *string `json:"committee_citations_resolution" validate:"omitempty,max=5000"`
}

type ListCitationsQuery struct {
	Status       *string    `query:"status"`
	Reason       *string    `query:"reason"`
	ApprenticeID *uuid.UUID `query:"apprentice_id"`
	CohortID     *uuid.UUID `query:"cohort_id"`
	DateFrom     *time.Time `query:"date_from"`
	DateTo       *time.Time `query:"date_to"`
}

/* ===================== RESPONSES ===================== */

type CitationResponse struct {
	CommitteeCitationsID     uuid.UUID `json:"committee_citations_id"`
	CommitteeCitationsNumber string    `json:"committee_citations_number"`

	CommitteeCitationsApprenticeID uuid.UUID `json:"committee_citations_apprentice_id"`
	ApprenticeName                 string    `json:"apprentice_name,omitempty"`
	CommitteeCitationsCohortID     uuid.UUID `json:"committee_citations_cohort_id"`
	CommitteeCitationsReporterID   uuid.UUID `json:"committee_citations_reporter_id"`

	CommitteeCitationsReason      string `json:"committee_citations_reason"`
	CommitteeCitationsDescription string `json:"committee_citations_description"`

	CommitteeCitationsDatetime time.Time `json:"committee_citations_datetime"`
	CommitteeCitationsPlace    string    `json:"committee_citations_place"`

	CommitteeCitationsStatus     string     `json:"committee_citations_status"`
	CommitteeCitationsNotifiedAt *time.Time `json:"committee_citations_notified_at,omitempty"`
	CommitteeCitationsHeldAt     *time.Time `json:"committee_citations_held_at,omitempty"`
	CommitteeCitationsResolution *string    `json:"committee_citations_resolution,omitempty"`

	IsOverdue bool `json:"is_overdue"`

	CommitteeCitationsCreatedAt time.Time `json:"committee_citations_created_at"`
	CommitteeCitationsUpdatedAt time.Time `json:"committee_citations_updated_at"`
}

func NewCitationResponse(m *model.CitationModel, apprenticeName string) *CitationResponse {
	if m == nil {
		return nil
	}
	return &CitationResponse{
		CommitteeCitationsID:           m.CommitteeCitationsID,
		CommitteeCitationsNumber:       m.CommitteeCitationsNumber,
		CommitteeCitationsApprenticeID: m.CommitteeCitationsApprenticeID,
		ApprenticeName:                 apprenticeName,
		CommitteeCitationsCohortID:     m.CommitteeCitationsCohortID,
		CommitteeCitationsReporterID:   m.CommitteeCitationsReporterID,
		CommitteeCitationsReason:       string(m.CommitteeCitationsReason),
		CommitteeCitationsDescription:  m.CommitteeCitationsDescription,
		CommitteeCitationsDatetime:     m.CommitteeCitationsDatetime,
		CommitteeCitationsPlace:        m.CommitteeCitationsPlace,
		CommitteeCitationsStatus:       string(m.CommitteeCitationsStatus),
		CommitteeCitationsNotifiedAt:   m.CommitteeCitationsNotifiedAt,
		CommitteeCitationsHeldAt:       m.CommitteeCitationsHeldAt,
		CommitteeCitationsResolution:   m.CommitteeCitationsResolution,
		IsOverdue:                      m.IsOverdue(time.Now()),
		CommitteeCitationsCreatedAt:    m.CommitteeCitationsCreatedAt,
		CommitteeCitationsUpdatedAt:    m.CommitteeCitationsUpdatedAt,
	}
}

func NewCitationResponses(list []model.CitationModel, names map[uuid.UUID]string) []*CitationResponse {
	out := make([]*CitationResponse, 0, len(list))
	for i := range list {
		out = append(out, NewCitationResponse(&list[i], names[list[i].CommitteeCitationsApprenticeID]))
	}
	return out
}

// Conteos del año en curso para el tablero del comité.
type CitationStatsResponse struct {
	Year     int              `json:"year"`
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"by_status"`
	ByReason map[string]int64 `json:"by_reason"`
}
