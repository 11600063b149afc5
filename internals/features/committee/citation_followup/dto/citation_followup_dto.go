package dto

import (
	"time"

	"github.com/google/uuid"

	model "akademiku_backend/internals/features/committee/citation_followup/model"
)

/* ===================== REQUESTS ===================== */

type CreateFollowupRequest struct {
	CitationFollowupsNote        string    `json:"citation_followups_note" validate:"required,max=5000"`
	CitationFollowupsCommitments *string   `json:"citation_followups_commitments" validate:"omitempty,max=5000"`
	CitationFollowupsDate        time.Time `json:"citation_followups_date" validate:"required"`
}

func (r CreateFollowupRequest) ToModel(citationID, authorID uuid.UUID) *model.CitationFollowupModel {
	return &model.CitationFollowupModel{
		CitationFollowupsCitationID:  citationID,
		CitationFollowupsAuthorID:    authorID,
		CitationFollowupsNote:        r.CitationFollowupsNote,
		CitationFollowupsCommitments: r.CitationFollowupsCommitments,
		CitationFollowupsDate:        r.CitationFollowupsDate,
	}
}

type UpdateFollowupRequest struct {
	CitationFollowupsNote        *string    `json:"citation_followups_note" validate:"omitempty,max=5000"`
	CitationFollowupsCommitments *string    `json:"citation_followups_commitments" validate:"omitempty,max=5000"`
	CitationFollowupsDate        *time.Time `json:"citation_followups_date"`
	CitationFollowupsCompleted   *bool      `json:"citation_followups_completed"`
}

func (r UpdateFollowupRequest) ApplyToModel(m *model.CitationFollowupModel) {
	if r.CitationFollowupsNote != nil {
		m.CitationFollowupsNote = *r.CitationFollowupsNote
	}
	if r.CitationFollowupsCommitments != nil {
		m.CitationFollowupsCommitments = r.CitationFollowupsCommitments
	}
	if r.CitationFollowupsDate != nil {
		m.CitationFollowupsDate = *r.CitationFollowupsDate
	}
	if r.CitationFollowupsCompleted != nil {
		m.CitationFollowupsCompleted = *r.CitationFollowupsCompleted
	}
}
