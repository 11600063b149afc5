package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Seguimiento posterior al comité: compromisos acordados con el aprendiz y
// su verificación. Solo existen sobre citaciones ya realizadas.
type CitationFollowupModel struct {
	// PK
	CitationFollowupsID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:citation_followups_id" json:"citation_followups_id"`

	CitationFollowupsCitationID uuid.UUID `gorm:"type:uuid;not null;index;column:citation_followups_citation_id" json:"citation_followups_citation_id"`
	CitationFollowupsAuthorID   uuid.UUID `gorm:"type:uuid;not null;index;column:citation_followups_author_id" json:"citation_followups_author_id"`

	CitationFollowupsNote        string  `gorm:"type:text;not null;column:citation_followups_note" json:"citation_followups_note"`
	CitationFollowupsCommitments *string `gorm:"type:text;column:citation_followups_commitments" json:"citation_followups_commitments,omitempty"`

	CitationFollowupsDate      time.Time `gorm:"type:date;not null;index;column:citation_followups_date" json:"citation_followups_date"`
	CitationFollowupsCompleted bool      `gorm:"not null;default:false;index;column:citation_followups_completed" json:"citation_followups_completed"`

	// Audit
	CitationFollowupsCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:citation_followups_created_at" json:"citation_followups_created_at"`
	CitationFollowupsUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:citation_followups_updated_at" json:"citation_followups_updated_at"`
	CitationFollowupsDeletedAt gorm.DeletedAt `gorm:"column:citation_followups_deleted_at;index" json:"citation_followups_deleted_at,omitempty"`
}

func (CitationFollowupModel) TableName() string { return "citation_followups" }
