package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Soporte documental de una citación (actas, evidencias, descargos).
type CitationAttachmentModel struct {
	// PK
	CitationAttachmentsID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:citation_attachments_id" json:"citation_attachments_id"`

	CitationAttachmentsCitationID uuid.UUID `gorm:"type:uuid;not null;index;column:citation_attachments_citation_id" json:"citation_attachments_citation_id"`
	CitationAttachmentsUploaderID uuid.UUID `gorm:"type:uuid;not null;index;column:citation_attachments_uploader_id" json:"citation_attachments_uploader_id"`

	CitationAttachmentsFileName    string `gorm:"type:varchar(255);not null;column:citation_attachments_file_name" json:"citation_attachments_file_name"`
	CitationAttachmentsFilePath    string `gorm:"type:text;not null;column:citation_attachments_file_path" json:"citation_attachments_file_path"`
	CitationAttachmentsContentType string `gorm:"type:varchar(100);not null;default:'';column:citation_attachments_content_type" json:"citation_attachments_content_type"`
	CitationAttachmentsSizeBytes   int64  `gorm:"not null;default:0;column:citation_attachments_size_bytes" json:"citation_attachments_size_bytes"`

	CitationAttachmentsUploadedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:citation_attachments_uploaded_at" json:"citation_attachments_uploaded_at"`
	CitationAttachmentsDeletedAt  gorm.DeletedAt `gorm:"column:citation_attachments_deleted_at;index" json:"citation_attachments_deleted_at,omitempty"`
}

func (CitationAttachmentModel) TableName() string { return "citation_attachments" }
