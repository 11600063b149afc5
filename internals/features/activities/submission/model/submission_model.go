package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Estado de la entrega: BORRADOR → ENVIADA → REVISADA → CALIFICADA.
// DEVUELTA la fija la calificación cuando exige corrección.
type SubmissionState string

const (
	SubmissionStateBorrador   SubmissionState = "BORRADOR"
	SubmissionStateEnviada    SubmissionState = "ENVIADA"
	SubmissionStateRevisada   SubmissionState = "REVISADA"
	SubmissionStateCalificada SubmissionState = "CALIFICADA"
	SubmissionStateDevuelta   SubmissionState = "DEVUELTA"
)

func (s SubmissionState) IsValid() bool {
	switch s {
	case SubmissionStateBorrador, SubmissionStateEnviada, SubmissionStateRevisada,
		SubmissionStateCalificada, SubmissionStateDevuelta:
		return true
	}
	return false
}

// Gradable: solo entregas enviadas o ya pasadas por revisión/calificación
// aceptan una calificación.
func (s SubmissionState) Gradable() bool {
	switch s {
	case SubmissionStateEnviada, SubmissionStateRevisada,
		SubmissionStateCalificada, SubmissionStateDevuelta:
		return true
	}
	return false
}

type SubmissionModel struct {
	// PK
	SubmissionsID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:submissions_id" json:"submissions_id"`

	// Una entrega por actividad y aprendiz
	SubmissionsActivityID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_submissions_activity_apprentice;index;column:submissions_activity_id" json:"submissions_activity_id"`
	SubmissionsApprenticeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_submissions_activity_apprentice;index;column:submissions_apprentice_id" json:"submissions_apprentice_id"`

	SubmissionsState   SubmissionState `gorm:"type:varchar(15);not null;default:'BORRADOR';index;column:submissions_state" json:"submissions_state"`
	SubmissionsContent string          `gorm:"type:text;not null;default:'';column:submissions_content" json:"submissions_content"`
	SubmissionsFileURL *string         `gorm:"type:text;column:submissions_file_url" json:"submissions_file_url,omitempty"`

	// Entrega: el retraso se fija al enviar comparando contra la fecha de
	// entrega de la actividad, y ya no cambia.
	SubmissionsSubmittedAt *time.Time `gorm:"type:timestamptz;column:submissions_submitted_at" json:"submissions_submitted_at,omitempty"`
	SubmissionsIsLate      bool       `gorm:"not null;default:false;column:submissions_is_late" json:"submissions_is_late"`

	// Audit
	SubmissionsCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:submissions_created_at" json:"submissions_created_at"`
	SubmissionsUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:submissions_updated_at" json:"submissions_updated_at"`
	SubmissionsDeletedAt gorm.DeletedAt `gorm:"column:submissions_deleted_at;index" json:"submissions_deleted_at,omitempty"`
}

func (SubmissionModel) TableName() string { return "submissions" }
