package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CitationStatus string

const (
	CitationStatusPendiente  CitationStatus = "PENDIENTE"
	CitationStatusNotificada CitationStatus = "NOTIFICADA"
	CitationStatusRealizada  CitationStatus = "REALIZADA"
	CitationStatusCancelada  CitationStatus = "CANCELADA"
)

func (s CitationStatus) IsValid() bool {
	switch s {
	case CitationStatusPendiente, CitationStatusNotificada,
		CitationStatusRealizada, CitationStatusCancelada:
		return true
	}
	return false
}

// IsTerminal: una citación realizada o cancelada no cambia más.
func (s CitationStatus) IsTerminal() bool {
	return s == CitationStatusRealizada || s == CitationStatusCancelada
}

// Transiciones permitidas del estado de una citación:
//
//	PENDIENTE  → NOTIFICADA | CANCELADA
//	NOTIFICADA → REALIZADA  | CANCELADA
var citationTransitions = map[CitationStatus][]CitationStatus{
	CitationStatusPendiente:  {CitationStatusNotificada, CitationStatusCancelada},
	CitationStatusNotificada: {CitationStatusRealizada, CitationStatusCancelada},
}

func (s CitationStatus) CanTransitionTo(to CitationStatus) bool {
	for _, allowed := range citationTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

type CitationReason string

const (
	CitationReasonAcademico     CitationReason = "ACADEMICO"
	CitationReasonDisciplinario CitationReason = "DISCIPLINARIO"
	CitationReasonInasistencia  CitationReason = "INASISTENCIA"
	CitationReasonOtro          CitationReason = "OTRO"
)

func (r CitationReason) IsValid() bool {
	switch r {
	case CitationReasonAcademico, CitationReasonDisciplinario,
		CitationReasonInasistencia, CitationReasonOtro:
		return true
	}
	return false
}

type CitationModel struct {
	// PK
	CommitteeCitationsID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:committee_citations_id" json:"committee_citations_id"`

	// Consecutivo CIT-AAAA-NNNN, asignado una sola vez al crear
	CommitteeCitationsNumber string `gorm:"type:varchar(13);not null;uniqueIndex:uq_committee_citations_number;column:committee_citations_number" json:"committee_citations_number"`

	CommitteeCitationsApprenticeID uuid.UUID `gorm:"type:uuid;not null;index;column:committee_citations_apprentice_id" json:"committee_citations_apprentice_id"`
	CommitteeCitationsCohortID     uuid.UUID `gorm:"type:uuid;not null;index;column:committee_citations_cohort_id" json:"committee_citations_cohort_id"`
	CommitteeCitationsReporterID   uuid.UUID `gorm:"type:uuid;not null;index;column:committee_citations_reporter_id" json:"committee_citations_reporter_id"`

	CommitteeCitationsReason      CitationReason `gorm:"type:varchar(15);not null;index;column:committee_citations_reason" json:"committee_citations_reason"`
	CommitteeCitationsDescription string         `gorm:"type:text;not null;column:committee_citations_description" json:"committee_citations_description"`

	// Cuándo y dónde se cita al aprendiz
	CommitteeCitationsDatetime time.Time `gorm:"type:timestamptz;not null;index;column:committee_citations_datetime" json:"committee_citations_datetime"`
	CommitteeCitationsPlace    string    `gorm:"type:varchar(150);not null;column:committee_citations_place" json:"committee_citations_place"`

	CommitteeCitationsStatus     CitationStatus `gorm:"type:varchar(15);not null;default:'PENDIENTE';index;column:committee_citations_status" json:"committee_citations_status"`
	CommitteeCitationsNotifiedAt *time.Time     `gorm:"type:timestamptz;column:committee_citations_notified_at" json:"committee_citations_notified_at,omitempty"`
	CommitteeCitationsHeldAt     *time.Time     `gorm:"type:timestamptz;column:committee_citations_held_at" json:"committee_citations_held_at,omitempty"`
	CommitteeCitationsResolution *string        `gorm:"type:text;column:committee_citations_resolution" json:"committee_citations_resolution,omitempty"`

	// Audit
	CommitteeCitationsCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:committee_citations_created_at" json:"committee_citations_created_at"`
	CommitteeCitationsUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:committee_citations_updated_at" json:"committee_citations_updated_at"`
	CommitteeCitationsDeletedAt gorm.DeletedAt `gorm:"column:committee_citations_deleted_at;index" json:"committee_citations_deleted_at,omitempty"`
}

func (CitationModel) TableName() string { return "committee_citations" }

// InvalidTransitionError nombra la transición rechazada tal cual se intentó.
type InvalidTransitionError struct {
	From CitationStatus
	To   CitationStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("no se puede cambiar de %s a %s", e.From, e.To)
}

// Transition aplica el cambio de estado sobre el modelo en memoria. Las
// marcas de notificación y realización se sellan una sola vez: la primera
// transición que entra al estado gana y nunca se sobreescriben.
func (m *CitationModel) Transition(to CitationStatus, now time.Time) error {
	from := m.CommitteeCitationsStatus
	if !from.CanTransitionTo(to) {
		return &InvalidTransitionError{From: from, To: to}
	}

	m.CommitteeCitationsStatus = to
	switch to {
	case CitationStatusNotificada:
		if m.CommitteeCitationsNotifiedAt == nil {
			t := now
			m.CommitteeCitationsNotifiedAt = &t
		}
	case CitationStatusRealizada:
		if m.CommitteeCitationsHeldAt == nil {
			t := now
			m.CommitteeCitationsHeldAt = &t
		}
	}
	return nil
}

// IsOverdue: la fecha de la citación ya pasó y sigue sin realizarse.
func (m *CitationModel) IsOverdue(now time.Time) bool {
	if m.CommitteeCitationsStatus.IsTerminal() {
		return false
	}
	return now.After(m.CommitteeCitationsDatetime)
}

// FormatNumber arma el consecutivo CIT-AAAA-NNNN.
func FormatNumber(year, seq int) string {
	return fmt.Sprintf("CIT-%d-%04d", year, seq)
}
