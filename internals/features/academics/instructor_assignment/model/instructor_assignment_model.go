package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InstructorAssignmentModel struct {
	// PK
	InstructorAssignmentsID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:instructor_assignments_id" json:"instructor_assignments_id"`

	// Asignación: instructor + resultado + ficha, una sola vez
	InstructorAssignmentsInstructorID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_instructor_assignments_triple;index;column:instructor_assignments_instructor_id" json:"instructor_assignments_instructor_id"`
	InstructorAssignmentsLearningOutcomeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_instructor_assignments_triple;column:instructor_assignments_learning_outcome_id" json:"instructor_assignments_learning_outcome_id"`
	InstructorAssignmentsCohortID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_instructor_assignments_triple;index;column:instructor_assignments_cohort_id" json:"instructor_assignments_cohort_id"`

	InstructorAssignmentsStartDate time.Time  `gorm:"type:date;not null;index;column:instructor_assignments_start_date" json:"instructor_assignments_start_date"`
	InstructorAssignmentsEndDate   *time.Time `gorm:"type:date;column:instructor_assignments_end_date" json:"instructor_assignments_end_date,omitempty"`

	InstructorAssignmentsIsActive bool `gorm:"not null;default:true;index;column:instructor_assignments_is_active" json:"instructor_assignments_is_active"`

	// Audit
	InstructorAssignmentsCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:instructor_assignments_created_at" json:"instructor_assignments_created_at"`
	InstructorAssignmentsUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:instructor_assignments_updated_at" json:"instructor_assignments_updated_at"`
	InstructorAssignmentsDeletedAt gorm.DeletedAt `gorm:"column:instructor_assignments_deleted_at;index" json:"instructor_assignments_deleted_at,omitempty"`
}

func (InstructorAssignmentModel) TableName() string { return "instructor_assignments" }

var ErrAssignmentEndBeforeStart = errors.New("la fecha de fin debe ser posterior a la fecha de inicio")

func (m *InstructorAssignmentModel) BeforeSave(tx *gorm.DB) error {
	if m.InstructorAssignmentsEndDate != nil &&
		!m.InstructorAssignmentsEndDate.After(m.InstructorAssignmentsStartDate) {
		return ErrAssignmentEndBeforeStart
	}
	return nil
}
