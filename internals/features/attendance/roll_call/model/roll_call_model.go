package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Un llamado por instructor, resultado, ficha y día de clase.
type RollCallModel struct {
	// PK
	RollCallsID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:roll_calls_id" json:"roll_calls_id"`

	// Sesión
	RollCallsInstructorID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_roll_calls_session;index;column:roll_calls_instructor_id" json:"roll_calls_instructor_id"`
	RollCallsLearningOutcomeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_roll_calls_session;column:roll_calls_learning_outcome_id" json:"roll_calls_learning_outcome_id"`
	RollCallsCohortID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_roll_calls_session;index;column:roll_calls_cohort_id" json:"roll_calls_cohort_id"`
	RollCallsClassDate         time.Time `gorm:"type:date;not null;uniqueIndex:uq_roll_calls_session;index;column:roll_calls_class_date" json:"roll_calls_class_date"`

	RollCallsCalledAt        time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:roll_calls_called_at" json:"roll_calls_called_at"`
	RollCallsObservations    *string   `gorm:"type:text;column:roll_calls_observations" json:"roll_calls_observations,omitempty"`
	RollCallsDurationMinutes int       `gorm:"not null;default:120;column:roll_calls_duration_minutes" json:"roll_calls_duration_minutes"`

	// Audit
	RollCallsCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:roll_calls_created_at" json:"roll_calls_created_at"`
	RollCallsUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:roll_calls_updated_at" json:"roll_calls_updated_at"`
	RollCallsDeletedAt gorm.DeletedAt `gorm:"column:roll_calls_deleted_at;index" json:"roll_calls_deleted_at,omitempty"`
}

func (RollCallModel) TableName() string { return "roll_calls" }
