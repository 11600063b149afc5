package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LearningOutcomeModel struct {
	// PK
	LearningOutcomesID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:learning_outcomes_id" json:"learning_outcomes_id"`

	// Identidad
	LearningOutcomesCode        string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_learning_outcomes_code;column:learning_outcomes_code" json:"learning_outcomes_code"`
	LearningOutcomesName        string    `gorm:"type:varchar(100);not null;column:learning_outcomes_name" json:"learning_outcomes_name"`
	LearningOutcomesDescription string    `gorm:"type:text;not null;column:learning_outcomes_description" json:"learning_outcomes_description"`
	LearningOutcomesProgramID   uuid.UUID `gorm:"type:uuid;not null;index;column:learning_outcomes_program_id" json:"learning_outcomes_program_id"`

	LearningOutcomesAssignedHours int  `gorm:"not null;column:learning_outcomes_assigned_hours" json:"learning_outcomes_assigned_hours"`
	LearningOutcomesQuarter       int  `gorm:"not null;default:1;index;column:learning_outcomes_quarter" json:"learning_outcomes_quarter"`
	LearningOutcomesIsActive      bool `gorm:"not null;default:true;index;column:learning_outcomes_is_active" json:"learning_outcomes_is_active"`

	// Audit
	LearningOutcomesCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:learning_outcomes_created_at" json:"learning_outcomes_created_at"`
	LearningOutcomesUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:learning_outcomes_updated_at" json:"learning_outcomes_updated_at"`
	LearningOutcomesDeletedAt gorm.DeletedAt `gorm:"column:learning_outcomes_deleted_at;index" json:"learning_outcomes_deleted_at,omitempty"`
}

func (LearningOutcomeModel) TableName() string { return "learning_outcomes" }

func (m *LearningOutcomeModel) BeforeSave(tx *gorm.DB) error {
	m.LearningOutcomesCode = strings.ToUpper(strings.TrimSpace(m.LearningOutcomesCode))
	m.LearningOutcomesName = strings.TrimSpace(m.LearningOutcomesName)
	return nil
}
