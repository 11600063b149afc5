package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EnrollmentStatus string

const (
	EnrollmentStatusActivo    EnrollmentStatus = "ACTIVO"
	EnrollmentStatusInactivo  EnrollmentStatus = "INACTIVO"
	EnrollmentStatusRetirado  EnrollmentStatus = "RETIRADO"
	EnrollmentStatusAplazado  EnrollmentStatus = "APLAZADO"
	EnrollmentStatusCancelado EnrollmentStatus = "CANCELADO"
)

func (s EnrollmentStatus) IsValid() bool {
	switch s {
	case EnrollmentStatusActivo, EnrollmentStatusInactivo, EnrollmentStatusRetirado,
		EnrollmentStatusAplazado, EnrollmentStatusCancelado:
		return true
	}
	return false
}

type EnrollmentModel struct {
	// PK
	EnrollmentsID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:enrollments_id" json:"enrollments_id"`

	// Matrícula: un aprendiz por ficha, una sola vez
	EnrollmentsApprenticeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_enrollments_apprentice_cohort;column:enrollments_apprentice_id" json:"enrollments_apprentice_id"`
	EnrollmentsCohortID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_enrollments_apprentice_cohort;index;column:enrollments_cohort_id" json:"enrollments_cohort_id"`

	EnrollmentsEnrolledAt time.Time        `gorm:"type:timestamptz;not null;autoCreateTime;index;column:enrollments_enrolled_at" json:"enrollments_enrolled_at"`
	EnrollmentsStatus     EnrollmentStatus `gorm:"type:varchar(20);not null;default:'ACTIVO';index;column:enrollments_status" json:"enrollments_status"`

	// Foto de identificación para el llamado de asistencia
	EnrollmentsPhotoURL *string `gorm:"type:text;column:enrollments_photo_url" json:"enrollments_photo_url,omitempty"`

	EnrollmentsIsActive bool `gorm:"not null;default:true;index;column:enrollments_is_active" json:"enrollments_is_active"`

	// Audit
	EnrollmentsCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:enrollments_created_at" json:"enrollments_created_at"`
	EnrollmentsUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:enrollments_updated_at" json:"enrollments_updated_at"`
	EnrollmentsDeletedAt gorm.DeletedAt `gorm:"column:enrollments_deleted_at;index" json:"enrollments_deleted_at,omitempty"`
}

func (EnrollmentModel) TableName() string { return "enrollments" }
