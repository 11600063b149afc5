package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "akademiku_backend/internals/features/academics/enrollment/model"
)

// Consultas de matrícula compartidas con asistencia y actividades.

// HasActiveEnrollment indica si el aprendiz tiene matrícula ACTIVA en la ficha.
func HasActiveEnrollment(db *gorm.DB, apprenticeID, cohortID uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&model.EnrollmentModel{}).
		Where("enrollments_apprentice_id = ?", apprenticeID).
		Where("enrollments_cohort_id = ?", cohortID).
		Where("enrollments_status = ?", model.EnrollmentStatusActivo).
		Count(&count).Error
	return count > 0, err
}

// ActiveApprenticeIDs devuelve los aprendices con matrícula ACTIVA de la ficha.
func ActiveApprenticeIDs(db *gorm.DB, cohortID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := db.Model(&model.EnrollmentModel{}).
		Where("enrollments_cohort_id = ?", cohortID).
		Where("enrollments_status = ?", model.EnrollmentStatusActivo).
		Pluck("enrollments_apprentice_id", &ids).Error
	return ids, err
}

// ActiveCohortIDs devuelve las fichas donde el aprendiz tiene matrícula ACTIVA.
func ActiveCohortIDs(db *gorm.DB, apprenticeID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := db.Model(&model.EnrollmentModel{}).
		Where("enrollments_apprentice_id = ?", apprenticeID).
		Where("enrollments_status = ?", model.EnrollmentStatusActivo).
		Pluck("enrollments_cohort_id", &ids).Error
	return ids, err
}

// CountActive cuenta matrículas ACTIVAS de la ficha (para control de cupo).
func CountActive(db *gorm.DB, cohortID uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&model.EnrollmentModel{}).
		Where("enrollments_cohort_id = ?", cohortID).
		Where("enrollments_status = ?", model.EnrollmentStatusActivo).
		Count(&count).Error
	return count, err
}
