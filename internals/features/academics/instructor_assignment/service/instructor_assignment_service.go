package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "akademiku_backend/internals/features/academics/instructor_assignment/model"
)

// HasActiveAssignment indica si el instructor tiene asignación activa para
// el resultado de aprendizaje en la ficha. Lo exigen asistencia y actividades.
func HasActiveAssignment(db *gorm.DB, instructorID, outcomeID, cohortID uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&model.InstructorAssignmentModel{}).
		Where("instructor_assignments_instructor_id = ?", instructorID).
		Where("instructor_assignments_learning_outcome_id = ?", outcomeID).
		Where("instructor_assignments_cohort_id = ?", cohortID).
		Where("instructor_assignments_is_active = ?", true).
		Count(&count).Error
	return count > 0, err
}

// ActiveAssignments devuelve las asignaciones activas del instructor.
func ActiveAssignments(db *gorm.DB, instructorID uuid.UUID) ([]model.InstructorAssignmentModel, error) {
	var assignments []model.InstructorAssignmentModel
	err := db.
		Where("instructor_assignments_instructor_id = ?", instructorID).
		Where("instructor_assignments_is_active = ?", true).
		Order("instructor_assignments_start_date DESC").
		Find(&assignments).Error
	return assignments, err
}
