package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"akademiku_backend/internals/constants"
	cohortModel "akademiku_backend/internals/features/academics/cohort/model"
	dto "akademiku_backend/internals/features/academics/instructor_assignment/dto"
	model "akademiku_backend/internals/features/academics/instructor_assignment/model"
	outcomeModel "akademiku_backend/internals/features/academics/learning_outcome/model"
	userModel "akademiku_backend/internals/features/users/user/model"
	helper "akademiku_backend/internals/helpers"
)

var validate = validator.New()

type InstructorAssignmentController struct {
	DB *gorm.DB
}

func NewInstructorAssignmentController(db *gorm.DB) *InstructorAssignmentController {
	return &InstructorAssignmentController{DB: db}
}

var assignmentSortable = map[string]string{
	"created_at": "instructor_assignments_created_at",
	"start_date": "instructor_assignments_start_date",
}

// POST /api/a/instructor-assignments
func (ic *InstructorAssignmentController) Create(c *fiber.Ctx) error {
	var req dto.CreateInstructorAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var instructor userModel.UserModel
	if err := ic.DB.First(&instructor, "users_id = ?", req.InstructorAssignmentsInstructorID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "El usuario indicado no existe")
	}
	if instructor.UsersRole != constants.RoleInstructor {
		return helper.Error(c, fiber.StatusBadRequest, "Solo se puede asignar a usuarios con rol INSTRUCTOR")
	}

	var outcome outcomeModel.LearningOutcomeModel
	if err := ic.DB.First(&outcome, "learning_outcomes_id = ?", req.InstructorAssignmentsLearningOutcomeID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "El resultado de aprendizaje indicado no existe")
	}

	var cohort cohortModel.CohortModel
	if err := ic.DB.First(&cohort, "cohorts_id = ?", req.InstructorAssignmentsCohortID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "La ficha indicada no existe")
	}

	// El resultado debe pertenecer al programa de la ficha.
	if outcome.LearningOutcomesProgramID != cohort.CohortsProgramID {
		return helper.Error(c, fiber.StatusBadRequest,
			"El resultado de aprendizaje no pertenece al programa de la ficha")
	}

	assignment := req.ToModel(time.Now())
	if err := ic.DB.Create(assignment).Error; err != nil {
		if errors.Is(err, model.ErrAssignmentEndBeforeStart) {
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict,
				"El instructor ya está asignado a ese resultado en esa ficha")
		}
		log.Println("[ERROR] creando asignación de instructor:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear la asignación")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Asignación creada correctamente",
		dto.NewInstructorAssignmentResponse(assignment))
}

// GET /api/i/instructor-assignments
// Los instructores solo ven sus propias asignaciones.
func (ic *InstructorAssignmentController) List(c *fiber.Ctx) error {
	var q dto.ListInstructorAssignmentsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Parámetros de búsqueda inválidos")
	}

	role, err := helper.GetUserRoleFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ParseFiber(c, "start_date", "desc", helper.DefaultOpts)
	orderClause, err := p.SafeOrderClause(assignmentSortable, "start_date")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "sort_by no es válido")
	}

	tx := ic.DB.Model(&model.InstructorAssignmentModel{})
	if role == constants.RoleInstructor {
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		tx = tx.Where("instructor_assignments_instructor_id = ?", userID)
	} else if q.InstructorID != nil {
		tx = tx.Where("instructor_assignments_instructor_id = ?", *q.InstructorID)
	}
	if q.CohortID != nil {
		tx = tx.Where("instructor_assignments_cohort_id = ?", *q.CohortID)
	}
	if q.OutcomeID != nil {
		tx = tx.Where("instructor_assignments_learning_outcome_id = ?", *q.OutcomeID)
	}
	if q.IsActive != nil {
		tx = tx.Where("instructor_assignments_is_active = ?", *q.IsActive)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Println("[ERROR] contando asignaciones:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo listar las asignaciones")
	}

	var assignments []model.InstructorAssignmentModel
	if err := tx.Order(strings.TrimPrefix(orderClause, "ORDER BY ")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&assignments).Error; err != nil {
		log.Println("[ERROR] listando asignaciones:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo listar las asignaciones")
	}

	return helper.Success(c, "Asignaciones obtenidas", fiber.Map{
		"items":      dto.NewInstructorAssignmentResponses(assignments),
		"pagination": helper.BuildMeta(total, p),
	})
}

// GET /api/i/instructor-assignments/:id
func (ic *InstructorAssignmentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de asignación inválido")
	}

	var assignment model.InstructorAssignmentModel
	if err := ic.DB.First(&assignment, "instructor_assignments_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Asignación no encontrada")
	}

	role, err := helper.GetUserRoleFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if role == constants.RoleInstructor {
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		if assignment.InstructorAssignmentsInstructorID != userID {
			return helper.Error(c, fiber.StatusForbidden, "No puedes consultar asignaciones de otros instructores")
		}
	}

	return helper.Success(c, "Asignación obtenida", dto.NewInstructorAssignmentResponse(&assignment))
}

// PUT /api/a/instructor-assignments/:id
func (ic *InstructorAssignmentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de asignación inválido")
	}

	var req dto.UpdateInstructorAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var assignment model.InstructorAssignmentModel
	if err := ic.DB.First(&assignment, "instructor_assignments_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Asignación no encontrada")
	}

	req.ApplyToModel(&assignment)
	if err := ic.DB.Save(&assignment).Error; err != nil {
		if errors.Is(err, model.ErrAssignmentEndBeforeStart) {
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
		log.Println("[ERROR] actualizando asignación:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar la asignación")
	}

	return helper.Success(c, "Asignación actualizada correctamente", dto.NewInstructorAssignmentResponse(&assignment))
}

// DELETE /api/a/instructor-assignments/:id
func (ic *InstructorAssignmentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de asignación inválido")
	}

	var assignment model.InstructorAssignmentModel
	if err := ic.DB.First(&assignment, "instructor_assignments_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Asignación no encontrada")
	}

	if err := ic.DB.Delete(&assignment).Error; err != nil {
		log.Println("[ERROR] eliminando asignación:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar la asignación")
	}
	return helper.Success(c, "Asignación eliminada correctamente", fiber.Map{
		"instructor_assignments_id": id,
	})
}
