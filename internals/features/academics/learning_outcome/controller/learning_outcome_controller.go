package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "akademiku_backend/internals/features/academics/learning_outcome/dto"
	model "akademiku_backend/internals/features/academics/learning_outcome/model"
	programModel "akademiku_backend/internals/features/academics/program/model"
	helper "akademiku_backend/internals/helpers"
)

var validate = validator.New()

type LearningOutcomeController struct {
	DB *gorm.DB
}

func NewLearningOutcomeController(db *gorm.DB) *LearningOutcomeController {
	return &LearningOutcomeController{DB: db}
}

var outcomeSortable = map[string]string{
	"created_at": "learning_outcomes_created_at",
	"code":       "learning_outcomes_code",
	"name":       "learning_outcomes_name",
	"quarter":    "learning_outcomes_quarter",
}

// GET /api/u/learning-outcomes
func (lc *LearningOutcomeController) List(c *fiber.Ctx) error {
	var q dto.ListLearningOutcomesQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Parámetros de búsqueda inválidos")
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)
	orderClause, err := p.SafeOrderClause(outcomeSortable, "created_at")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "sort_by no es válido")
	}

	tx := lc.DB.Model(&model.LearningOutcomeModel{})
	if q.ProgramID != nil {
		tx = tx.Where("learning_outcomes_program_id = ?", *q.ProgramID)
	}
	if q.Quarter != nil {
		tx = tx.Where("learning_outcomes_quarter = ?", *q.Quarter)
	}
	if q.IsActive != nil {
		tx = tx.Where("learning_outcomes_is_active = ?", *q.IsActive)
	}
	if s := strings.TrimSpace(q.Search); s != "" {
		like := "%" + s + "%"
		tx = tx.Where("learning_outcomes_code ILIKE ? OR learning_outcomes_name ILIKE ?", like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Println("[ERROR] contando resultados de aprendizaje:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo listar los resultados de aprendizaje")
	}

	var outcomes []model.LearningOutcomeModel
	if err := tx.Order(strings.TrimPrefix(orderClause, "ORDER BY ")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&outcomes).Error; err != nil {
		log.Println("[ERROR] listando resultados de aprendizaje:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo listar los resultados de aprendizaje")
	}

	return helper.Success(c, "Resultados de aprendizaje obtenidos", fiber.Map{
		"items":      dto.NewLearningOutcomeResponses(outcomes),
		"pagination": helper.BuildMeta(total, p),
	})
}

// GET /api/u/learning-outcomes/:id
func (lc *LearningOutcomeController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de resultado de aprendizaje inválido")
	}

	var outcome model.LearningOutcomeModel
	if err := lc.DB.First(&outcome, "learning_outcomes_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Resultado de aprendizaje no encontrado")
	}
	return helper.Success(c, "Resultado de aprendizaje obtenido", dto.NewLearningOutcomeResponse(&outcome))
}

// POST /api/a/learning-outcomes
func (lc *LearningOutcomeController) Create(c *fiber.Ctx) error {
	var req dto.CreateLearningOutcomeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var count int64
	lc.DB.Model(&programModel.ProgramModel{}).
		Where("programs_id = ?", req.LearningOutcomesProgramID).Count(&count)
	if count == 0 {
		return helper.Error(c, fiber.StatusNotFound, "El programa indicado no existe")
	}

	outcome := req.ToModel()
	if err := lc.DB.Create(outcome).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Ya existe un resultado de aprendizaje con ese código")
		}
		log.Println("[ERROR] creando resultado de aprendizaje:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear el resultado de aprendizaje")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Resultado de aprendizaje creado correctamente",
		dto.NewLearningOutcomeResponse(outcome))
}

// PUT /api/a/learning-outcomes/:id
func (lc *LearningOutcomeController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de resultado de aprendizaje inválido")
	}

	var req dto.UpdateLearningOutcomeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var outcome model.LearningOutcomeModel
	if err := lc.DB.First(&outcome, "learning_outcomes_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Resultado de aprendizaje no encontrado")
	}

	req.ApplyToModel(&outcome)
	if err := lc.DB.Save(&outcome).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Ya existe un resultado de aprendizaje con ese código")
		}
		log.Println("[ERROR] actualizando resultado de aprendizaje:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar el resultado de aprendizaje")
	}

	return helper.Success(c, "Resultado de aprendizaje actualizado correctamente", dto.NewLearningOutcomeResponse(&outcome))
}

// DELETE /api/a/learning-outcomes/:id
func (lc *LearningOutcomeController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de resultado de aprendizaje inválido")
	}

	var outcome model.LearningOutcomeModel
	if err := lc.DB.First(&outcome, "learning_outcomes_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Resultado de aprendizaje no encontrado")
	}

	if err := lc.DB.Delete(&outcome).Error; err != nil {
		log.Println("[ERROR] eliminando resultado de aprendizaje:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar el resultado de aprendizaje")
	}
	return helper.Success(c, "Resultado de aprendizaje eliminado correctamente", fiber.Map{
		"learning_outcomes_id": id,
	})
}
