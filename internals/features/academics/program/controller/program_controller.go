package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "akademiku_backend/internals/features/academics/program/dto"
	model "akademiku_backend/internals/features/academics/program/model"
	helper "akademiku_backend/internals/helpers"
)

var validate = validator.New()

type ProgramController struct {
	DB *gorm.DB
}

func NewProgramController(db *gorm.DB) *ProgramController {
	return &ProgramController{DB: db}
}

var programSortable = map[string]string{
	"created_at":     "programs_created_at",
	"code":           "programs_code",
	"name":           "programs_name",
	"duration_hours": "programs_duration_hours",
}

// GET /api/u/programs
func (pc *ProgramController) List(c *fiber.Ctx) error {
	var q dto.ListProgramsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Parámetros de búsqueda inválidos")
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)
	orderClause, err := p.SafeOrderClause(programSortable, "created_at")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "sort_by no es válido")
	}

	tx := pc.DB.Model(&model.ProgramModel{})
	if q.TrainingType != nil && strings.TrimSpace(*q.TrainingType) != "" {
		tt := model.TrainingType(strings.ToUpper(strings.TrimSpace(*q.TrainingType)))
		if !tt.IsValid() {
			return helper.Error(c, fiber.StatusBadRequest, "Tipo de formación no reconocido")
		}
		tx = tx.Where("programs_training_type = ?", tt)
	}
	if q.IsActive != nil {
		tx = tx.Where("programs_is_active = ?", *q.IsActive)
	}
	if s := strings.TrimSpace(q.Search); s != "" {
		like := "%" + s + "%"
		tx = tx.Where("programs_code ILIKE ? OR programs_name ILIKE ?", like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Println("[ERROR] contando programas:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo listar los programas")
	}

	var programs []model.ProgramModel
	if err := tx.Order(strings.TrimPrefix(orderClause, "ORDER BY ")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&programs).Error; err != nil {
		log.Println("[ERROR] listando programas:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo listar los programas")
	}

	return helper.Success(c, "Programas obtenidos", fiber.Map{
		"items":      dto.NewProgramResponses(programs),
		"pagination": helper.BuildMeta(total, p),
	})
}

// GET /api/u/programs/:id
func (pc *ProgramController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de programa inválido")
	}

	var program model.ProgramModel
	if err := pc.DB.First(&program, "programs_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Programa no encontrado")
	}
	return helper.Success(c, "Programa obtenido", dto.NewProgramResponse(&program))
}

// POST /api/a/programs
func (pc *ProgramController) Create(c *fiber.Ctx) error {
	var req dto.CreateProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	program := req.ToModel()
	if err := pc.DB.Create(program).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Ya existe un programa con ese código")
		}
		log.Println("[ERROR] creando programa:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear el programa")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Programa creado correctamente", dto.NewProgramResponse(program))
}

// PUT /api/a/programs/:id
func (pc *ProgramController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de programa inválido")
	}

	var req dto.UpdateProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var program model.ProgramModel
	if err := pc.DB.First(&program, "programs_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Programa no encontrado")
	}

	req.ApplyToModel(&program)
	if err := pc.DB.Save(&program).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Ya existe un programa con ese código")
		}
		log.Println("[ERROR] actualizando programa:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar el programa")
	}

	return helper.Success(c, "Programa actualizado correctamente", dto.NewProgramResponse(&program))
}

// DELETE /api/a/programs/:id
func (pc *ProgramController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de programa inválido")
	}

	var program model.ProgramModel
	if err := pc.DB.First(&program, "programs_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Programa no encontrado")
	}

	if err := pc.DB.Delete(&program).Error; err != nil {
		log.Println("[ERROR] eliminando programa:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar el programa")
	}
	return helper.Success(c, "Programa eliminado correctamente", fiber.Map{
		"programs_id": id,
	})
}
