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

	dto "akademiku_backend/internals/features/academics/cohort/dto"
	model "akademiku_backend/internals/features/academics/cohort/model"
	programModel "akademiku_backend/internals/features/academics/program/model"
	helper "akademiku_backend/internals/helpers"
)

var validate = validator.New()

type CohortController struct {
	DB *gorm.DB
}

func NewCohortController(db *gorm.DB) *CohortController {
	return &CohortController{DB: db}
}

var cohortSortable = map[string]string{
	"created_at": "cohorts_created_at",
	"number":     "cohorts_number",
	"start_date": "cohorts_start_date",
	"stage":      "cohorts_stage",
}

// Nombres de programa para un lote de fichas, en una sola consulta.
func (cc *CohortController) programNames(cohorts []model.CohortModel) map[uuid.UUID]string {
	names := make(map[uuid.UUID]string, len(cohorts))
	if len(cohorts) == 0 {
		return names
	}
	ids := make([]uuid.UUID, 0, len(cohorts))
	seen := make(map[uuid.UUID]bool, len(cohorts))
	for i := range cohorts {
		if !seen[cohorts[i].CohortsProgramID] {
			seen[cohorts[i].CohortsProgramID] = true
			ids = append(ids, cohorts[i].CohortsProgramID)
		}
	}

	var programs []programModel.ProgramModel
	if err := cc.DB.Select("programs_id", "programs_name").
		Where("programs_id IN ?", ids).
		Find(&programs).Error; err != nil {
		log.Println("[ERROR] resolviendo nombres de programa:", err)
		return names
	}
	for i := range programs {
		names[programs[i].ProgramsID] = programs[i].ProgramsName
	}
	return names
}

// GET /api/u/cohorts
func (cc *CohortController) List(c *fiber.Ctx) error {
	var q dto.ListCohortsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Parámetros de búsqueda inválidos")
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)
	orderClause, err := p.SafeOrderClause(cohortSortable, "created_at")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "sort_by no es válido")
	}

	tx := cc.DB.Model(&model.CohortModel{})
	if q.ProgramID != nil {
		tx = tx.Where("cohorts_program_id = ?", *q.ProgramID)
	}
	if q.Stage != nil && strings.TrimSpace(*q.Stage) != "" {
		stage := model.CohortStage(strings.ToUpper(strings.TrimSpace(*q.Stage)))
		if !stage.IsValid() {
			return helper.Error(c, fiber.StatusBadRequest, "Etapa de ficha no reconocida")
		}
		tx = tx.Where("cohorts_stage = ?", stage)
	}
	if q.IsActive != nil {
		tx = tx.Where("cohorts_is_active = ?", *q.IsActive)
	}
	if s := strings.TrimSpace(q.Search); s != "" {
		like := "%" + s + "%"
		tx = tx.Where("cohorts_number ILIKE ? OR cohorts_municipality ILIKE ? OR cohorts_training_center ILIKE ?",
			like, like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Println("[ERROR] contando fichas:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo listar las fichas")
	}

	var cohorts []model.CohortModel
	if err := tx.Order(strings.TrimPrefix(orderClause, "ORDER BY ")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&cohorts).Error; err != nil {
		log.Println("[ERROR] listando fichas:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo listar las fichas")
	}

	names := cc.programNames(cohorts)
	items := make([]dto.CohortResponse, 0, len(cohorts))
	for i := range cohorts {
		items = append(items, *dto.NewCohortResponse(&cohorts[i], names[cohorts[i].CohortsProgramID]))
	}

	return helper.Success(c, "Fichas obtenidas", fiber.Map{
		"items":      items,
		"pagination": helper.BuildMeta(total, p),
	})
}

// GET /api/u/cohorts/:id
func (cc *CohortController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de ficha inválido")
	}

	var cohort model.CohortModel
	if err := cc.DB.First(&cohort, "cohorts_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Ficha no encontrada")
	}

	var program programModel.ProgramModel
	programName := ""
	if err := cc.DB.Select("programs_id", "programs_name").
		First(&program, "programs_id = ?", cohort.CohortsProgramID).Error; err == nil {
		programName = program.ProgramsName
	}

	return helper.Success(c, "Ficha obtenida", dto.NewCohortResponse(&cohort, programName))
}

// POST /api/a/cohorts
func (cc *CohortController) Create(c *fiber.Ctx) error {
	var req dto.CreateCohortRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var program programModel.ProgramModel
	if err := cc.DB.First(&program, "programs_id = ?", req.CohortsProgramID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "El programa indicado no existe")
	}

	cohort := req.ToModel()
	if err := cc.DB.Create(cohort).Error; err != nil {
		if errors.Is(err, model.ErrLectiveEndBeforeStart) {
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Ya existe una ficha con ese número")
		}
		log.Println("[ERROR] creando ficha:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear la ficha")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Ficha creada correctamente",
		dto.NewCohortResponse(cohort, program.ProgramsName))
}

// PUT /api/a/cohorts/:id
func (cc *CohortController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de ficha inválido")
	}

	var req dto.UpdateCohortRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var cohort model.CohortModel
	if err := cc.DB.First(&cohort, "cohorts_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Ficha no encontrada")
	}

	if req.CohortsProgramID != nil {
		var count int64
		cc.DB.Model(&programModel.ProgramModel{}).
			Where("programs_id = ?", *req.CohortsProgramID).Count(&count)
		if count == 0 {
			return helper.Error(c, fiber.StatusNotFound, "El programa indicado no existe")
		}
	}

	req.ApplyToModel(&cohort)
	if err := cc.DB.Save(&cohort).Error; err != nil {
		if errors.Is(err, model.ErrLectiveEndBeforeStart) {
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Ya existe una ficha con ese número")
		}
		log.Println("[ERROR] actualizando ficha:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar la ficha")
	}

	return helper.Success(c, "Ficha actualizada correctamente", dto.NewCohortResponse(&cohort, ""))
}

// DELETE /api/a/cohorts/:id
func (cc *CohortController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de ficha inválido")
	}

	var cohort model.CohortModel
	if err := cc.DB.First(&cohort, "cohorts_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Ficha no encontrada")
	}

	if err := cc.DB.Delete(&cohort).Error; err != nil {
		log.Println("[ERROR] eliminando ficha:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar la ficha")
	}
	return helper.Success(c, "Ficha eliminada correctamente", fiber.Map{
		"cohorts_id": id,
	})
}

// GET /api/i/cohorts/:id/roster
// Aprendices con matrícula ACTIVA de la ficha, con su información de matrícula.
func (cc *CohortController) Roster(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de ficha inválido")
	}

	var cohort model.CohortModel
	if err := cc.DB.First(&cohort, "cohorts_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Ficha no encontrada")
	}

	type rosterRow struct {
		EnrollmentsID       uuid.UUID `gorm:"column:enrollments_id"`
		EnrollmentsStatus   string    `gorm:"column:enrollments_status"`
		EnrollmentsPhotoURL *string   `gorm:"column:enrollments_photo_url"`
		EnrolledAt          time.Time `gorm:"column:enrollments_enrolled_at"`
		UsersID             uuid.UUID `gorm:"column:users_id"`
		UsersDocumentNumber string    `gorm:"column:users_document_number"`
		UsersFirstName      string    `gorm:"column:users_first_name"`
		UsersLastName       string    `gorm:"column:users_last_name"`
		UsersEmail          string    `gorm:"column:users_email"`
	}

	var rows []rosterRow
	if err := cc.DB.Table("enrollments").
		Select(`enrollments.enrollments_id, enrollments.enrollments_status,
			enrollments.enrollments_photo_url, enrollments.enrollments_enrolled_at,
			users.users_id, users.users_document_number, users.users_first_name,
			users.users_last_name, users.users_email`).
		Joins("JOIN users ON users.users_id = enrollments.enrollments_apprentice_id").
		Where("enrollments.enrollments_cohort_id = ?", id).
		Where("enrollments.enrollments_status = ?", "ACTIVO").
		Where("enrollments.enrollments_deleted_at IS NULL").
		Where("users.users_deleted_at IS NULL").
		Order("users.users_last_name ASC, users.users_first_name ASC").
		Scan(&rows).Error; err != nil {
		log.Println("[ERROR] consultando el listado de la ficha:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo obtener el listado de la ficha")
	}

	items := make([]fiber.Map, 0, len(rows))
	for _, r := range rows {
		var photo *string
		if r.EnrollmentsPhotoURL != nil && *r.EnrollmentsPhotoURL != "" {
			u := "/media/" + strings.TrimPrefix(*r.EnrollmentsPhotoURL, "/")
			photo = &u
		}
		items = append(items, fiber.Map{
			"enrollments_id":        r.EnrollmentsID,
			"enrollments_status":    r.EnrollmentsStatus,
			"enrollments_photo_url": photo,
			"enrolled_at":           r.EnrolledAt,
			"apprentice": fiber.Map{
				"users_id":              r.UsersID,
				"users_document_number": r.UsersDocumentNumber,
				"full_name":             strings.TrimSpace(r.UsersFirstName + " " + r.UsersLastName),
				"users_email":           r.UsersEmail,
			},
		})
	}

	return helper.Success(c, "Listado de la ficha obtenido", fiber.Map{
		"cohorts_id":     cohort.CohortsID,
		"cohorts_number": cohort.CohortsNumber,
		"total":          len(items),
		"apprentices":    items,
	})
}
