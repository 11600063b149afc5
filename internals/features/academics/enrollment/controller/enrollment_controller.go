package controller

import (
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"akademiku_backend/internals/constants"
	cohortModel "akademiku_backend/internals/features/academics/cohort/model"
	dto "akademiku_backend/internals/features/academics/enrollment/dto"
	model "akademiku_backend/internals/features/academics/enrollment/model"
	enrollmentService "akademiku_backend/internals/features/academics/enrollment/service"
	userDTO "akademiku_backend/internals/features/users/user/dto"
	userModel "akademiku_backend/internals/features/users/user/model"
	helper "akademiku_backend/internals/helpers"
)

var validate = validator.New()

type EnrollmentController struct {
	DB *gorm.DB
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{DB: db}
}

var enrollmentSortable = map[string]string{
	"enrolled_at": "enrollments_enrolled_at",
	"created_at":  "enrollments_created_at",
	"status":      "enrollments_status",
}

// POST /api/a/enrollments
func (ec *EnrollmentController) Create(c *fiber.Ctx) error {
	var req dto.CreateEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// El matriculado debe ser un aprendiz activo.
	var apprentice userModel.UserModel
	if err := ec.DB.First(&apprentice, "users_id = ?", req.EnrollmentsApprenticeID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "El usuario indicado no existe")
	}
	if apprentice.UsersRole != constants.RoleApprentice {
		return helper.Error(c, fiber.StatusBadRequest, "Solo se puede matricular a usuarios con rol APRENDIZ")
	}
	if !apprentice.UsersIsActive {
		return helper.Error(c, fiber.StatusBadRequest, "El aprendiz está desactivado")
	}

	var cohort cohortModel.CohortModel
	if err := ec.DB.First(&cohort, "cohorts_id = ?", req.EnrollmentsCohortID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "La ficha indicada no existe")
	}
	if !cohort.CohortsIsActive {
		return helper.Error(c, fiber.StatusBadRequest, "La ficha no está activa")
	}

	active, err := enrollmentService.CountActive(ec.DB, cohort.CohortsID)
	if err != nil {
		log.Println("[ERROR] verificando cupo de la ficha:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo verificar el cupo de la ficha")
	}
	if active >= int64(cohort.CohortsApprenticeCapacity) {
		return helper.Error(c, fiber.StatusConflict, "La ficha ya alcanzó su cupo de aprendices")
	}

	enrollment := req.ToModel()
	if err := ec.DB.Create(enrollment).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "El aprendiz ya está matriculado en esta ficha")
		}
		log.Println("[ERROR] creando matrícula:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear la matrícula")
	}

	resp := dto.NewEnrollmentResponse(enrollment)
	resp.Apprentice = userDTO.NewUserLiteResponse(&apprentice)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Matrícula creada correctamente", resp)
}

// GET /api/i/enrollments
func (ec *EnrollmentController) List(c *fiber.Ctx) error {
	var q dto.ListEnrollmentsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Parámetros de búsqueda inválidos")
	}

	p := helper.ParseFiber(c, "enrolled_at", "desc", helper.DefaultOpts)
	orderClause, err := p.SafeOrderClause(enrollmentSortable, "enrolled_at")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "sort_by no es válido")
	}

	tx := ec.DB.Model(&model.EnrollmentModel{})
	if q.CohortID != nil {
		tx = tx.Where("enrollments_cohort_id = ?", *q.CohortID)
	}
	if q.ApprenticeID != nil {
		tx = tx.Where("enrollments_apprentice_id = ?", *q.ApprenticeID)
	}
	if q.Status != nil && strings.TrimSpace(*q.Status) != "" {
		status := model.EnrollmentStatus(strings.ToUpper(strings.TrimSpace(*q.Status)))
		if !status.IsValid() {
			return helper.Error(c, fiber.StatusBadRequest, "Estado de matrícula no reconocido")
		}
		tx = tx.Where("enrollments_status = ?", status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Println("[ERROR] contando matrículas:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo listar las matrículas")
	}

	var enrollments []model.EnrollmentModel
	if err := tx.Order(strings.TrimPrefix(orderClause, "ORDER BY ")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&enrollments).Error; err != nil {
		log.Println("[ERROR] listando matrículas:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo listar las matrículas")
	}

	items := dto.NewEnrollmentResponses(enrollments)
	ec.attachApprentices(enrollments, items)

	return helper.Success(c, "Matrículas obtenidas", fiber.Map{
		"items":      items,
		"pagination": helper.BuildMeta(total, p),
	})
}

// GET /api/u/enrollments/mine
func (ec *EnrollmentController) MyEnrollments(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var enrollments []model.EnrollmentModel
	if err := ec.DB.
		Where("enrollments_apprentice_id = ?", userID).
		Order("enrollments_enrolled_at DESC").
		Find(&enrollments).Error; err != nil {
		log.Println("[ERROR] listando matrículas propias:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo listar tus matrículas")
	}

	return helper.Success(c, "Matrículas obtenidas", fiber.Map{
		"items": dto.NewEnrollmentResponses(enrollments),
		"total": len(enrollments),
	})
}

// PATCH /api/a/enrollments/:id/status
func (ec *EnrollmentController) ChangeStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de matrícula inválido")
	}

	var req dto.ChangeEnrollmentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var enrollment model.EnrollmentModel
	if err := ec.DB.First(&enrollment, "enrollments_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Matrícula no encontrada")
	}

	enrollment.EnrollmentsStatus = model.EnrollmentStatus(req.EnrollmentsStatus)
	if err := ec.DB.Model(&enrollment).
		UpdateColumns(map[string]interface{}{
			"enrollments_status":     enrollment.EnrollmentsStatus,
			"enrollments_updated_at": time.Now(),
		}).Error; err != nil {
		log.Println("[ERROR] cambiando estado de matrícula:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo cambiar el estado de la matrícula")
	}

	return helper.Success(c, "Estado de matrícula actualizado", dto.NewEnrollmentResponse(&enrollment))
}

// POST /api/a/enrollments/:id/photo
func (ec *EnrollmentController) UploadPhoto(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de matrícula inválido")
	}

	fh, err := c.FormFile("photo")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Debe adjuntar una imagen en el campo 'photo'")
	}

	var enrollment model.EnrollmentModel
	if err := ec.DB.First(&enrollment, "enrollments_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Matrícula no encontrada")
	}

	rel, err := helper.ProcessProfilePhoto("aprendices", fh)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	oldPhoto := enrollment.EnrollmentsPhotoURL
	if err := ec.DB.Model(&enrollment).UpdateColumns(map[string]interface{}{
		"enrollments_photo_url":  rel,
		"enrollments_updated_at": time.Now(),
	}).Error; err != nil {
		_ = helper.RemoveBlob(rel)
		log.Println("[ERROR] guardando foto de matrícula:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo guardar la foto")
	}
	if oldPhoto != nil {
		_ = helper.RemoveBlob(*oldPhoto)
	}

	enrollment.EnrollmentsPhotoURL = &rel
	return helper.Success(c, "Foto de matrícula actualizada", dto.NewEnrollmentResponse(&enrollment))
}

// Completa el bloque apprentice de cada item con una sola consulta de usuarios.
func (ec *EnrollmentController) attachApprentices(enrollments []model.EnrollmentModel, items []dto.EnrollmentResponse) {
	if len(enrollments) == 0 {
		return
	}
	ids := make([]uuid.UUID, 0, len(enrollments))
	for i := range enrollments {
		ids = append(ids, enrollments[i].EnrollmentsApprenticeID)
	}

	var users []userModel.UserModel
	if err := ec.DB.Where("users_id IN ?", ids).Find(&users).Error; err != nil {
		log.Println("[ERROR] resolviendo aprendices de matrículas:", err)
		return
	}
	byID := make(map[uuid.UUID]*userModel.UserModel, len(users))
	for i := range users {
		byID[users[i].UsersID] = &users[i]
	}
	for i := range items {
		if u, ok := byID[items[i].EnrollmentsApprenticeID]; ok {
			items[i].Apprentice = userDTO.NewUserLiteResponse(u)
		}
	}
}
