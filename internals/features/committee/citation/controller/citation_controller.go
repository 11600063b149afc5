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
	enrollmentService "akademiku_backend/internals/features/academics/enrollment/service"
	dto "akademiku_backend/internals/features/committee/citation/dto"
	model "akademiku_backend/internals/features/committee/citation/model"
	citationService "akademiku_backend/internals/features/committee/citation/service"
	userModel "akademiku_backend/internals/features/users/user/model"
	helper "akademiku_backend/internals/helpers"
)

var validate = validator.New()

type CitationController struct {
	DB *gorm.DB
}

func NewCitationController(db *gorm.DB) *CitationController {
	return &CitationController{DB: db}
}

var citationSortable = map[string]string{
	"datetime":   "committee_citations_datetime",
	"number":     "committee_citations_number",
	"status":     "committee_citations_status",
	"created_at": "committee_citations_created_at",
}

// POST /api/i/citations
// La creación asigna el consecutivo del año y avisa al aprendiz de forma
// forzada: una citación a comité no respeta preferencias de notificación.
func (cc *CitationController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateCitationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !req.CommitteeCitationsDatetime.After(time.Now()) {
		return helper.Error(c, fiber.StatusUnprocessableEntity, "La fecha de la citación debe estar en el futuro")
	}

	var apprentice userModel.UserModel
	if err := cc.DB.First(&apprentice, "users_id = ?", req.CommitteeCitationsApprenticeID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "El aprendiz indicado no existe")
	}
	if apprentice.UsersRole != constants.RoleApprentice {
		return helper.Error(c, fiber.StatusUnprocessableEntity, "Solo se puede citar a usuarios con rol de aprendiz")
	}
	enrolled, err := enrollmentService.HasActiveEnrollment(cc.DB, apprentice.UsersID, req.CommitteeCitationsCohortID)
	if err != nil {
		log.Println("[ERROR] verificando matrícula del aprendiz:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo verificar la matrícula del aprendiz")
	}
	if !enrolled {
		return helper.Error(c, fiber.StatusUnprocessableEntity, "El aprendiz no tiene matrícula activa en esa ficha")
	}

	citation := req.ToModel(userID)
	if err := citationService.CreateWithNumber(cc.DB, citation); err != nil {
		if errors.Is(err, citationService.ErrNumberingExhausted) {
			return helper.Error(c, fiber.StatusConflict, "No se pudo asignar el consecutivo, intenta de nuevo")
		}
		log.Println("[ERROR] creando citación:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear la citación")
	}

	citationService.NotifyApprentice(cc.DB, citation, "Citación a comité")

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Citación creada",
		dto.NewCitationResponse(citation, apprentice.FullName()))
}

// GET /api/i/citations
// Los instructores solo ven las citaciones que reportaron.
func (cc *CitationController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	role, err := helper.GetUserRoleFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	tx := cc.DB.Model(&model.CitationModel{})
	if role == constants.RoleInstructor {
		tx = tx.Where("committee_citations_reporter_id = ?", userID)
	}
	return cc.listWith(c, tx)
}

// GET /api/i/citations/my-reported
func (cc *CitationController) MyReported(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	tx := cc.DB.Model(&model.CitationModel{}).
		Where("committee_citations_reporter_id = ?", userID)
	return cc.listWith(c, tx)
}

// GET /api/i/citations/pending
func (cc *CitationController) Pending(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	role, err := helper.GetUserRoleFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	tx := cc.DB.Model(&model.CitationModel{}).
		Where("committee_citations_status = ?", model.CitationStatusPendiente)
	if role == constants.RoleInstructor {
		tx = tx.Where("committee_citations_reporter_id = ?", userID)
	}
	return cc.listWith(c, tx)
}

// GET /api/i/citations/overdue
// Citaciones cuya fecha ya pasó y siguen sin realizarse ni cancelarse.
func (cc *CitationController) Overdue(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	role, err := helper.GetUserRoleFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	tx := cc.DB.Model(&model.CitationModel{}).
		Where("committee_citations_datetime < ?", time.Now()).
		Where("committee_citations_status IN ?", []model.CitationStatus{
			model.CitationStatusPendiente, model.CitationStatusNotificada,
		})
	if role == constants.RoleInstructor {
		tx = tx.Where("committee_citations_reporter_id = ?", userID)
	}
	return cc.listWith(c, tx)
}

// GET /api/i/citations/stats
// Conteos del año en curso por estado y por motivo.
func (cc *CitationController) Stats(c *fiber.Ctx) error {
	year := time.Now().Year()
	start := time.Date(year, 1, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(1, 0, 0)

	base := cc.DB.Model(&model.CitationModel{}).
		Where("committee_citations_created_at >= ? AND committee_citations_created_at < ?", start, end)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		log.Println("[ERROR] contando citaciones:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo calcular las estadísticas")
	}

	type bucket struct {
		Key   string
		Total int64
	}

	var byStatus []bucket
	if err := base.Session(&gorm.Session{}).
		Select("committee_citations_status AS key, COUNT(*) AS total").
		Group("committee_citations_status").
		Scan(&byStatus).Error; err != nil {
		log.Println("[ERROR] agrupando citaciones por estado:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo calcular las estadísticas")
	}

	var byReason []bucket
	if err := base.Session(&gorm.Session{}).
		Select("committee_citations_reason AS key, COUNT(*) AS total").
		Group("committee_citations_reason").
		Scan(&byReason).Error; err != nil {
		log.Println("[ERROR] agrupando citaciones por motivo:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo calcular las estadísticas")
	}

	stats := dto.CitationStatsResponse{
		Year:     year,
		Total:    total,
		ByStatus: make(map[string]int64, len(byStatus)),
		ByReason: make(map[string]int64, len(byReason)),
	}
	for _, b := range byStatus {
		stats.ByStatus[b.Key] = b.Total
	}
	for _, b := range byReason {
		stats.ByReason[b.Key] = b.Total
	}
	return helper.Success(c, "Estadísticas de citaciones obtenidas", stats)
}

// GET /api/i/citations/:id
func (cc *CitationController) GetByID(c *fiber.Ctx) error {
	citation, err := cc.findOwned(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Citación obtenida",
		dto.NewCitationResponse(citation, cc.apprenticeName(citation.CommitteeCitationsApprenticeID)))
}

// PUT /api/i/citations/:id
func (cc *CitationController) Update(c *fiber.Ctx) error {
	citation, err := cc.findOwned(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if citation.CommitteeCitationsStatus.IsTerminal() {
		return helper.Error(c, fiber.StatusUnprocessableEntity,
			"Una citación "+string(citation.CommitteeCitationsStatus)+" ya no se puede editar")
	}

	var req dto.UpdateCitationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.CommitteeCitationsDatetime != nil && !req.CommitteeCitationsDatetime.After(time.Now()) {
		return helper.Error(c, fiber.StatusUnprocessableEntity, "La nueva fecha de la citación debe estar en el futuro")
	}

	req.ApplyToModel(citation)
	if err := cc.DB.Save(citation).Error; err != nil {
		log.Println("[ERROR] actualizando citación:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar la citación")
	}
	return helper.Success(c, "Citación actualizada",
		dto.NewCitationResponse(citation, cc.apprenticeName(citation.CommitteeCitationsApprenticeID)))
}

// PATCH /api/i/citations/:id/status
// Único escritor del estado. Pasar a NOTIFICADA dispara el aviso forzado al
// aprendiz; las marcas de tiempo se sellan una sola vez.
func (cc *CitationController) ChangeStatus(c *fiber.Ctx) error {
	citation, err := cc.findOwned(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.ChangeCitationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	to := model.CitationStatus(req.CommitteeCitationsStatus)
	if err := citation.Transition(to, time.Now()); err != nil {
		return helper.Error(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if req.CommitteeCitationsResolution != nil {
		citation.CommitteeCitationsResolution = req.CommitteeCitationsResolution
	}

	if err := cc.DB.Save(citation).Error; err != nil {
		log.Println("[ERROR] cambiando estado de citación:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo cambiar el estado de la citación")
	}

	if to == model.CitationStatusNotificada {
		citationService.NotifyApprentice(cc.DB, citation, "Citación a comité notificada")
	}
	return helper.Success(c, "Estado de la citación actualizado",
		dto.NewCitationResponse(citation, cc.apprenticeName(citation.CommitteeCitationsApprenticeID)))
}

// DELETE /api/i/citations/:id
func (cc *CitationController) Delete(c *fiber.Ctx) error {
	citation, err := cc.findOwned(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := cc.DB.Delete(citation).Error; err != nil {
		log.Println("[ERROR] eliminando citación:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar la citación")
	}
	return helper.Success(c, "Citación eliminada", fiber.Map{
		"committee_citations_id": citation.CommitteeCitationsID,
	})
}

/* ===================== autoservicio del aprendiz ===================== */

// GET /api/u/citations/mine
func (cc *CitationController) MyCitations(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	tx := cc.DB.Model(&model.CitationModel{}).
		Where("committee_citations_apprentice_id = ?", userID)
	return cc.listWith(c, tx)
}

// GET /api/u/citations/mine/pending
func (cc *CitationController) MyPending(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	tx := cc.DB.Model(&model.CitationModel{}).
		Where("committee_citations_apprentice_id = ?", userID).
		Where("committee_citations_status IN ?", []model.CitationStatus{
			model.CitationStatusPendiente, model.CitationStatusNotificada,
		})
	return cc.listWith(c, tx)
}

// GET /api/u/citations/mine/upcoming
// Citaciones del aprendiz en los próximos siete días.
func (cc *CitationController) MyUpcoming(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	now := time.Now()
	var citations []model.CitationModel
	err = cc.DB.
		Where("committee_citations_apprentice_id = ?", userID).
		Where("committee_citations_status IN ?", []model.CitationStatus{
			model.CitationStatusPendiente, model.CitationStatusNotificada,
		}).
		Where("committee_citations_datetime BETWEEN ? AND ?", now, now.AddDate(0, 0, 7)).
		Order("committee_citations_datetime ASC").
		Find(&citations).Error
	if err != nil {
		log.Println("[ERROR] listando citaciones próximas:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo listar tus citaciones próximas")
	}

	return helper.Success(c, "Citaciones próximas obtenidas", fiber.Map{
		"items": dto.NewCitationResponses(citations, nil),
		"total": len(citations),
	})
}

/* ===================== helpers ===================== */

func (cc *CitationController) listWith(c *fiber.Ctx, tx *gorm.DB) error {
	var q dto.ListCitationsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Parámetros de búsqueda inválidos")
	}

	p := helper.ParseFiber(c, "datetime", "desc", helper.DefaultOpts)
	orderClause, err := p.SafeOrderClause(citationSortable, "datetime")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "sort_by no es válido")
	}

	if q.Status != nil {
		tx = tx.Where("committee_citations_status = ?", *q.Status)
	}
	if q.Reason != nil {
		tx = tx.Where("committee_citations_reason = ?", *q.Reason)
	}
	if q.ApprenticeID != nil {
		tx = tx.Where("committee_citations_apprentice_id = ?", *q.ApprenticeID)
	}
	if q.CohortID != nil {
		tx = tx.Where("committee_citations_cohort_id = ?", *q.CohortID)
	}
	if q.DateFrom != nil {
		tx = tx.Where("committee_citations_datetime >= ?", *q.DateFrom)
	}
	if q.DateTo != nil {
		tx = tx.Where("committee_citations_datetime <= ?", *q.DateTo)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Println("[ERROR] contando citaciones:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo listar las citaciones")
	}

	var citations []model.CitationModel
	if err := tx.Order(strings.TrimPrefix(orderClause, "ORDER BY ")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&citations).Error; err != nil {
		log.Println("[ERROR] listando citaciones:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo listar las citaciones")
	}

	return helper.Success(c, "Citaciones obtenidas", fiber.Map{
		"items":      dto.NewCitationResponses(citations, cc.apprenticeNames(citations)),
		"pagination": helper.BuildMeta(total, p),
	})
}

func (cc *CitationController) findOwned(c *fiber.Ctx) (*model.CitationModel, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, err
	}
	role, err := helper.GetUserRoleFromToken(c)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID de citación inválido")
	}

	var citation model.CitationModel
	if err := cc.DB.First(&citation, "committee_citations_id = ?", id).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Citación no encontrada")
	}
	if role == constants.RoleInstructor && citation.CommitteeCitationsReporterID != userID {
		return nil, fiber.NewError(fiber.StatusForbidden, "Esta citación fue reportada por otro instructor")
	}
	return &citation, nil
}

func (cc *CitationController) apprenticeName(id uuid.UUID) string {
	var u userModel.UserModel
	if err := cc.DB.First(&u, "users_id = ?", id).Error; err != nil {
		return ""
	}
	return u.FullName()
}

func (cc *CitationController) apprenticeNames(citations []model.CitationModel) map[uuid.UUID]string {
	names := make(map[uuid.UUID]string, len(citations))
	if len(citations) == 0 {
		return names
	}
	ids := make([]uuid.UUID, 0, len(citations))
	for _, cit := range citations {
		ids = append(ids, cit.CommitteeCitationsApprenticeID)
	}
	var users []userModel.UserModel
	if err := cc.DB.Where("users_id IN ?", ids).Find(&users).Error; err != nil {
		log.Println("[WARN] resolviendo nombres de aprendices:", err)
		return names
	}
	for i := range users {
		names[users[i].UsersID] = users[i].FullName()
	}
	return names
}
