package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"akademiku_backend/internals/constants"
	citationModel "akademiku_backend/internals/features/committee/citation/model"
	dto "akademiku_backend/internals/features/committee/citation_followup/dto"
	model "akademiku_backend/internals/features/committee/citation_followup/model"
	helper "akademiku_backend/internals/helpers"
)

var validate = validator.New()

type CitationFollowupController struct {
	DB *gorm.DB
}

func NewCitationFollowupController(db *gorm.DB) *CitationFollowupController {
	return &CitationFollowupController{DB: db}
}

// POST /api/i/citations/:citation_id/followups
// Solo una citación REALIZADA acepta seguimientos.
func (fc *CitationFollowupController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	citation, err := fc.loadCitation(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if citation.CommitteeCitationsStatus != citationModel.CitationStatusRealizada {
		return helper.Error(c, fiber.StatusUnprocessableEntity,
			"Solo una citación realizada acepta seguimientos; está en estado "+string(citation.CommitteeCitationsStatus))
	}

	var req dto.CreateFollowupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	followup := req.ToModel(citation.CommitteeCitationsID, userID)
	if err := fc.DB.Create(followup).Error; err != nil {
		log.Println("[ERROR] creando seguimiento:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear el seguimiento")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Seguimiento creado", followup)
}

// GET /api/i/citations/:citation_id/followups
func (fc *CitationFollowupController) ListByCitation(c *fiber.Ctx) error {
	citation, err := fc.loadCitation(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var followups []model.CitationFollowupModel
	if err := fc.DB.
		Where("citation_followups_citation_id = ?", citation.CommitteeCitationsID).
		Order("citation_followups_date ASC").
		Find(&followups).Error; err != nil {
		log.Println("[ERROR] listando seguimientos:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo listar los seguimientos")
	}

	return helper.Success(c, "Seguimientos obtenidos", fiber.Map{
		"citation_id": citation.CommitteeCitationsID,
		"items":       followups,
		"total":       len(followups),
	})
}

// GET /api/i/followups/pending
// Seguimientos sin completar con fecha ya cumplida.
func (fc *CitationFollowupController) Pending(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	role, err := helper.GetUserRoleFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	tx := fc.DB.Model(&model.CitationFollowupModel{}).
		Where("citation_followups_completed = FALSE").
		Where("citation_followups_date <= ?", time.Now())
	if role == constants.RoleInstructor {
		tx = tx.Where("citation_followups_author_id = ?", userID)
	}

	var followups []model.CitationFollowupModel
	if err := tx.Order("citation_followups_date ASC").Find(&followups).Error; err != nil {
		log.Println("[ERROR] listando seguimientos pendientes:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo listar los seguimientos pendientes")
	}

	return helper.Success(c, "Seguimientos pendientes obtenidos", fiber.Map{
		"items": followups,
		"total": len(followups),
	})
}

// PUT /api/i/followups/:id
func (fc *CitationFollowupController) Update(c *fiber.Ctx) error {
	followup, err := fc.findOwned(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateFollowupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyToModel(followup)
	if err := fc.DB.Save(followup).Error; err != nil {
		log.Println("[ERROR] actualizando seguimiento:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar el seguimiento")
	}
	return helper.Success(c, "Seguimiento actualizado", followup)
}

// DELETE /api/i/followups/:id
func (fc *CitationFollowupController) Delete(c *fiber.Ctx) error {
	followup, err := fc.findOwned(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := fc.DB.Delete(followup).Error; err != nil {
		log.Println("[ERROR] eliminando seguimiento:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar el seguimiento")
	}
	return helper.Success(c, "Seguimiento eliminado", fiber.Map{
		"citation_followups_id": followup.CitationFollowupsID,
	})
}

/* ===================== helpers ===================== */

func (fc *CitationFollowupController) loadCitation(c *fiber.Ctx) (*citationModel.CitationModel, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, err
	}
	role, err := helper.GetUserRoleFromToken(c)
	if err != nil {
		return nil, err
	}
	citationID, err := uuid.Parse(c.Params("citation_id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID de citación inválido")
	}

	var citation citationModel.CitationModel
	if err := fc.DB.First(&citation, "committee_citations_id = ?", citationID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Citación no encontrada")
	}
	if role == constants.RoleInstructor && citation.CommitteeCitationsReporterID != userID {
		return nil, fiber.NewError(fiber.StatusForbidden, "Esta citación fue reportada por otro instructor")
	}
	return &citation, nil
}

func (fc *CitationFollowupController) findOwned(c *fiber.Ctx) (*model.CitationFollowupModel, error) {
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
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID de seguimiento inválido")
	}

	var followup model.CitationFollowupModel
	if err := fc.DB.First(&followup, "citation_followups_id = ?", id).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Seguimiento no encontrado")
	}
	if role == constants.RoleInstructor && followup.CitationFollowupsAuthorID != userID {
		return nil, fiber.NewError(fiber.StatusForbidden, "Este seguimiento pertenece a otro instructor")
	}
	return &followup, nil
}
