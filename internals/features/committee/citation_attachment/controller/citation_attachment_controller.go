package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"akademiku_backend/internals/constants"
	citationModel "akademiku_backend/internals/features/committee/citation/model"
	model "akademiku_backend/internals/features/committee/citation_attachment/model"
	helper "akademiku_backend/internals/helpers"
)

const attachmentMaxBytes = 10 * 1024 * 1024

type CitationAttachmentController struct {
	DB *gorm.DB
}

func NewCitationAttachmentController(db *gorm.DB) *CitationAttachmentController {
	return &CitationAttachmentController{DB: db}
}

// POST /api/i/citations/:citation_id/attachments
// Multipart con el campo 'file'; tope de 10MB por archivo.
func (ac *CitationAttachmentController) Upload(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	citation, err := ac.loadCitation(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "El campo de archivo 'file' es obligatorio")
	}

	rel, err := helper.SaveMultipartBlob("citations", fh, attachmentMaxBytes)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	attachment := model.CitationAttachmentModel{
		CitationAttachmentsCitationID:  citation.CommitteeCitationsID,
		CitationAttachmentsUploaderID:  userID,
		CitationAttachmentsFileName:    fh.Filename,
		CitationAttachmentsFilePath:    rel,
		CitationAttachmentsContentType: fh.Header.Get("Content-Type"),
		CitationAttachmentsSizeBytes:   fh.Size,
	}
	if err := ac.DB.Create(&attachment).Error; err != nil {
		_ = helper.RemoveBlob(rel)
		log.Println("[ERROR] guardando adjunto de citación:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo guardar el adjunto")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Adjunto guardado", attachment)
}

// GET /api/i/citations/:citation_id/attachments
func (ac *CitationAttachmentController) ListByCitation(c *fiber.Ctx) error {
	citation, err := ac.loadCitation(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var attachments []model.CitationAttachmentModel
	if err := ac.DB.
		Where("citation_attachments_citation_id = ?", citation.CommitteeCitationsID).
		Order("citation_attachments_uploaded_at ASC").
		Find(&attachments).Error; err != nil {
		log.Println("[ERROR] listando adjuntos de citación:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo listar los adjuntos")
	}

	return helper.Success(c, "Adjuntos obtenidos", fiber.Map{
		"citation_id": citation.CommitteeCitationsID,
		"items":       attachments,
		"total":       len(attachments),
	})
}

// DELETE /api/i/citation-attachments/:id
// Solo quien lo subió o un administrador.
func (ac *CitationAttachmentController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	role, err := helper.GetUserRoleFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de adjunto inválido")
	}

	var attachment model.CitationAttachmentModel
	if err := ac.DB.First(&attachment, "citation_attachments_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Adjunto no encontrado")
	}
	if attachment.CitationAttachmentsUploaderID != userID && role != constants.RoleAdministrator {
		return helper.Error(c, fiber.StatusForbidden, "Solo quien subió el adjunto o un administrador puede eliminarlo")
	}

	if err := ac.DB.Delete(&attachment).Error; err != nil {
		log.Println("[ERROR] eliminando adjunto de citación:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar el adjunto")
	}
	if err := helper.RemoveBlob(attachment.CitationAttachmentsFilePath); err != nil {
		log.Println("[WARN] limpiando blob del adjunto:", err)
	}
	return helper.Success(c, "Adjunto eliminado", fiber.Map{
		"citation_attachments_id": attachment.CitationAttachmentsID,
	})
}

// loadCitation aplica el mismo alcance que el CRUD de citaciones: un
// instructor solo alcanza las que reportó.
func (ac *CitationAttachmentController) loadCitation(c *fiber.Ctx) (*citationModel.CitationModel, error) {
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
	if err := ac.DB.First(&citation, "committee_citations_id = ?", citationID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Citación no encontrada")
	}
	if role == constants.RoleInstructor && citation.CommitteeCitationsReporterID != userID {
		return nil, fiber.NewError(fiber.StatusForbidden, "Esta citación fue reportada por otro instructor")
	}
	return &citation, nil
}
