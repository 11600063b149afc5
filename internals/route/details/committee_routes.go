package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	citationRoute "akademiku_backend/internals/features/committee/citation/route"
	attachmentRoute "akademiku_backend/internals/features/committee/citation_attachment/route"
	followupRoute "akademiku_backend/internals/features/committee/citation_followup/route"
)

/* ===================== STAFF ===================== */
// Citaciones a comité con sus anexos y seguimientos.
func CommitteeStaffRoutes(r fiber.Router, db *gorm.DB) {
	citationRoute.CitationStaffRoutes(r, db)
	attachmentRoute.CitationAttachmentStaffRoutes(r, db)
	followupRoute.CitationFollowupStaffRoutes(r, db)
}

/* ===================== USER ===================== */
func CommitteeUserRoutes(r fiber.Router, db *gorm.DB) {
	citationRoute.CitationUserRoutes(r, db)
}
