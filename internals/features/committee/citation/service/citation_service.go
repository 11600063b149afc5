package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	model "akademiku_backend/internals/features/committee/citation/model"
	notifModel "akademiku_backend/internals/features/notifications/notification/model"
	notifService "akademiku_backend/internals/features/notifications/service"
	helper "akademiku_backend/internals/helpers"
)

const numberingMaxAttempts = 3

var ErrNumberingExhausted = errors.New("no se pudo asignar el consecutivo de la citación tras varios intentos")

// CreateWithNumber asigna el consecutivo CIT-AAAA-NNNN y crea la citación.
// El consecutivo sale de contar las citaciones del año en curso; si dos
// creaciones concurrentes chocan en el índice único del número, se recuenta
// y se reintenta. Las citaciones borradas conservan su número, por eso el
// conteo va sin filtro de soft delete.
func CreateWithNumber(db *gorm.DB, citation *model.CitationModel) error {
	year := time.Now().Year()
	prefix := fmt.Sprintf("CIT-%d-%%", year)

	for attempt := 0; attempt < numberingMaxAttempts; attempt++ {
		var count int64
		if err := db.Unscoped().Model(&model.CitationModel{}).
			Where("committee_citations_number LIKE ?", prefix).
			Count(&count).Error; err != nil {
			return err
		}

		citation.CommitteeCitationsNumber = model.FormatNumber(year, int(count)+1)
		err := db.Create(citation).Error
		if err == nil {
			return nil
		}
		if !helper.IsUniqueViolation(err) {
			return err
		}
		// Otra creación ganó este número; recontar.
	}
	return ErrNumberingExhausted
}

// NotifyApprentice envía la notificación CITACION_COMITE de forma FORZADA:
// una citación a comité no respeta silencios ni preferencias del aprendiz.
func NotifyApprentice(db *gorm.DB, citation *model.CitationModel, title string) {
	citationID := citation.CommitteeCitationsID
	_, err := notifService.Send(db, notifService.SendInput{
		RecipientID: citation.CommitteeCitationsApprenticeID,
		TypeName:    notifModel.TypeCitacionComite,
		Title:       title,
		Message: fmt.Sprintf("Citación %s al comité: %s el %s en %s.",
			citation.CommitteeCitationsNumber,
			citation.CommitteeCitationsReason,
			citation.CommitteeCitationsDatetime.Format("2006-01-02 15:04"),
			citation.CommitteeCitationsPlace),
		RelatedKind: "committee_citation",
		RelatedID:   &citationID,
		Metadata: map[string]interface{}{
			"number": citation.CommitteeCitationsNumber,
			"status": citation.CommitteeCitationsStatus,
		},
		Force: true,
	})
	if err != nil {
		log.Println("[WARN] notificación de citación falló:", err)
	}
}
