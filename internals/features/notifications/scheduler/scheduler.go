package scheduler

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"akademiku_backend/internals/configs"
	enrollmentModel "akademiku_backend/internals/features/academics/enrollment/model"
	activityModel "akademiku_backend/internals/features/activities/activity/model"
	citationModel "akademiku_backend/internals/features/committee/citation/model"
	notifModel "akademiku_backend/internals/features/notifications/notification/model"
	notifService "akademiku_backend/internals/features/notifications/service"
)

// Trabajos periódicos de notificación: recordatorios de actividades y
// citaciones, alerta de bajo rendimiento y purga de notificaciones leídas.
// Se desactivan con NOTIF_SCHEDULER_ENABLED=false.
func StartNotificationScheduler(db *gorm.DB) {
	if v := configs.GetEnv("NOTIF_SCHEDULER_ENABLED"); v == "false" {
		log.Println("[SCHEDULER] Notificaciones periódicas desactivadas por entorno")
		return
	}

	go func() {
		interval := 24 * time.Hour
		if v := configs.GetEnv("NOTIF_SCHEDULER_INTERVAL_HOURS"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				interval = time.Duration(n) * time.Hour
			}
		}

		for {
			log.Println("[SCHEDULER] Ejecutando trabajos de notificación...")
			remindUpcomingActivities(db)
			remindNotifiedCitations(db)
			alertLowPerformance(db)
			cleanupReadNotifications(db)
			time.Sleep(interval)
		}
	}()
}

// Recordatorio a aprendices con actividades publicadas que vencen en los
// próximos dos días y todavía sin entrega enviada. El antirrebote por
// (aprendiz, actividad) evita repetir el aviso dentro de la misma ventana.
func remindUpcomingActivities(db *gorm.DB) {
	now := time.Now()

	var activities []activityModel.ActivityModel
	err := db.
		Where("activities_state IN ?", []activityModel.ActivityState{
			activityModel.ActivityStatePublicada, activityModel.ActivityStateEnProgreso,
		}).
		Where("activities_due_date BETWEEN ? AND ?", now, now.AddDate(0, 0, 2)).
		Find(&activities).Error
	if err != nil {
		log.Println("[SCHEDULER ERROR] actividades por vencer:", err)
		return
	}

	for i := range activities {
		activity := &activities[i]

		var apprenticeIDs []uuid.UUID
		err := db.Model(&enrollmentModel.EnrollmentModel{}).
			Where("enrollments_cohort_id = ?", activity.ActivitiesCohortID).
			Where("enrollments_status = ?", enrollmentModel.EnrollmentStatusActivo).
			Where(`NOT EXISTS (
				SELECT 1 FROM submissions s
				WHERE s.submissions_activity_id = ?
				  AND s.submissions_apprentice_id = enrollments.enrollments_apprentice_id
				  AND s.submissions_state <> 'BORRADOR'
				  AND s.submissions_deleted_at IS NULL
			)`, activity.ActivitiesID).
			Pluck("enrollments_apprentice_id", &apprenticeIDs).Error
		if err != nil {
			log.Println("[SCHEDULER ERROR] aprendices sin entrega:", err)
			continue
		}

		activityID := activity.ActivitiesID
		for _, apprenticeID := range apprenticeIDs {
			sent, err := notifService.WasSentSince(db, apprenticeID, notifModel.TypeRecordatorio,
				"activity", activityID, now.AddDate(0, 0, -2))
			if err != nil || sent {
				continue
			}
			_, err = notifService.Send(db, notifService.SendInput{
				RecipientID: apprenticeID,
				TypeName:    notifModel.TypeRecordatorio,
				Title:       "Actividad por vencer",
				Message: fmt.Sprintf("La actividad %q vence el %s y aún no registras entrega.",
					activity.ActivitiesTitle, activity.ActivitiesDueDate.Format("2006-01-02 15:04")),
				RelatedKind: "activity",
				RelatedID:   &activityID,
			})
			if err != nil && !errors.Is(err, notifService.ErrNotificationBlocked) {
				log.Println("[SCHEDULER ERROR] recordatorio de actividad:", err)
			}
		}
	}
}

// Recordatorio forzado de citaciones ya notificadas que ocurren en los
// próximos tres días.
func remindNotifiedCitations(db *gorm.DB) {
	now := time.Now()

	var citations []citationModel.CitationModel
	err := db.
		Where("committee_citations_status = ?", citationModel.CitationStatusNotificada).
		Where("committee_citations_datetime BETWEEN ? AND ?", now, now.AddDate(0, 0, 3)).
		Find(&citations).Error
	if err != nil {
		log.Println("[SCHEDULER ERROR] citaciones próximas:", err)
		return
	}

	for i := range citations {
		citation := &citations[i]
		citationID := citation.CommitteeCitationsID

		sent, err := notifService.WasSentSince(db, citation.CommitteeCitationsApprenticeID,
			notifModel.TypeCitacionComite, "committee_citation_reminder", citationID, now.AddDate(0, 0, -3))
		if err != nil || sent {
			continue
		}
		_, err = notifService.Send(db, notifService.SendInput{
			RecipientID: citation.CommitteeCitationsApprenticeID,
			TypeName:    notifModel.TypeCitacionComite,
			Title:       "Recordatorio de citación a comité",
			Message: fmt.Sprintf("Tu citación %s es el %s en %s.",
				citation.CommitteeCitationsNumber,
				citation.CommitteeCitationsDatetime.Format("2006-01-02 15:04"),
				citation.CommitteeCitationsPlace),
			RelatedKind: "committee_citation_reminder",
			RelatedID:   &citationID,
			Force:       true,
		})
		if err != nil {
			log.Println("[SCHEDULER ERROR] recordatorio de citación:", err)
		}
	}
}

// Alerta de bajo rendimiento: promedio de calificaciones de los últimos 30
// días por debajo de 60 con al menos tres notas. Antirrebote de siete días
// por aprendiz.
func alertLowPerformance(db *gorm.DB) {
	now := time.Now()

	type row struct {
		ApprenticeID uuid.UUID
		Avg          float64
		Total        int64
	}
	var rows []row
	err := db.Table("grades").
		Select(`submissions.submissions_apprentice_id AS apprentice_id,
			AVG(grades.grades_percentage) AS avg,
			COUNT(*) AS total`).
		Joins("JOIN submissions ON submissions.submissions_id = grades.grades_submission_id AND submissions.submissions_deleted_at IS NULL").
		Where("grades.grades_graded_at >= ?", now.AddDate(0, 0, -30)).
		Where("grades.grades_deleted_at IS NULL").
		Group("submissions.submissions_apprentice_id").
		Having("COUNT(*) >= 3 AND AVG(grades.grades_percentage) < 60").
		Scan(&rows).Error
	if err != nil {
		log.Println("[SCHEDULER ERROR] promedio de calificaciones:", err)
		return
	}

	for _, r := range rows {
		sent, err := notifService.WasSentSince(db, r.ApprenticeID, notifModel.TypeBajoRendimiento,
			"apprentice_performance", r.ApprenticeID, now.AddDate(0, 0, -7))
		if err != nil || sent {
			continue
		}
		apprenticeID := r.ApprenticeID
		_, err = notifService.Send(db, notifService.SendInput{
			RecipientID: apprenticeID,
			TypeName:    notifModel.TypeBajoRendimiento,
			Title:       "Alerta de rendimiento académico",
			Message: fmt.Sprintf("Tu promedio de los últimos 30 días es %.2f%%, por debajo del umbral de aprobación. Acércate a tu instructor.",
				r.Avg),
			RelatedKind: "apprentice_performance",
			RelatedID:   &apprenticeID,
			Metadata: map[string]interface{}{
				"average_percentage": r.Avg,
				"graded_count":       r.Total,
			},
		})
		if err != nil && !errors.Is(err, notifService.ErrNotificationBlocked) {
			log.Println("[SCHEDULER ERROR] alerta de rendimiento:", err)
		}
	}
}

// Purga de notificaciones leídas con más de NOTIF_RETENTION_DAYS días
// (30 por defecto), junto con su historial de entrega.
func cleanupReadNotifications(db *gorm.DB) {
	retention := 30
	if v := configs.GetEnv("NOTIF_RETENTION_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			retention = n
		}
	}
	cutoff := time.Now().AddDate(0, 0, -retention)

	var ids []uuid.UUID
	err := db.Model(&notifModel.NotificationModel{}).
		Where("notifications_is_read = TRUE").
		Where("notifications_created_at < ?", cutoff).
		Pluck("notifications_id", &ids).Error
	if err != nil {
		log.Println("[SCHEDULER ERROR] buscando notificaciones viejas:", err)
		return
	}
	if len(ids) == 0 {
		return
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("notification_history_notification_id IN ?", ids).
			Delete(&notifModel.NotificationHistoryModel{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().
			Where("notifications_id IN ?", ids).
			Delete(&notifModel.NotificationModel{}).Error
	})
	if err != nil {
		log.Println("[SCHEDULER ERROR] purgando notificaciones:", err)
		return
	}
	log.Printf("[SCHEDULER] %d notificaciones leídas purgadas", len(ids))
}
