package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	activityModel "akademiku_backend/internals/features/activities/activity/model"
	model "akademiku_backend/internals/features/activities/grade/model"
	submissionModel "akademiku_backend/internals/features/activities/submission/model"
	notifModel "akademiku_backend/internals/features/notifications/notification/model"
	notifService "akademiku_backend/internals/features/notifications/service"
)

var ErrSubmissionNotGradable = errors.New("la entrega aún no fue enviada, no se puede calificar")

type GradeInput struct {
	GraderID        uuid.UUID
	RawScore        float64
	Feedback        string
	NeedsCorrection bool
}

// GradeSubmission califica (o recalifica) una entrega. El cálculo parte
// siempre del puntaje bruto recibido, nunca del guardado: recalificar con la
// misma nota produce el mismo resultado aunque haya una penalización previa.
// La calificación y el estado de la entrega se guardan en la misma
// transacción; la notificación va después y su fallo no revierte nada.
func GradeSubmission(db *gorm.DB, activity *activityModel.ActivityModel, submission *submissionModel.SubmissionModel, in GradeInput) (*model.GradeModel, error) {
	if !submission.SubmissionsState.Gradable() {
		return nil, ErrSubmissionNotGradable
	}

	result, err := model.ComputeGrade(
		in.RawScore,
		activity.ActivitiesMaxScore,
		submission.SubmissionsIsLate,
		activity.ActivitiesLatePenaltyPercent,
	)
	if err != nil {
		return nil, err
	}

	var grade model.GradeModel
	err = db.Transaction(func(tx *gorm.DB) error {
		// Recalificación: se reutiliza la fila existente de la entrega.
		err := tx.First(&grade, "grades_submission_id = ?", submission.SubmissionsID).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			grade = model.GradeModel{GradesSubmissionID: submission.SubmissionsID}
		}

		grade.GradesGraderID = in.GraderID
		grade.GradesFeedback = in.Feedback
		grade.GradesNeedsCorrection = in.NeedsCorrection
		grade.GradesGradedAt = time.Now()
		grade.ApplyResult(result, activity.ActivitiesMaxScore)

		if err := tx.Save(&grade).Error; err != nil {
			return err
		}

		newState := submissionModel.SubmissionStateCalificada
		if in.NeedsCorrection {
			newState = submissionModel.SubmissionStateDevuelta
		}
		if err := tx.Model(submission).
			UpdateColumn("submissions_state", newState).Error; err != nil {
			return err
		}
		submission.SubmissionsState = newState
		return nil
	})
	if err != nil {
		return nil, err
	}

	notifyGraded(db, activity, submission, &grade)
	return &grade, nil
}

func notifyGraded(db *gorm.DB, activity *activityModel.ActivityModel, submission *submissionModel.SubmissionModel, grade *model.GradeModel) {
	gradeID := grade.GradesID
	_, err := notifService.Send(db, notifService.SendInput{
		RecipientID: submission.SubmissionsApprenticeID,
		TypeName:    notifModel.TypeActividadValorada,
		Title:       "Actividad calificada",
		Message: fmt.Sprintf("Tu entrega de %q fue calificada: %.2f/%.2f (%s).",
			activity.ActivitiesTitle, grade.GradesRawScore, grade.GradesMaxScore, grade.GradesLetter),
		RelatedKind: "grade",
		RelatedID:   &gradeID,
		Metadata: map[string]interface{}{
			"activity_id": activity.ActivitiesID,
			"percentage":  grade.GradesPercentage,
			"passed":      grade.GradesPassed,
		},
	})
	if err != nil && !errors.Is(err, notifService.ErrNotificationBlocked) {
		log.Println("[WARN] notificación de calificación falló:", err)
	}
}

// ApprenticeAverage promedia los porcentajes de las calificaciones del
// aprendiz dentro de una ficha. Devuelve el promedio y cuántas notas lo
// componen; sin notas, ambos quedan en cero.
func ApprenticeAverage(db *gorm.DB, apprenticeID, cohortID uuid.UUID) (float64, int64, error) {
	type row struct {
		Avg   float64
		Total int64
	}
	var r row
	err := db.Model(&model.GradeModel{}).
		Select("COALESCE(AVG(grades.grades_percentage), 0) AS avg, COUNT(*) AS total").
		Joins("JOIN submissions ON submissions.submissions_id = grades.grades_submission_id AND submissions.submissions_deleted_at IS NULL").
		Joins("JOIN activities ON activities.activities_id = submissions.submissions_activity_id AND activities.activities_deleted_at IS NULL").
		Where("submissions.submissions_apprentice_id = ?", apprenticeID).
		Where("activities.activities_cohort_id = ?", cohortID).
		Scan(&r).Error
	if err != nil {
		return 0, 0, err
	}
	return r.Avg, r.Total, nil
}
