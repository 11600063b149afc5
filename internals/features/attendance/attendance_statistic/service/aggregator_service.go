package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	recordModel "akademiku_backend/internals/features/attendance/attendance_record/model"
	model "akademiku_backend/internals/features/attendance/attendance_statistic/model"
	notifModel "akademiku_backend/internals/features/notifications/notification/model"
	notifService "akademiku_backend/internals/features/notifications/service"
)

// Umbrales de la alerta de inasistencia.
const (
	alertMinClasses    = 5
	alertMaxPercentage = 80.0
	alertCooldown      = 7 * 24 * time.Hour
)

type statusCounts struct {
	Total   int `gorm:"column:total"`
	Present int `gorm:"column:present_count"`
	Absent  int `gorm:"column:absent_count"`
	Excused int `gorm:"column:excused_count"`
	Late    int `gorm:"column:late_count"`
}

// countRecords recuenta TODOS los registros de la tripleta (aprendiz,
// resultado, ficha). El total incluye los SIN_REGISTRAR.
func countRecords(db *gorm.DB, apprenticeID, outcomeID, cohortID uuid.UUID) (statusCounts, error) {
	var counts statusCounts
	err := db.Model(&recordModel.AttendanceRecordModel{}).
		Select(`COUNT(*) AS total,
			COUNT(*) FILTER (WHERE attendance_records_status = ?) AS present_count,
			COUNT(*) FILTER (WHERE attendance_records_status = ?) AS absent_count,
			COUNT(*) FILTER (WHERE attendance_records_status = ?) AS excused_count,
			COUNT(*) FILTER (WHERE attendance_records_status = ?) AS late_count`,
			recordModel.AttendanceStatusPresente,
			recordModel.AttendanceStatusAusente,
			recordModel.AttendanceStatusJustificado,
			recordModel.AttendanceStatusTarde).
		Joins("JOIN roll_calls ON roll_calls.roll_calls_id = attendance_records.attendance_records_roll_call_id").
		Where("roll_calls.roll_calls_deleted_at IS NULL").
		Where("attendance_records.attendance_records_apprentice_id = ?", apprenticeID).
		Where("roll_calls.roll_calls_learning_outcome_id = ?", outcomeID).
		Where("roll_calls.roll_calls_cohort_id = ?", cohortID).
		Scan(&counts).Error
	return counts, err
}

// Recompute rehace la estadística de la tripleta desde cero: recuento
// completo, get-or-create de la fila y actualización. Es idempotente:
// con los mismos registros produce siempre la misma fila.
func Recompute(db *gorm.DB, apprenticeID, outcomeID, cohortID uuid.UUID) (*model.AttendanceStatisticModel, error) {
	counts, err := countRecords(db, apprenticeID, outcomeID, cohortID)
	if err != nil {
		return nil, fmt.Errorf("recontando registros de asistencia: %w", err)
	}

	stat, err := getOrCreateStatistic(db, apprenticeID, outcomeID, cohortID)
	if err != nil {
		return nil, err
	}

	stat.AttendanceStatisticsTotalClasses = counts.Total
	stat.AttendanceStatisticsPresentCount = counts.Present
	stat.AttendanceStatisticsAbsentCount = counts.Absent
	stat.AttendanceStatisticsExcusedCount = counts.Excused
	stat.AttendanceStatisticsLateCount = counts.Late
	stat.AttendanceStatisticsPercentage = model.ComputePercentage(
		counts.Present, counts.Excused, counts.Late, counts.Total)
	stat.AttendanceStatisticsComputedAt = time.Now()

	if err := db.Save(stat).Error; err != nil {
		return nil, fmt.Errorf("guardando estadística de asistencia: %w", err)
	}

	maybeSendAbsenceAlert(db, stat)
	return stat, nil
}

func getOrCreateStatistic(db *gorm.DB, apprenticeID, outcomeID, cohortID uuid.UUID) (*model.AttendanceStatisticModel, error) {
	var stat model.AttendanceStatisticModel
	err := db.
		Where("attendance_statistics_apprentice_id = ?", apprenticeID).
		Where("attendance_statistics_learning_outcome_id = ?", outcomeID).
		Where("attendance_statistics_cohort_id = ?", cohortID).
		First(&stat).Error
	if err == nil {
		return &stat, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fresh := &model.AttendanceStatisticModel{
		AttendanceStatisticsApprenticeID:      apprenticeID,
		AttendanceStatisticsLearningOutcomeID: outcomeID,
		AttendanceStatisticsCohortID:          cohortID,
	}
	if err := db.Create(fresh).Error; err != nil {
		// Otro request pudo crear la fila entre el First y el Create.
		if err2 := db.
			Where("attendance_statistics_apprentice_id = ?", apprenticeID).
			Where("attendance_statistics_learning_outcome_id = ?", outcomeID).
			Where("attendance_statistics_cohort_id = ?", cohortID).
			First(&stat).Error; err2 == nil {
			return &stat, nil
		}
		return nil, err
	}
	return fresh, nil
}

// maybeSendAbsenceAlert avisa al aprendiz cuando acumula suficientes clases
// con un porcentaje bajo. Antirrebote de una alerta por tripleta cada 7 días;
// un fallo del aviso nunca afecta al recómputo.
func maybeSendAbsenceAlert(db *gorm.DB, stat *model.AttendanceStatisticModel) {
	if stat.AttendanceStatisticsTotalClasses < alertMinClasses ||
		stat.AttendanceStatisticsPercentage >= alertMaxPercentage {
		return
	}

	already, err := notifService.WasSentSince(db,
		stat.AttendanceStatisticsApprenticeID,
		notifModel.TypeAltaInasistencia,
		"attendance_statistic", stat.AttendanceStatisticsID,
		time.Now().Add(-alertCooldown))
	if err != nil {
		log.Println("[WARN] consultando alertas previas de inasistencia:", err)
		return
	}
	if already {
		return
	}

	statID := stat.AttendanceStatisticsID
	_, err = notifService.Send(db, notifService.SendInput{
		RecipientID: stat.AttendanceStatisticsApprenticeID,
		TypeName:    notifModel.TypeAltaInasistencia,
		Title:       "Alerta por inasistencia",
		Message: fmt.Sprintf(
			"Tu asistencia está en %.2f%% tras %d clases. Por debajo del 80%% puedes ser citado a comité.",
			stat.AttendanceStatisticsPercentage, stat.AttendanceStatisticsTotalClasses),
		RelatedKind: "attendance_statistic",
		RelatedID:   &statID,
	})
	if err != nil && !errors.Is(err, notifService.ErrNotificationBlocked) {
		log.Println("[WARN] alerta de inasistencia no enviada:", err)
	}
}
