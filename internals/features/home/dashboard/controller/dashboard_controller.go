package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"akademiku_backend/internals/constants"
	cohortModel "akademiku_backend/internals/features/academics/cohort/model"
	enrollmentService "akademiku_backend/internals/features/academics/enrollment/service"
	assignmentService "akademiku_backend/internals/features/academics/instructor_assignment/service"
	activityModel "akademiku_backend/internals/features/activities/activity/model"
	submissionModel "akademiku_backend/internals/features/activities/submission/model"
	statisticModel "akademiku_backend/internals/features/attendance/attendance_statistic/model"
	rollCallModel "akademiku_backend/internals/features/attendance/roll_call/model"
	citationDTO "akademiku_backend/internals/features/committee/citation/dto"
	citationModel "akademiku_backend/internals/features/committee/citation/model"
	notifModel "akademiku_backend/internals/features/notifications/notification/model"
	userModel "akademiku_backend/internals/features/users/user/model"
	helper "akademiku_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GET /api/u/dashboard
// Resumen de inicio con la forma que pide el rol del token.
func (dc *DashboardController) Home(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	role, err := helper.GetUserRoleFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	switch role {
	case constants.RoleAdministrator:
		return dc.adminHome(c)
	case constants.RoleInstructor:
		return dc.instructorHome(c, userID)
	case constants.RoleApprentice:
		return dc.apprenticeHome(c, userID)
	}
	return helper.Error(c, fiber.StatusForbidden, "Rol del token no es válido")
}

type bucket struct {
	Key   string
	Total int64
}

func (dc *DashboardController) adminHome(c *fiber.Ctx) error {
	var byRole []bucket
	if err := dc.DB.Model(&userModel.UserModel{}).
		Where("users_is_active = ?", true).
		Select("users_role AS key, COUNT(*) AS total").
		Group("users_role").
		Scan(&byRole).Error; err != nil {
		log.Println("[ERROR] contando usuarios por rol:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo armar el resumen")
	}
	usersByRole := make(map[string]int64, len(byRole))
	for _, b := range byRole {
		usersByRole[b.Key] = b.Total
	}

	var activeCohorts int64
	if err := dc.DB.Model(&cohortModel.CohortModel{}).
		Where("cohorts_is_active = ?", true).
		Count(&activeCohorts).Error; err != nil {
		log.Println("[ERROR] contando fichas activas:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo armar el resumen")
	}

	year := time.Now().Year()
	start := time.Date(year, 1, 1, 0, 0, 0, 0, time.Local)
	var byStatus []bucket
	if err := dc.DB.Model(&citationModel.CitationModel{}).
		Where("committee_citations_created_at >= ? AND committee_citations_created_at < ?", start, start.AddDate(1, 0, 0)).
		Select("committee_citations_status AS key, COUNT(*) AS total").
		Group("committee_citations_status").
		Scan(&byStatus).Error; err != nil {
		log.Println("[ERROR] agrupando citaciones por estado:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo armar el resumen")
	}
	citationsByStatus := make(map[string]int64, len(byStatus))
	for _, b := range byStatus {
		citationsByStatus[b.Key] = b.Total
	}

	var sentLastWeek int64
	if err := dc.DB.Model(&notifModel.NotificationHistoryModel{}).
		Where("notification_history_outcome = ?", notifModel.OutcomeEnviado).
		Where("notification_history_attempted_at >= ?", time.Now().AddDate(0, 0, -7)).
		Count(&sentLastWeek).Error; err != nil {
		log.Println("[ERROR] contando notificaciones enviadas:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo armar el resumen")
	}

	return helper.Success(c, "Resumen obtenido", fiber.Map{
		"role":                           constants.RoleAdministrator,
		"users_by_role":                  usersByRole,
		"active_cohorts":                 activeCohorts,
		"citations_year":                 year,
		"citations_by_status":            citationsByStatus,
		"notifications_sent_last_7_days": sentLastWeek,
	})
}

func (dc *DashboardController) instructorHome(c *fiber.Ctx, userID uuid.UUID) error {
	assignments, err := assignmentService.ActiveAssignments(dc.DB, userID)
	if err != nil {
		log.Println("[ERROR] consultando asignaciones del instructor:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo armar el resumen")
	}

	var rollCallsLastWeek int64
	if err := dc.DB.Model(&rollCallModel.RollCallModel{}).
		Where("roll_calls_instructor_id = ?", userID).
		Where("roll_calls_called_at >= ?", time.Now().AddDate(0, 0, -7)).
		Count(&rollCallsLastWeek).Error; err != nil {
		log.Println("[ERROR] contando llamados a lista:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo armar el resumen")
	}

	// Entregas enviadas o revisadas de sus actividades que aún no se califican.
	var ungraded int64
	if err := dc.DB.Model(&submissionModel.SubmissionModel{}).
		Joins("JOIN activities ON activities.activities_id = submissions.submissions_activity_id AND activities.activities_deleted_at IS NULL").
		Where("activities.activities_instructor_id = ?", userID).
		Where("submissions.submissions_state IN ?", []submissionModel.SubmissionState{
			submissionModel.SubmissionStateEnviada, submissionModel.SubmissionStateRevisada,
		}).
		Count(&ungraded).Error; err != nil {
		log.Println("[ERROR] contando entregas sin calificar:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo armar el resumen")
	}

	var pendingCitations int64
	if err := dc.DB.Model(&citationModel.CitationModel{}).
		Where("committee_citations_reporter_id = ?", userID).
		Where("committee_citations_status IN ?", []citationModel.CitationStatus{
			citationModel.CitationStatusPendiente, citationModel.CitationStatusNotificada,
		}).
		Count(&pendingCitations).Error; err != nil {
		log.Println("[ERROR] contando citaciones pendientes:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo armar el resumen")
	}

	return helper.Success(c, "Resumen obtenido", fiber.Map{
		"role":                   constants.RoleInstructor,
		"active_assignments":     assignments,
		"roll_calls_last_7_days": rollCallsLastWeek,
		"ungraded_submissions":   ungraded,
		"pending_citations":      pendingCitations,
	})
}

func (dc *DashboardController) apprenticeHome(c *fiber.Ctx, userID uuid.UUID) error {
	cohortIDs, err := enrollmentService.ActiveCohortIDs(dc.DB, userID)
	if err != nil {
		log.Println("[ERROR] consultando matrículas del aprendiz:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo armar el resumen")
	}

	attendance, err := dc.attendanceByCohort(userID, cohortIDs)
	if err != nil {
		log.Println("[ERROR] resumiendo asistencia del aprendiz:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo armar el resumen")
	}

	var pendingActivities int64
	if len(cohortIDs) > 0 {
		err = dc.DB.Model(&activityModel.ActivityModel{}).
			Where("activities_cohort_id IN ?", cohortIDs).
			Where("activities_state IN ?", []activityModel.ActivityState{
				activityModel.ActivityStatePublicada, activityModel.ActivityStateEnProgreso,
			}).
			Where("activities_hard_deadline IS NULL OR activities_hard_deadline > ?", time.Now()).
			Where(`NOT EXISTS (
				SELECT 1 FROM submissions s
				WHERE s.submissions_activity_id = activities.activities_id
				  AND s.submissions_apprentice_id = ?
				  AND s.submissions_state <> 'BORRADOR'
				  AND s.submissions_deleted_at IS NULL
			)`, userID).
			Count(&pendingActivities).Error
		if err != nil {
			log.Println("[ERROR] contando actividades pendientes:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "No se pudo armar el resumen")
		}
	}

	var unread int64
	if err := dc.DB.Model(&notifModel.NotificationModel{}).
		Where("notifications_recipient_id = ?", userID).
		Where("notifications_is_read = ?", false).
		Count(&unread).Error; err != nil {
		log.Println("[ERROR] contando notificaciones sin leer:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo armar el resumen")
	}

	now := time.Now()
	var upcoming []citationModel.CitationModel
	err = dc.DB.
		Where("committee_citations_apprentice_id = ?", userID).
		Where("committee_citations_status IN ?", []citationModel.CitationStatus{
			citationModel.CitationStatusPendiente, citationModel.CitationStatusNotificada,
		}).
		Where("committee_citations_datetime BETWEEN ? AND ?", now, now.AddDate(0, 0, 7)).
		Order("committee_citations_datetime ASC").
		Find(&upcoming).Error
	if err != nil {
		log.Println("[ERROR] listando citaciones próximas:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo armar el resumen")
	}

	return helper.Success(c, "Resumen obtenido", fiber.Map{
		"role":                 constants.RoleApprentice,
		"attendance_by_cohort": attendance,
		"pending_activities":   pendingActivities,
		"unread_notifications": unread,
		"upcoming_citations":   citationDTO.NewCitationResponses(upcoming, nil),
	})
}

type cohortAttendanceRow struct {
	CohortID     uuid.UUID               `json:"cohort_id"`
	CohortNumber string                  `json:"cohort_number"`
	Percentage   float64                 `json:"percentage"`
	RiskTier     statisticModel.RiskTier `json:"risk_tier"`
}

// attendanceByCohort agrega las estadísticas del aprendiz por ficha. Las
// fichas sin llamados todavía no aparecen en el resumen.
func (dc *DashboardController) attendanceByCohort(userID uuid.UUID, cohortIDs []uuid.UUID) ([]cohortAttendanceRow, error) {
	rows := []cohortAttendanceRow{}
	if len(cohortIDs) == 0 {
		return rows, nil
	}

	type totals struct {
		CohortID uuid.UUID `gorm:"column:cohort_id"`
		Total    int       `gorm:"column:total"`
		Present  int       `gorm:"column:present"`
		Excused  int       `gorm:"column:excused"`
		Late     int       `gorm:"column:late"`
	}
	var sums []totals
	err := dc.DB.Model(&statisticModel.AttendanceStatisticModel{}).
		Select(`attendance_statistics_cohort_id AS cohort_id,
			COALESCE(SUM(attendance_statistics_total_classes), 0) AS total,
			COALESCE(SUM(attendance_statistics_present_count), 0) AS present,
			COALESCE(SUM(attendance_statistics_excused_count), 0) AS excused,
			COALESCE(SUM(attendance_statistics_late_count), 0) AS late`).
		Where("attendance_statistics_apprentice_id = ?", userID).
		Where("attendance_statistics_cohort_id IN ?", cohortIDs).
		Group("attendance_statistics_cohort_id").
		Scan(&sums).Error
	if err != nil {
		return nil, err
	}
	if len(sums) == 0 {
		return rows, nil
	}

	var cohorts []cohortModel.CohortModel
	if err := dc.DB.Select("cohorts_id", "cohorts_number").
		Where("cohorts_id IN ?", cohortIDs).
		Find(&cohorts).Error; err != nil {
		return nil, err
	}
	numbers := make(map[uuid.UUID]string, len(cohorts))
	for _, ch := range cohorts {
		numbers[ch.CohortsID] = ch.CohortsNumber
	}

	for _, s := range sums {
		pct := statisticModel.ComputePercentage(s.Present, s.Excused, s.Late, s.Total)
		rows = append(rows, cohortAttendanceRow{
			CohortID:     s.CohortID,
			CohortNumber: numbers[s.CohortID],
			Percentage:   pct,
			RiskTier:     statisticModel.RiskTierFor(pct),
		})
	}
	return rows, nil
}
