package controller

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"akademiku_backend/internals/constants"
	cohortModel "akademiku_backend/internals/features/academics/cohort/model"
	enrollmentService "akademiku_backend/internals/features/academics/enrollment/service"
	assignmentService "akademiku_backend/internals/features/academics/instructor_assignment/service"
	outcomeModel "akademiku_backend/internals/features/academics/learning_outcome/model"
	dto "akademiku_backend/internals/features/activities/activity/dto"
	model "akademiku_backend/internals/features/activities/activity/model"
	typeModel "akademiku_backend/internals/features/activities/activity_type/model"
	statisticModel "akademiku_backend/internals/features/attendance/attendance_statistic/model"
	notifModel "akademiku_backend/internals/features/notifications/notification/model"
	notifService "akademiku_backend/internals/features/notifications/service"
	helper "akademiku_backend/internals/helpers"
)

var validate = validator.New()

type ActivityController struct {
	DB *gorm.DB
}

func NewActivityController(db *gorm.DB) *ActivityController {
	return &ActivityController{DB: db}
}

var activitySortable = map[string]string{
	"due_date":      "activities_due_date",
	"assigned_date": "activities_assigned_date",
	"title":         "activities_title",
	"created_at":    "activities_created_at",
}

// POST /api/i/activities
func (ac *ActivityController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	role, err := helper.GetUserRoleFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	instructorID := userID
	if req.ActivitiesInstructorID != nil && *req.ActivitiesInstructorID != userID {
		if role != constants.RoleAdministrator {
			return helper.Error(c, fiber.StatusForbidden, "Solo un administrador puede crear actividades a nombre de otro instructor")
		}
		instructorID = *req.ActivitiesInstructorID
	}

	var atype typeModel.ActivityTypeModel
	if err := ac.DB.First(&atype, "activity_types_id = ?", req.ActivitiesTypeID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "El tipo de actividad indicado no existe")
	}
	var outcome outcomeModel.LearningOutcomeModel
	if err := ac.DB.First(&outcome, "learning_outcomes_id = ?", req.ActivitiesLearningOutcomeID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "El resultado de aprendizaje indicado no existe")
	}
	var cohort cohortModel.CohortModel
	if err := ac.DB.First(&cohort, "cohorts_id = ?", req.ActivitiesCohortID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "La ficha indicada no existe")
	}

	assigned, err := assignmentService.HasActiveAssignment(ac.DB, instructorID, outcome.LearningOutcomesID, cohort.CohortsID)
	if err != nil {
		log.Println("[ERROR] verificando asignación del instructor:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo verificar la asignación del instructor")
	}
	if !assigned {
		return helper.Error(c, fiber.StatusForbidden, "El instructor no tiene asignación activa para este resultado en la ficha")
	}

	activity := req.ToModel(instructorID)
	if err := ac.DB.Create(activity).Error; err != nil {
		if code, msg := activitySaveStatus(err); code != 0 {
			return helper.Error(c, code, msg)
		}
		log.Println("[ERROR] creando actividad:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear la actividad")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Actividad creada",
		dto.NewActivityResponse(activity, atype.ActivityTypesName))
}

// GET /api/i/activities
// Los instructores solo ven sus propias actividades; el administrador todas.
func (ac *ActivityController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	role, err := helper.GetUserRoleFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	tx := ac.DB.Model(&model.ActivityModel{})
	if role == constants.RoleInstructor {
		tx = tx.Where("activities_instructor_id = ?", userID)
	}
	return ac.listWith(c, tx)
}

// GET /api/u/activities
// Un aprendiz ve las actividades publicadas de las fichas donde tiene
// matrícula activa.
func (ac *ActivityController) ListForApprentice(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	cohortIDs, err := enrollmentService.ActiveCohortIDs(ac.DB, userID)
	if err != nil {
		log.Println("[ERROR] consultando matrículas del aprendiz:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo consultar tus matrículas")
	}
	if len(cohortIDs) == 0 {
		return helper.Success(c, "Actividades obtenidas", fiber.Map{
			"items":      []dto.ActivityResponse{},
			"pagination": helper.BuildMeta(0, helper.ParseFiber(c, "due_date", "asc", helper.DefaultOpts)),
		})
	}

	tx := ac.DB.Model(&model.ActivityModel{}).
		Where("activities_cohort_id IN ?", cohortIDs).
		Where("activities_state IN ?", []model.ActivityState{model.ActivityStatePublicada, model.ActivityStateEnProgreso, model.ActivityStateFinalizada})
	return ac.listWith(c, tx)
}

func (ac *ActivityController) listWith(c *fiber.Ctx, tx *gorm.DB) error {
	var q dto.ListActivitiesQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Parámetros de búsqueda inválidos")
	}

	p := helper.ParseFiber(c, "due_date", "desc", helper.DefaultOpts)
	orderClause, err := p.SafeOrderClause(activitySortable, "due_date")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "sort_by no es válido")
	}

	if q.CohortID != nil {
		tx = tx.Where("activities_cohort_id = ?", *q.CohortID)
	}
	if q.OutcomeID != nil {
		tx = tx.Where("activities_learning_outcome_id = ?", *q.OutcomeID)
	}
	if q.TypeID != nil {
		tx = tx.Where("activities_type_id = ?", *q.TypeID)
	}
	if q.State != nil {
		tx = tx.Where("activities_state = ?", *q.State)
	}
	if s := strings.TrimSpace(q.Search); s != "" {
		tx = tx.Where("activities_title ILIKE ?", "%"+s+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Println("[ERROR] contando actividades:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo listar las actividades")
	}

	var activities []model.ActivityModel
	if err := tx.Order(strings.TrimPrefix(orderClause, "ORDER BY ")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&activities).Error; err != nil {
		log.Println("[ERROR] listando actividades:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo listar las actividades")
	}

	return helper.Success(c, "Actividades obtenidas", fiber.Map{
		"items":      ac.toResponses(activities),
		"pagination": helper.BuildMeta(total, p),
	})
}

// GET /api/u/activities/:id
// Staff por propiedad; el aprendiz solo si está matriculado y la actividad
// fue publicada.
func (ac *ActivityController) GetByID(c *fiber.Ctx) error {
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
		return helper.Error(c, fiber.StatusBadRequest, "ID de actividad inválido")
	}

	var activity model.ActivityModel
	if err := ac.DB.First(&activity, "activities_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Actividad no encontrada")
	}

	switch role {
	case constants.RoleInstructor:
		if activity.ActivitiesInstructorID != userID {
			return helper.Error(c, fiber.StatusForbidden, "Esta actividad pertenece a otro instructor")
		}
	case constants.RoleApprentice:
		if activity.ActivitiesState == model.ActivityStateBorrador {
			return helper.Error(c, fiber.StatusNotFound, "Actividad no encontrada")
		}
		enrolled, err := enrollmentService.HasActiveEnrollment(ac.DB, userID, activity.ActivitiesCohortID)
		if err != nil {
			log.Println("[ERROR] verificando matrícula:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "No se pudo verificar tu matrícula")
		}
		if !enrolled {
			return helper.Error(c, fiber.StatusForbidden, "No tienes matrícula activa en la ficha de esta actividad")
		}
	}

	return helper.Success(c, "Actividad obtenida", dto.NewActivityResponse(&activity, ac.typeName(activity.ActivitiesTypeID)))
}

// PUT /api/i/activities/:id
func (ac *ActivityController) Update(c *fiber.Ctx) error {
	activity, err := ac.findOwned(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if activity.ActivitiesState.IsTerminal() {
		return helper.Error(c, fiber.StatusUnprocessableEntity,
			fmt.Sprintf("Una actividad %s ya no se puede editar", activity.ActivitiesState))
	}

	var req dto.UpdateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyToModel(activity)
	if err := ac.DB.Save(activity).Error; err != nil {
		if code, msg := activitySaveStatus(err); code != 0 {
			return helper.Error(c, code, msg)
		}
		log.Println("[ERROR] actualizando actividad:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar la actividad")
	}
	return helper.Success(c, "Actividad actualizada", dto.NewActivityResponse(activity, ac.typeName(activity.ActivitiesTypeID)))
}

// PATCH /api/i/activities/:id/state
// Publicar (BORRADOR → PUBLICADA) avisa a todos los aprendices activos de la
// ficha con una notificación NUEVA_ACTIVIDAD.
func (ac *ActivityController) ChangeState(c *fiber.Ctx) error {
	activity, err := ac.findOwned(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.ChangeActivityStateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	from := activity.ActivitiesState
	to := model.ActivityState(req.ActivitiesState)
	if from == to {
		return helper.Error(c, fiber.StatusUnprocessableEntity, "La actividad ya está en ese estado")
	}
	if from.IsTerminal() {
		return helper.Error(c, fiber.StatusUnprocessableEntity,
			fmt.Sprintf("No se puede cambiar de %s a %s", from, to))
	}
	if to == model.ActivityStatePublicada && from != model.ActivityStateBorrador {
		return helper.Error(c, fiber.StatusUnprocessableEntity,
			fmt.Sprintf("No se puede cambiar de %s a %s", from, to))
	}

	activity.ActivitiesState = to
	if err := ac.DB.Save(activity).Error; err != nil {
		log.Println("[ERROR] cambiando estado de actividad:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo cambiar el estado de la actividad")
	}

	payload := fiber.Map{"activity": dto.NewActivityResponse(activity, ac.typeName(activity.ActivitiesTypeID))}
	if to == model.ActivityStatePublicada {
		payload["notificaciones"] = ac.notifyPublished(activity)
	}
	return helper.Success(c, "Estado de la actividad actualizado", payload)
}

// DELETE /api/i/activities/:id
func (ac *ActivityController) Delete(c *fiber.Ctx) error {
	activity, err := ac.findOwned(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ac.DB.Delete(activity).Error; err != nil {
		log.Println("[ERROR] eliminando actividad:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar la actividad")
	}
	return helper.Success(c, "Actividad eliminada", fiber.Map{
		"activities_id": activity.ActivitiesID,
	})
}

// GET /api/i/activities/by-cohort/:cohort_id
func (ac *ActivityController) ByCohort(c *fiber.Ctx) error {
	cohortID, err := uuid.Parse(c.Params("cohort_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de ficha inválido")
	}
	tx := ac.DB.Model(&model.ActivityModel{}).Where("activities_cohort_id = ?", cohortID)
	return ac.listWith(c, tx)
}

// GET /api/u/activities/pending
// Publicadas, sin entrega del aprendiz y con la fecha límite dura todavía
// abierta.
func (ac *ActivityController) PendingForApprentice(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	cohortIDs, err := enrollmentService.ActiveCohortIDs(ac.DB, userID)
	if err != nil {
		log.Println("[ERROR] consultando matrículas del aprendiz:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo consultar tus matrículas")
	}
	if len(cohortIDs) == 0 {
		return helper.Success(c, "Actividades pendientes obtenidas", fiber.Map{"items": []dto.ActivityResponse{}})
	}

	var activities []model.ActivityModel
	err = ac.DB.Model(&model.ActivityModel{}).
		Where("activities_cohort_id IN ?", cohortIDs).
		Where("activities_state IN ?", []model.ActivityState{model.ActivityStatePublicada, model.ActivityStateEnProgreso}).
		Where("activities_hard_deadline IS NULL OR activities_hard_deadline > ?", time.Now()).
		Where(`NOT EXISTS (
			SELECT 1 FROM submissions s
			WHERE s.submissions_activity_id = activities.activities_id
			  AND s.submissions_apprentice_id = ?
			  AND s.submissions_state <> 'BORRADOR'
			  AND s.submissions_deleted_at IS NULL
		)`, userID).
		Order("activities_due_date ASC").
		Find(&activities).Error
	if err != nil {
		log.Println("[ERROR] listando actividades pendientes:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo listar tus actividades pendientes")
	}

	return helper.Success(c, "Actividades pendientes obtenidas", fiber.Map{
		"items": ac.toResponses(activities),
		"total": len(activities),
	})
}

// GET /api/u/activities/progress
// Resumen por resultado de aprendizaje: notas y asistencia del aprendiz en
// una ficha. El staff puede consultar a cualquier aprendiz con ?apprentice_id.
func (ac *ActivityController) ApprenticeProgress(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	apprenticeID := userID
	if raw := c.Query("apprentice_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "apprentice_id inválido")
		}
		if id != userID && !helper.IsStaff(c) {
			return helper.Error(c, fiber.StatusForbidden, "Solo el personal puede consultar el avance de otro aprendiz")
		}
		apprenticeID = id
	}

	cohortID, err := uuid.Parse(c.Query("cohort_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "cohort_id es obligatorio")
	}

	type progressRow struct {
		LearningOutcomeID   uuid.UUID
		LearningOutcomeName string
		ActivitiesTotal     int64
		GradedCount         int64
		AveragePercentage   float64
	}
	var rows []progressRow
	err = ac.DB.Model(&model.ActivityModel{}).
		Select(`activities.activities_learning_outcome_id AS learning_outcome_id,
			learning_outcomes.learning_outcomes_name AS learning_outcome_name,
			COUNT(DISTINCT activities.activities_id) AS activities_total,
			COUNT(grades.grades_id) AS graded_count,
			COALESCE(AVG(grades.grades_percentage), 0) AS average_percentage`).
		Joins("JOIN learning_outcomes ON learning_outcomes.learning_outcomes_id = activities.activities_learning_outcome_id").
		Joins(`LEFT JOIN submissions ON submissions.submissions_activity_id = activities.activities_id
			AND submissions.submissions_apprentice_id = ? AND submissions.submissions_deleted_at IS NULL`, apprenticeID).
		Joins("LEFT JOIN grades ON grades.grades_submission_id = submissions.submissions_id AND grades.grades_deleted_at IS NULL").
		Where("activities.activities_cohort_id = ?", cohortID).
		Where("activities.activities_state <> ?", model.ActivityStateBorrador).
		Group("activities.activities_learning_outcome_id, learning_outcomes.learning_outcomes_name").
		Order("learning_outcomes.learning_outcomes_name ASC").
		Scan(&rows).Error
	if err != nil {
		log.Println("[ERROR] calculando avance del aprendiz:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo calcular el avance")
	}

	var stats []statisticModel.AttendanceStatisticModel
	if err := ac.DB.
		Where("attendance_statistics_apprentice_id = ?", apprenticeID).
		Where("attendance_statistics_cohort_id = ?", cohortID).
		Find(&stats).Error; err != nil {
		log.Println("[ERROR] consultando asistencia del aprendiz:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo consultar la asistencia")
	}
	attendanceByOutcome := make(map[uuid.UUID]float64, len(stats))
	for _, s := range stats {
		attendanceByOutcome[s.AttendanceStatisticsLearningOutcomeID] = s.AttendanceStatisticsPercentage
	}

	items := make([]dto.OutcomeProgressResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.OutcomeProgressResponse{
			LearningOutcomeID:    row.LearningOutcomeID,
			LearningOutcomeName:  row.LearningOutcomeName,
			ActivitiesTotal:      row.ActivitiesTotal,
			GradedCount:          row.GradedCount,
			AveragePercentage:    math.Round(row.AveragePercentage*100) / 100,
			AttendancePercentage: attendanceByOutcome[row.LearningOutcomeID],
		})
	}

	return helper.Success(c, "Avance del aprendiz obtenido", fiber.Map{
		"apprentice_id": apprenticeID,
		"cohort_id":     cohortID,
		"items":         items,
	})
}

// GET /api/u/activity-types
func (ac *ActivityController) ListTypes(c *fiber.Ctx) error {
	var types []typeModel.ActivityTypeModel
	if err := ac.DB.
		Where("activity_types_is_active = TRUE").
		Order("activity_types_name ASC").
		Find(&types).Error; err != nil {
		log.Println("[ERROR] listando tipos de actividad:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo listar los tipos de actividad")
	}
	return helper.Success(c, "Tipos de actividad obtenidos", types)
}

// notifyPublished envía el aviso masivo a los aprendices activos de la ficha.
func (ac *ActivityController) notifyPublished(activity *model.ActivityModel) notifService.BulkResult {
	apprenticeIDs, err := enrollmentService.ActiveApprenticeIDs(ac.DB, activity.ActivitiesCohortID)
	if err != nil {
		log.Println("[ERROR] consultando aprendices para notificar:", err)
		return notifService.BulkResult{}
	}
	activityID := activity.ActivitiesID
	return notifService.SendBulk(ac.DB, apprenticeIDs, notifService.SendInput{
		TypeName: notifModel.TypeNuevaActividad,
		Title:    "Nueva actividad publicada",
		Message: fmt.Sprintf("Se publicó la actividad %q. Fecha de entrega: %s.",
			activity.ActivitiesTitle, activity.ActivitiesDueDate.Format("2006-01-02 15:04")),
		RelatedKind: "activity",
		RelatedID:   &activityID,
	})
}

func (ac *ActivityController) toResponses(activities []model.ActivityModel) []*dto.ActivityResponse {
	names := ac.typeNames()
	out := make([]*dto.ActivityResponse, 0, len(activities))
	for i := range activities {
		out = append(out, dto.NewActivityResponse(&activities[i], names[activities[i].ActivitiesTypeID]))
	}
	return out
}

func (ac *ActivityController) typeNames() map[uuid.UUID]string {
	var types []typeModel.ActivityTypeModel
	names := make(map[uuid.UUID]string)
	if err := ac.DB.Find(&types).Error; err != nil {
		return names
	}
	for _, t := range types {
		names[t.ActivityTypesID] = t.ActivityTypesName
	}
	return names
}

func (ac *ActivityController) typeName(typeID uuid.UUID) string {
	var t typeModel.ActivityTypeModel
	if err := ac.DB.First(&t, "activity_types_id = ?", typeID).Error; err != nil {
		return ""
	}
	return t.ActivityTypesName
}

// findOwned carga la actividad con el alcance del staff: un instructor solo
// alcanza las suyas.
func (ac *ActivityController) findOwned(c *fiber.Ctx) (*model.ActivityModel, error) {
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
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID de actividad inválido")
	}

	var activity model.ActivityModel
	if err := ac.DB.First(&activity, "activities_id = ?", id).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Actividad no encontrada")
	}
	if role == constants.RoleInstructor && activity.ActivitiesInstructorID != userID {
		return nil, fiber.NewError(fiber.StatusForbidden, "Esta actividad pertenece a otro instructor")
	}
	return &activity, nil
}

func activitySaveStatus(err error) (int, string) {
	switch {
	case errors.Is(err, model.ErrHardDeadlineBeforeDue):
		return fiber.StatusUnprocessableEntity, "La fecha límite dura no puede ser anterior a la fecha de entrega"
	case helper.IsUniqueViolation(err):
		return fiber.StatusConflict, "Ya existe una actividad igual registrada"
	}
	return 0, ""
}
