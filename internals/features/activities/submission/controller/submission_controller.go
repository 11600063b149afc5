package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"akademiku_backend/internals/constants"
	enrollmentService "akademiku_backend/internals/features/academics/enrollment/service"
	activityModel "akademiku_backend/internals/features/activities/activity/model"
	dto "akademiku_backend/internals/features/activities/submission/dto"
	model "akademiku_backend/internals/features/activities/submission/model"
	userModel "akademiku_backend/internals/features/users/user/model"
	helper "akademiku_backend/internals/helpers"
)

var validate = validator.New()

const submissionFileMaxBytes = 10 * 1024 * 1024

type SubmissionController struct {
	DB *gorm.DB
}

func NewSubmissionController(db *gorm.DB) *SubmissionController {
	return &SubmissionController{DB: db}
}

// PUT /api/u/activities/:activity_id/submission
// Crea o actualiza el borrador del aprendiz. Solo un borrador (o una entrega
// devuelta para corrección) admite cambios de contenido.
func (sc *SubmissionController) UpsertDraft(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	activity, err := sc.loadActivityForApprentice(c, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpsertDraftRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	submission, err := sc.getOrCreateDraft(activity, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !editableState(submission.SubmissionsState) {
		return helper.Error(c, fiber.StatusUnprocessableEntity,
			"Una entrega en estado "+string(submission.SubmissionsState)+" ya no admite cambios")
	}

	submission.SubmissionsContent = req.SubmissionsContent
	if submission.SubmissionsState == model.SubmissionStateDevuelta {
		// Corregir una entrega devuelta la regresa a borrador.
		submission.SubmissionsState = model.SubmissionStateBorrador
	}
	if err := sc.DB.Save(submission).Error; err != nil {
		log.Println("[ERROR] guardando borrador de entrega:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo guardar el borrador")
	}
	return helper.Success(c, "Borrador guardado", dto.NewSubmissionResponse(submission, ""))
}

// POST /api/u/activities/:activity_id/submission/file
// Adjunta (o reemplaza) el archivo del borrador.
func (sc *SubmissionController) UploadFile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	activity, err := sc.loadActivityForApprentice(c, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "El campo de archivo 'file' es obligatorio")
	}

	submission, err := sc.getOrCreateDraft(activity, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !editableState(submission.SubmissionsState) {
		return helper.Error(c, fiber.StatusUnprocessableEntity,
			"Una entrega en estado "+string(submission.SubmissionsState)+" ya no admite cambios")
	}

	rel, err := helper.SaveMultipartBlob("submissions", fh, submissionFileMaxBytes)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	old := submission.SubmissionsFileURL
	submission.SubmissionsFileURL = &rel
	if err := sc.DB.Save(submission).Error; err != nil {
		_ = helper.RemoveBlob(rel)
		log.Println("[ERROR] guardando archivo de entrega:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo guardar el archivo")
	}
	if old != nil {
		if err := helper.RemoveBlob(*old); err != nil {
			log.Println("[WARN] limpiando archivo anterior de entrega:", err)
		}
	}
	return helper.Success(c, "Archivo de entrega guardado", dto.NewSubmissionResponse(submission, ""))
}

// POST /api/u/activities/:activity_id/submission/submit
// Pasa el borrador a ENVIADA: sella la hora y calcula el retraso comparando
// contra la fecha de entrega de la actividad. El retraso queda fijo.
func (sc *SubmissionController) Submit(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	activity, err := sc.loadActivityForApprentice(c, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var submission model.SubmissionModel
	err = sc.DB.First(&submission,
		"submissions_activity_id = ? AND submissions_apprentice_id = ?",
		activity.ActivitiesID, userID).Error
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "No tienes un borrador para esta actividad")
	}
	if submission.SubmissionsState != model.SubmissionStateBorrador {
		return helper.Error(c, fiber.StatusUnprocessableEntity,
			"Solo un borrador se puede enviar; la entrega está en estado "+string(submission.SubmissionsState))
	}

	now := time.Now()
	if !activity.AcceptsSubmissions(now) {
		return helper.Error(c, fiber.StatusUnprocessableEntity, "La actividad ya no recibe entregas")
	}

	submission.SubmissionsState = model.SubmissionStateEnviada
	submission.SubmissionsSubmittedAt = &now
	submission.SubmissionsIsLate = now.After(activity.ActivitiesDueDate)
	if err := sc.DB.Save(&submission).Error; err != nil {
		log.Println("[ERROR] enviando entrega:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo enviar la entrega")
	}
	return helper.Success(c, "Entrega enviada", dto.NewSubmissionResponse(&submission, ""))
}

// GET /api/u/activities/:activity_id/submission
func (sc *SubmissionController) MySubmission(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	activityID, err := uuid.Parse(c.Params("activity_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de actividad inválido")
	}

	var submission model.SubmissionModel
	err = sc.DB.First(&submission,
		"submissions_activity_id = ? AND submissions_apprentice_id = ?", activityID, userID).Error
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Todavía no tienes entrega para esta actividad")
	}
	return helper.Success(c, "Entrega obtenida", dto.NewSubmissionResponse(&submission, ""))
}

// GET /api/u/submissions
// Historial de entregas del aprendiz.
func (sc *SubmissionController) MySubmissions(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var q dto.ListSubmissionsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Parámetros de búsqueda inválidos")
	}

	p := helper.ParseFiber(c, "updated_at", "desc", helper.DefaultOpts)
	tx := sc.DB.Model(&model.SubmissionModel{}).
		Where("submissions_apprentice_id = ?", userID)
	if q.State != nil {
		tx = tx.Where("submissions_state = ?", *q.State)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Println("[ERROR] contando entregas:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo listar tus entregas")
	}
	var submissions []model.SubmissionModel
	if err := tx.Order("submissions_updated_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&submissions).Error; err != nil {
		log.Println("[ERROR] listando entregas:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo listar tus entregas")
	}

	items := make([]*dto.SubmissionResponse, 0, len(submissions))
	for i := range submissions {
		items = append(items, dto.NewSubmissionResponse(&submissions[i], ""))
	}
	return helper.Success(c, "Entregas obtenidas", fiber.Map{
		"items":      items,
		"pagination": helper.BuildMeta(total, p),
	})
}

// GET /api/i/activities/:activity_id/submissions
// El instructor revisa las entregas de su actividad; nombres resueltos en
// bloque para no golpear usuarios fila a fila.
func (sc *SubmissionController) ListByActivity(c *fiber.Ctx) error {
	activity, err := sc.loadOwnedActivity(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var q dto.ListSubmissionsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Parámetros de búsqueda inválidos")
	}

	tx := sc.DB.Model(&model.SubmissionModel{}).
		Where("submissions_activity_id = ?", activity.ActivitiesID)
	if q.State != nil {
		tx = tx.Where("submissions_state = ?", *q.State)
	}
	if q.ApprenticeID != nil {
		tx = tx.Where("submissions_apprentice_id = ?", *q.ApprenticeID)
	}
	if q.OnlyLate != nil && *q.OnlyLate {
		tx = tx.Where("submissions_is_late = TRUE")
	}

	var submissions []model.SubmissionModel
	if err := tx.Order("submissions_submitted_at ASC NULLS LAST").Find(&submissions).Error; err != nil {
		log.Println("[ERROR] listando entregas de la actividad:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo listar las entregas")
	}

	names := sc.apprenticeNames(submissions)
	items := make([]*dto.SubmissionResponse, 0, len(submissions))
	for i := range submissions {
		items = append(items, dto.NewSubmissionResponse(&submissions[i], names[submissions[i].SubmissionsApprenticeID]))
	}
	return helper.Success(c, "Entregas de la actividad obtenidas", fiber.Map{
		"activity_id": activity.ActivitiesID,
		"items":       items,
		"total":       len(items),
	})
}

// GET /api/i/submissions/:id
func (sc *SubmissionController) GetByID(c *fiber.Ctx) error {
	submission, _, err := sc.findForStaff(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var apprentice userModel.UserModel
	name := ""
	if err := sc.DB.First(&apprentice, "users_id = ?", submission.SubmissionsApprenticeID).Error; err == nil {
		name = apprentice.FullName()
	}
	return helper.Success(c, "Entrega obtenida", dto.NewSubmissionResponse(submission, name))
}

// PATCH /api/i/submissions/:id/review
// ENVIADA → REVISADA: marca que el instructor ya la miró, sin calificarla.
func (sc *SubmissionController) MarkReviewed(c *fiber.Ctx) error {
	submission, _, err := sc.findForStaff(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if submission.SubmissionsState != model.SubmissionStateEnviada {
		return helper.Error(c, fiber.StatusUnprocessableEntity,
			"Solo una entrega enviada se puede marcar como revisada; está en estado "+string(submission.SubmissionsState))
	}

	submission.SubmissionsState = model.SubmissionStateRevisada
	if err := sc.DB.Save(submission).Error; err != nil {
		log.Println("[ERROR] marcando entrega revisada:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo marcar la entrega como revisada")
	}
	return helper.Success(c, "Entrega marcada como revisada", dto.NewSubmissionResponse(submission, ""))
}

/* ===================== helpers ===================== */

func editableState(s model.SubmissionState) bool {
	return s == model.SubmissionStateBorrador || s == model.SubmissionStateDevuelta
}

// loadActivityForApprentice valida matrícula activa y que la actividad esté
// abierta a los aprendices (no borrador).
func (sc *SubmissionController) loadActivityForApprentice(c *fiber.Ctx, apprenticeID uuid.UUID) (*activityModel.ActivityModel, error) {
	activityID, err := uuid.Parse(c.Params("activity_id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID de actividad inválido")
	}

	var activity activityModel.ActivityModel
	if err := sc.DB.First(&activity, "activities_id = ?", activityID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Actividad no encontrada")
	}
	if activity.ActivitiesState == activityModel.ActivityStateBorrador {
		return nil, fiber.NewError(fiber.StatusNotFound, "Actividad no encontrada")
	}

	enrolled, err := enrollmentService.HasActiveEnrollment(sc.DB, apprenticeID, activity.ActivitiesCohortID)
	if err != nil {
		log.Println("[ERROR] verificando matrícula:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "No se pudo verificar tu matrícula")
	}
	if !enrolled {
		return nil, fiber.NewError(fiber.StatusForbidden, "No tienes matrícula activa en la ficha de esta actividad")
	}
	return &activity, nil
}

func (sc *SubmissionController) getOrCreateDraft(activity *activityModel.ActivityModel, apprenticeID uuid.UUID) (*model.SubmissionModel, error) {
	var submission model.SubmissionModel
	err := sc.DB.First(&submission,
		"submissions_activity_id = ? AND submissions_apprentice_id = ?",
		activity.ActivitiesID, apprenticeID).Error
	if err == nil {
		return &submission, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("[ERROR] consultando entrega:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "No se pudo consultar la entrega")
	}

	if !activity.AcceptsSubmissions(time.Now()) {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "La actividad ya no recibe entregas")
	}

	fresh := model.SubmissionModel{
		SubmissionsActivityID:   activity.ActivitiesID,
		SubmissionsApprenticeID: apprenticeID,
		SubmissionsState:        model.SubmissionStateBorrador,
	}
	if err := sc.DB.Create(&fresh).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			// Otro request del mismo aprendiz ganó la carrera.
			if err2 := sc.DB.First(&submission,
				"submissions_activity_id = ? AND submissions_apprentice_id = ?",
				activity.ActivitiesID, apprenticeID).Error; err2 == nil {
				return &submission, nil
			}
		}
		log.Println("[ERROR] creando borrador de entrega:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear el borrador")
	}
	return &fresh, nil
}

// findForStaff carga la entrega junto con su actividad y aplica el alcance
// del instructor (solo entregas de sus actividades).
func (sc *SubmissionController) findForStaff(c *fiber.Ctx) (*model.SubmissionModel, *activityModel.ActivityModel, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, nil, err
	}
	role, err := helper.GetUserRoleFromToken(c)
	if err != nil {
		return nil, nil, err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, "ID de entrega inválido")
	}

	var submission model.SubmissionModel
	if err := sc.DB.First(&submission, "submissions_id = ?", id).Error; err != nil {
		return nil, nil, fiber.NewError(fiber.StatusNotFound, "Entrega no encontrada")
	}
	var activity activityModel.ActivityModel
	if err := sc.DB.First(&activity, "activities_id = ?", submission.SubmissionsActivityID).Error; err != nil {
		return nil, nil, fiber.NewError(fiber.StatusNotFound, "La actividad de la entrega no existe")
	}
	if role == constants.RoleInstructor && activity.ActivitiesInstructorID != userID {
		return nil, nil, fiber.NewError(fiber.StatusForbidden, "Esta entrega pertenece a la actividad de otro instructor")
	}
	return &submission, &activity, nil
}

func (sc *SubmissionController) loadOwnedActivity(c *fiber.Ctx) (*activityModel.ActivityModel, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, err
	}
	role, err := helper.GetUserRoleFromToken(c)
	if err != nil {
		return nil, err
	}
	activityID, err := uuid.Parse(c.Params("activity_id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID de actividad inválido")
	}

	var activity activityModel.ActivityModel
	if err := sc.DB.First(&activity, "activities_id = ?", activityID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Actividad no encontrada")
	}
	if role == constants.RoleInstructor && activity.ActivitiesInstructorID != userID {
		return nil, fiber.NewError(fiber.StatusForbidden, "Esta actividad pertenece a otro instructor")
	}
	return &activity, nil
}

func (sc *SubmissionController) apprenticeNames(submissions []model.SubmissionModel) map[uuid.UUID]string {
	names := make(map[uuid.UUID]string, len(submissions))
	if len(submissions) == 0 {
		return names
	}
	ids := make([]uuid.UUID, 0, len(submissions))
	for _, s := range submissions {
		ids = append(ids, s.SubmissionsApprenticeID)
	}
	var users []userModel.UserModel
	if err := sc.DB.Where("users_id IN ?", ids).Find(&users).Error; err != nil {
		log.Println("[WARN] resolviendo nombres de aprendices:", err)
		return names
	}
	for i := range users {
		names[users[i].UsersID] = users[i].FullName()
	}
	return names
}
