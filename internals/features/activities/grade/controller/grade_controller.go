package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"akademiku_backend/internals/constants"
	activityModel "akademiku_backend/internals/features/activities/activity/model"
	dto "akademiku_backend/internals/features/activities/grade/dto"
	model "akademiku_backend/internals/features/activities/grade/model"
	gradeService "akademiku_backend/internals/features/activities/grade/service"
	submissionModel "akademiku_backend/internals/features/activities/submission/model"
	helper "akademiku_backend/internals/helpers"
)

var validate = validator.New()

type GradeController struct {
	DB *gorm.DB
}

func NewGradeController(db *gorm.DB) *GradeController {
	return &GradeController{DB: db}
}

// POST /api/i/submissions/:submission_id/grade
// Califica o recalifica: el motor siempre parte del puntaje del cuerpo, así
// que repetir la petición no acumula penalizaciones.
func (gc *GradeController) Grade(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	submission, activity, err := gc.findSubmission(c, "submission_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.GradeSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	grade, err := gradeService.GradeSubmission(gc.DB, activity, submission, gradeService.GradeInput{
		GraderID:        userID,
		RawScore:        req.GradesRawScore,
		Feedback:        req.GradesFeedback,
		NeedsCorrection: req.GradesNeedsCorrection,
	})
	if err != nil {
		switch {
		case errors.Is(err, model.ErrScoreExceedsMax):
			return helper.Error(c, fiber.StatusUnprocessableEntity, "El puntaje supera el máximo de la actividad")
		case errors.Is(err, gradeService.ErrSubmissionNotGradable):
			return helper.Error(c, fiber.StatusUnprocessableEntity, "La entrega aún no fue enviada")
		}
		log.Println("[ERROR] calificando entrega:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo calificar la entrega")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Entrega calificada", fiber.Map{
		"grade":      dto.NewGradeResponse(grade),
		"submission": fiber.Map{"submissions_id": submission.SubmissionsID, "submissions_state": submission.SubmissionsState},
	})
}

// GET /api/i/submissions/:submission_id/grade
func (gc *GradeController) GetBySubmission(c *fiber.Ctx) error {
	submission, _, err := gc.findSubmission(c, "submission_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var grade model.GradeModel
	if err := gc.DB.First(&grade, "grades_submission_id = ?", submission.SubmissionsID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "La entrega todavía no tiene calificación")
	}
	return helper.Success(c, "Calificación obtenida", dto.NewGradeResponse(&grade))
}

// GET /api/u/grades
// Calificaciones del aprendiz autenticado, opcionalmente por ficha.
func (gc *GradeController) MyGrades(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ParseFiber(c, "graded_at", "desc", helper.DefaultOpts)
	tx := gc.DB.Model(&model.GradeModel{}).
		Joins("JOIN submissions ON submissions.submissions_id = grades.grades_submission_id AND submissions.submissions_deleted_at IS NULL").
		Where("submissions.submissions_apprentice_id = ?", userID)
	if raw := c.Query("cohort_id"); raw != "" {
		cohortID, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "cohort_id inválido")
		}
		tx = tx.Joins("JOIN activities ON activities.activities_id = submissions.submissions_activity_id").
			Where("activities.activities_cohort_id = ?", cohortID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Println("[ERROR] contando calificaciones:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo listar tus calificaciones")
	}
	var grades []model.GradeModel
	if err := tx.Order("grades.grades_graded_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&grades).Error; err != nil {
		log.Println("[ERROR] listando calificaciones:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo listar tus calificaciones")
	}

	items := make([]*dto.GradeResponse, 0, len(grades))
	for i := range grades {
		items = append(items, dto.NewGradeResponse(&grades[i]))
	}
	return helper.Success(c, "Calificaciones obtenidas", fiber.Map{
		"items":      items,
		"pagination": helper.BuildMeta(total, p),
	})
}

// GET /api/u/grades/summary
// Promedio general del aprendiz en una ficha.
func (gc *GradeController) MySummary(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	cohortID, err := uuid.Parse(c.Query("cohort_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "cohort_id es obligatorio")
	}

	avg, total, err := gradeService.ApprenticeAverage(gc.DB, userID, cohortID)
	if err != nil {
		log.Println("[ERROR] calculando promedio:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo calcular tu promedio")
	}
	return helper.Success(c, "Promedio obtenido", fiber.Map{
		"cohort_id":          cohortID,
		"average_percentage": avg,
		"graded_count":       total,
		"passing":            avg >= model.PassingPercentage,
	})
}

// findSubmission carga la entrega y su actividad con el alcance del
// instructor.
func (gc *GradeController) findSubmission(c *fiber.Ctx, param string) (*submissionModel.SubmissionModel, *activityModel.ActivityModel, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, nil, err
	}
	role, err := helper.GetUserRoleFromToken(c)
	if err != nil {
		return nil, nil, err
	}
	id, err := uuid.Parse(c.Params(param))
	if err != nil {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, "ID de entrega inválido")
	}

	var submission submissionModel.SubmissionModel
	if err := gc.DB.First(&submission, "submissions_id = ?", id).Error; err != nil {
		return nil, nil, fiber.NewError(fiber.StatusNotFound, "Entrega no encontrada")
	}
	var activity activityModel.ActivityModel
	if err := gc.DB.First(&activity, "activities_id = ?", submission.SubmissionsActivityID).Error; err != nil {
		return nil, nil, fiber.NewError(fiber.StatusNotFound, "La actividad de la entrega no existe")
	}
	if role == constants.RoleInstructor && activity.ActivitiesInstructorID != userID {
		return nil, nil, fiber.NewError(fiber.StatusForbidden, "Esta entrega pertenece a la actividad de otro instructor")
	}
	return &submission, &activity, nil
}
