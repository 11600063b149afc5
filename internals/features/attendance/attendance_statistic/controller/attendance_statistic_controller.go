package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "akademiku_backend/internals/features/attendance/attendance_statistic/dto"
	model "akademiku_backend/internals/features/attendance/attendance_statistic/model"
	aggregator "akademiku_backend/internals/features/attendance/attendance_statistic/service"
	helper "akademiku_backend/internals/helpers"
)

var validate = validator.New()

type AttendanceStatisticController struct {
	DB *gorm.DB
}

func NewAttendanceStatisticController(db *gorm.DB) *AttendanceStatisticController {
	return &AttendanceStatisticController{DB: db}
}

// GET /api/i/attendance-statistics
// El filtro por nivel de riesgo se aplica sobre el porcentaje guardado,
// con los mismos cortes que la clasificación derivada.
func (sc *AttendanceStatisticController) List(c *fiber.Ctx) error {
	var q dto.ListStatisticsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Parámetros de búsqueda inválidos")
	}

	p := helper.ParseFiber(c, "percentage", "asc", helper.DefaultOpts)

	tx := sc.DB.Model(&model.AttendanceStatisticModel{})
	if q.ApprenticeID != nil {
		tx = tx.Where("attendance_statistics_apprentice_id = ?", *q.ApprenticeID)
	}
	if q.OutcomeID != nil {
		tx = tx.Where("attendance_statistics_learning_outcome_id = ?", *q.OutcomeID)
	}
	if q.CohortID != nil {
		tx = tx.Where("attendance_statistics_cohort_id = ?", *q.CohortID)
	}
	if q.RiskTier != nil {
		switch model.RiskTier(strings.ToUpper(strings.TrimSpace(*q.RiskTier))) {
		case model.RiskTierBajo:
			tx = tx.Where("attendance_statistics_percentage >= ?", 90)
		case model.RiskTierMedio:
			tx = tx.Where("attendance_statistics_percentage >= ? AND attendance_statistics_percentage < ?", 80, 90)
		case model.RiskTierAlto:
			tx = tx.Where("attendance_statistics_percentage >= ? AND attendance_statistics_percentage < ?", 70, 80)
		case model.RiskTierCritico:
			tx = tx.Where("attendance_statistics_percentage < ?", 70)
		default:
			return helper.Error(c, fiber.StatusBadRequest, "risk_tier no reconocido (BAJO, MEDIO, ALTO, CRITICO)")
		}
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Println("[ERROR] contando estadísticas:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo listar las estadísticas")
	}

	var stats []model.AttendanceStatisticModel
	if err := tx.Order("attendance_statistics_percentage ASC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&stats).Error; err != nil {
		log.Println("[ERROR] listando estadísticas:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo listar las estadísticas")
	}

	return helper.Success(c, "Estadísticas de asistencia obtenidas", fiber.Map{
		"items":      dto.NewAttendanceStatisticResponses(stats),
		"pagination": helper.BuildMeta(total, p),
	})
}

// GET /api/u/attendance-statistics/mine
func (sc *AttendanceStatisticController) MyStatistics(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var stats []model.AttendanceStatisticModel
	if err := sc.DB.
		Where("attendance_statistics_apprentice_id = ?", userID).
		Order("attendance_statistics_percentage ASC").
		Find(&stats).Error; err != nil {
		log.Println("[ERROR] listando estadísticas propias:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo consultar tus estadísticas")
	}

	return helper.Success(c, "Tus estadísticas de asistencia", fiber.Map{
		"items": dto.NewAttendanceStatisticResponses(stats),
	})
}

// POST /api/i/attendance-statistics/recompute
// Recomputo a demanda. Idempotente: con los mismos registros, mismo resultado.
func (sc *AttendanceStatisticController) Recompute(c *fiber.Ctx) error {
	var req dto.RecomputeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	stat, err := aggregator.Recompute(sc.DB, req.ApprenticeID, req.LearningOutcomeID, req.CohortID)
	if err != nil {
		log.Println("[ERROR] recomputando estadística:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo recomputar la estadística")
	}

	return helper.Success(c, "Estadística recomputada", dto.NewAttendanceStatisticResponse(stat))
}
