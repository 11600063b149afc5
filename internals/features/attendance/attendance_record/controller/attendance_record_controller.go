package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"akademiku_backend/internals/constants"
	enrollmentService "akademiku_backend/internals/features/academics/enrollment/service"
	dto "akademiku_backend/internals/features/attendance/attendance_record/dto"
	model "akademiku_backend/internals/features/attendance/attendance_record/model"
	aggregator "akademiku_backend/internals/features/attendance/attendance_statistic/service"
	rollCallModel "akademiku_backend/internals/features/attendance/roll_call/model"
	helper "akademiku_backend/internals/helpers"
)

var validate = validator.New()

type AttendanceRecordController struct {
	DB *gorm.DB
}

func NewAttendanceRecordController(db *gorm.DB) *AttendanceRecordController {
	return &AttendanceRecordController{DB: db}
}

// POST /api/i/attendance-records
// Alta manual para aprendices matriculados después de abierto el llamado.
func (ac *AttendanceRecordController) Create(c *fiber.Ctx) error {
	var req dto.CreateAttendanceRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	rollCall, err := ac.loadOwnedRollCall(c, req.AttendanceRecordsRollCallID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	enrolled, err := enrollmentService.HasActiveEnrollment(ac.DB, req.AttendanceRecordsApprenticeID, rollCall.RollCallsCohortID)
	if err != nil {
		log.Println("[ERROR] verificando matrícula del aprendiz:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo verificar la matrícula del aprendiz")
	}
	if !enrolled {
		return helper.Error(c, fiber.StatusUnprocessableEntity, "El aprendiz no tiene matrícula activa en la ficha del llamado")
	}

	record, err := req.ToModel()
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ac.DB.Create(record).Error; err != nil {
		if consistencyErr := consistencyStatus(err); consistencyErr != nil {
			return helper.Error(c, fiber.StatusUnprocessableEntity, consistencyErr.Error())
		}
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "El aprendiz ya tiene registro en este llamado")
		}
		log.Println("[ERROR] creando registro de asistencia:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear el registro de asistencia")
	}

	ac.recompute(record.AttendanceRecordsApprenticeID, rollCall)

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registro de asistencia creado",
		dto.NewAttendanceRecordResponse(record))
}

// PATCH /api/i/attendance-records/:id
// Marcar asistencia recalcula la estadística de la tripleta del registro.
func (ac *AttendanceRecordController) Mark(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de registro inválido")
	}

	var record model.AttendanceRecordModel
	if err := ac.DB.First(&record, "attendance_records_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Registro de asistencia no encontrado")
	}

	rollCall, err := ac.loadOwnedRollCall(c, record.AttendanceRecordsRollCallID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := req.ApplyToModel(&record); err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := record.ValidateConsistency(); err != nil {
		return helper.Error(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	if err := ac.DB.Save(&record).Error; err != nil {
		log.Println("[ERROR] guardando registro de asistencia:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo guardar el registro de asistencia")
	}

	ac.recompute(record.AttendanceRecordsApprenticeID, rollCall)

	return helper.Success(c, "Asistencia registrada", dto.NewAttendanceRecordResponse(&record))
}

// GET /api/u/attendance-records/mine
// Historial del aprendiz autenticado, filtrable por ficha.
func (ac *AttendanceRecordController) MyRecords(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	tx := ac.DB.Model(&model.AttendanceRecordModel{}).
		Where("attendance_records_apprentice_id = ?", userID)
	if cohortID := c.Query("cohort_id"); cohortID != "" {
		id, err := uuid.Parse(cohortID)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "cohort_id inválido")
		}
		tx = tx.Joins("JOIN roll_calls ON roll_calls.roll_calls_id = attendance_records.attendance_records_roll_call_id").
			Where("roll_calls.roll_calls_cohort_id = ?", id)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Println("[ERROR] contando registros propios:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo listar tus registros")
	}

	var records []model.AttendanceRecordModel
	if err := tx.Order("attendance_records_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&records).Error; err != nil {
		log.Println("[ERROR] listando registros propios:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo listar tus registros")
	}

	return helper.Success(c, "Registros de asistencia obtenidos", fiber.Map{
		"items":      dto.NewAttendanceRecordResponses(records),
		"pagination": helper.BuildMeta(total, p),
	})
}

// loadOwnedRollCall carga el llamado del registro y aplica el alcance por
// rol: instructores solo sobre sus propios llamados.
func (ac *AttendanceRecordController) loadOwnedRollCall(c *fiber.Ctx, rollCallID uuid.UUID) (*rollCallModel.RollCallModel, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, err
	}
	role, err := helper.GetUserRoleFromToken(c)
	if err != nil {
		return nil, err
	}

	var rollCall rollCallModel.RollCallModel
	if err := ac.DB.First(&rollCall, "roll_calls_id = ?", rollCallID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Llamado de asistencia no encontrado")
	}
	if role == constants.RoleInstructor && rollCall.RollCallsInstructorID != userID {
		return nil, fiber.NewError(fiber.StatusForbidden, "Este llamado pertenece a otro instructor")
	}
	return &rollCall, nil
}

// recompute rehace la estadística tras cada escritura. El fallo del
// recómputo se registra pero no tumba la respuesta: la siguiente escritura
// (o el endpoint de recómputo) lo corrige.
func (ac *AttendanceRecordController) recompute(apprenticeID uuid.UUID, rollCall *rollCallModel.RollCallModel) {
	if _, err := aggregator.Recompute(ac.DB, apprenticeID,
		rollCall.RollCallsLearningOutcomeID, rollCall.RollCallsCohortID); err != nil {
		log.Println("[ERROR] recomputando estadística de asistencia:", err)
	}
}

// consistencyStatus reconoce los errores de reglas cruzadas del modelo.
func consistencyStatus(err error) error {
	switch {
	case errors.Is(err, model.ErrLateWithoutMinutes),
		errors.Is(err, model.ErrLateMinutesRequireLate),
		errors.Is(err, model.ErrDepartureTimeMismatch):
		return err
	}
	return nil
}
