package controller

import (
	"log"
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
	recordDTO "akademiku_backend/internals/features/attendance/attendance_record/dto"
	recordModel "akademiku_backend/internals/features/attendance/attendance_record/model"
	dto "akademiku_backend/internals/features/attendance/roll_call/dto"
	model "akademiku_backend/internals/features/attendance/roll_call/model"
	helper "akademiku_backend/internals/helpers"
)

var validate = validator.New()

type RollCallController struct {
	DB *gorm.DB
}

func NewRollCallController(db *gorm.DB) *RollCallController {
	return &RollCallController{DB: db}
}

var rollCallSortable = map[string]string{
	"class_date": "roll_calls_class_date",
	"called_at":  "roll_calls_called_at",
	"created_at": "roll_calls_created_at",
}

// POST /api/i/roll-calls
// Abrir el llamado crea, en la misma transacción, un registro SIN_REGISTRAR
// por cada aprendiz con matrícula activa en la ficha.
func (rc *RollCallController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	role, err := helper.GetUserRoleFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateRollCallRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// El instructor abre a su nombre; el administrador puede abrir a nombre
	// de un instructor asignado indicándolo en el cuerpo.
	instructorID := userID
	if req.RollCallsInstructorID != nil && *req.RollCallsInstructorID != userID {
		if role != constants.RoleAdministrator {
			return helper.Error(c, fiber.StatusForbidden, "Solo un administrador puede abrir llamados a nombre de otro instructor")
		}
		instructorID = *req.RollCallsInstructorID
	}

	var outcome outcomeModel.LearningOutcomeModel
	if err := rc.DB.First(&outcome, "learning_outcomes_id = ?", req.RollCallsLearningOutcomeID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "El resultado de aprendizaje indicado no existe")
	}
	var cohort cohortModel.CohortModel
	if err := rc.DB.First(&cohort, "cohorts_id = ?", req.RollCallsCohortID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "La ficha indicada no existe")
	}

	assigned, err := assignmentService.HasActiveAssignment(rc.DB, instructorID, outcome.LearningOutcomesID, cohort.CohortsID)
	if err != nil {
		log.Println("[ERROR] verificando asignación del instructor:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo verificar la asignación del instructor")
	}
	if !assigned {
		return helper.Error(c, fiber.StatusForbidden, "El instructor no tiene asignación activa para este resultado en la ficha")
	}

	rollCall := req.ToModel(instructorID)
	if rollCall.RollCallsClassDate.After(time.Now()) {
		return helper.Error(c, fiber.StatusUnprocessableEntity, "La fecha de clase no puede estar en el futuro")
	}

	apprenticeIDs, err := enrollmentService.ActiveApprenticeIDs(rc.DB, cohort.CohortsID)
	if err != nil {
		log.Println("[ERROR] consultando matrículas activas:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo consultar las matrículas de la ficha")
	}

	txErr := rc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(rollCall).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "Ya existe un llamado para esa sesión (instructor, resultado, ficha y fecha)")
			}
			return err
		}

		if len(apprenticeIDs) == 0 {
			return nil
		}
		records := make([]recordModel.AttendanceRecordModel, 0, len(apprenticeIDs))
		for _, apprenticeID := range apprenticeIDs {
			records = append(records, recordModel.AttendanceRecordModel{
				AttendanceRecordsRollCallID:   rollCall.RollCallsID,
				AttendanceRecordsApprenticeID: apprenticeID,
				AttendanceRecordsStatus:       recordModel.AttendanceStatusSinRegistrar,
				AttendanceRecordsRecordedAt:   time.Now(),
			})
		}
		return tx.Create(&records).Error
	})
	if txErr != nil {
		if fe, ok := txErr.(*fiber.Error); ok {
			return helper.Error(c, fe.Code, fe.Message)
		}
		log.Println("[ERROR] creando llamado de asistencia:", txErr)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear el llamado de asistencia")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Llamado de asistencia creado", fiber.Map{
		"roll_call":         dto.NewRollCallResponse(rollCall),
		"registros_creados": len(apprenticeIDs),
	})
}

// GET /api/i/roll-calls
// Los instructores solo ven sus propios llamados.
func (rc *RollCallController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	role, err := helper.GetUserRoleFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var q dto.ListRollCallsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Parámetros de búsqueda inválidos")
	}

	p := helper.ParseFiber(c, "class_date", "desc", helper.DefaultOpts)
	orderClause, err := p.SafeOrderClause(rollCallSortable, "class_date")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "sort_by no es válido")
	}

	tx := rc.DB.Model(&model.RollCallModel{})
	if role == constants.RoleInstructor {
		tx = tx.Where("roll_calls_instructor_id = ?", userID)
	}
	if q.CohortID != nil {
		tx = tx.Where("roll_calls_cohort_id = ?", *q.CohortID)
	}
	if q.OutcomeID != nil {
		tx = tx.Where("roll_calls_learning_outcome_id = ?", *q.OutcomeID)
	}
	if q.DateFrom != nil {
		tx = tx.Where("roll_calls_class_date >= ?", *q.DateFrom)
	}
	if q.DateTo != nil {
		tx = tx.Where("roll_calls_class_date <= ?", *q.DateTo)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Println("[ERROR] contando llamados:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo listar los llamados")
	}

	var rollCalls []model.RollCallModel
	if err := tx.Order(strings.TrimPrefix(orderClause, "ORDER BY ")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rollCalls).Error; err != nil {
		log.Println("[ERROR] listando llamados:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo listar los llamados")
	}

	return helper.Success(c, "Llamados de asistencia obtenidos", fiber.Map{
		"items":      dto.NewRollCallResponses(rollCalls),
		"pagination": helper.BuildMeta(total, p),
	})
}

// GET /api/i/roll-calls/:id
// Detalle con los registros de asistencia de la sesión.
func (rc *RollCallController) GetByID(c *fiber.Ctx) error {
	rollCall, err := rc.findOwned(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var records []recordModel.AttendanceRecordModel
	if err := rc.DB.
		Where("attendance_records_roll_call_id = ?", rollCall.RollCallsID).
		Order("attendance_records_created_at ASC").
		Find(&records).Error; err != nil {
		log.Println("[ERROR] listando registros del llamado:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo consultar los registros del llamado")
	}

	return helper.Success(c, "Llamado de asistencia obtenido", fiber.Map{
		"roll_call": dto.NewRollCallResponse(rollCall),
		"records":   recordDTO.NewAttendanceRecordResponses(records),
	})
}

// PUT /api/i/roll-calls/:id
func (rc *RollCallController) Update(c *fiber.Ctx) error {
	rollCall, err := rc.findOwned(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateRollCallRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyToModel(rollCall)
	if err := rc.DB.Save(rollCall).Error; err != nil {
		log.Println("[ERROR] actualizando llamado:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar el llamado")
	}
	return helper.Success(c, "Llamado de asistencia actualizado", dto.NewRollCallResponse(rollCall))
}

// DELETE /api/i/roll-calls/:id
func (rc *RollCallController) Delete(c *fiber.Ctx) error {
	rollCall, err := rc.findOwned(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := rc.DB.Delete(rollCall).Error; err != nil {
		log.Println("[ERROR] eliminando llamado:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar el llamado")
	}
	return helper.Success(c, "Llamado de asistencia eliminado", fiber.Map{
		"roll_calls_id": rollCall.RollCallsID,
	})
}

// findOwned carga el llamado y aplica el alcance por rol: un instructor solo
// alcanza sus propios llamados.
func (rc *RollCallController) findOwned(c *fiber.Ctx) (*model.RollCallModel, error) {
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
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID de llamado inválido")
	}

	var rollCall model.RollCallModel
	if err := rc.DB.First(&rollCall, "roll_calls_id = ?", id).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Llamado de asistencia no encontrado")
	}
	if role == constants.RoleInstructor && rollCall.RollCallsInstructorID != userID {
		return nil, fiber.NewError(fiber.StatusForbidden, "Este llamado pertenece a otro instructor")
	}
	return &rollCall, nil
}
