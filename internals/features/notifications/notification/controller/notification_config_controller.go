package controller

import (
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	dto "akademiku_backend/internals/features/notifications/notification/dto"
	model "akademiku_backend/internals/features/notifications/notification/model"
	notifService "akademiku_backend/internals/features/notifications/service"
	helper "akademiku_backend/internals/helpers"
)

type NotificationConfigController struct {
	DB *gorm.DB
}

func NewNotificationConfigController(db *gorm.DB) *NotificationConfigController {
	return &NotificationConfigController{DB: db}
}

// GET /api/u/notification-config
// Primer acceso: se crea con los valores por defecto.
func (cc *NotificationConfigController) GetMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	config, err := notifService.GetOrCreateConfig(cc.DB, userID)
	if err != nil {
		log.Println("[ERROR] obteniendo configuración de notificaciones:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo obtener tu configuración")
	}
	return helper.Success(c, "Configuración de notificaciones obtenida", config)
}

// PUT /api/u/notification-config
func (cc *NotificationConfigController) UpdateMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateConfigRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.NotificationConfigsActiveStart != nil && !validClockString(*req.NotificationConfigsActiveStart) {
		return helper.Error(c, fiber.StatusUnprocessableEntity, "La hora de inicio debe tener formato HH:MM")
	}
	if req.NotificationConfigsActiveEnd != nil && !validClockString(*req.NotificationConfigsActiveEnd) {
		return helper.Error(c, fiber.StatusUnprocessableEntity, "La hora de fin debe tener formato HH:MM")
	}

	config, err := notifService.GetOrCreateConfig(cc.DB, userID)
	if err != nil {
		log.Println("[ERROR] obteniendo configuración de notificaciones:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo obtener tu configuración")
	}

	req.ApplyToModel(config)
	if len(req.NotificationConfigsActiveDays) > 0 {
		raw, err := sonic.Marshal(req.NotificationConfigsActiveDays)
		if err == nil {
			config.NotificationConfigsActiveDays = datatypes.JSON(raw)
		}
	}
	if config.NotificationConfigsActiveStart > config.NotificationConfigsActiveEnd {
		return helper.Error(c, fiber.StatusUnprocessableEntity, "La hora de inicio no puede ser posterior a la de fin")
	}

	if err := cc.DB.Save(config).Error; err != nil {
		log.Println("[ERROR] guardando configuración de notificaciones:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo guardar tu configuración")
	}
	return helper.Success(c, "Configuración de notificaciones actualizada", config)
}

// GET /api/a/notification-history
// Auditoría de intentos de entrega por canal.
func (cc *NotificationConfigController) ListHistory(c *fiber.Ctx) error {
	var q dto.ListHistoryQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Parámetros de búsqueda inválidos")
	}

	p := helper.ParseFiber(c, "attempted_at", "desc", helper.DefaultOpts)
	tx := cc.DB.Model(&model.NotificationHistoryModel{})
	if q.Channel != nil {
		tx = tx.Where("notification_history_channel = ?", *q.Channel)
	}
	if q.Outcome != nil {
		tx = tx.Where("notification_history_outcome = ?", *q.Outcome)
	}
	if q.Since != nil {
		since, err := time.Parse("2006-01-02", *q.Since)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "since debe tener formato YYYY-MM-DD")
		}
		tx = tx.Where("notification_history_attempted_at >= ?", since)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Println("[ERROR] contando historial de notificaciones:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo listar el historial")
	}

	var rows []model.NotificationHistoryModel
	if err := tx.Order("notification_history_attempted_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		log.Println("[ERROR] listando historial de notificaciones:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo listar el historial")
	}

	return helper.Success(c, "Historial de notificaciones obtenido", fiber.Map{
		"items":      rows,
		"pagination": helper.BuildMeta(total, p),
	})
}

func validClockString(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}
