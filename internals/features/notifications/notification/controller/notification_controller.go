package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"akademiku_backend/internals/constants"
	dto "akademiku_backend/internals/features/notifications/notification/dto"
	model "akademiku_backend/internals/features/notifications/notification/model"
	notifService "akademiku_backend/internals/features/notifications/service"
	helper "akademiku_backend/internals/helpers"
)

var validate = validator.New()

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// Nombres de tipo para un lote de notificaciones, en una sola consulta.
func (nc *NotificationController) typeNames(notifs []model.NotificationModel) map[uuid.UUID]string {
	names := make(map[uuid.UUID]string)
	if len(notifs) == 0 {
		return names
	}
	ids := make([]uuid.UUID, 0, len(notifs))
	seen := make(map[uuid.UUID]bool)
	for i := range notifs {
		if !seen[notifs[i].NotificationsTypeID] {
			seen[notifs[i].NotificationsTypeID] = true
			ids = append(ids, notifs[i].NotificationsTypeID)
		}
	}
	var types []model.NotificationTypeModel
	if err := nc.DB.Where("notification_types_id IN ?", ids).Find(&types).Error; err != nil {
		log.Println("[ERROR] resolviendo tipos de notificación:", err)
		return names
	}
	for i := range types {
		names[types[i].NotificationTypesID] = types[i].NotificationTypesName
	}
	return names
}

func (nc *NotificationController) buildResponses(notifs []model.NotificationModel) []dto.NotificationResponse {
	names := nc.typeNames(notifs)
	out := make([]dto.NotificationResponse, 0, len(notifs))
	for i := range notifs {
		out = append(out, *dto.NewNotificationResponse(&notifs[i], names[notifs[i].NotificationsTypeID]))
	}
	return out
}

// GET /api/u/notifications
func (nc *NotificationController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var q dto.ListNotificationsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Parámetros de búsqueda inválidos")
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	tx := nc.DB.Model(&model.NotificationModel{}).
		Where("notifications_recipient_id = ?", userID)
	if q.Read != nil {
		tx = tx.Where("notifications_is_read = ?", *q.Read)
	}
	if q.Type != nil && strings.TrimSpace(*q.Type) != "" {
		tx = tx.Joins("JOIN notification_types ON notification_types.notification_types_id = notifications.notifications_type_id").
			Where("notification_types.notification_types_name = ?", strings.ToUpper(strings.TrimSpace(*q.Type)))
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Println("[ERROR] contando notificaciones:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo listar las notificaciones")
	}

	var notifs []model.NotificationModel
	if err := tx.Order("notifications_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&notifs).Error; err != nil {
		log.Println("[ERROR] listando notificaciones:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo listar las notificaciones")
	}

	return helper.Success(c, "Notificaciones obtenidas", fiber.Map{
		"items":      nc.buildResponses(notifs),
		"pagination": helper.BuildMeta(total, p),
	})
}

// GET /api/u/notifications/unread
func (nc *NotificationController) Unread(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var notifs []model.NotificationModel
	if err := nc.DB.
		Where("notifications_recipient_id = ?", userID).
		Where("notifications_is_read = ?", false).
		Order("notifications_created_at DESC").
		Limit(100).
		Find(&notifs).Error; err != nil {
		log.Println("[ERROR] listando notificaciones no leídas:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo listar las notificaciones")
	}

	return helper.Success(c, "Notificaciones no leídas", fiber.Map{
		"items": nc.buildResponses(notifs),
		"total": len(notifs),
	})
}

// GET /api/u/notifications/summary
func (nc *NotificationController) Summary(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var summary dto.NotificationSummaryResponse
	base := nc.DB.Model(&model.NotificationModel{}).
		Where("notifications_recipient_id = ?", userID)

	if err := base.Session(&gorm.Session{}).Count(&summary.Total).Error; err != nil {
		log.Println("[ERROR] resumen de notificaciones:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo obtener el resumen")
	}
	if err := base.Session(&gorm.Session{}).
		Where("notifications_is_read = ?", false).
		Count(&summary.Unread).Error; err != nil {
		log.Println("[ERROR] resumen de notificaciones:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo obtener el resumen")
	}

	type perType struct {
		Name  string `gorm:"column:notification_types_name"`
		Count int64  `gorm:"column:unread_count"`
	}
	var rows []perType
	if err := nc.DB.Table("notifications").
		Select("notification_types.notification_types_name, COUNT(*) AS unread_count").
		Joins("JOIN notification_types ON notification_types.notification_types_id = notifications.notifications_type_id").
		Where("notifications.notifications_recipient_id = ?", userID).
		Where("notifications.notifications_is_read = ?", false).
		Where("notifications.notifications_deleted_at IS NULL").
		Group("notification_types.notification_types_name").
		Scan(&rows).Error; err != nil {
		log.Println("[ERROR] resumen por tipo:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo obtener el resumen")
	}

	summary.UnreadPerType = make(map[string]int64, len(rows))
	for _, r := range rows {
		summary.UnreadPerType[r.Name] = r.Count
	}

	return helper.Success(c, "Resumen de notificaciones", summary)
}

// GET /api/u/notifications/:id
// Consultar el detalle marca la notificación como leída.
func (nc *NotificationController) GetByID(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de notificación inválido")
	}

	var notif model.NotificationModel
	if err := nc.DB.
		Where("notifications_id = ?", id).
		Where("notifications_recipient_id = ?", userID).
		First(&notif).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Notificación no encontrada")
	}

	if !notif.NotificationsIsRead {
		now := time.Now()
		if err := nc.DB.Model(&notif).UpdateColumns(map[string]interface{}{
			"notifications_is_read": true,
			"notifications_read_at": now,
		}).Error; err == nil {
			notif.NotificationsIsRead = true
			notif.NotificationsReadAt = &now
		}
	}

	names := nc.typeNames([]model.NotificationModel{notif})
	return helper.Success(c, "Notificación obtenida",
		dto.NewNotificationResponse(&notif, names[notif.NotificationsTypeID]))
}

// PATCH /api/u/notifications/read
func (nc *NotificationController) MarkRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.MarkReadRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	res := nc.DB.Model(&model.NotificationModel{}).
		Where("notifications_id IN ?", req.NotificationIDs).
		Where("notifications_recipient_id = ?", userID).
		Where("notifications_is_read = ?", false).
		UpdateColumns(map[string]interface{}{
			"notifications_is_read": true,
			"notifications_read_at": time.Now(),
		})
	if res.Error != nil {
		log.Println("[ERROR] marcando notificaciones leídas:", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo marcar las notificaciones")
	}

	return helper.Success(c, "Notificaciones marcadas como leídas", fiber.Map{
		"marcadas": res.RowsAffected,
	})
}

// PATCH /api/u/notifications/read-all
func (nc *NotificationController) MarkAllRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := nc.DB.Model(&model.NotificationModel{}).
		Where("notifications_recipient_id = ?", userID).
		Where("notifications_is_read = ?", false).
		UpdateColumns(map[string]interface{}{
			"notifications_is_read": true,
			"notifications_read_at": time.Now(),
		})
	if res.Error != nil {
		log.Println("[ERROR] marcando todas las notificaciones:", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo marcar las notificaciones")
	}

	return helper.Success(c, "Todas las notificaciones marcadas como leídas", fiber.Map{
		"marcadas": res.RowsAffected,
	})
}

// DELETE /api/u/notifications/:id
func (nc *NotificationController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de notificación inválido")
	}

	var notif model.NotificationModel
	if err := nc.DB.
		Where("notifications_id = ?", id).
		Where("notifications_recipient_id = ?", userID).
		First(&notif).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Notificación no encontrada")
	}

	if err := nc.DB.Delete(&notif).Error; err != nil {
		log.Println("[ERROR] eliminando notificación:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar la notificación")
	}
	return helper.Success(c, "Notificación eliminada", fiber.Map{
		"notifications_id": id,
	})
}

// GET /api/u/notification-types
func (nc *NotificationController) ListTypes(c *fiber.Ctx) error {
	var types []model.NotificationTypeModel
	if err := nc.DB.Order("notification_types_name ASC").Find(&types).Error; err != nil {
		log.Println("[ERROR] listando tipos de notificación:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo listar los tipos")
	}
	return helper.Success(c, "Tipos de notificación", fiber.Map{
		"items": types,
	})
}

// POST /api/i/notifications/send
// Envío manual. Force solo se respeta cuando quien llama es administrador.
func (nc *NotificationController) CustomSend(c *fiber.Ctx) error {
	role, err := helper.GetUserRoleFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CustomSendRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	force := req.Force && role == constants.RoleAdministrator
	in := notifService.SendInput{
		TypeName: req.TypeName,
		Title:    req.Title,
		Message:  req.Message,
		Force:    force,
	}

	if len(req.RecipientIDs) == 1 {
		in.RecipientID = req.RecipientIDs[0]
		notif, err := notifService.Send(nc.DB, in)
		if err != nil {
			if errors.Is(err, notifService.ErrNotificationBlocked) {
				return helper.Error(c, fiber.StatusUnprocessableEntity, err.Error())
			}
			log.Println("[ERROR] enviando notificación:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "No se pudo enviar la notificación")
		}
		names := nc.typeNames([]model.NotificationModel{*notif})
		return helper.SuccessWithCode(c, fiber.StatusCreated, "Notificación enviada",
			dto.NewNotificationResponse(notif, names[notif.NotificationsTypeID]))
	}

	result := notifService.SendBulk(nc.DB, req.RecipientIDs, in)
	return helper.Success(c, "Envío masivo procesado", result)
}
