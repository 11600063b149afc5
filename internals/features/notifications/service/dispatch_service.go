package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	model "akademiku_backend/internals/features/notifications/notification/model"
	userModel "akademiku_backend/internals/features/users/user/model"
)

// ErrNotificationBlocked: la configuración del destinatario (o el tipo
// desactivado) impidió el envío. No se crea fila y en los envíos masivos
// cuenta como fallida.
var ErrNotificationBlocked = errors.New("notificación bloqueada por la configuración del destinatario")

type SendInput struct {
	RecipientID uuid.UUID
	TypeName    string
	Title       string
	Message     string

	RelatedKind string
	RelatedID   *uuid.UUID
	Metadata    map[string]interface{}

	// Force ignora la configuración del usuario e intenta ambos canales.
	Force bool
}

type BulkResult struct {
	Enviadas int `json:"enviadas"`
	Fallidas int `json:"fallidas"`
	Total    int `json:"total"`
}

// Send crea la notificación y prueba cada canal habilitado de forma
// independiente; cada intento queda en notification_history. El fallo de un
// canal nunca tumba al otro ni a la petición.
func Send(db *gorm.DB, in SendInput) (*model.NotificationModel, error) {
	var ntype model.NotificationTypeModel
	if err := db.First(&ntype, "notification_types_name = ?", in.TypeName).Error; err != nil {
		return nil, fmt.Errorf("tipo de notificación %q no existe", in.TypeName)
	}

	config, err := getOrCreateConfig(db, in.RecipientID)
	if err != nil {
		return nil, err
	}

	if !in.Force {
		switch {
		case !ntype.NotificationTypesIsActive:
			return nil, ErrNotificationBlocked
		case !config.AllowsType(in.TypeName):
			return nil, ErrNotificationBlocked
		case !config.NotificationConfigsPushEnabled && !config.NotificationConfigsEmailEnabled:
			return nil, ErrNotificationBlocked
		case !config.InActiveWindow(time.Now()):
			return nil, ErrNotificationBlocked
		}
	}

	notif := &model.NotificationModel{
		NotificationsRecipientID: in.RecipientID,
		NotificationsTypeID:      ntype.NotificationTypesID,
		NotificationsTitle:       in.Title,
		NotificationsMessage:     in.Message,
		NotificationsRelatedID:   in.RelatedID,
	}
	if in.RelatedKind != "" {
		kind := in.RelatedKind
		notif.NotificationsRelatedKind = &kind
	}
	if len(in.Metadata) > 0 {
		raw, err := sonic.Marshal(in.Metadata)
		if err == nil {
			notif.NotificationsMetadata = datatypes.JSON(raw)
		}
	}
	if err := db.Create(notif).Error; err != nil {
		return nil, err
	}

	var recipient userModel.UserModel
	if err := db.First(&recipient, "users_id = ?", in.RecipientID).Error; err != nil {
		log.Println("[WARN] destinatario de notificación no encontrado:", err)
		return notif, nil
	}

	if in.Force || config.NotificationConfigsPushEnabled {
		attemptPush(db, notif, &recipient)
	}
	if in.Force || config.NotificationConfigsEmailEnabled {
		attemptEmail(db, notif, &recipient)
	}
	return notif, nil
}

// SendBulk envía a cada destinatario sin abortar por fallos individuales.
func SendBulk(db *gorm.DB, recipients []uuid.UUID, in SendInput) BulkResult {
	res := BulkResult{Total: len(recipients)}
	for _, id := range recipients {
		in := in
		in.RecipientID = id
		if _, err := Send(db, in); err != nil {
			if !errors.Is(err, ErrNotificationBlocked) {
				log.Println("[ERROR] envío masivo de notificación:", err)
			}
			res.Fallidas++
			continue
		}
		res.Enviadas++
	}
	return res
}

// WasSentSince indica si ya se envió una notificación de ese tipo al
// destinatario por la misma entidad relacionada desde el instante dado.
// Sirve de antirrebote para las alertas periódicas.
func WasSentSince(db *gorm.DB, recipientID uuid.UUID, typeName, relatedKind string, relatedID uuid.UUID, since time.Time) (bool, error) {
	var count int64
	err := db.Model(&model.NotificationModel{}).
		Joins("JOIN notification_types ON notification_types.notification_types_id = notifications.notifications_type_id").
		Where("notifications.notifications_recipient_id = ?", recipientID).
		Where("notification_types.notification_types_name = ?", typeName).
		Where("notifications.notifications_related_kind = ?", relatedKind).
		Where("notifications.notifications_related_id = ?", relatedID).
		Where("notifications.notifications_created_at >= ?", since).
		Count(&count).Error
	return count > 0, err
}

// getOrCreateConfig devuelve la configuración del usuario, creándola con los
// valores por defecto en el primer acceso.
func getOrCreateConfig(db *gorm.DB, userID uuid.UUID) (*model.NotificationConfigModel, error) {
	var config model.NotificationConfigModel
	err := db.First(&config, "notification_configs_user_id = ?", userID).Error
	if err == nil {
		return &config, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fresh := model.DefaultConfig(userID)
	if err := db.Create(fresh).Error; err != nil {
		// Otro request pudo crearla en paralelo.
		if err2 := db.First(&config, "notification_configs_user_id = ?", userID).Error; err2 == nil {
			return &config, nil
		}
		return nil, err
	}
	return fresh, nil
}

// GetOrCreateConfig expone la configuración con defaults al controller.
func GetOrCreateConfig(db *gorm.DB, userID uuid.UUID) (*model.NotificationConfigModel, error) {
	return getOrCreateConfig(db, userID)
}

func appendHistory(db *gorm.DB, notifID uuid.UUID, channel model.NotificationChannel, attemptErr error) {
	row := model.NotificationHistoryModel{
		NotificationHistoryNotificationID: notifID,
		NotificationHistoryChannel:        channel,
		NotificationHistoryOutcome:        model.OutcomeEnviado,
	}
	if attemptErr != nil {
		msg := attemptErr.Error()
		row.NotificationHistoryOutcome = model.OutcomeFallido
		row.NotificationHistoryErrorMessage = &msg
	}
	if err := db.Create(&row).Error; err != nil {
		log.Println("[ERROR] guardando historial de notificación:", err)
	}
}

func attemptPush(db *gorm.DB, notif *model.NotificationModel, recipient *userModel.UserModel) {
	err := pushProvider().SendPush(recipient.UsersID, notif.NotificationsTitle, notif.NotificationsMessage)
	appendHistory(db, notif.NotificationsID, model.ChannelPush, err)
	if err != nil {
		log.Println("[WARN] canal push falló:", err)
		return
	}
	if err := db.Model(notif).UpdateColumn("notifications_sent_push", true).Error; err == nil {
		notif.NotificationsSentPush = true
	}
}

func attemptEmail(db *gorm.DB, notif *model.NotificationModel, recipient *userModel.UserModel) {
	err := SendPlainEmail(recipient.UsersEmail, recipient.FullName(), notif.NotificationsTitle, notif.NotificationsMessage)
	appendHistory(db, notif.NotificationsID, model.ChannelEmail, err)
	if err != nil {
		log.Println("[WARN] canal email falló:", err)
		return
	}
	if err := db.Model(notif).UpdateColumn("notifications_sent_email", true).Error; err == nil {
		notif.NotificationsSentEmail = true
	}
}
