package model

import (
	"time"

	"github.com/google/uuid"
)

type NotificationChannel string

const (
	ChannelPush  NotificationChannel = "PUSH"
	ChannelEmail NotificationChannel = "EMAIL"
)

type NotificationOutcome string

const (
	OutcomeEnviado NotificationOutcome = "ENVIADO"
	OutcomeFallido NotificationOutcome = "FALLIDO"
)

// Auditoría de cada intento de entrega por canal.
type NotificationHistoryModel struct {
	NotificationHistoryID             uuid.UUID           `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:notification_history_id" json:"notification_history_id"`
	NotificationHistoryNotificationID uuid.UUID           `gorm:"type:uuid;not null;index;column:notification_history_notification_id" json:"notification_history_notification_id"`
	NotificationHistoryChannel        NotificationChannel `gorm:"type:varchar(10);not null;index;column:notification_history_channel" json:"notification_history_channel"`
	NotificationHistoryOutcome        NotificationOutcome `gorm:"type:varchar(10);not null;index;column:notification_history_outcome" json:"notification_history_outcome"`
	NotificationHistoryErrorMessage   *string             `gorm:"type:text;column:notification_history_error_message" json:"notification_history_error_message,omitempty"`
	NotificationHistoryAttemptedAt    time.Time           `gorm:"type:timestamptz;not null;autoCreateTime;index;column:notification_history_attempted_at" json:"notification_history_attempted_at"`
}

func (NotificationHistoryModel) TableName() string { return "notification_history" }
