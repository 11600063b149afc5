package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type NotificationModel struct {
	// PK
	NotificationsID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:notifications_id" json:"notifications_id"`

	// Destinatario y tipo
	NotificationsRecipientID uuid.UUID `gorm:"type:uuid;not null;index:idx_notifications_recipient_read;column:notifications_recipient_id" json:"notifications_recipient_id"`
	NotificationsTypeID      uuid.UUID `gorm:"type:uuid;not null;index;column:notifications_type_id" json:"notifications_type_id"`

	NotificationsTitle   string `gorm:"type:varchar(200);not null;column:notifications_title" json:"notifications_title"`
	NotificationsMessage string `gorm:"type:text;not null;column:notifications_message" json:"notifications_message"`

	// Entidad relacionada (opcional)
	NotificationsRelatedKind *string        `gorm:"type:varchar(40);index;column:notifications_related_kind" json:"notifications_related_kind,omitempty"`
	NotificationsRelatedID   *uuid.UUID     `gorm:"type:uuid;index;column:notifications_related_id" json:"notifications_related_id,omitempty"`
	NotificationsMetadata    datatypes.JSON `gorm:"type:jsonb;column:notifications_metadata" json:"notifications_metadata,omitempty"`

	// Lectura
	NotificationsIsRead bool       `gorm:"not null;default:false;index:idx_notifications_recipient_read;column:notifications_is_read" json:"notifications_is_read"`
	NotificationsReadAt *time.Time `gorm:"type:timestamptz;column:notifications_read_at" json:"notifications_read_at,omitempty"`

	// Resultado por canal
	NotificationsSentPush  bool `gorm:"not null;default:false;column:notifications_sent_push" json:"notifications_sent_push"`
	NotificationsSentEmail bool `gorm:"not null;default:false;column:notifications_sent_email" json:"notifications_sent_email"`

	// Audit
	NotificationsCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;index;column:notifications_created_at" json:"notifications_created_at"`
	NotificationsUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:notifications_updated_at" json:"notifications_updated_at"`
	NotificationsDeletedAt gorm.DeletedAt `gorm:"column:notifications_deleted_at;index" json:"notifications_deleted_at,omitempty"`
}

func (NotificationModel) TableName() string { return "notifications" }
