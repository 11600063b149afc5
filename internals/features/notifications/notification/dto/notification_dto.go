package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "akademiku_backend/internals/features/notifications/notification/model"
)

/* ===================== REQUESTS ===================== */

type ListNotificationsQuery struct {
	Read *bool   `query:"read"`
	Type *string `query:"type"`
}

type MarkReadRequest struct {
	NotificationIDs []uuid.UUID `json:"notification_ids" validate:"required,min=1"`
}

// Envío manual desde el panel. Force solo lo respeta un administrador.
type CustomSendRequest struct {
	RecipientIDs []uuid.UUID `json:"recipient_ids" validate:"required,min=1"`
	TypeName     string      `json:"type_name" validate:"required,oneof=NUEVA_ACTIVIDAD ACTIVIDAD_VALORADA CITACION_COMITE ALTA_INASISTENCIA BAJO_RENDIMIENTO RECORDATORIO SISTEMA"`
	Title        string      `json:"title" validate:"required,max=200"`
	Message      string      `json:"message" validate:"required"`
	Force        bool        `json:"force"`
}

type UpdateConfigRequest struct {
	NotificationConfigsPushEnabled  *bool `json:"notification_configs_push_enabled"`
	NotificationConfigsEmailEnabled *bool `json:"notification_configs_email_enabled"`

	NotificationConfigsNewActivity    *bool `json:"notification_configs_new_activity"`
	NotificationConfigsActivityGraded *bool `json:"notification_configs_activity_graded"`
	NotificationConfigsCitation       *bool `json:"notification_configs_citation"`
	NotificationConfigsHighAbsence    *bool `json:"notification_configs_high_absence"`
	NotificationConfigsLowPerformance *bool `json:"notification_configs_low_performance"`
	NotificationConfigsReminders      *bool `json:"notification_configs_reminders"`

	NotificationConfigsActiveStart *string `json:"notification_configs_active_start" validate:"omitempty,len=5"`
	NotificationConfigsActiveEnd   *string `json:"notification_configs_active_end" validate:"omitempty,len=5"`
	NotificationConfigsActiveDays  []int   `json:"notification_configs_active_days" validate:"omitempty,dive,min=1,max=7"`
}

func (r UpdateConfigRequest) ApplyToModel(m *model.NotificationConfigModel) {
	if r.NotificationConfigsPushEnabled != nil {
		m.NotificationConfigsPushEnabled = *r.NotificationConfigsPushEnabled
	}
	if r.NotificationConfigsEmailEnabled != nil {
		m.NotificationConfigsEmailEnabled = *r.NotificationConfigsEmailEnabled
	}
	if r.NotificationConfigsNewActivity != nil {
		m.NotificationConfigsNewActivity = *r.NotificationConfigsNewActivity
	}
	if r.NotificationConfigsActivityGraded != nil {
		m.NotificationConfigsActivityGraded = *r.NotificationConfigsActivityGraded
	}
	if r.NotificationConfigsCitation != nil {
		m.NotificationConfigsCitation = *r.NotificationConfigsCitation
	}
	if r.NotificationConfigsHighAbsence != nil {
		m.NotificationConfigsHighAbsence = *r.NotificationConfigsHighAbsence
	}
	if r.NotificationConfigsLowPerformance != nil {
		m.NotificationConfigsLowPerformance = *r.NotificationConfigsLowPerformance
	}
	if r.NotificationConfigsReminders != nil {
		m.NotificationConfigsReminders = *r.NotificationConfigsReminders
	}
	if r.NotificationConfigsActiveStart != nil {
		m.NotificationConfigsActiveStart = *r.NotificationConfigsActiveStart
	}
	if r.NotificationConfigsActiveEnd != nil {
		m.NotificationConfigsActiveEnd = *r.NotificationConfigsActiveEnd
	}
}

type ListHistoryQuery struct {
	Channel *string `query:"channel"`
	Outcome *string `query:"outcome"`
	Since   *string `query:"since"` // YYYY-MM-DD
}

/* ===================== RESPONSES ===================== */

type NotificationResponse struct {
	NotificationsID          uuid.UUID      `json:"notifications_id"`
	NotificationsRecipientID uuid.UUID      `json:"notifications_recipient_id"`
	TypeName                 string         `json:"type_name"`
	NotificationsTitle       string         `json:"notifications_title"`
	NotificationsMessage     string         `json:"notifications_message"`
	NotificationsRelatedKind *string        `json:"notifications_related_kind,omitempty"`
	NotificationsRelatedID   *uuid.UUID     `json:"notifications_related_id,omitempty"`
	NotificationsMetadata    datatypes.JSON `json:"notifications_metadata,omitempty"`
	NotificationsIsRead      bool           `json:"notifications_is_read"`
	NotificationsReadAt      *time.Time     `json:"notifications_read_at,omitempty"`
	NotificationsSentPush    bool           `json:"notifications_sent_push"`
	NotificationsSentEmail   bool           `json:"notifications_sent_email"`
	NotificationsCreatedAt   time.Time      `json:"notifications_created_at"`
}

func NewNotificationResponse(m *model.NotificationModel, typeName string) *NotificationResponse {
	if m == nil {
		return nil
	}
	return &NotificationResponse{
		NotificationsID:          m.NotificationsID,
		NotificationsRecipientID: m.NotificationsRecipientID,
		TypeName:                 typeName,
		NotificationsTitle:       m.NotificationsTitle,
		NotificationsMessage:     m.NotificationsMessage,
		NotificationsRelatedKind: m.NotificationsRelatedKind,
		NotificationsRelatedID:   m.NotificationsRelatedID,
		NotificationsMetadata:    m.NotificationsMetadata,
		NotificationsIsRead:      m.NotificationsIsRead,
		NotificationsReadAt:      m.NotificationsReadAt,
		NotificationsSentPush:    m.NotificationsSentPush,
		NotificationsSentEmail:   m.NotificationsSentEmail,
		NotificationsCreatedAt:   m.NotificationsCreatedAt,
	}
}

type NotificationSummaryResponse struct {
	Total         int64            `json:"total"`
	Unread        int64            `json:"unread"`
	UnreadPerType map[string]int64 `json:"unread_per_type"`
}
