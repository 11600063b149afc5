package model

import (
	"time"

	"github.com/google/uuid"
)

// Token de recuperación de contraseña: uuid de un solo uso, válido 24h.
type PasswordResetTokenModel struct {
	PasswordResetTokensID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:password_reset_tokens_id" json:"password_reset_tokens_id"`
	PasswordResetTokensUserID uuid.UUID `gorm:"type:uuid;not null;index:idx_password_reset_tokens_user_id;column:password_reset_tokens_user_id" json:"password_reset_tokens_user_id"`

	PasswordResetTokensToken     string     `gorm:"type:varchar(64);not null;uniqueIndex:uq_password_reset_tokens_token;column:password_reset_tokens_token" json:"-"`
	PasswordResetTokensExpiresAt time.Time  `gorm:"type:timestamptz;not null;column:password_reset_tokens_expires_at" json:"password_reset_tokens_expires_at"`
	PasswordResetTokensUsedAt    *time.Time `gorm:"type:timestamptz;column:password_reset_tokens_used_at" json:"password_reset_tokens_used_at,omitempty"`

	PasswordResetTokensCreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime;column:password_reset_tokens_created_at" json:"password_reset_tokens_created_at"`
}

func (PasswordResetTokenModel) TableName() string { return "password_reset_tokens" }

// Usable: no consumido y todavía vigente.
func (m *PasswordResetTokenModel) Usable(now time.Time) bool {
	return m.PasswordResetTokensUsedAt == nil && now.Before(m.PasswordResetTokensExpiresAt)
}
