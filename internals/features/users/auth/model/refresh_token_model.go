package model

import (
	"time"

	"github.com/google/uuid"
)

// Se guarda el HASH del refresh token (HMAC-SHA256), nunca el texto plano.
type RefreshTokenModel struct {
	RefreshTokensID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:refresh_tokens_id" json:"refresh_tokens_id"`
	RefreshTokensUserID uuid.UUID `gorm:"type:uuid;not null;index:idx_refresh_tokens_user_id;column:refresh_tokens_user_id" json:"refresh_tokens_user_id"`

	RefreshTokensTokenHash []byte `gorm:"type:bytea;not null;uniqueIndex:uq_refresh_tokens_token_hash;column:refresh_tokens_token_hash" json:"-"`

	RefreshTokensExpiresAt time.Time  `gorm:"type:timestamptz;not null;index:idx_refresh_tokens_expires_at;column:refresh_tokens_expires_at" json:"refresh_tokens_expires_at"`
	RefreshTokensRevokedAt *time.Time `gorm:"type:timestamptz;column:refresh_tokens_revoked_at" json:"refresh_tokens_revoked_at,omitempty"`

	RefreshTokensUserAgent *string `gorm:"type:text;column:refresh_tokens_user_agent" json:"refresh_tokens_user_agent,omitempty"`
	RefreshTokensIP        *string `gorm:"type:inet;column:refresh_tokens_ip" json:"refresh_tokens_ip,omitempty"`

	RefreshTokensCreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime;column:refresh_tokens_created_at" json:"refresh_tokens_created_at"`
	RefreshTokensUpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime;column:refresh_tokens_updated_at" json:"refresh_tokens_updated_at"`
}

func (RefreshTokenModel) TableName() string { return "refresh_tokens" }
