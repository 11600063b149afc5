package scheduler

import (
	"log"
	"strconv"
	"time"

	"gorm.io/gorm"

	"akademiku_backend/internals/configs"
	"akademiku_backend/internals/features/users/auth/model"
)

// Purga periódica de tokens muertos: blacklist vencida, refresh tokens
// vencidos o revocados y tokens de recuperación consumidos o caducados.
func StartAuthCleanupScheduler(db *gorm.DB) {
	go func() {
		interval := 24 * time.Hour
		if v := configs.GetEnv("AUTH_CLEANUP_INTERVAL_HOURS"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				interval = time.Duration(n) * time.Hour
			}
		}

		for {
			log.Println("[CLEANUP] Ejecutando limpieza de tokens...")
			now := time.Now().UTC()

			res := db.Unscoped().
				Where("token_blacklist_expired_at < ?", now).
				Delete(&model.TokenBlacklistModel{})
			if res.Error != nil {
				log.Printf("[CLEANUP ERROR] blacklist: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[CLEANUP] %d tokens de blacklist eliminados", res.RowsAffected)
			}

			res = db.
				Where("refresh_tokens_expires_at < ? OR refresh_tokens_revoked_at IS NOT NULL", now).
				Delete(&model.RefreshTokenModel{})
			if res.Error != nil {
				log.Printf("[CLEANUP ERROR] refresh tokens: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[CLEANUP] %d refresh tokens eliminados", res.RowsAffected)
			}

			res = db.
				Where("password_reset_tokens_expires_at < ? OR password_reset_tokens_used_at IS NOT NULL", now).
				Delete(&model.PasswordResetTokenModel{})
			if res.Error != nil {
				log.Printf("[CLEANUP ERROR] reset tokens: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[CLEANUP] %d tokens de recuperación eliminados", res.RowsAffected)
			}

			time.Sleep(interval)
		}
	}()
}
