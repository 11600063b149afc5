package seeds

import (
	"gorm.io/gorm"

	activitytype "akademiku_backend/internals/seeds/activity_types"
	notificationtype "akademiku_backend/internals/seeds/notification_types"
)

// RunAllSeeds siembra los catálogos que el sistema da por existentes.
// Todos los seeders son idempotentes.
func RunAllSeeds(db *gorm.DB) {
	notificationtype.SeedNotificationTypes(db)
	activitytype.SeedActivityTypes(db)
}
