package notificationtype

import (
	"errors"
	"log"

	"gorm.io/gorm"

	model "akademiku_backend/internals/features/notifications/notification/model"
)

// Catálogo fijo. El despacho busca los tipos por nombre, así que deben
// existir antes del primer envío.
var notificationTypeSeeds = []model.NotificationTypeModel{
	{NotificationTypesName: model.TypeNuevaActividad, NotificationTypesDescription: "Se publicó una actividad en tu ficha"},
	{NotificationTypesName: model.TypeActividadValorada, NotificationTypesDescription: "Tu entrega fue calificada"},
	{NotificationTypesName: model.TypeCitacionComite, NotificationTypesDescription: "Citación a comité académico o disciplinario"},
	{NotificationTypesName: model.TypeAltaInasistencia, NotificationTypesDescription: "Tu porcentaje de asistencia está en riesgo"},
	{NotificationTypesName: model.TypeBajoRendimiento, NotificationTypesDescription: "Tu promedio de calificaciones está bajo"},
	{NotificationTypesName: model.TypeRecordatorio, NotificationTypesDescription: "Recordatorio de actividad o evento próximo"},
	{NotificationTypesName: model.TypeSistema, NotificationTypesDescription: "Aviso general del sistema"},
}

// SeedNotificationTypes inserta los tipos que falten. Corre en cada
// arranque, los que ya existen se dejan como están.
func SeedNotificationTypes(db *gorm.DB) {
	for _, seed := range notificationTypeSeeds {
		var existing model.NotificationTypeModel
		err := db.Where("notification_types_name = ?", seed.NotificationTypesName).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[ERROR] consultando tipo de notificación '%s': %v", seed.NotificationTypesName, err)
			continue
		}

		row := seed
		row.NotificationTypesIsActive = true
		if err := db.Create(&row).Error; err != nil {
			log.Printf("[ERROR] sembrando tipo de notificación '%s': %v", seed.NotificationTypesName, err)
		} else {
			log.Printf("[INFO] Tipo de notificación '%s' sembrado", seed.NotificationTypesName)
		}
	}
}
