package activitytype

import (
	"errors"
	"log"

	"gorm.io/gorm"

	model "akademiku_backend/internals/features/activities/activity_type/model"
)

var activityTypeDescriptions = map[string]string{
	model.ActivityTypeTaller:        "Taller práctico en ambiente de formación",
	model.ActivityTypeEvidencia:     "Evidencia de producto o desempeño",
	model.ActivityTypeProyecto:      "Entrega del proyecto formativo",
	model.ActivityTypeQuiz:          "Prueba corta de conocimiento",
	model.ActivityTypeExamen:        "Evaluación de conocimiento",
	model.ActivityTypeExposicion:    "Exposición o sustentación oral",
	model.ActivityTypePractica:      "Práctica guiada o de laboratorio",
	model.ActivityTypeInvestigacion: "Trabajo de consulta o investigación",
	model.ActivityTypeForo:          "Participación en foro de discusión",
	model.ActivityTypeOtro:          "Otro tipo de actividad",
}

// SeedActivityTypes inserta los tipos de actividad que falten.
// Idempotente: corre en cada arranque.
func SeedActivityTypes(db *gorm.DB) {
	for _, name := range model.ActivityTypeNames() {
		var existing model.ActivityTypeModel
		err := db.Where("activity_types_name = ?", name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[ERROR] consultando tipo de actividad '%s': %v", name, err)
			continue
		}

		row := model.ActivityTypeModel{
			ActivityTypesName:        name,
			ActivityTypesDescription: activityTypeDescriptions[name],
			ActivityTypesIsActive:    true,
		}
		if err := db.Create(&row).Error; err != nil {
			log.Printf("[ERROR] sembrando tipo de actividad '%s': %v", name, err)
		} else {
			log.Printf("[INFO] Tipo de actividad '%s' sembrado", name)
		}
	}
}
