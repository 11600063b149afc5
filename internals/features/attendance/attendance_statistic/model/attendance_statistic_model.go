package model

import (
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Nivel de riesgo por inasistencia. Derivado, nunca se guarda.
type RiskTier string

const (
	RiskTierBajo    RiskTier = "BAJO"
	RiskTierMedio   RiskTier = "MEDIO"
	RiskTierAlto    RiskTier = "ALTO"
	RiskTierCritico RiskTier = "CRITICO"
)

type AttendanceStatisticModel struct {
	// PK
	AttendanceStatisticsID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_statistics_id" json:"attendance_statistics_id"`

	// Una estadística por aprendiz, resultado y ficha
	AttendanceStatisticsApprenticeID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_statistics_triple;index;column:attendance_statistics_apprentice_id" json:"attendance_statistics_apprentice_id"`
	AttendanceStatisticsLearningOutcomeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_statistics_triple;column:attendance_statistics_learning_outcome_id" json:"attendance_statistics_learning_outcome_id"`
	AttendanceStatisticsCohortID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_statistics_triple;index;column:attendance_statistics_cohort_id" json:"attendance_statistics_cohort_id"`

	AttendanceStatisticsTotalClasses int `gorm:"not null;default:0;column:attendance_statistics_total_classes" json:"attendance_statistics_total_classes"`
	AttendanceStatisticsPresentCount int `gorm:"not null;default:0;column:attendance_statistics_present_count" json:"attendance_statistics_present_count"`
	AttendanceStatisticsAbsentCount  int `gorm:"not null;default:0;column:attendance_statistics_absent_count" json:"attendance_statistics_absent_count"`
	AttendanceStatisticsExcusedCount int `gorm:"not null;default:0;column:attendance_statistics_excused_count" json:"attendance_statistics_excused_count"`
	AttendanceStatisticsLateCount    int `gorm:"not null;default:0;column:attendance_statistics_late_count" json:"attendance_statistics_late_count"`

	AttendanceStatisticsPercentage float64   `gorm:"type:numeric(5,2);not null;default:0;index;column:attendance_statistics_percentage" json:"attendance_statistics_percentage"`
	AttendanceStatisticsComputedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:attendance_statistics_computed_at" json:"attendance_statistics_computed_at"`

	// Audit
	AttendanceStatisticsCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:attendance_statistics_created_at" json:"attendance_statistics_created_at"`
	AttendanceStatisticsUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:attendance_statistics_updated_at" json:"attendance_statistics_updated_at"`
	AttendanceStatisticsDeletedAt gorm.DeletedAt `gorm:"column:attendance_statistics_deleted_at;index" json:"attendance_statistics_deleted_at,omitempty"`
}

func (AttendanceStatisticModel) TableName() string { return "attendance_statistics" }

// ComputePercentage calcula el porcentaje de asistencia con dos decimales.
// Justificados y llegadas tarde cuentan como asistencia; el total incluye
// también los registros sin marcar.
func ComputePercentage(present, excused, late, total int) float64 {
	if total <= 0 {
		return 0.00
	}
	effective := float64(present + excused + late)
	return math.Round(effective/float64(total)*100*100) / 100
}

// RiskTierFor clasifica el porcentaje en su nivel de riesgo.
// Los límites inferiores son inclusivos.
func RiskTierFor(percentage float64) RiskTier {
	switch {
	case percentage >= 90:
		return RiskTierBajo
	case percentage >= 80:
		return RiskTierMedio
	case percentage >= 70:
		return RiskTierAlto
	default:
		return RiskTierCritico
	}
}

// RiskTier del porcentaje actual de la estadística.
func (m *AttendanceStatisticModel) RiskTier() RiskTier {
	return RiskTierFor(m.AttendanceStatisticsPercentage)
}
