package dto

import (
	"time"

	"github.com/google/uuid"

	model "akademiku_backend/internals/features/attendance/attendance_statistic/model"
)

/* ===================== REQUESTS ===================== */

type ListStatisticsQuery struct {
	ApprenticeID *uuid.UUID `query:"apprentice_id"`
	OutcomeID    *uuid.UUID `query:"outcome_id"`
	CohortID     *uuid.UUID `query:"cohort_id"`
	RiskTier     *string    `query:"risk_tier"`
}

// Recomputar una tripleta a demanda (backfill o corrección).
type RecomputeRequest struct {
	ApprenticeID      uuid.UUID `json:"apprentice_id" validate:"required"`
	LearningOutcomeID uuid.UUID `json:"learning_outcome_id" validate:"required"`
	CohortID          uuid.UUID `json:"cohort_id" validate:"required"`
}

/* ===================== RESPONSES ===================== */

type AttendanceStatisticResponse struct {
	AttendanceStatisticsID uuid.UUID `json:"attendance_statistics_id"`

	AttendanceStatisticsApprenticeID      uuid.UUID `json:"attendance_statistics_apprentice_id"`
	AttendanceStatisticsLearningOutcomeID uuid.UUID `json:"attendance_statistics_learning_outcome_id"`
	AttendanceStatisticsCohortID          uuid.UUID `json:"attendance_statistics_cohort_id"`

	AttendanceStatisticsTotalClasses int `json:"attendance_statistics_total_classes"`
	AttendanceStatisticsPresentCount int `json:"attendance_statistics_present_count"`
	AttendanceStatisticsAbsentCount  int `json:"attendance_statistics_absent_count"`
	AttendanceStatisticsExcusedCount int `json:"attendance_statistics_excused_count"`
	AttendanceStatisticsLateCount    int `json:"attendance_statistics_late_count"`

	AttendanceStatisticsPercentage float64        `json:"attendance_statistics_percentage"`
	RiskTier                       model.RiskTier `json:"risk_tier"`

	AttendanceStatisticsComputedAt time.Time `json:"attendance_statistics_computed_at"`
}

func NewAttendanceStatisticResponse(m *model.AttendanceStatisticModel) *AttendanceStatisticResponse {
	if m == nil {
		return nil
	}
	return &AttendanceStatisticResponse{
		AttendanceStatisticsID:                m.AttendanceStatisticsID,
		AttendanceStatisticsApprenticeID:      m.AttendanceStatisticsApprenticeID,
		AttendanceStatisticsLearningOutcomeID: m.AttendanceStatisticsLearningOutcomeID,
		AttendanceStatisticsCohortID:          m.AttendanceStatisticsCohortID,
		AttendanceStatisticsTotalClasses:      m.AttendanceStatisticsTotalClasses,
		AttendanceStatisticsPresentCount:      m.AttendanceStatisticsPresentCount,
		AttendanceStatisticsAbsentCount:       m.AttendanceStatisticsAbsentCount,
		AttendanceStatisticsExcusedCount:      m.AttendanceStatisticsExcusedCount,
		AttendanceStatisticsLateCount:         m.AttendanceStatisticsLateCount,
		AttendanceStatisticsPercentage:        m.AttendanceStatisticsPercentage,
		RiskTier:                              m.RiskTier(),
		AttendanceStatisticsComputedAt:        m.AttendanceStatisticsComputedAt,
	}
}

func NewAttendanceStatisticResponses(ms []model.AttendanceStatisticModel) []AttendanceStatisticResponse {
	out := make([]AttendanceStatisticResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *NewAttendanceStatisticResponse(&ms[i]))
	}
	return out
}
