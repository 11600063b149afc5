package dto

import (
	"time"

	"github.com/google/uuid"

	model "akademiku_backend/internals/features/activities/grade/model"
)

/* ===================== REQUESTS ===================== */

type GradeSubmissionRequest struct {
	GradesRawScore        float64 `json:"grades_raw_score" validate:"gte=0"`
	GradesFeedback        string  `json:"grades_feedback" validate:"max=5000"`
	GradesNeedsCorrection bool    `json:"grades_needs_correction"`
}

/* ===================== RESPONSES ===================== */

type GradeResponse struct {
	GradesID           uuid.UUID `json:"grades_id"`
	GradesSubmissionID uuid.UUID `json:"grades_submission_id"`
	GradesGraderID     uuid.UUID `json:"grades_grader_id"`

	GradesRawScore       float64 `json:"grades_raw_score"`
	GradesMaxScore       float64 `json:"grades_max_score"`
	GradesPercentage     float64 `json:"grades_percentage"`
	GradesPenaltyApplied float64 `json:"grades_penalty_applied"`

	GradesLetter string `json:"grades_letter"`
	GradesPassed bool   `json:"grades_passed"`

	GradesFeedback        string    `json:"grades_feedback"`
	GradesNeedsCorrection bool      `json:"grades_needs_correction"`
	GradesGradedAt        time.Time `json:"grades_graded_at"`

	GradesCreatedAt time.Time `json:"grades_created_at"`
	GradesUpdatedAt time.Time `json:"grades_updated_at"`
}

func NewGradeResponse(m *model.GradeModel) *GradeResponse {
	if m == nil {
		return nil
	}
	return &GradeResponse{
		GradesID:              m.GradesID,
		GradesSubmissionID:    m.GradesSubmissionID,
		GradesGraderID:        m.GradesGraderID,
		GradesRawScore:        m.GradesRawScore,
		GradesMaxScore:        m.GradesMaxScore,
		GradesPercentage:      m.GradesPercentage,
		GradesPenaltyApplied:  m.GradesPenaltyApplied,
		GradesLetter:          string(m.GradesLetter),
		GradesPassed:          m.GradesPassed,
		GradesFeedback:        m.GradesFeedback,
		GradesNeedsCorrection: m.GradesNeedsCorrection,
		GradesGradedAt:        m.GradesGradedAt,
		GradesCreatedAt:       m.GradesCreatedAt,
		GradesUpdatedAt:       m.GradesUpdatedAt,
	}
}
