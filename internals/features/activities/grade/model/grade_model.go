package model

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrScoreExceedsMax = errors.New("el puntaje obtenido no puede superar el puntaje máximo de la actividad")

// Escala de letras sobre el porcentaje final (después de penalización).
type GradeLetter string

const (
	GradeLetterA GradeLetter = "A"
	GradeLetterB GradeLetter = "B"
	GradeLetterC GradeLetter = "C"
	GradeLetterD GradeLetter = "D"
	GradeLetterF GradeLetter = "F"
)

const PassingPercentage = 60.0

func LetterFor(percentage float64) GradeLetter {
	switch {
	case percentage >= 90:
		return GradeLetterA
	case percentage >= 80:
		return GradeLetterB
	case percentage >= 70:
		return GradeLetterC
	case percentage >= PassingPercentage:
		return GradeLetterD
	default:
		return GradeLetterF
	}
}

// GradeResult es el cálculo puro de una calificación, sin tocar la base.
type GradeResult struct {
	RawScore       float64
	Percentage     float64
	PenaltyApplied float64
	Letter         GradeLetter
	Passed         bool
}

// ComputeGrade convierte el puntaje bruto a porcentaje y aplica la
// penalización por retraso cuando corresponde. El puntaje bruto final se
// recalcula desde el porcentaje penalizado para que ambos cuenten la misma
// historia. Rechaza puntajes por encima del máximo.
func ComputeGrade(rawScore, maxScore float64, isLate bool, latePenaltyPercent float64) (GradeResult, error) {
	if rawScore > maxScore {
		return GradeResult{}, ErrScoreExceedsMax
	}

	percentage := 0.0
	if maxScore > 0 {
		percentage = rawScore * 100 / maxScore
	}

	// Con retraso, el bruto guardado se recalcula hacia atrás desde el
	// porcentaje penalizado; sin penalización queda el puntaje entregado.
	penalty := 0.0
	finalRaw := round2(rawScore)
	if isLate && latePenaltyPercent > 0 {
		penalty = percentage * latePenaltyPercent / 100
		percentage -= penalty
		if percentage < 0 {
			percentage = 0
		}
		finalRaw = round2(percentage * maxScore / 100)
	}

	percentage = round2(percentage)
	penalty = round2(penalty)

	return GradeResult{
		RawScore:       finalRaw,
		Percentage:     percentage,
		PenaltyApplied: penalty,
		Letter:         LetterFor(percentage),
		Passed:         percentage >= PassingPercentage,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

type GradeModel struct {
	// PK
	GradesID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:grades_id" json:"grades_id"`

	// Una calificación por entrega
	GradesSubmissionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:grades_submission_id" json:"grades_submission_id"`
	GradesGraderID     uuid.UUID `gorm:"type:uuid;not null;index;column:grades_grader_id" json:"grades_grader_id"`

	// Puntajes: el bruto guardado ya incluye la penalización aplicada.
	GradesRawScore       float64 `gorm:"type:numeric(5,2);not null;column:grades_raw_score" json:"grades_raw_score"`
	GradesMaxScore       float64 `gorm:"type:numeric(5,2);not null;column:grades_max_score" json:"grades_max_score"`
	GradesPercentage     float64 `gorm:"type:numeric(5,2);not null;column:grades_percentage" json:"grades_percentage"`
	GradesPenaltyApplied float64 `gorm:"type:numeric(5,2);not null;default:0;column:grades_penalty_applied" json:"grades_penalty_applied"`

	GradesLetter GradeLetter `gorm:"type:varchar(1);not null;column:grades_letter" json:"grades_letter"`
	GradesPassed bool        `gorm:"not null;default:false;column:grades_passed" json:"grades_passed"`

	GradesFeedback        string    `gorm:"type:text;not null;default:'';column:grades_feedback" json:"grades_feedback"`
	GradesNeedsCorrection bool      `gorm:"not null;default:false;column:grades_needs_correction" json:"grades_needs_correction"`
	GradesGradedAt        time.Time `gorm:"type:timestamptz;not null;column:grades_graded_at" json:"grades_graded_at"`

	// Audit
	GradesCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:grades_created_at" json:"grades_created_at"`
	GradesUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:grades_updated_at" json:"grades_updated_at"`
	GradesDeletedAt gorm.DeletedAt `gorm:"column:grades_deleted_at;index" json:"grades_deleted_at,omitempty"`
}

func (GradeModel) TableName() string { return "grades" }

// ApplyResult vuelca un cálculo puro sobre el registro.
func (m *GradeModel) ApplyResult(res GradeResult, maxScore float64) {
	m.GradesRawScore = res.RawScore
	m.GradesMaxScore = maxScore
	m.GradesPercentage = res.Percentage
	m.GradesPenaltyApplied = res.PenaltyApplied
	m.GradesLetter = res.Letter
	m.GradesPassed = res.Passed
}
