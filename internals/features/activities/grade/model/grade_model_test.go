package model

import (
	"errors"
	"testing"
)

func TestComputeGrade(t *testing.T) {
	tests := []struct {
		name           string
		raw            float64
		max            float64
		isLate         bool
		penaltyPercent float64

		wantRaw        float64
		wantPercentage float64
		wantPenalty    float64
		wantLetter     GradeLetter
		wantPassed     bool
	}{
		{
			name: "ocho sobre diez a tiempo",
			raw: 8, max: 10,
			wantRaw: 8, wantPercentage: 80, wantPenalty: 0,
			wantLetter: GradeLetterB, wantPassed: true,
		},
		{
			name: "ocho sobre diez tarde con penalización del diez por ciento",
			raw: 8, max: 10, isLate: true, penaltyPercent: 10,
			wantRaw: 7.2, wantPercentage: 72, wantPenalty: 8,
			wantLetter: GradeLetterC, wantPassed: true,
		},
		{
			name: "puntaje perfecto",
			raw: 10, max: 10,
			wantRaw: 10, wantPercentage: 100, wantPenalty: 0,
			wantLetter: GradeLetterA, wantPassed: true,
		},
		{
			name: "tarde sin penalización configurada",
			raw: 9, max: 10, isLate: true, penaltyPercent: 0,
			wantRaw: 9, wantPercentage: 90, wantPenalty: 0,
			wantLetter: GradeLetterA, wantPassed: true,
		},
		{
			name: "a tiempo con penalización configurada no descuenta",
			raw: 9, max: 10, isLate: false, penaltyPercent: 25,
			wantRaw: 9, wantPercentage: 90, wantPenalty: 0,
			wantLetter: GradeLetterA, wantPassed: true,
		},
		{
			name: "justo en el umbral de aprobación",
			raw: 6, max: 10,
			wantRaw: 6, wantPercentage: 60, wantPenalty: 0,
			wantLetter: GradeLetterD, wantPassed: true,
		},
		{
			name: "la penalización puede hacer reprobar",
			raw: 6.5, max: 10, isLate: true, penaltyPercent: 10,
			wantRaw: 5.85, wantPercentage: 58.5, wantPenalty: 6.5,
			wantLetter: GradeLetterF, wantPassed: false,
		},
		{
			name: "penalización total deja cero",
			raw: 8, max: 10, isLate: true, penaltyPercent: 100,
			wantRaw: 0, wantPercentage: 0, wantPenalty: 80,
			wantLetter: GradeLetterF, wantPassed: false,
		},
		{
			name: "cero puntos",
			raw: 0, max: 10,
			wantRaw: 0, wantPercentage: 0, wantPenalty: 0,
			wantLetter: GradeLetterF, wantPassed: false,
		},
		{
			name: "máximo no estándar con redondeo",
			raw: 5, max: 15,
			wantRaw: 5, wantPercentage: 33.33, wantPenalty: 0,
			wantLetter: GradeLetterF, wantPassed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeGrade(tt.raw, tt.max, tt.isLate, tt.penaltyPercent)
			if err != nil {
				t.Fatalf("ComputeGrade(%v, %v, %v, %v) error inesperado: %v",
					tt.raw, tt.max, tt.isLate, tt.penaltyPercent, err)
			}
			if got.RawScore != tt.wantRaw {
				t.Errorf("RawScore = %v, se esperaba %v", got.RawScore, tt.wantRaw)
			}
			if got.Percentage != tt.wantPercentage {
				t.Errorf("Percentage = %v, se esperaba %v", got.Percentage, tt.wantPercentage)
			}
			if got.PenaltyApplied != tt.wantPenalty {
				t.Errorf("PenaltyApplied = %v, se esperaba %v", got.PenaltyApplied, tt.wantPenalty)
			}
			if got.Letter != tt.wantLetter {
				t.Errorf("Letter = %v, se esperaba %v", got.Letter, tt.wantLetter)
			}
			if got.Passed != tt.wantPassed {
				t.Errorf("Passed = %v, se esperaba %v", got.Passed, tt.wantPassed)
			}
		})
	}
}

func TestComputeGradeRechazaPuntajeMayorAlMaximo(t *testing.T) {
	_, err := ComputeGrade(12, 10, false, 0)
	if !errors.Is(err, ErrScoreExceedsMax) {
		t.Fatalf("ComputeGrade(12, 10) error = %v, se esperaba ErrScoreExceedsMax", err)
	}
}

// Recalificar con el mismo puntaje de entrada produce el mismo resultado:
// el motor nunca parte del bruto penalizado que quedó guardado.
func TestComputeGradeNoAcumulaPenalizacion(t *testing.T) {
	first, err := ComputeGrade(8, 10, true, 10)
	if err != nil {
		t.Fatalf("primera calificación: %v", err)
	}
	second, err := ComputeGrade(8, 10, true, 10)
	if err != nil {
		t.Fatalf("segunda calificación: %v", err)
	}
	if first != second {
		t.Errorf("recalificar cambió el resultado: %+v vs %+v", first, second)
	}
	if second.RawScore != 7.2 {
		t.Errorf("RawScore tras recalificar = %v, se esperaba 7.2", second.RawScore)
	}
}

func TestLetterFor(t *testing.T) {
	tests := []struct {
		percentage float64
		want       GradeLetter
	}{
		{100, GradeLetterA},
		{90, GradeLetterA},
		{89.99, GradeLetterB},
		{80, GradeLetterB},
		{79.99, GradeLetterC},
		{70, GradeLetterC},
		{69.99, GradeLetterD},
		{60, GradeLetterD},
		{59.99, GradeLetterF},
		{0, GradeLetterF},
	}
	for _, tt := range tests {
		if got := LetterFor(tt.percentage); got != tt.want {
			t.Errorf("LetterFor(%v) = %v, se esperaba %v", tt.percentage, got, tt.want)
		}
	}
}
