package model

import (
	"testing"
	"time"
)

func TestAcceptsSubmissions(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	future := now.Add(48 * time.Hour)
	past := now.Add(-48 * time.Hour)
	distantPast := now.Add(-96 * time.Hour)

	tests := []struct {
		name     string
		activity ActivityModel
		want     bool
	}{
		{
			name: "publicada con plazo abierto",
			activity: ActivityModel{
				ActivitiesState:      ActivityStatePublicada,
				ActivitiesDueDate:    future,
				ActivitiesAllowsLate: true,
			},
			want: true,
		},
		{
			name: "en progreso con plazo abierto",
			activity: ActivityModel{
				ActivitiesState:      ActivityStateEnProgreso,
				ActivitiesDueDate:    future,
				ActivitiesAllowsLate: true,
			},
			want: true,
		},
		{
			name: "borrador nunca recibe",
			activity: ActivityModel{
				ActivitiesState:      ActivityStateBorrador,
				ActivitiesDueDate:    future,
				ActivitiesAllowsLate: true,
			},
			want: false,
		},
		{
			name: "finalizada nunca recibe",
			activity: ActivityModel{
				ActivitiesState:      ActivityStateFinalizada,
				ActivitiesDueDate:    future,
				ActivitiesAllowsLate: true,
			},
			want: false,
		},
		{
			name: "vencida pero admite tardías",
			activity: ActivityModel{
				ActivitiesState:      ActivityStatePublicada,
				ActivitiesDueDate:    past,
				ActivitiesAllowsLate: true,
			},
			want: true,
		},
		{
			name: "vencida y no admite tardías",
			activity: ActivityModel{
				ActivitiesState:      ActivityStatePublicada,
				ActivitiesDueDate:    past,
				ActivitiesAllowsLate: false,
			},
			want: false,
		},
		{
			name: "fecha límite definitiva vencida cierra aunque admita tardías",
			activity: ActivityModel{
				ActivitiesState:        ActivityStatePublicada,
				ActivitiesDueDate:      distantPast,
				ActivitiesHardDeadline: &past,
				ActivitiesAllowsLate:   true,
			},
			want: false,
		},
		{
			name: "fecha límite definitiva todavía abierta",
			activity: ActivityModel{
				ActivitiesState:        ActivityStatePublicada,
				ActivitiesDueDate:      past,
				ActivitiesHardDeadline: &future,
				ActivitiesAllowsLate:   true,
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.activity.AcceptsSubmissions(now); got != tt.want {
				t.Errorf("AcceptsSubmissions() = %v, se esperaba %v", got, tt.want)
			}
		})
	}
}

func TestIsOverdue(t *testing.T) {
	due := time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)
	m := ActivityModel{ActivitiesDueDate: due}

	if m.IsOverdue(due.Add(-time.Minute)) {
		t.Error("IsOverdue antes de la fecha de entrega debería ser false")
	}
	if !m.IsOverdue(due.Add(time.Minute)) {
		t.Error("IsOverdue después de la fecha de entrega debería ser true")
	}
}

func TestActivityStateIsTerminal(t *testing.T) {
	terminal := []ActivityState{ActivityStateFinalizada, ActivityStateCancelada}
	for _, s := range terminal {
		if !s.IsTerminal() {
			t.Errorf("%s debería ser terminal", s)
		}
	}
	open := []ActivityState{ActivityStateBorrador, ActivityStatePublicada, ActivityStateEnProgreso}
	for _, s := range open {
		if s.IsTerminal() {
			t.Errorf("%s no debería ser terminal", s)
		}
	}
}
