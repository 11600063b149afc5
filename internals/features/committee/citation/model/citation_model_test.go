package model

import (
	"testing"
	"time"
)

func TestCitationTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    CitationStatus
		to      CitationStatus
		allowed bool
	}{
		{"pendiente a notificada", CitationStatusPendiente, CitationStatusNotificada, true},
		{"pendiente a cancelada", CitationStatusPendiente, CitationStatusCancelada, true},
		{"pendiente directo a realizada", CitationStatusPendiente, CitationStatusRealizada, false},
		{"notificada a realizada", CitationStatusNotificada, CitationStatusRealizada, true},
		{"notificada a cancelada", CitationStatusNotificada, CitationStatusCancelada, true},
		{"notificada de vuelta a pendiente", CitationStatusNotificada, CitationStatusPendiente, false},
		{"realizada es terminal", CitationStatusRealizada, CitationStatusCancelada, false},
		{"realizada no vuelve a notificada", CitationStatusRealizada, CitationStatusNotificada, false},
		{"cancelada es terminal", CitationStatusCancelada, CitationStatusPendiente, false},
		{"cancelada no pasa a realizada", CitationStatusCancelada, CitationStatusRealizada, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := CitationModel{CommitteeCitationsStatus: tt.from}
			err := m.Transition(tt.to, time.Now())

			if tt.allowed && err != nil {
				t.Fatalf("Transition(%s → %s) rechazada: %v", tt.from, tt.to, err)
			}
			if !tt.allowed {
				if err == nil {
					t.Fatalf("Transition(%s → %s) debería rechazarse", tt.from, tt.to)
				}
				want := "no se puede cambiar de " + string(tt.from) + " a " + string(tt.to)
				if err.Error() != want {
					t.Errorf("mensaje = %q, se esperaba %q", err.Error(), want)
				}
				if m.CommitteeCitationsStatus != tt.from {
					t.Errorf("el estado cambió a %s pese al rechazo", m.CommitteeCitationsStatus)
				}
				return
			}
			if m.CommitteeCitationsStatus != tt.to {
				t.Errorf("estado = %s, se esperaba %s", m.CommitteeCitationsStatus, tt.to)
			}
		})
	}
}

func TestTransitionSellaMarcasUnaSolaVez(t *testing.T) {
	m := CitationModel{CommitteeCitationsStatus: CitationStatusPendiente}

	first := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	if err := m.Transition(CitationStatusNotificada, first); err != nil {
		t.Fatalf("pendiente → notificada: %v", err)
	}
	if m.CommitteeCitationsNotifiedAt == nil || !m.CommitteeCitationsNotifiedAt.Equal(first) {
		t.Fatalf("NotifiedAt = %v, se esperaba %v", m.CommitteeCitationsNotifiedAt, first)
	}

	// Una marca ya sellada no se sobreescribe aunque el modelo vuelva a
	// pasar por el método con otro reloj.
	preset := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)
	held := time.Date(2026, 4, 3, 15, 30, 0, 0, time.UTC)
	m.CommitteeCitationsHeldAt = &preset
	if err := m.Transition(CitationStatusRealizada, held); err != nil {
		t.Fatalf("notificada → realizada: %v", err)
	}
	if !m.CommitteeCitationsHeldAt.Equal(preset) {
		t.Errorf("HeldAt fue sobreescrita: %v, se esperaba %v", m.CommitteeCitationsHeldAt, preset)
	}
	if !m.CommitteeCitationsNotifiedAt.Equal(first) {
		t.Errorf("NotifiedAt fue sobreescrita: %v, se esperaba %v", m.CommitteeCitationsNotifiedAt, first)
	}
}

func TestTransitionCadenaCompleta(t *testing.T) {
	m := CitationModel{CommitteeCitationsStatus: CitationStatusPendiente}
	now := time.Now()

	if err := m.Transition(CitationStatusNotificada, now); err != nil {
		t.Fatalf("pendiente → notificada: %v", err)
	}
	if err := m.Transition(CitationStatusRealizada, now); err != nil {
		t.Fatalf("notificada → realizada: %v", err)
	}
	if m.CommitteeCitationsNotifiedAt == nil || m.CommitteeCitationsHeldAt == nil {
		t.Error("ambas marcas de tiempo deberían quedar selladas")
	}
	if !m.CommitteeCitationsStatus.IsTerminal() {
		t.Error("REALIZADA debería ser terminal")
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		year int
		seq  int
		want string
	}{
		{2026, 1, "CIT-2026-0001"},
		{2026, 42, "CIT-2026-0042"},
		{2025, 999, "CIT-2025-0999"},
		{2026, 1234, "CIT-2026-1234"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.year, tt.seq); got != tt.want {
			t.Errorf("FormatNumber(%d, %d) = %q, se esperaba %q", tt.year, tt.seq, tt.want)
		}
	}
}

func TestCitationIsOverdue(t *testing.T) {
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name     string
		status   CitationStatus
		datetime time.Time
		want     bool
	}{
		{"pendiente con fecha pasada", CitationStatusPendiente, past, true},
		{"notificada con fecha pasada", CitationStatusNotificada, past, true},
		{"pendiente con fecha futura", CitationStatusPendiente, future, false},
		{"realizada nunca está vencida", CitationStatusRealizada, past, false},
		{"cancelada nunca está vencida", CitationStatusCancelada, past, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := CitationModel{
				CommitteeCitationsStatus:   tt.status,
				CommitteeCitationsDatetime: tt.datetime,
			}
			if got := m.IsOverdue(now); got != tt.want {
				t.Errorf("IsOverdue() = %v, se esperaba %v", got, tt.want)
			}
		})
	}
}
