package model

import "testing"

func TestSubmissionStateIsValid(t *testing.T) {
	tests := []struct {
		name  string
		state SubmissionState
		want  bool
	}{
		{name: "borrador", state: SubmissionStateBorrador, want: true},
		{name: "enviada", state: SubmissionStateEnviada, want: true},
		{name: "revisada", state: SubmissionStateRevisada, want: true},
		{name: "calificada", state: SubmissionStateCalificada, want: true},
		{name: "devuelta", state: SubmissionStateDevuelta, want: true},
		{name: "estado inventado", state: SubmissionState("PERDIDA"), want: false},
		{name: "vacío", state: SubmissionState(""), want: false},
		{name: "minúsculas no cuentan", state: SubmissionState("enviada"), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.IsValid(); got != tt.want {
				t.Errorf("IsValid(%s) = %v, want %v", tt.state, got, tt.want)
			}
		})
	}
}

func TestSubmissionStateGradable(t *testing.T) {
	tests := []struct {
		name  string
		state SubmissionState
		want  bool
	}{
		{name: "borrador no se califica", state: SubmissionStateBorrador, want: false},
		{name: "enviada se califica", state: SubmissionStateEnviada, want: true},
		{name: "revisada se califica", state: SubmissionStateRevisada, want: true},
		{name: "calificada admite recalificación", state: SubmissionStateCalificada, want: true},
		{name: "devuelta admite recalificación", state: SubmissionStateDevuelta, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.Gradable(); got != tt.want {
				t.Errorf("Gradable(%s) = %v, want %v", tt.state, got, tt.want)
			}
		})
	}
}
