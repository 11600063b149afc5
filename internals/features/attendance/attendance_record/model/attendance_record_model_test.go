package model

import (
	"testing"

	"gorm.io/datatypes"
)

func departureAt(hour, minute int) *datatypes.Time {
	t := datatypes.NewTime(hour, minute, 0, 0)
	return &t
}

func TestValidateConsistency(t *testing.T) {
	tests := []struct {
		name    string
		record  AttendanceRecordModel
		wantErr error
	}{
		{
			name: "presente sin extras",
			record: AttendanceRecordModel{
				AttendanceRecordsStatus: AttendanceStatusPresente,
			},
		},
		{
			name: "tarde con minutos",
			record: AttendanceRecordModel{
				AttendanceRecordsStatus:      AttendanceStatusTarde,
				AttendanceRecordsLateMinutes: 15,
			},
		},
		{
			name: "tarde sin minutos se rechaza",
			record: AttendanceRecordModel{
				AttendanceRecordsStatus: AttendanceStatusTarde,
			},
			wantErr: ErrLateWithoutMinutes,
		},
		{
			name: "minutos sin estado tarde se rechazan",
			record: AttendanceRecordModel{
				AttendanceRecordsStatus:      AttendanceStatusPresente,
				AttendanceRecordsLateMinutes: 5,
			},
			wantErr: ErrLateMinutesRequireLate,
		},
		{
			name: "salida anticipada con hora",
			record: AttendanceRecordModel{
				AttendanceRecordsStatus:         AttendanceStatusPresente,
				AttendanceRecordsEarlyDeparture: true,
				AttendanceRecordsDepartureTime:  departureAt(15, 30),
			},
		},
		{
			name: "salida anticipada sin hora se rechaza",
			record: AttendanceRecordModel{
				AttendanceRecordsStatus:         AttendanceStatusPresente,
				AttendanceRecordsEarlyDeparture: true,
			},
			wantErr: ErrDepartureTimeMismatch,
		},
		{
			name: "hora de salida sin la marca se rechaza",
			record: AttendanceRecordModel{
				AttendanceRecordsStatus:        AttendanceStatusPresente,
				AttendanceRecordsDepartureTime: departureAt(15, 30),
			},
			wantErr: ErrDepartureTimeMismatch,
		},
		{
			name: "ausente limpio",
			record: AttendanceRecordModel{
				AttendanceRecordsStatus: AttendanceStatusAusente,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.record.ValidateConsistency(); err != tt.wantErr {
				t.Errorf("ValidateConsistency() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAttendanceStatusIsValid(t *testing.T) {
	valid := []AttendanceStatus{
		AttendanceStatusSinRegistrar,
		AttendanceStatusPresente,
		AttendanceStatusAusente,
		AttendanceStatusJustificado,
		AttendanceStatusTarde,
	}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("IsValid(%s) = false, want true", s)
		}
	}
	if AttendanceStatus("EXPULSADO").IsValid() {
		t.Error("IsValid(EXPULSADO) = true, want false")
	}
}
