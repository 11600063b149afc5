package dto

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "akademiku_backend/internals/features/attendance/attendance_record/model"
)

/* ===================== REQUESTS ===================== */

// ParseDepartureTime convierte "HH:MM" en la hora de salida del registro.
func ParseDepartureTime(s string) (*datatypes.Time, error) {
	parsed, err := time.Parse("15:04", s)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "La hora de salida debe tener formato HH:MM")
	}
	t := datatypes.NewTime(parsed.Hour(), parsed.Minute(), 0, 0)
	return &t, nil
}

// Alta manual de un registro (aprendiz agregado a la ficha después de
// abierto el llamado). Los registros normales nacen con el llamado.
type CreateAttendanceRecordRequest struct {
	AttendanceRecordsRollCallID   uuid.UUID `json:"attendance_records_roll_call_id" validate:"required"`
	AttendanceRecordsApprenticeID uuid.UUID `json:"attendance_records_apprentice_id" validate:"required"`

	AttendanceRecordsStatus       *string `json:"attendance_records_status" validate:"omitempty,oneof=SIN_REGISTRAR PRESENTE AUSENTE JUSTIFICADO TARDE"`
	AttendanceRecordsLateMinutes  *int    `json:"attendance_records_late_minutes" validate:"omitempty,min=0,max=180"`
	AttendanceRecordsObservations *string `json:"attendance_records_observations" validate:"omitempty,max=500"`

	AttendanceRecordsEarlyDeparture *bool   `json:"attendance_records_early_departure"`
	AttendanceRecordsDepartureTime  *string `json:"attendance_records_departure_time" validate:"omitempty,len=5"`
}

func (r CreateAttendanceRecordRequest) ToModel() (*model.AttendanceRecordModel, error) {
	m := &model.AttendanceRecordModel{
		AttendanceRecordsRollCallID:   r.AttendanceRecordsRollCallID,
		AttendanceRecordsApprenticeID: r.AttendanceRecordsApprenticeID,
		AttendanceRecordsStatus:       model.AttendanceStatusSinRegistrar,
		AttendanceRecordsRecordedAt:   time.Now(),
	}
	if r.AttendanceRecordsStatus != nil {
		m.AttendanceRecordsStatus = model.AttendanceStatus(*r.AttendanceRecordsStatus)
	}
	if r.AttendanceRecordsLateMinutes != nil {
		m.AttendanceRecordsLateMinutes = *r.AttendanceRecordsLateMinutes
	}
	m.AttendanceRecordsObservations = r.AttendanceRecordsObservations
	if r.AttendanceRecordsEarlyDeparture != nil {
		m.AttendanceRecordsEarlyDeparture = *r.AttendanceRecordsEarlyDeparture
	}
	if r.AttendanceRecordsDepartureTime != nil {
		t, err := ParseDepartureTime(*r.AttendanceRecordsDepartureTime)
		if err != nil {
			return nil, err
		}
		m.AttendanceRecordsDepartureTime = t
	}
	return m, nil
}

// Marcar asistencia: los handlers solo asignan los cuatro estados finales,
// SIN_REGISTRAR es el marcador inicial del llamado.
type MarkAttendanceRequest struct {
	AttendanceRecordsStatus       string  `json:"attendance_records_status" validate:"required,oneof=PRESENTE AUSENTE JUSTIFICADO TARDE"`
	AttendanceRecordsLateMinutes  *int    `json:"attendance_records_late_minutes" validate:"omitempty,min=0,max=180"`
	AttendanceRecordsObservations *string `json:"attendance_records_observations" validate:"omitempty,max=500"`

	AttendanceRecordsEarlyDeparture *bool   `json:"attendance_records_early_departure"`
	AttendanceRecordsDepartureTime  *string `json:"attendance_records_departure_time" validate:"omitempty,len=5"`
}

func (r MarkAttendanceRequest) ApplyToModel(m *model.AttendanceRecordModel) error {
	m.AttendanceRecordsStatus = model.AttendanceStatus(r.AttendanceRecordsStatus)
	m.AttendanceRecordsRecordedAt = time.Now()

	if r.AttendanceRecordsLateMinutes != nil {
		m.AttendanceRecordsLateMinutes = *r.AttendanceRecordsLateMinutes
	} else if m.AttendanceRecordsStatus != model.AttendanceStatusTarde {
		m.AttendanceRecordsLateMinutes = 0
	}
	if r.AttendanceRecordsObservations != nil {
		m.AttendanceRecordsObservations = r.AttendanceRecordsObservations
	}
	if r.AttendanceRecordsEarlyDeparture != nil {
		m.AttendanceRecordsEarlyDeparture = *r.AttendanceRecordsEarlyDeparture
	}
	if r.AttendanceRecordsDepartureTime != nil {
		t, err := ParseDepartureTime(*r.AttendanceRecordsDepartureTime)
		if err != nil {
			return err
		}
		m.AttendanceRecordsDepartureTime = t
	} else if !m.AttendanceRecordsEarlyDeparture {
		m.AttendanceRecordsDepartureTime = nil
	}
	return nil
}

/* ===================== RESPONSES ===================== */

type AttendanceRecordResponse struct {
	AttendanceRecordsID           uuid.UUID `json:"attendance_records_id"`
	AttendanceRecordsRollCallID   uuid.UUID `json:"attendance_records_roll_call_id"`
	AttendanceRecordsApprenticeID uuid.UUID `json:"attendance_records_apprentice_id"`

	AttendanceRecordsStatus       model.AttendanceStatus `json:"attendance_records_status"`
	AttendanceRecordsRecordedAt   time.Time              `json:"attendance_records_recorded_at"`
	AttendanceRecordsLateMinutes  int                    `json:"attendance_records_late_minutes"`
	AttendanceRecordsObservations *string                `json:"attendance_records_observations,omitempty"`

	AttendanceRecordsEarlyDeparture bool            `json:"attendance_records_early_departure"`
	AttendanceRecordsDepartureTime  *datatypes.Time `json:"attendance_records_departure_time,omitempty"`

	AttendanceRecordsCreatedAt time.Time `json:"attendance_records_created_at"`
	AttendanceRecordsUpdatedAt time.Time `json:"attendance_records_updated_at"`
}

func NewAttendanceRecordResponse(m *model.AttendanceRecordModel) *AttendanceRecordResponse {
	if m == nil {
		return nil
	}
	return &AttendanceRecordResponse{
		AttendanceRecordsID:             m.AttendanceRecordsID,
		AttendanceRecordsRollCallID:     m.AttendanceRecordsRollCallID,
		AttendanceRecordsApprenticeID:   m.AttendanceRecordsApprenticeID,
		AttendanceRecordsStatus:         m.AttendanceRecordsStatus,
		AttendanceRecordsRecordedAt:     m.AttendanceRecordsRecordedAt,
		AttendanceRecordsLateMinutes:    m.AttendanceRecordsLateMinutes,
		AttendanceRecordsObservations:   m.AttendanceRecordsObservations,
		AttendanceRecordsEarlyDeparture: m.AttendanceRecordsEarlyDeparture,
		AttendanceRecordsDepartureTime:  m.AttendanceRecordsDepartureTime,
		AttendanceRecordsCreatedAt:      m.AttendanceRecordsCreatedAt,
		AttendanceRecordsUpdatedAt:      m.AttendanceRecordsUpdatedAt,
	}
}

func NewAttendanceRecordResponses(ms []model.AttendanceRecordModel) []AttendanceRecordResponse {
	out := make([]AttendanceRecordResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *NewAttendanceRecordResponse(&ms[i]))
	}
	return out
}
