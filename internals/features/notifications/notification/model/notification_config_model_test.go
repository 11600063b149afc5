package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

func TestDefaultConfig(t *testing.T) {
	userID := uuid.New()
	config := DefaultConfig(userID)

	if config.NotificationConfigsUserID != userID {
		t.Errorf("user id = %s, want %s", config.NotificationConfigsUserID, userID)
	}
	if !config.NotificationConfigsPushEnabled || !config.NotificationConfigsEmailEnabled {
		t.Error("los dos canales deben arrancar habilitados")
	}
	if config.NotificationConfigsActiveStart != "07:00" || config.NotificationConfigsActiveEnd != "22:00" {
		t.Errorf("ventana por defecto = %s–%s, want 07:00–22:00",
			config.NotificationConfigsActiveStart, config.NotificationConfigsActiveEnd)
	}
	for _, typeName := range []string{
		TypeNuevaActividad, TypeActividadValorada, TypeCitacionComite,
		TypeAltaInasistencia, TypeBajoRendimiento, TypeRecordatorio,
	} {
		if !config.AllowsType(typeName) {
			t.Errorf("el tipo %s debe arrancar habilitado", typeName)
		}
	}
}

func TestAllowsType(t *testing.T) {
	config := DefaultConfig(uuid.New())
	config.NotificationConfigsNewActivity = false
	config.NotificationConfigsReminders = false

	tests := []struct {
		name     string
		typeName string
		want     bool
	}{
		{name: "tipo apagado se bloquea", typeName: TypeNuevaActividad, want: false},
		{name: "recordatorios apagados se bloquean", typeName: TypeRecordatorio, want: false},
		{name: "tipo encendido pasa", typeName: TypeCitacionComite, want: true},
		{name: "SISTEMA no tiene interruptor y siempre pasa", typeName: TypeSistema, want: true},
		{name: "tipo desconocido pasa", typeName: "OTRO_CUALQUIERA", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := config.AllowsType(tt.typeName); got != tt.want {
				t.Errorf("AllowsType(%s) = %v, want %v", tt.typeName, got, tt.want)
			}
		})
	}
}

func TestInActiveWindowHorario(t *testing.T) {
	config := DefaultConfig(uuid.New())

	// 2026-03-04 es miércoles.
	day := func(hour, min int) time.Time {
		return time.Date(2026, time.March, 4, hour, min, 0, 0, time.UTC)
	}

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{name: "dentro de la ventana", at: day(10, 30), want: true},
		{name: "inicio exacto incluido", at: day(7, 0), want: true},
		{name: "fin exacto incluido", at: day(22, 0), want: true},
		{name: "un minuto antes del inicio", at: day(6, 59), want: false},
		{name: "un minuto después del fin", at: day(22, 1), want: false},
		{name: "madrugada fuera de ventana", at: day(2, 0), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := config.InActiveWindow(tt.at); got != tt.want {
				t.Errorf("InActiveWindow(%s) = %v, want %v", tt.at.Format("15:04"), got, tt.want)
			}
		})
	}
}

func TestInActiveWindowDias(t *testing.T) {
	// 2026-03-04 miércoles (ISO 3), 2026-03-08 domingo (ISO 7).
	wednesday := time.Date(2026, time.March, 4, 10, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, time.March, 8, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		days string
		at   time.Time
		want bool
	}{
		{name: "día hábil dentro de lunes a viernes", days: "[1,2,3,4,5]", at: wednesday, want: true},
		{name: "domingo fuera de lunes a viernes", days: "[1,2,3,4,5]", at: sunday, want: false},
		{name: "domingo mapea al ISO 7", days: "[7]", at: sunday, want: true},
		{name: "lista vacía equivale a todos los días", days: "[]", at: sunday, want: true},
		{name: "JSON inválido no bloquea", days: "no-json", at: sunday, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig(uuid.New())
			config.NotificationConfigsActiveDays = datatypes.JSON([]byte(tt.days))
			if got := config.InActiveWindow(tt.at); got != tt.want {
				t.Errorf("InActiveWindow con días %s = %v, want %v", tt.days, got, tt.want)
			}
		})
	}
}

func TestInActiveWindowSinDiasConfigurados(t *testing.T) {
	config := DefaultConfig(uuid.New())
	config.NotificationConfigsActiveDays = nil

	at := time.Date(2026, time.March, 8, 12, 0, 0, 0, time.UTC)
	if !config.InActiveWindow(at) {
		t.Error("sin días configurados la ventana depende solo del horario")
	}
}
