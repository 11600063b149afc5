package service

import (
	"errors"
	"log"

	"github.com/google/uuid"

	"akademiku_backend/internals/configs"
)

// PushProvider entrega la notificación push. La integración real queda fuera;
// el proveedor de log registra y da por entregado, útil en desarrollo.
type PushProvider interface {
	SendPush(userID uuid.UUID, title, message string) error
}

type logPushProvider struct{}

func (logPushProvider) SendPush(userID uuid.UUID, title, message string) error {
	log.Printf("[PUSH] usuario=%s titulo=%q", userID, title)
	return nil
}

type noopPushProvider struct{}

func (noopPushProvider) SendPush(userID uuid.UUID, title, message string) error {
	return errors.New("push provider not configured")
}

// pushProvider se resuelve por entorno en cada envío (PUSH_PROVIDER=log|noop).
func pushProvider() PushProvider {
	switch configs.GetEnv("PUSH_PROVIDER", "log") {
	case "noop":
		return noopPushProvider{}
	default:
		return logPushProvider{}
	}
}
