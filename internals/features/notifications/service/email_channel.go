package service

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"akademiku_backend/internals/configs"
)

const (
	sendgridHost     = "https://api.sendgrid.com"
	sendgridEndpoint = "/v3/mail/send"
)

// SendPlainEmail envía un correo de texto plano por SendGrid.
// Lo usan el canal de email del despacho y la recuperación de contraseña.
func SendPlainEmail(toEmail, toName, subject, body string) error {
	toEmail = strings.TrimSpace(toEmail)
	if toEmail == "" {
		return errors.New("el destinatario no tiene correo configurado")
	}

	key := configs.GetEnv("SENDGRID_API_KEY", "")
	if key == "" {
		return errors.New("SENDGRID_API_KEY no está configurada")
	}

	from := sgmail.NewEmail(
		configs.GetEnv("EMAIL_FROM_NAME", "Akademiku"),
		configs.GetEnv("EMAIL_FROM_ADDRESS", "no-reply@akademiku.local"),
	)
	prefix := configs.GetEnv("EMAIL_SUBJECT_PREFIX", "[Akademiku]")

	p := sgmail.NewPersonalization()
	p.Subject = strings.TrimSpace(prefix + " " + subject)
	p.AddTos(sgmail.NewEmail(toName, toEmail))

	m := sgmail.NewV3Mail()
	m.SetFrom(from)
	m.AddPersonalizations(p)
	m.AddContent(sgmail.NewContent("text/plain", body))

	req := sendgrid.GetRequest(key, sendgridEndpoint, sendgridHost)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(m)

	res, err := sendgrid.API(req)
	if err != nil {
		return fmt.Errorf("enviando correo: %w", err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("enviando correo: status %d", res.StatusCode)
	}
	return nil
}
