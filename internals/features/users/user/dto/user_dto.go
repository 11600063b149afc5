package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"akademiku_backend/internals/constants"
	model "akademiku_backend/internals/features/users/user/model"
)

/* ===================== REQUESTS ===================== */

// Create: el rol solo se respeta cuando quien llama es administrador;
// el registro público siempre queda como APRENDIZ (el controller decide).
type RegisterUserRequest struct {
	UsersDocumentNumber string  `json:"users_document_number" validate:"required,numeric,min=6,max=20"`
	UsersDocumentType   string  `json:"users_document_type" validate:"required,oneof=CC TI CE PAS"`
	UsersFirstName      string  `json:"users_first_name" validate:"required,min=2,max=100"`
	UsersLastName       string  `json:"users_last_name" validate:"required,min=2,max=100"`
	UsersEmail          string  `json:"users_email" validate:"required,email,max=255"`
	UsersPhone          *string `json:"users_phone" validate:"omitempty,min=7,max=15"`

	Password        string `json:"password" validate:"required,min=8,max=72"`
	PasswordConfirm string `json:"password_confirm" validate:"required"`

	UsersRole *string `json:"users_role" validate:"omitempty,oneof=ADMINISTRADOR INSTRUCTOR APRENDIZ"`
}

// ToModel: el hash de la contraseña y el rol definitivo los pone el servicio.
func (r RegisterUserRequest) ToModel() *model.UserModel {
	m := &model.UserModel{
		UsersDocumentNumber: strings.TrimSpace(r.UsersDocumentNumber),
		UsersDocumentType:   model.DocumentType(strings.ToUpper(strings.TrimSpace(r.UsersDocumentType))),
		UsersFirstName:      strings.TrimSpace(r.UsersFirstName),
		UsersLastName:       strings.TrimSpace(r.UsersLastName),
		UsersEmail:          strings.ToLower(strings.TrimSpace(r.UsersEmail)),
		UsersRole:           constants.RoleApprentice,
		UsersIsActive:       true,
	}
	if r.UsersPhone != nil {
		if p := strings.TrimSpace(*r.UsersPhone); p != "" {
			m.UsersPhone = &p
		}
	}
	return m
}

/* ===================== UPDATE (partial) ===================== */

type UpdateUserRequest struct {
	UsersFirstName    *string `json:"users_first_name" validate:"omitempty,min=2,max=100"`
	UsersLastName     *string `json:"users_last_name" validate:"omitempty,min=2,max=100"`
	UsersEmail        *string `json:"users_email" validate:"omitempty,email,max=255"`
	UsersPhone        *string `json:"users_phone" validate:"omitempty,max=15"`
	UsersDocumentType *string `json:"users_document_type" validate:"omitempty,oneof=CC TI CE PAS"`

	// Solo administradores (el controller lo ignora para el resto)
	UsersRole     *string `json:"users_role" validate:"omitempty,oneof=ADMINISTRADOR INSTRUCTOR APRENDIZ"`
	UsersIsActive *bool   `json:"users_is_active" validate:"omitempty"`
}

// ApplyToModel aplica solo los campos enviados. Rol y estado se aplican
// aparte porque dependen del rol de quien llama.
func (r *UpdateUserRequest) ApplyToModel(m *model.UserModel) {
	if r.UsersFirstName != nil {
		m.UsersFirstName = strings.TrimSpace(*r.UsersFirstName)
	}
	if r.UsersLastName != nil {
		m.UsersLastName = strings.TrimSpace(*r.UsersLastName)
	}
	if r.UsersEmail != nil {
		m.UsersEmail = strings.ToLower(strings.TrimSpace(*r.UsersEmail))
	}
	if r.UsersPhone != nil {
		if p := strings.TrimSpace(*r.UsersPhone); p != "" {
			m.UsersPhone = &p
		} else {
			m.UsersPhone = nil
		}
	}
	if r.UsersDocumentType != nil {
		m.UsersDocumentType = model.DocumentType(strings.ToUpper(strings.TrimSpace(*r.UsersDocumentType)))
	}
}

/* ===================== QUERIES (list) ===================== */

type ListUsersQuery struct {
	Role     *string `query:"role"`
	IsActive *bool   `query:"is_active"`
	Search   *string `query:"search"` // documento, nombre o email
}

/* ===================== RESPONSES ===================== */

type UserResponse struct {
	UsersID             uuid.UUID `json:"users_id"`
	UsersDocumentNumber string    `json:"users_document_number"`
	UsersDocumentType   string    `json:"users_document_type"`
	UsersFirstName      string    `json:"users_first_name"`
	UsersLastName       string    `json:"users_last_name"`
	FullName            string    `json:"full_name"`
	UsersEmail          string    `json:"users_email"`
	UsersPhone          *string   `json:"users_phone,omitempty"`
	UsersPhotoURL       *string   `json:"users_photo_url,omitempty"`
	UsersRole           string    `json:"users_role"`
	UsersIsActive       bool      `json:"users_is_active"`

	UsersLastLoginAt *time.Time `json:"users_last_login_at,omitempty"`
	UsersCreatedAt   time.Time  `json:"users_created_at"`
	UsersUpdatedAt   time.Time  `json:"users_updated_at"`
}

func NewUserResponse(m *model.UserModel) *UserResponse {
	if m == nil {
		return nil
	}
	return &UserResponse{
		UsersID:             m.UsersID,
		UsersDocumentNumber: m.UsersDocumentNumber,
		UsersDocumentType:   string(m.UsersDocumentType),
		UsersFirstName:      m.UsersFirstName,
		UsersLastName:       m.UsersLastName,
		FullName:            m.FullName(),
		UsersEmail:          m.UsersEmail,
		UsersPhone:          m.UsersPhone,
		UsersPhotoURL:       photoURL(m.UsersPhotoURL),
		UsersRole:           string(m.UsersRole),
		UsersIsActive:       m.UsersIsActive,
		UsersLastLoginAt:    m.UsersLastLoginAt,
		UsersCreatedAt:      m.UsersCreatedAt,
		UsersUpdatedAt:      m.UsersUpdatedAt,
	}
}

// En DB se guarda la ruta relativa del blob; hacia afuera siempre /media/...
func photoURL(rel *string) *string {
	if rel == nil || strings.TrimSpace(*rel) == "" {
		return nil
	}
	u := "/media/" + strings.TrimPrefix(*rel, "/")
	return &u
}

func NewUserResponses(ms []model.UserModel) []*UserResponse {
	out := make([]*UserResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewUserResponse(&ms[i]))
	}
	return out
}

// Versión corta para listados embebidos (roster, citaciones, etc.).
type UserLiteResponse struct {
	UsersID             uuid.UUID `json:"users_id"`
	UsersDocumentNumber string    `json:"users_document_number"`
	FullName            string    `json:"full_name"`
	UsersEmail          string    `json:"users_email"`
	UsersRole           string    `json:"users_role"`
}

func NewUserLiteResponse(m *model.UserModel) *UserLiteResponse {
	if m == nil {
		return nil
	}
	return &UserLiteResponse{
		UsersID:             m.UsersID,
		UsersDocumentNumber: m.UsersDocumentNumber,
		FullName:            m.FullName(),
		UsersEmail:          m.UsersEmail,
		UsersRole:           string(m.UsersRole),
	}
}
