package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"akademiku_backend/internals/constants"
)

/* =========================
   Enums (alineados con DB)
========================= */

type DocumentType string

const (
	DocumentTypeCC  DocumentType = "CC"  // Cédula de Ciudadanía
	DocumentTypeTI  DocumentType = "TI"  // Tarjeta de Identidad
	DocumentTypeCE  DocumentType = "CE"  // Cédula de Extranjería
	DocumentTypePAS DocumentType = "PAS" // Pasaporte
)

func (d DocumentType) IsValid() bool {
	switch d {
	case DocumentTypeCC, DocumentTypeTI, DocumentTypeCE, DocumentTypePAS:
		return true
	}
	return false
}

/* =========================
   Model: users
========================= */

type UserModel struct {
	// PK
	UsersID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:users_id" json:"users_id"`

	// Identidad
	UsersDocumentNumber string       `gorm:"type:varchar(20);not null;uniqueIndex:uq_users_document_number;column:users_document_number" json:"users_document_number"`
	UsersDocumentType   DocumentType `gorm:"type:varchar(5);not null;default:'CC';column:users_document_type" json:"users_document_type"`
	UsersFirstName      string       `gorm:"type:varchar(100);not null;column:users_first_name" json:"users_first_name"`
	UsersLastName       string       `gorm:"type:varchar(100);not null;column:users_last_name" json:"users_last_name"`
	UsersEmail          string       `gorm:"type:varchar(255);not null;uniqueIndex:uq_users_email;column:users_email" json:"users_email"`

	// Credenciales (hash bcrypt, nunca se serializa)
	UsersPassword string `gorm:"type:varchar(255);not null;column:users_password" json:"-"`

	// Rol (enum cerrado, ver internals/constants)
	UsersRole constants.Role `gorm:"type:varchar(20);not null;default:'APRENDIZ';column:users_role;index:idx_users_role" json:"users_role"`

	// Contacto & perfil
	UsersPhone    *string `gorm:"type:varchar(15);column:users_phone" json:"users_phone,omitempty"`
	UsersPhotoURL *string `gorm:"type:text;column:users_photo_url" json:"users_photo_url,omitempty"`

	// Estado
	UsersIsActive    bool       `gorm:"not null;default:true;column:users_is_active;index:idx_users_is_active" json:"users_is_active"`
	UsersLastLoginAt *time.Time `gorm:"type:timestamptz;column:users_last_login_at" json:"users_last_login_at,omitempty"`

	// Audit
	UsersCreatedAt time.Time      `gorm:"type:timestamptz;autoCreateTime;column:users_created_at" json:"users_created_at"`
	UsersUpdatedAt time.Time      `gorm:"type:timestamptz;autoUpdateTime;column:users_updated_at" json:"users_updated_at"`
	UsersDeletedAt gorm.DeletedAt `gorm:"column:users_deleted_at;index" json:"users_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) FullName() string {
	return strings.TrimSpace(u.UsersFirstName + " " + u.UsersLastName)
}
