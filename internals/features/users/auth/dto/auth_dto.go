package dto

import (
	userDTO "akademiku_backend/internals/features/users/user/dto"
)

/* ===================== REQUESTS ===================== */

type LoginRequest struct {
	DocumentNumber string `json:"document_number" validate:"required,numeric,min=6,max=20"`
	Password       string `json:"password" validate:"required"`
}

// El refresh token puede venir en cookie o en el body.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"omitempty"`
}

type ChangePasswordRequest struct {
	CurrentPassword    string `json:"current_password" validate:"required"`
	NewPassword        string `json:"new_password" validate:"required,min=8,max=72"`
	NewPasswordConfirm string `json:"new_password_confirm" validate:"required"`
}

// Se acepta email o documento; con uno basta.
type ForgotPasswordRequest struct {
	Email          string `json:"email" validate:"omitempty,email"`
	DocumentNumber string `json:"document_number" validate:"omitempty,numeric,min=6,max=20"`
}

type ResetPasswordRequest struct {
	Token              string `json:"token" validate:"required,uuid4"`
	NewPassword        string `json:"new_password" validate:"required,min=8,max=72"`
	NewPasswordConfirm string `json:"new_password_confirm" validate:"required"`
}

/* ===================== RESPONSES ===================== */

type LoginResponse struct {
	AccessToken  string                `json:"access_token"`
	RefreshToken string                `json:"refresh_token"`
	User         *userDTO.UserResponse `json:"user"`
}

type RefreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
