package dto

import (
	"time"

	"github.com/google/uuid"
)

// RegisterRequest represents the request body for user registration
type RegisterRequest struct {
	Name     string `json:"name" binding:"required" validate:"required,not_empty" example:"Ada Lovelace"`
	Email    string `json:"email" binding:"required,email" validate:"required,email" example:"ada@example.com"`
	Password string `json:"password" binding:"required,min=8" validate:"required,min=8"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" validate:"required,email" example:"ada@example.com"`
	Password string `json:"password" binding:"required" validate:"required"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID             uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name           string    `json:"name" example:"Ada Lovelace"`
	Email          string    `json:"email" example:"ada@example.com"`
	Status         string    `json:"status" example:"active"`
	TelegramLinked bool      `json:"telegram_linked"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// AuthResponse carries a fresh token and the authenticated user
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}
