package identity

import (
	"time"

	"github.com/google/uuid"
)

// CreateAccountInput contains the input for account registration
type CreateAccountInput struct {
	Name     string
	Email    string
	Password string
}

// ConfirmAccountInput contains the confirmation code
type ConfirmAccountInput struct {
	Token string
}

// LoginInput contains the input for user login
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult contains the signed session token
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
}

// RequestCodeInput contains the email asking for a fresh code
type RequestCodeInput struct {
	Email string
}

// ValidateTokenInput contains a reset code to check
type ValidateTokenInput struct {
	Token string
}

// UpdatePasswordWithTokenInput contains a reset code and the new password
type UpdatePasswordWithTokenInput struct {
	Token    string
	Password string
}

// UpdateProfileInput contains the caller's new profile fields
type UpdateProfileInput struct {
	UserID uuid.UUID
	Name   string
	Email  string
}

// UpdatePasswordInput contains the caller's password change
type UpdatePasswordInput struct {
	UserID          uuid.UUID
	CurrentPassword string
	Password        string
}

// CheckPasswordInput contains a password to verify against the caller
type CheckPasswordInput struct {
	UserID   uuid.UUID
	Password string
}

// UserInfo contains the user fields exposed to callers
type UserInfo struct {
	ID    uuid.UUID `json:"_id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}
