package handler

// CreateAccountRequest is the registration body
type CreateAccountRequest struct {
	Name                 string `json:"name" binding:"required"`
	Email                string `json:"email" binding:"required,email"`
	Password             string `json:"password" binding:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" binding:"required,eqfield=Password"`
}

// TokenRequest carries a 6-digit confirmation or reset code
type TokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// LoginRequest is the login body
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// EmailRequest carries an email asking for a fresh code
type EmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// NewPasswordRequest sets a password through a reset code
type NewPasswordRequest struct {
	Password             string `json:"password" binding:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" binding:"required,eqfield=Password"`
}

// UpdateProfileRequest changes the caller's name and email
type UpdateProfileRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// UpdatePasswordRequest changes the caller's password
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	Password        string `json:"password" binding:"required,min=8"`
}

// CheckPasswordRequest verifies the caller's password
type CheckPasswordRequest struct {
	Password string `json:"password" binding:"required"`
}
