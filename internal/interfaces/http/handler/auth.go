package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/taskflow/backend/internal/application/identity"
	"github.com/taskflow/backend/internal/interfaces/http/middleware"
)

// AuthHandler handles registration, confirmation, login, password
// recovery and the authenticated profile endpoints
type AuthHandler struct {
	BaseHandler
	authService *identity.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *identity.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// CreateAccount registers an unconfirmed user and emails a code
func (h *AuthHandler) CreateAccount(c *gin.Context) {
	var req CreateAccountRequest
	if !h.BindJSON(c, &req) {
		return
	}

	err := h.authService.CreateAccount(c.Request.Context(), identity.CreateAccountInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.CreatedMessage(c, "Account created, check your email to confirm")
}

// ConfirmAccount flips the user to confirmed through a valid code
func (h *AuthHandler) ConfirmAccount(c *gin.Context) {
	var req TokenRequest
	if !h.BindJSON(c, &req) {
		return
	}

	err := h.authService.ConfirmAccount(c.Request.Context(), identity.ConfirmAccountInput{
		Token: req.Token,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Message(c, "Account confirmed")
}

// Login verifies credentials and returns a signed session token as
// the plain text body
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	result, err := h.authService.Login(c.Request.Context(), identity.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Message(c, result.Token)
}

// RequestCode sends a fresh confirmation code to an unconfirmed user
func (h *AuthHandler) RequestCode(c *gin.Context) {
	var req EmailRequest
	if !h.BindJSON(c, &req) {
		return
	}

	err := h.authService.RequestConfirmationCode(c.Request.Context(), identity.RequestCodeInput{
		Email: req.Email,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Message(c, "A new token was sent to your email")
}

// ForgotPassword sends a reset code to a registered user
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req EmailRequest
	if !h.BindJSON(c, &req) {
		return
	}

	err := h.authService.ForgotPassword(c.Request.Context(), identity.RequestCodeInput{
		Email: req.Email,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Message(c, "Check your email for instructions")
}

// ValidateToken checks that a reset code is still inside its window
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	var req TokenRequest
	if !h.BindJSON(c, &req) {
		return
	}

	err := h.authService.ValidateToken(c.Request.Context(), identity.ValidateTokenInput{
		Token: req.Token,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Message(c, "Valid token, set your new password")
}

// UpdatePasswordWithToken sets a new password through a reset code.
// Outstanding sessions are invalidated.
func (h *AuthHandler) UpdatePasswordWithToken(c *gin.Context) {
	var req NewPasswordRequest
	if !h.BindJSON(c, &req) {
		return
	}

	err := h.authService.UpdatePasswordWithToken(c.Request.Context(), identity.UpdatePasswordWithTokenInput{
		Token:    c.Param("token"),
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Message(c, "The password was changed successfully")
}

// GetUser returns the caller's profile document
func (h *AuthHandler) GetUser(c *gin.Context) {
	user := middleware.MustGetCurrentUser(c)

	info, err := h.authService.GetUser(c.Request.Context(), user.ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, info)
}

// UpdateProfile changes the caller's name and email
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if !h.BindJSON(c, &req) {
		return
	}

	user := middleware.MustGetCurrentUser(c)

	err := h.authService.UpdateProfile(c.Request.Context(), identity.UpdateProfileInput{
		UserID: user.ID,
		Name:   req.Name,
		Email:  req.Email,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Message(c, "Profile updated successfully")
}

// UpdatePassword changes the caller's password after checking the
// current one. Outstanding sessions are invalidated.
func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	var req UpdatePasswordRequest
	if !h.BindJSON(c, &req) {
		return
	}

	user := middleware.MustGetCurrentUser(c)

	err := h.authService.UpdateCurrentUserPassword(c.Request.Context(), identity.UpdatePasswordInput{
		UserID:          user.ID,
		CurrentPassword: req.CurrentPassword,
		Password:        req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Message(c, "The password was changed successfully")
}

// CheckPassword verifies the caller's password before destructive
// front end actions
func (h *AuthHandler) CheckPassword(c *gin.Context) {
	var req CheckPasswordRequest
	if !h.BindJSON(c, &req) {
		return
	}

	user := middleware.MustGetCurrentUser(c)

	err := h.authService.CheckPassword(c.Request.Context(), identity.CheckPasswordInput{
		UserID:   user.ID,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Message(c, "Correct password")
}
