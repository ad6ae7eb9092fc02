package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskflow/backend/internal/interfaces/http/dto"
)

func TestSetupValidator(t *testing.T) {
	// Should not panic
	SetupValidator()

	// Verify the validator is configured
	v, ok := binding.Validator.Engine().(*validator.Validate)
	assert.True(t, ok)
	assert.NotNil(t, v)
}

func TestHandleValidationError_ErrorsArray(t *testing.T) {
	type createAccountBody struct {
		Name                 string `json:"name" binding:"required"`
		Email                string `json:"email" binding:"required,email"`
		Password             string `json:"password" binding:"required,min=8"`
		PasswordConfirmation string `json:"password_confirmation" binding:"required,eqfield=Password"`
	}

	SetupValidator()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/test", func(c *gin.Context) {
		var req createAccountBody
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	t.Run("empty body yields one entry per required field", func(t *testing.T) {
		body := strings.NewReader(`{}`)
		req := httptest.NewRequest("POST", "/test", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.ValidationErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Errors, 4)
		assert.Equal(t, "Name is required", resp.Errors[0].Msg)
		assert.Equal(t, "name", resp.Errors[0].Path)
	})

	t.Run("mismatched confirmation", func(t *testing.T) {
		body := strings.NewReader(`{"name":"Alex","email":"alex@example.com","password":"password123","password_confirmation":"other456"}`)
		req := httptest.NewRequest("POST", "/test", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.ValidationErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, "Passwords do not match", resp.Errors[0].Msg)
		assert.Equal(t, "password_confirmation", resp.Errors[0].Path)
	})

	t.Run("short password", func(t *testing.T) {
		body := strings.NewReader(`{"name":"Alex","email":"alex@example.com","password":"short","password_confirmation":"short"}`)
		req := httptest.NewRequest("POST", "/test", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Password must be at least 8 characters")
	})

	t.Run("valid body passes", func(t *testing.T) {
		body := strings.NewReader(`{"name":"Alex","email":"alex@example.com","password":"password123","password_confirmation":"password123"}`)
		req := httptest.NewRequest("POST", "/test", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("malformed JSON falls back to a single body entry", func(t *testing.T) {
		body := strings.NewReader(`{not json`)
		req := httptest.NewRequest("POST", "/test", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.ValidationErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, "Invalid request body", resp.Errors[0].Msg)
		assert.Equal(t, "body", resp.Errors[0].Path)
	})
}

func TestFieldLabel(t *testing.T) {
	tests := []struct {
		field    string
		expected string
	}{
		{"projectName", "Project name"},
		{"clientName", "Client name"},
		{"password_confirmation", "Password confirmation"},
		{"email", "Email"},
		{"name", "Name"},
		{"", "Field"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			assert.Equal(t, tt.expected, fieldLabel(tt.field))
		})
	}
}
