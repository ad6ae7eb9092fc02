package dto

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taskflow/backend/internal/domain/shared"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{shared.CodeNotFound, http.StatusNotFound},
		{shared.CodeConflict, http.StatusConflict},
		{shared.CodeUnauthorized, http.StatusUnauthorized},
		{shared.CodeForbidden, http.StatusForbidden},
		{shared.CodeInvalidInput, http.StatusBadRequest},
		{shared.CodeInternal, http.StatusInternalServerError},
		// Unknown code should return 500
		{"UNKNOWN_CODE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}

func TestErrorResponseShape(t *testing.T) {
	t.Run("error body has a single error key", func(t *testing.T) {
		body, err := json.Marshal(NewErrorResponse("Project not found"))
		assert.NoError(t, err)
		assert.JSONEq(t, `{"error": "Project not found"}`, string(body))
	})

	t.Run("validation body is an errors array", func(t *testing.T) {
		body, err := json.Marshal(NewValidationErrorResponse([]ValidationDetail{
			{Msg: "Name is required", Path: "name"},
			{Msg: "Email is invalid", Path: "email"},
		}))
		assert.NoError(t, err)
		assert.JSONEq(t, `{"errors": [{"msg": "Name is required", "path": "name"}, {"msg": "Email is invalid", "path": "email"}]}`, string(body))
	})
}
