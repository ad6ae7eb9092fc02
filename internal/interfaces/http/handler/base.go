package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskflow/backend/internal/domain/shared"
	"github.com/taskflow/backend/internal/interfaces/http/dto"
	"github.com/taskflow/backend/internal/interfaces/http/middleware"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// Success sends a 200 response with a JSON document
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 response with a JSON document
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Message sends a 200 response with a plain text message
func (h *BaseHandler) Message(c *gin.Context, message string) {
	c.String(http.StatusOK, message)
}

// CreatedMessage sends a 201 response with a plain text message
func (h *BaseHandler) CreatedMessage(c *gin.Context, message string) {
	c.String(http.StatusCreated, message)
}

// Error sends an error response with the given status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.NewErrorResponse(message))
}

// HandleError converts domain errors to HTTP responses. Unknown error
// types become a 500.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		h.Error(c, dto.GetHTTPStatus(domainErr.Code), domainErr.Message)
		return
	}

	h.Error(c, http.StatusInternalServerError, "An unexpected error occurred")
}

// BindJSON binds the request body and renders validation failures as
// the errors array. Returns false when the request was rejected.
func (h *BaseHandler) BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		middleware.HandleValidationError(c, err)
		return false
	}
	return true
}
