package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/taskflow/backend/internal/application/project"
	"github.com/taskflow/backend/internal/interfaces/http/dto"
	"github.com/taskflow/backend/internal/interfaces/http/middleware"
)

// NoteRequest is the note creation body
type NoteRequest struct {
	Content string `json:"content" binding:"required"`
}

// NoteHandler handles notes under a resolved task
type NoteHandler struct {
	BaseHandler
	taskService *project.TaskService
}

// NewNoteHandler creates a new note handler
func NewNoteHandler(taskService *project.TaskService) *NoteHandler {
	return &NoteHandler{
		taskService: taskService,
	}
}

// Create attaches a note to the resolved task
func (h *NoteHandler) Create(c *gin.Context) {
	var req NoteRequest
	if !h.BindJSON(c, &req) {
		return
	}

	task := middleware.MustGetCurrentTask(c)
	user := middleware.MustGetCurrentUser(c)

	_, err := h.taskService.CreateNote(c.Request.Context(), task, user.ID, req.Content)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.CreatedMessage(c, "Note created successfully")
}

// List returns the task's notes with creator documents
func (h *NoteHandler) List(c *gin.Context) {
	task := middleware.MustGetCurrentTask(c)

	results, err := h.taskService.ListNotes(c.Request.Context(), task)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, results)
}

// Delete removes a note, creator only
func (h *NoteHandler) Delete(c *gin.Context) {
	noteID, err := uuid.Parse(c.Param("noteId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse([]dto.ValidationDetail{
			{Msg: "Invalid note id", Path: "noteId"},
		}))
		return
	}

	task := middleware.MustGetCurrentTask(c)
	user := middleware.MustGetCurrentUser(c)

	if err := h.taskService.DeleteNote(c.Request.Context(), task, noteID, user.ID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Message(c, "Note deleted")
}
