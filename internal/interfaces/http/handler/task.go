package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/taskflow/backend/internal/application/project"
	"github.com/taskflow/backend/internal/interfaces/http/middleware"
)

// TaskRequest is the create and update body
type TaskRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// StatusRequest changes a task's status
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// TaskHandler handles task CRUD and status changes under a resolved
// project
type TaskHandler struct {
	BaseHandler
	taskService *project.TaskService
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService *project.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// Create creates a pending task under the resolved project
func (h *TaskHandler) Create(c *gin.Context) {
	var req TaskRequest
	if !h.BindJSON(c, &req) {
		return
	}

	proj := middleware.MustGetCurrentProject(c)

	_, err := h.taskService.Create(c.Request.Context(), proj, project.CreateTaskInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.CreatedMessage(c, "Task created successfully")
}

// List returns the project's tasks with history and notes
func (h *TaskHandler) List(c *gin.Context) {
	proj := middleware.MustGetCurrentProject(c)

	results, err := h.taskService.List(c.Request.Context(), proj)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, results)
}

// Get returns the resolved task document
func (h *TaskHandler) Get(c *gin.Context) {
	task := middleware.MustGetCurrentTask(c)

	result, err := h.taskService.Get(c.Request.Context(), task)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Update overwrites the task's name and description
func (h *TaskHandler) Update(c *gin.Context) {
	var req TaskRequest
	if !h.BindJSON(c, &req) {
		return
	}

	task := middleware.MustGetCurrentTask(c)

	_, err := h.taskService.Update(c.Request.Context(), task, project.UpdateTaskInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Message(c, "Task updated")
}

// Delete removes the task with its history and notes
func (h *TaskHandler) Delete(c *gin.Context) {
	task := middleware.MustGetCurrentTask(c)

	if err := h.taskService.Delete(c.Request.Context(), task); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Message(c, "Task deleted")
}

// UpdateStatus sets the status and appends the caller to the
// completion history
func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	var req StatusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	task := middleware.MustGetCurrentTask(c)
	user := middleware.MustGetCurrentUser(c)

	_, err := h.taskService.UpdateStatus(c.Request.Context(), task, req.Status, user.ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Message(c, "Task status updated")
}
