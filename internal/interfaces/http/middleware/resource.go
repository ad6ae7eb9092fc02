package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/taskflow/backend/internal/domain/project"
	"github.com/taskflow/backend/internal/interfaces/http/dto"
)

// Resource context keys
const (
	CurrentProjectKey = "current_project"
	CurrentTaskKey    = "current_task"
)

// ResolveProject validates the projectId path parameter, loads the
// project and attaches it to the context. Malformed ids are a 400
// validation error, missing projects a 404.
func ResolveProject(projects project.ProjectRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := uuid.Parse(c.Param("projectId"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewValidationErrorResponse([]dto.ValidationDetail{
				{Msg: "Invalid project id", Path: "projectId"},
			}))
			return
		}

		proj, err := projects.FindByID(c.Request.Context(), projectID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, dto.NewErrorResponse("Project not found"))
			return
		}

		c.Set(CurrentProjectKey, proj)
		c.Next()
	}
}

// ResolveTask validates the taskId path parameter, loads the task and
// attaches it to the context. Runs behind ResolveProject; a task that
// belongs to another project is rejected.
func ResolveTask(tasks project.TaskRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		taskID, err := uuid.Parse(c.Param("taskId"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewValidationErrorResponse([]dto.ValidationDetail{
				{Msg: "Invalid task id", Path: "taskId"},
			}))
			return
		}

		task, err := tasks.FindByID(c.Request.Context(), taskID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, dto.NewErrorResponse("Task not found"))
			return
		}

		proj := MustGetCurrentProject(c)
		if !task.BelongsTo(proj.ID) {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid action"))
			return
		}

		c.Set(CurrentTaskKey, task)
		c.Next()
	}
}

// RequireProjectAccess rejects callers who are neither the manager nor
// a team member of the resolved project.
func RequireProjectAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		proj := MustGetCurrentProject(c)
		user := MustGetCurrentUser(c)

		if !proj.HasAccess(user.ID) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse("Invalid action"))
			return
		}

		c.Next()
	}
}

// RequireManager rejects callers who do not manage the resolved project.
// The message names the operation being guarded.
func RequireManager(message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		proj := MustGetCurrentProject(c)
		user := MustGetCurrentUser(c)

		if !proj.IsManager(user.ID) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(message))
			return
		}

		c.Next()
	}
}

// GetCurrentProject retrieves the resolved project from gin.Context
func GetCurrentProject(c *gin.Context) *project.Project {
	if proj, exists := c.Get(CurrentProjectKey); exists {
		if p, ok := proj.(*project.Project); ok {
			return p
		}
	}
	return nil
}

// MustGetCurrentProject retrieves the resolved project or panics. Only
// valid behind ResolveProject.
func MustGetCurrentProject(c *gin.Context) *project.Project {
	proj := GetCurrentProject(c)
	if proj == nil {
		panic("current project not found in context")
	}
	return proj
}

// GetCurrentTask retrieves the resolved task from gin.Context
func GetCurrentTask(c *gin.Context) *project.Task {
	if task, exists := c.Get(CurrentTaskKey); exists {
		if t, ok := task.(*project.Task); ok {
			return t
		}
	}
	return nil
}

// MustGetCurrentTask retrieves the resolved task or panics. Only valid
// behind ResolveTask.
func MustGetCurrentTask(c *gin.Context) *project.Task {
	task := GetCurrentTask(c)
	if task == nil {
		panic("current task not found in context")
	}
	return task
}
