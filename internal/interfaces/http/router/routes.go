package router

import (
	"github.com/gin-gonic/gin"
	"github.com/taskflow/backend/internal/domain/project"
	"github.com/taskflow/backend/internal/interfaces/http/handler"
	"github.com/taskflow/backend/internal/interfaces/http/middleware"
)

const (
	managerOnlyTask = "Only the manager can modify the task"
	managerOnlyTeam = "Invalid action"
)

// AuthRoutes registers the auth surface. The account and password
// recovery endpoints are public, the profile endpoints sit behind the
// session gate.
type AuthRoutes struct {
	Handler     *handler.AuthHandler
	SessionGate gin.HandlerFunc
	RateLimit   gin.HandlerFunc
}

// RegisterRoutes implements RouteRegistrar
func (r *AuthRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	if r.RateLimit != nil {
		auth.Use(r.RateLimit)
	}

	auth.POST("/create-account", r.Handler.CreateAccount)
	auth.POST("/confirm-account", r.Handler.ConfirmAccount)
	auth.POST("/login", r.Handler.Login)
	auth.POST("/request-code", r.Handler.RequestCode)
	auth.POST("/forgot-password", r.Handler.ForgotPassword)
	auth.POST("/validate-token", r.Handler.ValidateToken)
	auth.POST("/update-password/:token", r.Handler.UpdatePasswordWithToken)

	profile := auth.Group("", r.SessionGate)
	profile.GET("/user", r.Handler.GetUser)
	profile.PUT("/profile", r.Handler.UpdateProfile)
	profile.POST("/update-password", r.Handler.UpdatePassword)
	profile.POST("/check-password", r.Handler.CheckPassword)
}

// ProjectRoutes registers the project surface: projects, team
// membership, tasks and notes. Everything sits behind the session
// gate; path parameters are resolved by the resource middlewares.
type ProjectRoutes struct {
	ProjectHandler *handler.ProjectHandler
	TaskHandler    *handler.TaskHandler
	NoteHandler    *handler.NoteHandler
	ProjectRepo    project.ProjectRepository
	TaskRepo       project.TaskRepository
	SessionGate    gin.HandlerFunc
}

// RegisterRoutes implements RouteRegistrar
func (r *ProjectRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	projects := rg.Group("/projects", r.SessionGate)

	projects.POST("", r.ProjectHandler.Create)
	projects.GET("", r.ProjectHandler.List)

	single := projects.Group("/:projectId", middleware.ResolveProject(r.ProjectRepo))
	single.GET("", r.ProjectHandler.Get)
	single.PUT("", r.ProjectHandler.Update)
	single.DELETE("", r.ProjectHandler.Delete)

	team := single.Group("/team", middleware.RequireProjectAccess())
	team.POST("/find", r.ProjectHandler.FindMember)
	team.GET("", r.ProjectHandler.ListMembers)
	team.POST("", middleware.RequireManager(managerOnlyTeam), r.ProjectHandler.AddMember)
	team.DELETE("/:userId", middleware.RequireManager(managerOnlyTeam), r.ProjectHandler.RemoveMember)

	tasks := single.Group("/tasks", middleware.RequireProjectAccess())
	tasks.POST("", middleware.RequireManager(managerOnlyTask), r.TaskHandler.Create)
	tasks.GET("", r.TaskHandler.List)

	task := tasks.Group("/:taskId", middleware.ResolveTask(r.TaskRepo))
	task.GET("", r.TaskHandler.Get)
	task.PUT("", middleware.RequireManager(managerOnlyTask), r.TaskHandler.Update)
	task.DELETE("", middleware.RequireManager(managerOnlyTask), r.TaskHandler.Delete)
	task.POST("/status", r.TaskHandler.UpdateStatus)

	notes := task.Group("/notes")
	notes.POST("", r.NoteHandler.Create)
	notes.GET("", r.NoteHandler.List)
	notes.DELETE("/:noteId", r.NoteHandler.Delete)
}
