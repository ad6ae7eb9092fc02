package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/taskflow/backend/internal/application/project"
	"github.com/taskflow/backend/internal/interfaces/http/dto"
	"github.com/taskflow/backend/internal/interfaces/http/middleware"
)

// ProjectRequest is the create and update body
type ProjectRequest struct {
	ProjectName string `json:"projectName" binding:"required"`
	ClientName  string `json:"clientName" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// FindMemberRequest looks a user up by email for the add-member flow
type FindMemberRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// AddMemberRequest adds a user to the team by id
type AddMemberRequest struct {
	ID string `json:"id" binding:"required,uuid"`
}

// ProjectHandler handles project CRUD and team membership
type ProjectHandler struct {
	BaseHandler
	projectService *project.ProjectService
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService *project.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// Create creates a project managed by the caller
func (h *ProjectHandler) Create(c *gin.Context) {
	var req ProjectRequest
	if !h.BindJSON(c, &req) {
		return
	}

	user := middleware.MustGetCurrentUser(c)

	result, err := h.projectService.Create(c.Request.Context(), project.CreateProjectInput{
		ProjectName: req.ProjectName,
		ClientName:  req.ClientName,
		Description: req.Description,
		ManagerID:   user.ID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// List returns the caller's projects
func (h *ProjectHandler) List(c *gin.Context) {
	user := middleware.MustGetCurrentUser(c)

	results, err := h.projectService.ListForUser(c.Request.Context(), user.ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, results)
}

// Get returns the resolved project with its task list
func (h *ProjectHandler) Get(c *gin.Context) {
	proj := middleware.MustGetCurrentProject(c)
	user := middleware.MustGetCurrentUser(c)

	result, err := h.projectService.Get(c.Request.Context(), proj, user.ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Update overwrites the project's descriptive fields
func (h *ProjectHandler) Update(c *gin.Context) {
	var req ProjectRequest
	if !h.BindJSON(c, &req) {
		return
	}

	proj := middleware.MustGetCurrentProject(c)
	user := middleware.MustGetCurrentUser(c)

	_, err := h.projectService.Update(c.Request.Context(), proj, user.ID, project.UpdateProjectInput{
		ProjectName: req.ProjectName,
		ClientName:  req.ClientName,
		Description: req.Description,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Message(c, "Project updated")
}

// Delete removes the project and everything under it
func (h *ProjectHandler) Delete(c *gin.Context) {
	proj := middleware.MustGetCurrentProject(c)
	user := middleware.MustGetCurrentUser(c)

	if err := h.projectService.Delete(c.Request.Context(), proj, user.ID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Message(c, "Project deleted")
}

// FindMember looks a user up by email
func (h *ProjectHandler) FindMember(c *gin.Context) {
	var req FindMemberRequest
	if !h.BindJSON(c, &req) {
		return
	}

	member, err := h.projectService.FindMemberByEmail(c.Request.Context(), req.Email)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, member)
}

// ListMembers returns the project team as user documents
func (h *ProjectHandler) ListMembers(c *gin.Context) {
	proj := middleware.MustGetCurrentProject(c)

	members, err := h.projectService.ListMembers(c.Request.Context(), proj)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, members)
}

// AddMember adds a user to the project team
func (h *ProjectHandler) AddMember(c *gin.Context) {
	var req AddMemberRequest
	if !h.BindJSON(c, &req) {
		return
	}

	memberID, err := uuid.Parse(req.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse([]dto.ValidationDetail{
			{Msg: "Invalid user id", Path: "id"},
		}))
		return
	}

	proj := middleware.MustGetCurrentProject(c)

	if err := h.projectService.AddMember(c.Request.Context(), proj, memberID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Message(c, "User added successfully")
}

// RemoveMember removes a user from the project team
func (h *ProjectHandler) RemoveMember(c *gin.Context) {
	memberID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse([]dto.ValidationDetail{
			{Msg: "Invalid user id", Path: "userId"},
		}))
		return
	}

	proj := middleware.MustGetCurrentProject(c)

	if err := h.projectService.RemoveMember(c.Request.Context(), proj, memberID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Message(c, "User deleted successfully")
}
