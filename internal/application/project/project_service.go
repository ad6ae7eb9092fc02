package project

import (
	"context"

	"github.com/google/uuid"
	"github.com/taskflow/backend/internal/domain/identity"
	"github.com/taskflow/backend/internal/domain/project"
	"github.com/taskflow/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ProjectService handles project CRUD and team membership
type ProjectService struct {
	projectRepo project.ProjectRepository
	taskRepo    project.TaskRepository
	userRepo    identity.UserRepository
	logger      *zap.Logger
}

// NewProjectService creates a new project service
func NewProjectService(
	projectRepo project.ProjectRepository,
	taskRepo project.TaskRepository,
	userRepo identity.UserRepository,
	logger *zap.Logger,
) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// Create creates a project managed by the caller and echoes the document
func (s *ProjectService) Create(ctx context.Context, input CreateProjectInput) (*ProjectResult, error) {
	proj, err := project.NewProject(input.ProjectName, input.ClientName, input.Description, input.ManagerID)
	if err != nil {
		return nil, err
	}

	if err := s.projectRepo.Create(ctx, proj); err != nil {
		s.logger.Error("Failed to create project", zap.Error(err))
		return nil, shared.NewInternalError("Failed to create project")
	}

	s.logger.Info("Project created",
		zap.String("project_id", proj.ID.String()),
		zap.String("manager_id", input.ManagerID.String()))

	return projectToResult(proj), nil
}

// ListForUser returns projects where the caller is manager or team member
func (s *ProjectService) ListForUser(ctx context.Context, userID uuid.UUID) ([]ProjectResult, error) {
	projects, err := s.projectRepo.FindForUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list projects", zap.Error(err))
		return nil, shared.NewInternalError("Failed to list projects")
	}

	results := make([]ProjectResult, 0, len(projects))
	for _, proj := range projects {
		results = append(results, *projectToResult(proj))
	}
	return results, nil
}

// Get returns the project with its task list. The caller must be the
// manager or a team member.
func (s *ProjectService) Get(ctx context.Context, proj *project.Project, callerID uuid.UUID) (*ProjectResult, error) {
	if !proj.HasAccess(callerID) {
		return nil, shared.NewForbiddenError("Invalid action")
	}

	tasks, err := s.taskRepo.FindByProject(ctx, proj.ID)
	if err != nil {
		s.logger.Error("Failed to load project tasks", zap.Error(err))
		return nil, shared.NewInternalError("Failed to load project")
	}
	proj.Tasks = tasks

	result := projectToResult(proj)
	result.Tasks = make([]TaskResult, 0, len(tasks))
	for _, task := range tasks {
		result.Tasks = append(result.Tasks, *taskToResult(task, nil))
	}
	return result, nil
}

// Update overwrites the descriptive fields, manager only
func (s *ProjectService) Update(ctx context.Context, proj *project.Project, callerID uuid.UUID, input UpdateProjectInput) (*ProjectResult, error) {
	if !proj.IsManager(callerID) {
		return nil, shared.NewForbiddenError("Only the manager can update the project")
	}

	if err := proj.UpdateDetails(input.ProjectName, input.ClientName, input.Description); err != nil {
		return nil, err
	}

	if err := s.projectRepo.Update(ctx, proj); err != nil {
		s.logger.Error("Failed to update project", zap.Error(err))
		return nil, shared.NewInternalError("Failed to update project")
	}

	return projectToResult(proj), nil
}

// Delete removes the project, manager only. Tasks, history and notes
// cascade with it.
func (s *ProjectService) Delete(ctx context.Context, proj *project.Project, callerID uuid.UUID) error {
	if !proj.IsManager(callerID) {
		return shared.NewForbiddenError("Only the manager can delete the project")
	}

	if err := s.projectRepo.Delete(ctx, proj.ID); err != nil {
		s.logger.Error("Failed to delete project", zap.Error(err))
		return shared.NewInternalError("Failed to delete project")
	}

	s.logger.Info("Project deleted", zap.String("project_id", proj.ID.String()))

	return nil
}

// FindMemberByEmail looks a user up for the add-member flow
func (s *ProjectService) FindMemberByEmail(ctx context.Context, email string) (*MemberRef, error) {
	user, err := s.userRepo.FindByEmail(ctx, identity.NormalizeEmail(email))
	if err != nil {
		return nil, shared.NewNotFoundError("User not found")
	}

	return &MemberRef{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}, nil
}

// ListMembers returns the team as user documents
func (s *ProjectService) ListMembers(ctx context.Context, proj *project.Project) ([]MemberRef, error) {
	users, err := s.userRepo.FindByIDs(ctx, proj.TeamIDs)
	if err != nil {
		s.logger.Error("Failed to load team members", zap.Error(err))
		return nil, shared.NewInternalError("Failed to load team")
	}

	members := make([]MemberRef, 0, len(users))
	for _, user := range users {
		members = append(members, MemberRef{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		})
	}
	return members, nil
}

// AddMember adds an existing user to the project team
func (s *ProjectService) AddMember(ctx context.Context, proj *project.Project, memberID uuid.UUID) error {
	if _, err := s.userRepo.FindByID(ctx, memberID); err != nil {
		return shared.NewNotFoundError("User not found")
	}

	if err := proj.AddMember(memberID); err != nil {
		return err
	}

	if err := s.projectRepo.AddMember(ctx, proj.ID, memberID); err != nil {
		s.logger.Error("Failed to add team member", zap.Error(err))
		return shared.NewInternalError("Failed to add team member")
	}

	s.logger.Info("Team member added",
		zap.String("project_id", proj.ID.String()),
		zap.String("user_id", memberID.String()))

	return nil
}

// RemoveMember removes a user from the project team
func (s *ProjectService) RemoveMember(ctx context.Context, proj *project.Project, memberID uuid.UUID) error {
	if err := proj.RemoveMember(memberID); err != nil {
		return err
	}

	if err := s.projectRepo.RemoveMember(ctx, proj.ID, memberID); err != nil {
		s.logger.Error("Failed to remove team member", zap.Error(err))
		return shared.NewInternalError("Failed to remove team member")
	}

	s.logger.Info("Team member removed",
		zap.String("project_id", proj.ID.String()),
		zap.String("user_id", memberID.String()))

	return nil
}

// projectToResult maps a project without populating its tasks
func projectToResult(proj *project.Project) *ProjectResult {
	team := proj.TeamIDs
	if team == nil {
		team = make([]uuid.UUID, 0)
	}
	return &ProjectResult{
		ID:          proj.ID,
		ProjectName: proj.ProjectName,
		ClientName:  proj.ClientName,
		Description: proj.Description,
		Manager:     proj.ManagerID,
		Team:        team,
		Tasks:       make([]TaskResult, 0),
		CreatedAt:   proj.CreatedAt,
		UpdatedAt:   proj.UpdatedAt,
	}
}
