package project

import (
	"context"

	"github.com/google/uuid"
	"github.com/taskflow/backend/internal/domain/identity"
	"github.com/taskflow/backend/internal/domain/project"
	"github.com/taskflow/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// TaskService handles task CRUD, status changes and notes under a
// resolved parent project
type TaskService struct {
	taskRepo project.TaskRepository
	noteRepo project.NoteRepository
	userRepo identity.UserRepository
	statuses []string
	logger   *zap.Logger
}

// NewTaskService creates a new task service. statuses is the closed set
// a status change may use.
func NewTaskService(
	taskRepo project.TaskRepository,
	noteRepo project.NoteRepository,
	userRepo identity.UserRepository,
	statuses []string,
	logger *zap.Logger,
) *TaskService {
	if len(statuses) == 0 {
		statuses = project.DefaultStatuses()
	}
	return &TaskService{
		taskRepo: taskRepo,
		noteRepo: noteRepo,
		userRepo: userRepo,
		statuses: statuses,
		logger:   logger,
	}
}

// Create creates a pending task under the project. The task row and its
// parent relation land in one transaction.
func (s *TaskService) Create(ctx context.Context, proj *project.Project, input CreateTaskInput) (*TaskResult, error) {
	task, err := project.NewTask(proj.ID, input.Name, input.Description)
	if err != nil {
		return nil, err
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		s.logger.Error("Failed to create task", zap.Error(err))
		return nil, shared.NewInternalError("Failed to create task")
	}

	s.logger.Info("Task created",
		zap.String("task_id", task.ID.String()),
		zap.String("project_id", proj.ID.String()))

	return taskToResult(task, nil), nil
}

// List returns the project's tasks in creation order with their
// completion history populated
func (s *TaskService) List(ctx context.Context, proj *project.Project) ([]TaskResult, error) {
	tasks, err := s.taskRepo.FindByProject(ctx, proj.ID)
	if err != nil {
		s.logger.Error("Failed to list tasks", zap.Error(err))
		return nil, shared.NewInternalError("Failed to list tasks")
	}

	users, err := s.historyUsers(ctx, tasks)
	if err != nil {
		return nil, err
	}

	results := make([]TaskResult, 0, len(tasks))
	for _, task := range tasks {
		results = append(results, *taskToResult(task, users))
	}
	return results, nil
}

// Get returns the task document with populated history and notes
func (s *TaskService) Get(ctx context.Context, task *project.Task) (*TaskResult, error) {
	users, err := s.historyUsers(ctx, []*project.Task{task})
	if err != nil {
		return nil, err
	}
	return taskToResult(task, users), nil
}

// Update overwrites name and description
func (s *TaskService) Update(ctx context.Context, task *project.Task, input UpdateTaskInput) (*TaskResult, error) {
	if err := task.UpdateDetails(input.Name, input.Description); err != nil {
		return nil, err
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		s.logger.Error("Failed to update task", zap.Error(err))
		return nil, shared.NewInternalError("Failed to update task")
	}

	return taskToResult(task, nil), nil
}

// UpdateStatus sets the status and appends a completion history entry.
// The status must belong to the configured set.
func (s *TaskService) UpdateStatus(ctx context.Context, task *project.Task, status string, callerID uuid.UUID) (*TaskResult, error) {
	if !s.validStatus(status) {
		return nil, shared.NewValidationError("Invalid status")
	}

	event := task.ChangeStatus(project.TaskStatus(status), callerID)

	if err := s.taskRepo.SaveStatusChange(ctx, task, event); err != nil {
		s.logger.Error("Failed to save status change", zap.Error(err))
		return nil, shared.NewInternalError("Failed to update task status")
	}

	s.logger.Info("Task status updated",
		zap.String("task_id", task.ID.String()),
		zap.String("status", status),
		zap.String("user_id", callerID.String()))

	users, err := s.historyUsers(ctx, []*project.Task{task})
	if err != nil {
		return nil, err
	}
	return taskToResult(task, users), nil
}

// Delete removes the task together with its history and notes
func (s *TaskService) Delete(ctx context.Context, task *project.Task) error {
	if err := s.taskRepo.Delete(ctx, task.ID); err != nil {
		s.logger.Error("Failed to delete task", zap.Error(err))
		return shared.NewInternalError("Failed to delete task")
	}

	s.logger.Info("Task deleted", zap.String("task_id", task.ID.String()))

	return nil
}

// CreateNote attaches a note to the task
func (s *TaskService) CreateNote(ctx context.Context, task *project.Task, callerID uuid.UUID, content string) (*NoteResult, error) {
	note, err := project.NewNote(task.ID, callerID, content)
	if err != nil {
		return nil, err
	}

	if err := s.noteRepo.Create(ctx, note); err != nil {
		s.logger.Error("Failed to create note", zap.Error(err))
		return nil, shared.NewInternalError("Failed to create note")
	}

	result := s.noteResults(ctx, []*project.Note{note})
	return &result[0], nil
}

// ListNotes returns the task's notes with creator documents
func (s *TaskService) ListNotes(ctx context.Context, task *project.Task) ([]NoteResult, error) {
	notes, err := s.noteRepo.FindByTask(ctx, task.ID)
	if err != nil {
		s.logger.Error("Failed to list notes", zap.Error(err))
		return nil, shared.NewInternalError("Failed to list notes")
	}
	return s.noteResults(ctx, notes), nil
}

// DeleteNote removes a note, creator only
func (s *TaskService) DeleteNote(ctx context.Context, task *project.Task, noteID, callerID uuid.UUID) error {
	note, err := s.noteRepo.FindByID(ctx, noteID)
	if err != nil {
		return shared.NewNotFoundError("Note not found")
	}
	if note.TaskID != task.ID {
		return shared.NewValidationError("Invalid action")
	}
	if !note.IsCreator(callerID) {
		return shared.NewForbiddenError("Invalid action")
	}

	if err := s.noteRepo.Delete(ctx, note.ID); err != nil {
		s.logger.Error("Failed to delete note", zap.Error(err))
		return shared.NewInternalError("Failed to delete note")
	}

	return nil
}

// Statuses returns the configured status set
func (s *TaskService) Statuses() []string {
	return s.statuses
}

func (s *TaskService) validStatus(status string) bool {
	for _, valid := range s.statuses {
		if status == valid {
			return true
		}
	}
	return false
}

// historyUsers loads the users referenced by the tasks' history entries
func (s *TaskService) historyUsers(ctx context.Context, tasks []*project.Task) (map[uuid.UUID]*identity.User, error) {
	seen := make(map[uuid.UUID]bool)
	ids := make([]uuid.UUID, 0)
	for _, task := range tasks {
		for _, event := range task.History {
			if !seen[event.UserID] {
				seen[event.UserID] = true
				ids = append(ids, event.UserID)
			}
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}

	users, err := s.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("Failed to load history users", zap.Error(err))
		return nil, shared.NewInternalError("Failed to load task history")
	}

	byID := make(map[uuid.UUID]*identity.User, len(users))
	for _, user := range users {
		byID[user.ID] = user
	}
	return byID, nil
}

// noteResults maps notes and populates their creators
func (s *TaskService) noteResults(ctx context.Context, notes []*project.Note) []NoteResult {
	seen := make(map[uuid.UUID]bool)
	ids := make([]uuid.UUID, 0)
	for _, note := range notes {
		if !seen[note.CreatedBy] {
			seen[note.CreatedBy] = true
			ids = append(ids, note.CreatedBy)
		}
	}

	byID := make(map[uuid.UUID]*identity.User)
	if len(ids) > 0 {
		users, err := s.userRepo.FindByIDs(ctx, ids)
		if err != nil {
			s.logger.Error("Failed to load note creators", zap.Error(err))
		} else {
			for _, user := range users {
				byID[user.ID] = user
			}
		}
	}

	results := make([]NoteResult, 0, len(notes))
	for _, note := range notes {
		results = append(results, noteToResult(note, byID[note.CreatedBy]))
	}
	return results
}

// taskToResult maps a task; users may be nil when history population
// is not needed
func taskToResult(task *project.Task, users map[uuid.UUID]*identity.User) *TaskResult {
	history := make([]StatusEventResult, 0, len(task.History))
	for _, event := range task.History {
		ref := MemberRef{ID: event.UserID}
		if user, ok := users[event.UserID]; ok {
			ref.Name = user.Name
			ref.Email = user.Email
		}
		history = append(history, StatusEventResult{
			ID:     event.ID,
			User:   ref,
			Status: string(event.Status),
		})
	}

	notes := make([]NoteResult, 0, len(task.Notes))
	for _, note := range task.Notes {
		notes = append(notes, noteToResult(note, nil))
	}

	return &TaskResult{
		ID:          task.ID,
		Name:        task.Name,
		Description: task.Description,
		Status:      string(task.Status),
		Project:     task.ProjectID,
		CompletedBy: history,
		Notes:       notes,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// noteToResult maps a note; creator may be nil
func noteToResult(note *project.Note, creator *identity.User) NoteResult {
	ref := MemberRef{ID: note.CreatedBy}
	if creator != nil {
		ref.Name = creator.Name
		ref.Email = creator.Email
	}
	return NoteResult{
		ID:        note.ID,
		Content:   note.Content,
		CreatedBy: ref,
		Task:      note.TaskID,
		CreatedAt: note.CreatedAt,
	}
}
