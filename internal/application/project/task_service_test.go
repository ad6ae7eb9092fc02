package project

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/taskflow/backend/internal/domain/identity"
	"github.com/taskflow/backend/internal/domain/project"
	"github.com/taskflow/backend/internal/domain/shared"
	"go.uber.org/zap"
)

func newTaskService(taskRepo *MockTaskRepository, noteRepo *MockNoteRepository, userRepo *MockUserRepository) *TaskService {
	return NewTaskService(taskRepo, noteRepo, userRepo, project.DefaultStatuses(), zap.NewNop())
}

func newTestTask(t *testing.T, projectID uuid.UUID) *project.Task {
	t.Helper()
	task, err := project.NewTask(projectID, "Wireframes", "Initial wireframes for the homepage")
	require.NoError(t, err)
	return task
}

func TestTaskService_Create(t *testing.T) {
	t.Run("creates pending task", func(t *testing.T) {
		taskRepo := new(MockTaskRepository)
		service := newTaskService(taskRepo, new(MockNoteRepository), new(MockUserRepository))

		proj := newTestProject(t, uuid.New())
		taskRepo.On("Create", mock.Anything, mock.AnythingOfType("*project.Task")).Return(nil)

		result, err := service.Create(context.Background(), proj, CreateTaskInput{
			Name:        "Wireframes",
			Description: "Initial wireframes for the homepage",
		})

		require.NoError(t, err)
		assert.Equal(t, string(project.TaskStatusPending), result.Status)
		assert.Equal(t, proj.ID, result.Project)
		assert.Empty(t, result.CompletedBy)
		taskRepo.AssertExpectations(t)
	})

	t.Run("rejects missing name", func(t *testing.T) {
		service := newTaskService(new(MockTaskRepository), new(MockNoteRepository), new(MockUserRepository))

		proj := newTestProject(t, uuid.New())

		_, err := service.Create(context.Background(), proj, CreateTaskInput{
			Description: "Missing a name",
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "Task name is required", domainErr.Message)
	})
}

func TestTaskService_UpdateStatus(t *testing.T) {
	t.Run("appends history entry with acting user", func(t *testing.T) {
		taskRepo := new(MockTaskRepository)
		userRepo := new(MockUserRepository)
		service := newTaskService(taskRepo, new(MockNoteRepository), userRepo)

		task := newTestTask(t, uuid.New())
		actor, err := identity.NewUser("Jordan Doe", "jordan@example.com", "password123")
		require.NoError(t, err)

		taskRepo.On("SaveStatusChange", mock.Anything, task, mock.AnythingOfType("*project.StatusEvent")).Return(nil)
		userRepo.On("FindByIDs", mock.Anything, []uuid.UUID{actor.ID}).Return([]*identity.User{actor}, nil)

		result, err := service.UpdateStatus(context.Background(), task, "inProgress", actor.ID)

		require.NoError(t, err)
		assert.Equal(t, "inProgress", result.Status)
		require.Len(t, result.CompletedBy, 1)
		assert.Equal(t, actor.ID, result.CompletedBy[0].User.ID)
		assert.Equal(t, "Jordan Doe", result.CompletedBy[0].User.Name)
		assert.Equal(t, "inProgress", result.CompletedBy[0].Status)
		taskRepo.AssertExpectations(t)
	})

	t.Run("history grows with every change", func(t *testing.T) {
		taskRepo := new(MockTaskRepository)
		userRepo := new(MockUserRepository)
		service := newTaskService(taskRepo, new(MockNoteRepository), userRepo)

		task := newTestTask(t, uuid.New())
		actorID := uuid.New()

		taskRepo.On("SaveStatusChange", mock.Anything, task, mock.AnythingOfType("*project.StatusEvent")).Return(nil)
		userRepo.On("FindByIDs", mock.Anything, mock.Anything).Return([]*identity.User{}, nil)

		statuses := []string{"inProgress", "underReview", "completed"}
		var result *TaskResult
		var err error
		for _, status := range statuses {
			result, err = service.UpdateStatus(context.Background(), task, status, actorID)
			require.NoError(t, err)
		}

		require.Len(t, result.CompletedBy, len(statuses))
		for i, status := range statuses {
			assert.Equal(t, status, result.CompletedBy[i].Status)
		}
	})

	t.Run("rejects status outside the configured set", func(t *testing.T) {
		taskRepo := new(MockTaskRepository)
		service := newTaskService(taskRepo, new(MockNoteRepository), new(MockUserRepository))

		task := newTestTask(t, uuid.New())

		_, err := service.UpdateStatus(context.Background(), task, "cancelled", uuid.New())

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "Invalid status", domainErr.Message)
		assert.Empty(t, task.History)
		taskRepo.AssertNotCalled(t, "SaveStatusChange", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestTaskService_Update(t *testing.T) {
	t.Run("overwrites name and description", func(t *testing.T) {
		taskRepo := new(MockTaskRepository)
		service := newTaskService(taskRepo, new(MockNoteRepository), new(MockUserRepository))

		task := newTestTask(t, uuid.New())
		taskRepo.On("Update", mock.Anything, task).Return(nil)

		result, err := service.Update(context.Background(), task, UpdateTaskInput{
			Name:        "High fidelity mockups",
			Description: "Mockups for all landing pages",
		})

		require.NoError(t, err)
		assert.Equal(t, "High fidelity mockups", result.Name)
		taskRepo.AssertExpectations(t)
	})

	t.Run("rejects empty description", func(t *testing.T) {
		service := newTaskService(new(MockTaskRepository), new(MockNoteRepository), new(MockUserRepository))

		task := newTestTask(t, uuid.New())

		_, err := service.Update(context.Background(), task, UpdateTaskInput{Name: "Mockups"})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "Description of task is required", domainErr.Message)
	})
}

func TestTaskService_List(t *testing.T) {
	t.Run("populates history users across tasks", func(t *testing.T) {
		taskRepo := new(MockTaskRepository)
		userRepo := new(MockUserRepository)
		service := newTaskService(taskRepo, new(MockNoteRepository), userRepo)

		projectID := uuid.New()
		actor, err := identity.NewUser("Jordan Doe", "jordan@example.com", "password123")
		require.NoError(t, err)

		first := newTestTask(t, projectID)
		first.ChangeStatus(project.TaskStatusInProgress, actor.ID)
		second := newTestTask(t, projectID)

		taskRepo.On("FindByProject", mock.Anything, projectID).Return([]*project.Task{first, second}, nil)
		userRepo.On("FindByIDs", mock.Anything, []uuid.UUID{actor.ID}).Return([]*identity.User{actor}, nil)

		proj := newTestProject(t, uuid.New())
		proj.ID = projectID
		results, err := service.List(context.Background(), proj)

		require.NoError(t, err)
		require.Len(t, results, 2)
		require.Len(t, results[0].CompletedBy, 1)
		assert.Equal(t, "jordan@example.com", results[0].CompletedBy[0].User.Email)
		assert.Empty(t, results[1].CompletedBy)
	})

	t.Run("skips user lookup when no history exists", func(t *testing.T) {
		taskRepo := new(MockTaskRepository)
		userRepo := new(MockUserRepository)
		service := newTaskService(taskRepo, new(MockNoteRepository), userRepo)

		proj := newTestProject(t, uuid.New())
		taskRepo.On("FindByProject", mock.Anything, proj.ID).Return([]*project.Task{newTestTask(t, proj.ID)}, nil)

		_, err := service.List(context.Background(), proj)

		require.NoError(t, err)
		userRepo.AssertNotCalled(t, "FindByIDs", mock.Anything, mock.Anything)
	})
}

func TestTaskService_Notes(t *testing.T) {
	t.Run("creates note with creator document", func(t *testing.T) {
		noteRepo := new(MockNoteRepository)
		userRepo := new(MockUserRepository)
		service := newTaskService(new(MockTaskRepository), noteRepo, userRepo)

		task := newTestTask(t, uuid.New())
		author, err := identity.NewUser("Jordan Doe", "jordan@example.com", "password123")
		require.NoError(t, err)

		noteRepo.On("Create", mock.Anything, mock.AnythingOfType("*project.Note")).Return(nil)
		userRepo.On("FindByIDs", mock.Anything, []uuid.UUID{author.ID}).Return([]*identity.User{author}, nil)

		result, err := service.CreateNote(context.Background(), task, author.ID, "Blocked on client assets")

		require.NoError(t, err)
		assert.Equal(t, "Blocked on client assets", result.Content)
		assert.Equal(t, task.ID, result.Task)
		assert.Equal(t, "Jordan Doe", result.CreatedBy.Name)
		noteRepo.AssertExpectations(t)
	})

	t.Run("rejects empty content", func(t *testing.T) {
		service := newTaskService(new(MockTaskRepository), new(MockNoteRepository), new(MockUserRepository))

		task := newTestTask(t, uuid.New())

		_, err := service.CreateNote(context.Background(), task, uuid.New(), "")

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "The content of the note is required", domainErr.Message)
	})

	t.Run("only the creator deletes a note", func(t *testing.T) {
		noteRepo := new(MockNoteRepository)
		service := newTaskService(new(MockTaskRepository), noteRepo, new(MockUserRepository))

		task := newTestTask(t, uuid.New())
		creatorID := uuid.New()
		note, err := project.NewNote(task.ID, creatorID, "Blocked on client assets")
		require.NoError(t, err)
		noteRepo.On("FindByID", mock.Anything, note.ID).Return(note, nil)

		err = service.DeleteNote(context.Background(), task, note.ID, uuid.New())

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.CodeForbidden, domainErr.Code)
		noteRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("creator deletes own note", func(t *testing.T) {
		noteRepo := new(MockNoteRepository)
		service := newTaskService(new(MockTaskRepository), noteRepo, new(MockUserRepository))

		task := newTestTask(t, uuid.New())
		creatorID := uuid.New()
		note, err := project.NewNote(task.ID, creatorID, "Blocked on client assets")
		require.NoError(t, err)
		noteRepo.On("FindByID", mock.Anything, note.ID).Return(note, nil)
		noteRepo.On("Delete", mock.Anything, note.ID).Return(nil)

		err = service.DeleteNote(context.Background(), task, note.ID, creatorID)

		require.NoError(t, err)
		noteRepo.AssertExpectations(t)
	})

	t.Run("note from another task is rejected", func(t *testing.T) {
		noteRepo := new(MockNoteRepository)
		service := newTaskService(new(MockTaskRepository), noteRepo, new(MockUserRepository))

		task := newTestTask(t, uuid.New())
		creatorID := uuid.New()
		note, err := project.NewNote(uuid.New(), creatorID, "Attached elsewhere")
		require.NoError(t, err)
		noteRepo.On("FindByID", mock.Anything, note.ID).Return(note, nil)

		err = service.DeleteNote(context.Background(), task, note.ID, creatorID)

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.CodeInvalidInput, domainErr.Code)
	})
}

func TestTaskService_Delete(t *testing.T) {
	t.Run("deletes task", func(t *testing.T) {
		taskRepo := new(MockTaskRepository)
		service := newTaskService(taskRepo, new(MockNoteRepository), new(MockUserRepository))

		task := newTestTask(t, uuid.New())
		taskRepo.On("Delete", mock.Anything, task.ID).Return(nil)

		err := service.Delete(context.Background(), task)

		require.NoError(t, err)
		taskRepo.AssertExpectations(t)
	})
}
