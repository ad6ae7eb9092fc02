package project

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	projectID := uuid.New()

	t.Run("creates a pending task under the project", func(t *testing.T) {
		task, err := NewTask(projectID, "Test Task", "Test Description")

		require.NoError(t, err)
		assert.Equal(t, "Test Task", task.Name)
		assert.Equal(t, TaskStatusPending, task.Status)
		assert.Equal(t, projectID, task.ProjectID)
		assert.Empty(t, task.History)
	})

	t.Run("fails without a name", func(t *testing.T) {
		_, err := NewTask(projectID, "", "Test Description")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Task name is required")
	})

	t.Run("fails without a description", func(t *testing.T) {
		_, err := NewTask(projectID, "Test Task", "")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Description of task is required")
	})
}

func TestTask_BelongsTo(t *testing.T) {
	projectID := uuid.New()
	task, err := NewTask(projectID, "Test Task", "Test Description")
	require.NoError(t, err)

	assert.True(t, task.BelongsTo(projectID))
	assert.False(t, task.BelongsTo(uuid.New()))
}

func TestTask_ChangeStatus(t *testing.T) {
	task, err := NewTask(uuid.New(), "Test Task", "Test Description")
	require.NoError(t, err)

	t.Run("sets status and appends a history entry", func(t *testing.T) {
		userID := uuid.New()
		event := task.ChangeStatus(TaskStatusInProgress, userID)

		assert.Equal(t, TaskStatusInProgress, task.Status)
		require.Len(t, task.History, 1)
		assert.Equal(t, userID, event.UserID)
		assert.Equal(t, TaskStatusInProgress, event.Status)
		assert.Equal(t, task.ID, event.TaskID)
	})

	t.Run("history accumulates in call order, repeats included", func(t *testing.T) {
		first := uuid.New()
		second := uuid.New()

		task.ChangeStatus(TaskStatusCompleted, first)
		task.ChangeStatus(TaskStatusCompleted, second)
		task.ChangeStatus(TaskStatusPending, first)

		require.Len(t, task.History, 4)
		assert.Equal(t, first, task.History[1].UserID)
		assert.Equal(t, second, task.History[2].UserID)
		assert.Equal(t, TaskStatusPending, task.History[3].Status)
	})
}

func TestTask_UpdateDetails(t *testing.T) {
	task, err := NewTask(uuid.New(), "Test Task", "Test Description")
	require.NoError(t, err)

	require.NoError(t, task.UpdateDetails("New Task", "New Description"))
	assert.Equal(t, "New Task", task.Name)
	assert.Equal(t, "New Description", task.Description)

	assert.Error(t, task.UpdateDetails("", "New Description"))
}

func TestNewNote(t *testing.T) {
	taskID := uuid.New()
	userID := uuid.New()

	t.Run("creates a note bound to task and creator", func(t *testing.T) {
		note, err := NewNote(taskID, userID, "A note")

		require.NoError(t, err)
		assert.Equal(t, taskID, note.TaskID)
		assert.Equal(t, userID, note.CreatedBy)
		assert.True(t, note.IsCreator(userID))
	})

	t.Run("fails without content", func(t *testing.T) {
		_, err := NewNote(taskID, userID, "  ")

		assert.Error(t, err)
	})
}

func TestDefaultStatuses(t *testing.T) {
	statuses := DefaultStatuses()

	assert.Equal(t, []string{"pending", "onHold", "inProgress", "underReview", "completed"}, statuses)
}
