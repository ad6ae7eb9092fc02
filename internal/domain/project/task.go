package project

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/taskflow/backend/internal/domain/shared"
)

// TaskStatus is one of a closed, configurable enumeration
type TaskStatus string

const (
	TaskStatusPending     TaskStatus = "pending"
	TaskStatusOnHold      TaskStatus = "onHold"
	TaskStatusInProgress  TaskStatus = "inProgress"
	TaskStatusUnderReview TaskStatus = "underReview"
	TaskStatusCompleted   TaskStatus = "completed"
)

// DefaultStatuses returns the built-in status set, used when the
// configuration does not override it
func DefaultStatuses() []string {
	return []string{
		string(TaskStatusPending),
		string(TaskStatusOnHold),
		string(TaskStatusInProgress),
		string(TaskStatusUnderReview),
		string(TaskStatusCompleted),
	}
}

// StatusEvent is one entry of a task's completion history. The history
// is append-only; repeated status changes accumulate in call order.
type StatusEvent struct {
	ID        uuid.UUID
	TaskID    uuid.UUID
	UserID    uuid.UUID
	Status    TaskStatus
	CreatedAt time.Time
}

// Task belongs to exactly one project for its whole lifetime
type Task struct {
	shared.BaseEntity
	Name        string
	Description string
	Status      TaskStatus
	ProjectID   uuid.UUID
	History     []StatusEvent // loaded by repository, append-only
	Notes       []*Note       // loaded on demand
}

// NewTask creates a pending task under the given project
func NewTask(projectID uuid.UUID, name, description string) (*Task, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewValidationError("Task name is required")
	}
	if strings.TrimSpace(description) == "" {
		return nil, shared.NewValidationError("Description of task is required")
	}
	if projectID == uuid.Nil {
		return nil, shared.NewValidationError("Project is required")
	}

	return &Task{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		Status:      TaskStatusPending,
		ProjectID:   projectID,
	}, nil
}

// UpdateDetails overwrites name and description
func (t *Task) UpdateDetails(name, description string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewValidationError("Task name is required")
	}
	if strings.TrimSpace(description) == "" {
		return shared.NewValidationError("Description of task is required")
	}

	t.Name = strings.TrimSpace(name)
	t.Description = strings.TrimSpace(description)
	t.UpdatedAt = time.Now()

	return nil
}

// BelongsTo reports whether the task lives under the given project
func (t *Task) BelongsTo(projectID uuid.UUID) bool {
	return t.ProjectID == projectID
}

// ChangeStatus sets the status and appends a history entry recording
// who changed it. Any status is reachable from any status.
func (t *Task) ChangeStatus(status TaskStatus, userID uuid.UUID) *StatusEvent {
	t.Status = status
	t.UpdatedAt = time.Now()

	event := StatusEvent{
		ID:        uuid.New(),
		TaskID:    t.ID,
		UserID:    userID,
		Status:    status,
		CreatedAt: time.Now(),
	}
	t.History = append(t.History, event)

	return &event
}
