package project

import (
	"context"

	"github.com/google/uuid"
)

// ProjectRepository defines the interface for project persistence
type ProjectRepository interface {
	// Create creates a new project
	Create(ctx context.Context, project *Project) error

	// Update updates the project's descriptive fields
	Update(ctx context.Context, project *Project) error

	// Delete removes the project and cascades to its tasks and notes
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID finds a project with its team set loaded
	FindByID(ctx context.Context, id uuid.UUID) (*Project, error)

	// FindForUser returns projects the user manages or belongs to
	FindForUser(ctx context.Context, userID uuid.UUID) ([]*Project, error)

	// AddMember adds a user to the project team
	AddMember(ctx context.Context, projectID, userID uuid.UUID) error

	// RemoveMember removes a user from the project team
	RemoveMember(ctx context.Context, projectID, userID uuid.UUID) error
}

// TaskRepository defines the interface for task persistence
type TaskRepository interface {
	// Create creates a new task under its project
	Create(ctx context.Context, task *Task) error

	// Update updates the task's descriptive fields
	Update(ctx context.Context, task *Task) error

	// SaveStatusChange persists the new status and the appended history
	// entry in one transaction
	SaveStatusChange(ctx context.Context, task *Task, event *StatusEvent) error

	// Delete removes the task and its history and notes
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID finds a task with history and notes loaded
	FindByID(ctx context.Context, id uuid.UUID) (*Task, error)

	// FindByProject returns the project's tasks in creation order
	FindByProject(ctx context.Context, projectID uuid.UUID) ([]*Task, error)
}

// NoteRepository defines the interface for note persistence
type NoteRepository interface {
	// Create creates a new note
	Create(ctx context.Context, note *Note) error

	// Delete removes a note
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID finds a note by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Note, error)

	// FindByTask returns the task's notes in creation order
	FindByTask(ctx context.Context, taskID uuid.UUID) ([]*Note, error)
}
