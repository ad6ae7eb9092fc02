package project

import (
	"time"

	"github.com/google/uuid"
)

// CreateProjectInput contains the input for project creation
type CreateProjectInput struct {
	ProjectName string
	ClientName  string
	Description string
	ManagerID   uuid.UUID
}

// UpdateProjectInput overwrites the three descriptive fields wholesale
type UpdateProjectInput struct {
	ProjectName string
	ClientName  string
	Description string
}

// CreateTaskInput contains the input for task creation
type CreateTaskInput struct {
	Name        string
	Description string
}

// UpdateTaskInput overwrites both task fields
type UpdateTaskInput struct {
	Name        string
	Description string
}

// MemberRef identifies a user in team and history documents
type MemberRef struct {
	ID    uuid.UUID `json:"_id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// ProjectResult is the project document returned to callers
type ProjectResult struct {
	ID          uuid.UUID    `json:"_id"`
	ProjectName string       `json:"projectName"`
	ClientName  string       `json:"clientName"`
	Description string       `json:"description"`
	Manager     uuid.UUID    `json:"manager"`
	Team        []uuid.UUID  `json:"team"`
	Tasks       []TaskResult `json:"tasks"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// StatusEventResult is one completion history entry
type StatusEventResult struct {
	ID     uuid.UUID `json:"_id"`
	User   MemberRef `json:"user"`
	Status string    `json:"status"`
}

// TaskResult is the task document returned to callers
type TaskResult struct {
	ID          uuid.UUID           `json:"_id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Status      string              `json:"status"`
	Project     uuid.UUID           `json:"project"`
	CompletedBy []StatusEventResult `json:"completedBy"`
	Notes       []NoteResult        `json:"notes"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// NoteResult is the note document returned to callers
type NoteResult struct {
	ID        uuid.UUID `json:"_id"`
	Content   string    `json:"content"`
	CreatedBy MemberRef `json:"createdBy"`
	Task      uuid.UUID `json:"task"`
	CreatedAt time.Time `json:"createdAt"`
}
