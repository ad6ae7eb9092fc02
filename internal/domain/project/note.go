package project

import (
	"strings"

	"github.com/google/uuid"
	"github.com/taskflow/backend/internal/domain/shared"
)

// Note is a free-text annotation on a task, immutable once created
// except by deletion
type Note struct {
	shared.BaseEntity
	Content   string
	CreatedBy uuid.UUID
	TaskID    uuid.UUID
}

// NewNote creates a note on the given task
func NewNote(taskID, createdBy uuid.UUID, content string) (*Note, error) {
	if strings.TrimSpace(content) == "" {
		return nil, shared.NewValidationError("The content of the note is required")
	}

	return &Note{
		BaseEntity: shared.NewBaseEntity(),
		Content:    strings.TrimSpace(content),
		CreatedBy:  createdBy,
		TaskID:     taskID,
	}, nil
}

// IsCreator reports whether the user wrote the note
func (n *Note) IsCreator(userID uuid.UUID) bool {
	return n.CreatedBy == userID
}
