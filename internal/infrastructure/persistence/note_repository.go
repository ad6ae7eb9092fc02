package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/taskflow/backend/internal/domain/project"
	"github.com/taskflow/backend/internal/domain/shared"
	"github.com/taskflow/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormNoteRepository implements NoteRepository using GORM
type GormNoteRepository struct {
	db *gorm.DB
}

// NewGormNoteRepository creates a new GormNoteRepository
func NewGormNoteRepository(db *gorm.DB) *GormNoteRepository {
	return &GormNoteRepository{db: db}
}

// Create creates a new note
func (r *GormNoteRepository) Create(ctx context.Context, note *project.Note) error {
	model := models.NoteModelFromDomain(note)
	return r.db.WithContext(ctx).Create(model).Error
}

// Delete removes a note
func (r *GormNoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.NoteModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a note by ID
func (r *GormNoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*project.Note, error) {
	var model models.NoteModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByTask returns the task's notes in creation order
func (r *GormNoteRepository) FindByTask(ctx context.Context, taskID uuid.UUID) ([]*project.Note, error) {
	var noteModels []models.NoteModel
	if err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("created_at ASC").
		Find(&noteModels).Error; err != nil {
		return nil, err
	}

	notes := make([]*project.Note, len(noteModels))
	for i := range noteModels {
		notes[i] = noteModels[i].ToDomain()
	}
	return notes, nil
}

// Ensure GormNoteRepository implements NoteRepository
var _ project.NoteRepository = (*GormNoteRepository)(nil)
