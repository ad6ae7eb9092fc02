package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/taskflow/backend/internal/domain/project"
	"github.com/taskflow/backend/internal/domain/shared"
	"github.com/taskflow/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormTaskRepository implements TaskRepository using GORM
type GormTaskRepository struct {
	db *gorm.DB
}

// NewGormTaskRepository creates a new GormTaskRepository
func NewGormTaskRepository(db *gorm.DB) *GormTaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task under its project
func (r *GormTaskRepository) Create(ctx context.Context, task *project.Task) error {
	model := models.TaskModelFromDomain(task)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates the task's descriptive fields
func (r *GormTaskRepository) Update(ctx context.Context, task *project.Task) error {
	result := r.db.WithContext(ctx).
		Model(&models.TaskModel{}).
		Where("id = ?", task.ID).
		Updates(map[string]interface{}{
			"name":        task.Name,
			"description": task.Description,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// SaveStatusChange persists the new status and the appended history
// entry in one transaction. Either both rows land or neither does.
func (r *GormTaskRepository) SaveStatusChange(ctx context.Context, task *project.Task, event *project.StatusEvent) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.TaskModel{}).
			Where("id = ?", task.ID).
			Updates(map[string]interface{}{
				"status":     string(task.Status),
				"updated_at": time.Now(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}

		eventModel := models.TaskStatusEventModelFromDomain(event)
		return tx.Create(eventModel).Error
	})
}

// Delete removes the task. History and notes cascade through the
// schema's foreign keys.
func (r *GormTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.TaskModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a task with history and notes loaded
func (r *GormTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*project.Task, error) {
	var model models.TaskModel
	if err := r.db.WithContext(ctx).
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Notes", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByProject returns the project's tasks in creation order with
// history and notes loaded
func (r *GormTaskRepository) FindByProject(ctx context.Context, projectID uuid.UUID) ([]*project.Task, error) {
	var taskModels []models.TaskModel
	if err := r.db.WithContext(ctx).
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Notes", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&taskModels).Error; err != nil {
		return nil, err
	}

	tasks := make([]*project.Task, len(taskModels))
	for i := range taskModels {
		tasks[i] = taskModels[i].ToDomain()
	}
	return tasks, nil
}

// Ensure GormTaskRepository implements TaskRepository
var _ project.TaskRepository = (*GormTaskRepository)(nil)
