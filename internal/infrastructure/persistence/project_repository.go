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

// GormProjectRepository implements ProjectRepository using GORM
type GormProjectRepository struct {
	db *gorm.DB
}

// NewGormProjectRepository creates a new GormProjectRepository
func NewGormProjectRepository(db *gorm.DB) *GormProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create creates a new project
func (r *GormProjectRepository) Create(ctx context.Context, proj *project.Project) error {
	model := models.ProjectModelFromDomain(proj)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates the project's descriptive fields
func (r *GormProjectRepository) Update(ctx context.Context, proj *project.Project) error {
	model := models.ProjectModelFromDomain(proj)
	result := r.db.WithContext(ctx).
		Model(&models.ProjectModel{}).
		Where("id = ?", proj.ID).
		Updates(map[string]interface{}{
			"project_name": model.ProjectName,
			"client_name":  model.ClientName,
			"description":  model.Description,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes the project. Tasks, history, notes and membership
// rows cascade through the schema's foreign keys.
func (r *GormProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ProjectModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a project with its team set loaded
func (r *GormProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	var model models.ProjectModel
	if err := r.db.WithContext(ctx).
		Preload("Members").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindForUser returns projects the user manages or belongs to, oldest first
func (r *GormProjectRepository) FindForUser(ctx context.Context, userID uuid.UUID) ([]*project.Project, error) {
	var projectModels []models.ProjectModel
	if err := r.db.WithContext(ctx).
		Preload("Members").
		Where("manager_id = ? OR id IN (?)",
			userID,
			r.db.Model(&models.ProjectMemberModel{}).
				Select("project_id").
				Where("user_id = ?", userID),
		).
		Order("created_at ASC").
		Find(&projectModels).Error; err != nil {
		return nil, err
	}

	projects := make([]*project.Project, len(projectModels))
	for i := range projectModels {
		projects[i] = projectModels[i].ToDomain()
	}
	return projects, nil
}

// AddMember adds a user to the project team
func (r *GormProjectRepository) AddMember(ctx context.Context, projectID, userID uuid.UUID) error {
	member := models.ProjectMemberModel{
		ProjectID: projectID,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).Create(&member).Error
}

// RemoveMember removes a user from the project team
func (r *GormProjectRepository) RemoveMember(ctx context.Context, projectID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Delete(&models.ProjectMemberModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormProjectRepository implements ProjectRepository
var _ project.ProjectRepository = (*GormProjectRepository)(nil)
