package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/taskflow/backend/internal/domain/identity"
	"github.com/taskflow/backend/internal/domain/shared"
	"github.com/taskflow/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormTokenRepository implements TokenRepository using GORM.
// Expiry is enforced in the queries: rows older than the token TTL
// are never returned, so a stale row behaves like a missing one.
type GormTokenRepository struct {
	db *gorm.DB
}

// NewGormTokenRepository creates a new GormTokenRepository
func NewGormTokenRepository(db *gorm.DB) *GormTokenRepository {
	return &GormTokenRepository{db: db}
}

// Create creates a new token
func (r *GormTokenRepository) Create(ctx context.Context, token *identity.Token) error {
	model := models.TokenModelFromDomain(token)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindValid finds an unexpired token by its code
func (r *GormTokenRepository) FindValid(ctx context.Context, code string) (*identity.Token, error) {
	cutoff := time.Now().Add(-identity.TokenTTL)

	var model models.TokenModel
	if err := r.db.WithContext(ctx).
		Where("token = ? AND created_at > ?", code, cutoff).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Delete removes a token after use
func (r *GormTokenRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.TokenModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteExpired removes tokens past their TTL
func (r *GormTokenRepository) DeleteExpired(ctx context.Context) error {
	cutoff := time.Now().Add(-identity.TokenTTL)
	return r.db.WithContext(ctx).
		Where("created_at <= ?", cutoff).
		Delete(&models.TokenModel{}).Error
}

// Ensure GormTokenRepository implements TokenRepository
var _ identity.TokenRepository = (*GormTokenRepository)(nil)
