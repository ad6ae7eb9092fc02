package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/taskflow/backend/internal/domain/identity"
	"github.com/taskflow/backend/internal/domain/shared"
)

// UserModel is the persistence model for the User domain entity.
type UserModel struct {
	BaseModel
	Name         string `gorm:"type:varchar(100);not null"`
	Email        string `gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Confirmed    bool   `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Confirmed:    m.Confirmed,
	}
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainBaseEntity(u.BaseEntity)
	m.Name = u.Name
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.Confirmed = u.Confirmed
}

// UserModelFromDomain creates a new persistence model from a domain User entity.
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}

// TokenModel is the persistence model for one-time confirmation and
// password reset codes.
type TokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Token     string    `gorm:"type:varchar(6);not null;index"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (TokenModel) TableName() string {
	return "tokens"
}

// ToDomain converts the persistence model to a domain Token.
func (m *TokenModel) ToDomain() *identity.Token {
	return &identity.Token{
		ID:        m.ID,
		Token:     m.Token,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
	}
}

// TokenModelFromDomain creates a new persistence model from a domain Token.
func TokenModelFromDomain(t *identity.Token) *TokenModel {
	return &TokenModel{
		ID:        t.ID,
		Token:     t.Token,
		UserID:    t.UserID,
		CreatedAt: t.CreatedAt,
	}
}
