package identity

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/taskflow/backend/internal/domain/shared"
)

// TokenTTL is how long a confirmation or password-reset token stays valid
const TokenTTL = 5 * time.Minute

// Token is a short-lived six digit credential bound to a user. The same
// entity backs both email confirmation and password reset.
type Token struct {
	ID        uuid.UUID
	Token     string
	UserID    uuid.UUID
	CreatedAt time.Time
}

// NewToken generates a fresh token for the given user
func NewToken(userID uuid.UUID) (*Token, error) {
	code, err := generateCode()
	if err != nil {
		return nil, shared.NewInternalError("Failed to generate token")
	}

	return &Token{
		ID:        uuid.New(),
		Token:     code,
		UserID:    userID,
		CreatedAt: time.Now(),
	}, nil
}

// ExpiresAt returns the instant the token stops being valid
func (t *Token) ExpiresAt() time.Time {
	return t.CreatedAt.Add(TokenTTL)
}

// IsExpired reports whether the token is past its validity window
func (t *Token) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt())
}

// generateCode returns a random six digit code, zero padded
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
