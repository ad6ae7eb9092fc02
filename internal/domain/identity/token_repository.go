package identity

import (
	"context"

	"github.com/google/uuid"
)

// TokenRepository defines the interface for token persistence.
// Every lookup must treat tokens older than TokenTTL as absent, even
// when the rows have not been physically purged yet.
type TokenRepository interface {
	// Create stores a new token
	Create(ctx context.Context, token *Token) error

	// FindValid finds an unexpired token by its code
	FindValid(ctx context.Context, code string) (*Token, error)

	// Delete removes a token after redemption
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteExpired purges expired rows, housekeeping only
	DeleteExpired(ctx context.Context) error
}
