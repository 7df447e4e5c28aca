package ports

import (
	"context"

	"github.com/gatehouse/gatehouse/internal/core/domain"
)

// AccountService covers the account lifecycle: registration, credential
// verification, and session-time account restoration.
type AccountService interface {
	Register(ctx context.Context, name, email, password, confirmation string) (*domain.Account, error)
	Authenticate(ctx context.Context, email, password string) (*domain.Account, error)

	// Load resolves the opaque account id carried by a session token.
	// Malformed and unknown ids both return domain.ErrAccountNotFound.
	Load(ctx context.Context, id string) (*domain.Account, error)
}
