package ports

import (
	"context"

	"github.com/gatehouse/gatehouse/internal/core/domain"
)

// AccountRepository defines the interface for account persistence.
//
// Create relies on the store's unique constraint for email uniqueness and
// reports a conflict as domain.ErrEmailTaken; callers must not pre-check,
// the constraint is the only race-free arbiter.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id int64) (*domain.Account, error)
}
