package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/gatehouse/gatehouse/internal/core/domain"
)

// DBTX is the subset of database/sql the repository needs. Both *sql.DB and
// *sql.Tx satisfy it.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// AccountRepository implements ports.AccountRepository on PostgreSQL.
//
// Email matching is exact (case-sensitive), as is the unique constraint.
type AccountRepository struct {
	db DBTX
}

func NewAccountRepository(db DBTX) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create inserts the account and returns it with the store-assigned id and
// creation timestamp. A unique violation on email becomes
// domain.ErrEmailTaken; under concurrent duplicate registrations exactly one
// insert wins and every other caller observes the violation.
func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	query := `
		INSERT INTO accounts (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	created := *account
	err := r.db.QueryRowContext(ctx, query, account.Name, account.Email, account.PasswordHash).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}
	return &created, nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `
		SELECT id, name, email, password_hash, created_at
		FROM accounts
		WHERE email = $1`

	return r.scanAccount(r.db.QueryRowContext(ctx, query, email))
}

func (r *AccountRepository) FindByID(ctx context.Context, id int64) (*domain.Account, error) {
	query := `
		SELECT id, name, email, password_hash, created_at
		FROM accounts
		WHERE id = $1`

	return r.scanAccount(r.db.QueryRowContext(ctx, query, id))
}

func (r *AccountRepository) scanAccount(row *sql.Row) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return &a, nil
}
