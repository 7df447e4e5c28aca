package service

import (
	"context"
	"errors"
	"strconv"

	"golang.org/x/crypto/bcrypt"

	"github.com/gatehouse/gatehouse/internal/core/domain"
	"github.com/gatehouse/gatehouse/internal/core/ports"
)

// AccountService implements registration, login, and session restoration.
type AccountService struct {
	repo ports.AccountRepository
}

func NewAccountService(repo ports.AccountRepository) *AccountService {
	return &AccountService{repo: repo}
}

// Register validates the form fields, hashes the password, and inserts the
// account. Email uniqueness is left entirely to the store: a concurrent
// duplicate registration surfaces here as domain.ErrEmailTaken no matter how
// the two requests interleave.
func (s *AccountService) Register(ctx context.Context, name, email, password, confirmation string) (*domain.Account, error) {
	switch {
	case name == "":
		return nil, domain.ErrMissingName
	case email == "":
		return nil, domain.ErrMissingEmail
	case password == "":
		return nil, domain.ErrMissingPassword
	case password != confirmation:
		return nil, domain.ErrPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Authenticate verifies the credentials against the stored hash. An unknown
// email and a wrong password return the identical error so a caller cannot
// probe which addresses are registered.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (*domain.Account, error) {
	if email == "" || password == "" {
		return nil, domain.ErrMissingCredentials
	}

	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return account, nil
}

// Load restores an account from the id string a session token carries.
// A malformed id is treated as an unknown account, not an error worth
// distinguishing; the caller renders both as "not authenticated".
func (s *AccountService) Load(ctx context.Context, id string) (*domain.Account, error) {
	accountID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, domain.ErrAccountNotFound
	}
	return s.repo.FindByID(ctx, accountID)
}
