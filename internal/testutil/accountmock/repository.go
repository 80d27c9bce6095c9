package accountmock

import (
	"context"
	"errors"

	"casetrack-service/internal/domain/account"
)

// Ensure compile-time compliance
var _ account.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("accountmock: method not implemented")

// Repo is a function-backed mock that satisfies account.Repository.
// Fill in the function fields you need in a test; unfilled ones fail loudly.
type Repo struct {
	CreateFn         func(ctx context.Context, a *account.Account) error
	GetByAccountIDFn func(ctx context.Context, accountID string) (*account.Account, error)
	GetByNameFn      func(ctx context.Context, name string) (*account.Account, error)
	ListFn           func(ctx context.Context, query string) ([]account.Account, error)
}

func (m *Repo) Create(ctx context.Context, a *account.Account) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return errUnimplemented
}

func (m *Repo) GetByAccountID(ctx context.Context, accountID string) (*account.Account, error) {
	if m.GetByAccountIDFn != nil {
		return m.GetByAccountIDFn(ctx, accountID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByName(ctx context.Context, name string) (*account.Account, error) {
	if m.GetByNameFn != nil {
		return m.GetByNameFn(ctx, name)
	}
	return nil, errUnimplemented
}

func (m *Repo) List(ctx context.Context, query string) ([]account.Account, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, query)
	}
	return nil, errUnimplemented
}
