package account

import "context"

type Repository interface {
	Create(ctx context.Context, a *Account) error
	GetByAccountID(ctx context.Context, accountID string) (*Account, error)
	// GetByName matches case-insensitively against non-deleted accounts.
	GetByName(ctx context.Context, name string) (*Account, error)
	// List filters by a name/identifier substring when query is non-empty.
	List(ctx context.Context, query string) ([]Account, error)
}
