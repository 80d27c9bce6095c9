package cases

import "context"

// ListFilter narrows List results. Zero values mean "no constraint".
type ListFilter struct {
	// Numeric account FK; set via the account's public id at the usecase layer.
	AccountID uint64
	Status    Status
	// Statuses filters on a status set (used by the cancelled view).
	Statuses []Status
	// RenewalSeeds limits to successfully finished cases, the only ones a
	// renewal may descend from.
	RenewalSeeds bool
}

type Repository interface {
	Create(ctx context.Context, c *Case) error
	Save(ctx context.Context, c *Case) error
	GetByCaseID(ctx context.Context, caseID string) (*Case, error)
	// GetByCaseIDForUpdate locks the row inside the surrounding transaction.
	GetByCaseIDForUpdate(ctx context.Context, caseID string) (*Case, error)
	List(ctx context.Context, f ListFilter) ([]Case, error)
}
