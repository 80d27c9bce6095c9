package uow

import (
	"context"

	"casetrack-service/internal/domain/account"
	"casetrack-service/internal/domain/cases"
)

type Repos struct {
	Accounts account.Repository
	Cases    cases.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the case row first, then pass it in
	WithinCaseTx(ctx context.Context, caseID string, fn func(r Repos, c *cases.Case) error) error
}
