package uowmock

import (
	"context"
	"errors"

	"casetrack-service/internal/domain/cases"
	"casetrack-service/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

// UoW is a pass-through unit of work for usecase tests. It runs the
// callback directly against the configured Repos, with no transaction.
// WithinCaseTx loads the case through Repos.Cases unless GetCaseFn is set.
type UoW struct {
	Repos     uow.Repos
	GetCaseFn func(ctx context.Context, caseID string) (*cases.Case, error)

	// Optional error injections
	WithinTxErr     error
	WithinCaseTxErr error
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxErr != nil {
		return m.WithinTxErr
	}
	return fn(m.Repos)
}

func (m *UoW) WithinCaseTx(ctx context.Context, caseID string, fn func(r uow.Repos, c *cases.Case) error) error {
	if m.WithinCaseTxErr != nil {
		return m.WithinCaseTxErr
	}
	var (
		c   *cases.Case
		err error
	)
	switch {
	case m.GetCaseFn != nil:
		c, err = m.GetCaseFn(ctx, caseID)
	case m.Repos.Cases != nil:
		c, err = m.Repos.Cases.GetByCaseIDForUpdate(ctx, caseID)
	default:
		err = errors.New("uowmock: no case source configured")
	}
	if err != nil {
		return err
	}
	return fn(m.Repos, c)
}
