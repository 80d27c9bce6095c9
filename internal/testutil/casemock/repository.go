package casemock

import (
	"context"
	"errors"

	"casetrack-service/internal/domain/cases"
)

// Ensure compile-time compliance
var _ cases.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("casemock: method not implemented")

// Repo is a function-backed mock that satisfies cases.Repository.
type Repo struct {
	CreateFn               func(ctx context.Context, c *cases.Case) error
	SaveFn                 func(ctx context.Context, c *cases.Case) error
	GetByCaseIDFn          func(ctx context.Context, caseID string) (*cases.Case, error)
	GetByCaseIDForUpdateFn func(ctx context.Context, caseID string) (*cases.Case, error)
	ListFn                 func(ctx context.Context, f cases.ListFilter) ([]cases.Case, error)
}

func (m *Repo) Create(ctx context.Context, c *cases.Case) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return errUnimplemented
}

func (m *Repo) Save(ctx context.Context, c *cases.Case) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return errUnimplemented
}

func (m *Repo) GetByCaseID(ctx context.Context, caseID string) (*cases.Case, error) {
	if m.GetByCaseIDFn != nil {
		return m.GetByCaseIDFn(ctx, caseID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByCaseIDForUpdate(ctx context.Context, caseID string) (*cases.Case, error) {
	if m.GetByCaseIDForUpdateFn != nil {
		return m.GetByCaseIDForUpdateFn(ctx, caseID)
	}
	return nil, errUnimplemented
}

func (m *Repo) List(ctx context.Context, f cases.ListFilter) ([]cases.Case, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, errUnimplemented
}
