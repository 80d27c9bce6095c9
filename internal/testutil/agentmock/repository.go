package agentmock

import (
	"context"
	"errors"

	"casetrack-service/internal/domain/agent"
)

// Ensure compile-time compliance
var _ agent.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("agentmock: method not implemented")

type Repo struct {
	GetByClaveFn func(ctx context.Context, clave string) (*agent.Agent, error)
}

func (m *Repo) GetByClave(ctx context.Context, clave string) (*agent.Agent, error) {
	if m.GetByClaveFn != nil {
		return m.GetByClaveFn(ctx, clave)
	}
	return nil, errUnimplemented
}
