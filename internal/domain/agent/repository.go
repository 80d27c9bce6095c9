package agent

import "context"

type Repository interface {
	GetByClave(ctx context.Context, clave string) (*Agent, error)
}
