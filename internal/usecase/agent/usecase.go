package agent

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	domain "casetrack-service/internal/domain/agent"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type AgentInfoDTO struct {
	Clave        string `json:"clave"`
	Nombre       string `json:"nombre"`
	Promotor     string `json:"promotor"`
	Territorio   string `json:"territorio"`
	Oficina      string `json:"oficina"`
	Canal        string `json:"canal"`
	CentroCostos string `json:"centroCostos"`
}

type Usecase struct {
	repo domain.Repository
	rdb  *redis.Client
	ttl  time.Duration
}

// NewUsecase wires the directory repo with an optional redis cache
// (nil rdb disables caching).
func NewUsecase(r domain.Repository, rdb *redis.Client, ttl time.Duration) *Usecase {
	return &Usecase{repo: r, rdb: rdb, ttl: ttl}
}

func cacheKey(clave string) string { return "agent:clave:" + clave }

// Lookup resolves an agent code to its denormalized directory attributes.
// A miss is advisory for the caller; it returns ErrNotFound and nothing else
// happens.
func (u *Usecase) Lookup(ctx context.Context, clave string) (*AgentInfoDTO, error) {
	clave = strings.TrimSpace(clave)
	if clave == "" {
		return nil, domain.ErrNotFound
	}

	if u.rdb != nil {
		if raw, err := u.rdb.Get(ctx, cacheKey(clave)).Bytes(); err == nil {
			var dto AgentInfoDTO
			if json.Unmarshal(raw, &dto) == nil {
				return &dto, nil
			}
		}
	}

	a, err := u.repo.GetByClave(ctx, clave)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	dto := &AgentInfoDTO{
		Clave:        a.Clave,
		Nombre:       a.Nombre,
		Promotor:     a.Promotor,
		Territorio:   a.Territorio,
		Oficina:      a.Oficina,
		Canal:        a.Canal,
		CentroCostos: a.CentroCostos,
	}
	if u.rdb != nil {
		if raw, err := json.Marshal(dto); err == nil {
			_ = u.rdb.Set(ctx, cacheKey(clave), raw, u.ttl).Err()
		}
	}
	return dto, nil
}
