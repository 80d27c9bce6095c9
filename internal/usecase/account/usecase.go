package account

import (
	"context"
	"errors"
	"strings"
	"time"

	domain "casetrack-service/internal/domain/account"
	"casetrack-service/internal/domain/uow"
	"casetrack-service/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	repo domain.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(r domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, uow: tx}
}

type CreateAccountInput struct {
	Name       string `json:"name"`
	Identifier string `json:"identifier"`
	Industry   string `json:"industry"`
}

type AccountDTO struct {
	AccountID  string    `json:"id"`
	Name       string    `json:"name"`
	Identifier string    `json:"identifier,omitempty"`
	Industry   string    `json:"industry,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func toDTO(a *domain.Account) *AccountDTO {
	return &AccountDTO{
		AccountID:  a.AccountID,
		Name:       a.Name,
		Identifier: a.Identifier,
		Industry:   a.Industry,
		CreatedAt:  a.CreatedAt,
	}
}

// Create persists a new account. The name guard runs inside the same
// transaction as the insert; the unique index on the lowered name is the
// authoritative line against concurrent creators.
func (u *Usecase) Create(ctx context.Context, in CreateAccountInput) (*AccountDTO, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, errors.New("account name required")
	}

	var created *domain.Account
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		_, err := r.Accounts.GetByName(ctx, name)
		switch {
		case err == nil:
			return domain.ErrDuplicate
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		a := &domain.Account{
			AccountID:  id.NewID32(),
			Name:       name,
			Identifier: strings.TrimSpace(in.Identifier),
			Industry:   strings.TrimSpace(in.Industry),
		}
		if err := r.Accounts.Create(ctx, a); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrDuplicate
			}
			return err
		}
		created = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toDTO(created), nil
}

func (u *Usecase) Get(ctx context.Context, accountID string) (*AccountDTO, error) {
	a, err := u.repo.GetByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toDTO(a), nil
}

func (u *Usecase) List(ctx context.Context, query string) ([]AccountDTO, error) {
	list, err := u.repo.List(ctx, strings.TrimSpace(query))
	if err != nil {
		return nil, err
	}
	out := make([]AccountDTO, 0, len(list))
	for i := range list {
		out = append(out, *toDTO(&list[i]))
	}
	return out, nil
}

// CheckDuplicateName backs the advisory on-blur check. The result can go
// stale the moment it is returned; Create re-checks authoritatively.
func (u *Usecase) CheckDuplicateName(ctx context.Context, name string) (bool, error) {
	if strings.TrimSpace(name) == "" {
		return false, nil
	}
	_, err := u.repo.GetByName(ctx, name)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return false, nil
	default:
		return false, err
	}
}
