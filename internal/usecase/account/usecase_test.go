package account

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"

	domain "casetrack-service/internal/domain/account"
	"casetrack-service/internal/domain/uow"
	"casetrack-service/internal/testutil/accountmock"
	"casetrack-service/internal/testutil/uowmock"
)

func newTestUsecase(existing ...*domain.Account) (*Usecase, *accountmock.Repo, *[]domain.Account) {
	var stored []domain.Account
	repo := &accountmock.Repo{
		CreateFn: func(_ context.Context, a *domain.Account) error {
			a.ID = uint64(len(stored) + 1)
			a.CreatedAt = time.Now().UTC()
			stored = append(stored, *a)
			return nil
		},
		GetByNameFn: func(_ context.Context, name string) (*domain.Account, error) {
			for _, a := range existing {
				if strings.EqualFold(strings.TrimSpace(name), a.Name) {
					return a, nil
				}
			}
			return nil, gorm.ErrRecordNotFound
		},
		GetByAccountIDFn: func(_ context.Context, accountID string) (*domain.Account, error) {
			for _, a := range existing {
				if a.AccountID == accountID {
					return a, nil
				}
			}
			return nil, gorm.ErrRecordNotFound
		},
		ListFn: func(_ context.Context, q string) ([]domain.Account, error) {
			var out []domain.Account
			for _, a := range existing {
				if q == "" || strings.Contains(strings.ToLower(a.Name), strings.ToLower(q)) {
					out = append(out, *a)
				}
			}
			return out, nil
		},
	}
	tx := &uowmock.UoW{Repos: uow.Repos{Accounts: repo}}
	return NewUsecase(repo, tx), repo, &stored
}

func Test_Create(t *testing.T) {
	uc, _, stored := newTestUsecase()

	dto, err := uc.Create(context.Background(), CreateAccountInput{
		Name:       "  Aceros del Norte  ",
		Identifier: "ADN900101AA1",
		Industry:   "Siderurgia",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if dto.Name != "Aceros del Norte" {
		t.Fatalf("name not trimmed: %q", dto.Name)
	}
	if len(dto.AccountID) != 32 {
		t.Fatalf("public id should be 32-hex, got %q", dto.AccountID)
	}
	if len(*stored) != 1 {
		t.Fatalf("account not persisted")
	}
}

func Test_Create_EmptyName(t *testing.T) {
	uc, _, stored := newTestUsecase()
	if _, err := uc.Create(context.Background(), CreateAccountInput{Name: "   "}); err == nil {
		t.Fatalf("blank name must fail")
	}
	if len(*stored) != 0 {
		t.Fatalf("nothing should be persisted on failure")
	}
}

func Test_Create_DuplicateName(t *testing.T) {
	uc, _, stored := newTestUsecase(&domain.Account{ID: 1, Name: "Aceros del Norte"})

	_, err := uc.Create(context.Background(), CreateAccountInput{Name: "ACEROS DEL NORTE"})
	if !errors.Is(err, domain.ErrDuplicate) {
		t.Fatalf("want ErrDuplicate, got %v", err)
	}
	if len(*stored) != 0 {
		t.Fatalf("duplicate must not be persisted")
	}
}

func Test_Create_UniqueIndexRace(t *testing.T) {
	// The in-tx name check passed but a concurrent creator won the insert;
	// the unique index reports the duplicate and the usecase translates it.
	repo := &accountmock.Repo{
		GetByNameFn: func(_ context.Context, _ string) (*domain.Account, error) {
			return nil, gorm.ErrRecordNotFound
		},
		CreateFn: func(_ context.Context, _ *domain.Account) error {
			return gorm.ErrDuplicatedKey
		},
	}
	uc := NewUsecase(repo, &uowmock.UoW{Repos: uow.Repos{Accounts: repo}})

	_, err := uc.Create(context.Background(), CreateAccountInput{Name: "Aceros del Norte"})
	if !errors.Is(err, domain.ErrDuplicate) {
		t.Fatalf("want ErrDuplicate from index race, got %v", err)
	}
}

func Test_Get(t *testing.T) {
	acc := &domain.Account{ID: 1, AccountID: strings.Repeat("a", 32), Name: "Aceros del Norte"}
	uc, _, _ := newTestUsecase(acc)

	dto, err := uc.Get(context.Background(), acc.AccountID)
	if err != nil || dto.Name != acc.Name {
		t.Fatalf("get: dto=%+v err=%v", dto, err)
	}

	if _, err := uc.Get(context.Background(), strings.Repeat("b", 32)); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func Test_List(t *testing.T) {
	uc, _, _ := newTestUsecase(
		&domain.Account{ID: 1, Name: "Aceros del Norte"},
		&domain.Account{ID: 2, Name: "Textiles del Bajío"},
	)
	out, err := uc.List(context.Background(), "aceros")
	if err != nil || len(out) != 1 || out[0].Name != "Aceros del Norte" {
		t.Fatalf("list: out=%+v err=%v", out, err)
	}
}

func Test_CheckDuplicateName(t *testing.T) {
	uc, _, _ := newTestUsecase(&domain.Account{ID: 1, Name: "Aceros del Norte"})

	dup, err := uc.CheckDuplicateName(context.Background(), "aceros del norte")
	if err != nil || !dup {
		t.Fatalf("existing name should report duplicate: dup=%v err=%v", dup, err)
	}

	dup, err = uc.CheckDuplicateName(context.Background(), "Cuenta Nueva")
	if err != nil || dup {
		t.Fatalf("fresh name should not report duplicate: dup=%v err=%v", dup, err)
	}

	// blank names are never duplicates, and never hit the repo
	dup, err = uc.CheckDuplicateName(context.Background(), "   ")
	if err != nil || dup {
		t.Fatalf("blank name: dup=%v err=%v", dup, err)
	}
}
