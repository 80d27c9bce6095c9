package mysql

import (
	"context"
	"strings"

	accountDomain "casetrack-service/internal/domain/account"

	"gorm.io/gorm"
)

type AccountRepository struct{ db *gorm.DB }

func NewAccountRepository(db *gorm.DB) *AccountRepository { return &AccountRepository{db: db} }

func (r *AccountRepository) Create(ctx context.Context, a *accountDomain.Account) error {
	a.NameKey = strings.ToLower(strings.TrimSpace(a.Name))
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AccountRepository) GetByAccountID(ctx context.Context, accountID string) (*accountDomain.Account, error) {
	var out accountDomain.Account
	res := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&out)
	return &out, res.Error
}

func (r *AccountRepository) GetByName(ctx context.Context, name string) (*accountDomain.Account, error) {
	var out accountDomain.Account
	res := r.db.WithContext(ctx).
		Where("name_key = ?", strings.ToLower(strings.TrimSpace(name))).
		First(&out)
	return &out, res.Error
}

func (r *AccountRepository) List(ctx context.Context, query string) ([]accountDomain.Account, error) {
	var out []accountDomain.Account
	q := r.db.WithContext(ctx).Order("name ASC")
	if query != "" {
		like := "%" + strings.ToLower(query) + "%"
		q = q.Where("name_key LIKE ? OR LOWER(identifier) LIKE ?", like, like)
	}
	res := q.Find(&out)
	return out, res.Error
}
