package mysql

import (
	"context"

	"casetrack-service/internal/domain/cases"
	"casetrack-service/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Accounts: &AccountRepository{db: tx},
			Cases:    &CaseRepository{db: tx},
		}
		return fn(r)
	})
}

func (u *GormUoW) WithinCaseTx(ctx context.Context, caseID string, fn func(r uow.Repos, c *cases.Case) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Accounts: &AccountRepository{db: tx},
			Cases:    &CaseRepository{db: tx},
		}
		// lock the case row up-front to prevent races
		c, err := r.Cases.GetByCaseIDForUpdate(ctx, caseID)
		if err != nil {
			return err
		}
		return fn(r, c)
	})
}
