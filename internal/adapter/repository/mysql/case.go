package mysql

import (
	"context"

	casesDomain "casetrack-service/internal/domain/cases"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CaseRepository struct{ db *gorm.DB }

func NewCaseRepository(db *gorm.DB) *CaseRepository { return &CaseRepository{db: db} }

func (r *CaseRepository) Create(ctx context.Context, c *casesDomain.Case) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CaseRepository) Save(ctx context.Context, c *casesDomain.Case) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CaseRepository) GetByCaseID(ctx context.Context, caseID string) (*casesDomain.Case, error) {
	var out casesDomain.Case
	res := r.db.WithContext(ctx).
		Preload("Account").
		Where("case_id = ?", caseID).
		First(&out)
	return &out, res.Error
}

func (r *CaseRepository) GetByCaseIDForUpdate(ctx context.Context, caseID string) (*casesDomain.Case, error) {
	var out casesDomain.Case
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("case_id = ?", caseID).
		First(&out)
	return &out, res.Error
}

func (r *CaseRepository) List(ctx context.Context, f casesDomain.ListFilter) ([]casesDomain.Case, error) {
	var out []casesDomain.Case
	q := r.db.WithContext(ctx).Preload("Account").Order("updated_at DESC, id DESC")
	if f.AccountID != 0 {
		q = q.Where("account_id = ?", f.AccountID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if len(f.Statuses) > 0 {
		q = q.Where("status IN ?", f.Statuses)
	}
	if f.RenewalSeeds {
		q = q.Where("status = ?", casesDomain.StatusTerminado)
	}
	res := q.Find(&out)
	return out, res.Error
}
