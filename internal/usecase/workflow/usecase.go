package workflow

import (
	"context"
	"errors"
	"strings"
	"time"

	accountDomain "casetrack-service/internal/domain/account"
	"casetrack-service/internal/domain/cases"
	"casetrack-service/internal/domain/uow"
	"casetrack-service/pkg/id"
	"casetrack-service/pkg/refnum"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// renewalObsLimit bounds the observations field after the parent-folio marker
// is prepended (storage constraint on the column).
const renewalObsLimit = 500

type Usecase struct {
	caseRepo    cases.Repository
	accountRepo accountDomain.Repository
	uow         uow.UnitOfWork
	log         *zap.Logger

	strictEmission bool
}

func NewUsecase(caseRepo cases.Repository, accountRepo accountDomain.Repository, tx uow.UnitOfWork, log *zap.Logger, strictEmission bool) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{
		caseRepo:       caseRepo,
		accountRepo:    accountRepo,
		uow:            tx,
		log:            log,
		strictEmission: strictEmission,
	}
}

// CreateCase opens a case at ALTA/ACTIVO, creating the account first when no
// existing account id is supplied. With Advance set, the alta form is
// validated and the case leaves the transaction already at NEGOCIACION.
func (u *Usecase) CreateCase(ctx context.Context, in CreateCaseInput) (*CaseDTO, error) {
	alta := in.Alta
	normalizeAlta(&alta)
	if alta.Etapa == "" {
		alta.Etapa = cases.EtapaCreado
	}
	if in.Advance {
		if err := validateAlta(&alta); err != nil {
			return nil, err
		}
	}

	var caseID string
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		acc, err := u.resolveAccount(ctx, r, in, alta.Name)
		if err != nil {
			return err
		}

		if in.ParentCaseID != nil {
			if _, err := r.Cases.GetByCaseID(ctx, *in.ParentCaseID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return cases.ErrNotFound
				}
				return err
			}
		}

		c := &cases.Case{
			CaseID:          id.NewID32(),
			Refnum:          refnum.New(),
			AccountID:       acc.ID,
			ParentCaseID:    in.ParentCaseID,
			WorkflowStep:    cases.StepAlta,
			Status:          cases.StatusActivo,
			AltaData:        alta,
			StatusUpdatedAt: time.Now().UTC(),
		}
		if err := r.Cases.Create(ctx, c); err != nil {
			return err
		}
		if in.Advance {
			c.WorkflowStep = cases.StepNegociacion
			if err := r.Cases.Save(ctx, c); err != nil {
				return err
			}
		}
		caseID = c.CaseID
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.log.Info("case created",
		zap.String("case_id", caseID),
		zap.Bool("advanced", in.Advance))
	return u.Get(ctx, caseID)
}

// resolveAccount returns the owning account, creating it (behind the
// duplicate-name guard) when no account id came with the request.
func (u *Usecase) resolveAccount(ctx context.Context, r uow.Repos, in CreateCaseInput, name string) (*accountDomain.Account, error) {
	if in.AccountID != "" {
		acc, err := r.Accounts.GetByAccountID(ctx, in.AccountID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, accountDomain.ErrNotFound
			}
			return nil, err
		}
		return acc, nil
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, cases.NewValidationError("name")
	}
	_, err := r.Accounts.GetByName(ctx, name)
	switch {
	case err == nil:
		return nil, accountDomain.ErrDuplicate
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	acc := &accountDomain.Account{
		AccountID:  id.NewID32(),
		Name:       name,
		Identifier: strings.TrimSpace(in.Identifier),
		Industry:   strings.TrimSpace(in.Industry),
	}
	if err := r.Accounts.Create(ctx, acc); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, accountDomain.ErrDuplicate
		}
		return nil, err
	}
	return acc, nil
}

// SaveStep merges a step form into the case and optionally transitions it.
// Draft saves are legal at any non-terminal status and never move the step.
// Advance/finish require the payload's step tag to match the persisted step
// (stale double-submits fail with ErrIllegalTransition) and the step's
// required fields to be present.
func (u *Usecase) SaveStep(ctx context.Context, caseID string, p cases.StepPayload, opt SaveOptions) (*CaseDTO, error) {
	if opt.Advance && opt.Finish {
		return nil, cases.ErrIllegalTransition
	}
	// Normalize before validating, same order as CreateCase: a cleared
	// subramo must count as missing when an advance is requested.
	p = normalizeStep(p)

	err := u.uow.WithinCaseTx(ctx, caseID, func(r uow.Repos, c *cases.Case) error {
		if c.Terminal() {
			return cases.ErrIllegalTransition
		}
		if opt.Advance || opt.Finish {
			if p.Step() != c.WorkflowStep {
				return cases.ErrIllegalTransition
			}
			if err := validateStep(p, u.strictEmission); err != nil {
				return err
			}
		}

		mergeStep(c, p)

		now := time.Now().UTC()
		switch {
		case opt.Finish:
			if c.WorkflowStep != cases.StepEmision {
				return cases.ErrIllegalTransition
			}
			c.Status = cases.StatusTerminado
			c.StatusUpdatedAt = now
		case opt.Advance:
			if c.WorkflowStep == cases.StepNegociacion && c.NegotiationData.Estatus == cases.EstatusPerdida {
				// Lost negotiations close out instead of reaching emission.
				c.Status = cases.StatusPerdida
				c.StatusUpdatedAt = now
			} else {
				next, ok := c.WorkflowStep.Next()
				if !ok {
					return cases.ErrIllegalTransition
				}
				c.WorkflowStep = next
			}
		}
		return r.Cases.Save(ctx, c)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cases.ErrNotFound
		}
		return nil, err
	}

	u.log.Info("case step saved",
		zap.String("case_id", caseID),
		zap.String("step", string(p.Step())),
		zap.Bool("advance", opt.Advance),
		zap.Bool("finish", opt.Finish))
	return u.Get(ctx, caseID)
}

// mergeStep replaces the payload's own section only; earlier sections stay
// untouched, so advancing never discards previously captured fields.
func mergeStep(c *cases.Case, p cases.StepPayload) {
	switch v := p.(type) {
	case cases.AltaPayload:
		normalizeAlta(&v)
		c.AltaData = v
	case *cases.AltaPayload:
		cp := *v
		normalizeAlta(&cp)
		c.AltaData = cp
	case cases.NegotiationPayload:
		c.NegotiationData = v
	case *cases.NegotiationPayload:
		c.NegotiationData = *v
	case cases.EmissionPayload:
		c.EmissionData = v
	case *cases.EmissionPayload:
		c.EmissionData = *v
	}
}

// Cancel closes a non-terminal case as CANCELADO or RECHAZADO.
func (u *Usecase) Cancel(ctx context.Context, caseID string, status cases.Status) (*CaseDTO, error) {
	if status != cases.StatusCancelado && status != cases.StatusRechazado {
		return nil, cases.ErrIllegalTransition
	}
	err := u.uow.WithinCaseTx(ctx, caseID, func(r uow.Repos, c *cases.Case) error {
		if c.Terminal() {
			return cases.ErrIllegalTransition
		}
		c.Status = status
		c.StatusUpdatedAt = time.Now().UTC()
		return r.Cases.Save(ctx, c)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cases.ErrNotFound
		}
		return nil, err
	}

	u.log.Info("case closed",
		zap.String("case_id", caseID),
		zap.String("status", string(status)))
	return u.Get(ctx, caseID)
}

// CreateRenewal derives a fresh case from a finished parent: payload copied,
// system fields stripped, pipeline restarted at ALTA, observations marked
// with the parent folio.
func (u *Usecase) CreateRenewal(ctx context.Context, parentCaseID string) (*CaseDTO, error) {
	var caseID string
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		parent, err := r.Cases.GetByCaseID(ctx, parentCaseID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return cases.ErrNotFound
			}
			return err
		}

		alta := parent.AltaData
		alta.Etapa = cases.EtapaCreado
		alta.Observaciones = truncateRunes("Renovación de "+parent.Refnum+": "+alta.Observaciones, renewalObsLimit)

		parentID := parent.CaseID
		c := &cases.Case{
			CaseID:          id.NewID32(),
			Refnum:          refnum.New(),
			AccountID:       parent.AccountID,
			ParentCaseID:    &parentID,
			WorkflowStep:    cases.StepAlta,
			Status:          cases.StatusActivo,
			AltaData:        alta,
			NegotiationData: parent.NegotiationData,
			EmissionData:    parent.EmissionData,
			StatusUpdatedAt: time.Now().UTC(),
		}
		if err := r.Cases.Create(ctx, c); err != nil {
			return err
		}
		caseID = c.CaseID
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.log.Info("renewal created",
		zap.String("case_id", caseID),
		zap.String("parent_case_id", parentCaseID))
	return u.Get(ctx, caseID)
}

func (u *Usecase) Get(ctx context.Context, caseID string) (*CaseDTO, error) {
	c, err := u.caseRepo.GetByCaseID(ctx, caseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cases.ErrNotFound
		}
		return nil, err
	}
	return toDTO(c), nil
}

func (u *Usecase) List(ctx context.Context, in ListInput) ([]CaseDTO, error) {
	f := cases.ListFilter{Status: cases.Status(in.Status)}
	if in.AccountID != "" {
		acc, err := u.accountRepo.GetByAccountID(ctx, in.AccountID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, accountDomain.ErrNotFound
			}
			return nil, err
		}
		f.AccountID = acc.ID
	}
	return u.list(ctx, f)
}

// ListCancelled returns withdrawn and rejected cases for the cancelled view.
func (u *Usecase) ListCancelled(ctx context.Context) ([]CaseDTO, error) {
	return u.list(ctx, cases.ListFilter{
		Statuses: []cases.Status{cases.StatusCancelado, cases.StatusRechazado},
	})
}

// ListRenewalSeeds returns an account's finished cases, the ones a renewal
// may descend from.
func (u *Usecase) ListRenewalSeeds(ctx context.Context, accountID string) ([]CaseDTO, error) {
	acc, err := u.accountRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, accountDomain.ErrNotFound
		}
		return nil, err
	}
	return u.list(ctx, cases.ListFilter{AccountID: acc.ID, RenewalSeeds: true})
}

func (u *Usecase) list(ctx context.Context, f cases.ListFilter) ([]CaseDTO, error) {
	list, err := u.caseRepo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]CaseDTO, 0, len(list))
	for i := range list {
		out = append(out, *toDTO(&list[i]))
	}
	return out, nil
}

func truncateRunes(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}
