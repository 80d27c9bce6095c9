package workflow

import (
	"time"

	"casetrack-service/internal/domain/cases"
)

type CreateCaseInput struct {
	// Public id of an existing account; empty means "create the account
	// from the alta form's name".
	AccountID string `json:"accountId"`
	// Optional tax id / industry for an inline-created account.
	Identifier string `json:"identifier"`
	Industry   string `json:"industry"`
	// Public id of the parent case when the new case is a renewal.
	ParentCaseID *string `json:"parentCaseId"`

	Alta    cases.AltaPayload `json:"alta"`
	Advance bool              `json:"advance"`
}

// SaveOptions selects between save-in-place, advance and finish. Advance and
// finish are mutually exclusive; both false is a draft save.
type SaveOptions struct {
	Advance bool
	Finish  bool
}

type AccountSummary struct {
	AccountID  string `json:"id"`
	Name       string `json:"name"`
	Identifier string `json:"identifier,omitempty"`
}

type CaseDTO struct {
	CaseID       string          `json:"id"`
	Refnum       string          `json:"refnum"`
	Account      *AccountSummary `json:"account,omitempty"`
	ParentCaseID *string         `json:"parentCaseId,omitempty"`
	WorkflowStep string          `json:"workflowStep"`
	Status       string          `json:"status"`

	AltaData        cases.AltaPayload        `json:"altaData"`
	NegotiationData cases.NegotiationPayload `json:"negotiationData"`
	EmissionData    cases.EmissionPayload    `json:"emissionData"`

	CreatedAt    time.Time `json:"createdAt"`
	LastModified time.Time `json:"lastModified"`
}

func toDTO(c *cases.Case) *CaseDTO {
	dto := &CaseDTO{
		CaseID:          c.CaseID,
		Refnum:          c.Refnum,
		ParentCaseID:    c.ParentCaseID,
		WorkflowStep:    string(c.WorkflowStep),
		Status:          string(c.Status),
		AltaData:        c.AltaData,
		NegotiationData: c.NegotiationData,
		EmissionData:    c.EmissionData,
		CreatedAt:       c.CreatedAt,
		LastModified:    c.UpdatedAt,
	}
	if c.Account != nil {
		dto.Account = &AccountSummary{
			AccountID:  c.Account.AccountID,
			Name:       c.Account.Name,
			Identifier: c.Account.Identifier,
		}
	}
	return dto
}

type ListInput struct {
	// Public account id filter; empty means all accounts.
	AccountID string
	Status    string
}
