package cases

import (
	"time"

	"casetrack-service/internal/domain/account"

	"gorm.io/gorm"
)

// Step is the ordinal pipeline position of a case.
type Step string

const (
	StepAlta        Step = "ALTA"
	StepNegociacion Step = "NEGOCIACION"
	StepEmision     Step = "EMISION"
)

var stepOrder = map[Step]int{
	StepAlta:        0,
	StepNegociacion: 1,
	StepEmision:     2,
}

func (s Step) Valid() bool { _, ok := stepOrder[s]; return ok }

// Next returns the following pipeline step; ok is false for EMISION,
// which only exits through a terminal status.
func (s Step) Next() (Step, bool) {
	switch s {
	case StepAlta:
		return StepNegociacion, true
	case StepNegociacion:
		return StepEmision, true
	default:
		return s, false
	}
}

// Before reports whether s comes strictly earlier in the pipeline than other.
func (s Step) Before(other Step) bool { return stepOrder[s] < stepOrder[other] }

// Status is orthogonal to Step: a case is ACTIVO while in the pipeline and
// moves to exactly one of the closed statuses, after which it never mutates.
type Status string

const (
	StatusActivo    Status = "ACTIVO"
	StatusTerminado Status = "TERMINADO"
	StatusPerdida   Status = "PERDIDA"
	StatusCancelado Status = "CANCELADO"
	StatusRechazado Status = "RECHAZADO"
)

func (s Status) Terminal() bool {
	switch s {
	case StatusTerminado, StatusPerdida, StatusCancelado, StatusRechazado:
		return true
	}
	return false
}

// EtapaCreado is the data-level label a fresh case carries in its alta form.
const EtapaCreado = "Creado"

type Case struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	CaseID string `gorm:"column:case_id;type:char(32);not null;uniqueIndex:ux_cases_case_id_active" json:"id"`
	// Human-readable folio shown on every screen, distinct from the id
	Refnum string `gorm:"column:refnum;size:32;not null;uniqueIndex:ux_cases_refnum_active" json:"refnum"`
	// FK to accounts.id (numeric)
	AccountID uint64           `gorm:"column:account_id;not null;index:idx_cases_account_active" json:"-"`
	Account   *account.Account `gorm:"foreignKey:AccountID;references:ID" json:"account,omitempty"`
	// Public case_id of the parent for renewals; nil otherwise
	ParentCaseID *string `gorm:"column:parent_case_id;type:char(32);index" json:"parentCaseId,omitempty"`

	WorkflowStep Step   `gorm:"column:workflow_step;type:enum('ALTA','NEGOCIACION','EMISION');default:'ALTA'" json:"workflowStep"`
	Status       Status `gorm:"column:status;type:enum('ACTIVO','TERMINADO','PERDIDA','CANCELADO','RECHAZADO');default:'ACTIVO'" json:"status"`

	// Accumulated step forms. Advancing never touches earlier sections, so the
	// payload captured at step N survives at N+1.
	AltaData        AltaPayload        `gorm:"column:alta_data;type:json" json:"altaData"`
	NegotiationData NegotiationPayload `gorm:"column:negotiation_data;type:json" json:"negotiationData"`
	EmissionData    EmissionPayload    `gorm:"column:emission_data;type:json" json:"emissionData"`

	StatusUpdatedAt time.Time      `gorm:"column:status_updated_at;autoCreateTime" json:"statusUpdatedAt"`
	CreatedAt       time.Time      `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"lastModified"`
	DeletedAt       gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Case) TableName() string { return "cases" }

func (c *Case) Terminal() bool { return c.Status.Terminal() }
