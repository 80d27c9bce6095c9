package agent

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("agent not found")

// Agent is a row in the agent directory. Lookups denormalize these fields
// into the case's alta payload; the case never references the row afterwards.
type Agent struct {
	ID           uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	Clave        string    `gorm:"column:clave;size:16;not null;uniqueIndex:ux_agents_clave" json:"clave"`
	Nombre       string    `gorm:"column:nombre;size:255;not null" json:"nombre"`
	Promotor     string    `gorm:"column:promotor;size:255" json:"promotor"`
	Territorio   string    `gorm:"column:territorio;size:64" json:"territorio"`
	Oficina      string    `gorm:"column:oficina;size:64" json:"oficina"`
	Canal        string    `gorm:"column:canal;size:32" json:"canal"`
	CentroCostos string    `gorm:"column:centro_costos;size:32" json:"centroCostos"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Agent) TableName() string { return "agents" }
