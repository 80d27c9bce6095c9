package mysql

import (
	"context"

	agentDomain "casetrack-service/internal/domain/agent"

	"gorm.io/gorm"
)

type AgentRepository struct{ db *gorm.DB }

func NewAgentRepository(db *gorm.DB) *AgentRepository { return &AgentRepository{db: db} }

func (r *AgentRepository) GetByClave(ctx context.Context, clave string) (*agentDomain.Agent, error) {
	var out agentDomain.Agent
	res := r.db.WithContext(ctx).Where("clave = ?", clave).First(&out)
	return &out, res.Error
}
