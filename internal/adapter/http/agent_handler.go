package http

import (
	"net/http"

	"casetrack-service/internal/usecase/agent"

	"github.com/labstack/echo/v4"
)

type AgentHandler struct{ uc *agent.Usecase }

func NewAgentHandler(uc *agent.Usecase) *AgentHandler { return &AgentHandler{uc: uc} }

// LookupAgent resolves an agent code for the alta form. A 404 here is
// advisory for the screen: the agent block stays empty, nothing else blocks.
func (h *AgentHandler) LookupAgent(c echo.Context) error {
	dto, err := h.uc.Lookup(c.Request().Context(), c.Param("clave"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
