package http

import (
	"net/http"

	"casetrack-service/internal/domain/cases"
	"casetrack-service/internal/usecase/workflow"

	"github.com/labstack/echo/v4"
)

type CaseHandler struct{ uc *workflow.Usecase }

func NewCaseHandler(uc *workflow.Usecase) *CaseHandler { return &CaseHandler{uc: uc} }

// The capture screens post the step form flat, with routing fields mixed in,
// so the payload structs are embedded rather than nested.

type createCaseReq struct {
	AccountID    string  `json:"accountId" validate:"omitempty,hex32"`
	Identifier   string  `json:"identifier"`
	Industry     string  `json:"industry"`
	ParentCaseID *string `json:"parentCaseId" validate:"omitempty,hex32"`
	Advance      bool    `json:"advance"`
	cases.AltaPayload
}

func (h *CaseHandler) CreateCase(c echo.Context) error {
	var req createCaseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.CreateCase(c.Request().Context(), workflow.CreateCaseInput{
		AccountID:    req.AccountID,
		Identifier:   req.Identifier,
		Industry:     req.Industry,
		ParentCaseID: req.ParentCaseID,
		Alta:         req.AltaPayload,
		Advance:      req.Advance,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *CaseHandler) GetCase(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("case_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *CaseHandler) ListCases(c echo.Context) error {
	list, err := h.uc.List(c.Request().Context(), workflow.ListInput{
		AccountID: c.QueryParam("accountId"),
		Status:    c.QueryParam("status"),
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *CaseHandler) ListCancelled(c echo.Context) error {
	list, err := h.uc.ListCancelled(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *CaseHandler) ListRenovaciones(c echo.Context) error {
	accountID := c.QueryParam("accountId")
	if accountID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing accountId"})
	}
	list, err := h.uc.ListRenewalSeeds(c.Request().Context(), accountID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

type updateCaseReq struct {
	Advance bool `json:"advance"`
	cases.AltaPayload
}

// UpdateCase persists the alta form on an existing case (PUT /cases/:id).
// Revisiting the alta screen from a later step is a draft save; the step
// never regresses.
func (h *CaseHandler) UpdateCase(c echo.Context) error {
	var req updateCaseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.SaveStep(c.Request().Context(), c.Param("case_id"), req.AltaPayload,
		workflow.SaveOptions{Advance: req.Advance})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type negotiationReq struct {
	Advance bool `json:"advance"`
	cases.NegotiationPayload
}

func (h *CaseHandler) SaveNegotiation(c echo.Context) error {
	var req negotiationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.SaveStep(c.Request().Context(), c.Param("case_id"), req.NegotiationPayload,
		workflow.SaveOptions{Advance: req.Advance})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type emissionReq struct {
	Finish bool `json:"finish"`
	cases.EmissionPayload
}

func (h *CaseHandler) SaveEmission(c echo.Context) error {
	var req emissionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.SaveStep(c.Request().Context(), c.Param("case_id"), req.EmissionPayload,
		workflow.SaveOptions{Finish: req.Finish})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type cancelReq struct {
	Status string `json:"status" validate:"required,oneof=CANCELADO RECHAZADO"`
}

func (h *CaseHandler) CancelCase(c echo.Context) error {
	var req cancelReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Cancel(c.Request().Context(), c.Param("case_id"), cases.Status(req.Status))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *CaseHandler) CreateRenewal(c echo.Context) error {
	dto, err := h.uc.CreateRenewal(c.Request().Context(), c.Param("case_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}
