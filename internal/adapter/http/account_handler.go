package http

import (
	"net/http"

	"casetrack-service/internal/usecase/account"

	"github.com/labstack/echo/v4"
)

type AccountHandler struct{ uc *account.Usecase }

func NewAccountHandler(uc *account.Usecase) *AccountHandler { return &AccountHandler{uc: uc} }

type createAccountReq struct {
	Name       string `json:"name" validate:"required"`
	Identifier string `json:"identifier"`
	Industry   string `json:"industry"`
}

func (h *AccountHandler) CreateAccount(c echo.Context) error {
	var req createAccountReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Create(c.Request().Context(), account.CreateAccountInput(req))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *AccountHandler) GetAccount(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("account_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *AccountHandler) ListAccounts(c echo.Context) error {
	list, err := h.uc.List(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

// CheckName backs the advisory on-blur duplicate probe. The authoritative
// check still runs inside account/case creation.
func (h *AccountHandler) CheckName(c echo.Context) error {
	name := c.QueryParam("name")
	if name == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing name"})
	}
	dup, err := h.uc.CheckDuplicateName(c.Request().Context(), name)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"duplicate": dup})
}
