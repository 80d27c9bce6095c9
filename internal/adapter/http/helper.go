package http

import (
	"errors"
	"net/http"
	"strings"

	accountDomain "casetrack-service/internal/domain/account"
	agentDomain "casetrack-service/internal/domain/agent"
	"casetrack-service/internal/domain/cases"

	"github.com/labstack/echo/v4"
)

// writeDomainError maps the workflow error taxonomy onto HTTP statuses.
// Anything unrecognized is a backend failure and must surface as such,
// never as a fabricated success.
func writeDomainError(c echo.Context, err error) error {
	if ve, ok := cases.AsValidation(err); ok {
		details := make([]FieldError, 0, len(ve.Fields))
		for _, f := range ve.Fields {
			details = append(details, FieldError{Field: f, Message: "is required"})
		}
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: details,
		})
	}
	switch {
	case errors.Is(err, accountDomain.ErrDuplicate):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "duplicate account name"})
	case errors.Is(err, cases.ErrIllegalTransition):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "illegal transition"})
	case errors.Is(err, cases.ErrNotFound),
		errors.Is(err, accountDomain.ErrNotFound),
		errors.Is(err, agentDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

// ---- helpers ----

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
