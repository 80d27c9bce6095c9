package http

import (
	"bytes"
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domain "casetrack-service/internal/domain/account"
	"casetrack-service/internal/domain/uow"
	"casetrack-service/internal/testutil/accountmock"
	"casetrack-service/internal/testutil/uowmock"
	accountUC "casetrack-service/internal/usecase/account"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// -------- helpers --------

func newEchoWithValidator() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func mustJSON(v any) *bytes.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func newAccountHandler(existing ...*domain.Account) *AccountHandler {
	repo := &accountmock.Repo{
		CreateFn: func(_ context.Context, a *domain.Account) error {
			a.ID = 1
			return nil
		},
		GetByNameFn: func(_ context.Context, name string) (*domain.Account, error) {
			for _, a := range existing {
				if strings.EqualFold(strings.TrimSpace(name), a.Name) {
					return a, nil
				}
			}
			return nil, gorm.ErrRecordNotFound
		},
		GetByAccountIDFn: func(_ context.Context, accountID string) (*domain.Account, error) {
			for _, a := range existing {
				if a.AccountID == accountID {
					return a, nil
				}
			}
			return nil, gorm.ErrRecordNotFound
		},
		ListFn: func(_ context.Context, _ string) ([]domain.Account, error) {
			out := make([]domain.Account, 0, len(existing))
			for _, a := range existing {
				out = append(out, *a)
			}
			return out, nil
		},
	}
	usecase := accountUC.NewUsecase(repo, &uowmock.UoW{Repos: uow.Repos{Accounts: repo}})
	return NewAccountHandler(usecase)
}

// -------- tests --------

func TestCreateAccount_Success(t *testing.T) {
	e := newEchoWithValidator()
	h := newAccountHandler()

	req := httptest.NewRequest(stdhttp.MethodPost, "/accounts", mustJSON(map[string]string{
		"name":       "Aceros del Norte",
		"identifier": "ADN900101AA1",
	}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateAccount(c); err != nil {
		t.Fatalf("CreateAccount error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201, body: %s", rec.Code, rec.Body.String())
	}
	var got accountUC.AccountDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.Name != "Aceros del Norte" || len(got.AccountID) != 32 {
		t.Fatalf("unexpected dto: %+v", got)
	}
}

func TestCreateAccount_MissingName(t *testing.T) {
	e := newEchoWithValidator()
	h := newAccountHandler()

	req := httptest.NewRequest(stdhttp.MethodPost, "/accounts", mustJSON(map[string]string{
		"identifier": "ADN900101AA1",
	}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateAccount(c); err != nil {
		t.Fatalf("CreateAccount error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var er ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &er); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if !containsFieldMsg(er.Details, "Name", "required") {
		t.Fatalf("missing field detail: %+v", er)
	}
}

func TestCreateAccount_Duplicate(t *testing.T) {
	e := newEchoWithValidator()
	h := newAccountHandler(&domain.Account{ID: 1, Name: "Aceros del Norte"})

	req := httptest.NewRequest(stdhttp.MethodPost, "/accounts", mustJSON(map[string]string{
		"name": "ACEROS DEL NORTE",
	}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateAccount(c); err != nil {
		t.Fatalf("CreateAccount error: %v", err)
	}
	if rec.Code != stdhttp.StatusConflict {
		t.Fatalf("status = %d, want 409, body: %s", rec.Code, rec.Body.String())
	}
}

func TestGetAccount_NotFound(t *testing.T) {
	e := newEchoWithValidator()
	h := newAccountHandler()

	req := httptest.NewRequest(stdhttp.MethodGet, "/accounts/"+strings.Repeat("a", 32), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("account_id")
	c.SetParamValues(strings.Repeat("a", 32))

	if err := h.GetAccount(c); err != nil {
		t.Fatalf("GetAccount error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestCheckName(t *testing.T) {
	e := newEchoWithValidator()
	h := newAccountHandler(&domain.Account{ID: 1, Name: "Aceros del Norte"})

	probe := func(q string) (int, map[string]bool) {
		req := httptest.NewRequest(stdhttp.MethodGet, "/accounts/check-name"+q, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if err := h.CheckName(c); err != nil {
			t.Fatalf("CheckName error: %v", err)
		}
		var body map[string]bool
		_ = json.Unmarshal(rec.Body.Bytes(), &body)
		return rec.Code, body
	}

	code, body := probe("?name=aceros+del+norte")
	if code != stdhttp.StatusOK || !body["duplicate"] {
		t.Fatalf("existing name: code=%d body=%v", code, body)
	}

	code, body = probe("?name=Cuenta+Nueva")
	if code != stdhttp.StatusOK || body["duplicate"] {
		t.Fatalf("fresh name: code=%d body=%v", code, body)
	}

	code, _ = probe("")
	if code != stdhttp.StatusBadRequest {
		t.Fatalf("missing name: code=%d, want 400", code)
	}
}
