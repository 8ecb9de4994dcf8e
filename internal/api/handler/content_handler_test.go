package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/finbrief/member-portal/internal/api/middleware"
	"github.com/finbrief/member-portal/internal/core/domain"
)

func TestContentHandler_FinancialMarkets(t *testing.T) {
	e := newTestEcho()
	handler := NewContentHandler()

	req := httptest.NewRequest(http.MethodGet, "/financial-markets", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.PrincipalKey, &domain.User{Username: "alice", Role: domain.RoleBasic})

	if err := handler.FinancialMarkets(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Hi, alice!" {
		t.Fatalf("identity not interpolated: %q", resp["message"])
	}
}

func TestContentHandler_MissingPrincipal(t *testing.T) {
	e := newTestEcho()
	handler := NewContentHandler()

	req := httptest.NewRequest(http.MethodGet, "/company-insights", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// reached without the Authorize middleware: reject, don't panic
	err := handler.CompanyInsights(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestContentHandler_Welcome(t *testing.T) {
	e := newTestEcho()
	handler := NewContentHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Welcome(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
