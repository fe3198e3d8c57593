package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func record(t *testing.T, fn func(c echo.Context) error) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := fn(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	return rec, resp
}

func TestOK(t *testing.T) {
	rec, resp := record(t, func(c echo.Context) error {
		return OK(c, map[string]string{"mrn": "MRN001"})
	})
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if !resp.Success {
		t.Error("expected success=true")
	}
	if resp.Message != "" {
		t.Errorf("expected no message, got %q", resp.Message)
	}
}

func TestError_Validation(t *testing.T) {
	rec, resp := record(t, func(c echo.Context) error {
		return Error(c, Validation("mrn", "ptName"))
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if resp.Success {
		t.Error("expected success=false")
	}
	if resp.Message != "missing required field(s): mrn, ptName" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

func TestError_NotFound(t *testing.T) {
	rec, _ := record(t, func(c echo.Context) error {
		return Error(c, fmt.Errorf("patient MRN404: %w", ErrNotFound))
	})
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestError_InternalHidesDetails(t *testing.T) {
	rec, resp := record(t, func(c echo.Context) error {
		return Error(c, errors.New("pq: deadlock detected"))
	})
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	if resp.Message != "internal server error" {
		t.Errorf("persistence details leaked: %q", resp.Message)
	}
}

func TestIsValidation_Invalid(t *testing.T) {
	if !IsValidation(Invalid("duplicate mrn")) {
		t.Error("Invalid() should map to validation")
	}
	if IsValidation(errors.New("other")) {
		t.Error("plain errors should not map to validation")
	}
}
