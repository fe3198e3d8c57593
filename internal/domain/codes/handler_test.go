package codes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/recordbook/recordbook/internal/platform/api"
)

func newTestHandler() (*Handler, *echo.Echo) {
	repo := newMockRepo()
	seedMock(repo)
	return NewHandler(NewService(repo)), echo.New()
}

func TestHandler_ListOptions(t *testing.T) {
	h, e := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("category")
	c.SetParamValues(CategoryNationality)

	if err := h.ListOptions(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var resp api.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if !resp.Success {
		t.Error("expected success=true")
	}
	data, ok := resp.Data.([]interface{})
	if !ok {
		t.Fatalf("expected data array, got %T", resp.Data)
	}
	if len(data) != 2 {
		t.Errorf("expected 2 active nationality options, got %d", len(data))
	}
}

func TestHandler_ListOptions_EmptyCategory(t *testing.T) {
	h, e := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("category")
	c.SetParamValues("")

	if err := h.ListOptions(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandler_ListOptions_UnknownCategoryIsEmptyList(t *testing.T) {
	h, e := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("category")
	c.SetParamValues("does_not_exist")

	if err := h.ListOptions(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var resp api.Response
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if data, ok := resp.Data.([]interface{}); !ok || len(data) != 0 {
		t.Errorf("expected empty list, got %v", resp.Data)
	}
}
