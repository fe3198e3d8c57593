package artist

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/recordbook/recordbook/internal/platform/api"
)

func newTestHandler() (*Handler, *mockRepo, *mockLists, *echo.Echo) {
	svc, repo, lists := newTestService()
	return NewHandler(svc), repo, lists, echo.New()
}

func postJSON(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func envelope(t *testing.T, rec *httptest.ResponseRecorder) api.Response {
	t.Helper()
	var resp api.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	return resp
}

func TestHandler_Create(t *testing.T) {
	h, _, _, e := newTestHandler()
	c, rec := postJSON(e, `{"artistId":"ART001","stageName":"小雨"}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
	data, ok := envelope(t, rec).Data.(map[string]interface{})
	if !ok || data["artistId"] != "ART001" {
		t.Errorf("unexpected data: %v", data)
	}
}

func TestHandler_Create_MissingStageName(t *testing.T) {
	h, _, _, e := newTestHandler()
	c, rec := postJSON(e, `{"artistId":"ART001"}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if resp := envelope(t, rec); !strings.Contains(resp.Message, "stageName") {
		t.Errorf("expected message naming stageName, got %s", resp.Message)
	}
}

func TestHandler_UpsertDetail_WithDocuments(t *testing.T) {
	h, repo, _, e := newTestHandler()
	repo.artists["ART001"] = &BasicInfo{ID: 1, ArtistID: "ART001", StageName: "小雨"}

	c, rec := postJSON(e, `{
		"artistId":"ART001",
		"idDocuments":[{"id":1755000000000,"idType":"passport","idNumber":"B987654321","isPrimary":true}]
	}`)

	if err := h.UpsertDetail(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	detail := envelope(t, rec).Data.(map[string]interface{})
	docs, ok := detail["idDocuments"].([]interface{})
	if !ok || len(docs) != 1 {
		t.Fatalf("expected 1 document, got %v", detail["idDocuments"])
	}
	doc := docs[0].(map[string]interface{})
	if doc["idType"] != "passport" || doc["idNumber"] != "B987654321" {
		t.Errorf("unexpected document: %v", doc)
	}
	b := repo.artists["ART001"]
	if b.IDTypeName == nil || *b.IDTypeName != "護照" {
		t.Error("document mirror not resolved onto the profile")
	}
}

func TestHandler_Get_NotFound(t *testing.T) {
	h, _, _, e := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("artistId")
	c.SetParamValues("NOPE")

	if err := h.Get(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandler_DeleteLanguage_BadID(t *testing.T) {
	h, _, _, e := newTestHandler()

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-number")

	if err := h.deleteRow(h.svc.DeleteLanguage)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
