package patient

import (
	"context"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/recordbook/recordbook/internal/platform/api"
)

// Handler provides the patient REST endpoints.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/patient-basic-info", h.Create)
	g.GET("/patient-basic-info", h.List)
	g.GET("/patient-basic-info/:mrn", h.Get)
	g.POST("/patient-detail", h.UpsertDetail)
	g.DELETE("/patient-nationality/:id", h.deleteRow(h.svc.DeleteNationality))
	g.DELETE("/patient-language/:id", h.deleteRow(h.svc.DeleteLanguage))
	g.DELETE("/patient-religion/:id", h.deleteRow(h.svc.DeleteReligion))
	g.DELETE("/patient-id-document/:id", h.deleteRow(h.svc.DeleteIDDocument))
}

// Create handles POST /api/v1/patient-basic-info
func (h *Handler) Create(c echo.Context) error {
	var in CreateInput
	if err := c.Bind(&in); err != nil {
		return api.Fail(c, 400, "invalid request body")
	}
	created, err := h.svc.Create(c.Request().Context(), in)
	if err != nil {
		return api.Error(c, err)
	}
	return api.Created(c, created)
}

// List handles GET /api/v1/patient-basic-info
func (h *Handler) List(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	list, err := h.svc.List(c.Request().Context(), c.QueryParam("q"), limit, offset)
	if err != nil {
		return api.Error(c, err)
	}
	if list == nil {
		list = []*BasicInfo{}
	}
	return api.OK(c, list)
}

// Get handles GET /api/v1/patient-basic-info/:mrn
func (h *Handler) Get(c echo.Context) error {
	rec, err := h.svc.Get(c.Request().Context(), c.Param("mrn"))
	if err != nil {
		return api.Error(c, err)
	}
	return api.OK(c, rec)
}

// UpsertDetail handles POST /api/v1/patient-detail
func (h *Handler) UpsertDetail(c echo.Context) error {
	var payload DetailPayload
	if err := c.Bind(&payload); err != nil {
		return api.Fail(c, 400, "invalid request body")
	}
	merged, err := h.svc.UpsertDetail(c.Request().Context(), payload)
	if err != nil {
		return api.Error(c, err)
	}
	return api.OK(c, merged)
}

func (h *Handler) deleteRow(del func(context.Context, int64) error) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return api.Fail(c, 400, "invalid id")
		}
		if err := del(c.Request().Context(), id); err != nil {
			return api.Error(c, err)
		}
		return api.OK(c, nil)
	}
}
