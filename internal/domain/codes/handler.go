package codes

import (
	"github.com/labstack/echo/v4"

	"github.com/recordbook/recordbook/internal/platform/api"
)

// Handler provides REST endpoints for code options.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/code-options/:category", h.ListOptions)
}

// ListOptions handles GET /api/v1/code-options/:category
func (h *Handler) ListOptions(c echo.Context) error {
	category := c.Param("category")

	options, err := h.svc.ListOptions(c.Request().Context(), category)
	if err != nil {
		return api.Error(c, err)
	}
	if options == nil {
		options = []*Option{}
	}
	return api.OK(c, options)
}
