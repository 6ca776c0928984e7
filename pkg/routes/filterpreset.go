package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/wfullmer-filius/fmr-tracking-system/internal/repositories/filterpreset"
	"github.com/wfullmer-filius/fmr-tracking-system/pkg/models"
	"github.com/wfullmer-filius/fmr-tracking-system/pkg/utils"
)

// FilterPresetHandler handles saved filter preset API requests
type FilterPresetHandler struct {
	repo *filterpreset.Repository
}

// NewFilterPresetHandler creates a new filter preset handler
func NewFilterPresetHandler(repo *filterpreset.Repository) *FilterPresetHandler {
	return &FilterPresetHandler{repo: repo}
}

// RegisterRoutes registers the filter preset routes
func (h *FilterPresetHandler) RegisterRoutes(g *echo.Group) {
	presets := g.Group("/presets")
	presets.POST("", h.Create)
	presets.GET("", h.List)
	presets.PUT("/:id", h.Update)
	presets.DELETE("/:id", h.Delete)
}

// Create handles POST /presets
func (h *FilterPresetHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	req, err := utils.BindRequest[models.CreateFilterPresetRequest](c)
	if err != nil {
		return err
	}

	created, err := h.repo.Create(ctx, req)
	if err != nil {
		return err
	}

	return CreatedResponse(c, created)
}

// List handles GET /presets
func (h *FilterPresetHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	response, err := h.repo.List(ctx)
	if err != nil {
		return err
	}

	return SuccessResponse(c, response)
}

// Update handles PUT /presets/:id
func (h *FilterPresetHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := ParseID(c, "id")
	if err != nil {
		return err
	}

	req, err := utils.BindRequest[models.UpdateFilterPresetRequest](c)
	if err != nil {
		return err
	}

	updated, err := h.repo.Update(ctx, id, req)
	if err != nil {
		return err
	}

	return SuccessResponse(c, updated)
}

// Delete handles DELETE /presets/:id
func (h *FilterPresetHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := ParseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.repo.Delete(ctx, id); err != nil {
		return err
	}

	return NoContentResponse(c)
}
