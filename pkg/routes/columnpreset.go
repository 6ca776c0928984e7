package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/wfullmer-filius/fmr-tracking-system/internal/repositories/columnpreset"
	"github.com/wfullmer-filius/fmr-tracking-system/pkg/models"
	"github.com/wfullmer-filius/fmr-tracking-system/pkg/utils"
)

// ColumnPresetHandler handles column preset API requests
type ColumnPresetHandler struct {
	repo *columnpreset.Repository
}

// NewColumnPresetHandler creates a new column preset handler
func NewColumnPresetHandler(repo *columnpreset.Repository) *ColumnPresetHandler {
	return &ColumnPresetHandler{repo: repo}
}

// RegisterRoutes registers the column preset routes
func (h *ColumnPresetHandler) RegisterRoutes(g *echo.Group) {
	presets := g.Group("/column-presets")
	presets.POST("", h.Create)
	presets.GET("", h.List)
	presets.PUT("/:id", h.Update)
	presets.DELETE("/:id", h.Delete)
}

// Create handles POST /column-presets
func (h *ColumnPresetHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	req, err := utils.BindRequest[models.CreateColumnPresetRequest](c)
	if err != nil {
		return err
	}

	created, err := h.repo.Create(ctx, req)
	if err != nil {
		return err
	}

	return CreatedResponse(c, created)
}

// List handles GET /column-presets
func (h *ColumnPresetHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	response, err := h.repo.List(ctx)
	if err != nil {
		return err
	}

	return SuccessResponse(c, response)
}

// Update handles PUT /column-presets/:id
func (h *ColumnPresetHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := ParseID(c, "id")
	if err != nil {
		return err
	}

	req, err := utils.BindRequest[models.UpdateColumnPresetRequest](c)
	if err != nil {
		return err
	}

	updated, err := h.repo.Update(ctx, id, req)
	if err != nil {
		return err
	}

	return SuccessResponse(c, updated)
}

// Delete handles DELETE /column-presets/:id
func (h *ColumnPresetHandler) Delete(c echo.Context) error {
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
