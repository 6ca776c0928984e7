package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/wfullmer-filius/fmr-tracking-system/internal/repositories/fmr"
	"github.com/wfullmer-filius/fmr-tracking-system/pkg/metrics"
	"github.com/wfullmer-filius/fmr-tracking-system/pkg/models"
	"github.com/wfullmer-filius/fmr-tracking-system/pkg/utils"
)

// FMRHandler handles FMR record API requests
type FMRHandler struct {
	repo *fmr.Repository
}

// NewFMRHandler creates a new FMR handler
func NewFMRHandler(repo *fmr.Repository) *FMRHandler {
	return &FMRHandler{repo: repo}
}

// RegisterRoutes registers the FMR routes
func (h *FMRHandler) RegisterRoutes(g *echo.Group) {
	records := g.Group("/fmr")
	records.POST("", h.Create)
	records.GET("", h.List)
	records.GET("/:id", h.Get)
	records.PUT("/:id", h.Update)
}

// Create handles POST /fmr
func (h *FMRHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	req, err := utils.BindRequest[models.CreateFMRRequest](c)
	if err != nil {
		return err
	}

	record, err := h.repo.Create(ctx, req)
	if err != nil {
		metrics.FMRRequestsTotal.WithLabelValues("create", "error").Inc()
		return err
	}

	metrics.FMRRequestsTotal.WithLabelValues("create", "success").Inc()
	return CreatedResponse(c, record)
}

// Get handles GET /fmr/:id
func (h *FMRHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := ParseID(c, "id")
	if err != nil {
		return err
	}

	record, err := h.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	return SuccessResponse(c, record)
}

// Update handles PUT /fmr/:id
func (h *FMRHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := ParseID(c, "id")
	if err != nil {
		return err
	}

	req, err := utils.BindRequest[models.UpdateFMRRequest](c)
	if err != nil {
		return err
	}

	record, err := h.repo.Update(ctx, id, req)
	if err != nil {
		metrics.FMRRequestsTotal.WithLabelValues("update", "error").Inc()
		return err
	}

	metrics.FMRRequestsTotal.WithLabelValues("update", "success").Inc()
	return SuccessResponse(c, record)
}

// List handles GET /fmr
func (h *FMRHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	var filters models.ListFMRFilters
	if err := c.Bind(&filters); err != nil {
		return BadRequest("invalid query parameters")
	}

	response, err := h.repo.List(ctx, filters)
	if err != nil {
		return err
	}

	return SuccessResponse(c, response)
}
