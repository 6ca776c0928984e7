package routes

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wfullmer-filius/fmr-tracking-system/internal/repositories/report"
	"github.com/wfullmer-filius/fmr-tracking-system/pkg/export"
	"github.com/wfullmer-filius/fmr-tracking-system/pkg/metrics"
	"github.com/wfullmer-filius/fmr-tracking-system/pkg/models"
)

// ReportHandler handles report generation and CSV export requests
type ReportHandler struct {
	repo *report.Repository
}

// NewReportHandler creates a new report handler
func NewReportHandler(repo *report.Repository) *ReportHandler {
	return &ReportHandler{repo: repo}
}

// RegisterRoutes registers the report routes
func (h *ReportHandler) RegisterRoutes(g *echo.Group) {
	reports := g.Group("/reports")
	reports.GET("/generate", h.Generate)
	reports.GET("/export", h.Export)
}

// Generate handles GET /reports/generate
func (h *ReportHandler) Generate(c echo.Context) error {
	ctx := c.Request().Context()

	reportType := models.ReportType(c.QueryParam("type"))
	if reportType == "" {
		return BadRequest("type query parameter is required")
	}

	startDate, err := parseDateParam(c, "startDate")
	if err != nil {
		return err
	}
	endDate, err := parseDateParam(c, "endDate")
	if err != nil {
		return err
	}

	data, err := h.repo.Generate(ctx, reportType, startDate, endDate)
	if err != nil {
		return err
	}

	return SuccessResponse(c, data)
}

// Export handles GET /reports/export
func (h *ReportHandler) Export(c echo.Context) error {
	ctx := c.Request().Context()

	startDate, err := parseDateParam(c, "startDate")
	if err != nil {
		return err
	}
	endDate, err := parseDateParam(c, "endDate")
	if err != nil {
		return err
	}

	rows, err := h.repo.ExportRows(ctx, startDate, endDate)
	if err != nil {
		return err
	}

	response, err := export.BuildFMRExport(rows, time.Now())
	if err != nil {
		return err
	}

	metrics.ExportsTotal.Inc()
	return SuccessResponse(c, response)
}

// parseDateParam reads an optional RFC 3339 or YYYY-MM-DD query parameter.
func parseDateParam(c echo.Context, param string) (*time.Time, error) {
	value := c.QueryParam(param)
	if value == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return &t, nil
	}
	return nil, BadRequest("invalid " + param + ": must be an RFC 3339 timestamp or YYYY-MM-DD date")
}
