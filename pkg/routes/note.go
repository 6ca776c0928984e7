package routes

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/wfullmer-filius/fmr-tracking-system/internal/repositories/note"
	"github.com/wfullmer-filius/fmr-tracking-system/pkg/models"
	"github.com/wfullmer-filius/fmr-tracking-system/pkg/utils"
)

// NoteHandler handles FMR note API requests
type NoteHandler struct {
	repo *note.Repository
}

// NewNoteHandler creates a new note handler
func NewNoteHandler(repo *note.Repository) *NoteHandler {
	return &NoteHandler{repo: repo}
}

// RegisterRoutes registers the note routes
func (h *NoteHandler) RegisterRoutes(g *echo.Group) {
	notes := g.Group("/notes")
	notes.POST("", h.Create)
	notes.GET("", h.List)
}

// Create handles POST /notes
func (h *NoteHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	req, err := utils.BindRequest[models.CreateNoteRequest](c)
	if err != nil {
		return err
	}

	created, err := h.repo.Create(ctx, req)
	if err != nil {
		return err
	}

	return CreatedResponse(c, created)
}

// List handles GET /notes?fmrId=N
func (h *NoteHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	fmrIDStr := c.QueryParam("fmrId")
	if fmrIDStr == "" {
		return BadRequest("fmrId query parameter is required")
	}
	fmrID, err := strconv.ParseInt(fmrIDStr, 10, 64)
	if err != nil {
		return BadRequest("invalid fmrId: must be a number")
	}

	response, err := h.repo.ListByFmrID(ctx, fmrID)
	if err != nil {
		return err
	}

	return SuccessResponse(c, response)
}
