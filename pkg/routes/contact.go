package routes

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/wfullmer-filius/fmr-tracking-system/internal/repositories/contact"
	"github.com/wfullmer-filius/fmr-tracking-system/pkg/models"
	"github.com/wfullmer-filius/fmr-tracking-system/pkg/utils"
)

// ContactHandler handles contact directory API requests
type ContactHandler struct {
	repo *contact.Repository
}

// NewContactHandler creates a new contact handler
func NewContactHandler(repo *contact.Repository) *ContactHandler {
	return &ContactHandler{repo: repo}
}

// RegisterRoutes registers the contact routes
func (h *ContactHandler) RegisterRoutes(g *echo.Group) {
	contacts := g.Group("/contacts")
	contacts.POST("", h.Create)
	contacts.GET("", h.List)
	contacts.PUT("/:id", h.Update)
	contacts.DELETE("/:id", h.Delete)
}

// Create handles POST /contacts
func (h *ContactHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	req, err := utils.BindRequest[models.CreateContactRequest](c)
	if err != nil {
		return err
	}

	created, err := h.repo.Create(ctx, req)
	if err != nil {
		return err
	}

	return CreatedResponse(c, created)
}

// List handles GET /contacts
func (h *ContactHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	response, err := h.repo.List(ctx, limit, offset)
	if err != nil {
		return err
	}

	return SuccessResponse(c, response)
}

// Update handles PUT /contacts/:id
func (h *ContactHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := ParseID(c, "id")
	if err != nil {
		return err
	}

	req, err := utils.BindRequest[models.UpdateContactRequest](c)
	if err != nil {
		return err
	}

	updated, err := h.repo.Update(ctx, id, req)
	if err != nil {
		return err
	}

	return SuccessResponse(c, updated)
}

// Delete handles DELETE /contacts/:id
func (h *ContactHandler) Delete(c echo.Context) error {
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
