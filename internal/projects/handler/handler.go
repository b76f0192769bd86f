// Package handler exposes the project HTTP endpoints.
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"maatwerk_backend/internal/projects/service"
	"maatwerk_backend/internal/projects/transport"
	"maatwerk_backend/platform/httpkit"
	"maatwerk_backend/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgInvalidID        = "invalid project id"
)

// Handler handles HTTP requests for projects.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new projects handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

func (h *Handler) bindSubmit(c *gin.Context) (transport.SubmitProjectRequest, bool) {
	var req transport.SubmitProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return req, false
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return req, false
	}
	return req, true
}

func projectID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return uuid.Nil, false
	}
	return id, true
}

// Create submits the builder state as a new draft project.
// POST /api/v1/projects
func (h *Handler) Create(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}
	req, ok := h.bindSubmit(c)
	if !ok {
		return
	}

	p, derived, err := h.svc.Create(c.Request.Context(), identity.UserID(), service.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Quote:       req.QuoteRequest,
	})
	if httpkit.HandleError(c, err) {
		return
	}

	resp := transport.FromDomain(*p)
	resp.Quote = &derived
	httpkit.Created(c, resp)
}

// Update resubmits the builder state for an editable project.
// PUT /api/v1/projects/:id
func (h *Handler) Update(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}
	id, ok := projectID(c)
	if !ok {
		return
	}
	req, ok := h.bindSubmit(c)
	if !ok {
		return
	}

	p, derived, err := h.svc.Update(c.Request.Context(), identity.UserID(), id, service.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Quote:       req.QuoteRequest,
	})
	if httpkit.HandleError(c, err) {
		return
	}

	resp := transport.FromDomain(*p)
	resp.Quote = &derived
	httpkit.OK(c, resp)
}

// Publish opens a draft project for bidding.
// POST /api/v1/projects/:id/publish
func (h *Handler) Publish(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}
	id, ok := projectID(c)
	if !ok {
		return
	}

	p, err := h.svc.Publish(c.Request.Context(), identity.UserID(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.FromDomain(*p))
}

// Get returns one project.
// GET /api/v1/projects/:id
func (h *Handler) Get(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}
	id, ok := projectID(c)
	if !ok {
		return
	}

	p, err := h.svc.Get(c.Request.Context(), identity.UserID(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.FromDomain(*p))
}

// GetQuote returns the builder state reconstructed from the frozen snapshot,
// for the owner's edit flow.
// GET /api/v1/projects/:id/quote
func (h *Handler) GetQuote(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}
	id, ok := projectID(c)
	if !ok {
		return
	}

	quote, err := h.svc.Quote(c.Request.Context(), identity.UserID(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, quote)
}

// ListMine returns the caller's projects.
// GET /api/v1/projects
func (h *Handler) ListMine(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	projects, err := h.svc.ListMine(c.Request.Context(), identity.UserID())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.FromDomainList(projects))
}

// ListOpen returns projects currently accepting bids, for merchants browsing
// work.
// GET /api/v1/projects/open
func (h *Handler) ListOpen(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	projects, err := h.svc.ListOpen(c.Request.Context(), limit, offset)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.FromDomainList(projects))
}

// Delete removes a project that has not entered bidding.
// DELETE /api/v1/projects/:id
func (h *Handler) Delete(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}
	id, ok := projectID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), identity.UserID(), id); httpkit.HandleError(c, err) {
		return
	}
	c.Status(http.StatusNoContent)
}

// ShareQR renders the public share link of a project as a QR PNG.
// GET /api/v1/projects/:id/qr
func (h *Handler) ShareQR(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	png, err := h.svc.ShareQR(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
