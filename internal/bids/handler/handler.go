// Package handler exposes the bid HTTP endpoints.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"maatwerk_backend/internal/bids/domain"
	"maatwerk_backend/internal/bids/service"
	"maatwerk_backend/internal/bids/transport"
	"maatwerk_backend/platform/httpkit"
	"maatwerk_backend/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgInvalidID        = "invalid id"
)

// Handler handles HTTP requests for bids.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new bids handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

func (h *Handler) bindSubmit(c *gin.Context) (transport.SubmitBidRequest, bool) {
	var req transport.SubmitBidRequest
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

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return uuid.Nil, false
	}
	return id, true
}

// Submit places a new bid on a project.
// POST /api/v1/bids
func (h *Handler) Submit(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}
	req, ok := h.bindSubmit(c)
	if !ok {
		return
	}

	b, err := h.svc.Submit(c.Request.Context(), identity.UserID(), service.SubmitInput{
		ProjectID:  req.ProjectID,
		PriceCents: req.Price,
		Days:       req.Days,
		Message:    req.Message,
	})
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.Created(c, transport.FromDomain(*b))
}

// UpdateOwn edits the caller's pending bid on a project.
// PUT /api/v1/bids
func (h *Handler) UpdateOwn(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}
	req, ok := h.bindSubmit(c)
	if !ok {
		return
	}

	b, err := h.svc.UpdateOwn(c.Request.Context(), identity.UserID(), service.SubmitInput{
		ProjectID:  req.ProjectID,
		PriceCents: req.Price,
		Days:       req.Days,
		Message:    req.Message,
	})
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.FromDomain(*b))
}

// Accept accepts a pending bid. Project owner only.
// POST /api/v1/bids/:id/accept
func (h *Handler) Accept(c *gin.Context) {
	h.decide(c, h.svc.Accept)
}

// Reject rejects a pending bid. Project owner only.
// POST /api/v1/bids/:id/reject
func (h *Handler) Reject(c *gin.Context) {
	h.decide(c, h.svc.Reject)
}

func (h *Handler) decide(c *gin.Context, decide func(ctx context.Context, ownerID, bidID uuid.UUID) (*domain.Bid, error)) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	b, err := decide(c.Request.Context(), identity.UserID(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.FromDomain(*b))
}

// ListForProject returns a project's bids. The owner sees all of them, a
// merchant only their own.
// GET /api/v1/projects/:id/bids
func (h *Handler) ListForProject(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	bids, err := h.svc.ListForProject(c.Request.Context(), identity.UserID(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.FromDomainList(bids))
}

// ListMine returns the caller's bids across all projects.
// GET /api/v1/bids
func (h *Handler) ListMine(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	bids, err := h.svc.ListMine(c.Request.Context(), identity.UserID())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.FromDomainList(bids))
}

// MyBid returns the caller's pending bid on a project, for the edit
// affordance.
// GET /api/v1/projects/:id/bids/mine
func (h *Handler) MyBid(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	b, err := h.svc.MyBid(c.Request.Context(), identity.UserID(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.FromDomain(*b))
}
