// Package handler exposes the profile HTTP endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"maatwerk_backend/internal/merchants/service"
	"maatwerk_backend/internal/merchants/transport"
	"maatwerk_backend/platform/httpkit"
	"maatwerk_backend/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// Handler handles HTTP requests for contact profiles.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new profiles handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// UpsertMe creates or replaces the caller's contact profile.
// PUT /api/v1/profile
func (h *Handler) UpsertMe(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	var req transport.UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	p, err := h.svc.Upsert(c.Request.Context(), identity.UserID(), service.UpsertInput{
		DisplayName: req.DisplayName,
		CompanyName: req.CompanyName,
		Email:       req.Email,
		Phone:       req.Phone,
	})
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.FromDomain(*p))
}

// GetMe returns the caller's profile.
// GET /api/v1/profile
func (h *Handler) GetMe(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	p, err := h.svc.Get(c.Request.Context(), identity.UserID())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.FromDomain(*p))
}

// GetPublic returns another user's public profile, for display next to
// their bids.
// GET /api/v1/merchants/:id
func (h *Handler) GetPublic(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid merchant id", nil)
		return
	}

	p, err := h.svc.Get(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.PublicFromDomain(*p))
}
