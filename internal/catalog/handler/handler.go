// Package handler exposes the catalog HTTP endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"maatwerk_backend/internal/catalog/service"
	"maatwerk_backend/internal/catalog/transport"
	"maatwerk_backend/platform/httpkit"
	"maatwerk_backend/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// Handler handles HTTP requests for the catalog.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new catalog handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// GetCatalog returns the full authored catalog.
// GET /api/v1/catalog
func (h *Handler) GetCatalog(c *gin.Context) {
	cat, err := h.svc.GetCatalog(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.CatalogResponse{Products: cat.Products})
}

// ReplaceCatalog replaces the authored catalog document.
// PUT /api/v1/admin/catalog
func (h *Handler) ReplaceCatalog(c *gin.Context) {
	var req transport.ReplaceCatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	if err := h.svc.ReplaceCatalog(c.Request.Context(), req.ToDomain()); httpkit.HandleError(c, err) {
		return
	}
	c.Status(http.StatusNoContent)
}
