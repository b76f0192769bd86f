// Package handler exposes the quoting HTTP endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"maatwerk_backend/internal/quotes/service"
	"maatwerk_backend/internal/quotes/transport"
	"maatwerk_backend/platform/httpkit"
	"maatwerk_backend/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// Handler handles HTTP requests for quoting.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new quotes handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Calculate derives a price preview for the current builder state without
// persisting anything.
// POST /api/v1/quotes/calculate
func (h *Handler) Calculate(c *gin.Context) {
	var req transport.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	httpkit.OK(c, h.svc.Calculate(c.Request.Context(), req))
}
