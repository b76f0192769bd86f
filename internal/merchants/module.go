// Package merchants provides the contact profile bounded context module.
package merchants

import (
	"github.com/jackc/pgx/v5/pgxpool"

	apphttp "maatwerk_backend/internal/http"
	"maatwerk_backend/internal/merchants/handler"
	"maatwerk_backend/internal/merchants/repository"
	"maatwerk_backend/internal/merchants/service"
	"maatwerk_backend/platform/logger"
	"maatwerk_backend/platform/validator"
)

// Module is the profiles bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the merchants module.
func NewModule(pool *pgxpool.Pool, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(repository.New(pool), log)
	return &Module{handler: handler.New(svc, val), service: svc}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "merchants"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts profile routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Protected.PUT("/profile", m.handler.UpsertMe)
	ctx.Protected.GET("/profile", m.handler.GetMe)
	ctx.Protected.GET("/merchants/:id", m.handler.GetPublic)
}

// Compile-time check that Module implements http.Module.
var _ apphttp.Module = (*Module)(nil)
