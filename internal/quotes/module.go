// Package quotes provides the quoting engine bounded context module.
package quotes

import (
	"github.com/jackc/pgx/v5/pgxpool"

	apphttp "maatwerk_backend/internal/http"
	"maatwerk_backend/internal/quotes/handler"
	"maatwerk_backend/internal/quotes/repository"
	"maatwerk_backend/internal/quotes/service"
	"maatwerk_backend/platform/logger"
	"maatwerk_backend/platform/validator"
)

// Module is the quoting bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the quotes module.
func NewModule(pool *pgxpool.Pool, catalog service.CatalogReader, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(catalog, repository.New(pool), log)
	return &Module{handler: handler.New(svc, val), service: svc}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "quotes"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts quoting routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	// Price preview is public; the builder shows a running estimate before
	// the customer has an account.
	ctx.V1.POST("/quotes/calculate", m.handler.Calculate)
}

// Compile-time check that Module implements http.Module.
var _ apphttp.Module = (*Module)(nil)
