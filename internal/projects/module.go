// Package projects provides the project lifecycle bounded context module.
package projects

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"maatwerk_backend/internal/events"
	apphttp "maatwerk_backend/internal/http"
	"maatwerk_backend/internal/projects/handler"
	"maatwerk_backend/internal/projects/repository"
	"maatwerk_backend/internal/projects/service"
	"maatwerk_backend/platform/config"
	"maatwerk_backend/platform/logger"
	"maatwerk_backend/platform/validator"
)

// Module is the projects bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the projects module. A nil scheduler
// disables bid expiry.
func NewModule(pool *pgxpool.Pool, quotes service.QuoteEngine, scheduler service.ExpiryScheduler, bus events.Bus, cfg config.ProjectConfig, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(repository.New(pool), quotes, scheduler, bus, cfg, log)
	return &Module{handler: handler.New(svc, val), service: svc}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "projects"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts project routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	// The share QR is public; the link it encodes lands on the public
	// project page.
	ctx.V1.GET("/projects/:id/qr", m.handler.ShareQR)

	ctx.Protected.POST("/projects", m.handler.Create)
	ctx.Protected.GET("/projects", m.handler.ListMine)
	ctx.Protected.GET("/projects/open", m.handler.ListOpen)
	ctx.Protected.GET("/projects/:id", m.handler.Get)
	ctx.Protected.GET("/projects/:id/quote", m.handler.GetQuote)
	ctx.Protected.PUT("/projects/:id", m.handler.Update)
	ctx.Protected.POST("/projects/:id/publish", m.handler.Publish)
	ctx.Protected.DELETE("/projects/:id", m.handler.Delete)
}

// Compile-time check that Module implements http.Module.
var _ apphttp.Module = (*Module)(nil)
