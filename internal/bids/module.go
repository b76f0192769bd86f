// Package bids provides the bid negotiation bounded context module.
package bids

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"maatwerk_backend/internal/bids/handler"
	"maatwerk_backend/internal/bids/repository"
	"maatwerk_backend/internal/bids/service"
	"maatwerk_backend/internal/events"
	apphttp "maatwerk_backend/internal/http"
	"maatwerk_backend/platform/config"
	"maatwerk_backend/platform/logger"
	"maatwerk_backend/platform/validator"
)

// Module is the bids bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the bids module.
func NewModule(pool *pgxpool.Pool, projects service.ProjectGateway, bus events.Bus, cfg config.BidPolicyConfig, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(repository.New(pool), projects, bus, cfg, log)
	return &Module{handler: handler.New(svc, val), service: svc}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "bids"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts bid routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Protected.POST("/bids", m.handler.Submit)
	ctx.Protected.PUT("/bids", m.handler.UpdateOwn)
	ctx.Protected.GET("/bids", m.handler.ListMine)
	ctx.Protected.POST("/bids/:id/accept", m.handler.Accept)
	ctx.Protected.POST("/bids/:id/reject", m.handler.Reject)

	ctx.Protected.GET("/projects/:id/bids", m.handler.ListForProject)
	ctx.Protected.GET("/projects/:id/bids/mine", m.handler.MyBid)
}

// Compile-time check that Module implements http.Module.
var _ apphttp.Module = (*Module)(nil)
