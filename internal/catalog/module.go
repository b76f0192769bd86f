// Package catalog provides the catalog bounded context module.
package catalog

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"maatwerk_backend/internal/catalog/handler"
	"maatwerk_backend/internal/catalog/repository"
	"maatwerk_backend/internal/catalog/service"
	apphttp "maatwerk_backend/internal/http"
	"maatwerk_backend/platform/logger"
	"maatwerk_backend/platform/validator"
)

// Module is the catalog bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule creates and initializes the catalog module. A nil redis client
// disables the cache layer.
func NewModule(pool *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, service.NewCache(redisClient, cacheTTL), log)
	h := handler.New(svc, val)

	return &Module{handler: h, service: svc, repo: repo}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "catalog"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts catalog routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	// The catalog read contract is public: the builder form is usable
	// before login.
	ctx.V1.GET("/catalog", m.handler.GetCatalog)

	ctx.Admin.PUT("/catalog", m.handler.ReplaceCatalog)
}

// Compile-time check that Module implements http.Module.
var _ apphttp.Module = (*Module)(nil)
