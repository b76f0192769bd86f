package repository

import (
	"context"

	"maatwerk_backend/internal/catalog/domain"
)

// Repository defines the persistence contract for the catalog module.
type Repository interface {
	// GetCatalog loads the full authored catalog.
	GetCatalog(ctx context.Context) (domain.Catalog, error)
	// ReplaceCatalog atomically replaces the authored catalog document.
	ReplaceCatalog(ctx context.Context, cat domain.Catalog) error
}
