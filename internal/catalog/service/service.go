// Package service provides business logic for the catalog module.
package service

import (
	"context"
	"fmt"

	"maatwerk_backend/internal/catalog/domain"
	"maatwerk_backend/internal/catalog/repository"
	"maatwerk_backend/platform/apperr"
	"maatwerk_backend/platform/logger"
)

// Service provides read access to the authored catalog plus the admin
// replace contract.
type Service struct {
	repo  repository.Repository
	cache *Cache
	log   *logger.Logger
}

// New creates a new catalog service.
func New(repo repository.Repository, cache *Cache, log *logger.Logger) *Service {
	return &Service{repo: repo, cache: cache, log: log}
}

// GetCatalog returns the catalog, preferring the cache. A database failure is
// returned to the caller; quoting degrades to its legacy flat-rate tier rather
// than crashing, so callers treat the error as a soft failure.
func (s *Service) GetCatalog(ctx context.Context) (domain.Catalog, error) {
	if cat, ok := s.cache.Get(ctx); ok {
		return cat, nil
	}

	cat, err := s.repo.GetCatalog(ctx)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("get catalog: %w", err)
	}

	if err := s.cache.Set(ctx, cat); err != nil {
		s.log.Warn("catalog cache write failed", "error", err)
	}
	return cat, nil
}

// ReplaceCatalog validates and stores a newly authored catalog document.
func (s *Service) ReplaceCatalog(ctx context.Context, cat domain.Catalog) error {
	for _, pt := range cat.Products {
		if pt.ID == "" {
			return apperr.Validation("product type id is required")
		}
		if pt.BasePricePerM2Cents < 0 {
			return apperr.Validationf("product type %q has a negative base price", pt.ID)
		}
		if len(pt.Subtypes) == 0 {
			return apperr.Validationf("product type %q must have at least one subtype", pt.ID)
		}
		for _, st := range pt.Subtypes {
			for _, m := range st.Materials {
				if m.PricePerM2Cents != nil && *m.PricePerM2Cents < 0 {
					return apperr.Validationf("material %q has a negative price override", m.ID)
				}
			}
		}
		for _, a := range pt.Accessories {
			if a.PriceCents < 0 {
				return apperr.Validationf("accessory %q has a negative price", a.ID)
			}
		}
	}

	if err := s.repo.ReplaceCatalog(ctx, cat); err != nil {
		return err
	}

	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn("catalog cache invalidation failed", "error", err)
	}

	s.log.Info("catalog replaced", "productTypes", len(cat.Products))
	return nil
}
