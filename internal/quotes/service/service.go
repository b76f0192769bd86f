// Package service implements the quoting engine: derivation, validation and
// snapshot persistence.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	catdomain "maatwerk_backend/internal/catalog/domain"
	"maatwerk_backend/internal/quotes/domain"
	"maatwerk_backend/internal/quotes/pricing"
	"maatwerk_backend/internal/quotes/repository"
	"maatwerk_backend/internal/quotes/transport"
	"maatwerk_backend/platform/apperr"
	"maatwerk_backend/platform/logger"
	"maatwerk_backend/platform/sanitize"
)

// CatalogReader is the catalog module surface the quoting engine depends on.
type CatalogReader interface {
	GetCatalog(ctx context.Context) (catdomain.Catalog, error)
}

// Service derives quotes from builder state and manages frozen snapshots.
type Service struct {
	catalog CatalogReader
	repo    repository.Repository
	rules   pricing.Rules
	log     *logger.Logger
}

// New creates a new quoting service using the embedded legacy rule table.
func New(catalog CatalogReader, repo repository.Repository, log *logger.Logger) *Service {
	return &Service{catalog: catalog, repo: repo, rules: pricing.DefaultRules, log: log}
}

// loadCatalog fetches the catalog, degrading to an empty one on failure so
// quoting continues on the legacy flat-rate tier.
func (s *Service) loadCatalog(ctx context.Context) catdomain.Catalog {
	cat, err := s.catalog.GetCatalog(ctx)
	if err != nil {
		s.log.Warn("catalog unavailable, quoting on legacy rates", "error", err)
		return catdomain.Catalog{}
	}
	return cat
}

// Calculate derives the full quote for a builder state. Pure preview: nothing
// is persisted.
func (s *Service) Calculate(ctx context.Context, req transport.QuoteRequest) transport.QuoteResponse {
	return DeriveQuote(s.loadCatalog(ctx), req, s.rules)
}

// ValidateDimensions checks every item against its product type's dimension
// requirements. Missing dimensions block submission with a concrete reason;
// the preview endpoint deliberately skips this so the builder can show a
// running estimate while the form is incomplete.
func (s *Service) ValidateDimensions(ctx context.Context, req transport.QuoteRequest) error {
	cat := s.loadCatalog(ctx)
	if len(cat.Products) == 0 {
		return nil
	}

	if err := validateItemDimensions(cat, req.QuoteItemRequest); err != nil {
		return err
	}
	for i, it := range req.Items {
		if err := validateItemDimensions(cat, it); err != nil {
			return apperr.Validationf("additional item %d: %v", i+1, err)
		}
	}
	return nil
}

func validateItemDimensions(cat catdomain.Catalog, it transport.QuoteItemRequest) error {
	pt, ok := cat.TypeByID(it.Type)
	if !ok {
		return nil
	}
	missing := pricing.MissingDimensions(it.Width, it.Height, it.Length, pt.Dimensions)
	if len(missing) == 0 {
		return nil
	}
	return apperr.Validationf("%s requires %s", pt.ID, strings.Join(missing, ", "))
}

// SaveSnapshot freezes a derived quote as the project's pricing baseline.
func (s *Service) SaveSnapshot(ctx context.Context, projectID uuid.UUID, derived transport.QuoteResponse) error {
	items := make([]domain.Item, 0, 1+len(derived.Items))
	items = append(items, snapshotItem(projectID, 0, derived.QuoteItemResponse))
	for i, it := range derived.Items {
		items = append(items, snapshotItem(projectID, i+1, it))
	}

	if err := s.repo.ReplaceForProject(ctx, projectID, items); err != nil {
		return fmt.Errorf("save quote snapshot: %w", err)
	}
	return nil
}

func snapshotItem(projectID uuid.UUID, position int, it transport.QuoteItemResponse) domain.Item {
	return domain.Item{
		ID:                  uuid.New(),
		ProjectID:           projectID,
		Position:            position,
		TypeID:              it.Type,
		SubtypeID:           it.Psubtype,
		MaterialID:          it.Material,
		ColorID:             it.Color,
		Width:               it.Width,
		Height:              it.Height,
		Length:              it.Length,
		Quantity:            it.Quantity,
		Days:                it.Days,
		SelectedAccessories: it.SelectedAcc,
		Description:         sanitize.Text(it.Description),
		PricePerMeterCents:  it.PricePerMeter,
		TotalCents:          it.Total,
	}
}

// Snapshot reconstructs the builder state from a persisted snapshot. The edit
// flow re-derives prices from this state instead of trusting the stored
// numbers, which are kept only as the bidding baseline.
func (s *Service) Snapshot(ctx context.Context, projectID uuid.UUID) (transport.QuoteResponse, error) {
	items, err := s.repo.ListForProject(ctx, projectID)
	if err != nil {
		return transport.QuoteResponse{}, fmt.Errorf("load quote snapshot: %w", err)
	}
	if len(items) == 0 {
		return transport.QuoteResponse{}, apperr.NotFound("quote not found")
	}

	resp := transport.QuoteResponse{QuoteItemResponse: snapshotResponse(items[0])}
	for _, it := range items[1:] {
		resp.Items = append(resp.Items, snapshotResponse(it))
	}
	resp.GrandTotal = domain.GrandTotal(items)
	return resp, nil
}

func snapshotResponse(it domain.Item) transport.QuoteItemResponse {
	return transport.QuoteItemResponse{
		Type:          it.TypeID,
		Psubtype:      it.SubtypeID,
		Material:      it.MaterialID,
		Color:         it.ColorID,
		Width:         it.Width,
		Height:        it.Height,
		Length:        it.Length,
		Quantity:      it.Quantity,
		Days:          it.Days,
		PricePerMeter: it.PricePerMeterCents,
		Total:         it.TotalCents,
		SelectedAcc:   it.SelectedAccessories,
		Description:   it.Description,
	}
}

// DeleteSnapshot removes a project's snapshot.
func (s *Service) DeleteSnapshot(ctx context.Context, projectID uuid.UUID) error {
	return s.repo.DeleteForProject(ctx, projectID)
}
