// Package service implements the project lifecycle: creation from a quote,
// editing while still editable, publishing for bidding and deletion.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"

	"maatwerk_backend/internal/events"
	"maatwerk_backend/internal/projects/domain"
	"maatwerk_backend/internal/projects/repository"
	qtransport "maatwerk_backend/internal/quotes/transport"
	"maatwerk_backend/platform/apperr"
	"maatwerk_backend/platform/config"
	"maatwerk_backend/platform/logger"
	"maatwerk_backend/platform/sanitize"
)

// QuoteEngine is the quoting module surface the project lifecycle depends on.
type QuoteEngine interface {
	Calculate(ctx context.Context, req qtransport.QuoteRequest) qtransport.QuoteResponse
	ValidateDimensions(ctx context.Context, req qtransport.QuoteRequest) error
	SaveSnapshot(ctx context.Context, projectID uuid.UUID, derived qtransport.QuoteResponse) error
	Snapshot(ctx context.Context, projectID uuid.UUID) (qtransport.QuoteResponse, error)
	DeleteSnapshot(ctx context.Context, projectID uuid.UUID) error
}

// ExpiryScheduler enqueues the bid-expiry task for a published project. A nil
// scheduler disables expiry (projects then accept bids until resolved).
type ExpiryScheduler interface {
	ScheduleBidExpiry(ctx context.Context, projectID uuid.UUID, at time.Time) error
}

// Service manages the project aggregate.
type Service struct {
	repo      repository.Repository
	quotes    QuoteEngine
	scheduler ExpiryScheduler
	bus       events.Bus
	cfg       config.ProjectConfig
	log       *logger.Logger
}

// New creates a new project service.
func New(repo repository.Repository, quotes QuoteEngine, scheduler ExpiryScheduler, bus events.Bus, cfg config.ProjectConfig, log *logger.Logger) *Service {
	return &Service{repo: repo, quotes: quotes, scheduler: scheduler, bus: bus, cfg: cfg, log: log}
}

// CreateInput is the submit contract: a title plus the full builder state.
type CreateInput struct {
	Title       string
	Description string
	Quote       qtransport.QuoteRequest
}

// Create derives and freezes the quote, then creates the owning project in
// Draft. The derived grand total becomes the immutable bidding baseline once
// the project is published.
func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, in CreateInput) (*domain.Project, qtransport.QuoteResponse, error) {
	if err := s.quotes.ValidateDimensions(ctx, in.Quote); err != nil {
		return nil, qtransport.QuoteResponse{}, err
	}

	derived := s.quotes.Calculate(ctx, in.Quote)

	p := &domain.Project{
		ID:                 uuid.New(),
		OwnerID:            ownerID,
		Title:              sanitize.Text(in.Title),
		Description:        sanitize.Text(in.Description),
		BaselineTotalCents: derived.GrandTotal,
		Days:               derived.Days,
		Status:             domain.StatusDraft,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, qtransport.QuoteResponse{}, err
	}

	if err := s.quotes.SaveSnapshot(ctx, p.ID, derived); err != nil {
		// Without a snapshot the project has no baseline; roll it back.
		if delErr := s.repo.Delete(ctx, p.ID); delErr != nil {
			s.log.Error("orphaned project after snapshot failure", "projectId", p.ID, "error", delErr)
		}
		return nil, qtransport.QuoteResponse{}, err
	}

	s.log.Info("project created", "projectId", p.ID, "ownerId", ownerID, "baseline", p.BaselineTotalCents)
	return p, derived, nil
}

// Update re-derives the quote from the edited builder state and rewrites the
// snapshot and baseline. Stored numbers are never trusted across an edit.
func (s *Service) Update(ctx context.Context, ownerID, id uuid.UUID, in CreateInput) (*domain.Project, qtransport.QuoteResponse, error) {
	p, err := s.ownedEditable(ctx, ownerID, id)
	if err != nil {
		return nil, qtransport.QuoteResponse{}, err
	}

	if err := s.quotes.ValidateDimensions(ctx, in.Quote); err != nil {
		return nil, qtransport.QuoteResponse{}, err
	}
	derived := s.quotes.Calculate(ctx, in.Quote)

	p.Title = sanitize.Text(in.Title)
	p.Description = sanitize.Text(in.Description)
	p.BaselineTotalCents = derived.GrandTotal
	p.Days = derived.Days
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, qtransport.QuoteResponse{}, err
	}
	if err := s.quotes.SaveSnapshot(ctx, p.ID, derived); err != nil {
		return nil, qtransport.QuoteResponse{}, err
	}

	return p, derived, nil
}

// Publish opens a Draft project for bidding and schedules bid expiry at the
// bidding deadline.
func (s *Service) Publish(ctx context.Context, ownerID, id uuid.UUID) (*domain.Project, error) {
	p, err := s.owned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if p.Status != domain.StatusDraft {
		return nil, apperr.Conflict("only draft projects can be published")
	}

	var deadline *time.Time
	if window := s.cfg.GetBidWindow(); window > 0 {
		d := time.Now().Add(window)
		deadline = &d
	}
	if err := s.repo.SetPublished(ctx, p.ID, deadline); err != nil {
		return nil, err
	}
	p.Status = domain.StatusPublished
	p.BiddingDeadline = deadline

	if s.scheduler != nil && deadline != nil {
		if err := s.scheduler.ScheduleBidExpiry(ctx, p.ID, *deadline); err != nil {
			s.log.Error("schedule bid expiry failed", "projectId", p.ID, "error", err)
		}
	}

	s.bus.Publish(ctx, events.ProjectPublished{
		BaseEvent:     events.NewBaseEvent(),
		ProjectID:     p.ID,
		OwnerID:       p.OwnerID,
		BaselineCents: p.BaselineTotalCents,
		Days:          p.Days,
	})

	s.log.Info("project published", "projectId", p.ID)
	return p, nil
}

// Find returns a project without visibility rules, for internal callers such
// as the bids module.
func (s *Service) Find(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	return s.repo.GetByID(ctx, id)
}

// Get returns a project. Open projects are visible to any authenticated user;
// drafts only to their owner.
func (s *Service) Get(ctx context.Context, viewerID, id uuid.UUID) (*domain.Project, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Status == domain.StatusDraft && p.OwnerID != viewerID {
		return nil, apperr.NotFound("project not found")
	}
	return p, nil
}

// Quote returns the builder state reconstructed from the frozen snapshot, for
// the owner's edit flow.
func (s *Service) Quote(ctx context.Context, ownerID, id uuid.UUID) (qtransport.QuoteResponse, error) {
	if _, err := s.owned(ctx, ownerID, id); err != nil {
		return qtransport.QuoteResponse{}, err
	}
	return s.quotes.Snapshot(ctx, id)
}

// ListMine returns the owner's projects.
func (s *Service) ListMine(ctx context.Context, ownerID uuid.UUID) ([]domain.Project, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// ListOpen returns projects currently accepting bids.
func (s *Service) ListOpen(ctx context.Context, limit, offset int) ([]domain.Project, error) {
	return s.repo.ListOpen(ctx, limit, offset)
}

// Delete removes a project that has not entered bidding.
func (s *Service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if _, err := s.ownedEditable(ctx, ownerID, id); err != nil {
		return err
	}
	if err := s.quotes.DeleteSnapshot(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("project deleted", "projectId", id)
	return nil
}

// ShareQR renders a QR code PNG pointing at the public project page.
func (s *Service) ShareQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Status == domain.StatusDraft {
		return nil, apperr.NotFound("project not found")
	}

	url := fmt.Sprintf("%s/projects/%s", s.cfg.GetAppBaseURL(), p.ID)
	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("encode share qr: %w", err)
	}
	return png, nil
}

// MarkInBidding records the first bid arriving on a published project.
func (s *Service) MarkInBidding(ctx context.Context, id uuid.UUID) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.Status != domain.StatusPublished {
		return nil
	}
	return s.repo.UpdateStatus(ctx, id, domain.StatusInBidding)
}

// MarkBidSelected records that the owner accepted a bid.
func (s *Service) MarkBidSelected(ctx context.Context, id uuid.UUID) error {
	return s.repo.UpdateStatus(ctx, id, domain.StatusBidSelected)
}

func (s *Service) owned(ctx context.Context, ownerID, id uuid.UUID) (*domain.Project, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.OwnerID != ownerID {
		return nil, apperr.Forbidden("not your project")
	}
	return p, nil
}

func (s *Service) ownedEditable(ctx context.Context, ownerID, id uuid.UUID) (*domain.Project, error) {
	p, err := s.owned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if !p.Editable() {
		return nil, apperr.Conflict("project can no longer be modified; bidding has started")
	}
	return p, nil
}
