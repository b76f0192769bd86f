// Package service implements bid submission, the owner's accept/reject
// decisions and worker-driven expiry.
package service

import (
	"context"

	"github.com/google/uuid"

	"maatwerk_backend/internal/bids/domain"
	"maatwerk_backend/internal/bids/repository"
	"maatwerk_backend/internal/events"
	projdomain "maatwerk_backend/internal/projects/domain"
	"maatwerk_backend/platform/apperr"
	"maatwerk_backend/platform/config"
	"maatwerk_backend/platform/logger"
	"maatwerk_backend/platform/sanitize"
)

// ProjectGateway is the projects module surface the bid lifecycle depends on.
type ProjectGateway interface {
	Find(ctx context.Context, id uuid.UUID) (*projdomain.Project, error)
	MarkInBidding(ctx context.Context, id uuid.UUID) error
	MarkBidSelected(ctx context.Context, id uuid.UUID) error
}

// Service manages the bid lifecycle against project baselines.
type Service struct {
	repo     repository.Repository
	projects ProjectGateway
	bus      events.Bus
	cfg      config.BidPolicyConfig
	log      *logger.Logger
}

// New creates a new bid service.
func New(repo repository.Repository, projects ProjectGateway, bus events.Bus, cfg config.BidPolicyConfig, log *logger.Logger) *Service {
	return &Service{repo: repo, projects: projects, bus: bus, cfg: cfg, log: log}
}

// SubmitInput is a merchant's proposal against a project.
type SubmitInput struct {
	ProjectID  uuid.UUID
	PriceCents int64
	Days       int
	Message    string
}

// Submit places a new bid. The price must fall inside the bounds derived
// from the project's frozen baseline, the days inside the project's ceiling,
// and the merchant must not already hold a pending bid. The precondition
// check here is a guard for the common case; the database's partial unique
// index is the authority under concurrency.
func (s *Service) Submit(ctx context.Context, merchantID uuid.UUID, in SubmitInput) (*domain.Bid, error) {
	p, err := s.projects.Find(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}
	if p.OwnerID == merchantID {
		return nil, apperr.Forbidden("you cannot bid on your own project")
	}
	if !p.AcceptsBids() {
		return nil, apperr.Conflict("project is not accepting bids")
	}

	bounds := domain.ComputeBounds(p.BaselineTotalCents, p.Days)
	if err := bounds.Validate(in.PriceCents, in.Days); err != nil {
		return nil, err
	}

	if existing, err := s.repo.ActiveByProjectAndMerchant(ctx, in.ProjectID, merchantID); err == nil {
		return nil, apperr.Conflict("you already have an active bid on this project; edit your existing offer").
			WithDetails(map[string]string{"bidId": existing.ID.String()})
	} else if !apperr.Is(err, apperr.KindNotFound) {
		return nil, err
	}

	b := &domain.Bid{
		ID:         uuid.New(),
		ProjectID:  in.ProjectID,
		MerchantID: merchantID,
		PriceCents: in.PriceCents,
		Days:       in.Days,
		Message:    sanitize.Text(in.Message),
		Status:     domain.StatusPending,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	if err := s.projects.MarkInBidding(ctx, p.ID); err != nil {
		s.log.Error("mark project in bidding failed", "projectId", p.ID, "error", err)
	}

	s.bus.Publish(ctx, events.BidSubmitted{
		BaseEvent:  events.NewBaseEvent(),
		BidID:      b.ID,
		ProjectID:  p.ID,
		OwnerID:    p.OwnerID,
		MerchantID: merchantID,
		PriceCents: b.PriceCents,
		Days:       b.Days,
	})

	s.log.Info("bid submitted", "bidId", b.ID, "projectId", p.ID, "price", b.PriceCents)
	return b, nil
}

// UpdateOwn edits the merchant's still-pending bid on a project, re-validated
// against the same bounds.
func (s *Service) UpdateOwn(ctx context.Context, merchantID uuid.UUID, in SubmitInput) (*domain.Bid, error) {
	p, err := s.projects.Find(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}
	if !p.AcceptsBids() {
		return nil, apperr.Conflict("project is not accepting bids")
	}

	bounds := domain.ComputeBounds(p.BaselineTotalCents, p.Days)
	if err := bounds.Validate(in.PriceCents, in.Days); err != nil {
		return nil, err
	}

	b, err := s.repo.ActiveByProjectAndMerchant(ctx, in.ProjectID, merchantID)
	if err != nil {
		return nil, err
	}

	b.PriceCents = in.PriceCents
	b.Days = in.Days
	b.Message = sanitize.Text(in.Message)
	if err := s.repo.UpdatePending(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Accept marks a pending bid accepted. Owner only; the project moves to
// BidSelected and, when the policy is enabled, sibling pending bids are
// rejected.
func (s *Service) Accept(ctx context.Context, ownerID, bidID uuid.UUID) (*domain.Bid, error) {
	b, p, err := s.decidable(ctx, ownerID, bidID)
	if err != nil {
		return nil, err
	}

	ok, err := s.repo.Decide(ctx, b.ID, domain.StatusAccepted)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.Conflict("bid has already been decided")
	}
	b.Status = domain.StatusAccepted

	if err := s.projects.MarkBidSelected(ctx, p.ID); err != nil {
		s.log.Error("mark project bid selected failed", "projectId", p.ID, "error", err)
	}

	if s.cfg.GetBidAutoRejectSiblings() {
		siblings, err := s.repo.RejectPendingSiblings(ctx, p.ID, b.ID)
		if err != nil {
			s.log.Error("auto-reject sibling bids failed", "projectId", p.ID, "error", err)
		}
		for _, sib := range siblings {
			s.publishRejected(ctx, sib, false)
		}
	}

	s.bus.Publish(ctx, events.BidAccepted{
		BaseEvent:  events.NewBaseEvent(),
		BidID:      b.ID,
		ProjectID:  p.ID,
		MerchantID: b.MerchantID,
		PriceCents: b.PriceCents,
	})

	s.log.Info("bid accepted", "bidId", b.ID, "projectId", p.ID)
	return b, nil
}

// Reject marks a pending bid rejected. Owner only.
func (s *Service) Reject(ctx context.Context, ownerID, bidID uuid.UUID) (*domain.Bid, error) {
	b, _, err := s.decidable(ctx, ownerID, bidID)
	if err != nil {
		return nil, err
	}

	ok, err := s.repo.Decide(ctx, b.ID, domain.StatusRejected)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.Conflict("bid has already been decided")
	}
	b.Status = domain.StatusRejected

	s.publishRejected(ctx, *b, false)
	s.log.Info("bid rejected", "bidId", b.ID, "projectId", b.ProjectID)
	return b, nil
}

// ListForProject returns a project's bids. The owner sees all of them;
// anyone else sees only their own.
func (s *Service) ListForProject(ctx context.Context, viewerID, projectID uuid.UUID) ([]domain.Bid, error) {
	p, err := s.projects.Find(ctx, projectID)
	if err != nil {
		return nil, err
	}

	bids, err := s.repo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if p.OwnerID == viewerID {
		return bids, nil
	}

	var own []domain.Bid
	for _, b := range bids {
		if b.MerchantID == viewerID {
			own = append(own, b)
		}
	}
	return own, nil
}

// ListMine returns all of the merchant's bids.
func (s *Service) ListMine(ctx context.Context, merchantID uuid.UUID) ([]domain.Bid, error) {
	return s.repo.ListByMerchant(ctx, merchantID)
}

// MyBid returns the merchant's pending bid on a project, for the edit
// affordance.
func (s *Service) MyBid(ctx context.Context, merchantID, projectID uuid.UUID) (*domain.Bid, error) {
	return s.repo.ActiveByProjectAndMerchant(ctx, projectID, merchantID)
}

// ExpireForProject rejects all pending bids on a project past its bidding
// deadline. Called by the background worker.
func (s *Service) ExpireForProject(ctx context.Context, projectID uuid.UUID) (int, error) {
	p, err := s.projects.Find(ctx, projectID)
	if err != nil {
		return 0, err
	}
	// A project that already selected a bid, or never opened, has nothing to
	// expire.
	if !p.AcceptsBids() {
		return 0, nil
	}

	expired, err := s.repo.ExpirePending(ctx, projectID)
	if err != nil {
		return 0, err
	}
	for _, b := range expired {
		s.publishRejected(ctx, b, true)
	}
	if len(expired) > 0 {
		s.log.Info("expired pending bids", "projectId", projectID, "count", len(expired))
	}
	return len(expired), nil
}

func (s *Service) decidable(ctx context.Context, ownerID, bidID uuid.UUID) (*domain.Bid, *projdomain.Project, error) {
	b, err := s.repo.GetByID(ctx, bidID)
	if err != nil {
		return nil, nil, err
	}
	p, err := s.projects.Find(ctx, b.ProjectID)
	if err != nil {
		return nil, nil, err
	}
	if p.OwnerID != ownerID {
		return nil, nil, apperr.Forbidden("only the project owner can decide on bids")
	}
	if !b.Active() {
		return nil, nil, apperr.Conflict("bid has already been decided")
	}
	return b, p, nil
}

func (s *Service) publishRejected(ctx context.Context, b domain.Bid, expired bool) {
	s.bus.Publish(ctx, events.BidRejected{
		BaseEvent:  events.NewBaseEvent(),
		BidID:      b.ID,
		ProjectID:  b.ProjectID,
		MerchantID: b.MerchantID,
		Expired:    expired,
	})
}
