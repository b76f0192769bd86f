// Package notification turns bid lifecycle events into emails. Delivery is
// best effort: a failed or impossible send is logged and never propagated
// into the flow that committed the state change.
package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"maatwerk_backend/internal/email"
	"maatwerk_backend/internal/events"
	projdomain "maatwerk_backend/internal/projects/domain"
	"maatwerk_backend/platform/logger"
)

// Directory resolves a user's notification address. An empty result means
// the user never filled a contact profile and is skipped.
type Directory interface {
	Email(ctx context.Context, userID uuid.UUID) string
}

// ProjectLookup resolves project titles for the mail copy.
type ProjectLookup interface {
	Find(ctx context.Context, id uuid.UUID) (*projdomain.Project, error)
}

// Service subscribes to bid events and sends the corresponding mails.
type Service struct {
	sender    email.Sender
	directory Directory
	projects  ProjectLookup
	baseURL   string
	log       *logger.Logger
}

// New creates a new notification service. A nil sender disables delivery.
func New(sender email.Sender, directory Directory, projects ProjectLookup, baseURL string, log *logger.Logger) *Service {
	return &Service{sender: sender, directory: directory, projects: projects, baseURL: baseURL, log: log}
}

// Register subscribes the service to the bid lifecycle events.
func (s *Service) Register(bus events.Bus) {
	bus.Subscribe(events.BidSubmitted{}.EventName(), events.HandlerFunc(s.onBidSubmitted))
	bus.Subscribe(events.BidAccepted{}.EventName(), events.HandlerFunc(s.onBidAccepted))
	bus.Subscribe(events.BidRejected{}.EventName(), events.HandlerFunc(s.onBidRejected))
}

func (s *Service) onBidSubmitted(ctx context.Context, e events.Event) error {
	evt, ok := e.(events.BidSubmitted)
	if !ok {
		return nil
	}

	to := s.recipient(ctx, evt.OwnerID, "bid submitted")
	if to == "" || s.sender == nil {
		return nil
	}

	title := s.projectTitle(ctx, evt.ProjectID)
	url := fmt.Sprintf("%s/projects/%s", s.baseURL, evt.ProjectID)
	if err := s.sender.SendBidReceivedEmail(ctx, to, title, evt.PriceCents, evt.Days, url); err != nil {
		s.log.Error("bid received mail failed", "bidId", evt.BidID, "error", err)
	}
	return nil
}

func (s *Service) onBidAccepted(ctx context.Context, e events.Event) error {
	evt, ok := e.(events.BidAccepted)
	if !ok {
		return nil
	}

	to := s.recipient(ctx, evt.MerchantID, "bid accepted")
	if to == "" || s.sender == nil {
		return nil
	}

	title := s.projectTitle(ctx, evt.ProjectID)
	url := fmt.Sprintf("%s/projects/%s", s.baseURL, evt.ProjectID)
	if err := s.sender.SendBidAcceptedEmail(ctx, to, title, evt.PriceCents, url); err != nil {
		s.log.Error("bid accepted mail failed", "bidId", evt.BidID, "error", err)
	}
	return nil
}

func (s *Service) onBidRejected(ctx context.Context, e events.Event) error {
	evt, ok := e.(events.BidRejected)
	if !ok {
		return nil
	}

	to := s.recipient(ctx, evt.MerchantID, "bid rejected")
	if to == "" || s.sender == nil {
		return nil
	}

	title := s.projectTitle(ctx, evt.ProjectID)
	if err := s.sender.SendBidRejectedEmail(ctx, to, title, evt.Expired); err != nil {
		s.log.Error("bid rejected mail failed", "bidId", evt.BidID, "error", err)
	}
	return nil
}

func (s *Service) recipient(ctx context.Context, userID uuid.UUID, kind string) string {
	to := s.directory.Email(ctx, userID)
	if to == "" {
		s.log.Debug("no contact profile, skipping mail", "userId", userID, "kind", kind)
	}
	return to
}

func (s *Service) projectTitle(ctx context.Context, projectID uuid.UUID) string {
	p, err := s.projects.Find(ctx, projectID)
	if err != nil || p.Title == "" {
		return "uw project"
	}
	return p.Title
}
