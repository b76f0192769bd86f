package repository

import (
	"context"

	"github.com/google/uuid"

	"maatwerk_backend/internal/bids/domain"
)

// Repository persists bids. The database carries the authority for the
// one-active-bid-per-merchant rule via a partial unique index; service-level
// checks are a best-effort guard against the common case.
type Repository interface {
	Create(ctx context.Context, b *domain.Bid) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Bid, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Bid, error)
	ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]domain.Bid, error)
	// ActiveByProjectAndMerchant returns the merchant's pending bid on a
	// project, or a not found error.
	ActiveByProjectAndMerchant(ctx context.Context, projectID, merchantID uuid.UUID) (*domain.Bid, error)
	// UpdatePending rewrites price, days and message of a still-pending bid.
	UpdatePending(ctx context.Context, b *domain.Bid) error
	// Decide transitions a pending bid to a terminal status. Returns false
	// when the bid was not pending (the transition is closed).
	Decide(ctx context.Context, id uuid.UUID, status string) (bool, error)
	// RejectPendingSiblings rejects all pending bids on a project except one,
	// returning the rejected bids.
	RejectPendingSiblings(ctx context.Context, projectID, exceptID uuid.UUID) ([]domain.Bid, error)
	// ExpirePending rejects all pending bids on a project, returning them.
	ExpirePending(ctx context.Context, projectID uuid.UUID) ([]domain.Bid, error)
}
