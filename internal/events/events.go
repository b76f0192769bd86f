// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"maatwerk_backend/platform/events"
	"maatwerk_backend/platform/logger"

	"github.com/google/uuid"
)

// Re-export platform types for convenience.
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
	InMemoryBus = events.InMemoryBus
)

// Re-export platform functions.
var NewBaseEvent = events.NewBaseEvent

// NewInMemoryBus creates a new in-memory event bus.
func NewInMemoryBus(log *logger.Logger) *InMemoryBus {
	return events.NewInMemoryBus(log)
}

// =============================================================================
// Project Domain Events
// =============================================================================

// ProjectPublished is published when a customer opens a project for bidding.
type ProjectPublished struct {
	BaseEvent
	ProjectID     uuid.UUID `json:"projectId"`
	OwnerID       uuid.UUID `json:"ownerId"`
	BaselineCents int64     `json:"baselineCents"`
	Days          int       `json:"days"`
}

func (e ProjectPublished) EventName() string { return "projects.published" }

// =============================================================================
// Bid Domain Events
// =============================================================================

// BidSubmitted is published when a merchant places a new bid on a project.
type BidSubmitted struct {
	BaseEvent
	BidID      uuid.UUID `json:"bidId"`
	ProjectID  uuid.UUID `json:"projectId"`
	OwnerID    uuid.UUID `json:"ownerId"`
	MerchantID uuid.UUID `json:"merchantId"`
	PriceCents int64     `json:"priceCents"`
	Days       int       `json:"days"`
}

func (e BidSubmitted) EventName() string { return "bids.submitted" }

// BidAccepted is published when a project owner accepts a pending bid.
type BidAccepted struct {
	BaseEvent
	BidID      uuid.UUID `json:"bidId"`
	ProjectID  uuid.UUID `json:"projectId"`
	MerchantID uuid.UUID `json:"merchantId"`
	PriceCents int64     `json:"priceCents"`
}

func (e BidAccepted) EventName() string { return "bids.accepted" }

// BidRejected is published when a project owner rejects a pending bid, or the
// expiry worker rejects it on their behalf.
type BidRejected struct {
	BaseEvent
	BidID      uuid.UUID `json:"bidId"`
	ProjectID  uuid.UUID `json:"projectId"`
	MerchantID uuid.UUID `json:"merchantId"`
	Expired    bool      `json:"expired"`
}

func (e BidRejected) EventName() string { return "bids.rejected" }
