// Package domain holds the project aggregate and its status lifecycle.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Project lifecycle statuses. The lifecycle is orthogonal to the status of
// individual bids; it gates whether the owner may still edit or delete.
const (
	StatusDraft       = "Draft"
	StatusPublished   = "Published"
	StatusInBidding   = "InBidding"
	StatusBidSelected = "BidSelected"
	StatusInProgress  = "InProgress"
	StatusCompleted   = "Completed"
	StatusCancelled   = "Cancelled"
)

// Project is a customer's submitted request with its frozen pricing baseline.
type Project struct {
	ID                 uuid.UUID
	OwnerID            uuid.UUID
	Title              string
	Description        string
	BaselineTotalCents int64
	Days               int
	Status             string
	BiddingDeadline    *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Editable reports whether the owner may still edit or delete the project.
// Once bidding has produced state (InBidding and beyond) the baseline is
// immutable; merchants priced against it.
func (p Project) Editable() bool {
	return p.Status == StatusDraft || p.Status == StatusPublished
}

// AcceptsBids reports whether merchants may submit proposals.
func (p Project) AcceptsBids() bool {
	return p.Status == StatusPublished || p.Status == StatusInBidding
}
