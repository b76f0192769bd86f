// Package domain holds the bid aggregate, its state machine and the bounds
// derived from a project's pricing baseline.
package domain

import (
	"time"

	"github.com/google/uuid"

	"maatwerk_backend/platform/apperr"
)

// Bid statuses. Pending is the only non-terminal state.
const (
	StatusPending  = "Pending"
	StatusAccepted = "Accepted"
	StatusRejected = "Rejected"
)

// Bid is a merchant's competing price and duration offer against a project's
// baseline.
type Bid struct {
	ID         uuid.UUID
	ProjectID  uuid.UUID
	MerchantID uuid.UUID
	PriceCents int64
	Days       int
	Message    string
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DecidedAt  *time.Time
}

// Active reports whether the bid is still open for editing and decisions.
func (b Bid) Active() bool {
	return b.Status == StatusPending
}

// CanTransition reports whether a status transition is allowed. The machine
// is closed: Pending moves to Accepted or Rejected, terminal states never
// move again.
func CanTransition(from, to string) bool {
	if from != StatusPending {
		return false
	}
	return to == StatusAccepted || to == StatusRejected
}

// Bounds are the valid price and days ranges for bids on one project,
// derived from its frozen baseline.
type Bounds struct {
	MinPriceCents int64
	MaxPriceCents int64
	MinDays       int
	// MaxDays is 0 when the project declares no days ceiling.
	MaxDays int
}

// ComputeBounds derives the bid bounds from a project baseline. The price
// range is [baseline, 2x baseline] inclusive; days range [1, projectDays]
// when the project declares a ceiling, otherwise any duration of at least
// one day.
func ComputeBounds(baselineCents int64, projectDays int) Bounds {
	max := baselineCents * 2
	if max < baselineCents {
		max = baselineCents
	}
	b := Bounds{
		MinPriceCents: baselineCents,
		MaxPriceCents: max,
		MinDays:       1,
	}
	if projectDays > 0 {
		b.MaxDays = projectDays
	}
	return b
}

// Validate checks a proposed price and days against the bounds. Violations
// carry the concrete bounds in the message; out-of-range values are never
// clamped.
func (b Bounds) Validate(priceCents int64, days int) error {
	if priceCents < b.MinPriceCents || priceCents > b.MaxPriceCents {
		return apperr.Validationf("price must be between %d and %d", b.MinPriceCents, b.MaxPriceCents)
	}
	if days < b.MinDays {
		return apperr.Validationf("days must be at least %d", b.MinDays)
	}
	if b.MaxDays > 0 && days > b.MaxDays {
		return apperr.Validationf("days must be between %d and %d", b.MinDays, b.MaxDays)
	}
	return nil
}
