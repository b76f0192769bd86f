// Package domain holds the persisted quote snapshot model.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Item is one frozen quote line as persisted at submission time. Position 0
// is the main item; additional items follow in order.
type Item struct {
	ID                  uuid.UUID
	ProjectID           uuid.UUID
	Position            int
	TypeID              string
	SubtypeID           string
	MaterialID          string
	ColorID             string
	Width               float64
	Height              float64
	Length              float64
	Quantity            int
	Days                int
	SelectedAccessories []string
	Description         string
	PricePerMeterCents  int64
	TotalCents          int64
	CreatedAt           time.Time
}

// Quote is the full frozen snapshot for one project.
type Quote struct {
	ProjectID       uuid.UUID
	Items           []Item
	GrandTotalCents int64
}

// GrandTotal sums the item totals. The persisted grand total on the project
// must always equal this; the snapshot is the source of truth.
func GrandTotal(items []Item) int64 {
	var total int64
	for _, it := range items {
		total += it.TotalCents
	}
	return total
}
