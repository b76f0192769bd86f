package pricing

import (
	"math"

	"maatwerk_backend/internal/catalog/domain"
)

// RoundingPolicy converts a float cent amount to an integer cent amount.
type RoundingPolicy func(v float64) int64

// Round is the active rounding policy for all totals. Half away from zero
// matches the observed behaviour; it is a policy slot so it can be corrected
// without touching the algorithm shape.
var Round RoundingPolicy = roundHalfAwayFromZero

func roundHalfAwayFromZero(v float64) int64 {
	return int64(math.Round(v))
}

// AccessoriesTotal sums the flat prices of the selected accessory ids,
// counting each id once regardless of duplicates. Unknown ids price as 0.
func AccessoriesTotal(pt domain.ProductType, ids []string) int64 {
	var total int64
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		total += pt.AccessoryPrice(id)
	}
	return total
}

// ItemTotal computes one configured item's total in cents.
//
// Accessory cost is a flat per-unit add-on, not scaled by measure; quantity is
// coerced to at least 1 so a zero-quantity line is never silently free.
func ItemTotal(measure float64, pricePerUnitCents int64, quantity int, accessoriesCents int64) int64 {
	qty := quantity
	if qty < 1 {
		qty = 1
	}
	total := Round((measure*float64(pricePerUnitCents) + float64(accessoriesCents)) * float64(qty))
	if total < 0 {
		return 0
	}
	return total
}
