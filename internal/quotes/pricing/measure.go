// Package pricing implements the deterministic quoting math: measure
// calculation, tiered price resolution and line-item totals. Everything in
// this package is pure so callers can recompute from full state on every
// change without drift between displayed and submitted numbers.
package pricing

import "maatwerk_backend/internal/catalog/domain"

// clamp floors a raw dimension at zero. Negative input is treated as absent.
func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// Measure derives the scalar (area or linear length) a price per unit is
// multiplied against. The priority order matters: a type that only requires
// one dimension still produces a sane measure when a second incidental
// dimension is present.
func Measure(width, height, length float64) float64 {
	w, h, l := clamp(width), clamp(height), clamp(length)

	switch {
	case w > 0 && h > 0:
		return w * h
	case w > 0 && l > 0:
		return w * l
	case h > 0 && l > 0:
		return h * l
	}

	// Degenerate linear case: the single largest dimension, or 0.
	max := w
	if h > max {
		max = h
	}
	if l > max {
		max = l
	}
	return max
}

// MissingDimensions returns the names of required dimensions that are not
// positive, in a fixed order, for use in validation messages.
func MissingDimensions(width, height, length float64, req domain.Dimensions) []string {
	var missing []string
	if req.Width && clamp(width) == 0 {
		missing = append(missing, "width")
	}
	if req.Height && clamp(height) == 0 {
		missing = append(missing, "height")
	}
	if req.Length && clamp(length) == 0 {
		missing = append(missing, "length")
	}
	return missing
}
