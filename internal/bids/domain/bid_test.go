package domain

import (
	"testing"

	"maatwerk_backend/platform/apperr"
)

func TestComputeBounds(t *testing.T) {
	b := ComputeBounds(1000, 14)

	if b.MinPriceCents != 1000 || b.MaxPriceCents != 2000 {
		t.Fatalf("expected price range [1000, 2000], got [%d, %d]", b.MinPriceCents, b.MaxPriceCents)
	}
	if b.MinDays != 1 || b.MaxDays != 14 {
		t.Fatalf("expected days range [1, 14], got [%d, %d]", b.MinDays, b.MaxDays)
	}
}

func TestComputeBoundsNoDaysCeiling(t *testing.T) {
	b := ComputeBounds(1000, 0)
	if b.MaxDays != 0 {
		t.Fatalf("expected unbounded days, got ceiling %d", b.MaxDays)
	}
	if err := b.Validate(1500, 365); err != nil {
		t.Fatalf("any duration of at least one day must pass: %v", err)
	}
}

func TestBoundsValidatePriceInclusive(t *testing.T) {
	b := ComputeBounds(1000, 14)

	tests := []struct {
		price int64
		ok    bool
	}{
		{999, false},
		{1000, true},
		{1500, true},
		{2000, true},
		{2001, false},
	}

	for _, tt := range tests {
		err := b.Validate(tt.price, 7)
		if tt.ok && err != nil {
			t.Fatalf("price %d must be accepted: %v", tt.price, err)
		}
		if !tt.ok {
			if !apperr.Is(err, apperr.KindValidation) {
				t.Fatalf("price %d must be rejected with a validation error, got %v", tt.price, err)
			}
			// Bounds must be spelled out so the constraint is justified.
			if msg := err.Error(); msg != "price must be between 1000 and 2000" {
				t.Fatalf("unexpected message %q", msg)
			}
		}
	}
}

func TestBoundsValidateDays(t *testing.T) {
	b := ComputeBounds(1000, 14)

	tests := []struct {
		days int
		ok   bool
	}{
		{0, false},
		{-3, false},
		{1, true},
		{14, true},
		{15, false},
	}

	for _, tt := range tests {
		err := b.Validate(1500, tt.days)
		if tt.ok && err != nil {
			t.Fatalf("days %d must be accepted: %v", tt.days, err)
		}
		if !tt.ok && !apperr.Is(err, apperr.KindValidation) {
			t.Fatalf("days %d must be rejected, got %v", tt.days, err)
		}
	}
}

func TestComputeBoundsZeroBaseline(t *testing.T) {
	b := ComputeBounds(0, 7)
	if b.MinPriceCents != 0 || b.MaxPriceCents != 0 {
		t.Fatalf("zero baseline must give [0, 0], got [%d, %d]", b.MinPriceCents, b.MaxPriceCents)
	}
	if err := b.Validate(0, 7); err != nil {
		t.Fatalf("the only valid price for a zero baseline is 0: %v", err)
	}
	if err := b.Validate(1, 7); err == nil {
		t.Fatal("price above the range must be rejected")
	}
}

func TestCanTransitionClosure(t *testing.T) {
	statuses := []string{StatusPending, StatusAccepted, StatusRejected}

	allowed := map[[2]string]bool{
		{StatusPending, StatusAccepted}: true,
		{StatusPending, StatusRejected}: true,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			want := allowed[[2]string{from, to}]
			if got := CanTransition(from, to); got != want {
				t.Fatalf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestActive(t *testing.T) {
	if !(Bid{Status: StatusPending}).Active() {
		t.Fatal("pending bids are active")
	}
	if (Bid{Status: StatusAccepted}).Active() || (Bid{Status: StatusRejected}).Active() {
		t.Fatal("terminal bids are not active")
	}
}
