package pricing

import (
	"testing"

	"maatwerk_backend/internal/catalog/domain"
)

func TestItemTotal(t *testing.T) {
	tests := []struct {
		name        string
		measure     float64
		price       int64
		qty         int
		accessories int64
		want        int64
	}{
		{"plain area times price", 2, 500, 1, 0, 1000},
		{"factored price", 2, 600, 1, 0, 1200},
		{"accessory added once then scaled by quantity", 2, 500, 3, 20, 3060},
		{"quantity coerced to one", 2, 500, 0, 0, 1000},
		{"negative quantity coerced to one", 2, 500, -4, 0, 1000},
		{"zero measure leaves only accessories", 0, 500, 2, 150, 300},
		{"everything zero", 0, 0, 0, 0, 0},
		{"fractional measure rounds", 1.5, 333, 1, 0, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ItemTotal(tt.measure, tt.price, tt.qty, tt.accessories); got != tt.want {
				t.Fatalf("ItemTotal(%v, %d, %d, %d) = %d, want %d", tt.measure, tt.price, tt.qty, tt.accessories, got, tt.want)
			}
		})
	}
}

func TestItemTotalMonotonicInQuantity(t *testing.T) {
	prev := int64(-1)
	for qty := 1; qty <= 10; qty++ {
		total := ItemTotal(2.5, 480, qty, 35)
		if total < prev {
			t.Fatalf("total decreased from %d to %d at quantity %d", prev, total, qty)
		}
		prev = total
	}
}

func TestItemTotalMonotonicInMeasure(t *testing.T) {
	prev := int64(-1)
	for m := 0.0; m <= 5.0; m += 0.5 {
		total := ItemTotal(m, 480, 1, 0)
		if total < prev {
			t.Fatalf("total decreased from %d to %d at measure %v", prev, total, m)
		}
		prev = total
	}
}

func TestAccessoriesTotal(t *testing.T) {
	pt := domain.ProductType{Accessories: []domain.Accessory{
		{ID: "handle", PriceCents: 20},
		{ID: "lock", PriceCents: 45},
	}}

	if got := AccessoriesTotal(pt, []string{"handle", "lock"}); got != 65 {
		t.Fatalf("expected 65, got %d", got)
	}

	// Duplicates count once; unknown ids price as free.
	if got := AccessoriesTotal(pt, []string{"handle", "handle", "spoiler"}); got != 20 {
		t.Fatalf("expected 20, got %d", got)
	}

	if got := AccessoriesTotal(pt, nil); got != 0 {
		t.Fatalf("expected 0 for no accessories, got %d", got)
	}
}
