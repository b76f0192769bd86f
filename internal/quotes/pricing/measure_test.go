package pricing

import (
	"testing"

	"maatwerk_backend/internal/catalog/domain"
)

func TestMeasure(t *testing.T) {
	tests := []struct {
		name    string
		w, h, l float64
		want    float64
	}{
		{"width and height give area", 2, 1, 0, 2},
		{"width and height win over length", 2, 3, 9, 6},
		{"width and length when height absent", 2, 0, 4, 8},
		{"height and length when width absent", 0, 3, 4, 12},
		{"single length falls back to linear", 0, 0, 3, 3},
		{"single width falls back to linear", 1.5, 0, 0, 1.5},
		{"largest single dimension wins", 0, 0, 2.5, 2.5},
		{"all zero gives zero", 0, 0, 0, 0},
		{"negative input clamps to zero", -2, -1, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Measure(tt.w, tt.h, tt.l); got != tt.want {
				t.Fatalf("Measure(%v, %v, %v) = %v, want %v", tt.w, tt.h, tt.l, got, tt.want)
			}
		})
	}
}

func TestMissingDimensions(t *testing.T) {
	req := domain.Dimensions{Width: true, Height: true}

	missing := MissingDimensions(0, 2, 0, req)
	if len(missing) != 1 || missing[0] != "width" {
		t.Fatalf("expected [width], got %v", missing)
	}

	if missing := MissingDimensions(2, 1, 0, req); missing != nil {
		t.Fatalf("expected no missing dimensions, got %v", missing)
	}

	all := domain.Dimensions{Width: true, Height: true, Length: true}
	missing = MissingDimensions(0, -1, 0, all)
	if len(missing) != 3 {
		t.Fatalf("expected all three dimensions missing, got %v", missing)
	}
}
