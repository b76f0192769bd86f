package pricing

import (
	"testing"

	"maatwerk_backend/internal/catalog/domain"
)

func testRules() Rules {
	return Rules{
		SubtypeFactors: map[string]float64{"single": 1.0, "double": 1.2},
		ColorFactors:   map[string]float64{"white": 1.0, "bronze": 1.10},
		FlatRatesPerM2: map[string]int64{"door": 450, "railing": 180},
	}
}

func testCatalog() domain.Catalog {
	oak := int64(650)
	return domain.Catalog{Products: []domain.ProductType{
		{
			ID:                  "door",
			BasePricePerM2Cents: 500,
			Dimensions:          domain.Dimensions{Width: true, Height: true},
			Subtypes: []domain.Subtype{
				{ID: "single", Materials: []domain.Material{{ID: "pvc"}, {ID: "oak", PricePerM2Cents: &oak}}},
				{ID: "double", Materials: []domain.Material{{ID: "pvc"}}},
			},
			Colors: []domain.Color{{ID: "white"}, {ID: "bronze"}},
		},
	}}
}

func TestResolvePriceMaterialOverrideWins(t *testing.T) {
	sel := domain.Selection{TypeID: "door", SubtypeID: "single", MaterialID: "oak", ColorID: "bronze"}

	// The override is returned verbatim; no factors apply on top.
	if got := ResolvePrice(testCatalog(), sel, testRules()); got != 650 {
		t.Fatalf("expected material override 650, got %d", got)
	}
}

func TestResolvePriceFactoredBase(t *testing.T) {
	tests := []struct {
		name string
		sel  domain.Selection
		want int64
	}{
		{"neutral factors", domain.Selection{TypeID: "door", SubtypeID: "single", MaterialID: "pvc", ColorID: "white"}, 500},
		{"subtype factor", domain.Selection{TypeID: "door", SubtypeID: "double", MaterialID: "pvc", ColorID: "white"}, 600},
		{"subtype and color factors", domain.Selection{TypeID: "door", SubtypeID: "double", MaterialID: "pvc", ColorID: "bronze"}, 660},
		{"unknown subtype defaults to 1.0", domain.Selection{TypeID: "door", SubtypeID: "mystery", ColorID: "white"}, 500},
		{"unknown color defaults to 1.0", domain.Selection{TypeID: "door", SubtypeID: "single", ColorID: "mystery"}, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolvePrice(testCatalog(), tt.sel, testRules()); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestResolvePriceLegacyFlatRate(t *testing.T) {
	// Empty catalog: the fetch failed or the type was never authored.
	sel := domain.Selection{TypeID: "railing", SubtypeID: "single", ColorID: "white"}
	if got := ResolvePrice(domain.Catalog{}, sel, testRules()); got != 180 {
		t.Fatalf("expected legacy flat rate 180, got %d", got)
	}

	// Factors still apply to the flat rate.
	sel = domain.Selection{TypeID: "door", SubtypeID: "double", ColorID: "bronze"}
	if got := ResolvePrice(domain.Catalog{}, sel, testRules()); got != 594 {
		t.Fatalf("expected factored flat rate 594, got %d", got)
	}
}

func TestResolvePriceUnpriceable(t *testing.T) {
	sel := domain.Selection{TypeID: "gazebo"}
	if got := ResolvePrice(domain.Catalog{}, sel, testRules()); got != 0 {
		t.Fatalf("expected 0 for an unpriceable selection, got %d", got)
	}
}

func TestResolvePriceDeterministic(t *testing.T) {
	sel := domain.Selection{TypeID: "door", SubtypeID: "double", MaterialID: "pvc", ColorID: "bronze"}
	cat, rules := testCatalog(), testRules()

	first := ResolvePrice(cat, sel, rules)
	for i := 0; i < 10; i++ {
		if got := ResolvePrice(cat, sel, rules); got != first {
			t.Fatalf("resolution not deterministic: %d then %d", first, got)
		}
	}
}

func TestDefaultRulesEmbedded(t *testing.T) {
	if DefaultRules.SubtypeFactor("double") != 1.2 {
		t.Fatalf("expected embedded double factor 1.2, got %v", DefaultRules.SubtypeFactor("double"))
	}
	if DefaultRules.ColorFactor("nonexistent") != 1.0 {
		t.Fatalf("unknown color must default to 1.0")
	}
	if DefaultRules.FlatRate("door") == 0 {
		t.Fatalf("expected a legacy flat rate for door")
	}
}
