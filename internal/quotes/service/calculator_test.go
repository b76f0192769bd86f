package service

import (
	"testing"

	catdomain "maatwerk_backend/internal/catalog/domain"
	"maatwerk_backend/internal/quotes/pricing"
	"maatwerk_backend/internal/quotes/transport"
)

func testRules() pricing.Rules {
	return pricing.Rules{
		SubtypeFactors: map[string]float64{"single": 1.0, "double": 1.2},
		ColorFactors:   map[string]float64{"white": 1.0, "bronze": 1.10},
		FlatRatesPerM2: map[string]int64{"door": 450, "railing": 180},
	}
}

func testCatalog() catdomain.Catalog {
	return catdomain.Catalog{Products: []catdomain.ProductType{
		{
			ID:                  "door",
			BasePricePerM2Cents: 500,
			Dimensions:          catdomain.Dimensions{Width: true, Height: true},
			Subtypes: []catdomain.Subtype{
				{ID: "single", Materials: []catdomain.Material{{ID: "pvc"}}},
				{ID: "double", Materials: []catdomain.Material{{ID: "pvc"}}},
			},
			Colors:      []catdomain.Color{{ID: "white"}, {ID: "bronze"}},
			Accessories: []catdomain.Accessory{{ID: "handle", PriceCents: 20}},
		},
		{
			ID:                  "railing",
			BasePricePerM2Cents: 180,
			Dimensions:          catdomain.Dimensions{Length: true},
			Subtypes:            []catdomain.Subtype{{ID: "single", Materials: []catdomain.Material{{ID: "steel"}}}},
		},
	}}
}

func mainItem() transport.QuoteItemRequest {
	return transport.QuoteItemRequest{
		Type:     "door",
		Psubtype: "single",
		Material: "pvc",
		Color:    "white",
		Width:    2,
		Height:   1,
		Quantity: 1,
		Days:     14,
	}
}

func TestDeriveQuoteMainItem(t *testing.T) {
	resp := DeriveQuote(testCatalog(), transport.QuoteRequest{QuoteItemRequest: mainItem()}, testRules())

	if resp.PricePerMeter != 500 {
		t.Fatalf("expected price 500, got %d", resp.PricePerMeter)
	}
	if resp.Total != 1000 {
		t.Fatalf("expected total 1000, got %d", resp.Total)
	}
	if resp.GrandTotal != 1000 {
		t.Fatalf("expected grand total 1000, got %d", resp.GrandTotal)
	}
}

func TestDeriveQuoteSubtypeFactor(t *testing.T) {
	item := mainItem()
	item.Psubtype = "double"

	resp := DeriveQuote(testCatalog(), transport.QuoteRequest{QuoteItemRequest: item}, testRules())
	if resp.PricePerMeter != 600 {
		t.Fatalf("expected factored price 600, got %d", resp.PricePerMeter)
	}
	if resp.Total != 1200 {
		t.Fatalf("expected total 1200, got %d", resp.Total)
	}
}

func TestDeriveQuoteAccessoriesAndQuantity(t *testing.T) {
	item := mainItem()
	item.Quantity = 3
	item.SelectedAcc = []string{"handle"}

	resp := DeriveQuote(testCatalog(), transport.QuoteRequest{QuoteItemRequest: item}, testRules())
	if resp.Total != 3060 {
		t.Fatalf("expected total 3060, got %d", resp.Total)
	}
}

func TestDeriveQuoteAdditionalItems(t *testing.T) {
	req := transport.QuoteRequest{
		QuoteItemRequest: mainItem(),
		Items: []transport.QuoteItemRequest{
			{Type: "railing", Psubtype: "single", Material: "steel", Length: 3, Quantity: 1, Days: 99},
		},
	}

	resp := DeriveQuote(testCatalog(), req, testRules())

	if len(resp.Items) != 1 {
		t.Fatalf("expected 1 additional item, got %d", len(resp.Items))
	}
	// Linear measure 3 at railing base 180.
	if resp.Items[0].Total != 540 {
		t.Fatalf("expected railing total 540, got %d", resp.Items[0].Total)
	}
	if resp.GrandTotal != resp.Total+resp.Items[0].Total {
		t.Fatalf("grand total %d does not equal sum of items", resp.GrandTotal)
	}
	// Additional items follow the main item's days, not their own.
	if resp.Items[0].Days != 14 {
		t.Fatalf("expected additional item days 14, got %d", resp.Items[0].Days)
	}
}

func TestDeriveQuoteReconcilesStaleSelection(t *testing.T) {
	item := mainItem()
	item.Psubtype = "removed"
	item.Material = "asbestos"
	item.Color = "plaid"

	resp := DeriveQuote(testCatalog(), transport.QuoteRequest{QuoteItemRequest: item}, testRules())

	if resp.Psubtype != "single" || resp.Material != "pvc" || resp.Color != "white" {
		t.Fatalf("expected selection reset to first options, got %q %q %q", resp.Psubtype, resp.Material, resp.Color)
	}
	if resp.Total != 1000 {
		t.Fatalf("expected reconciled total 1000, got %d", resp.Total)
	}
}

func TestDeriveQuoteDegradesWithoutCatalog(t *testing.T) {
	item := mainItem()

	resp := DeriveQuote(catdomain.Catalog{}, transport.QuoteRequest{QuoteItemRequest: item}, testRules())

	// Legacy flat rate for doors keeps quoting alive.
	if resp.PricePerMeter != 450 {
		t.Fatalf("expected legacy rate 450, got %d", resp.PricePerMeter)
	}
	if resp.Type != "door" {
		t.Fatalf("degraded derivation must keep the raw type, got %q", resp.Type)
	}
}

func TestDeriveQuoteIgnoresClientComputedNumbers(t *testing.T) {
	item := mainItem()
	item.PricePerMeter = 1
	item.Total = 1

	resp := DeriveQuote(testCatalog(), transport.QuoteRequest{QuoteItemRequest: item}, testRules())
	if resp.PricePerMeter != 500 || resp.Total != 1000 {
		t.Fatalf("client-supplied numbers leaked into derivation: price %d total %d", resp.PricePerMeter, resp.Total)
	}
}

func TestDeriveQuoteDeterministic(t *testing.T) {
	req := transport.QuoteRequest{
		QuoteItemRequest: mainItem(),
		Items: []transport.QuoteItemRequest{
			{Type: "railing", Psubtype: "single", Length: 3, Quantity: 2},
		},
	}
	cat, rules := testCatalog(), testRules()

	first := DeriveQuote(cat, req, rules)
	for i := 0; i < 5; i++ {
		if got := DeriveQuote(cat, req, rules); got.GrandTotal != first.GrandTotal {
			t.Fatalf("derivation not deterministic: %d then %d", first.GrandTotal, got.GrandTotal)
		}
	}
}

func TestDeriveQuoteDedupesAccessories(t *testing.T) {
	item := mainItem()
	item.SelectedAcc = []string{"handle", "handle", ""}

	resp := DeriveQuote(testCatalog(), transport.QuoteRequest{QuoteItemRequest: item}, testRules())
	if len(resp.SelectedAcc) != 1 || resp.SelectedAcc[0] != "handle" {
		t.Fatalf("expected deduped accessories [handle], got %v", resp.SelectedAcc)
	}
	// 2x1 at 500 plus one handle at 20.
	if resp.Total != 1020 {
		t.Fatalf("expected total 1020, got %d", resp.Total)
	}
}
