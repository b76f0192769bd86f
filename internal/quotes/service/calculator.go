package service

import (
	catdomain "maatwerk_backend/internal/catalog/domain"
	"maatwerk_backend/internal/quotes/pricing"
	"maatwerk_backend/internal/quotes/transport"
)

// DeriveQuote computes the full quote from the current builder state. It is a
// pure derivation over the complete state, never an incremental update, so the
// result is identical no matter which field changed last. Additional items
// share the main item's days value.
func DeriveQuote(cat catdomain.Catalog, req transport.QuoteRequest, rules pricing.Rules) transport.QuoteResponse {
	days := req.Days
	if days < 0 {
		days = 0
	}

	main := deriveItem(cat, req.QuoteItemRequest, days, rules)
	resp := transport.QuoteResponse{QuoteItemResponse: main}

	grand := main.Total
	for _, it := range req.Items {
		derived := deriveItem(cat, it, days, rules)
		resp.Items = append(resp.Items, derived)
		grand += derived.Total
	}
	resp.GrandTotal = grand
	return resp
}

func deriveItem(cat catdomain.Catalog, it transport.QuoteItemRequest, days int, rules pricing.Rules) transport.QuoteItemResponse {
	sel := catdomain.Selection{
		TypeID:     it.Type,
		SubtypeID:  it.Psubtype,
		MaterialID: it.Material,
		ColorID:    it.Color,
	}
	// An empty catalog means the fetch failed or nothing is authored yet.
	// Keep the raw selection so the legacy flat-rate tier can still price it.
	if len(cat.Products) > 0 {
		sel = sel.Reconcile(cat)
	}

	pt, _ := cat.TypeByID(sel.TypeID)
	accessories := dedupe(it.SelectedAcc)

	measure := pricing.Measure(it.Width, it.Height, it.Length)
	price := pricing.ResolvePrice(cat, sel, rules)
	total := pricing.ItemTotal(measure, price, it.Quantity, pricing.AccessoriesTotal(pt, accessories))

	qty := it.Quantity
	if qty < 1 {
		qty = 1
	}

	return transport.QuoteItemResponse{
		Type:          sel.TypeID,
		Psubtype:      sel.SubtypeID,
		Material:      sel.MaterialID,
		Color:         sel.ColorID,
		Width:         it.Width,
		Height:        it.Height,
		Length:        it.Length,
		Quantity:      qty,
		Days:          days,
		PricePerMeter: price,
		Total:         total,
		SelectedAcc:   accessories,
		Description:   it.Description,
	}
}

// dedupe keeps the first occurrence of each accessory id. Selected
// accessories are a set on the wire; duplicates must never price twice.
func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
