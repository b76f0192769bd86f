package pricing

import "maatwerk_backend/internal/catalog/domain"

// Tier is one pricing strategy. It reports whether it applies to the
// selection; the first applicable tier wins.
type Tier func(cat domain.Catalog, sel domain.Selection, rules Rules) (int64, bool)

// tiers is the resolution order: a material price override always wins, then
// the factored catalog base price, then the legacy flat table.
var tiers = []Tier{
	materialOverride,
	factoredBase,
	legacyFlatRate,
}

// ResolvePrice returns the effective price per unit measure in cents for a
// selection. Pure: re-run on every relevant input change. Never negative; a
// selection no tier can price resolves to 0.
func ResolvePrice(cat domain.Catalog, sel domain.Selection, rules Rules) int64 {
	for _, tier := range tiers {
		if price, ok := tier(cat, sel, rules); ok {
			if price < 0 {
				return 0
			}
			return price
		}
	}
	return 0
}

// materialOverride prices by the fixed per-m2 price declared on the selected
// material, when one exists. Factors do not apply on top of an override.
func materialOverride(cat domain.Catalog, sel domain.Selection, _ Rules) (int64, bool) {
	pt, ok := cat.TypeByID(sel.TypeID)
	if !ok {
		return 0, false
	}
	st, ok := pt.SubtypeByID(sel.SubtypeID)
	if !ok {
		return 0, false
	}
	m, ok := st.MaterialByID(sel.MaterialID)
	if !ok || m.PricePerM2Cents == nil {
		return 0, false
	}
	return *m.PricePerM2Cents, true
}

// factoredBase prices by the catalog base price scaled by subtype and color
// factors.
func factoredBase(cat domain.Catalog, sel domain.Selection, rules Rules) (int64, bool) {
	pt, ok := cat.TypeByID(sel.TypeID)
	if !ok || pt.BasePricePerM2Cents <= 0 {
		return 0, false
	}
	price := float64(pt.BasePricePerM2Cents) * rules.SubtypeFactor(sel.SubtypeID) * rules.ColorFactor(sel.ColorID)
	return Round(price), true
}

// legacyFlatRate prices by the flat per-type rule table, scaled by the same
// factors. This is the tier quoting degrades to when the catalog fetch failed
// or the type was never authored.
func legacyFlatRate(_ domain.Catalog, sel domain.Selection, rules Rules) (int64, bool) {
	base := rules.FlatRate(sel.TypeID)
	if base <= 0 {
		return 0, false
	}
	price := float64(base) * rules.SubtypeFactor(sel.SubtypeID) * rules.ColorFactor(sel.ColorID)
	return Round(price), true
}
