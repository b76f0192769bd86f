// Package domain holds the read-only pricing catalog model.
//
// The catalog is authored externally (admin tooling) and consumed here as a
// read contract. Every lookup is tolerant: a missing type, subtype, material
// or accessory yields a zero value, never a panic or error, because the
// consuming builder UI must keep working across catalog changes.
package domain

// Dimensions flags which physical dimensions a product type requires.
type Dimensions struct {
	Width  bool `json:"width"`
	Height bool `json:"height"`
	Length bool `json:"length"`
}

// Material belongs to a subtype and may carry a fixed price override per
// square meter. A nil override means the factored base price applies.
type Material struct {
	ID              string `json:"id"`
	PricePerM2Cents *int64 `json:"pricePerM2,omitempty"`
}

// Subtype groups the materials available for one variant of a product type.
type Subtype struct {
	ID        string     `json:"id"`
	Materials []Material `json:"materials"`
}

// Color is a finish option contributing a multiplicative pricing factor.
type Color struct {
	ID string `json:"id"`
}

// Accessory is a flat-priced add-on, never scaled by measure.
type Accessory struct {
	ID         string `json:"id"`
	PriceCents int64  `json:"price"`
}

// ProductType is one configurable product family (door, window, railing).
// Invariant: an authored type always has at least one subtype; consumers must
// still tolerate an empty list.
type ProductType struct {
	ID                  string      `json:"id"`
	BasePricePerM2Cents int64       `json:"basePricePerM2"`
	Dimensions          Dimensions  `json:"dimensions"`
	Subtypes            []Subtype   `json:"subtypes"`
	Colors              []Color     `json:"colors"`
	Accessories         []Accessory `json:"accessories"`
}

// Catalog is the full externally authored product catalog.
type Catalog struct {
	Products []ProductType `json:"products"`
}

// TypeByID returns the product type with the given id.
func (c Catalog) TypeByID(id string) (ProductType, bool) {
	for _, p := range c.Products {
		if p.ID == id {
			return p, true
		}
	}
	return ProductType{}, false
}

// SubtypeByID returns the subtype with the given id.
func (p ProductType) SubtypeByID(id string) (Subtype, bool) {
	for _, s := range p.Subtypes {
		if s.ID == id {
			return s, true
		}
	}
	return Subtype{}, false
}

// MaterialByID returns the material with the given id.
func (s Subtype) MaterialByID(id string) (Material, bool) {
	for _, m := range s.Materials {
		if m.ID == id {
			return m, true
		}
	}
	return Material{}, false
}

// HasColor reports whether the type offers the given color.
func (p ProductType) HasColor(id string) bool {
	for _, c := range p.Colors {
		if c.ID == id {
			return true
		}
	}
	return false
}

// AccessoryPrice returns the flat price of an accessory, or 0 if the id is
// not in the catalog (stale selections price as free rather than failing).
func (p ProductType) AccessoryPrice(id string) int64 {
	for _, a := range p.Accessories {
		if a.ID == id {
			return a.PriceCents
		}
	}
	return 0
}

// Selection is a customer's current (type, subtype, material, color) choice.
type Selection struct {
	TypeID     string `json:"type"`
	SubtypeID  string `json:"psubtype"`
	MaterialID string `json:"material"`
	ColorID    string `json:"color"`
}

// Reconcile repairs a selection against the current catalog. A selection that
// references a removed subtype, material or color falls back to the first
// available option (or empty when none exist). Downstream pricing assumes
// selections are always catalog-valid, so this is a hard invariant, not a UI
// nicety.
func (sel Selection) Reconcile(cat Catalog) Selection {
	out := sel

	pt, ok := cat.TypeByID(out.TypeID)
	if !ok {
		if len(cat.Products) == 0 {
			return Selection{}
		}
		pt = cat.Products[0]
		out = Selection{TypeID: pt.ID}
	}

	st, ok := pt.SubtypeByID(out.SubtypeID)
	if !ok {
		out.SubtypeID = ""
		out.MaterialID = ""
		if len(pt.Subtypes) > 0 {
			st = pt.Subtypes[0]
			out.SubtypeID = st.ID
		}
	}

	if _, ok := st.MaterialByID(out.MaterialID); !ok {
		out.MaterialID = ""
		if len(st.Materials) > 0 {
			out.MaterialID = st.Materials[0].ID
		}
	}

	if !pt.HasColor(out.ColorID) {
		out.ColorID = ""
		if len(pt.Colors) > 0 {
			out.ColorID = pt.Colors[0].ID
		}
	}

	return out
}
