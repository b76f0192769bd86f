package domain

import "testing"

func fixtureCatalog() Catalog {
	oak := int64(65000)
	return Catalog{Products: []ProductType{
		{
			ID:                  "door",
			BasePricePerM2Cents: 50000,
			Dimensions:          Dimensions{Width: true, Height: true},
			Subtypes: []Subtype{
				{ID: "single", Materials: []Material{{ID: "pvc"}, {ID: "oak", PricePerM2Cents: &oak}}},
				{ID: "double", Materials: []Material{{ID: "pvc"}}},
			},
			Colors:      []Color{{ID: "white"}, {ID: "bronze"}},
			Accessories: []Accessory{{ID: "handle", PriceCents: 2000}},
		},
		{
			ID:                  "railing",
			BasePricePerM2Cents: 12000,
			Dimensions:          Dimensions{Length: true},
			Subtypes:            []Subtype{{ID: "standard", Materials: []Material{{ID: "steel"}}}},
		},
	}}
}

func TestLookupsTolerateMissingEntries(t *testing.T) {
	cat := fixtureCatalog()

	if _, ok := cat.TypeByID("gate"); ok {
		t.Fatal("expected unknown type to be absent")
	}

	door, ok := cat.TypeByID("door")
	if !ok {
		t.Fatal("expected door type")
	}
	if _, ok := door.SubtypeByID("triple"); ok {
		t.Fatal("expected unknown subtype to be absent")
	}
	if price := door.AccessoryPrice("nope"); price != 0 {
		t.Fatalf("expected unknown accessory to price as 0, got %d", price)
	}
	if door.HasColor("purple") {
		t.Fatal("expected unknown color to be absent")
	}
}

func TestReconcileKeepsValidSelection(t *testing.T) {
	cat := fixtureCatalog()
	sel := Selection{TypeID: "door", SubtypeID: "single", MaterialID: "oak", ColorID: "bronze"}

	if got := sel.Reconcile(cat); got != sel {
		t.Fatalf("valid selection changed: %+v", got)
	}
}

func TestReconcileResetsDanglingSubtype(t *testing.T) {
	cat := fixtureCatalog()
	sel := Selection{TypeID: "door", SubtypeID: "removed", MaterialID: "oak", ColorID: "white"}

	got := sel.Reconcile(cat)
	if got.SubtypeID != "single" {
		t.Fatalf("expected fallback to first subtype, got %q", got.SubtypeID)
	}
	// Material belongs to the old subtype and must be re-resolved too.
	if got.MaterialID != "pvc" {
		t.Fatalf("expected fallback to first material, got %q", got.MaterialID)
	}
	if got.ColorID != "white" {
		t.Fatalf("expected color to survive, got %q", got.ColorID)
	}
}

func TestReconcileResetsDanglingMaterialAndColor(t *testing.T) {
	cat := fixtureCatalog()
	sel := Selection{TypeID: "door", SubtypeID: "double", MaterialID: "oak", ColorID: "gold"}

	got := sel.Reconcile(cat)
	if got.MaterialID != "pvc" {
		t.Fatalf("expected first material of double, got %q", got.MaterialID)
	}
	if got.ColorID != "white" {
		t.Fatalf("expected first color, got %q", got.ColorID)
	}
}

func TestReconcileUnknownTypeFallsBackToFirstProduct(t *testing.T) {
	cat := fixtureCatalog()
	got := Selection{TypeID: "gate", SubtypeID: "x", MaterialID: "y", ColorID: "z"}.Reconcile(cat)

	if got.TypeID != "door" || got.SubtypeID != "single" || got.MaterialID != "pvc" || got.ColorID != "white" {
		t.Fatalf("unexpected reconciled selection: %+v", got)
	}
}

func TestReconcileEmptyCatalog(t *testing.T) {
	got := Selection{TypeID: "door"}.Reconcile(Catalog{})
	if got != (Selection{}) {
		t.Fatalf("expected empty selection, got %+v", got)
	}
}

func TestReconcileTypeWithoutColors(t *testing.T) {
	cat := fixtureCatalog()
	got := Selection{TypeID: "railing", SubtypeID: "standard", MaterialID: "steel", ColorID: "white"}.Reconcile(cat)
	if got.ColorID != "" {
		t.Fatalf("expected empty color for colorless type, got %q", got.ColorID)
	}
}
