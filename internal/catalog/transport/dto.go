// Package transport defines the wire contracts of the catalog module.
package transport

import "maatwerk_backend/internal/catalog/domain"

// CatalogResponse is the read contract consumed by the builder UI and the
// quoting engine. The domain model carries the wire field names directly.
type CatalogResponse struct {
	Products []domain.ProductType `json:"products"`
}

// ReplaceCatalogRequest is the admin authoring contract: the full catalog
// document, written atomically.
type ReplaceCatalogRequest struct {
	Products []ProductTypeRequest `json:"products" validate:"required,min=1,dive"`
}

type ProductTypeRequest struct {
	ID             string             `json:"id" validate:"required,min=1,max=50"`
	BasePricePerM2 int64              `json:"basePricePerM2" validate:"min=0"`
	Dimensions     domain.Dimensions  `json:"dimensions"`
	Subtypes       []SubtypeRequest   `json:"subtypes" validate:"required,min=1,dive"`
	Colors         []ColorRequest     `json:"colors" validate:"dive"`
	Accessories    []AccessoryRequest `json:"accessories" validate:"dive"`
}

type SubtypeRequest struct {
	ID        string            `json:"id" validate:"required,min=1,max=50"`
	Materials []MaterialRequest `json:"materials" validate:"dive"`
}

type MaterialRequest struct {
	ID         string `json:"id" validate:"required,min=1,max=50"`
	PricePerM2 *int64 `json:"pricePerM2,omitempty" validate:"omitempty,min=0"`
}

type ColorRequest struct {
	ID string `json:"id" validate:"required,min=1,max=50"`
}

type AccessoryRequest struct {
	ID    string `json:"id" validate:"required,min=1,max=50"`
	Price int64  `json:"price" validate:"min=0"`
}

// ToDomain converts the authoring request into the domain catalog.
func (r ReplaceCatalogRequest) ToDomain() domain.Catalog {
	products := make([]domain.ProductType, len(r.Products))
	for i, pt := range r.Products {
		subtypes := make([]domain.Subtype, len(pt.Subtypes))
		for j, st := range pt.Subtypes {
			materials := make([]domain.Material, len(st.Materials))
			for k, m := range st.Materials {
				materials[k] = domain.Material{ID: m.ID, PricePerM2Cents: m.PricePerM2}
			}
			subtypes[j] = domain.Subtype{ID: st.ID, Materials: materials}
		}

		colors := make([]domain.Color, len(pt.Colors))
		for j, c := range pt.Colors {
			colors[j] = domain.Color{ID: c.ID}
		}

		accessories := make([]domain.Accessory, len(pt.Accessories))
		for j, a := range pt.Accessories {
			accessories[j] = domain.Accessory{ID: a.ID, PriceCents: a.Price}
		}

		products[i] = domain.ProductType{
			ID:                  pt.ID,
			BasePricePerM2Cents: pt.BasePricePerM2,
			Dimensions:          pt.Dimensions,
			Subtypes:            subtypes,
			Colors:              colors,
			Accessories:         accessories,
		}
	}
	return domain.Catalog{Products: products}
}
