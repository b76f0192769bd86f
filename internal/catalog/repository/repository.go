package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"maatwerk_backend/internal/catalog/domain"
)

// Repo implements the catalog repository on Postgres.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new catalog repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

type subtypeRow struct {
	id        string
	typeID    string
	materials []domain.Material
}

// GetCatalog loads the full authored catalog. The four collections are
// independent, so they load concurrently and are assembled afterwards.
func (r *Repo) GetCatalog(ctx context.Context) (domain.Catalog, error) {
	var (
		types       []domain.ProductType
		subtypes    map[string][]domain.Subtype
		colors      map[string][]domain.Color
		accessories map[string][]domain.Accessory
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		types, err = r.loadProductTypes(gctx)
		return err
	})
	g.Go(func() (err error) {
		subtypes, err = r.loadSubtypes(gctx)
		return err
	})
	g.Go(func() (err error) {
		colors, err = r.loadColors(gctx)
		return err
	})
	g.Go(func() (err error) {
		accessories, err = r.loadAccessories(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.Catalog{}, err
	}

	for i := range types {
		types[i].Subtypes = subtypes[types[i].ID]
		types[i].Colors = colors[types[i].ID]
		types[i].Accessories = accessories[types[i].ID]
	}

	return domain.Catalog{Products: types}, nil
}

func (r *Repo) loadProductTypes(ctx context.Context) ([]domain.ProductType, error) {
	query := `
		SELECT id, base_price_per_m2_cents, needs_width, needs_height, needs_length
		FROM catalog_product_types
		ORDER BY sort_order, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load product types: %w", err)
	}
	defer rows.Close()

	var types []domain.ProductType
	for rows.Next() {
		var pt domain.ProductType
		if err := rows.Scan(&pt.ID, &pt.BasePricePerM2Cents,
			&pt.Dimensions.Width, &pt.Dimensions.Height, &pt.Dimensions.Length); err != nil {
			return nil, fmt.Errorf("scan product type: %w", err)
		}
		types = append(types, pt)
	}
	return types, rows.Err()
}

func (r *Repo) loadSubtypes(ctx context.Context) (map[string][]domain.Subtype, error) {
	query := `
		SELECT s.id, s.product_type_id, m.id, m.price_per_m2_cents
		FROM catalog_subtypes s
		LEFT JOIN catalog_materials m ON m.subtype_id = s.id AND m.product_type_id = s.product_type_id
		ORDER BY s.product_type_id, s.sort_order, s.id, m.sort_order, m.id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load subtypes: %w", err)
	}
	defer rows.Close()

	ordered := make([]*subtypeRow, 0)
	index := make(map[string]*subtypeRow)
	for rows.Next() {
		var (
			subtypeID  string
			typeID     string
			materialID *string
			price      *int64
		)
		if err := rows.Scan(&subtypeID, &typeID, &materialID, &price); err != nil {
			return nil, fmt.Errorf("scan subtype: %w", err)
		}

		key := typeID + "/" + subtypeID
		row, ok := index[key]
		if !ok {
			row = &subtypeRow{id: subtypeID, typeID: typeID}
			index[key] = row
			ordered = append(ordered, row)
		}
		if materialID != nil {
			row.materials = append(row.materials, domain.Material{ID: *materialID, PricePerM2Cents: price})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	result := make(map[string][]domain.Subtype)
	for _, row := range ordered {
		result[row.typeID] = append(result[row.typeID], domain.Subtype{ID: row.id, Materials: row.materials})
	}
	return result, nil
}

func (r *Repo) loadColors(ctx context.Context) (map[string][]domain.Color, error) {
	query := `SELECT id, product_type_id FROM catalog_colors ORDER BY product_type_id, sort_order, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load colors: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]domain.Color)
	for rows.Next() {
		var id, typeID string
		if err := rows.Scan(&id, &typeID); err != nil {
			return nil, fmt.Errorf("scan color: %w", err)
		}
		result[typeID] = append(result[typeID], domain.Color{ID: id})
	}
	return result, rows.Err()
}

func (r *Repo) loadAccessories(ctx context.Context) (map[string][]domain.Accessory, error) {
	query := `SELECT id, product_type_id, price_cents FROM catalog_accessories ORDER BY product_type_id, sort_order, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load accessories: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]domain.Accessory)
	for rows.Next() {
		var acc domain.Accessory
		var typeID string
		if err := rows.Scan(&acc.ID, &typeID, &acc.PriceCents); err != nil {
			return nil, fmt.Errorf("scan accessory: %w", err)
		}
		result[typeID] = append(result[typeID], acc)
	}
	return result, rows.Err()
}

// ReplaceCatalog atomically replaces the authored catalog document. The admin
// tooling always writes the whole document, so a delete-and-insert inside one
// transaction keeps the contract simple.
func (r *Repo) ReplaceCatalog(ctx context.Context, cat domain.Catalog) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin replace catalog: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, table := range []string{"catalog_materials", "catalog_subtypes", "catalog_colors", "catalog_accessories", "catalog_product_types"} {
		if _, err := tx.Exec(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for i, pt := range cat.Products {
		if _, err := tx.Exec(ctx, `
			INSERT INTO catalog_product_types (id, base_price_per_m2_cents, needs_width, needs_height, needs_length, sort_order)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			pt.ID, pt.BasePricePerM2Cents, pt.Dimensions.Width, pt.Dimensions.Height, pt.Dimensions.Length, i,
		); err != nil {
			return fmt.Errorf("insert product type %s: %w", pt.ID, err)
		}

		for j, st := range pt.Subtypes {
			if _, err := tx.Exec(ctx, `
				INSERT INTO catalog_subtypes (id, product_type_id, sort_order)
				VALUES ($1, $2, $3)`,
				st.ID, pt.ID, j,
			); err != nil {
				return fmt.Errorf("insert subtype %s: %w", st.ID, err)
			}
			for k, m := range st.Materials {
				if _, err := tx.Exec(ctx, `
					INSERT INTO catalog_materials (id, subtype_id, product_type_id, price_per_m2_cents, sort_order)
					VALUES ($1, $2, $3, $4, $5)`,
					m.ID, st.ID, pt.ID, m.PricePerM2Cents, k,
				); err != nil {
					return fmt.Errorf("insert material %s: %w", m.ID, err)
				}
			}
		}

		for j, c := range pt.Colors {
			if _, err := tx.Exec(ctx, `
				INSERT INTO catalog_colors (id, product_type_id, sort_order)
				VALUES ($1, $2, $3)`,
				c.ID, pt.ID, j,
			); err != nil {
				return fmt.Errorf("insert color %s: %w", c.ID, err)
			}
		}

		for j, a := range pt.Accessories {
			if _, err := tx.Exec(ctx, `
				INSERT INTO catalog_accessories (id, product_type_id, price_cents, sort_order)
				VALUES ($1, $2, $3, $4)`,
				a.ID, pt.ID, a.PriceCents, j,
			); err != nil {
				return fmt.Errorf("insert accessory %s: %w", a.ID, err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit replace catalog: %w", err)
	}
	return nil
}
