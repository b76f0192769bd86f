// Package repository persists quote snapshots on Postgres.
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"maatwerk_backend/internal/quotes/domain"
)

// Repo implements the quote snapshot repository on Postgres.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new quote repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// ReplaceForProject replaces the project's snapshot in one transaction. A
// resubmitted quote always rewrites the whole snapshot; partial updates would
// let persisted totals drift from the derivation.
func (r *Repo) ReplaceForProject(ctx context.Context, projectID uuid.UUID, items []domain.Item) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin replace quote: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM quote_items WHERE project_id = $1`, projectID); err != nil {
		return fmt.Errorf("clear quote items: %w", err)
	}

	for _, it := range items {
		if _, err := tx.Exec(ctx, `
			INSERT INTO quote_items (
				id, project_id, position, type_id, subtype_id, material_id, color_id,
				width, height, length, quantity, days, selected_accessories,
				description, price_per_meter_cents, total_cents
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
			it.ID, projectID, it.Position, it.TypeID, it.SubtypeID, it.MaterialID, it.ColorID,
			it.Width, it.Height, it.Length, it.Quantity, it.Days, it.SelectedAccessories,
			it.Description, it.PricePerMeterCents, it.TotalCents,
		); err != nil {
			return fmt.Errorf("insert quote item %d: %w", it.Position, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit replace quote: %w", err)
	}
	return nil
}

// ListForProject returns the snapshot items ordered by position.
func (r *Repo) ListForProject(ctx context.Context, projectID uuid.UUID) ([]domain.Item, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, project_id, position, type_id, subtype_id, material_id, color_id,
		       width, height, length, quantity, days, selected_accessories,
		       description, price_per_meter_cents, total_cents, created_at
		FROM quote_items
		WHERE project_id = $1
		ORDER BY position`, projectID)
	if err != nil {
		return nil, fmt.Errorf("list quote items: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var it domain.Item
		if err := rows.Scan(
			&it.ID, &it.ProjectID, &it.Position, &it.TypeID, &it.SubtypeID, &it.MaterialID, &it.ColorID,
			&it.Width, &it.Height, &it.Length, &it.Quantity, &it.Days, &it.SelectedAccessories,
			&it.Description, &it.PricePerMeterCents, &it.TotalCents, &it.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan quote item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// DeleteForProject removes the snapshot of a deleted project.
func (r *Repo) DeleteForProject(ctx context.Context, projectID uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM quote_items WHERE project_id = $1`, projectID); err != nil {
		return fmt.Errorf("delete quote items: %w", err)
	}
	return nil
}
