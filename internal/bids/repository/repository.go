// Package repository persists bids on Postgres.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"maatwerk_backend/internal/bids/domain"
	"maatwerk_backend/platform/apperr"
)

const pgUniqueViolation = "23505"

// Repo implements the bid repository on Postgres.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new bid repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

const bidColumns = `id, project_id, merchant_id, price_cents, days, message, status, created_at, updated_at, decided_at`

func scanBid(row pgx.Row) (*domain.Bid, error) {
	var b domain.Bid
	err := row.Scan(&b.ID, &b.ProjectID, &b.MerchantID, &b.PriceCents, &b.Days,
		&b.Message, &b.Status, &b.CreatedAt, &b.UpdatedAt, &b.DecidedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("bid not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scan bid: %w", err)
	}
	return &b, nil
}

// Create inserts a new bid. Two concurrent submissions by the same merchant
// race on the partial unique index; the loser gets a conflict.
func (r *Repo) Create(ctx context.Context, b *domain.Bid) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO bids (id, project_id, merchant_id, price_cents, days, message, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`,
		b.ID, b.ProjectID, b.MerchantID, b.PriceCents, b.Days, b.Message, b.Status,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperr.Conflict("you already have an active bid on this project")
		}
		return fmt.Errorf("insert bid: %w", err)
	}
	return nil
}

// GetByID returns one bid.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Bid, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+bidColumns+` FROM bids WHERE id = $1`, id)
	return scanBid(row)
}

// ListByProject returns all bids on a project, newest first.
func (r *Repo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Bid, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+bidColumns+` FROM bids WHERE project_id = $1 ORDER BY created_at DESC`, projectID)
	if err != nil {
		return nil, fmt.Errorf("list bids: %w", err)
	}
	defer rows.Close()
	return collectBids(rows)
}

// ListByMerchant returns all of a merchant's bids, newest first.
func (r *Repo) ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]domain.Bid, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+bidColumns+` FROM bids WHERE merchant_id = $1 ORDER BY created_at DESC`, merchantID)
	if err != nil {
		return nil, fmt.Errorf("list merchant bids: %w", err)
	}
	defer rows.Close()
	return collectBids(rows)
}

// ActiveByProjectAndMerchant returns the merchant's pending bid on a project.
func (r *Repo) ActiveByProjectAndMerchant(ctx context.Context, projectID, merchantID uuid.UUID) (*domain.Bid, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+bidColumns+`
		FROM bids
		WHERE project_id = $1 AND merchant_id = $2 AND status = $3`,
		projectID, merchantID, domain.StatusPending)
	return scanBid(row)
}

// UpdatePending rewrites the mutable fields of a still-pending bid.
func (r *Repo) UpdatePending(ctx context.Context, b *domain.Bid) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE bids
		SET price_cents = $2, days = $3, message = $4, updated_at = now()
		WHERE id = $1 AND status = $5`,
		b.ID, b.PriceCents, b.Days, b.Message, domain.StatusPending)
	if err != nil {
		return fmt.Errorf("update bid: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.Conflict("bid is no longer pending")
	}
	return nil
}

// Decide transitions a pending bid to a terminal status. The status guard in
// the WHERE clause makes the terminal states unreachable twice even under
// concurrent decisions.
func (r *Repo) Decide(ctx context.Context, id uuid.UUID, status string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE bids
		SET status = $2, decided_at = now(), updated_at = now()
		WHERE id = $1 AND status = $3`,
		id, status, domain.StatusPending)
	if err != nil {
		return false, fmt.Errorf("decide bid: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// RejectPendingSiblings rejects every other pending bid on a project.
func (r *Repo) RejectPendingSiblings(ctx context.Context, projectID, exceptID uuid.UUID) ([]domain.Bid, error) {
	rows, err := r.pool.Query(ctx, `
		UPDATE bids
		SET status = $3, decided_at = now(), updated_at = now()
		WHERE project_id = $1 AND id <> $2 AND status = $4
		RETURNING `+bidColumns,
		projectID, exceptID, domain.StatusRejected, domain.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("reject sibling bids: %w", err)
	}
	defer rows.Close()
	return collectBids(rows)
}

// ExpirePending rejects all pending bids on a project past its deadline.
func (r *Repo) ExpirePending(ctx context.Context, projectID uuid.UUID) ([]domain.Bid, error) {
	rows, err := r.pool.Query(ctx, `
		UPDATE bids
		SET status = $2, decided_at = now(), updated_at = now()
		WHERE project_id = $1 AND status = $3
		RETURNING `+bidColumns,
		projectID, domain.StatusRejected, domain.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("expire pending bids: %w", err)
	}
	defer rows.Close()
	return collectBids(rows)
}

func collectBids(rows pgx.Rows) ([]domain.Bid, error) {
	var bids []domain.Bid
	for rows.Next() {
		b, err := scanBid(rows)
		if err != nil {
			return nil, err
		}
		bids = append(bids, *b)
	}
	return bids, rows.Err()
}
