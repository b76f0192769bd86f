// Package repository persists projects on Postgres.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"maatwerk_backend/internal/projects/domain"
	"maatwerk_backend/platform/apperr"
)

// Repo implements the project repository on Postgres.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new project repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

const projectColumns = `id, owner_id, title, description, baseline_total_cents, days, status, bidding_deadline, created_at, updated_at`

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	err := row.Scan(&p.ID, &p.OwnerID, &p.Title, &p.Description, &p.BaselineTotalCents,
		&p.Days, &p.Status, &p.BiddingDeadline, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("project not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scan project: %w", err)
	}
	return &p, nil
}

// Create inserts a new project.
func (r *Repo) Create(ctx context.Context, p *domain.Project) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO projects (id, owner_id, title, description, baseline_total_cents, days, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`,
		p.ID, p.OwnerID, p.Title, p.Description, p.BaselineTotalCents, p.Days, p.Status,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// GetByID returns one project.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)
	return scanProject(row)
}

// ListByOwner returns the owner's projects, newest first.
func (r *Repo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Project, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+projectColumns+`
		FROM projects
		WHERE owner_id = $1
		ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()
	return collectProjects(rows)
}

// ListOpen returns projects accepting bids, newest first.
func (r *Repo) ListOpen(ctx context.Context, limit, offset int) ([]domain.Project, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+projectColumns+`
		FROM projects
		WHERE status IN ($1, $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`,
		domain.StatusPublished, domain.StatusInBidding, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list open projects: %w", err)
	}
	defer rows.Close()
	return collectProjects(rows)
}

func collectProjects(rows pgx.Rows) ([]domain.Project, error) {
	var projects []domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

// Update rewrites the mutable fields plus the pricing baseline.
func (r *Repo) Update(ctx context.Context, p *domain.Project) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE projects
		SET title = $2, description = $3, baseline_total_cents = $4, days = $5, updated_at = now()
		WHERE id = $1`,
		p.ID, p.Title, p.Description, p.BaselineTotalCents, p.Days)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("project not found")
	}
	return nil
}

// UpdateStatus transitions a project's lifecycle status.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE projects SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update project status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("project not found")
	}
	return nil
}

// SetPublished moves a project to Published with its bidding deadline.
func (r *Repo) SetPublished(ctx context.Context, id uuid.UUID, deadline *time.Time) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE projects
		SET status = $2, bidding_deadline = $3, updated_at = now()
		WHERE id = $1`,
		id, domain.StatusPublished, deadline)
	if err != nil {
		return fmt.Errorf("publish project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("project not found")
	}
	return nil
}

// Delete removes a project. Quote items and bids cascade in the schema.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("project not found")
	}
	return nil
}
