// Package repository persists contact profiles on Postgres.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"maatwerk_backend/internal/merchants/domain"
	"maatwerk_backend/platform/apperr"
)

// Repository persists contact profiles.
type Repository interface {
	Upsert(ctx context.Context, p *domain.Profile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
}

// Repo implements the profile repository on Postgres.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new profile repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// Upsert writes the profile, replacing any previous version.
func (r *Repo) Upsert(ctx context.Context, p *domain.Profile) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO merchant_profiles (user_id, display_name, company_name, email, phone)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE
		SET display_name = EXCLUDED.display_name,
		    company_name = EXCLUDED.company_name,
		    email = EXCLUDED.email,
		    phone = EXCLUDED.phone,
		    updated_at = now()
		RETURNING created_at, updated_at`,
		p.UserID, p.DisplayName, p.CompanyName, p.Email, p.Phone,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}

// GetByUserID returns one profile.
func (r *Repo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	var p domain.Profile
	err := r.pool.QueryRow(ctx, `
		SELECT user_id, display_name, company_name, email, phone, created_at, updated_at
		FROM merchant_profiles
		WHERE user_id = $1`, userID,
	).Scan(&p.UserID, &p.DisplayName, &p.CompanyName, &p.Email, &p.Phone, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("profile not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}
