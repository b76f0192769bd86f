package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"maatwerk_backend/internal/projects/domain"
)

// Repository persists project aggregates.
type Repository interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Project, error)
	// ListOpen returns projects merchants may bid on, newest first.
	ListOpen(ctx context.Context, limit, offset int) ([]domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	// UpdateStatus transitions a project and returns the stored row.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	SetPublished(ctx context.Context, id uuid.UUID, deadline *time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}
