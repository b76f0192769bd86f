package repository

import (
	"context"

	"github.com/google/uuid"

	"maatwerk_backend/internal/quotes/domain"
)

// Repository persists frozen quote snapshots.
type Repository interface {
	// ReplaceForProject atomically replaces the snapshot of a project.
	ReplaceForProject(ctx context.Context, projectID uuid.UUID, items []domain.Item) error
	// ListForProject returns the snapshot items ordered by position.
	ListForProject(ctx context.Context, projectID uuid.UUID) ([]domain.Item, error)
	// DeleteForProject removes the snapshot of a deleted project.
	DeleteForProject(ctx context.Context, projectID uuid.UUID) error
}
