// Package service manages contact profiles.
package service

import (
	"context"

	"github.com/google/uuid"

	"maatwerk_backend/internal/merchants/domain"
	"maatwerk_backend/internal/merchants/repository"
	"maatwerk_backend/platform/logger"
	"maatwerk_backend/platform/phone"
	"maatwerk_backend/platform/sanitize"
)

// Service manages contact profiles.
type Service struct {
	repo repository.Repository
	log  *logger.Logger
}

// New creates a new profile service.
func New(repo repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// UpsertInput is the editable part of a profile.
type UpsertInput struct {
	DisplayName string
	CompanyName string
	Email       string
	Phone       string
}

// Upsert writes the caller's profile. The phone number is normalized to
// E.164 so notification channels get a dialable number.
func (s *Service) Upsert(ctx context.Context, userID uuid.UUID, in UpsertInput) (*domain.Profile, error) {
	p := &domain.Profile{
		UserID:      userID,
		DisplayName: sanitize.Text(in.DisplayName),
		CompanyName: sanitize.Text(in.CompanyName),
		Email:       in.Email,
		Phone:       phone.NormalizeE164(in.Phone),
	}
	if err := s.repo.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Get returns one profile.
func (s *Service) Get(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	return s.repo.GetByUserID(ctx, userID)
}

// Email returns a user's notification address, or empty when no profile
// exists. Used by the notification pipeline, which treats a missing address
// as a skip, never an error.
func (s *Service) Email(ctx context.Context, userID uuid.UUID) string {
	p, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return ""
	}
	return p.Email
}
