package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"maatwerk_backend/internal/merchants/domain"
	"maatwerk_backend/platform/apperr"
	"maatwerk_backend/platform/logger"
)

type fakeRepo struct {
	profiles map[uuid.UUID]*domain.Profile
}

func (r *fakeRepo) Upsert(_ context.Context, p *domain.Profile) error {
	p.UpdatedAt = time.Now()
	cp := *p
	r.profiles[p.UserID] = &cp
	return nil
}

func (r *fakeRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*domain.Profile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return nil, apperr.NotFound("profile not found")
	}
	cp := *p
	return &cp, nil
}

func newTestService() (*Service, *fakeRepo) {
	repo := &fakeRepo{profiles: make(map[uuid.UUID]*domain.Profile)}
	return New(repo, logger.New("development")), repo
}

func TestUpsertNormalizesPhone(t *testing.T) {
	svc, _ := newTestService()

	p, err := svc.Upsert(context.Background(), uuid.New(), UpsertInput{
		DisplayName: "Kozijnen De Vries",
		Email:       "info@devries.example",
		Phone:       "06 1234 5678",
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if p.Phone != "+31612345678" {
		t.Fatalf("expected E.164 phone, got %q", p.Phone)
	}
}

func TestUpsertKeepsUnparseablePhone(t *testing.T) {
	svc, _ := newTestService()

	p, err := svc.Upsert(context.Background(), uuid.New(), UpsertInput{
		DisplayName: "Test",
		Email:       "t@example.com",
		Phone:       "  not-a-number  ",
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if p.Phone != "not-a-number" {
		t.Fatalf("expected trimmed input preserved, got %q", p.Phone)
	}
}

func TestEmailLookup(t *testing.T) {
	svc, _ := newTestService()
	userID := uuid.New()

	if got := svc.Email(context.Background(), userID); got != "" {
		t.Fatalf("expected empty email for missing profile, got %q", got)
	}

	if _, err := svc.Upsert(context.Background(), userID, UpsertInput{
		DisplayName: "Test", Email: "t@example.com",
	}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if got := svc.Email(context.Background(), userID); got != "t@example.com" {
		t.Fatalf("expected stored email, got %q", got)
	}
}
