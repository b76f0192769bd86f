package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"maatwerk_backend/internal/events"
	"maatwerk_backend/internal/projects/domain"
	qtransport "maatwerk_backend/internal/quotes/transport"
	"maatwerk_backend/platform/apperr"
	"maatwerk_backend/platform/config"
	"maatwerk_backend/platform/logger"
)

type fakeRepo struct {
	projects map[uuid.UUID]*domain.Project
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{projects: make(map[uuid.UUID]*domain.Project)}
}

func (r *fakeRepo) Create(_ context.Context, p *domain.Project) error {
	now := time.Now()
	p.CreatedAt, p.UpdatedAt = now, now
	cp := *p
	r.projects[p.ID] = &cp
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, apperr.NotFound("project not found")
	}
	cp := *p
	return &cp, nil
}

func (r *fakeRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]domain.Project, error) {
	var out []domain.Project
	for _, p := range r.projects {
		if p.OwnerID == ownerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListOpen(_ context.Context, _, _ int) ([]domain.Project, error) {
	var out []domain.Project
	for _, p := range r.projects {
		if p.AcceptsBids() {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeRepo) Update(_ context.Context, p *domain.Project) error {
	stored, ok := r.projects[p.ID]
	if !ok {
		return apperr.NotFound("project not found")
	}
	stored.Title = p.Title
	stored.Description = p.Description
	stored.BaselineTotalCents = p.BaselineTotalCents
	stored.Days = p.Days
	return nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) error {
	p, ok := r.projects[id]
	if !ok {
		return apperr.NotFound("project not found")
	}
	p.Status = status
	return nil
}

func (r *fakeRepo) SetPublished(_ context.Context, id uuid.UUID, deadline *time.Time) error {
	p, ok := r.projects[id]
	if !ok {
		return apperr.NotFound("project not found")
	}
	p.Status = domain.StatusPublished
	p.BiddingDeadline = deadline
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.projects[id]; !ok {
		return apperr.NotFound("project not found")
	}
	delete(r.projects, id)
	return nil
}

type fakeQuotes struct {
	derived   qtransport.QuoteResponse
	dimErr    error
	snapshots map[uuid.UUID]qtransport.QuoteResponse
}

func newFakeQuotes(grandTotal int64, days int) *fakeQuotes {
	return &fakeQuotes{
		derived: qtransport.QuoteResponse{
			QuoteItemResponse: qtransport.QuoteItemResponse{Type: "door", Days: days, Total: grandTotal},
			GrandTotal:        grandTotal,
		},
		snapshots: make(map[uuid.UUID]qtransport.QuoteResponse),
	}
}

func (q *fakeQuotes) Calculate(_ context.Context, _ qtransport.QuoteRequest) qtransport.QuoteResponse {
	return q.derived
}

func (q *fakeQuotes) ValidateDimensions(_ context.Context, _ qtransport.QuoteRequest) error {
	return q.dimErr
}

func (q *fakeQuotes) SaveSnapshot(_ context.Context, projectID uuid.UUID, derived qtransport.QuoteResponse) error {
	q.snapshots[projectID] = derived
	return nil
}

func (q *fakeQuotes) Snapshot(_ context.Context, projectID uuid.UUID) (qtransport.QuoteResponse, error) {
	snap, ok := q.snapshots[projectID]
	if !ok {
		return qtransport.QuoteResponse{}, apperr.NotFound("quote not found")
	}
	return snap, nil
}

func (q *fakeQuotes) DeleteSnapshot(_ context.Context, projectID uuid.UUID) error {
	delete(q.snapshots, projectID)
	return nil
}

type testEnv struct {
	svc    *Service
	repo   *fakeRepo
	quotes *fakeQuotes
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	log := logger.New("development")
	repo := newFakeRepo()
	quotes := newFakeQuotes(1000, 14)
	cfg := &config.Config{AppBaseURL: "http://localhost:5173", BidWindow: time.Hour}
	svc := New(repo, quotes, nil, events.NewInMemoryBus(log), cfg, log)
	return testEnv{svc: svc, repo: repo, quotes: quotes}
}

func submitInput() CreateInput {
	return CreateInput{
		Title: "Front door replacement",
		Quote: qtransport.QuoteRequest{
			QuoteItemRequest: qtransport.QuoteItemRequest{Type: "door", Width: 2, Height: 1, Quantity: 1, Days: 14},
		},
	}
}

func TestCreateFreezesBaseline(t *testing.T) {
	env := newTestEnv(t)
	ownerID := uuid.New()

	p, derived, err := env.svc.Create(context.Background(), ownerID, submitInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if p.Status != domain.StatusDraft {
		t.Fatalf("expected Draft, got %s", p.Status)
	}
	if p.BaselineTotalCents != 1000 || derived.GrandTotal != 1000 {
		t.Fatalf("expected baseline 1000, got %d", p.BaselineTotalCents)
	}
	if p.Days != 14 {
		t.Fatalf("expected days 14, got %d", p.Days)
	}
	if _, ok := env.quotes.snapshots[p.ID]; !ok {
		t.Fatal("expected a frozen snapshot")
	}
}

func TestCreateRejectsMissingDimensions(t *testing.T) {
	env := newTestEnv(t)
	env.quotes.dimErr = apperr.Validation("door requires width, height")

	_, _, err := env.svc.Create(context.Background(), uuid.New(), submitInput())
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestPublishOnlyFromDraft(t *testing.T) {
	env := newTestEnv(t)
	ownerID := uuid.New()
	p, _, _ := env.svc.Create(context.Background(), ownerID, submitInput())

	published, err := env.svc.Publish(context.Background(), ownerID, p.ID)
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if published.Status != domain.StatusPublished {
		t.Fatalf("expected Published, got %s", published.Status)
	}
	if published.BiddingDeadline == nil {
		t.Fatal("expected a bidding deadline from the configured window")
	}

	if _, err := env.svc.Publish(context.Background(), ownerID, p.ID); !apperr.Is(err, apperr.KindConflict) {
		t.Fatalf("expected conflict on double publish, got %v", err)
	}
}

func TestPublishOwnerOnly(t *testing.T) {
	env := newTestEnv(t)
	p, _, _ := env.svc.Create(context.Background(), uuid.New(), submitInput())

	if _, err := env.svc.Publish(context.Background(), uuid.New(), p.ID); !apperr.Is(err, apperr.KindForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestUpdateBlockedOnceBiddingStarted(t *testing.T) {
	env := newTestEnv(t)
	ownerID := uuid.New()
	p, _, _ := env.svc.Create(context.Background(), ownerID, submitInput())
	env.repo.projects[p.ID].Status = domain.StatusInBidding

	if _, _, err := env.svc.Update(context.Background(), ownerID, p.ID, submitInput()); !apperr.Is(err, apperr.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if err := env.svc.Delete(context.Background(), ownerID, p.ID); !apperr.Is(err, apperr.KindConflict) {
		t.Fatalf("expected conflict on delete, got %v", err)
	}
}

func TestUpdateRewritesBaseline(t *testing.T) {
	env := newTestEnv(t)
	ownerID := uuid.New()
	p, _, _ := env.svc.Create(context.Background(), ownerID, submitInput())

	env.quotes.derived.GrandTotal = 2500
	updated, derived, err := env.svc.Update(context.Background(), ownerID, p.ID, submitInput())
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.BaselineTotalCents != 2500 || derived.GrandTotal != 2500 {
		t.Fatalf("expected re-derived baseline 2500, got %d", updated.BaselineTotalCents)
	}
	if env.quotes.snapshots[p.ID].GrandTotal != 2500 {
		t.Fatal("expected snapshot rewritten with new derivation")
	}
}

func TestGetHidesForeignDrafts(t *testing.T) {
	env := newTestEnv(t)
	ownerID := uuid.New()
	p, _, _ := env.svc.Create(context.Background(), ownerID, submitInput())

	if _, err := env.svc.Get(context.Background(), uuid.New(), p.ID); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found for foreign draft, got %v", err)
	}
	if _, err := env.svc.Get(context.Background(), ownerID, p.ID); err != nil {
		t.Fatalf("owner must see own draft: %v", err)
	}
}

func TestMarkInBiddingOnlyFromPublished(t *testing.T) {
	env := newTestEnv(t)
	ownerID := uuid.New()
	p, _, _ := env.svc.Create(context.Background(), ownerID, submitInput())

	// Draft stays Draft.
	if err := env.svc.MarkInBidding(context.Background(), p.ID); err != nil {
		t.Fatalf("mark in bidding: %v", err)
	}
	if env.repo.projects[p.ID].Status != domain.StatusDraft {
		t.Fatal("draft must not enter bidding")
	}

	env.repo.projects[p.ID].Status = domain.StatusPublished
	if err := env.svc.MarkInBidding(context.Background(), p.ID); err != nil {
		t.Fatalf("mark in bidding: %v", err)
	}
	if env.repo.projects[p.ID].Status != domain.StatusInBidding {
		t.Fatalf("expected InBidding, got %s", env.repo.projects[p.ID].Status)
	}
}
