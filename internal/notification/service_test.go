package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"maatwerk_backend/internal/events"
	projdomain "maatwerk_backend/internal/projects/domain"
	"maatwerk_backend/platform/apperr"
	"maatwerk_backend/platform/logger"
)

type fakeSender struct {
	received []string
	accepted []string
	rejected []string
	expired  []bool
	fail     bool
}

func (f *fakeSender) SendBidReceivedEmail(_ context.Context, to, _ string, _ int64, _ int, _ string) error {
	if f.fail {
		return errors.New("smtp down")
	}
	f.received = append(f.received, to)
	return nil
}

func (f *fakeSender) SendBidAcceptedEmail(_ context.Context, to, _ string, _ int64, _ string) error {
	if f.fail {
		return errors.New("smtp down")
	}
	f.accepted = append(f.accepted, to)
	return nil
}

func (f *fakeSender) SendBidRejectedEmail(_ context.Context, to, _ string, expired bool) error {
	if f.fail {
		return errors.New("smtp down")
	}
	f.rejected = append(f.rejected, to)
	f.expired = append(f.expired, expired)
	return nil
}

type fakeDirectory struct {
	emails map[uuid.UUID]string
}

func (f *fakeDirectory) Email(_ context.Context, userID uuid.UUID) string {
	return f.emails[userID]
}

type fakeProjects struct {
	title string
}

func (f *fakeProjects) Find(_ context.Context, id uuid.UUID) (*projdomain.Project, error) {
	if f.title == "" {
		return nil, apperr.NotFound("project not found")
	}
	return &projdomain.Project{ID: id, Title: f.title}, nil
}

func newTestSetup(t *testing.T) (*events.InMemoryBus, *fakeSender, *fakeDirectory) {
	t.Helper()
	log := logger.New("development")
	bus := events.NewInMemoryBus(log)
	sender := &fakeSender{}
	directory := &fakeDirectory{emails: make(map[uuid.UUID]string)}
	svc := New(sender, directory, &fakeProjects{title: "Achterdeur"}, "http://localhost:5173", log)
	svc.Register(bus)
	return bus, sender, directory
}

func TestBidSubmittedMailsOwner(t *testing.T) {
	bus, sender, directory := newTestSetup(t)
	ownerID := uuid.New()
	directory.emails[ownerID] = "owner@example.com"

	err := bus.PublishSync(context.Background(), events.BidSubmitted{
		BaseEvent: events.NewBaseEvent(),
		BidID:     uuid.New(), ProjectID: uuid.New(), OwnerID: ownerID,
		MerchantID: uuid.New(), PriceCents: 1500, Days: 7,
	})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}

	if len(sender.received) != 1 || sender.received[0] != "owner@example.com" {
		t.Fatalf("expected one mail to the owner, got %v", sender.received)
	}
}

func TestBidAcceptedMailsMerchant(t *testing.T) {
	bus, sender, directory := newTestSetup(t)
	merchantID := uuid.New()
	directory.emails[merchantID] = "merchant@example.com"

	err := bus.PublishSync(context.Background(), events.BidAccepted{
		BaseEvent: events.NewBaseEvent(),
		BidID:     uuid.New(), ProjectID: uuid.New(), MerchantID: merchantID, PriceCents: 1500,
	})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}

	if len(sender.accepted) != 1 || sender.accepted[0] != "merchant@example.com" {
		t.Fatalf("expected one mail to the merchant, got %v", sender.accepted)
	}
}

func TestBidRejectedCarriesExpiredFlag(t *testing.T) {
	bus, sender, directory := newTestSetup(t)
	merchantID := uuid.New()
	directory.emails[merchantID] = "merchant@example.com"

	err := bus.PublishSync(context.Background(), events.BidRejected{
		BaseEvent: events.NewBaseEvent(),
		BidID:     uuid.New(), ProjectID: uuid.New(), MerchantID: merchantID, Expired: true,
	})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}

	if len(sender.expired) != 1 || !sender.expired[0] {
		t.Fatalf("expected expired rejection mail, got %v", sender.expired)
	}
}

func TestMissingProfileSkipsQuietly(t *testing.T) {
	bus, sender, _ := newTestSetup(t)

	err := bus.PublishSync(context.Background(), events.BidSubmitted{
		BaseEvent: events.NewBaseEvent(),
		BidID:     uuid.New(), ProjectID: uuid.New(), OwnerID: uuid.New(),
		MerchantID: uuid.New(), PriceCents: 1500, Days: 7,
	})
	if err != nil {
		t.Fatalf("missing profile must not error: %v", err)
	}
	if len(sender.received) != 0 {
		t.Fatalf("expected no mail, got %v", sender.received)
	}
}

func TestSendFailureNeverPropagates(t *testing.T) {
	bus, sender, directory := newTestSetup(t)
	sender.fail = true
	ownerID := uuid.New()
	directory.emails[ownerID] = "owner@example.com"

	err := bus.PublishSync(context.Background(), events.BidSubmitted{
		BaseEvent: events.NewBaseEvent(),
		BidID:     uuid.New(), ProjectID: uuid.New(), OwnerID: ownerID,
		MerchantID: uuid.New(), PriceCents: 1500, Days: 7,
	})
	if err != nil {
		t.Fatalf("delivery failure must not propagate: %v", err)
	}
}
