package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tradingdash/journal-api/internal/core/domain"
	"github.com/tradingdash/journal-api/internal/core/ports"
)

type stubJournalRepo struct {
	listedUser string
	inserted   *domain.JournalEntry
	updatedID  string
	updatedFor string
	patch      ports.JournalPatch
	deletedID  string
	deletedFor string
	err        error
}

func (r *stubJournalRepo) ListByUser(_ context.Context, userID string) ([]domain.JournalEntry, error) {
	r.listedUser = userID
	return []domain.JournalEntry{{UserID: userID}}, r.err
}

func (r *stubJournalRepo) Insert(_ context.Context, entry *domain.JournalEntry) (*domain.JournalEntry, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.inserted = entry
	created := *entry
	created.ID = "j-1"
	return &created, nil
}

func (r *stubJournalRepo) Update(_ context.Context, id, userID string, patch ports.JournalPatch) (*domain.JournalEntry, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.updatedID = id
	r.updatedFor = userID
	r.patch = patch
	return &domain.JournalEntry{ID: id, UserID: userID}, nil
}

func (r *stubJournalRepo) Delete(_ context.Context, id, userID string) error {
	if r.err != nil {
		return r.err
	}
	r.deletedID = id
	r.deletedFor = userID
	return nil
}

func newJournalSvc(repo *stubJournalRepo) *JournalService {
	return NewJournalService(repo, zerolog.Nop())
}

func strPtr(s string) *string { return &s }

func f64Ptr(f float64) *float64 { return &f }

func TestJournalList_DefaultsToCaller(t *testing.T) {
	repo := &stubJournalRepo{}
	svc := newJournalSvc(repo)

	if _, err := svc.List(context.Background(), "caller-1", ""); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if repo.listedUser != "caller-1" {
		t.Fatalf("expected caller's entries, queried %q", repo.listedUser)
	}
}

func TestJournalList_TargetUserIsPublicRead(t *testing.T) {
	repo := &stubJournalRepo{}
	svc := newJournalSvc(repo)

	if _, err := svc.List(context.Background(), "caller-1", "someone-else"); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if repo.listedUser != "someone-else" {
		t.Fatalf("expected target's entries, queried %q", repo.listedUser)
	}
}

func TestJournalCreate_OwnerComesFromIdentity(t *testing.T) {
	repo := &stubJournalRepo{}
	svc := newJournalSvc(repo)

	created, err := svc.Create(context.Background(), domain.Identity{ID: "caller-1"}, ports.CreateJournalInput{
		Symbol:    "EURUSD",
		Direction: domain.DirectionLong,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if repo.inserted.UserID != "caller-1" {
		t.Fatalf("expected owner caller-1, stored %q", repo.inserted.UserID)
	}
	if created.UserID != "caller-1" {
		t.Fatalf("unexpected owner on result: %q", created.UserID)
	}
}

func TestJournalCreate_Defaults(t *testing.T) {
	repo := &stubJournalRepo{}
	svc := newJournalSvc(repo)

	before := time.Now().UTC()
	created, err := svc.Create(context.Background(), domain.Identity{ID: "caller-1"}, ports.CreateJournalInput{
		Symbol:    "EURUSD",
		Direction: domain.DirectionShort,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.Status != domain.StatusOpen {
		t.Fatalf("expected default status %q, got %q", domain.StatusOpen, created.Status)
	}
	if created.TradeDate.Before(before) || created.TradeDate.After(time.Now().UTC()) {
		t.Fatalf("expected trade_date defaulted to now, got %v", created.TradeDate)
	}
}

func TestJournalCreate_ExplicitTradeDateKept(t *testing.T) {
	repo := &stubJournalRepo{}
	svc := newJournalSvc(repo)

	date := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	created, err := svc.Create(context.Background(), domain.Identity{ID: "caller-1"}, ports.CreateJournalInput{
		Symbol:    "GBPUSD",
		Direction: domain.DirectionLong,
		TradeDate: &date,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if !created.TradeDate.Equal(date) {
		t.Fatalf("expected trade_date %v, got %v", date, created.TradeDate)
	}
}

func TestJournalUpdate_PatchContainsOnlyPresentFields(t *testing.T) {
	repo := &stubJournalRepo{}
	svc := newJournalSvc(repo)

	_, err := svc.Update(context.Background(), "caller-1", "j-1", ports.UpdateJournalInput{
		Status:    strPtr("Closed"),
		ExitPrice: f64Ptr(1.0952),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if len(repo.patch) != 2 {
		t.Fatalf("expected 2 patched columns, got %v", repo.patch)
	}
	if repo.patch["status"] != "Closed" {
		t.Fatalf("status missing from patch: %v", repo.patch)
	}
	if _, ok := repo.patch["symbol"]; ok {
		t.Fatalf("unset field leaked into patch: %v", repo.patch)
	}
	if repo.updatedID != "j-1" || repo.updatedFor != "caller-1" {
		t.Fatalf("update not ownership-scoped: id=%q user=%q", repo.updatedID, repo.updatedFor)
	}
}

func TestJournalUpdate_EmptyInputRejected(t *testing.T) {
	repo := &stubJournalRepo{}
	svc := newJournalSvc(repo)

	if _, err := svc.Update(context.Background(), "caller-1", "j-1", ports.UpdateJournalInput{}); !errors.Is(err, domain.ErrEmptyUpdate) {
		t.Fatalf("expected ErrEmptyUpdate, got %v", err)
	}
	if repo.updatedID != "" {
		t.Fatalf("repository reached with empty patch")
	}
}

func TestJournalUpdate_NotFoundPassthrough(t *testing.T) {
	repo := &stubJournalRepo{err: domain.ErrJournalNotFound}
	svc := newJournalSvc(repo)

	_, err := svc.Update(context.Background(), "caller-1", "missing", ports.UpdateJournalInput{Status: strPtr("Closed")})
	if !errors.Is(err, domain.ErrJournalNotFound) {
		t.Fatalf("expected ErrJournalNotFound, got %v", err)
	}
}

func TestJournalDelete_OwnershipScoped(t *testing.T) {
	repo := &stubJournalRepo{}
	svc := newJournalSvc(repo)

	if err := svc.Delete(context.Background(), "caller-1", "j-9"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if repo.deletedID != "j-9" || repo.deletedFor != "caller-1" {
		t.Fatalf("delete not ownership-scoped: id=%q user=%q", repo.deletedID, repo.deletedFor)
	}
}
