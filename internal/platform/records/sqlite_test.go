package records_test

import (
	"context"
	"path/filepath"
	"testing"

	apperrors "konkrete/internal/platform/errors"
	"konkrete/internal/platform/records"
)

func newStore(t *testing.T) *records.SQLiteStore {
	t.Helper()
	store, err := records.NewSQLiteStore(filepath.Join(t.TempDir(), "konkrete.db"))
	if err != nil {
		t.Fatalf("new sqlite store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordRoundtripAndOverwrite(t *testing.T) {
	t.Parallel()
	store := newStore(t)
	ctx := context.Background()

	type doc struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	if err := store.Put(ctx, "user-1", records.NameTopics, doc{Name: "Coding", Count: 1}); err != nil {
		t.Fatalf("put record: %v", err)
	}
	if err := store.Put(ctx, "user-1", records.NameTopics, doc{Name: "Coding", Count: 2}); err != nil {
		t.Fatalf("overwrite record: %v", err)
	}

	got := doc{}
	if err := store.Get(ctx, "user-1", records.NameTopics, &got); err != nil {
		t.Fatalf("get record: %v", err)
	}
	if got.Count != 2 {
		t.Fatalf("expected latest write to win, got %+v", got)
	}
}

func TestRecordScopesAreIsolated(t *testing.T) {
	t.Parallel()
	store := newStore(t)
	ctx := context.Background()

	if err := store.Put(ctx, "user-1", records.NameGymDays, []string{"2026-08-01"}); err != nil {
		t.Fatalf("put record: %v", err)
	}
	var days []string
	if err := store.Get(ctx, "user-2", records.NameGymDays, &days); err != apperrors.ErrNotFound {
		t.Fatalf("expected not found for other scope, got %v", err)
	}
}

func TestDeleteRemovesRecordEntirely(t *testing.T) {
	t.Parallel()
	store := newStore(t)
	ctx := context.Background()

	if err := store.Put(ctx, records.ScopeGlobal, records.NameActiveAccount, "user-1"); err != nil {
		t.Fatalf("put record: %v", err)
	}
	if err := store.Delete(ctx, records.ScopeGlobal, records.NameActiveAccount); err != nil {
		t.Fatalf("delete record: %v", err)
	}
	var id string
	if err := store.Get(ctx, records.ScopeGlobal, records.NameActiveAccount, &id); err != apperrors.ErrNotFound {
		t.Fatalf("expected not found after delete, got %v", err)
	}
	// deleting again is a no-op
	if err := store.Delete(ctx, records.ScopeGlobal, records.NameActiveAccount); err != nil {
		t.Fatalf("delete absent record: %v", err)
	}
}
