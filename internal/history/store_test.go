package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordAndRecent(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	runs := []Run{
		{ID: "a", Outcome: OutcomeDeath, Floor: 2, Turns: 150, CharacterLevel: 2, Kills: 7, FinishedAt: base},
		{ID: "b", Outcome: OutcomeVictory, Floor: 5, Turns: 900, CharacterLevel: 6, Kills: 40, FinishedAt: base.Add(time.Hour)},
		{ID: "c", Outcome: OutcomeQuit, Floor: 1, Turns: 10, CharacterLevel: 1, Kills: 0, FinishedAt: base.Add(2 * time.Hour)},
	}
	for _, run := range runs {
		if err := store.Record(ctx, run); err != nil {
			t.Fatalf("Record(%s) error = %v", run.ID, err)
		}
	}

	got, err := store.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(Recent(2)) = %d, want 2", len(got))
	}
	if got[0].ID != "c" || got[1].ID != "b" {
		t.Errorf("Recent() order = %s,%s; want c,b", got[0].ID, got[1].ID)
	}
	if got[1] != runs[1] {
		t.Errorf("Recent()[1] = %+v, want %+v", got[1], runs[1])
	}
}

func TestRecordReplacesSameRun(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.Record(ctx, Run{ID: "r", Outcome: OutcomeQuit, Floor: 1}); err != nil {
		t.Fatal(err)
	}
	if err := store.Record(ctx, Run{ID: "r", Outcome: OutcomeDeath, Floor: 3}); err != nil {
		t.Fatal(err)
	}
	got, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Outcome != OutcomeDeath || got[0].Floor != 3 {
		t.Errorf("Recent() = %+v, want one death on floor 3", got)
	}
}

func TestRecordRequiresID(t *testing.T) {
	store := openTestStore(t)
	if err := store.Record(context.Background(), Run{}); err == nil {
		t.Error("Record() without id should fail")
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	store, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Record(context.Background(), Run{ID: "x", Outcome: OutcomeQuit}); err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	store, err = Open(path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer store.Close()
	got, err := store.Recent(context.Background(), 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Errorf("len(Recent()) after reopen = %d, want 1", len(got))
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Error("Open(blank) should fail")
	}
}
