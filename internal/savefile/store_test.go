package savefile_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	cerr "github.com/saeidalz13/battleship-engine/internal/error"
	"github.com/saeidalz13/battleship-engine/internal/savefile"
	mb "github.com/saeidalz13/battleship-engine/models/battleship"
)

func sampleSnapshot() mb.Snapshot {
	return mb.Snapshot{
		SavedAt:      time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Round:        4,
		MaxRounds:    10,
		PlayerKind:   mb.PlayerKindHuman,
		OpponentKind: mb.PlayerKindGreedy,
		Player: mb.SideSnapshot{
			Ships: []mb.ShipSnapshot{
				{Size: 1, Squares: []mb.Coordinates{{X: 2, Y: 2}}},
				{Size: 2, Squares: []mb.Coordinates{{X: 6, Y: 3}, {X: 6, Y: 4}}, Pausing: true},
				{Size: 3, Squares: []mb.Coordinates{{X: 3, Y: 8}, {X: 4, Y: 8}, {X: 5, Y: 8}}},
			},
			Shots: []mb.Coordinates{{X: 0, Y: 0}},
		},
		Opponent: mb.SideSnapshot{
			Ships: []mb.ShipSnapshot{
				{Size: 1, Squares: []mb.Coordinates{{X: 9, Y: 9}}},
				{Size: 2, Squares: []mb.Coordinates{{X: 0, Y: 0}, {X: 0, Y: 1}}},
				{Size: 3, Squares: []mb.Coordinates{{X: 6, Y: 3}, {X: 6, Y: 4}, {X: 6, Y: 5}}},
			},
			Shots: []mb.Coordinates{},
		},
	}
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := savefile.NewStore(t.TempDir())
	expected := sampleSnapshot()

	if err := store.Save(ctx, "autosave", expected); err != nil {
		t.Fatal(err)
	}
	got, err := store.Load(ctx, "autosave")
	if err != nil {
		t.Fatal(err)
	}

	if !got.SavedAt.Equal(expected.SavedAt) {
		t.Fatalf("expected saved at: %s\tgot: %s", expected.SavedAt, got.SavedAt)
	}
	got.SavedAt = expected.SavedAt
	if !reflect.DeepEqual(expected, got) {
		t.Fatalf("expected: %+v\tgot: %+v", expected, got)
	}

	// Saving again overwrites the slot
	expected.Round = 5
	if err := store.Save(ctx, "autosave", expected); err != nil {
		t.Fatal(err)
	}
	got, err = store.Load(ctx, "autosave")
	if err != nil {
		t.Fatal(err)
	}
	if got.Round != 5 {
		t.Fatalf("expected round: 5\tgot: %d", got.Round)
	}
}

func TestStorePath(t *testing.T) {
	dir := t.TempDir()
	store := savefile.NewStore(dir)

	tests := []struct {
		slot     string
		expected string
	}{
		{slot: "autosave", expected: filepath.Join(dir, "autosave.json")},
		{slot: "game.json", expected: "game.json"},
		{slot: filepath.Join(dir, "nested", "slot"), expected: filepath.Join(dir, "nested", "slot")},
	}

	for _, test := range tests {
		if got := store.Path(test.slot); got != test.expected {
			t.Fatalf("expected path: %s\tgot: %s", test.expected, got)
		}
	}

	if err := store.Save(context.Background(), tests[2].slot, sampleSnapshot()); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(tests[2].expected); err != nil {
		t.Fatal(err)
	}
}

func TestStoreLoadErrors(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := savefile.NewStore(dir)

	if _, err := store.Load(ctx, "missing"); !errors.Is(err, cerr.ErrSaveNotFound) {
		t.Fatalf("expected error: %v\tgot: %v", cerr.ErrSaveNotFound, err)
	}

	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{round: 1"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Load(ctx, "broken"); !errors.Is(err, cerr.ErrInvalidSaveState) {
		t.Fatalf("expected error: %v\tgot: %v", cerr.ErrInvalidSaveState, err)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := store.Load(cancelled, "broken"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected error: %v\tgot: %v", context.Canceled, err)
	}
}

func TestStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := savefile.NewStore(t.TempDir())

	if err := store.Save(ctx, "slot", sampleSnapshot()); err != nil {
		t.Fatal(err)
	}
	if err := store.Delete(ctx, "slot"); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Load(ctx, "slot"); !errors.Is(err, cerr.ErrSaveNotFound) {
		t.Fatalf("expected error: %v\tgot: %v", cerr.ErrSaveNotFound, err)
	}
	if err := store.Delete(ctx, "slot"); err != nil {
		t.Fatalf("expected deleting a missing slot to succeed, got: %v", err)
	}
}
