package battleship_test

import (
	"context"
	"math/rand/v2"
	"strings"
	"testing"

	cerr "github.com/saeidalz13/battleship-engine/internal/error"
	mb "github.com/saeidalz13/battleship-engine/models/battleship"
)

// sq builds coordinates from x, y pairs.
func sq(xy ...int) []mb.Coordinates {
	squares := make([]mb.Coordinates, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		squares = append(squares, mb.NewCoordinates(xy[i], xy[i+1]))
	}
	return squares
}

func placedShip(t *testing.T, xy ...int) *mb.Ship {
	t.Helper()

	squares := sq(xy...)
	ship := mb.NewShip(len(squares))
	if err := ship.Place(squares); err != nil {
		t.Fatal(err)
	}
	return ship
}

func rectangle(x0, x1, y0, y1 int) mb.CoordinatesSet {
	set := make(mb.CoordinatesSet)
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			set[mb.NewCoordinates(x, y)] = struct{}{}
		}
	}
	return set
}

func assertSameSet(t *testing.T, expected, got mb.CoordinatesSet) {
	t.Helper()

	if len(expected) != len(got) {
		t.Fatalf("expected set size: %d\tgot: %d", len(expected), len(got))
	}
	for c := range expected {
		if !got.Contains(c) {
			t.Fatalf("expected square missing from set\tx: %d\ty: %d", c.X, c.Y)
		}
	}
}

// Ships at (2,2), (6,3)(6,4) and (3,8)(4,8)(5,8).
func fleetInventory(t *testing.T) *mb.ShipInventory {
	t.Helper()

	inv := mb.NewShipInventory()
	placeFleet(t, inv)
	return inv
}

func placeFleet(t *testing.T, inv *mb.ShipInventory) {
	t.Helper()

	for _, squares := range [][]mb.Coordinates{sq(2, 2), sq(6, 3, 6, 4), sq(3, 8, 4, 8, 5, 8)} {
		if err := inv.PlaceShip(squares); err != nil {
			t.Fatal(err)
		}
	}
}

func newRng(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// scriptedUI replays canned input and records everything shown.
type scriptedUI struct {
	squares  []mb.Coordinates
	ships    []int
	answers  []bool
	messages []string
	renders  int
}

var _ mb.UI = (*scriptedUI)(nil)

func (ui *scriptedUI) Clear() {}

func (ui *scriptedUI) DisplayPlayer(*mb.Combatant) {
	ui.renders++
}

func (ui *scriptedUI) DisplayPlayers(_, _ *mb.Combatant) {
	ui.renders++
}

func (ui *scriptedUI) DisplayMessage(msg string) {
	ui.messages = append(ui.messages, msg)
}

func (ui *scriptedUI) ChooseShip() (int, error) {
	if len(ui.ships) == 0 {
		return 0, cerr.ErrQuit
	}
	size := ui.ships[0]
	ui.ships = ui.ships[1:]
	return size, nil
}

func (ui *scriptedUI) ChooseSquare() (mb.Coordinates, error) {
	if len(ui.squares) == 0 {
		return mb.Coordinates{}, cerr.ErrQuit
	}
	c := ui.squares[0]
	ui.squares = ui.squares[1:]
	return c, nil
}

func (ui *scriptedUI) AskQuestion(string) (bool, error) {
	if len(ui.answers) == 0 {
		return false, cerr.ErrQuit
	}
	answer := ui.answers[0]
	ui.answers = ui.answers[1:]
	return answer, nil
}

func (ui *scriptedUI) saw(msg string) bool {
	for _, m := range ui.messages {
		if strings.Contains(m, msg) {
			return true
		}
	}
	return false
}

type memoryStore struct {
	saves   map[string]mb.Snapshot
	history []mb.Snapshot
}

var _ mb.SaveStore = (*memoryStore)(nil)

func newMemoryStore() *memoryStore {
	return &memoryStore{saves: make(map[string]mb.Snapshot)}
}

func (ms *memoryStore) Save(_ context.Context, slot string, snap mb.Snapshot) error {
	ms.history = append(ms.history, snap)
	ms.saves[slot] = snap
	return nil
}

func (ms *memoryStore) Load(_ context.Context, slot string) (mb.Snapshot, error) {
	snap, prs := ms.saves[slot]
	if !prs {
		return mb.Snapshot{}, cerr.ErrSaveSlotNotFound(slot)
	}
	return snap, nil
}

func (ms *memoryStore) Delete(_ context.Context, slot string) error {
	delete(ms.saves, slot)
	return nil
}
