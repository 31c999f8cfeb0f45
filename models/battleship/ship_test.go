package battleship_test

import (
	"errors"
	"testing"

	cerr "github.com/saeidalz13/battleship-engine/internal/error"
	mb "github.com/saeidalz13/battleship-engine/models/battleship"
)

func TestUnplacedShip(t *testing.T) {
	for size := mb.MinShipSize; size <= mb.MaxShipSize; size++ {
		ship := mb.NewShip(size)

		if ship.IsPlaced() || ship.IsSunk() || ship.IsPausing() || ship.CanFireThisRound() {
			t.Fatalf("expected fresh ship of size %d to be idle", size)
		}
		if _, err := ship.OccupiedSquares(); !errors.Is(err, cerr.ErrNotPlaced) {
			t.Fatalf("expected error: %v\tgot: %v", cerr.ErrNotPlaced, err)
		}
		if err := ship.Fire(); !errors.Is(err, cerr.ErrInvalidOperation) {
			t.Fatalf("expected error: %v\tgot: %v", cerr.ErrInvalidOperation, err)
		}
		if err := ship.ReceiveHit(); !errors.Is(err, cerr.ErrInvalidOperation) {
			t.Fatalf("expected error: %v\tgot: %v", cerr.ErrInvalidOperation, err)
		}
		if err := ship.AdvanceRound(); !errors.Is(err, cerr.ErrInvalidOperation) {
			t.Fatalf("expected error: %v\tgot: %v", cerr.ErrInvalidOperation, err)
		}
		if err := ship.Place(nil); !errors.Is(err, cerr.ErrNotPlaced) {
			t.Fatalf("expected error: %v\tgot: %v", cerr.ErrNotPlaced, err)
		}
	}
}

func TestShipStats(t *testing.T) {
	tests := []struct {
		size     int
		rng      int
		maxShots int
	}{
		{size: 1, rng: 2, maxShots: 1},
		{size: 2, rng: 3, maxShots: 2},
		{size: 3, rng: 4, maxShots: 2},
	}

	for _, test := range tests {
		ship := mb.NewShip(test.size)
		if ship.Range() != test.rng {
			t.Fatalf("expected range: %d\tgot: %d", test.rng, ship.Range())
		}
		if ship.MaxShots() != test.maxShots {
			t.Fatalf("expected max shots: %d\tgot: %d", test.maxShots, ship.MaxShots())
		}
	}
}

func TestSingleShipFiring(t *testing.T) {
	ship := placedShip(t, 4, 4)

	if err := ship.Fire(); err != nil {
		t.Fatal(err)
	}
	if ship.CanFireThisRound() {
		t.Fatal("single ship fires once per round")
	}

	// One shot is below the pause threshold
	if err := ship.AdvanceRound(); err != nil {
		t.Fatal(err)
	}
	if ship.IsPausing() || !ship.CanFireThisRound() {
		t.Fatal("expected single ship to fire again next round")
	}

	if err := ship.ReceiveHit(); err != nil {
		t.Fatal(err)
	}
	if !ship.IsSunk() || ship.CanFireThisRound() {
		t.Fatal("expected single ship sunk by one hit")
	}
	if err := ship.ReceiveHit(); !errors.Is(err, cerr.ErrInvalidOperation) {
		t.Fatalf("expected error: %v\tgot: %v", cerr.ErrInvalidOperation, err)
	}
	if err := ship.AdvanceRound(); err != nil {
		t.Fatal(err)
	}
	if !ship.IsSunk() || ship.IsPausing() {
		t.Fatal("expected sunk ship to stay sunk and never pause")
	}
}

func TestDoubleShipFiring(t *testing.T) {
	ship := placedShip(t, 3, 4, 4, 4)

	steps := []struct {
		name     string
		action   func() error
		canFire  bool
		pausing  bool
		expected error
	}{
		{name: "first shot", action: ship.Fire, canFire: true},
		{name: "second shot", action: ship.Fire, canFire: false},
		{name: "third shot", action: ship.Fire, canFire: false, expected: cerr.ErrInvalidOperation},
		{name: "pause after two shots", action: ship.AdvanceRound, canFire: false, pausing: true},
		{name: "fire while pausing", action: ship.Fire, canFire: false, pausing: true, expected: cerr.ErrInvalidOperation},
		{name: "back in action", action: ship.AdvanceRound, canFire: true},
		{name: "one shot", action: ship.Fire, canFire: true},
		{name: "no pause after one shot", action: ship.AdvanceRound, canFire: true},
	}

	for _, step := range steps {
		err := step.action()
		if step.expected != nil {
			if !errors.Is(err, step.expected) {
				t.Fatalf("%s: expected error: %v\tgot: %v", step.name, step.expected, err)
			}
		} else if err != nil {
			t.Fatalf("%s: %v", step.name, err)
		}

		if ship.CanFireThisRound() != step.canFire {
			t.Fatalf("%s: expected can fire: %v\tgot: %v", step.name, step.canFire, ship.CanFireThisRound())
		}
		if ship.IsPausing() != step.pausing {
			t.Fatalf("%s: expected pausing: %v\tgot: %v", step.name, step.pausing, ship.IsPausing())
		}
	}
}

func TestSunkShipNeverPauses(t *testing.T) {
	ship := placedShip(t, 0, 0, 0, 1, 0, 2)

	for i := 0; i < 2; i++ {
		if err := ship.Fire(); err != nil {
			t.Fatal(err)
		}
	}
	for i := 0; i < 3; i++ {
		if err := ship.ReceiveHit(); err != nil {
			t.Fatal(err)
		}
	}
	if err := ship.AdvanceRound(); err != nil {
		t.Fatal(err)
	}

	if ship.IsPausing() {
		t.Fatal("expected sunk ship not to pause")
	}
	if ship.Hits() != 3 || ship.ShotsThisRound() != 0 {
		t.Fatalf("expected hits: 3\tshots: 0\tgot hits: %d\tshots: %d", ship.Hits(), ship.ShotsThisRound())
	}
}

func TestShipPlaceSortsAndResets(t *testing.T) {
	ship := placedShip(t, 5, 7, 5, 5, 5, 6)
	if err := ship.ReceiveHit(); err != nil {
		t.Fatal(err)
	}
	ship.ForcePause()

	squares, err := ship.OccupiedSquares()
	if err != nil {
		t.Fatal(err)
	}
	expected := sq(5, 5, 5, 6, 5, 7)
	for i := range expected {
		if squares[i] != expected[i] {
			t.Fatalf("expected square: %v\tgot: %v", expected[i], squares[i])
		}
	}

	// The returned slice is a copy
	squares[0] = mb.NewCoordinates(9, 9)
	again, _ := ship.OccupiedSquares()
	if again[0] != expected[0] {
		t.Fatal("expected occupied squares to be a copy")
	}

	if err := ship.Place(sq(1, 1, 2, 1, 3, 1)); err != nil {
		t.Fatal(err)
	}
	if ship.Hits() != 0 || ship.IsPausing() {
		t.Fatal("expected placement to reset the ship")
	}
}
