package battleship

import (
	"slices"

	cerr "github.com/saeidalz13/battleship-engine/internal/error"
)

const (
	MinShipSize = 1
	MaxShipSize = 3

	// A ship that fired this many shots in a round pauses in the next one
	pausingAfterShots = 2
)

// Indexes are ship sizes; index 0 is unused.
var (
	shipRanges   = [MaxShipSize + 1]int{0, 2, 3, 4}
	shipMaxShots = [MaxShipSize + 1]int{0, 1, 2, 2}
)

func IsShipSizeValid(size int) bool {
	return size >= MinShipSize && size <= MaxShipSize
}

type Ship struct {
	size           int
	squares        []Coordinates
	hits           int
	shotsThisRound int
	isPausing      bool
}

func NewShip(size int) *Ship {
	return &Ship{size: size}
}

func (sh *Ship) Size() int {
	return sh.size
}

// Range is the Chebyshev radius around each square of the ship in which
// it may fire.
func (sh *Ship) Range() int {
	return shipRanges[sh.size]
}

func (sh *Ship) MaxShots() int {
	return shipMaxShots[sh.size]
}

func (sh *Ship) Hits() int {
	return sh.hits
}

func (sh *Ship) ShotsThisRound() int {
	return sh.shotsThisRound
}

func (sh *Ship) IsPlaced() bool {
	return len(sh.squares) > 0
}

func (sh *Ship) IsSunk() bool {
	return sh.IsPlaced() && sh.hits >= sh.size
}

func (sh *Ship) IsPausing() bool {
	return sh.isPausing
}

// OccupiedSquares returns a copy of the ship squares ordered by X and
// then by Y.
func (sh *Ship) OccupiedSquares() ([]Coordinates, error) {
	if !sh.IsPlaced() {
		return nil, cerr.ErrShipNotPlaced(sh.size)
	}
	return slices.Clone(sh.squares), nil
}

// Place stores the squares the ship occupies. Shape and adjacency are
// validated by ShipInventory; a new placement starts with a clean state.
func (sh *Ship) Place(squares []Coordinates) error {
	if len(squares) == 0 {
		return cerr.ErrShipNotPlaced(sh.size)
	}

	sh.squares = slices.Clone(squares)
	slices.SortFunc(sh.squares, Coordinates.Compare)
	sh.hits = 0
	sh.shotsThisRound = 0
	sh.isPausing = false
	return nil
}

func (sh *Ship) CanFireThisRound() bool {
	return sh.IsPlaced() && !sh.isPausing && sh.shotsThisRound < sh.MaxShots() && !sh.IsSunk()
}

func (sh *Ship) Fire() error {
	if !sh.CanFireThisRound() {
		return cerr.ErrShipCannotFire(sh.size)
	}
	sh.shotsThisRound++
	return nil
}

func (sh *Ship) ReceiveHit() error {
	if !sh.IsPlaced() || sh.IsSunk() {
		return cerr.ErrShipCannotTakeHit(sh.size)
	}
	sh.hits++
	return nil
}

// AdvanceRound closes the current round. The shots fired in it decide
// whether the ship pauses in the next one. Sunk ships never pause.
func (sh *Ship) AdvanceRound() error {
	if !sh.IsPlaced() {
		return cerr.ErrShipNotPlacedForRound(sh.size)
	}

	sh.isPausing = !sh.IsSunk() && sh.shotsThisRound >= pausingAfterShots
	sh.shotsThisRound = 0
	return nil
}

func (sh *Ship) ForcePause() {
	sh.isPausing = true
}
