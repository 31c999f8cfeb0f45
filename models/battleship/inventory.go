package battleship

import (
	"slices"

	cerr "github.com/saeidalz13/battleship-engine/internal/error"
)

// ShipInventory is the authoritative board of a player's own fleet. It
// owns one ship of every size and resolves the opponent's shots.
type ShipInventory struct {
	grid  *Grid
	ships [MaxShipSize]*Ship
}

func NewShipInventory() *ShipInventory {
	inv := &ShipInventory{grid: NewGrid()}
	for size := MinShipSize; size <= MaxShipSize; size++ {
		inv.ships[size-1] = NewShip(size)
	}
	return inv
}

func (inv *ShipInventory) Ship(size int) (*Ship, error) {
	if !IsShipSizeValid(size) {
		return nil, cerr.ErrShipSizeInvalid(size)
	}
	return inv.ships[size-1], nil
}

// Ships returns the fleet ordered by size.
func (inv *ShipInventory) Ships() []*Ship {
	return inv.ships[:]
}

func (inv *ShipInventory) Read(c Coordinates) (PositionState, error) {
	return inv.grid.Read(c)
}

func (inv *ShipInventory) SunkSizes() []int {
	return inv.grid.SunkSizes()
}

// PlaceShip puts the ship whose size is len(squares) on the grid,
// replacing any previous placement of the same ship.
func (inv *ShipInventory) PlaceShip(squares []Coordinates) error {
	size := len(squares)
	if !IsShipSizeValid(size) {
		return cerr.ErrShipSizeInvalid(size)
	}

	sorted := slices.Clone(squares)
	slices.SortFunc(sorted, Coordinates.Compare)

	for _, c := range sorted {
		if !c.IsInGrid() {
			return cerr.ErrXorYOutOfGridBound(c.X, c.Y)
		}
	}

	if !isStraightRun(sorted) {
		return cerr.ErrShipShapeNotStraight(size)
	}

	// Same size markers belong to the ship being moved
	ownState := positionStateForSize(size)
	for _, c := range sorted {
		for _, n := range c.neighbours(1) {
			ps := inv.grid.positions[n.X][n.Y]
			if ps != PositionStateEmpty && ps != ownState {
				return cerr.ErrShipTooClose(c.X, c.Y)
			}
		}
	}

	ship := inv.ships[size-1]
	if ship.IsPlaced() {
		for _, c := range ship.squares {
			inv.grid.set(c, PositionStateEmpty)
		}
	}

	for _, c := range sorted {
		inv.grid.set(c, ownState)
	}
	return ship.Place(sorted)
}

// isStraightRun expects squares sorted by X then Y.
func isStraightRun(sorted []Coordinates) bool {
	first, last := sorted[0], sorted[len(sorted)-1]
	length := len(sorted)

	horizontal := first.X == last.X && last.Y-first.Y+1 == length
	vertical := first.Y == last.Y && last.X-first.X+1 == length
	if !horizontal && !vertical {
		return false
	}

	// Duplicated squares would pass the span check above
	for i := 1; i < length; i++ {
		if sorted[i] == sorted[i-1] {
			return false
		}
	}
	return true
}

// ResolveIncomingShot applies the opponent's shot at c to the fleet.
func (inv *ShipInventory) ResolveIncomingShot(c Coordinates) (ShotResult, error) {
	ps, err := inv.grid.Read(c)
	if err != nil {
		return ShotResultMiss, err
	}

	if ps == PositionStateEmpty {
		inv.grid.set(c, PositionStateMiss)
		return ShotResultMiss, nil
	}
	if !ps.IsShip() {
		return ShotResultMiss, cerr.ErrPositionAlreadyResolved(c.X, c.Y)
	}

	ship := inv.ships[sizeForPositionState(ps)-1]
	if err := ship.ReceiveHit(); err != nil {
		return ShotResultMiss, err
	}

	if !ship.IsSunk() {
		inv.grid.set(c, PositionStateHit)
		return ShotResultHit, nil
	}

	for _, square := range ship.squares {
		inv.grid.set(square, PositionStateSunk)
	}
	inv.grid.sunkSizes[ship.size] = true
	return ShotResultSunk, nil
}

// FireFrom lets the ship of the given size take a shot. Every other ship
// pauses for the remainder of the round.
func (inv *ShipInventory) FireFrom(size int) error {
	ship, err := inv.Ship(size)
	if err != nil {
		return err
	}
	if !ship.CanFireThisRound() {
		return cerr.ErrShipCannotFire(size)
	}

	for _, other := range inv.ships {
		if other != ship {
			other.ForcePause()
		}
	}
	return ship.Fire()
}

func (inv *ShipInventory) AdvanceRound() error {
	for _, ship := range inv.ships {
		if err := ship.AdvanceRound(); err != nil {
			return err
		}
	}
	return nil
}

// PauseShips pauses the ships with the given sizes. It is used to restore
// saved games.
func (inv *ShipInventory) PauseShips(sizes []int) error {
	if len(sizes) > len(inv.ships) {
		return cerr.ErrShipSizeInvalid(len(sizes))
	}
	for _, size := range sizes {
		if !IsShipSizeValid(size) {
			return cerr.ErrShipSizeInvalid(size)
		}
	}

	for _, size := range sizes {
		inv.ships[size-1].ForcePause()
	}
	return nil
}
