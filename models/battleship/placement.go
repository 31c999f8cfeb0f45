package battleship

import (
	"errors"
	"math/rand/v2"

	cerr "github.com/saeidalz13/battleship-engine/internal/error"
)

const maxPlacementAttempts = 50

type direction uint8

const (
	directionUp direction = iota
	directionDown
	directionLeft
	directionRight
)

func (d direction) step() (int, int) {
	switch d {
	case directionUp:
		return 0, -1
	case directionDown:
		return 0, 1
	case directionLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

// RandomShipSquares draws a straight run of `size` squares starting at a
// random origin. The run may leave the grid; PlaceShip rejects those.
func RandomShipSquares(rng *rand.Rand, size int) []Coordinates {
	origin := NewCoordinates(rng.IntN(GridSize), rng.IntN(GridSize))
	dx, dy := direction(rng.IntN(4)).step()

	squares := make([]Coordinates, size)
	for i := range squares {
		squares[i] = NewCoordinates(origin.X+i*dx, origin.Y+i*dy)
	}
	return squares
}

// PlaceFleetRandomly places the triple, double and single ship in that
// order, retrying rejected layouts.
func PlaceFleetRandomly(inv *ShipInventory, rng *rand.Rand) error {
	for size := MaxShipSize; size >= MinShipSize; size-- {
		if err := placeShipRandomly(inv, rng, size); err != nil {
			return err
		}
	}
	return nil
}

func placeShipRandomly(inv *ShipInventory, rng *rand.Rand, size int) error {
	for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
		err := inv.PlaceShip(RandomShipSquares(rng, size))
		if err == nil {
			return nil
		}
		if !isRetryablePlacementErr(err) {
			return err
		}
	}
	return cerr.ErrRandomPlacementFailed(size, maxPlacementAttempts)
}

func isRetryablePlacementErr(err error) bool {
	return errors.Is(err, cerr.ErrOutOfRange) ||
		errors.Is(err, cerr.ErrInvalidShape) ||
		errors.Is(err, cerr.ErrTooClose)
}
