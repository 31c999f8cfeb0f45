package battleship

import (
	"math/rand/v2"
	"slices"

	cerr "github.com/saeidalz13/battleship-engine/internal/error"
)

// ShootStrategy picks which ship fires and where.
type ShootStrategy interface {
	ChooseShip(sizes []int) (int, error)
	ChooseSquare(squares CoordinatesSet) (Coordinates, error)
}

type RandomStrategy struct {
	rng *rand.Rand
}

var _ ShootStrategy = (*RandomStrategy)(nil)

func NewRandomStrategy(rng *rand.Rand) *RandomStrategy {
	return &RandomStrategy{rng: rng}
}

func (rs *RandomStrategy) ChooseShip(sizes []int) (int, error) {
	if len(sizes) == 0 {
		return 0, cerr.ErrNothingToChoose("no ship to choose")
	}
	return sizes[rs.rng.IntN(len(sizes))], nil
}

func (rs *RandomStrategy) ChooseSquare(squares CoordinatesSet) (Coordinates, error) {
	return chooseRandomSquare(rs.rng, squares)
}

// GreedyStrategy always fires the largest ship it can.
type GreedyStrategy struct {
	rng *rand.Rand
}

var _ ShootStrategy = (*GreedyStrategy)(nil)

func NewGreedyStrategy(rng *rand.Rand) *GreedyStrategy {
	return &GreedyStrategy{rng: rng}
}

func (gs *GreedyStrategy) ChooseShip(sizes []int) (int, error) {
	if len(sizes) == 0 {
		return 0, cerr.ErrNothingToChoose("no ship to choose")
	}
	return slices.Max(sizes), nil
}

func (gs *GreedyStrategy) ChooseSquare(squares CoordinatesSet) (Coordinates, error) {
	return chooseRandomSquare(gs.rng, squares)
}

// Map iteration order is random on its own, so squares are sorted first
// to keep seeded games reproducible.
func chooseRandomSquare(rng *rand.Rand, squares CoordinatesSet) (Coordinates, error) {
	if len(squares) == 0 {
		return Coordinates{}, cerr.ErrNothingToChoose("no square to choose")
	}
	sorted := squares.Sorted()
	return sorted[rng.IntN(len(sorted))], nil
}

// NewStrategy builds the strategy behind an AI player kind.
func NewStrategy(kind PlayerKind, rng *rand.Rand) (ShootStrategy, error) {
	switch kind {
	case PlayerKindRandom:
		return NewRandomStrategy(rng), nil
	case PlayerKindGreedy:
		return NewGreedyStrategy(rng), nil
	default:
		return nil, cerr.ErrInvalidOption("player", string(kind))
	}
}
