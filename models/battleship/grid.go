package battleship

import (
	"slices"

	cerr "github.com/saeidalz13/battleship-engine/internal/error"
)

const (
	GridSize = 10

	GridValidLowerBound = 0
	GridValidUpperBound = GridSize - 1
)

type PositionState uint8

const (
	PositionStateEmpty PositionState = iota

	// Ship codes, only ever written by ShipInventory
	PositionStateSingle
	PositionStateDouble
	PositionStateTriple

	PositionStateMiss
	PositionStateHit
	PositionStateSunk
)

// Glyph returns the rune a console uses to draw the position.
func (ps PositionState) Glyph() rune {
	switch ps {
	case PositionStateSingle:
		return '1'
	case PositionStateDouble:
		return '2'
	case PositionStateTriple:
		return '3'
	case PositionStateMiss:
		return '-'
	case PositionStateHit:
		return '+'
	case PositionStateSunk:
		return 'x'
	default:
		return ' '
	}
}

// IsShip reports whether the position holds a live (not yet hit) ship square.
func (ps PositionState) IsShip() bool {
	return ps == PositionStateSingle || ps == PositionStateDouble || ps == PositionStateTriple
}

func positionStateForSize(size int) PositionState {
	return PositionStateSingle + PositionState(size-1)
}

func sizeForPositionState(ps PositionState) int {
	return int(ps-PositionStateSingle) + 1
}

type ShotResult uint8

const (
	ShotResultMiss ShotResult = iota
	ShotResultHit
	ShotResultSunk
)

func (sr ShotResult) String() string {
	switch sr {
	case ShotResultMiss:
		return "miss"
	case ShotResultHit:
		return "hit"
	case ShotResultSunk:
		return "sunk"
	default:
		return "unknown"
	}
}

type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewCoordinates(x, y int) Coordinates {
	return Coordinates{X: x, Y: y}
}

func (c Coordinates) IsInGrid() bool {
	return c.X >= GridValidLowerBound && c.X <= GridValidUpperBound &&
		c.Y >= GridValidLowerBound && c.Y <= GridValidUpperBound
}

// Compare orders coordinates by X and then by Y.
func (c Coordinates) Compare(other Coordinates) int {
	if c.X != other.X {
		return c.X - other.X
	}
	return c.Y - other.Y
}

// neighbours returns the in-grid squares within Chebyshev distance
// `radius` of c, c included.
func (c Coordinates) neighbours(radius int) []Coordinates {
	squares := make([]Coordinates, 0, (2*radius+1)*(2*radius+1))
	for a := -radius; a <= radius; a++ {
		for b := -radius; b <= radius; b++ {
			n := NewCoordinates(c.X+a, c.Y+b)
			if n.IsInGrid() {
				squares = append(squares, n)
			}
		}
	}
	return squares
}

type CoordinatesSet map[Coordinates]struct{}

func (cs CoordinatesSet) Contains(c Coordinates) bool {
	_, prs := cs[c]
	return prs
}

// Sorted returns the members ordered by X and then by Y.
func (cs CoordinatesSet) Sorted() []Coordinates {
	squares := make([]Coordinates, 0, len(cs))
	for c := range cs {
		squares = append(squares, c)
	}
	slices.SortFunc(squares, Coordinates.Compare)
	return squares
}

// Grid is the fixed size board shared by the fleet owner and the
// shooter. Positions resolved to miss, hit or sunk never change again
// except hit -> sunk.
type Grid struct {
	positions [GridSize][GridSize]PositionState
	sunkSizes map[int]bool
}

func NewGrid() *Grid {
	return &Grid{sunkSizes: make(map[int]bool, MaxShipSize)}
}

func (g *Grid) Read(c Coordinates) (PositionState, error) {
	if !c.IsInGrid() {
		return PositionStateEmpty, cerr.ErrXorYOutOfGridBound(c.X, c.Y)
	}
	return g.positions[c.X][c.Y], nil
}

func (g *Grid) set(c Coordinates, ps PositionState) {
	g.positions[c.X][c.Y] = ps
}

// Write records the outcome of a shot at c. A sunk outcome is only
// accepted when the hits connected to c form a ship that could exist.
func (g *Grid) Write(c Coordinates, result ShotResult) error {
	ps, err := g.Read(c)
	if err != nil {
		return err
	}
	if ps != PositionStateEmpty {
		return cerr.ErrPositionAlreadyResolved(c.X, c.Y)
	}

	switch result {
	case ShotResultMiss:
		g.set(c, PositionStateMiss)
	case ShotResultHit:
		g.set(c, PositionStateHit)
	case ShotResultSunk:
		return g.confirmSunk(c)
	default:
		return cerr.ErrInvalidShotResult(int(result))
	}
	return nil
}

// confirmSunk collects the 8-connected hits around c and turns them into
// one sunk ship. Nothing is mutated when the shot history is impossible.
func (g *Grid) confirmSunk(c Coordinates) error {
	stack := []Coordinates{c}
	visited := CoordinatesSet{c: {}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, n := range p.neighbours(1) {
			if visited.Contains(n) {
				continue
			}
			switch g.positions[n.X][n.Y] {
			case PositionStateSunk:
				return cerr.ErrSunkShipTooClose(n.X, n.Y)
			case PositionStateHit:
				visited[n] = struct{}{}
				stack = append(stack, n)
			}
		}
	}

	size := len(visited)
	if size > MaxShipSize {
		return cerr.ErrConnectedHitsTooLong(size)
	}
	if g.sunkSizes[size] {
		return cerr.ErrShipSizeAlreadySunk(size)
	}

	g.sunkSizes[size] = true
	for p := range visited {
		g.set(p, PositionStateSunk)
	}
	return nil
}

// AvailableTargets returns the empty squares within the ship's range
// around any of its squares.
func (g *Grid) AvailableTargets(ship *Ship) (CoordinatesSet, error) {
	if !ship.IsPlaced() {
		return nil, cerr.ErrShipNotPlaced(ship.Size())
	}
	if ship.IsSunk() {
		return nil, cerr.ErrShipAlreadySunk(ship.Size())
	}

	targets := make(CoordinatesSet)
	for _, square := range ship.squares {
		for _, n := range square.neighbours(ship.Range()) {
			if g.positions[n.X][n.Y] == PositionStateEmpty {
				targets[n] = struct{}{}
			}
		}
	}
	return targets, nil
}

// SunkSizes returns the ship sizes confirmed sunk on this grid, ascending.
func (g *Grid) SunkSizes() []int {
	sizes := make([]int, 0, len(g.sunkSizes))
	for size := range g.sunkSizes {
		sizes = append(sizes, size)
	}
	slices.Sort(sizes)
	return sizes
}

// ResolvedSquares returns every square holding a shot outcome in
// row-major order.
func (g *Grid) ResolvedSquares() []Coordinates {
	squares := make([]Coordinates, 0)
	for x := 0; x < GridSize; x++ {
		for y := 0; y < GridSize; y++ {
			switch g.positions[x][y] {
			case PositionStateMiss, PositionStateHit, PositionStateSunk:
				squares = append(squares, NewCoordinates(x, y))
			}
		}
	}
	return squares
}
