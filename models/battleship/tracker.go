package battleship

// ShotTracker records what a player learned about the opponent's board
// from the results of their own shots.
type ShotTracker struct {
	grid *Grid
}

func NewShotTracker() *ShotTracker {
	return &ShotTracker{grid: NewGrid()}
}

func (st *ShotTracker) RecordOutcome(c Coordinates, result ShotResult) error {
	return st.grid.Write(c, result)
}

// AvailableTargets returns the unresolved squares the given ship of the
// player's own fleet can reach.
func (st *ShotTracker) AvailableTargets(ship *Ship) (CoordinatesSet, error) {
	return st.grid.AvailableTargets(ship)
}

func (st *ShotTracker) Read(c Coordinates) (PositionState, error) {
	return st.grid.Read(c)
}

func (st *ShotTracker) ResolvedSquares() []Coordinates {
	return st.grid.ResolvedSquares()
}

func (st *ShotTracker) SunkSizes() []int {
	return st.grid.SunkSizes()
}
