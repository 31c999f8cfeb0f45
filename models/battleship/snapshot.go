package battleship

import (
	"fmt"
	"time"

	cerr "github.com/saeidalz13/battleship-engine/internal/error"
)

type ShipSnapshot struct {
	Size    int           `json:"size"`
	Squares []Coordinates `json:"squares"`
	Pausing bool          `json:"pausing"`
}

// SideSnapshot holds one player's fleet and the squares they fired at.
// Shot outcomes are not stored; they are recomputed by replaying the
// shots against the opponent's fleet.
type SideSnapshot struct {
	Ships []ShipSnapshot `json:"ships"`
	Shots []Coordinates  `json:"shots"`
}

type Snapshot struct {
	SavedAt      time.Time    `json:"saved_at"`
	Round        int          `json:"round"`
	MaxRounds    int          `json:"max_rounds"`
	PlayerKind   PlayerKind   `json:"player_kind"`
	OpponentKind PlayerKind   `json:"opponent_kind"`
	Player       SideSnapshot `json:"player"`
	Opponent     SideSnapshot `json:"opponent"`
}

func snapshotSide(c *Combatant) SideSnapshot {
	side := SideSnapshot{
		Ships: make([]ShipSnapshot, 0, MaxShipSize),
		Shots: c.Tracker().ResolvedSquares(),
	}

	for _, ship := range c.Inventory().Ships() {
		squares, err := ship.OccupiedSquares()
		if err != nil {
			continue
		}
		side.Ships = append(side.Ships, ShipSnapshot{
			Size:    ship.Size(),
			Squares: squares,
			Pausing: ship.IsPausing(),
		})
	}
	return side
}

// Snapshot captures everything needed to resume the match after the
// last completed round.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		SavedAt:      time.Now().UTC(),
		Round:        g.round,
		MaxRounds:    g.maxRounds,
		PlayerKind:   g.playerKind,
		OpponentKind: g.opponentKind,
		Player:       snapshotSide(g.player),
		Opponent:     snapshotSide(g.opponent),
	}
}

func (snap Snapshot) validate() error {
	if snap.MaxRounds < MinRounds || snap.MaxRounds > MaxRounds {
		return fmt.Errorf("max rounds out of range: %d", snap.MaxRounds)
	}
	if snap.Round < 0 || snap.Round > snap.MaxRounds {
		return fmt.Errorf("round out of range: %d", snap.Round)
	}

	for _, side := range []SideSnapshot{snap.Player, snap.Opponent} {
		if len(side.Ships) != MaxShipSize {
			return fmt.Errorf("expected %d ships, got %d", MaxShipSize, len(side.Ships))
		}

		seen := make(map[int]bool, MaxShipSize)
		for _, ship := range side.Ships {
			if !IsShipSizeValid(ship.Size) || seen[ship.Size] {
				return fmt.Errorf("invalid or duplicated ship size: %d", ship.Size)
			}
			if len(ship.Squares) != ship.Size {
				return fmt.Errorf("ship of size %d has %d squares", ship.Size, len(ship.Squares))
			}
			seen[ship.Size] = true
		}
	}
	return nil
}

func restoreFleet(c *Combatant, side SideSnapshot) error {
	for _, ship := range side.Ships {
		if err := c.Inventory().PlaceShip(ship.Squares); err != nil {
			return err
		}
	}
	return nil
}

func replayShots(shooter, target *Combatant, shots []Coordinates) error {
	for _, shot := range shots {
		result, err := target.TakeShot(shot)
		if err != nil {
			return err
		}
		if err := shooter.RecordShot(shot, result); err != nil {
			return err
		}
	}
	return nil
}

func restorePauses(c *Combatant, side SideSnapshot) error {
	sizes := make([]int, 0, MaxShipSize)
	for _, ship := range side.Ships {
		if ship.Pausing {
			sizes = append(sizes, ship.Size)
		}
	}
	return c.Inventory().PauseShips(sizes)
}

// RestoreGame rebuilds a match from a snapshot by replaying placements,
// then shots, then pauses. Round limits and player kinds come from the
// snapshot; controllers, UI and store from opts.
func RestoreGame(snap Snapshot, opts GameOptions) (*Game, error) {
	opts.MaxRounds = snap.MaxRounds
	opts.PlayerKind = snap.PlayerKind
	opts.OpponentKind = snap.OpponentKind

	if err := snap.validate(); err != nil {
		return nil, cerr.ErrCorruptSave(opts.SaveSlot, err)
	}

	g, err := NewGame(opts)
	if err != nil {
		return nil, cerr.ErrCorruptSave(opts.SaveSlot, err)
	}
	g.round = snap.Round

	steps := []func() error{
		func() error { return restoreFleet(g.player, snap.Player) },
		func() error { return restoreFleet(g.opponent, snap.Opponent) },
		func() error { return replayShots(g.player, g.opponent, snap.Player.Shots) },
		func() error { return replayShots(g.opponent, g.player, snap.Opponent.Shots) },
		func() error { return restorePauses(g.player, snap.Player) },
		func() error { return restorePauses(g.opponent, snap.Opponent) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, cerr.ErrCorruptSave(opts.SaveSlot, err)
		}
	}

	g.isSetUp = true
	return g, nil
}
