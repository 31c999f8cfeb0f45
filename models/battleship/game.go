package battleship

import (
	"context"
	"fmt"
	"log"
	"time"

	cerr "github.com/saeidalz13/battleship-engine/internal/error"
)

const (
	MinRounds = 1
	MaxRounds = 20
)

type MatchResult int8

const (
	MatchResultLost MatchResult = iota - 1
	MatchResultDraw
	MatchResultWon
)

func (mr MatchResult) String() string {
	switch mr {
	case MatchResultLost:
		return "lost"
	case MatchResultWon:
		return "won"
	default:
		return "draw"
	}
}

// Outcome is the result of a match from the main player's point of view.
type Outcome struct {
	Result MatchResult
	Reason string
}

// SaveStore persists snapshots under a slot name.
type SaveStore interface {
	Save(ctx context.Context, slot string, snap Snapshot) error
	Load(ctx context.Context, slot string) (Snapshot, error)
	Delete(ctx context.Context, slot string) error
}

type GameOptions struct {
	MaxRounds    int
	PlayerKind   PlayerKind
	OpponentKind PlayerKind

	PlayerController   Controller
	OpponentController Controller
	UI                 UI

	// Optional; the game is saved after every round when set
	Store    SaveStore
	SaveSlot string

	// Pause before AI moves so a watching human can follow them
	ReactionTime time.Duration
}

func (opts GameOptions) validate() error {
	if opts.MaxRounds < MinRounds || opts.MaxRounds > MaxRounds {
		return cerr.ErrInvalidOption("rounds", fmt.Sprint(opts.MaxRounds))
	}
	if !opts.PlayerKind.IsValid() {
		return cerr.ErrInvalidOption("player", string(opts.PlayerKind))
	}
	if !opts.OpponentKind.IsAI() {
		return cerr.ErrInvalidOption("opponent", string(opts.OpponentKind))
	}
	if opts.PlayerController == nil || opts.OpponentController == nil || opts.UI == nil {
		return fmt.Errorf("%w, controllers and ui are required", cerr.ErrInvalidArgument)
	}
	return nil
}

type Game struct {
	round     int
	maxRounds int
	isSetUp   bool

	player   *Combatant
	opponent *Combatant

	playerKind         PlayerKind
	opponentKind       PlayerKind
	playerController   Controller
	opponentController Controller

	ui           UI
	store        SaveStore
	saveSlot     string
	reactionTime time.Duration
}

func NewGame(opts GameOptions) (*Game, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	return &Game{
		maxRounds:          opts.MaxRounds,
		player:             NewCombatant(),
		opponent:           NewCombatant(),
		playerKind:         opts.PlayerKind,
		opponentKind:       opts.OpponentKind,
		playerController:   opts.PlayerController,
		opponentController: opts.OpponentController,
		ui:                 opts.UI,
		store:              opts.Store,
		saveSlot:           opts.SaveSlot,
		reactionTime:       opts.ReactionTime,
	}, nil
}

func (g *Game) Round() int {
	return g.round
}

func (g *Game) MaxRounds() int {
	return g.maxRounds
}

func (g *Game) Player() *Combatant {
	return g.player
}

func (g *Game) Opponent() *Combatant {
	return g.opponent
}

func (g *Game) isHuman() bool {
	return g.playerKind == PlayerKindHuman
}

func (g *Game) updateUI() {
	g.ui.Clear()
	g.ui.DisplayMessage(fmt.Sprintf("Round no. %d", g.round))

	if g.isHuman() {
		g.ui.DisplayPlayer(g.player)
	} else {
		g.ui.DisplayPlayers(g.player, g.opponent)
	}
}

func (g *Game) wait(ctx context.Context) error {
	if g.reactionTime <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(g.reactionTime)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// SetUpShips lets both controllers place their fleets. Restored games
// are already set up.
func (g *Game) SetUpShips() error {
	if g.isSetUp {
		return nil
	}

	if g.isHuman() {
		g.ui.Clear()
		g.ui.DisplayPlayer(g.player)
	}
	if err := g.playerController.SetUpShips(g.player); err != nil {
		return err
	}
	if err := g.opponentController.SetUpShips(g.opponent); err != nil {
		return err
	}

	g.isSetUp = true
	return nil
}

// Run plays the remaining rounds and reports the outcome for the main
// player.
func (g *Game) Run(ctx context.Context) (Outcome, error) {
	if err := g.SetUpShips(); err != nil {
		return Outcome{}, err
	}

	for g.round < g.maxRounds {
		if err := ctx.Err(); err != nil {
			return Outcome{}, err
		}

		g.round++
		outcome, over, err := g.playRound(ctx)
		if err != nil {
			return Outcome{}, err
		}
		if over {
			g.ui.DisplayMessage(outcome.Reason)
			return outcome, nil
		}

		if err := g.player.AdvanceRound(); err != nil {
			return Outcome{}, err
		}
		if err := g.opponent.AdvanceRound(); err != nil {
			return Outcome{}, err
		}
		g.autosave(ctx)
	}

	outcome := g.scoreByDamage()
	g.ui.DisplayMessage(outcome.Reason)
	return outcome, nil
}

func (g *Game) playRound(ctx context.Context) (Outcome, bool, error) {
	g.updateUI()

	if !g.player.CanFireNow() {
		if !g.player.MayFireFutureRounds() {
			return Outcome{Result: MatchResultLost, Reason: "You lost!"}, true, nil
		}
		g.ui.DisplayMessage("In this round you are pausing.")
	} else {
		if !g.isHuman() {
			g.ui.DisplayMessage("Player's turn...")
			if err := g.wait(ctx); err != nil {
				return Outcome{}, false, err
			}
		}

		if _, _, err := g.player.Exchange(g.playerController, g.opponent); err != nil {
			return Outcome{}, false, err
		}
		g.updateUI()

		for g.player.CanFireNow() {
			again, err := g.playerController.WantsAnotherShot(g.player)
			if err != nil {
				return Outcome{}, false, err
			}
			if !again {
				break
			}
			if _, _, err := g.player.Exchange(g.playerController, g.opponent); err != nil {
				return Outcome{}, false, err
			}
			g.updateUI()
		}
	}

	if !g.opponent.CanFireNow() && !g.opponent.MayFireFutureRounds() {
		return Outcome{Result: MatchResultWon, Reason: "You win!"}, true, nil
	}

	g.ui.DisplayMessage("The opponent's turn...")
	if err := g.wait(ctx); err != nil {
		return Outcome{}, false, err
	}

	for g.opponent.CanFireNow() {
		if _, _, err := g.opponent.Exchange(g.opponentController, g.player); err != nil {
			return Outcome{}, false, err
		}
	}
	return Outcome{}, false, nil
}

// scoreByDamage decides a match that ran out of rounds: the side that
// took fewer hits wins.
func (g *Game) scoreByDamage() Outcome {
	playerHits := g.player.TotalDamageTaken()
	opponentHits := g.opponent.TotalDamageTaken()

	switch {
	case playerHits == opponentHits:
		return Outcome{
			Result: MatchResultDraw,
			Reason: "Draw, no one wins\n(after playing all rounds you and the opponent hit each other the same number of times)",
		}
	case playerHits < opponentHits:
		return Outcome{
			Result: MatchResultWon,
			Reason: "You win!\n(after playing all rounds you hit the opponent more times)",
		}
	default:
		return Outcome{
			Result: MatchResultLost,
			Reason: "You lost!\n(after playing all rounds the opponent hit you more times)",
		}
	}
}

// A failed autosave does not stop the match.
func (g *Game) autosave(ctx context.Context) {
	if g.store == nil {
		return
	}

	if err := g.store.Save(ctx, g.saveSlot, g.Snapshot()); err != nil {
		log.Printf("failed to autosave round %d to slot %s: %v\n", g.round, g.saveSlot, err)
	}
}
