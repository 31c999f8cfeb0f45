package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"

	"github.com/adrg/xdg"
	"github.com/gdamore/tcell/v2"
	"github.com/saeidalz13/battleship-engine/db"
	"github.com/saeidalz13/battleship-engine/db/sqlc"
	"github.com/saeidalz13/battleship-engine/internal"
	"github.com/saeidalz13/battleship-engine/internal/config"
	cerr "github.com/saeidalz13/battleship-engine/internal/error"
	"github.com/saeidalz13/battleship-engine/internal/savefile"
	mb "github.com/saeidalz13/battleship-engine/models/battleship"
	"github.com/saeidalz13/battleship-engine/ui"
)

const logFile = "battleship/battleship.log"

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		panic(err)
	}

	cfg, err := config.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	f, err := openLogFile(cfg.LogFile)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	log.SetOutput(f)
	log.SetPrefix("battleship ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Println(err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func openLogFile(path string) (*os.File, error) {
	if path == "" {
		var err error
		// Creates the parent directories
		if path, err = xdg.StateFile(logFile); err != nil {
			return nil, err
		}
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

func run(ctx context.Context, cfg config.Config) error {
	var (
		store     mb.SaveStore
		analytics *sqlc.AnalyticsManager
	)
	if cfg.DatabaseURL != "" {
		conn := db.MustConnectToDb(cfg.DatabaseURL, cfg.MigrationDir)
		defer conn.Close()

		dm := sqlc.NewDbManager(sqlc.New(conn))
		store, analytics = dm.Saves, dm.Analytics
		log.Println("saving games to postgres")
	} else {
		fileStore := savefile.NewStore("")
		store = fileStore
		log.Println("saving games to", fileStore.Path(cfg.SaveSlot))
	}

	rng, seed := internal.NewRng(cfg.Seed)
	log.Printf("stage: %s\tseed: %d\tsave slot: %s\n", cfg.Stage, seed, cfg.SaveSlot)

	outcome, rounds, err := play(ctx, cfg, store, rng)
	if errors.Is(err, cerr.ErrQuit) {
		log.Println("game quit, the last autosave is kept")
		return nil
	}
	if err != nil {
		return err
	}

	log.Printf("game over after %d round(s): %s\n", rounds, outcome.Result)
	fmt.Println(ui.Outcome(outcome, rounds))

	if cfg.SaveSlot == config.DefaultSaveSlot {
		if err := store.Delete(ctx, cfg.SaveSlot); err != nil {
			log.Printf("failed to delete autosave: %v\n", err)
		}
	}
	if analytics != nil {
		if err := analytics.RecordMatchResult(ctx, outcome.Result); err != nil {
			log.Printf("failed to record match result: %v\n", err)
		}
	}
	return nil
}

// play owns the terminal for the length of one match.
func play(ctx context.Context, cfg config.Config, store mb.SaveStore, rng *rand.Rand) (mb.Outcome, int, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return mb.Outcome{}, 0, err
	}
	if err := screen.Init(); err != nil {
		return mb.Outcome{}, 0, err
	}
	defer screen.Fini()

	console := ui.NewConsole(screen)
	game, err := newGame(ctx, cfg, store, console, rng)
	if err != nil {
		return mb.Outcome{}, 0, err
	}

	outcome, err := game.Run(ctx)
	if err != nil {
		return mb.Outcome{}, game.Round(), err
	}

	console.WaitForKey("Press any key to exit.")
	return outcome, game.Round(), nil
}

func newGame(ctx context.Context, cfg config.Config, store mb.SaveStore, console *ui.Console, rng *rand.Rand) (*mb.Game, error) {
	playerKind, opponentKind := cfg.PlayerKind(), cfg.OpponentKind()

	var snap mb.Snapshot
	if cfg.IsLoading() {
		var err error
		if snap, err = store.Load(ctx, cfg.LoadSlot); err != nil {
			return nil, err
		}
		playerKind, opponentKind = snap.PlayerKind, snap.OpponentKind
		log.Printf("loaded slot %s at round %d of %d\n", cfg.LoadSlot, snap.Round, snap.MaxRounds)
	}

	playerCtrl, err := mb.NewController(playerKind, console, rng)
	if err != nil {
		return nil, err
	}
	opponentCtrl, err := mb.NewController(opponentKind, console, rng)
	if err != nil {
		return nil, err
	}

	opts := mb.GameOptions{
		MaxRounds:          cfg.Rounds,
		PlayerKind:         playerKind,
		OpponentKind:       opponentKind,
		PlayerController:   playerCtrl,
		OpponentController: opponentCtrl,
		UI:                 console,
		Store:              store,
		SaveSlot:           cfg.SaveSlot,
		ReactionTime:       cfg.AIReactionTime,
	}

	if cfg.IsLoading() {
		return mb.RestoreGame(snap, opts)
	}
	return mb.NewGame(opts)
}
