package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	cerr "github.com/saeidalz13/battleship-engine/internal/error"
	mb "github.com/saeidalz13/battleship-engine/models/battleship"
)

const (
	StageDev  = "dev"
	StageProd = "prod"

	DefaultSaveSlot = "autosave"
)

type Config struct {
	Stage        string `env:"STAGE" envDefault:"dev"`
	DatabaseURL  string `env:"DATABASE_URL"`
	MigrationDir string `env:"MIGRATION_DIR" envDefault:"db/migration"`
	LogFile      string `env:"BATTLESHIP_LOG_FILE"`

	Rounds         int           `env:"BATTLESHIP_ROUNDS"`
	Player         string        `env:"BATTLESHIP_PLAYER" envDefault:"human"`
	Opponent       string        `env:"BATTLESHIP_OPPONENT"`
	SaveSlot       string        `env:"BATTLESHIP_SAVE" envDefault:"autosave"`
	AIReactionTime time.Duration `env:"BATTLESHIP_AI_REACTION_TIME" envDefault:"1s"`
	Seed           uint64        `env:"BATTLESHIP_SEED"`

	// Set only from the command line
	LoadSlot string
}

// IsLoading reports whether the game is restored from a save instead of
// starting fresh.
func (c Config) IsLoading() bool {
	return c.LoadSlot != ""
}

func (c Config) PlayerKind() mb.PlayerKind {
	return mb.PlayerKind(c.Player)
}

func (c Config) OpponentKind() mb.PlayerKind {
	return mb.PlayerKind(c.Opponent)
}

// LoadDotEnv reads a .env file outside production. A missing file is not
// an error.
func LoadDotEnv(path string) error {
	if os.Getenv("STAGE") == StageProd {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ParseConfig loads defaults from the environment, then applies flags and
// the positional `rounds opponent player` arguments.
func ParseConfig(fset *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	var resume bool
	fset.IntVar(&cfg.Rounds, "rounds", cfg.Rounds, "Number of rounds to play (1-20)")
	fset.IntVar(&cfg.Rounds, "r", cfg.Rounds, "Shorthand for -rounds")
	fset.StringVar(&cfg.Opponent, "opponent", cfg.Opponent, "Opponent kind: random or greedy")
	fset.StringVar(&cfg.Opponent, "o", cfg.Opponent, "Shorthand for -opponent")
	fset.StringVar(&cfg.Player, "player", cfg.Player, "Player kind: human, random or greedy")
	fset.StringVar(&cfg.Player, "p", cfg.Player, "Shorthand for -player")
	fset.StringVar(&cfg.LoadSlot, "load", "", "Restore the game saved in this slot")
	fset.StringVar(&cfg.LoadSlot, "l", "", "Shorthand for -load")
	fset.BoolVar(&resume, "resume", false, "Restore the last autosave")
	fset.StringVar(&cfg.SaveSlot, "save", cfg.SaveSlot, "Slot the game is saved to after every round")
	fset.StringVar(&cfg.SaveSlot, "s", cfg.SaveSlot, "Shorthand for -save")
	fset.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed, 0 picks one")

	if err := fset.Parse(args); err != nil {
		return Config{}, err
	}

	explicit := make(map[string]bool)
	fset.Visit(func(f *flag.Flag) {
		explicit[longName(f.Name)] = true
	})

	if err := applyPositional(&cfg, fset.Args(), explicit); err != nil {
		return Config{}, err
	}

	if resume {
		if explicit["load"] {
			return Config{}, cerr.ErrConflictingOptions("load", "resume")
		}
		cfg.LoadSlot = DefaultSaveSlot
		explicit["load"] = true
	}

	if err := cfg.validate(explicit); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func longName(name string) string {
	switch name {
	case "r":
		return "rounds"
	case "o":
		return "opponent"
	case "p":
		return "player"
	case "l":
		return "load"
	case "s":
		return "save"
	default:
		return name
	}
}

var positionalNames = []string{"rounds", "opponent", "player"}

func applyPositional(cfg *Config, args []string, explicit map[string]bool) error {
	if len(args) > len(positionalNames) {
		return cerr.ErrInvalidOption("positional", args[len(positionalNames)])
	}

	for i, arg := range args {
		name := positionalNames[i]
		if explicit[name] {
			return cerr.ErrConflictingOptions(name, name)
		}
		explicit[name] = true

		switch name {
		case "rounds":
			rounds, err := strconv.Atoi(arg)
			if err != nil {
				return cerr.ErrInvalidOption(name, arg)
			}
			cfg.Rounds = rounds
		case "opponent":
			cfg.Opponent = arg
		case "player":
			cfg.Player = arg
		}
	}
	return nil
}

func (c Config) validate(explicit map[string]bool) error {
	if c.Stage != StageDev && c.Stage != StageProd {
		return cerr.ErrInvalidOption("stage", c.Stage)
	}
	if !c.PlayerKind().IsValid() {
		return cerr.ErrInvalidOption("player", c.Player)
	}
	if c.AIReactionTime < 0 {
		return cerr.ErrInvalidOption("ai-reaction-time", c.AIReactionTime.String())
	}

	// Round limit and opponent come from the save
	if c.IsLoading() {
		for _, name := range []string{"rounds", "opponent"} {
			if explicit[name] {
				return cerr.ErrConflictingOptions("load", name)
			}
		}
		return nil
	}

	if c.Rounds == 0 || c.Opponent == "" {
		return cerr.ErrMissingOptions("rounds", "opponent")
	}
	if c.Rounds < mb.MinRounds || c.Rounds > mb.MaxRounds {
		return cerr.ErrInvalidOption("rounds", strconv.Itoa(c.Rounds))
	}
	if !c.OpponentKind().IsAI() {
		return cerr.ErrInvalidOption("opponent", c.Opponent)
	}
	return nil
}
