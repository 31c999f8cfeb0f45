package battleship

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	cerr "github.com/saeidalz13/battleship-engine/internal/error"
)

type PlayerKind string

const (
	PlayerKindHuman  PlayerKind = "human"
	PlayerKindRandom PlayerKind = "random"
	PlayerKindGreedy PlayerKind = "greedy"
)

func (pk PlayerKind) IsValid() bool {
	return pk == PlayerKindHuman || pk == PlayerKindRandom || pk == PlayerKindGreedy
}

func (pk PlayerKind) IsAI() bool {
	return pk == PlayerKindRandom || pk == PlayerKindGreedy
}

// UI is the presentation layer the game and the human controller talk to.
type UI interface {
	Clear()
	DisplayPlayer(player *Combatant)
	DisplayPlayers(first, second *Combatant)
	DisplayMessage(msg string)

	ChooseShip() (int, error)
	ChooseSquare() (Coordinates, error)
	AskQuestion(question string) (bool, error)
}

// Controller makes the decisions for one side of the match.
type Controller interface {
	SetUpShips(player *Combatant) error
	ChooseShot(player *Combatant) (size int, target Coordinates, err error)
	WantsAnotherShot(player *Combatant) (bool, error)
}

type AIController struct {
	strategy ShootStrategy
	rng      *rand.Rand
}

var _ Controller = (*AIController)(nil)

func NewAIController(strategy ShootStrategy, rng *rand.Rand) *AIController {
	return &AIController{strategy: strategy, rng: rng}
}

func (ai *AIController) SetUpShips(player *Combatant) error {
	return PlaceFleetRandomly(player.Inventory(), ai.rng)
}

func (ai *AIController) ChooseShot(player *Combatant) (int, Coordinates, error) {
	for _, ship := range player.Inventory().Ships() {
		if !ship.IsPlaced() {
			return 0, Coordinates{}, cerr.ErrShipNotPlaced(ship.Size())
		}
	}

	size, err := ai.strategy.ChooseShip(player.FireableSizes())
	if err != nil {
		return 0, Coordinates{}, err
	}

	targets, err := availableTargetsFor(player, size)
	if err != nil {
		return 0, Coordinates{}, err
	}

	target, err := ai.strategy.ChooseSquare(targets)
	if err != nil {
		return 0, Coordinates{}, err
	}
	return size, target, nil
}

func (ai *AIController) WantsAnotherShot(*Combatant) (bool, error) {
	return true, nil
}

type HumanController struct {
	ui UI
}

var _ Controller = (*HumanController)(nil)

func NewHumanController(ui UI) *HumanController {
	return &HumanController{ui: ui}
}

var shipNames = [MaxShipSize + 1]string{"", "single", "double", "triple"}

func (hc *HumanController) SetUpShips(player *Combatant) error {
	inv := player.Inventory()
	hc.ui.DisplayMessage("Set up your ships.")

	for size := MinShipSize; size <= MaxShipSize; size++ {
		hc.ui.DisplayMessage(fmt.Sprintf("Place the %s ship, %d square(s).", shipNames[size], size))

		for {
			squares := make([]Coordinates, 0, size)
			for len(squares) < size {
				c, err := hc.ui.ChooseSquare()
				if err != nil {
					return err
				}
				squares = append(squares, c)
			}

			err := inv.PlaceShip(squares)
			if err == nil {
				break
			}

			switch {
			case errors.Is(err, cerr.ErrOutOfRange):
				hc.ui.DisplayMessage("Square coordinates out of range, try again.")
			case errors.Is(err, cerr.ErrInvalidShape), errors.Is(err, cerr.ErrTooClose):
				hc.ui.DisplayMessage("Wrong ship location, try again.")
			default:
				return err
			}
		}
		hc.ui.DisplayPlayer(player)
	}
	return nil
}

func (hc *HumanController) ChooseShot(player *Combatant) (int, Coordinates, error) {
	sizes := player.FireableSizes()
	if len(sizes) == 0 {
		return 0, Coordinates{}, cerr.ErrNothingToChoose("no ship can fire")
	}

	size := sizes[0]
	if len(sizes) > 1 {
		for {
			hc.ui.DisplayMessage(fmt.Sprintf("Choose ship to perform shot %v.", sizes))
			chosen, err := hc.ui.ChooseShip()
			if err != nil {
				return 0, Coordinates{}, err
			}
			if slices.Contains(sizes, chosen) {
				size = chosen
				break
			}
			hc.ui.DisplayMessage("This ship cannot shoot, try again.")
		}
	}

	targets, err := availableTargetsFor(player, size)
	if err != nil {
		return 0, Coordinates{}, err
	}

	for {
		hc.ui.DisplayMessage(fmt.Sprintf("Choose target for ship %d:", size))
		target, err := hc.ui.ChooseSquare()
		if err != nil {
			return 0, Coordinates{}, err
		}
		if targets.Contains(target) {
			return size, target, nil
		}
		hc.ui.DisplayMessage("Wrong target, try again.")
	}
}

func (hc *HumanController) WantsAnotherShot(*Combatant) (bool, error) {
	return hc.ui.AskQuestion("Do you want to shoot one more time in this round?")
}

func availableTargetsFor(player *Combatant, size int) (CoordinatesSet, error) {
	ship, err := player.Inventory().Ship(size)
	if err != nil {
		return nil, err
	}
	return player.Tracker().AvailableTargets(ship)
}

// NewController builds the controller for a player kind.
func NewController(kind PlayerKind, ui UI, rng *rand.Rand) (Controller, error) {
	if kind == PlayerKindHuman {
		return NewHumanController(ui), nil
	}

	strategy, err := NewStrategy(kind, rng)
	if err != nil {
		return nil, err
	}
	return NewAIController(strategy, rng), nil
}
