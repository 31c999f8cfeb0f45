package battleship

// Combatant is one side of a match: its own fleet and its record of the
// shots fired at the opponent.
type Combatant struct {
	inventory *ShipInventory
	tracker   *ShotTracker
}

func NewCombatant() *Combatant {
	return &Combatant{
		inventory: NewShipInventory(),
		tracker:   NewShotTracker(),
	}
}

func (c *Combatant) Inventory() *ShipInventory {
	return c.inventory
}

func (c *Combatant) Tracker() *ShotTracker {
	return c.tracker
}

func (c *Combatant) hasTargets(ship *Ship) bool {
	targets, err := c.tracker.AvailableTargets(ship)
	return err == nil && len(targets) > 0
}

// CanFireNow reports whether any ship may still fire in this round at
// some unresolved square.
func (c *Combatant) CanFireNow() bool {
	return len(c.FireableSizes()) > 0
}

// MayFireFutureRounds is false once no ship will ever be able to fire
// again, which ends the match for this side.
func (c *Combatant) MayFireFutureRounds() bool {
	for _, ship := range c.inventory.Ships() {
		if !ship.IsPlaced() || ship.IsSunk() {
			continue
		}
		if (ship.CanFireThisRound() || ship.IsPausing()) && c.hasTargets(ship) {
			return true
		}
	}
	return false
}

// TotalDamageTaken sums the hits the opponent landed on this fleet.
func (c *Combatant) TotalDamageTaken() int {
	hits := 0
	for _, ship := range c.inventory.Ships() {
		hits += ship.Hits()
	}
	return hits
}

// FireableSizes returns the sizes of the ships that can fire now, ascending.
func (c *Combatant) FireableSizes() []int {
	sizes := make([]int, 0, MaxShipSize)
	for _, ship := range c.inventory.Ships() {
		if ship.CanFireThisRound() && c.hasTargets(ship) {
			sizes = append(sizes, ship.Size())
		}
	}
	return sizes
}

func (c *Combatant) TakeShot(target Coordinates) (ShotResult, error) {
	return c.inventory.ResolveIncomingShot(target)
}

func (c *Combatant) RecordShot(target Coordinates, result ShotResult) error {
	return c.tracker.RecordOutcome(target, result)
}

func (c *Combatant) AdvanceRound() error {
	return c.inventory.AdvanceRound()
}

// Fire asks the controller for a shot, spends it from the chosen ship and
// returns the target.
func (c *Combatant) Fire(ctrl Controller) (Coordinates, error) {
	size, target, err := ctrl.ChooseShot(c)
	if err != nil {
		return Coordinates{}, err
	}
	if err := c.inventory.FireFrom(size); err != nil {
		return Coordinates{}, err
	}
	return target, nil
}

// Exchange fires one shot at the opponent and records its result.
func (c *Combatant) Exchange(ctrl Controller, opponent *Combatant) (Coordinates, ShotResult, error) {
	target, err := c.Fire(ctrl)
	if err != nil {
		return Coordinates{}, ShotResultMiss, err
	}

	result, err := opponent.TakeShot(target)
	if err != nil {
		return target, result, err
	}
	return target, result, c.RecordShot(target, result)
}
