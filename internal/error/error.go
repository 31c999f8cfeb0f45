package error

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the engine wraps exactly one of
// these so callers can branch with errors.Is.
var (
	ErrOutOfRange        = errors.New("coordinates out of grid bound")
	ErrAlreadyResolved   = errors.New("position already resolved")
	ErrInvalidShape      = errors.New("invalid ship shape")
	ErrTooClose          = errors.New("ship too close to another ship")
	ErrInvalidSize       = errors.New("invalid ship size")
	ErrInvalidOperation  = errors.New("invalid operation")
	ErrInconsistentState = errors.New("inconsistent shot history")
	ErrNotPlaced         = errors.New("ship not placed")
	ErrAlreadySunk       = errors.New("ship already sunk")

	ErrInvalidArgument  = errors.New("invalid argument")
	ErrInvalidSaveState = errors.New("invalid save state")
	ErrSaveNotFound     = errors.New("save not found")
	ErrNoChoice         = errors.New("nothing to choose from")
	ErrQuit             = errors.New("quit requested")
)

func ErrXorYOutOfGridBound(x, y int) error {
	return fmt.Errorf("%w\tx: %d\ty: %d", ErrOutOfRange, x, y)
}

func ErrPositionAlreadyResolved(x, y int) error {
	return fmt.Errorf("%w, cannot update the same position twice\tx: %d\ty: %d", ErrAlreadyResolved, x, y)
}

func ErrShipShapeNotStraight(size int) error {
	return fmt.Errorf("%w, squares must form one straight contiguous run\tsize: %d", ErrInvalidShape, size)
}

func ErrShipTooClose(x, y int) error {
	return fmt.Errorf("%w\tx: %d\ty: %d", ErrTooClose, x, y)
}

func ErrShipSizeInvalid(size int) error {
	return fmt.Errorf("%w, must be between 1 and 3\tsize: %d", ErrInvalidSize, size)
}

func ErrShipCannotFire(size int) error {
	return fmt.Errorf("%w, ship cannot fire this round\tsize: %d", ErrInvalidOperation, size)
}

func ErrShipCannotTakeHit(size int) error {
	return fmt.Errorf("%w, ship cannot take a hit\tsize: %d", ErrInvalidOperation, size)
}

func ErrShipNotPlacedForRound(size int) error {
	return fmt.Errorf("%w, cannot start next round before placing ship\tsize: %d", ErrInvalidOperation, size)
}

func ErrShipNotPlaced(size int) error {
	return fmt.Errorf("%w\tsize: %d", ErrNotPlaced, size)
}

func ErrShipAlreadySunk(size int) error {
	return fmt.Errorf("%w\tsize: %d", ErrAlreadySunk, size)
}

func ErrInvalidShotResult(result int) error {
	return fmt.Errorf("%w, unknown shot result: %d", ErrInvalidOperation, result)
}

func ErrSunkShipTooClose(x, y int) error {
	return fmt.Errorf("%w, sunk ship next to a forming one\tx: %d\ty: %d", ErrInconsistentState, x, y)
}

func ErrConnectedHitsTooLong(length int) error {
	return fmt.Errorf("%w, connected hits longer than any ship\tlength: %d", ErrInconsistentState, length)
}

func ErrShipSizeAlreadySunk(size int) error {
	return fmt.Errorf("%w, ship with this size already sunk\tsize: %d", ErrInconsistentState, size)
}

func ErrRandomPlacementFailed(size, attempts int) error {
	return fmt.Errorf("%w, could not place ship randomly\tsize: %d\tattempts: %d", ErrInvalidOperation, size, attempts)
}

func ErrNothingToChoose(what string) error {
	return fmt.Errorf("%w: %s", ErrNoChoice, what)
}

func ErrInvalidOption(option, value string) error {
	return fmt.Errorf("%w, the argument ('%s') for option '--%s' is invalid", ErrInvalidArgument, value, option)
}

func ErrConflictingOptions(first, second string) error {
	return fmt.Errorf("%w, conflict options: '--%s' and '--%s'", ErrInvalidArgument, first, second)
}

func ErrMissingOptions(options ...string) error {
	return fmt.Errorf("%w, must specify %q arguments", ErrInvalidArgument, options)
}

func ErrCorruptSave(slot string, err error) error {
	return fmt.Errorf("%w in '%s': %w", ErrInvalidSaveState, slot, err)
}

func ErrSaveSlotNotFound(slot string) error {
	return fmt.Errorf("%w\tslot: %s", ErrSaveNotFound, slot)
}
