// Package dice holds the value types of a dice roller: the Die shape, the Roll record
// produced by simulating one die several times, and the random Source behind them.
package dice

import (
	"errors"
	"fmt"
)

const (
	// MinimumSides is the smallest meaningful die.
	MinimumSides = 2
	// MinimumValue is the lowest face of every die.
	MinimumValue = 1
)

var (
	// ErrSidesBelowMinimum reports a die with fewer than MinimumSides sides.
	ErrSidesBelowMinimum = fmt.Errorf("die must have at least %d sides", MinimumSides)
	// ErrEmptyRoll reports a roll with no values; its extremes are undefined.
	ErrEmptyRoll = errors.New("roll has no values")
	// ErrInvalidQuantity reports a negative roll quantity.
	ErrInvalidQuantity = errors.New("roll quantity must not be negative")
)

// Die identifies a die shape by its number of sides. Two dice are equal iff
// their side counts match, so Die is safe to use as a map key.
type Die struct {
	sides int
}

// New returns a die with the given side count. Sides below MinimumSides are
// accepted; such a die always rolls MinimumValue. Use Validate to reject them.
func New(sides int) Die {
	return Die{sides: sides}
}

// Sides returns the side count.
func (d Die) Sides() int { return d.sides }

// Validate reports whether the die meets the minimum-sides floor.
func (d Die) Validate() error {
	if d.sides < MinimumSides {
		return fmt.Errorf("d%d: %w", d.sides, ErrSidesBelowMinimum)
	}
	return nil
}

// Less orders dice by ascending side count.
func (d Die) Less(other Die) bool { return d.sides < other.sides }

// Compare returns -1, 0 or +1 for use with slices.SortFunc.
func (d Die) Compare(other Die) int {
	switch {
	case d.sides < other.sides:
		return -1
	case d.sides > other.sides:
		return 1
	default:
		return 0
	}
}

// String renders the die as d{sides}, e.g. "d20".
func (d Die) String() string {
	return fmt.Sprintf("d%d", d.sides)
}

// Roll draws quantity faces in [MinimumValue, sides] from src, in draw order.
// A quantity of zero fails with ErrEmptyRoll.
func (d Die) Roll(src Source, quantity int) (Roll, error) {
	if quantity < 0 {
		return Roll{}, fmt.Errorf("%s x%d: %w", d, quantity, ErrInvalidQuantity)
	}
	top := d.sides
	if top < MinimumValue {
		top = MinimumValue
	}
	values := make([]int, quantity)
	for i := range values {
		values[i] = src.IntRange(MinimumValue, top)
	}
	return NewRoll(d, values)
}
