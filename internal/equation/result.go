package equation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/DaanHessen/dicetray/internal/dice"
)

// RollResult is the outcome of simulating an Equation: one Roll per distinct
// die, in the order the dice were rolled.
type RollResult struct {
	rolls []dice.Roll
}

// Roll simulates eq with src. Each term of eq.Read() is rolled in ascending
// die order, so src is drawn from in that order too.
func Roll(eq *Equation, src dice.Source) (*RollResult, error) {
	result := &RollResult{}
	for _, term := range eq.Read() {
		r, err := term.Die.Roll(src, term.Quantity)
		if err != nil {
			return nil, fmt.Errorf("roll %s: %w", term, err)
		}
		result.rolls = append(result.rolls, r)
	}
	return result, nil
}

// Add appends a precomputed Roll.
func (rr *RollResult) Add(r dice.Roll) {
	rr.rolls = append(rr.rolls, r)
}

// Get returns the first Roll of die.
func (rr *RollResult) Get(die dice.Die) (dice.Roll, bool) {
	for _, r := range rr.rolls {
		if r.Die() == die {
			return r, true
		}
	}
	return dice.Roll{}, false
}

// Rolls returns the stored rolls in order.
func (rr *RollResult) Rolls() []dice.Roll {
	return append([]dice.Roll(nil), rr.rolls...)
}

func (rr *RollResult) Len() int { return len(rr.rolls) }

// Total sums every Roll's total. An empty result totals 0.
func (rr *RollResult) Total() int {
	return rr.KeptTotal(ModeSum)
}

// KeptTotal sums what each Roll contributes under mode.
func (rr *RollResult) KeptTotal(mode Mode) int {
	total := 0
	for _, r := range rr.rolls {
		total += kept(r, mode)
	}
	return total
}

// String renders "{values} -> {intermediate} = {total}",
// e.g. "[4, 2] + [3, 6] -> 6 + 9 = 15".
func (rr *RollResult) String() string {
	return rr.Render(ModeSum)
}

// Render is String for an arbitrary mode. Under ModeHighest the example above
// renders as "[4, 2] + [3, 6] -> 4 + 6 = 10".
func (rr *RollResult) Render(mode Mode) string {
	return fmt.Sprintf("%s -> %s = %d", rr.ValueString(), rr.IntermediateStringFor(mode), rr.KeptTotal(mode))
}

// ValueString renders each Roll's faces, e.g. "[4, 2] + [3, 6]".
func (rr *RollResult) ValueString() string {
	parts := make([]string, len(rr.rolls))
	for i, r := range rr.rolls {
		parts[i] = r.String()
	}
	return strings.Join(parts, additionSpacer)
}

// IntermediateString renders each Roll's total, e.g. "6 + 9".
func (rr *RollResult) IntermediateString() string {
	return rr.IntermediateStringFor(ModeSum)
}

// IntermediateStringFor renders each Roll's contribution under mode.
func (rr *RollResult) IntermediateStringFor(mode Mode) string {
	parts := make([]string, len(rr.rolls))
	for i, r := range rr.rolls {
		parts[i] = strconv.Itoa(kept(r, mode))
	}
	return strings.Join(parts, additionSpacer)
}

func kept(r dice.Roll, mode Mode) int {
	switch mode {
	case ModeHighest:
		return r.Highest()
	case ModeLowest:
		return r.Lowest()
	default:
		return r.Total()
	}
}
