package equation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/DaanHessen/dicetray/internal/dice"
)

// ErrSyntax reports an expression that is not a sum of dice terms.
var ErrSyntax = errors.New("invalid dice expression")

// maxQuantity bounds how many of one die an expression may ask for.
const maxQuantity = 1000

// Parse reads an expression such as "1d4 + 5d6", "2d20" or "d6+d6" into an
// Equation. Repeated dice accumulate. Dice below dice.MinimumSides are rejected,
// as are more than maxQuantity of one die.
func Parse(s string) (*Equation, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrSyntax)
	}
	eq := New()
	for _, raw := range strings.Split(s, "+") {
		term, err := parseTerm(strings.TrimSpace(raw))
		if err != nil {
			return nil, err
		}
		total := eq.Count(term.Die) + term.Quantity
		if total > maxQuantity {
			return nil, fmt.Errorf("%w: more than %d %s", ErrSyntax, maxQuantity, term.Die)
		}
		eq.Set(term.Die, total)
	}
	return eq, nil
}

func parseTerm(s string) (Term, error) {
	qty, sides, ok := strings.Cut(strings.ToLower(s), "d")
	if !ok || sides == "" {
		return Term{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	quantity := 1
	if qty != "" {
		n, err := strconv.Atoi(qty)
		if err != nil || n < 1 || n > maxQuantity {
			return Term{}, fmt.Errorf("%w: bad quantity in %q", ErrSyntax, s)
		}
		quantity = n
	}
	n, err := strconv.Atoi(sides)
	if err != nil {
		return Term{}, fmt.Errorf("%w: bad sides in %q", ErrSyntax, s)
	}
	die := dice.New(n)
	if err := die.Validate(); err != nil {
		return Term{}, err
	}
	return Term{Die: die, Quantity: quantity}, nil
}
