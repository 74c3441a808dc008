// Package equation tracks an additive dice expression as a multiset of dice and
// turns it into a RollResult.
package equation

import (
	"slices"
	"strconv"
	"strings"

	"github.com/DaanHessen/dicetray/internal/dice"
)

// additionSpacer joins terms in every rendering.
const additionSpacer = " + "

// Term is one die and how many of it are queued.
type Term struct {
	Die      dice.Die
	Quantity int
}

// String renders the term as "{quantity}{die}", e.g. "5d6".
func (t Term) String() string {
	return strconv.Itoa(t.Quantity) + t.Die.String()
}

// Equation is a multiset of dice. The zero value is an empty equation.
// Quantities are always positive: a die whose count reaches zero is removed.
// Equation is not safe for concurrent use.
type Equation struct {
	terms map[dice.Die]int
}

// New returns an empty equation.
func New() *Equation {
	return &Equation{}
}

// Add increments the quantity of die, inserting it at 1 if absent.
func (e *Equation) Add(die dice.Die) {
	if e.terms == nil {
		e.terms = make(map[dice.Die]int)
	}
	e.terms[die]++
}

// Subtract decrements the quantity of die and removes it once it drops below 1.
// Subtracting an absent die is a no-op.
func (e *Equation) Subtract(die dice.Die) {
	n, ok := e.terms[die]
	if !ok {
		return
	}
	if n <= 1 {
		delete(e.terms, die)
		return
	}
	e.terms[die] = n - 1
}

// Set overwrites the quantity of die. A quantity of zero or less removes the
// die, matching Subtract.
func (e *Equation) Set(die dice.Die, quantity int) {
	if quantity <= 0 {
		delete(e.terms, die)
		return
	}
	if e.terms == nil {
		e.terms = make(map[dice.Die]int)
	}
	e.terms[die] = quantity
}

// Count returns the quantity of die, or 0 if absent.
func (e *Equation) Count(die dice.Die) int {
	return e.terms[die]
}

// Read returns a snapshot of the equation ordered by ascending side count.
// The snapshot shares no storage with e.
func (e *Equation) Read() []Term {
	out := make([]Term, 0, len(e.terms))
	for d, n := range e.terms {
		out = append(out, Term{Die: d, Quantity: n})
	}
	slices.SortFunc(out, func(a, b Term) int { return a.Die.Compare(b.Die) })
	return out
}

// Clear empties the equation.
func (e *Equation) Clear() {
	clear(e.terms)
}

// Len returns the number of distinct dice.
func (e *Equation) Len() int { return len(e.terms) }

// IsEmpty reports whether no die is queued.
func (e *Equation) IsEmpty() bool { return len(e.terms) == 0 }

// Clone returns an independent copy.
func (e *Equation) Clone() *Equation {
	c := New()
	for d, n := range e.terms {
		c.Set(d, n)
	}
	return c
}

// String renders the terms in ascending die order joined by " + ",
// e.g. "1d4 + 5d6". An empty equation renders as "".
func (e *Equation) String() string {
	terms := e.Read()
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, additionSpacer)
}
