// Package dicetest provides Source doubles for tests.
package dicetest

import "fmt"

// Script replays a fixed list of faces in order. It panics when the script is
// exhausted or a face falls outside the requested range, so a test that draws
// more than it planned for fails loudly.
type Script struct {
	faces []int
	next  int
}

// NewScript returns a Script that replays faces.
func NewScript(faces ...int) *Script {
	return &Script{faces: faces}
}

// IntRange returns the next scripted face.
func (s *Script) IntRange(min, max int) int {
	if s.next >= len(s.faces) {
		panic(fmt.Sprintf("dicetest: script exhausted after %d draws", s.next))
	}
	v := s.faces[s.next]
	if v < min || v > max {
		panic(fmt.Sprintf("dicetest: scripted face %d outside [%d, %d]", v, min, max))
	}
	s.next++
	return v
}

// Drawn reports how many faces have been consumed.
func (s *Script) Drawn() int { return s.next }

// Max always returns the top of the range.
type Max struct{}

func (Max) IntRange(_, max int) int { return max }
