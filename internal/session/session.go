// Package session is the caller side of the dice core: it owns one live
// Equation, applies user actions to it and turns the outcome into display
// strings.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/DaanHessen/dicetray/internal/dice"
	"github.com/DaanHessen/dicetray/internal/equation"
)

// ErrUnknownAction is returned for actions Apply does not handle.
var ErrUnknownAction = errors.New("unknown action")

// Entry is one finished roll as handed to a Recorder.
type Entry struct {
	At       time.Time
	Mode     equation.Mode
	Equation string
	Result   string
	Total    int
}

// Recorder persists finished rolls.
type Recorder interface {
	Record(ctx context.Context, e Entry) error
}

// Display holds the strings a caller shows after an action. Empty fields mean
// "show nothing".
type Display struct {
	Equation string
	// Rolled is the expression that produced Result.
	Rolled   string
	Result   string
	Total    int
	Mode     equation.Mode
}

// Session owns one Equation. It is not safe for concurrent use.
type Session struct {
	eq         *equation.Equation
	src        dice.Source
	recorder   Recorder
	log        *slog.Logger
	clearAfter bool
	now        func() time.Time
	last       Display
}

// Option configures a Session.
type Option func(*Session)

// WithRecorder records every finished roll.
func WithRecorder(r Recorder) Option { return func(s *Session) { s.recorder = r } }

// WithLogger sets the logger; slog.Default is used otherwise.
func WithLogger(l *slog.Logger) Option { return func(s *Session) { s.log = l } }

// WithClearAfterRoll controls whether rolling empties the equation. Default true.
func WithClearAfterRoll(v bool) Option { return func(s *Session) { s.clearAfter = v } }

// New returns a Session drawing faces from src.
func New(src dice.Source, opts ...Option) *Session {
	s := &Session{
		eq:         equation.New(),
		src:        src,
		log:        slog.Default(),
		clearAfter: true,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Equation returns a copy of the live equation.
func (s *Session) Equation() *equation.Equation { return s.eq.Clone() }

// Apply performs action. sides is only read by increment and decrement.
func (s *Session) Apply(ctx context.Context, action Action, sides int) (Display, error) {
	if action.needsDie() {
		die := dice.New(sides)
		if err := die.Validate(); err != nil {
			return s.last, err
		}
		if action == ActionIncrement {
			s.eq.Add(die)
		} else {
			s.eq.Subtract(die)
		}
		s.log.Debug("equation changed", "action", action, "die", die, "equation", s.eq)
		s.last.Equation = s.eq.String()
		return s.last, nil
	}

	switch action {
	case ActionRoll:
		return s.roll(ctx, equation.ModeSum)
	case ActionTakeHighest:
		return s.roll(ctx, equation.ModeHighest)
	case ActionTakeLowest:
		return s.roll(ctx, equation.ModeLowest)
	case ActionClear:
		s.eq.Clear()
		s.last = Display{}
		return s.last, nil
	}
	return s.last, fmt.Errorf("%w: %s", ErrUnknownAction, action)
}

func (s *Session) roll(ctx context.Context, mode equation.Mode) (Display, error) {
	expr := s.eq.String()
	rr, err := equation.Roll(s.eq, s.src)
	if err != nil {
		return s.last, err
	}
	d := Display{Equation: expr, Rolled: expr, Total: rr.KeptTotal(mode), Mode: mode}
	if d.Total != 0 {
		d.Result = rr.Render(mode)
	}
	s.log.Info("rolled", "equation", expr, "mode", mode, "total", d.Total)

	if s.recorder != nil && d.Result != "" {
		entry := Entry{At: s.now(), Mode: mode, Equation: expr, Result: d.Result, Total: d.Total}
		if err := s.recorder.Record(ctx, entry); err != nil {
			s.log.Warn("record roll failed", "error", err)
		}
	}

	if s.clearAfter {
		s.eq.Clear()
		d.Equation = ""
	}
	s.last = d
	return d, nil
}
