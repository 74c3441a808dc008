package session

import "fmt"

// Action is a user intent delivered by the UI or CLI.
type Action int

const (
	ActionIncrement Action = iota
	ActionDecrement
	ActionRoll
	ActionTakeHighest
	ActionTakeLowest
	ActionClear
)

var actionNames = map[Action]string{
	ActionIncrement:   "increment",
	ActionDecrement:   "decrement",
	ActionRoll:        "roll",
	ActionTakeHighest: "take-highest",
	ActionTakeLowest:  "take-lowest",
	ActionClear:       "clear",
}

func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// ParseAction maps an action name back to its Action.
func ParseAction(s string) (Action, error) {
	for a, name := range actionNames {
		if name == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", s)
}

// needsDie reports whether the action operates on a single die.
func (a Action) needsDie() bool {
	return a == ActionIncrement || a == ActionDecrement
}
