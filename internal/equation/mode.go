package equation

import "fmt"

// Mode selects how each Roll contributes to a RollResult's kept total.
type Mode int

const (
	// ModeSum keeps every face.
	ModeSum Mode = iota
	// ModeHighest collapses each Roll to its highest face.
	ModeHighest
	// ModeLowest collapses each Roll to its lowest face.
	ModeLowest
)

func (m Mode) String() string {
	switch m {
	case ModeSum:
		return "sum"
	case ModeHighest:
		return "highest"
	case ModeLowest:
		return "lowest"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode accepts the names produced by Mode.String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "sum":
		return ModeSum, nil
	case "highest":
		return ModeHighest, nil
	case "lowest":
		return ModeLowest, nil
	}
	return ModeSum, fmt.Errorf("unknown mode %q", s)
}
