package dice

// Source produces uniformly distributed integers in the inclusive range [min, max].
// It is called once per face, in the order faces are recorded.
type Source interface {
	IntRange(min, max int) int
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func(min, max int) int

// IntRange calls f.
func (f SourceFunc) IntRange(min, max int) int { return f(min, max) }
