package dice

import (
	"strconv"
	"strings"
)

// Roll records the faces produced by rolling one Die several times, together
// with the highest, lowest and total of those faces. A Roll is immutable: the
// derived fields are computed once in NewRoll.
type Roll struct {
	die     Die
	values  []int
	highest int
	lowest  int
	total   int
}

// NewRoll builds a Roll from values in draw order. Values are copied.
func NewRoll(die Die, values []int) (Roll, error) {
	if len(values) == 0 {
		return Roll{}, ErrEmptyRoll
	}
	r := Roll{
		die:     die,
		values:  append([]int(nil), values...),
		highest: values[0],
		lowest:  values[0],
	}
	for _, v := range values {
		if v > r.highest {
			r.highest = v
		}
		if v < r.lowest {
			r.lowest = v
		}
		r.total += v
	}
	return r, nil
}

// Die returns the die that produced the faces.
func (r Roll) Die() Die { return r.die }

// Values returns a copy of the faces in draw order.
func (r Roll) Values() []int { return append([]int(nil), r.values...) }

// Len returns the number of faces.
func (r Roll) Len() int { return len(r.values) }

// Highest returns the largest face.
func (r Roll) Highest() int { return r.highest }

// Lowest returns the smallest face.
func (r Roll) Lowest() int { return r.lowest }

// Total returns the sum of every face.
func (r Roll) Total() int { return r.total }

// String renders the faces as a bracketed list, e.g. "[4, 2]".
func (r Roll) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range r.values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte(']')
	return b.String()
}
