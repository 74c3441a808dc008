package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DaanHessen/dicetray/internal/dice"
)

func TestNewRollDerivesFields(t *testing.T) {
	r, err := dice.NewRoll(dice.New(4), []int{1, 2, 3, 4})
	require.NoError(t, err)

	assert.Equal(t, dice.New(4), r.Die())
	assert.Equal(t, 10, r.Total())
	assert.Equal(t, 4, r.Highest())
	assert.Equal(t, 1, r.Lowest())
	assert.Equal(t, 4, r.Len())
}

func TestNewRollEmpty(t *testing.T) {
	_, err := dice.NewRoll(dice.New(4), nil)
	assert.ErrorIs(t, err, dice.ErrEmptyRoll)
}

func TestRollIsolatedFromCallerSlices(t *testing.T) {
	in := []int{4, 2}
	r, err := dice.NewRoll(dice.New(4), in)
	require.NoError(t, err)

	in[0] = 1
	out := r.Values()
	out[1] = 3

	assert.Equal(t, []int{4, 2}, r.Values())
	assert.Equal(t, 6, r.Total())
}

func TestRollString(t *testing.T) {
	r, err := dice.NewRoll(dice.New(4), []int{4, 2})
	require.NoError(t, err)
	assert.Equal(t, "[4, 2]", r.String())

	r, err = dice.NewRoll(dice.New(20), []int{17})
	require.NoError(t, err)
	assert.Equal(t, "[17]", r.String())
}
