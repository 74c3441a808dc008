package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DaanHessen/dicetray/internal/dice"
	"github.com/DaanHessen/dicetray/internal/dice/dicetest"
)

func TestDieString(t *testing.T) {
	assert.Equal(t, "d20", dice.New(20).String())
	assert.Equal(t, "d4", dice.New(4).String())
}

func TestDieOrdering(t *testing.T) {
	d4, d6 := dice.New(4), dice.New(6)
	assert.True(t, d4.Less(d6))
	assert.False(t, d6.Less(d4))
	assert.Equal(t, -1, d4.Compare(d6))
	assert.Equal(t, 1, d6.Compare(d4))
	assert.Equal(t, 0, d6.Compare(dice.New(6)))
	assert.Equal(t, d6, dice.New(6))
}

func TestDieValidate(t *testing.T) {
	require.NoError(t, dice.New(2).Validate())
	require.NoError(t, dice.New(100).Validate())
	assert.ErrorIs(t, dice.New(1).Validate(), dice.ErrSidesBelowMinimum)
	assert.ErrorIs(t, dice.New(0).Validate(), dice.ErrSidesBelowMinimum)
	assert.ErrorIs(t, dice.New(-3).Validate(), dice.ErrSidesBelowMinimum)
}

func rollBounds(t *testing.T, sides, quantity int) {
	t.Helper()
	src, err := dice.NewRandomSource()
	require.NoError(t, err)

	r, err := dice.New(sides).Roll(src, quantity)
	require.NoError(t, err)

	assert.Len(t, r.Values(), quantity)
	sum := 0
	for _, v := range r.Values() {
		assert.GreaterOrEqual(t, v, dice.MinimumValue)
		assert.LessOrEqual(t, v, sides)
		sum += v
	}
	assert.Equal(t, sum, r.Total())
	assert.GreaterOrEqual(t, r.Total(), r.Lowest()*quantity)
	assert.LessOrEqual(t, r.Total(), r.Highest()*quantity)
}

func TestDieRollBounds(t *testing.T) {
	rollBounds(t, 20, 1)
	rollBounds(t, 20, 10)
	rollBounds(t, 6, 100)
}

func TestD6TenTimes(t *testing.T) {
	for i := 0; i < 50; i++ {
		src, err := dice.NewRandomSource()
		require.NoError(t, err)
		r, err := dice.New(6).Roll(src, 10)
		require.NoError(t, err)
		assert.Len(t, r.Values(), 10)
		assert.GreaterOrEqual(t, r.Total(), 10)
		assert.LessOrEqual(t, r.Total(), 60)
	}
}

func TestDieRollDrawOrder(t *testing.T) {
	src := dicetest.NewScript(3, 1, 6)
	r, err := dice.New(6).Roll(src, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 6}, r.Values())
	assert.Equal(t, 3, src.Drawn())
}

func TestDieRollDegenerate(t *testing.T) {
	r, err := dice.New(1).Roll(dicetest.Max{}, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1, 1}, r.Values())

	r, err = dice.New(0).Roll(dicetest.Max{}, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Total())
}

func TestDieRollQuantityErrors(t *testing.T) {
	_, err := dice.New(6).Roll(dicetest.Max{}, 0)
	assert.ErrorIs(t, err, dice.ErrEmptyRoll)

	_, err = dice.New(6).Roll(dicetest.Max{}, -1)
	assert.ErrorIs(t, err, dice.ErrInvalidQuantity)
}

func TestDieRollRequestsFullRange(t *testing.T) {
	var calls [][2]int
	src := dice.SourceFunc(func(min, max int) int {
		calls = append(calls, [2]int{min, max})
		return min
	})
	_, err := dice.New(12).Roll(src, 3)
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{1, 12}, {1, 12}, {1, 12}}, calls)
}
