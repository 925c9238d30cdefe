package controls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/iburimskiy/exploding-dots/internal/dots"
)

func newController(t *testing.T, n, base int, auto bool) *Controller {
	t.Helper()
	b, err := dots.New(n, base, dots.Limits{Min: 2, Max: 16})
	require.NoError(t, err)
	return New(b, auto, zaptest.NewLogger(t))
}

func TestAddDotExplodes(t *testing.T) {
	c := newController(t, 2, 8, true)
	var out Outcome
	var err error
	for range 8 {
		out, err = c.Apply(Request{Action: AddDot, Place: 1})
		require.NoError(t, err)
	}
	assert.Equal(t, []int{1, 0}, c.Board().Places())
	assert.Equal(t, int64(7), out.Before)
	assert.Equal(t, int64(8), out.After)
	assert.Equal(t, []dots.Explosion{{Place: 1, Count: 1, Sign: 1}}, out.Explosions)
}

func TestRemoveDotMakesAntidots(t *testing.T) {
	c := newController(t, 2, 8, true)
	for range 9 {
		_, err := c.Apply(Request{Action: RemoveDot, Place: 1})
		require.NoError(t, err)
	}
	assert.Equal(t, []int{-1, -1}, c.Board().Places())
	assert.Equal(t, int64(-9), c.Board().Value())
}

func TestAutoExplodeOff(t *testing.T) {
	c := newController(t, 3, 10, false)
	for range 15 {
		out, err := c.Apply(Request{Action: AddDot, Place: 2})
		require.NoError(t, err)
		assert.Empty(t, out.Explosions)
	}
	assert.Equal(t, []int{0, 0, 15}, c.Board().Places())

	out, err := c.Apply(Request{Action: Explode})
	require.NoError(t, err)
	assert.True(t, out.Changed)
	assert.Equal(t, []int{0, 1, 5}, c.Board().Places())
	assert.Equal(t, int64(15), out.After)

	c.SetAutoExplode(true)
	assert.True(t, c.AutoExplode())
}

func TestUnexplodeIsNotUndone(t *testing.T) {
	c := newController(t, 2, 8, true)
	c.Board().Load(8)

	out, err := c.Apply(Request{Action: Unexplode, Place: 0})
	require.NoError(t, err)
	assert.True(t, out.Changed)
	assert.Equal(t, []int{0, 8}, c.Board().Places())
	assert.Equal(t, out.Before, out.After)

	_, err = c.Apply(Request{Action: Unexplode, Place: 1})
	assert.ErrorIs(t, err, dots.ErrNoPlaceRight)
}

func TestInvalidPlace(t *testing.T) {
	c := newController(t, 2, 8, true)
	out, err := c.Apply(Request{Action: AddDot, Place: 5})
	assert.ErrorIs(t, err, dots.ErrInvalidPlaceIndex)
	assert.False(t, out.Changed)
	assert.Equal(t, []int{0, 0}, c.Board().Places())
}

func TestBaseSteps(t *testing.T) {
	c := newController(t, 2, 15, true)
	c.Board().Load(17)
	before := c.Board().Places()

	out, err := c.Apply(Request{Action: BaseUp})
	require.NoError(t, err)
	assert.True(t, out.BaseChanged)
	assert.Equal(t, 16, c.Board().Base())
	assert.Equal(t, before, c.Board().Places())
	assert.Equal(t, int64(17), out.Before)
	assert.Equal(t, int64(18), out.After)

	out, err = c.Apply(Request{Action: BaseUp})
	require.NoError(t, err)
	assert.False(t, out.Changed)

	require.NoError(t, c.Board().SetBase(2))
	out, err = c.Apply(Request{Action: BaseDown})
	require.NoError(t, err)
	assert.False(t, out.BaseChanged)
	assert.Equal(t, 2, c.Board().Base())
}

func TestResetAndLoad(t *testing.T) {
	c := newController(t, 3, 10, true)
	out, err := c.Apply(Request{Action: Load, Value: 321})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1}, c.Board().Places())
	assert.Equal(t, int64(321), out.After)

	out, err = c.Apply(Request{Action: Reset})
	require.NoError(t, err)
	assert.True(t, out.Changed)
	assert.Equal(t, int64(0), out.After)

	out, err = c.Apply(Request{Action: Reset})
	require.NoError(t, err)
	assert.False(t, out.Changed)
}

func TestUnknownAction(t *testing.T) {
	c := newController(t, 2, 8, true)
	_, err := c.Apply(Request{Action: Action(99)})
	assert.Error(t, err)
	assert.Equal(t, "action(99)", Action(99).String())
	assert.Equal(t, "add-dot", AddDot.String())
}
