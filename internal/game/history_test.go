package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iburimskiy/exploding-dots/internal/dots"
)

func TestHistoryRing(t *testing.T) {
	h := newHistory(3)
	assert.Empty(t, h.snapshot(5))

	for i := 1; i <= 5; i++ {
		h.push(fmt.Sprint(i))
	}
	assert.Equal(t, []string{"3", "4", "5"}, h.snapshot(5))
	assert.Equal(t, []string{"4", "5"}, h.snapshot(2))

	h.clear()
	assert.Empty(t, h.snapshot(3))
	h.push("x")
	assert.Equal(t, []string{"x"}, h.snapshot(3))
}

func TestDescribeExplosion(t *testing.T) {
	tests := []struct {
		e    dots.Explosion
		base int
		want string
	}{
		{dots.Explosion{Place: 6, Count: 1, Sign: 1}, 8, "8 dots in place 6 -> 1 dot in place 5"},
		{dots.Explosion{Place: 2, Count: 2, Sign: 1}, 10, "20 dots in place 2 -> 2 dots in place 1"},
		{dots.Explosion{Place: 1, Count: 1, Sign: -1}, 8, "8 antidots in place 1 -> 1 antidot in place 0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, describeExplosion(tt.e, tt.base))
	}

	h := newHistory(4)
	h.record([]dots.Explosion{{Place: 2, Count: 1, Sign: 1}, {Place: 1, Count: 1, Sign: 1}}, 2)
	assert.Len(t, h.snapshot(4), 2)
}

func TestParseValue(t *testing.T) {
	v, ok, err := parseValue(" -42 ")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(-42), v)

	_, ok, err = parseValue("")
	assert.NoError(t, err)
	assert.False(t, ok)

	_, _, err = parseValue("twelve")
	assert.Error(t, err)
}

func TestHsvToRgb(t *testing.T) {
	r, g, b := hsvToRgb(0, 1, 1)
	assert.Equal(t, [3]uint8{255, 0, 0}, [3]uint8{r, g, b})
	r, g, b = hsvToRgb(480, 1, 1)
	assert.Equal(t, [3]uint8{0, 255, 0}, [3]uint8{r, g, b})
	r, g, b = hsvToRgb(-120, 1, 1)
	assert.Equal(t, [3]uint8{0, 0, 255}, [3]uint8{r, g, b})
	assert.Equal(t, 0.0, clamp01(-1))
	assert.Equal(t, 1.0, clamp01(3))
}
