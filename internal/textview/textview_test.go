package textview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/exploding-dots/internal/dots"
)

func TestCell(t *testing.T) {
	assert.Equal(t, 0, strings.Count(Cell(0), Dot))
	assert.Equal(t, 5, strings.Count(Cell(5), Dot))
	assert.Equal(t, 2, strings.Count(Cell(5), "\n")+1)
	assert.Equal(t, 3, strings.Count(Cell(-3), Antidot))
	assert.Contains(t, Cell(40), "x40")
	assert.Contains(t, Cell(-17), "x17")
}

func TestRender(t *testing.T) {
	b, err := dots.New(3, 10, dots.Limits{Min: 2, Max: 16})
	require.NoError(t, err)
	b.Load(-15)

	out := Render(b)
	assert.Contains(t, out, "1 <- 10")
	assert.Contains(t, out, "Value: -15")
	assert.Contains(t, out, "[0 -1 -5]")
	assert.Equal(t, 6, strings.Count(out, Antidot))
}
