// Package layout computes the pixel geometry of the dot machine: the row of
// place cells, where dots sit inside a cell, and which place a pointer is
// over. It has no drawing code.
package layout

// NoPlace is returned by hit tests that miss every cell.
const NoPlace = -1

type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

type Point struct {
	X, Y float64
}

// Row is a horizontal strip of n equally sized cells, index 0 leftmost.
type Row struct {
	Cells []Rect
}

// NewRow lays out n cells of the requested size centered in a screen of
// screenW pixels, starting at y. Cells shrink to 80% of their share of the
// screen when the requested width would crowd it.
func NewRow(n, screenW, y, cellW, cellH int) Row {
	if n < 1 {
		return Row{}
	}
	x := int((float64(screenW) - float64(n*cellW)*0.9) / 2)
	share := float64(screenW) / float64(n)
	if float64(int(share)) < 1.1*float64(cellW) {
		cellW = int(share * 0.8)
	}
	cells := make([]Rect, n)
	for i := range cells {
		cells[i] = Rect{X: x + cellW*i, Y: y, W: cellW, H: cellH}
	}
	return Row{Cells: cells}
}

// CellAt returns the index of the cell containing (x, y), or NoPlace.
func (r Row) CellAt(x, y int) int {
	for i, c := range r.Cells {
		if c.Contains(x, y) {
			return i
		}
	}
	return NoPlace
}

// Bounds is the rectangle covering the whole row.
func (r Row) Bounds() Rect {
	if len(r.Cells) == 0 {
		return Rect{}
	}
	first, last := r.Cells[0], r.Cells[len(r.Cells)-1]
	return Rect{X: first.X, Y: first.Y, W: last.X + last.W - first.X, H: first.H}
}

// DotCenters places count dots in a grid of perRow columns, stepping step
// of the cell size per column and per row from a step-sized margin.
func DotCenters(cell Rect, count, perRow int, step float64) []Point {
	if count < 0 {
		count = -count
	}
	if perRow < 1 {
		perRow = 1
	}
	out := make([]Point, count)
	for j := range out {
		out[j] = Point{
			X: float64(cell.X) + float64(cell.W)*(step+step*float64(j%perRow)),
			Y: float64(cell.Y) + float64(cell.H)*(step+step*float64(j/perRow)),
		}
	}
	return out
}

// MachineLabel positions a label of the given size near the top right
// corner of the screen.
func MachineLabel(screenW, screenH, labelW, labelH int) Rect {
	return Rect{
		X: screenW - int(1.8*float64(labelW)),
		Y: screenH / 20,
		W: labelW,
		H: labelH,
	}
}

// Buttons lays out count buttons of size w x h left to right under the
// row, gap pixels apart.
func Buttons(row Row, count, w, h, gap int) []Rect {
	b := row.Bounds()
	out := make([]Rect, count)
	for i := range out {
		out[i] = Rect{X: b.X + i*(w+gap), Y: b.Y + b.H + 2*gap, W: w, H: h}
	}
	return out
}
