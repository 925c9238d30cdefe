package game

import (
	"fmt"

	"github.com/iburimskiy/exploding-dots/internal/dots"
)

// history keeps the last N explosions in a ring buffer so the window can
// list what the machine just did.
type history struct {
	buffer    []string
	nextIndex int
	count     int
}

func newHistory(size int) *history {
	return &history{buffer: make([]string, size)}
}

func (h *history) push(line string) {
	h.buffer[h.nextIndex] = line
	h.nextIndex++
	if h.nextIndex >= len(h.buffer) {
		h.nextIndex = 0
	}
	if h.count < len(h.buffer) {
		h.count++
	}
}

// record adds one line per explosion of a pass.
func (h *history) record(ex []dots.Explosion, base int) {
	for _, e := range ex {
		h.push(describeExplosion(e, base))
	}
}

// snapshot returns up to the last n lines, most recent last.
func (h *history) snapshot(n int) []string {
	if n > h.count {
		n = h.count
	}
	out := make([]string, 0, n)
	// Walk backwards from nextIndex - 1
	idx := h.nextIndex - 1
	if idx < 0 {
		idx = len(h.buffer) - 1
	}
	for i := 0; i < n; i++ {
		out = append(out, h.buffer[idx])
		idx--
		if idx < 0 {
			idx = len(h.buffer) - 1
		}
	}
	// reverse to chronological order
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func (h *history) clear() {
	h.nextIndex = 0
	h.count = 0
}

// describeExplosion reads like "16 dots in place 6 -> 2 dots in place 5".
func describeExplosion(e dots.Explosion, base int) string {
	return fmt.Sprintf("%s in place %d -> %s in place %d",
		dotCount(e.Count*base, e.Sign), e.Place,
		dotCount(e.Count, e.Sign), e.Place-1)
}

func dotCount(n, sign int) string {
	noun := "dot"
	if sign < 0 {
		noun = "antidot"
	}
	if n != 1 {
		noun += "s"
	}
	return fmt.Sprintf("%d %s", n, noun)
}
