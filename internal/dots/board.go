// Package dots implements the Exploding Dots place-value board: a row of
// signed dot counts and the machine base that decides when dots explode.
package dots

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPlaceIndex = errors.New("invalid place index")
	ErrInvalidBase       = errors.New("invalid base")
	ErrInvalidPlaceCount = errors.New("invalid place count")
	ErrNoPlaceRight      = errors.New("no place to the right")
)

// MinBase is the smallest base any board accepts, whatever its limits say.
const MinBase = 2

// Limits bounds the base a board may be switched to.
type Limits struct {
	Min int
	Max int
}

func (l Limits) validate() error {
	if l.Min < MinBase || l.Max < l.Min {
		return fmt.Errorf("limits %d..%d: %w", l.Min, l.Max, ErrInvalidBase)
	}
	return nil
}

func (l Limits) contains(b int) bool {
	return b >= l.Min && b <= l.Max
}

// Explosion records a run of explode steps at one place during ExplodeLeft.
// Sign is +1 for dots and -1 for antidots; Count is how many groups of
// base dots left Place for Place-1.
type Explosion struct {
	Place int
	Count int
	Sign  int
}

// Board owns the per-place dot counts and the base. Index 0 is the
// leftmost (most significant) place.
type Board struct {
	places []int
	base   int
	limits Limits
}

// New returns a board with n empty places.
func New(n, base int, limits Limits) (*Board, error) {
	if n < 1 {
		return nil, fmt.Errorf("%d places: %w", n, ErrInvalidPlaceCount)
	}
	if err := limits.validate(); err != nil {
		return nil, err
	}
	if !limits.contains(base) {
		return nil, fmt.Errorf("base %d outside %d..%d: %w", base, limits.Min, limits.Max, ErrInvalidBase)
	}
	return &Board{
		places: make([]int, n),
		base:   base,
		limits: limits,
	}, nil
}

// FromPlaces returns a board holding a copy of places.
func FromPlaces(places []int, base int, limits Limits) (*Board, error) {
	b, err := New(len(places), base, limits)
	if err != nil {
		return nil, err
	}
	copy(b.places, places)
	return b, nil
}

func (b *Board) Len() int { return len(b.places) }
func (b *Board) Base() int { return b.base }
func (b *Board) Limits() Limits { return b.limits }

// Places returns a copy of the dot counts.
func (b *Board) Places() []int {
	out := make([]int, len(b.places))
	copy(out, b.places)
	return out
}

// At returns the dot count at place i, or 0 when i is out of range.
func (b *Board) At(i int) int {
	if i < 0 || i >= len(b.places) {
		return 0
	}
	return b.places[i]
}

func (b *Board) checkIndex(i int) error {
	if i < 0 || i >= len(b.places) {
		return fmt.Errorf("place %d of %d: %w", i, len(b.places), ErrInvalidPlaceIndex)
	}
	return nil
}

// Increment adds one dot at place i. It does not renormalize.
func (b *Board) Increment(i int) error {
	if err := b.checkIndex(i); err != nil {
		return err
	}
	b.places[i]++
	return nil
}

// Decrement removes one dot at place i; counts may go negative (antidots).
func (b *Board) Decrement(i int) error {
	if err := b.checkIndex(i); err != nil {
		return err
	}
	b.places[i]--
	return nil
}

// SetBase replaces the base without touching the dot counts, so the board
// may be denormalized until the next ExplodeLeft.
func (b *Board) SetBase(base int) error {
	if !b.limits.contains(base) {
		return fmt.Errorf("base %d outside %d..%d: %w", base, b.limits.Min, b.limits.Max, ErrInvalidBase)
	}
	b.base = base
	return nil
}

// StepBase moves the base by delta, clamped to the limits, and reports
// whether it changed.
func (b *Board) StepBase(delta int) bool {
	next := b.base + delta
	if next < b.limits.Min {
		next = b.limits.Min
	}
	if next > b.limits.Max {
		next = b.limits.Max
	}
	if next == b.base {
		return false
	}
	b.base = next
	return true
}

// Value is the number the board currently represents under its base.
func (b *Board) Value() int64 {
	return Value(b.places, b.base)
}

// Reset empties every place.
func (b *Board) Reset() {
	for i := range b.places {
		b.places[i] = 0
	}
}

// Load replaces the dot counts with the exploded form of v. Place 0
// absorbs whatever does not fit in the lower places.
func (b *Board) Load(v int64) {
	b.Reset()
	n := len(b.places)
	base := int64(b.base)
	for i := n - 1; i > 0 && v != 0; i-- {
		// Go's % truncates toward zero, so digits share the sign of v.
		b.places[i] = int(v % base)
		v /= base
	}
	b.places[0] += int(v)
}

// Value evaluates places under base: the sum of places[i] * base^(n-1-i).
func Value(places []int, base int) int64 {
	var v int64
	for _, c := range places {
		v = v*int64(base) + int64(c)
	}
	return v
}

// MachineName is the conventional "1 <- b" name of a base-b machine.
func MachineName(base int) string {
	return fmt.Sprintf("1 <- %d", base)
}
