package dots

import "fmt"

// ExplodeLeft sweeps the places right to left and, for every place except
// the leftmost, trades base dots (or antidots) for one dot (or antidot) in
// the next place to the left until the place holds fewer than base in
// magnitude. Place 0 keeps any overflow. The board value is unchanged.
func (b *Board) ExplodeLeft() []Explosion {
	var out []Explosion
	for i := len(b.places) - 1; i > 0; i-- {
		c := b.places[i]
		if c >= b.base || -c >= b.base {
			sign := 1
			if c < 0 {
				sign = -1
			}
			// Equivalent to repeating the single step while
			// abs(places[i]) >= base.
			groups := (c * sign) / b.base
			b.places[i] -= sign * groups * b.base
			b.places[i-1] += sign * groups
			out = append(out, Explosion{Place: i, Count: groups, Sign: sign})
		}
	}
	return out
}

// Normalized reports whether every place but the leftmost holds fewer than
// base dots in magnitude.
func (b *Board) Normalized() bool {
	for i := 1; i < len(b.places); i++ {
		if b.places[i] >= b.base || -b.places[i] >= b.base {
			return false
		}
	}
	return true
}

// UnexplodeRight trades one dot at place i for base dots at place i+1.
// A negative place gives up an antidot instead, producing base antidots to
// its right. An empty place borrows, leaving an antidot behind.
func (b *Board) UnexplodeRight(i int) error {
	if err := b.checkIndex(i); err != nil {
		return err
	}
	if i == len(b.places)-1 {
		return fmt.Errorf("place %d: %w", i, ErrNoPlaceRight)
	}
	sign := 1
	if b.places[i] < 0 {
		sign = -1
	}
	b.places[i] -= sign
	b.places[i+1] += sign * b.base
	return nil
}
