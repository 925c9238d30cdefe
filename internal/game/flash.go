package game

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// flash fades a highlight over a cell after it explodes or receives a carry.
type flash struct {
	tween *gween.Tween
	alpha float32
	sign  int
}

func (f *flash) start(duration float32, sign int) {
	f.tween = gween.New(1, 0, duration, ease.OutQuad)
	f.alpha = 1
	f.sign = sign
}

func (f *flash) update(dt float32) {
	if f.tween == nil {
		return
	}
	v, done := f.tween.Update(dt)
	f.alpha = v
	if done {
		f.tween = nil
		f.alpha = 0
	}
}

func (f *flash) active() bool { return f.tween != nil }
