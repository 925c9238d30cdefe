// Package controls turns user intents into board operations. The window
// and the CLI both go through Apply, so neither reimplements board logic.
package controls

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/iburimskiy/exploding-dots/internal/dots"
)

type Action int

const (
	None Action = iota
	AddDot
	RemoveDot
	Unexplode
	BaseUp
	BaseDown
	Explode
	Reset
	Load
)

var actionNames = map[Action]string{
	None:      "none",
	AddDot:    "add-dot",
	RemoveDot: "remove-dot",
	Unexplode: "unexplode",
	BaseUp:    "base-up",
	BaseDown:  "base-down",
	Explode:   "explode",
	Reset:     "reset",
	Load:      "load",
}

func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// Request is one user intent. Place is used by the dot actions, Value by
// Load.
type Request struct {
	Action Action
	Place  int
	Value  int64
}

// Outcome describes what a request did to the board.
type Outcome struct {
	Changed     bool
	Before      int64
	After       int64
	Explosions  []dots.Explosion
	BaseChanged bool
}

// Controller applies requests to one board.
type Controller struct {
	board       *dots.Board
	autoExplode bool
	logger      *zap.Logger
}

func New(board *dots.Board, autoExplode bool, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{board: board, autoExplode: autoExplode, logger: logger}
}

func (c *Controller) Board() *dots.Board { return c.board }

func (c *Controller) AutoExplode() bool { return c.autoExplode }

// SetAutoExplode turns the explode pass after dot mutations on or off.
func (c *Controller) SetAutoExplode(on bool) { c.autoExplode = on }

// Apply performs req. Add and remove are followed by an explode pass when
// auto-explode is on; unexplode never is, since that would undo it.
func (c *Controller) Apply(req Request) (Outcome, error) {
	b := c.board
	out := Outcome{Before: b.Value()}
	var err error

	switch req.Action {
	case None:
	case AddDot:
		err = b.Increment(req.Place)
		out.Changed = err == nil
		if out.Changed && c.autoExplode {
			out.Explosions = b.ExplodeLeft()
		}
	case RemoveDot:
		err = b.Decrement(req.Place)
		out.Changed = err == nil
		if out.Changed && c.autoExplode {
			out.Explosions = b.ExplodeLeft()
		}
	case Unexplode:
		err = b.UnexplodeRight(req.Place)
		out.Changed = err == nil
	case BaseUp, BaseDown:
		delta := 1
		if req.Action == BaseDown {
			delta = -1
		}
		out.BaseChanged = b.StepBase(delta)
		out.Changed = out.BaseChanged
		if out.BaseChanged {
			c.logger.Info("base changed", zap.Int("base", b.Base()), zap.Int64("value", b.Value()))
		}
	case Explode:
		out.Explosions = b.ExplodeLeft()
		out.Changed = len(out.Explosions) > 0
	case Reset:
		b.Reset()
		out.Changed = out.Before != 0
		c.logger.Info("board reset")
	case Load:
		b.Load(req.Value)
		out.Changed = true
		c.logger.Info("board loaded", zap.Int64("value", req.Value), zap.Ints("places", b.Places()))
	default:
		err = fmt.Errorf("unknown %s", req.Action)
	}
	if err != nil {
		return out, fmt.Errorf("%s: %w", req.Action, err)
	}

	out.After = b.Value()
	if len(out.Explosions) > 0 {
		c.logger.Debug("exploded",
			zap.Stringer("action", req.Action),
			zap.Int("groups", totalGroups(out.Explosions)),
			zap.Ints("places", b.Places()))
	}
	return out, nil
}

func totalGroups(ex []dots.Explosion) int {
	n := 0
	for _, e := range ex {
		n += e.Count
	}
	return n
}
