package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ncruces/zenity"
)

// Prompter asks the user for input outside the game window.
type Prompter interface {
	// AskValue returns ok == false when the user cancels.
	AskValue() (v int64, ok bool, err error)
	ShowError(msg string)
}

// ZenityPrompter uses native dialogs.
type ZenityPrompter struct{}

func (ZenityPrompter) AskValue() (int64, bool, error) {
	s, err := zenity.Entry("Number to put on the board:",
		zenity.Title("Load value"),
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return parseValue(s)
}

func (ZenityPrompter) ShowError(msg string) {
	_ = zenity.Error(msg, zenity.Title("Exploding Dots"))
}

func parseValue(s string) (int64, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("not a whole number: %q", s)
	}
	return v, true, nil
}
