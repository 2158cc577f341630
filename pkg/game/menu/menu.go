// Package menu provides numbered console menus and the validated prompts
// every other part of the game reads through.
package menu

import (
	"strconv"
	"strings"

	"github.com/leonelquinteros/gotext"

	"smartguess/pkg/engine/input"
	"smartguess/pkg/game/renderer"
)

// MenuItem represents a single item in a menu.
type MenuItem interface {
	// GetLabel returns the display label for this menu item.
	GetLabel() string
}

// Console pairs the token reader with the renderer so prompts can
// re-ask until the answer is acceptable.
type Console struct {
	in  *input.Reader
	out renderer.Renderer
}

// NewConsole creates a console over in and out
func NewConsole(in *input.Reader, out renderer.Renderer) *Console {
	return &Console{in: in, out: out}
}

// Out returns the renderer the console writes to
func (c *Console) Out() renderer.Renderer {
	return c.out
}

// ReadInt reads any integer, re-prompting on anything else
func (c *Console) ReadInt() (int, error) {
	return c.in.ReadIntWhere(nil, c.reject(0, 0))
}

// ReadIntInRange reads an integer in [lo, hi], re-prompting until one arrives
func (c *Console) ReadIntInRange(lo, hi int) (int, error) {
	return c.in.ReadIntWhere(input.InRange(lo, hi), c.reject(lo, hi))
}

func (c *Console) reject(lo, hi int) func(input.Rejection) {
	return func(r input.Rejection) {
		switch r {
		case input.OutOfRange:
			c.out.Prompt(c.out.FormatText(gotext.Get("OUT_OF_RANGE"), lo, hi))
		default:
			c.out.Prompt(gotext.Get("INVALID_INTEGER"))
		}
	}
}

// Confirm shows question and reads a yes/no answer. Only y or yes
// (any case) count as yes.
func (c *Console) Confirm(question string) (bool, error) {
	c.out.Say(question)
	intent, err := c.in.ReadIntent()
	if err != nil {
		return false, err
	}
	return intent.Confirmed(), nil
}

// Choose shows a numbered menu on one line and returns the 0-based index of
// the chosen item.
func (c *Console) Choose(title string, items []MenuItem) (int, error) {
	entries := make([]string, len(items))
	for i, item := range items {
		entries[i] = c.out.StyleText(strconv.Itoa(i+1)+")", renderer.StyleAction) + " " + item.GetLabel()
	}
	c.out.Say(title + " " + strings.Join(entries, "  "))
	c.out.Prompt(gotext.Get("ENTER_CHOICE"))

	choice, err := c.ReadIntInRange(1, len(items))
	if err != nil {
		return 0, err
	}
	return choice - 1, nil
}
