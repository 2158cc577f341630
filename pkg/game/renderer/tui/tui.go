package tui

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"smartguess/pkg/engine/terminal"
	"smartguess/pkg/game/renderer"
)

// bannerWidth caps the width of framed blocks on wide terminals.
const bannerWidth = 47

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out      io.Writer
	useColor bool

	colorTitle   color.Style
	colorAction  color.Style
	colorGood    color.Style
	colorBad     color.Style
	colorHint    color.Style
	colorWarning color.Style
	colorSubtle  color.Style

	regexpStringFunctions *regexp.Regexp
}

// Option configures a TUIRenderer.
type Option func(*TUIRenderer)

// WithColor turns ANSI styling on or off.
func WithColor(enabled bool) Option {
	return func(t *TUIRenderer) {
		t.useColor = enabled
	}
}

// New creates a new TUI renderer writing to out
func New(out io.Writer, opts ...Option) *TUIRenderer {
	t := &TUIRenderer{out: out, useColor: true}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorTitle = color.Style{color.FgCyan, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta, color.OpBold}
	t.colorGood = color.Style{color.FgGreen, color.OpBold}
	t.colorBad = color.Style{color.FgRed, color.OpBold}
	t.colorHint = color.Style{color.FgYellow, color.OpBold}
	t.colorWarning = color.Style{color.FgYellow}
	t.colorSubtle = color.Style{color.FgGray}

	t.regexpStringFunctions = regexp.MustCompile(`([A-Z_]+)\{([^{}]*)\}`)
}

// Say writes a line of text, expanding markup
func (t *TUIRenderer) Say(text string) {
	fmt.Fprintln(t.out, t.expand(text))
}

// Prompt writes text without a newline, expanding markup
func (t *TUIRenderer) Prompt(text string) {
	fmt.Fprint(t.out, t.expand(text))
}

// Banner writes a framed block sized to the terminal
func (t *TUIRenderer) Banner(title string, lines ...string) {
	width := terminal.GetWidth(t.out)
	if width > bannerWidth {
		width = bannerWidth
	}
	rule := t.StyleText(strings.Repeat("=", width), renderer.StyleSubtle)

	fmt.Fprintln(t.out, rule)
	fmt.Fprintln(t.out, "  "+t.StyleText(t.expand(title), renderer.StyleTitle))
	for _, line := range lines {
		fmt.Fprintln(t.out, "  "+t.expand(line))
	}
	fmt.Fprintln(t.out, rule)
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	if !t.useColor {
		return text
	}

	switch style {
	case renderer.StyleTitle:
		return t.colorTitle.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleGood:
		return t.colorGood.Sprint(text)
	case renderer.StyleBad:
		return t.colorBad.Sprint(text)
	case renderer.StyleHint:
		return t.colorHint.Sprint(text)
	case renderer.StyleWarning:
		return t.colorWarning.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	return t.expand(fmt.Sprintf(msg, args...))
}

// expand replaces FUNC{operand} markup. Unknown functions are left untouched.
func (t *TUIRenderer) expand(ret string) string {
	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "TITLE":
			val = t.StyleText(operand, renderer.StyleTitle)
		case "ACTION":
			val = t.StyleText(operand, renderer.StyleAction)
		case "GOOD":
			val = t.StyleText(operand, renderer.StyleGood)
		case "BAD":
			val = t.StyleText(operand, renderer.StyleBad)
		case "HINT":
			val = t.StyleText(operand, renderer.StyleHint)
		case "WARN":
			val = t.StyleText(operand, renderer.StyleWarning)
		case "SUBTLE":
			val = t.StyleText(operand, renderer.StyleSubtle)
		default:
			continue
		}

		ret = strings.Replace(ret, match[0], val, 1)
	}

	return ret
}
