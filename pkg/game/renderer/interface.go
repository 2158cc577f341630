package renderer

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleTitle
	StyleAction
	StyleGood
	StyleBad
	StyleHint
	StyleWarning
	StyleSubtle
)

// Renderer defines the interface for console output backends.
//
// Text handed to Say and Prompt may carry markup of the form FUNC{operand}:
// GT{KEY} looks KEY up in the message catalogue, the style functions
// (TITLE, ACTION, GOOD, BAD, HINT, WARN, SUBTLE) colour the operand.
type Renderer interface {
	// Init initializes the renderer (colors, markup patterns, etc.)
	Init()

	// Say writes a line of text, expanding markup.
	Say(text string)

	// Prompt writes text without a trailing newline, expanding markup.
	Prompt(text string)

	// Banner writes a framed block: a title line followed by body lines.
	Banner(title string, lines ...string)

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string
}
