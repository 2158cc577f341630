package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// fd returns the file descriptor behind w, if w is an *os.File.
func fd(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return 0, false
	}
	return int(f.Fd()), true
}

// GetSize returns the width and height of the terminal w writes to.
// Falls back to defaults if the size cannot be determined.
func GetSize(w io.Writer) (width, height int) {
	n, ok := fd(w)
	if !ok {
		return DefaultWidth, DefaultHeight
	}
	width, height, err := term.GetSize(n)
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the width of the terminal w writes to.
// Falls back to DefaultWidth if the width cannot be determined.
func GetWidth(w io.Writer) int {
	width, _ := GetSize(w)
	return width
}

// IsTerminal reports whether w is attached to a terminal.
func IsTerminal(w io.Writer) bool {
	n, ok := fd(w)
	if !ok {
		return false
	}
	return term.IsTerminal(n)
}
