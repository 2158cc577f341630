package gameplay

import (
	"fmt"

	"github.com/leonelquinteros/gotext"

	"smartguess/pkg/game/difficulty"
)

// Hint is a fact about the secret revealed by a solved puzzle.
type Hint struct {
	Kind difficulty.HintKind
	// Holds is true when the secret is even (parity) or above Midpoint
	// (magnitude).
	Holds bool
}

// RevealHint computes the hint of the given kind for secret
func RevealHint(kind difficulty.HintKind, secret int) Hint {
	switch kind {
	case difficulty.HintMagnitude:
		return Hint{Kind: kind, Holds: secret > Midpoint}
	default:
		return Hint{Kind: difficulty.HintParity, Holds: secret%2 == 0}
	}
}

// Message returns the translated hint line
func (h Hint) Message() string {
	switch {
	case h.Kind == difficulty.HintMagnitude && h.Holds:
		return fmt.Sprintf(gotext.Get("HINT_ABOVE"), Midpoint)
	case h.Kind == difficulty.HintMagnitude:
		return fmt.Sprintf(gotext.Get("HINT_AT_MOST"), Midpoint)
	case h.Holds:
		return gotext.Get("HINT_EVEN")
	default:
		return gotext.Get("HINT_ODD")
	}
}
