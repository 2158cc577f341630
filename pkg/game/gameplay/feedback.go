// Package gameplay provides the core game logic: playing a round and
// running a session of rounds.
package gameplay

import (
	"fmt"

	"github.com/leonelquinteros/gotext"
)

// Feedback is the answer to a guess
type Feedback int

const (
	TooLow Feedback = iota
	TooHigh
	Correct
)

// Compare returns the feedback for guess against secret
func Compare(guess, secret int) Feedback {
	switch {
	case guess < secret:
		return TooLow
	case guess > secret:
		return TooHigh
	default:
		return Correct
	}
}

// Message returns the translated feedback line for a guess at secret
func (f Feedback) Message(secret int) string {
	switch f {
	case TooLow:
		return gotext.Get("TOO_LOW")
	case TooHigh:
		return gotext.Get("TOO_HIGH")
	default:
		return fmt.Sprintf(gotext.Get("CORRECT"), secret)
	}
}

// Closeness grades how far a wrong guess landed
type Closeness int

const (
	ExtremelyClose Closeness = iota // within 3
	Close                           // within 8
	Far
)

// ClosenessOf grades the distance between guess and secret
func ClosenessOf(guess, secret int) Closeness {
	d := abs(guess - secret)
	switch {
	case d <= 3:
		return ExtremelyClose
	case d <= 8:
		return Close
	default:
		return Far
	}
}

// Message returns the translated closeness tip
func (c Closeness) Message() string {
	switch c {
	case ExtremelyClose:
		return gotext.Get("EXTREMELY_CLOSE")
	case Close:
		return gotext.Get("CLOSE")
	default:
		return gotext.Get("FAR")
	}
}

// abs returns the absolute value of an integer
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
