// Package difficulty defines the three difficulty presets, their attempt
// limits and base points, the attempts at which puzzle hints unlock and the
// round score formula.
package difficulty

import (
	"github.com/leonelquinteros/gotext"
)

// Difficulty is a named preset. The zero value behaves as Normal.
type Difficulty int

const (
	Easy Difficulty = iota + 1
	Normal
	Hard
)

// BonusPerAttempt is awarded for every attempt left unused at a win.
const BonusPerAttempt = 20

// All returns the presets in menu order.
func All() []Difficulty {
	return []Difficulty{Easy, Normal, Hard}
}

// FromChoice maps a menu choice to a preset: 1 is Easy, 3 is Hard and
// anything else is Normal.
func FromChoice(choice int) Difficulty {
	switch choice {
	case 1:
		return Easy
	case 3:
		return Hard
	default:
		return Normal
	}
}

// MaxAttempts returns the number of guesses allowed per round.
func (d Difficulty) MaxAttempts() int {
	switch d {
	case Easy:
		return 12
	case Hard:
		return 6
	default:
		return 8
	}
}

// BasePoints returns the flat score awarded on any win.
func (d Difficulty) BasePoints() int {
	switch d {
	case Easy:
		return 80
	case Hard:
		return 140
	default:
		return 100
	}
}

// Score returns the round score for a win on attempt attemptsUsed.
func (d Difficulty) Score(attemptsUsed int) int {
	bonus := d.MaxAttempts() - attemptsUsed
	if bonus < 0 {
		bonus = 0
	}
	return d.BasePoints() + BonusPerAttempt*bonus
}

// HintKind is the fact a solved puzzle reveals about the secret.
type HintKind int

const (
	HintParity    HintKind = iota // even or odd
	HintMagnitude                 // above the midpoint or not
)

// hintTriggers returns the attempts unlocking the parity and magnitude hints.
func (d Difficulty) hintTriggers() (parity, magnitude int) {
	switch d {
	case Easy:
		return 3, 6
	case Hard:
		return 2, 4
	default:
		return 2, 5
	}
}

// HintAt reports whether a puzzle unlocks right after attempt, and which
// hint it guards.
func (d Difficulty) HintAt(attempt int) (HintKind, bool) {
	parity, magnitude := d.hintTriggers()
	switch attempt {
	case parity:
		return HintParity, true
	case magnitude:
		return HintMagnitude, true
	default:
		return HintParity, false
	}
}

// String returns the preset's upper-case name.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "EASY"
	case Hard:
		return "HARD"
	default:
		return "NORMAL"
	}
}

// GetLabel returns the translated menu label.
func (d Difficulty) GetLabel() string {
	switch d {
	case Easy:
		return gotext.Get("DIFFICULTY_EASY")
	case Hard:
		return gotext.Get("DIFFICULTY_HARD")
	default:
		return gotext.Get("DIFFICULTY_NORMAL")
	}
}
