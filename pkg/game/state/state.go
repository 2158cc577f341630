package state

import (
	"github.com/zyedidia/generic/mapset"
)

// Session is the state shared by every round of one process run
type Session struct {
	TotalScore int // Never decreases; reset when the process restarts
	HighScore  int // All-time best total, loaded from disk at startup
	Rounds     int // Rounds played this session
}

// NewSession creates a session starting from a persisted high score
func NewSession(highScore int) *Session {
	if highScore < 0 {
		highScore = 0
	}
	return &Session{HighScore: highScore}
}

// AddScore adds points to the total. It reports whether the total now beats
// the high score, in which case HighScore has been raised to match.
func (s *Session) AddScore(points int) (newHigh bool) {
	if points > 0 {
		s.TotalScore += points
	}
	if s.TotalScore > s.HighScore {
		s.HighScore = s.TotalScore
		return true
	}
	return false
}

// Round is the state of one guessing round
type Round struct {
	Secret       int
	AttemptsUsed int
	Guesses      []int
	UsedPuzzles  mapset.Set[int] // Bank indices already offered this round
	Won          bool
	Score        int
}

// NewRound creates a round around secret
func NewRound(secret int) *Round {
	return &Round{
		Secret:      secret,
		Guesses:     make([]int, 0),
		UsedPuzzles: mapset.New[int](),
	}
}

// RecordGuess counts an attempt and remembers the guess
func (r *Round) RecordGuess(guess int) {
	r.AttemptsUsed++
	r.Guesses = append(r.Guesses, guess)
}

// Summary snapshots the round for display or export
func (r *Round) Summary(totalScore int) Summary {
	return Summary{
		Secret:       r.Secret,
		AttemptsUsed: r.AttemptsUsed,
		Guesses:      append([]int(nil), r.Guesses...),
		Score:        r.Score,
		TotalScore:   totalScore,
		Won:          r.Won,
	}
}

// Summary is the externalised outcome of a round
type Summary struct {
	Secret       int
	AttemptsUsed int
	Guesses      []int
	Score        int
	TotalScore   int // Session total after the round
	Won          bool
}
