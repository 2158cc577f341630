package state

import "testing"

func TestNewSession_ClampsNegativeHighScore(t *testing.T) {
	s := NewSession(-5)
	if s.HighScore != 0 {
		t.Errorf("NewSession(-5).HighScore = %d, want 0", s.HighScore)
	}
}

func TestAddScore_RaisesHighScore(t *testing.T) {
	s := NewSession(350)

	if s.AddScore(200) {
		t.Error("AddScore(200) with high score 350 reported a new high")
	}
	if s.TotalScore != 200 || s.HighScore != 350 {
		t.Errorf("after AddScore(200): total=%d high=%d, want 200/350", s.TotalScore, s.HighScore)
	}

	if !s.AddScore(180) {
		t.Error("AddScore(180) reaching 380 did not report a new high")
	}
	if s.HighScore != 380 {
		t.Errorf("HighScore = %d, want 380", s.HighScore)
	}
}

func TestAddScore_NeverDecreases(t *testing.T) {
	s := NewSession(0)
	s.AddScore(100)
	s.AddScore(0)
	s.AddScore(-40)
	if s.TotalScore != 100 {
		t.Errorf("TotalScore = %d, want 100", s.TotalScore)
	}
}

func TestRound_RecordGuessAndSummary(t *testing.T) {
	r := NewRound(42)
	for _, g := range []int{50, 25, 40} {
		r.RecordGuess(g)
	}
	if r.AttemptsUsed != 3 {
		t.Errorf("AttemptsUsed = %d, want 3", r.AttemptsUsed)
	}

	sum := r.Summary(70)
	r.Guesses[0] = 99
	if sum.Guesses[0] != 50 {
		t.Error("Summary() shares the guesses slice with the round")
	}
	if sum.Secret != 42 || sum.TotalScore != 70 || sum.Won {
		t.Errorf("Summary() = %+v", sum)
	}
}
