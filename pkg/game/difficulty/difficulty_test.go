package difficulty

import "testing"

func TestFromChoice(t *testing.T) {
	tests := []struct {
		choice      int
		want        Difficulty
		maxAttempts int
		basePoints  int
	}{
		{1, Easy, 12, 80},
		{2, Normal, 8, 100},
		{3, Hard, 6, 140},
		{0, Normal, 8, 100},
		{7, Normal, 8, 100},
		{-1, Normal, 8, 100},
	}
	for _, tt := range tests {
		d := FromChoice(tt.choice)
		if d != tt.want {
			t.Errorf("FromChoice(%d) = %v, want %v", tt.choice, d, tt.want)
		}
		if d.MaxAttempts() != tt.maxAttempts {
			t.Errorf("FromChoice(%d).MaxAttempts() = %d, want %d", tt.choice, d.MaxAttempts(), tt.maxAttempts)
		}
		if d.BasePoints() != tt.basePoints {
			t.Errorf("FromChoice(%d).BasePoints() = %d, want %d", tt.choice, d.BasePoints(), tt.basePoints)
		}
	}
}

func TestScore_Formula(t *testing.T) {
	for _, d := range All() {
		for k := 1; k <= d.MaxAttempts(); k++ {
			want := d.BasePoints() + 20*(d.MaxAttempts()-k)
			if got := d.Score(k); got != want {
				t.Errorf("%v.Score(%d) = %d, want %d", d, k, got, want)
			}
		}
	}
}

func TestScore_StrictlyDecreasing(t *testing.T) {
	for _, d := range All() {
		for k := 2; k <= d.MaxAttempts(); k++ {
			if d.Score(k) >= d.Score(k-1) {
				t.Errorf("%v.Score(%d) = %d, not below Score(%d) = %d", d, k, d.Score(k), k-1, d.Score(k-1))
			}
		}
	}
}

func TestScore_BonusClampedAtZero(t *testing.T) {
	if got := Hard.Score(9); got != Hard.BasePoints() {
		t.Errorf("Hard.Score(9) = %d, want %d", got, Hard.BasePoints())
	}
}

func TestScore_NormalWinOnFourth(t *testing.T) {
	if got := Normal.Score(4); got != 180 {
		t.Errorf("Normal.Score(4) = %d, want 180", got)
	}
}

func TestHintAt(t *testing.T) {
	tests := []struct {
		d         Difficulty
		parity    int
		magnitude int
	}{
		{Easy, 3, 6},
		{Normal, 2, 5},
		{Hard, 2, 4},
	}
	for _, tt := range tests {
		for attempt := 1; attempt <= tt.d.MaxAttempts(); attempt++ {
			kind, ok := tt.d.HintAt(attempt)
			switch attempt {
			case tt.parity:
				if !ok || kind != HintParity {
					t.Errorf("%v.HintAt(%d) = (%v, %v), want (HintParity, true)", tt.d, attempt, kind, ok)
				}
			case tt.magnitude:
				if !ok || kind != HintMagnitude {
					t.Errorf("%v.HintAt(%d) = (%v, %v), want (HintMagnitude, true)", tt.d, attempt, kind, ok)
				}
			default:
				if ok {
					t.Errorf("%v.HintAt(%d) triggered, want no hint", tt.d, attempt)
				}
			}
		}
	}
}

func TestString(t *testing.T) {
	if Easy.String() != "EASY" || Normal.String() != "NORMAL" || Hard.String() != "HARD" {
		t.Errorf("names = %s/%s/%s, want EASY/NORMAL/HARD", Easy, Normal, Hard)
	}
	if Difficulty(0).String() != "NORMAL" {
		t.Errorf("Difficulty(0).String() = %s, want NORMAL", Difficulty(0))
	}
}
