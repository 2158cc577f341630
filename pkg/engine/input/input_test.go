package input

import (
	"errors"
	"strings"
	"testing"
)

func TestReadIntWhere_SkipsInvalidTokens(t *testing.T) {
	r := NewReader(strings.NewReader("abc 500 -3\n42\n"))

	var rejected []Rejection
	v, err := r.ReadIntWhere(InRange(1, 100), func(rej Rejection) {
		rejected = append(rejected, rej)
	})
	if err != nil {
		t.Fatalf("ReadIntWhere() error = %v", err)
	}
	if v != 42 {
		t.Errorf("ReadIntWhere() = %d, want 42", v)
	}
	want := []Rejection{NotANumber, OutOfRange, OutOfRange}
	if len(rejected) != len(want) {
		t.Fatalf("rejections = %v, want %v", rejected, want)
	}
	for i := range want {
		if rejected[i] != want[i] {
			t.Errorf("rejections[%d] = %v, want %v", i, rejected[i], want[i])
		}
	}
}

func TestReadIntWhere_TokensOnOneLine(t *testing.T) {
	r := NewReader(strings.NewReader("50 25   40\n"))
	for _, want := range []int{50, 25, 40} {
		v, err := r.ReadIntWhere(nil, nil)
		if err != nil {
			t.Fatalf("ReadIntWhere() error = %v", err)
		}
		if v != want {
			t.Errorf("ReadIntWhere() = %d, want %d", v, want)
		}
	}
}

func TestReadIntWhere_ClosedInput(t *testing.T) {
	r := NewReader(strings.NewReader("abc"))
	_, err := r.ReadIntWhere(InRange(1, 3), nil)
	if !errors.Is(err, ErrClosed) {
		t.Errorf("ReadIntWhere() on exhausted input error = %v, want ErrClosed", err)
	}
}

func TestInRange(t *testing.T) {
	valid := InRange(1, 100)
	cases := map[int]bool{0: false, 1: true, 50: true, 100: true, 101: false}
	for v, want := range cases {
		if got := valid(v); got != want {
			t.Errorf("InRange(1, 100)(%d) = %v, want %v", v, got, want)
		}
	}
}

func TestReadIntent(t *testing.T) {
	tests := []struct {
		in        string
		confirmed bool
	}{
		{"y", true},
		{"YES", true},
		{"Yes", true},
		{"n", false},
		{"no", false},
		{"maybe", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			intent, err := NewReader(strings.NewReader(tt.in)).ReadIntent()
			if err != nil {
				t.Fatalf("ReadIntent() error = %v", err)
			}
			if intent.Confirmed() != tt.confirmed {
				t.Errorf("ReadIntent(%q).Confirmed() = %v, want %v", tt.in, intent.Confirmed(), tt.confirmed)
			}
		})
	}
}
