package entities

import (
	"github.com/zyedidia/generic/mapset"
)

// Source is the randomness a Bank draws from. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// defaultPuzzles is the bundled bank: sequences, arithmetic, algebra and
// general knowledge.
var defaultPuzzles = []Puzzle{
	NewPuzzle("2, 4, 8, 16... Next?", 32, "Powers of 2"),
	NewPuzzle("1, 4, 9, 16... Next?", 25, "Squares"),
	NewPuzzle("3, 6, 9, 12... Next?", 15, "Multiples of 3"),
	NewPuzzle("100, 90, 80, 70... Next?", 60, "Subtracting 10"),
	NewPuzzle("Fibonacci: 1, 1, 2, 3, 5, 8... Next?", 13, "Fibonacci"),
	NewPuzzle("Primes: 2, 3, 5, 7, 11... Next?", 13, "Primes"),
	NewPuzzle("If 5+3=28, then 9+1=?", 810, "Difference then sum"),
	NewPuzzle("Solve: 7*8 - 6", 50, "BODMAS"),
	NewPuzzle("Solve: 3x + 5 = 20", 5, "Algebra"),
	NewPuzzle("Half of 2 + 2 = ?", 3, "Trick"),
	NewPuzzle("How many sides in a hexagon?", 6, "Geometry"),
	NewPuzzle("Cube root of 125?", 5, "Math fact"),
	NewPuzzle("Square root of 144?", 12, "Math fact"),
	NewPuzzle("A=1, B=2... Z=?", 26, "Alphabet"),
	NewPuzzle("2^5 =", 32, "Exponents"),
	NewPuzzle("Hours in 2 days?", 48, "24×2"),
	NewPuzzle("Players in a cricket team?", 11, "General knowledge"),
	NewPuzzle("Binary 111 = ?", 7, "Binary"),
	NewPuzzle("Solve: 15 - X = 7", 8, "Basic equation"),
}

// AllPuzzles returns a copy of the bundled puzzles in bank order.
func AllPuzzles() []Puzzle {
	return append([]Puzzle(nil), defaultPuzzles...)
}

// Bank is a fixed, indexed collection of puzzles. Callers track which
// puzzles they have used by index.
type Bank struct {
	puzzles []Puzzle
	rng     Source
}

// NewBank creates a bank over puzzles, drawing with rng
func NewBank(puzzles []Puzzle, rng Source) *Bank {
	return &Bank{
		puzzles: append([]Puzzle(nil), puzzles...),
		rng:     rng,
	}
}

// DefaultBank creates a bank over the bundled puzzles
func DefaultBank(rng Source) *Bank {
	return NewBank(defaultPuzzles, rng)
}

// Size returns the number of puzzles in the bank
func (b *Bank) Size() int {
	return len(b.puzzles)
}

// Get returns the puzzle at index i
func (b *Bank) Get(i int) Puzzle {
	return b.puzzles[i]
}

// PickUnused selects uniformly among puzzles whose index is not in used.
// ok is false once every puzzle has been used; that is not an error.
func (b *Bank) PickUnused(used mapset.Set[int]) (index int, p Puzzle, ok bool) {
	available := make([]int, 0, len(b.puzzles))
	for i := range b.puzzles {
		if !used.Has(i) {
			available = append(available, i)
		}
	}

	if len(available) == 0 {
		return -1, Puzzle{}, false
	}

	index = available[b.rng.Intn(len(available))]
	return index, b.puzzles[index], true
}
