package entities

// Puzzle is a logic question with an integer answer. Puzzles are immutable
// once the bank is built.
type Puzzle struct {
	Question    string
	Answer      int
	Explanation string // Shown when the player answers correctly
}

// NewPuzzle creates a new puzzle
func NewPuzzle(question string, answer int, explanation string) Puzzle {
	return Puzzle{
		Question:    question,
		Answer:      answer,
		Explanation: explanation,
	}
}

// CheckAnswer checks if the provided answer matches the solution
func (p Puzzle) CheckAnswer(answer int) bool {
	return answer == p.Answer
}
