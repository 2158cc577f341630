package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"smartguess/pkg/game/state"
)

// SummaryWriter exports round summaries into a directory, one
// timestamp-named text file per round.
type SummaryWriter struct {
	dir string
	now func() time.Time
}

// NewSummaryWriter creates a writer placing files in dir ("" means the
// working directory)
func NewSummaryWriter(dir string) *SummaryWriter {
	return &SummaryWriter{dir: dir, now: time.Now}
}

// filename returns round_summary_<unix millis>.txt inside the writer's directory
func (w *SummaryWriter) filename() string {
	name := fmt.Sprintf("round_summary_%d.txt", w.now().UnixMilli())
	if w.dir == "" {
		return name
	}
	return filepath.Join(w.dir, name)
}

// Save writes sum and returns the path written.
func (w *SummaryWriter) Save(sum state.Summary) (string, error) {
	if w.dir != "" {
		if err := os.MkdirAll(w.dir, 0o755); err != nil {
			return "", fmt.Errorf("create summary directory: %w", err)
		}
	}

	var b strings.Builder
	b.WriteString("Smart Number Guessing - Round Summary\n")
	fmt.Fprintf(&b, "Secret: %d\n", sum.Secret)
	fmt.Fprintf(&b, "Attempts used: %d\n", sum.AttemptsUsed)
	fmt.Fprintf(&b, "Guesses: %s\n", FormatGuesses(sum.Guesses))
	fmt.Fprintf(&b, "Round score: %d\n", sum.Score)
	fmt.Fprintf(&b, "Total score so far: %d\n", sum.TotalScore)

	path := w.filename()
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("write summary: %w", err)
	}
	return path, nil
}

// FormatGuesses renders guesses in order, e.g. [50, 25, 40].
func FormatGuesses(guesses []int) string {
	parts := make([]string, len(guesses))
	for i, g := range guesses {
		parts[i] = strconv.Itoa(g)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
