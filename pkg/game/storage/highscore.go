// Package storage persists the all-time high score and exports round
// summaries as plain text files. Every access opens, uses and closes its
// file; no handle outlives a call.
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultHighScoreFile is the high score path relative to the working directory.
const DefaultHighScoreFile = "highscore.txt"

// HighScoreFile is a text file whose only content is one integer.
type HighScoreFile struct {
	path string
	log  zerolog.Logger
}

// NewHighScoreFile creates a high score file at path
func NewHighScoreFile(path string, log zerolog.Logger) *HighScoreFile {
	if path == "" {
		path = DefaultHighScoreFile
	}
	return &HighScoreFile{path: path, log: log}
}

// Path returns the file location
func (f *HighScoreFile) Path() string {
	return f.path
}

// Load returns the stored high score. An absent, empty, unparsable or
// negative value reads as 0.
func (f *HighScoreFile) Load() int {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			f.log.Debug().Err(err).Str("path", f.path).Msg("high score unreadable, starting from 0")
		}
		return 0
	}

	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return 0
	}

	v, err := strconv.Atoi(fields[0])
	if err != nil || v < 0 {
		f.log.Debug().Str("path", f.path).Str("content", fields[0]).Msg("high score malformed, starting from 0")
		return 0
	}

	return v
}

// Save overwrites the file with v
func (f *HighScoreFile) Save(v int) error {
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create high score directory: %w", err)
		}
	}
	if err := os.WriteFile(f.path, []byte(strconv.Itoa(v)+"\n"), 0o644); err != nil {
		return fmt.Errorf("write high score: %w", err)
	}
	return nil
}
