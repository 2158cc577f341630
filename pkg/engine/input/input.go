package input

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
)

// ErrClosed is returned once stdin has no more tokens to give.
var ErrClosed = errors.New("input closed")

// Rejection describes why a token was not accepted by a validated read.
type Rejection int

const (
	NotANumber Rejection = iota
	OutOfRange
)

// Reader splits an input stream into whitespace separated tokens, the way a
// console scanner does: "50 25" on one line is two guesses.
type Reader struct {
	scanner *bufio.Scanner
}

// NewReader creates a token reader over r
func NewReader(r io.Reader) *Reader {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	return &Reader{scanner: s}
}

// Next returns the next token.
func (r *Reader) Next() (string, error) {
	if r.scanner.Scan() {
		return r.scanner.Text(), nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", ErrClosed
}

// ReadIntWhere reads tokens until one parses as an integer satisfying valid.
// reject is called for every token that is turned down; it typically
// re-prompts the player.
func (r *Reader) ReadIntWhere(valid func(int) bool, reject func(Rejection)) (int, error) {
	for {
		tok, err := r.Next()
		if err != nil {
			return 0, err
		}

		v, err := strconv.Atoi(tok)
		if err != nil {
			if reject != nil {
				reject(NotANumber)
			}
			continue
		}

		if valid != nil && !valid(v) {
			if reject != nil {
				reject(OutOfRange)
			}
			continue
		}

		return v, nil
	}
}

// InRange returns a predicate accepting values in [lo, hi].
func InRange(lo, hi int) func(int) bool {
	return func(v int) bool {
		return v >= lo && v <= hi
	}
}

// ReadIntent reads one token and maps it to an Intent.
func (r *Reader) ReadIntent() (Intent, error) {
	tok, err := r.Next()
	if err != nil {
		return Intent{Action: ActionNone}, err
	}
	return MapToIntent(strings.ToLower(strings.TrimSpace(tok))), nil
}
