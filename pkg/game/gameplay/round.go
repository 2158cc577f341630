package gameplay

import (
	"github.com/leonelquinteros/gotext"
	"github.com/rs/zerolog"

	"smartguess/pkg/game/difficulty"
	"smartguess/pkg/game/entities"
	"smartguess/pkg/game/menu"
	"smartguess/pkg/game/renderer"
	"smartguess/pkg/game/state"
	"smartguess/pkg/game/storage"
)

// Secret bounds and the magnitude hint's midpoint
const (
	SecretMin = 1
	SecretMax = 100
	Midpoint  = 50
)

// HighScoreStore persists the all-time high score
type HighScoreStore interface {
	Load() int
	Save(v int) error
	Path() string
}

// SummaryStore exports a round summary and returns where it went
type SummaryStore interface {
	Save(sum state.Summary) (string, error)
}

// Deps wires an Engine
type Deps struct {
	Console   *menu.Console
	Rand      entities.Source
	Bank      *entities.Bank
	Scores    HighScoreStore
	Summaries SummaryStore
	Log       zerolog.Logger
}

// Engine plays guessing rounds
type Engine struct {
	console   *menu.Console
	out       renderer.Renderer
	rng       entities.Source
	bank      *entities.Bank
	scores    HighScoreStore
	summaries SummaryStore
	log       zerolog.Logger
}

// NewEngine creates a round engine. A nil Bank means the bundled puzzles.
func NewEngine(d Deps) *Engine {
	bank := d.Bank
	if bank == nil {
		bank = entities.DefaultBank(d.Rand)
	}
	return &Engine{
		console:   d.Console,
		out:       d.Console.Out(),
		rng:       d.Rand,
		bank:      bank,
		scores:    d.Scores,
		summaries: d.Summaries,
		log:       d.Log,
	}
}

// Play runs one round at difficulty d, adding any winnings to s. The only
// error it returns comes from reading input; the partial summary is still
// returned with it.
func (e *Engine) Play(d difficulty.Difficulty, s *state.Session) (state.Summary, error) {
	r := state.NewRound(e.rng.Intn(SecretMax-SecretMin+1) + SecretMin)
	maxAttempts := d.MaxAttempts()
	s.Rounds++

	e.log.Debug().Str("difficulty", d.String()).Int("round", s.Rounds).Msg("round started")

	e.out.Say("")
	e.out.Say(e.out.FormatText(gotext.Get("ROUND_START"), SecretMin, SecretMax))
	e.out.Say(e.out.FormatText(gotext.Get("ROUND_DIFFICULTY"), d.String(), maxAttempts))

	for r.AttemptsUsed < maxAttempts {
		e.out.Say("")
		e.out.Prompt(e.out.FormatText(gotext.Get("ATTEMPT_PROMPT"), r.AttemptsUsed+1, maxAttempts))

		guess, err := e.console.ReadIntInRange(SecretMin, SecretMax)
		if err != nil {
			return r.Summary(s.TotalScore), err
		}
		r.RecordGuess(guess)

		feedback := Compare(guess, r.Secret)
		if feedback == Correct {
			e.win(d, r, s)
			return r.Summary(s.TotalScore), nil
		}
		e.out.Say(feedback.Message(r.Secret))

		if kind, ok := d.HintAt(r.AttemptsUsed); ok {
			if err := e.offerPuzzle(kind, r); err != nil {
				return r.Summary(s.TotalScore), err
			}
		}

		e.out.Say(ClosenessOf(guess, r.Secret).Message())
	}

	return e.lose(r, s)
}

// win scores the round and persists a beaten high score
func (e *Engine) win(d difficulty.Difficulty, r *state.Round, s *state.Session) {
	r.Won = true
	r.Score = d.Score(r.AttemptsUsed)
	newHigh := s.AddScore(r.Score)

	e.log.Debug().Int("attempts", r.AttemptsUsed).Int("score", r.Score).Int("total", s.TotalScore).Msg("round won")

	e.out.Say("")
	e.out.Say(Correct.Message(r.Secret))
	e.out.Say(e.out.FormatText(gotext.Get("ROUND_SCORE"), r.Score, s.TotalScore))

	if newHigh {
		e.saveHighScore(s.HighScore)
	}

	e.showSummary(r.Summary(s.TotalScore))
}

// lose reveals the secret and offers to export the summary
func (e *Engine) lose(r *state.Round, s *state.Session) (state.Summary, error) {
	e.log.Debug().Int("secret", r.Secret).Msg("round lost")

	e.out.Say("")
	e.out.Say(gotext.Get("GAME_OVER"))
	e.out.Say(e.out.FormatText(gotext.Get("SECRET_WAS"), r.Secret))

	sum := r.Summary(s.TotalScore)
	e.showSummary(sum)

	e.out.Say("")
	save, err := e.console.Confirm(gotext.Get("SAVE_SUMMARY_PROMPT"))
	if err != nil {
		return sum, err
	}
	if save {
		e.exportSummary(sum)
	}
	return sum, nil
}

// offerPuzzle presents an unused puzzle and reveals a hint of kind when it
// is solved. An exhausted bank skips the offer.
func (e *Engine) offerPuzzle(kind difficulty.HintKind, r *state.Round) error {
	idx, p, ok := e.bank.PickUnused(r.UsedPuzzles)
	if !ok {
		e.log.Debug().Int("attempt", r.AttemptsUsed).Msg("puzzle bank exhausted, no hint")
		return nil
	}
	r.UsedPuzzles.Put(idx)

	e.out.Say("")
	e.out.Say(gotext.Get("PUZZLE_UNLOCKED"))
	e.out.Say(e.out.FormatText(gotext.Get("PUZZLE_QUESTION"), p.Question))
	e.out.Prompt(gotext.Get("YOUR_ANSWER"))

	answer, err := e.console.ReadInt()
	if err != nil {
		return err
	}

	if !p.CheckAnswer(answer) {
		e.out.Say(e.out.FormatText(gotext.Get("PUZZLE_WRONG"), p.Answer))
		e.out.Say(gotext.Get("HINT_LOCKED"))
		return nil
	}

	e.out.Say(e.out.FormatText(gotext.Get("PUZZLE_CORRECT"), p.Explanation))
	e.out.Say(RevealHint(kind, r.Secret).Message())
	return nil
}

func (e *Engine) showSummary(sum state.Summary) {
	secret := e.out.FormatText(gotext.Get("SUMMARY_SECRET_REVEALED"), sum.Secret)
	if sum.Won {
		secret = e.out.FormatText(gotext.Get("SUMMARY_SECRET"), sum.Secret)
	}

	e.out.Say("")
	e.out.Banner(gotext.Get("SUMMARY_TITLE"),
		secret,
		e.out.FormatText(gotext.Get("SUMMARY_ATTEMPTS"), sum.AttemptsUsed),
		e.out.FormatText(gotext.Get("SUMMARY_GUESSES"), storage.FormatGuesses(sum.Guesses)),
		e.out.FormatText(gotext.Get("SUMMARY_SCORE"), sum.Score),
	)
}

// saveHighScore writes v; failures are reported and otherwise ignored, the
// in-memory high score stays raised.
func (e *Engine) saveHighScore(v int) {
	if err := e.scores.Save(v); err != nil {
		e.log.Warn().Err(err).Str("path", e.scores.Path()).Int("high_score", v).Msg("could not save high score")
		e.out.Say(e.out.FormatText(gotext.Get("HIGH_SCORE_SAVE_FAILED"), err.Error()))
		return
	}
	e.out.Say(e.out.FormatText(gotext.Get("NEW_HIGH_SCORE"), e.scores.Path()))
}

func (e *Engine) exportSummary(sum state.Summary) {
	path, err := e.summaries.Save(sum)
	if err != nil {
		e.log.Warn().Err(err).Msg("could not save round summary")
		e.out.Say(e.out.FormatText(gotext.Get("SUMMARY_SAVE_FAILED"), err.Error()))
		return
	}
	e.out.Say(e.out.FormatText(gotext.Get("SUMMARY_SAVED"), path))
}
