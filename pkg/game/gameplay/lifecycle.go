package gameplay

import (
	"errors"

	"github.com/leonelquinteros/gotext"
	"github.com/rs/zerolog"

	"smartguess/pkg/engine/input"
	"smartguess/pkg/game/difficulty"
	"smartguess/pkg/game/menu"
	"smartguess/pkg/game/state"
)

// RoundPlayer plays one round against the shared session state
type RoundPlayer interface {
	Play(d difficulty.Difficulty, s *state.Session) (state.Summary, error)
}

// HighScoreLoader reads the persisted high score
type HighScoreLoader interface {
	Load() int
}

// Controller runs a session: rounds repeat until the player declines
// another one.
type Controller struct {
	console *menu.Console
	rounds  RoundPlayer
	scores  HighScoreLoader
	log     zerolog.Logger

	session *state.Session
}

// NewController creates a session controller
func NewController(console *menu.Console, rounds RoundPlayer, scores HighScoreLoader, log zerolog.Logger) *Controller {
	return &Controller{
		console: console,
		rounds:  rounds,
		scores:  scores,
		log:     log,
	}
}

// Session returns the state of the current (or last) run, nil before Run
func (c *Controller) Session() *state.Session {
	return c.session
}

// Run loads the high score once and plays rounds until the player stops.
// Running out of input ends the session like declining would.
func (c *Controller) Run() error {
	out := c.console.Out()
	c.session = state.NewSession(c.scores.Load())

	c.log.Debug().Int("high_score", c.session.HighScore).Msg("session started")

	out.Say("")
	out.Banner(gotext.Get("TITLE"),
		gotext.Get("TAGLINE"),
		out.FormatText(gotext.Get("HIGH_SCORE_LOADED"), c.session.HighScore),
	)

	err := c.loop()
	if errors.Is(err, input.ErrClosed) {
		c.log.Debug().Msg("input closed, ending session")
		err = nil
	}

	out.Say("")
	out.Say(gotext.Get("SESSION_SUMMARY"))
	out.Say(out.FormatText(gotext.Get("TOTAL_SCORE"), c.session.TotalScore))
	out.Say(out.FormatText(gotext.Get("HIGH_SCORE"), c.session.HighScore))
	out.Say("")
	out.Say(gotext.Get("GOODBYE"))

	c.log.Debug().Int("rounds", c.session.Rounds).Int("total", c.session.TotalScore).Msg("session ended")
	return err
}

func (c *Controller) loop() error {
	out := c.console.Out()
	for {
		out.Say("")
		d, err := c.chooseDifficulty()
		if err != nil {
			return err
		}

		if _, err := c.rounds.Play(d, c.session); err != nil {
			return err
		}

		out.Say("")
		again, err := c.console.Confirm(gotext.Get("PLAY_AGAIN"))
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

func (c *Controller) chooseDifficulty() (difficulty.Difficulty, error) {
	presets := difficulty.All()
	items := make([]menu.MenuItem, len(presets))
	for i, d := range presets {
		items[i] = d
	}

	idx, err := c.console.Choose(gotext.Get("DIFFICULTY_MENU"), items)
	if err != nil {
		return difficulty.Normal, err
	}
	return difficulty.FromChoice(idx + 1), nil
}
