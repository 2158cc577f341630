package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"smartguess/pkg/engine/input"
	"smartguess/pkg/engine/terminal"
	"smartguess/pkg/game/config"
	"smartguess/pkg/game/entities"
	"smartguess/pkg/game/gameplay"
	"smartguess/pkg/game/i18n"
	"smartguess/pkg/game/menu"
	"smartguess/pkg/game/renderer/tui"
	"smartguess/pkg/game/storage"
)

func main() {
	cfg, err := config.Load(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log := cfg.Logger(os.Stderr)

	if lang := i18n.Init(cfg.Language); lang != cfg.Language {
		log.Warn().Str("requested", cfg.Language).Str("using", lang).Msg("no catalogue for language")
	}

	out := tui.New(os.Stdout, tui.WithColor(!cfg.NoColor && terminal.IsTerminal(os.Stdout)))
	out.Init()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	log.Debug().Int64("seed", seed).Msg("random source ready")

	console := menu.NewConsole(input.NewReader(os.Stdin), out)
	scores := storage.NewHighScoreFile(cfg.HighScoreFile, log)

	engine := gameplay.NewEngine(gameplay.Deps{
		Console:   console,
		Rand:      rng,
		Bank:      entities.DefaultBank(rng),
		Scores:    scores,
		Summaries: storage.NewSummaryWriter(cfg.SummaryDir),
		Log:       log,
	})

	if err := gameplay.NewController(console, engine, scores, log).Run(); err != nil {
		log.Error().Err(err).Msg("session ended unexpectedly")
	}
}
