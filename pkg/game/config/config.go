// Package config resolves runtime settings from command-line flags, the
// process environment and an optional .env file, in that order of
// precedence.
package config

import (
	"flag"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"smartguess/pkg/game/i18n"
	"smartguess/pkg/game/storage"
)

// Config holds the resolved settings
type Config struct {
	HighScoreFile string
	SummaryDir    string
	LogLevel      string
	Language      string
	Seed          int64 // 0 means seed from the clock
	NoColor       bool
}

// env looks keys up in the process environment first, then in values
// read from .env files.
type env map[string]string

func (e env) get(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	if v := e[key]; v != "" {
		return v
	}
	return def
}

func (e env) getBool(key string, def bool) bool {
	b, err := strconv.ParseBool(e.get(key, strconv.FormatBool(def)))
	if err != nil {
		return def
	}
	return b
}

func (e env) getInt64(key string, def int64) int64 {
	v, err := strconv.ParseInt(e.get(key, strconv.FormatInt(def, 10)), 10, 64)
	if err != nil {
		return def
	}
	return v
}

// Load parses args (without the program name). envFiles default to ".env";
// missing files are ignored.
func Load(name string, args []string, envFiles ...string) (*Config, error) {
	values, err := godotenv.Read(envFiles...)
	if err != nil {
		values = map[string]string{}
	}
	e := env(values)

	cfg := &Config{}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&cfg.HighScoreFile, "highscore", e.get("HIGHSCORE_FILE", storage.DefaultHighScoreFile), "path of the high score file")
	fs.StringVar(&cfg.SummaryDir, "summary-dir", e.get("SUMMARY_DIR", ""), "directory for exported round summaries (default: working directory)")
	fs.StringVar(&cfg.LogLevel, "log-level", e.get("LOG_LEVEL", "warn"), "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.Language, "lang", e.get("LANG_CODE", i18n.DefaultLanguage), "message catalogue language")
	fs.Int64Var(&cfg.Seed, "seed", e.getInt64("SEED", 0), "random seed for reproducible rounds (0 = clock)")
	fs.BoolVar(&cfg.NoColor, "no-color", e.getBool("NO_COLOR", false), "disable coloured output")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Logger builds the process logger writing human-readable lines to w.
// An unknown level falls back to warn.
func (c *Config) Logger(w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		lvl = zerolog.WarnLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: c.NoColor}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
