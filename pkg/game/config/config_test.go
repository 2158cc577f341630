package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// clearEnv blanks every variable Load consults.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"HIGHSCORE_FILE", "SUMMARY_DIR", "LOG_LEVEL", "LANG_CODE", "SEED", "NO_COLOR"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("test", nil, filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.HighScoreFile != "highscore.txt" {
		t.Errorf("HighScoreFile = %q, want highscore.txt", cfg.HighScoreFile)
	}
	if cfg.LogLevel != "warn" || cfg.Seed != 0 || cfg.NoColor {
		t.Errorf("cfg = %+v, want warn level, seed 0, colour on", cfg)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	path := writeEnv(t, "HIGHSCORE_FILE=scores/best.txt\nSUMMARY_DIR=out\nSEED=99\nNO_COLOR=true\n")
	cfg, err := Load("test", nil, path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.HighScoreFile != "scores/best.txt" || cfg.SummaryDir != "out" || cfg.Seed != 99 || !cfg.NoColor {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoad_PrecedenceFlagsThenEnvThenFile(t *testing.T) {
	clearEnv(t)
	path := writeEnv(t, "HIGHSCORE_FILE=file.txt\nLOG_LEVEL=error\n")
	t.Setenv("HIGHSCORE_FILE", "env.txt")

	cfg, err := Load("test", []string{"-log-level", "debug"}, path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.HighScoreFile != "env.txt" {
		t.Errorf("HighScoreFile = %q, want env.txt", cfg.HighScoreFile)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoad_BadFlag(t *testing.T) {
	if _, err := Load("test", []string{"-nope"}, filepath.Join(t.TempDir(), "x")); err == nil {
		t.Error("Load(-nope) error = nil, want error")
	}
}

func TestLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	log := (&Config{LogLevel: "bogus", NoColor: true}).Logger(&buf)
	if log.GetLevel() != zerolog.WarnLevel {
		t.Errorf("level = %v, want warn", log.GetLevel())
	}

	log.Info().Msg("hidden")
	log.Warn().Str("path", "x").Msg("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("log output = %q", out)
	}
}
