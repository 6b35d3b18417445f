package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// execute runs the root command with isolated flags and no user config.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Chdir(tmp)

	flagConfig, flagDifficulty, flagSeed = "", "", 0
	flagLogFile, flagLogLevel = "", "warn"

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestBoardCommand(t *testing.T) {
	out, err := execute(t, "board")
	if err != nil {
		t.Fatalf("board failed: %v", err)
	}

	lines := strings.Split(out, "\n")
	if lines[0] != "Score: 0 Lives: 3" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[7] != "#.###.#C###.#.#" {
		t.Errorf("player row = %q", lines[7])
	}
	for _, want := range []string{"Legend:", "pickup (10 points)", "adversary (200 points"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestConfigCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"defaults", []string{"config"}, []string{"tick_ms: 200", "lives: 3", "duration_ticks: 20"}},
		{"hard", []string{"config", "--difficulty", "hard"}, []string{"tick_ms: 150", "lives: 2", "duration_ticks: 12"}},
		{"easy", []string{"config", "--difficulty", "easy"}, []string{"tick_ms: 250", "lives: 5", "duration_ticks: 30"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := execute(t, tc.args...)
			if err != nil {
				t.Fatalf("config failed: %v", err)
			}
			for _, w := range tc.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte("scoring:\n  pickup: 25\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "board", "--config", path)
	if err != nil {
		t.Fatalf("board failed: %v", err)
	}
	if !strings.Contains(out, "pickup (25 points)") {
		t.Errorf("custom config not applied:\n%s", out)
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown difficulty", []string{"config", "--difficulty", "brutal"}},
		{"missing config file", []string{"board", "--config", "/nonexistent/rules.yaml"}},
		{"unexpected argument", []string{"board", "extra"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := execute(t, tc.args...); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	flagLogLevel = "verbose"
	if _, _, err := newLogger(); err == nil {
		t.Error("expected an error for an unknown level")
	}

	path := filepath.Join(t.TempDir(), "chase.log")
	flagLogFile, flagLogLevel = path, "debug"
	t.Cleanup(func() { flagLogFile, flagLogLevel = "", "warn" })

	logger, closer, err := newLogger()
	if err != nil {
		t.Fatalf("newLogger failed: %v", err)
	}
	logger.Debug("pickup eaten", "score", 10)
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "pickup eaten") {
		t.Errorf("log file missing entry: %q", data)
	}
}
