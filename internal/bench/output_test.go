package bench

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gravitas-015/tilecore/internal/config"
)

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("expected disabled output to succeed, got %v", err)
	}
	if om != nil {
		t.Fatalf("expected nil manager for empty dir")
	}
	if err := om.WriteResult(ResultCSV{}); err != nil {
		t.Fatalf("expected nil manager writes to no-op, got %v", err)
	}
	if err := om.WriteRound(RoundCSV{}); err != nil {
		t.Fatalf("expected nil manager writes to no-op, got %v", err)
	}
	if om.Dir() != "" {
		t.Fatalf("expected empty dir for nil manager, got %q", om.Dir())
	}
	if err := om.Close(); err != nil {
		t.Fatalf("expected nil manager close to no-op, got %v", err)
	}
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("failed to create output manager: %v", err)
	}

	if err := om.WriteRound(RoundCSV{Round: 0, TotalUS: 10}); err != nil {
		t.Fatalf("failed to write round: %v", err)
	}
	if err := om.WriteRound(RoundCSV{Round: 1, TotalUS: 12}); err != nil {
		t.Fatalf("failed to write round: %v", err)
	}
	if err := om.WriteResult(ResultCSV{Scenario: "skirmish", Rounds: 2}); err != nil {
		t.Fatalf("failed to write result: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("failed to close output manager: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "rounds.csv"))
	if err != nil {
		t.Fatalf("failed to read rounds.csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus two rows in rounds.csv, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "round,") {
		t.Fatalf("expected rounds.csv header to start with round, got %q", lines[0])
	}

	data, err = os.ReadFile(filepath.Join(dir, "results.csv"))
	if err != nil {
		t.Fatalf("failed to read results.csv: %v", err)
	}
	lines = strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one row in results.csv, got %d lines", len(lines))
	}
	if !strings.Contains(lines[1], "skirmish") {
		t.Fatalf("expected result row to name the scenario, got %q", lines[1])
	}
}

func TestOutputManagerWriteConfig(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("failed to create output manager: %v", err)
	}
	defer om.Close()

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("failed to load defaults: %v", err)
	}
	cfg.Map.Width = 31
	if err := om.WriteConfig(cfg); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	reloaded, err := config.Load(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatalf("failed to reload written config: %v", err)
	}
	if reloaded.Map.Width != 31 {
		t.Fatalf("expected written config to round trip, got width %d", reloaded.Map.Width)
	}
}
