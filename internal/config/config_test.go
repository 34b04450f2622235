package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMatch3EmbeddedDefault(t *testing.T) {
	cfg, err := LoadMatch3("")
	if err != nil {
		t.Fatalf("LoadMatch3: %v", err)
	}
	if cfg.Board.Size != 8 || cfg.Board.TileKinds != 6 {
		t.Errorf("unexpected board defaults: %+v", cfg.Board)
	}
	if cfg.Scoring.MaxCombo != 8 {
		t.Errorf("MaxCombo = %d, want 8", cfg.Scoring.MaxCombo)
	}
	if cfg.LevelCount() == 0 {
		t.Error("default config should define levels")
	}
}

func TestLoadMatch3CustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("board:\n  size: 6\n  tile_kinds: 4\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMatch3(path)
	if err != nil {
		t.Fatalf("LoadMatch3: %v", err)
	}
	if cfg.Board.Size != 6 || cfg.Board.TileKinds != 4 {
		t.Errorf("custom board not applied: %+v", cfg.Board)
	}
	// Fields absent from the file fall back to defaults.
	if cfg.Scoring.MaxCombo != 8 {
		t.Errorf("MaxCombo = %d, want default 8", cfg.Scoring.MaxCombo)
	}
	if cfg.LevelCount() == 0 {
		t.Error("levels should fall back to defaults")
	}
}

func TestLoadMatch3MissingCustomPath(t *testing.T) {
	if _, err := LoadMatch3("/nonexistent/match3.yaml"); err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestLevelTableLookup(t *testing.T) {
	cfg := DefaultMatch3Config()
	first := cfg.Level(0)
	if first.GoalScore != cfg.Levels[0].GoalScore {
		t.Errorf("Level(0) goal = %d, want %d", first.GoalScore, cfg.Levels[0].GoalScore)
	}
	if cfg.Level(-1) != cfg.Level(0) {
		t.Error("negative index should clamp to the first level")
	}
}

func TestLevelExtrapolation(t *testing.T) {
	cfg := DefaultMatch3Config()
	last := cfg.Levels[len(cfg.Levels)-1]

	beyond := cfg.Level(cfg.LevelCount())
	if beyond.GoalScore <= last.GoalScore {
		t.Errorf("extrapolated goal %d should exceed last table goal %d",
			beyond.GoalScore, last.GoalScore)
	}
	if beyond.GoalScore%50 != 0 {
		t.Errorf("extrapolated goal %d should be a multiple of 50", beyond.GoalScore)
	}

	further := cfg.Level(cfg.LevelCount() + 5)
	if further.GoalScore <= beyond.GoalScore {
		t.Error("goals should keep growing past the table")
	}
	if further.MoveBudget < 10 {
		t.Errorf("move budget %d fell below the floor", further.MoveBudget)
	}
}
