package utils

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/engine"
	"github.com/sheikhrachel/go-life/model"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"dimension": 30, "speed": "medium", "seed": 7}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Dimension != 30 || cfg.Speed != "medium" || cfg.Seed != 7 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.RefreshRate != DefaultConfig().RefreshRate {
		t.Fatalf("unset field lost its default: %v", cfg.RefreshRate)
	}

	speed, err := cfg.Validate()
	if err != nil || speed != engine.SpeedMedium {
		t.Fatalf("Validate = %v, %v", speed, err)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if cfg != DefaultConfig() {
		t.Fatalf("missing file did not return defaults: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Dimension = 0
	if _, err := cfg.Validate(); !errors.Is(err, model.ErrInvalidDimension) {
		t.Fatalf("dimension 0: %v", err)
	}

	cfg = DefaultConfig()
	cfg.Speed = "warp"
	if _, err := cfg.Validate(); !errors.Is(err, engine.ErrInvalidSpeed) {
		t.Fatalf("speed warp: %v", err)
	}
}

func TestBindFlags(t *testing.T) {
	cfg := DefaultConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-dimension", "12", "-speed", "slow", "-seed", "3"}); err != nil {
		t.Fatal(err)
	}
	if cfg.Dimension != 12 || cfg.Speed != "slow" || cfg.Seed != 3 {
		t.Fatalf("flags not applied: %+v", cfg)
	}
}

func TestStatsStagnation(t *testing.T) {
	s := NewStats()
	now := s.StartTime

	// blinker: period two
	hashes := []string{"a", "b", "a", "b"}
	for i, h := range hashes {
		now = now.Add(100 * time.Millisecond)
		s.Update(i+1, 3, h, now)
	}
	if !s.IsStagnant() {
		t.Fatal("period two cycle not detected")
	}
	if s.GenerationsPerSecond <= 0 {
		t.Fatalf("generations per second = %v", s.GenerationsPerSecond)
	}

	// restart resets history
	s.Update(0, 10, "c", now.Add(time.Second))
	if s.IsStagnant() {
		t.Fatal("history survived a restart")
	}
}

func TestStatsIgnoresRepeatedFrames(t *testing.T) {
	s := NewStats()
	now := s.StartTime
	for _, h := range []string{"a", "b", "c"} {
		now = now.Add(time.Second)
		s.Update(s.TotalGenerations+1, 1, h, now)
	}
	// paused: same generation rendered again
	for range 4 {
		s.Update(3, 1, "c", now)
	}
	if s.IsStagnant() {
		t.Fatal("paused frames counted as stagnation")
	}
}

func TestStatsStillLife(t *testing.T) {
	s := NewStats()
	now := s.StartTime
	for gen := 1; gen <= 3; gen++ {
		now = now.Add(time.Second)
		s.Update(gen, 4, "block", now)
	}
	if !s.IsStagnant() {
		t.Fatal("unchanging board not detected")
	}
}

func TestStatsEditWhilePaused(t *testing.T) {
	s := NewStats()
	now := s.StartTime
	for i, h := range []string{"a", "b", "a", "b"} {
		now = now.Add(time.Second)
		s.Update(i+1, 3, h, now)
	}
	if !s.IsStagnant() {
		t.Fatal("period two cycle not detected")
	}

	// a cell toggled while paused changes the board at the same generation
	s.Update(4, 4, "c", now)
	if s.IsStagnant() {
		t.Fatal("edited board still reported stagnant")
	}
}

func TestStatsRepeatedRestarts(t *testing.T) {
	s := NewStats()
	now := s.StartTime
	for i, h := range []string{"a", "a", "a"} {
		now = now.Add(time.Second)
		s.Update(i+1, 3, h, now)
	}
	s.Update(0, 9, "x", now)
	s.Update(0, 9, "y", now)
	s.Update(0, 9, "z", now)
	if s.IsStagnant() {
		t.Fatal("fresh seeds at generation 0 reported stagnant")
	}
}
