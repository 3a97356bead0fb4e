package app

import (
	"errors"
	"flag"
	"testing"
	"time"

	"lifecanvas/pkg/life"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)

	args := []string{"-width", "40", "-height", "30", "-alive", "0.5", "-interval", "250ms", "-seed", "9", "-pattern", "glider", "-renderer", "vector"}
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 40 || cfg.Height != 30 || cfg.AliveProbability != 0.5 {
		t.Fatalf("unexpected dimensions/probability: %+v", cfg)
	}
	if cfg.Interval != 250*time.Millisecond || cfg.Seed != 9 || cfg.Pattern != "glider" || cfg.Renderer != RendererVector {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	if cfg.Width != 100 || cfg.Height != 50 || cfg.AliveProbability != 0.2 || cfg.Interval != 100*time.Millisecond {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(c *Config){
		"zero width":   func(c *Config) { c.Width = 0 },
		"probability":  func(c *Config) { c.AliveProbability = 1.5 },
		"interval":     func(c *Config) { c.Interval = -time.Second },
		"pattern":      func(c *Config) { c.Pattern = "spaceship-factory" },
		"renderer":     func(c *Config) { c.Renderer = "opengl" },
		"height":       func(c *Config) { c.Height = -3 },
		"negative odd": func(c *Config) { c.AliveProbability = -0.01 },
	}
	for name, mutate := range cases {
		cfg := NewConfig()
		mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}

	cfg := NewConfig()
	cfg.Width = 0
	if err := cfg.Validate(); !errors.Is(err, life.ErrInvalidDimension) {
		t.Fatalf("width error must wrap ErrInvalidDimension, got %v", err)
	}
}

func TestEntropyHonoursSeed(t *testing.T) {
	cfg := NewConfig()
	cfg.Seed = 77
	a, b := cfg.Entropy(), cfg.Entropy()
	for i := 0; i < 5; i++ {
		if a.Float64() != b.Float64() {
			t.Fatal("fixed seed must yield identical streams")
		}
	}
}
