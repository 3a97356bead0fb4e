package app

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"time"

	"lifecanvas/pkg/core"
	"lifecanvas/pkg/life"
)

// Renderer names accepted by Config.Renderer.
const (
	RendererPixels = "pixels"
	RendererVector = "vector"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width            int
	Height           int
	AliveProbability float64
	Interval         time.Duration
	Seed             int64
	Pattern          string
	Renderer         string
	MetricsAddr      string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:            100,
		Height:           50,
		AliveProbability: 0.2,
		Interval:         100 * time.Millisecond,
		Renderer:         RendererPixels,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.Float64Var(&c.AliveProbability, "alive", c.AliveProbability, "probability that a cell starts alive")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "delay between generations while running")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random fill (0 uses the wall clock)")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "template stamped at the centre after seeding")
	fs.StringVar(&c.Renderer, "renderer", c.Renderer, "drawing backend: pixels or vector")
	fs.StringVar(&c.MetricsAddr, "metrics", c.MetricsAddr, "listen address for prometheus metrics (empty disables)")
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: %w: %dx%d", life.ErrInvalidDimension, c.Width, c.Height)
	}
	p := c.AliveProbability
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("config: %w: %v", life.ErrInvalidProbability, p)
	}
	if c.Interval < 0 {
		return fmt.Errorf("config: negative interval %v", c.Interval)
	}
	if c.Pattern != "" {
		if _, ok := life.LookupPattern(c.Pattern); !ok {
			return fmt.Errorf("config: unknown pattern %q", c.Pattern)
		}
	}
	switch c.Renderer {
	case RendererPixels, RendererVector:
	default:
		return errors.New("config: renderer must be " + RendererPixels + " or " + RendererVector)
	}
	return nil
}

// Entropy returns the random source described by Seed.
func (c *Config) Entropy() core.Entropy {
	if c.Seed == 0 {
		return core.NewRNG(core.TimeSeed())
	}
	return core.NewRNG(c.Seed)
}
