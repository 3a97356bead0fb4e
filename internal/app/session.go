package app

import (
	"errors"
	"math"
	"time"

	icore "lifecanvas/internal/core"
	"lifecanvas/internal/render"
	"lifecanvas/pkg/core"
	"lifecanvas/pkg/life"
)

// Observer is notified of state changes, typically to export metrics.
type Observer interface {
	ObserveTick(population int, d time.Duration)
	ObserveToggle(population int)
	ObserveReset(population int)
}

type nopObserver struct{}

func (nopObserver) ObserveTick(int, time.Duration) {}
func (nopObserver) ObserveToggle(int)              {}
func (nopObserver) ObserveReset(int)               {}

// Session drives a universe for an interactive frontend: run/pause state,
// paced ticking and click handling. Like the universe it wraps, it must be
// used from a single goroutine.
type Session struct {
	cfg      Config
	universe *life.Universe
	stepper  *icore.FixedStep
	src      core.Entropy
	running  bool
	obs      Observer
}

// Keys of the runtime parameters exposed by ParameterControls.
const (
	ParamWidth    = "width"
	ParamHeight   = "height"
	ParamAlive    = "alive"
	ParamInterval = "interval"
)

const (
	maxDimension = 500
	minInterval  = 10 * time.Millisecond
	maxInterval  = 5 * time.Second
)

// NewSession validates cfg and seeds a universe from src. A nil src uses
// cfg.Entropy(); a nil obs discards notifications.
func NewSession(cfg Config, src core.Entropy, obs Observer) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		src = cfg.Entropy()
	}
	if obs == nil {
		obs = nopObserver{}
	}
	u, err := life.New(cfg.Width, cfg.Height, cfg.AliveProbability, src)
	if err != nil {
		return nil, err
	}
	s := &Session{cfg: cfg, universe: u, stepper: icore.NewFixedStep(cfg.Interval), src: src, obs: obs}
	s.stampPattern()
	return s, nil
}

func (s *Session) stampPattern() {
	p, ok := life.LookupPattern(s.cfg.Pattern)
	if !ok {
		return
	}
	rows, cols := p.Bounds()
	size := s.universe.Size()
	s.universe.Stamp(p, (size.H-rows)/2, (size.W-cols)/2)
}

// Universe exposes the simulated universe.
func (s *Session) Universe() *life.Universe { return s.universe }

// Config returns the current configuration, including runtime parameter
// changes.
func (s *Session) Config() Config { return s.cfg }

// Running reports whether generations advance on Advance.
func (s *Session) Running() bool { return s.running }

// SetRunning starts or pauses the simulation. Starting ticks on the next poll.
func (s *Session) SetRunning(running bool) {
	if running && !s.running {
		s.stepper.Restart()
	}
	s.running = running
}

// ToggleRunning flips between running and paused.
func (s *Session) ToggleRunning() { s.SetRunning(!s.running) }

// Step advances exactly one generation regardless of the run state.
func (s *Session) Step() {
	start := time.Now()
	s.universe.Tick()
	s.obs.ObserveTick(s.universe.Grid().Population(), time.Since(start))
}

// Advance ticks once if the session is running and the interval has elapsed
// at now. It reports whether a generation was computed.
func (s *Session) Advance(now time.Time) bool {
	if !s.running || !s.stepper.ShouldStep(now) {
		return false
	}
	s.Step()
	return true
}

// Toggle flips the cell at column x, row y.
func (s *Session) Toggle(x, y int) error {
	if err := s.universe.Toggle(x, y); err != nil {
		return err
	}
	s.obs.ObserveToggle(s.universe.Grid().Population())
	return nil
}

// Click toggles the cell under the pixel position (px, py). Clicks outside
// the canvas are ignored.
func (s *Session) Click(px, py float64) error {
	x, y := render.CellAt(px, py, s.universe.CellSize())
	if err := s.Toggle(x, y); err != nil && !errors.Is(err, life.ErrOutOfBounds) {
		return err
	}
	return nil
}

// Reset pauses the simulation and reseeds the universe randomly.
func (s *Session) Reset() error {
	s.running = false
	if err := s.universe.Reseed(s.cfg.AliveProbability); err != nil {
		return err
	}
	s.stampPattern()
	s.obs.ObserveReset(s.universe.Grid().Population())
	return nil
}

// Clear kills every cell without changing the run state.
func (s *Session) Clear() {
	s.universe.Clear()
	s.obs.ObserveReset(0)
}

// ParameterControls lists the settings that can be changed while the session
// is live, with their current values.
func (s *Session) ParameterControls() []icore.ParameterControl {
	return []icore.ParameterControl{
		{Key: ParamWidth, Label: "Width", Type: icore.ParamTypeInt, Value: float64(s.cfg.Width),
			Step: 10, Min: 1, Max: maxDimension, HasMin: true, HasMax: true},
		{Key: ParamHeight, Label: "Height", Type: icore.ParamTypeInt, Value: float64(s.cfg.Height),
			Step: 10, Min: 1, Max: maxDimension, HasMin: true, HasMax: true},
		{Key: ParamAlive, Label: "Alive odds", Type: icore.ParamTypeFloat, Value: s.cfg.AliveProbability,
			Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: ParamInterval, Label: "Interval (ms)", Type: icore.ParamTypeFloat, Value: durationMillis(s.cfg.Interval),
			Step: 10, Min: durationMillis(minInterval), Max: durationMillis(maxInterval), HasMin: true, HasMax: true},
	}
}

// SetIntParameter changes the grid width or height. The universe is rebuilt
// from the session's entropy source and the session pauses.
func (s *Session) SetIntParameter(key string, value int) bool {
	if value <= 0 || value > maxDimension {
		return false
	}
	next := s.cfg
	switch key {
	case ParamWidth:
		next.Width = value
	case ParamHeight:
		next.Height = value
	default:
		return false
	}
	return s.rebuild(next)
}

// SetFloatParameter changes the alive probability, which rebuilds the universe
// like SetIntParameter, or the tick interval in milliseconds, which only
// affects pacing.
func (s *Session) SetFloatParameter(key string, value float64) bool {
	switch key {
	case ParamAlive:
		if math.IsNaN(value) || value < 0 || value > 1 {
			return false
		}
		next := s.cfg
		next.AliveProbability = value
		return s.rebuild(next)
	case ParamInterval:
		d := time.Duration(value * float64(time.Millisecond))
		if math.IsNaN(value) || d < minInterval || d > maxInterval {
			return false
		}
		s.cfg.Interval = d
		s.stepper.SetInterval(d)
		return true
	}
	return false
}

func (s *Session) rebuild(cfg Config) bool {
	u, err := life.New(cfg.Width, cfg.Height, cfg.AliveProbability, s.src)
	if err != nil {
		return false
	}
	s.cfg = cfg
	s.universe = u
	s.running = false
	s.stampPattern()
	s.obs.ObserveReset(s.universe.Grid().Population())
	return true
}

func durationMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
