package core

import (
	"math/rand/v2"
	"time"
)

// Entropy supplies uniform floats in [0, 1) for seeding a universe.
type Entropy interface {
	Float64() float64
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// TimeSeed returns the current wall-clock time in milliseconds.
func TimeSeed() int64 { return time.Now().UnixMilli() }

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// Sequence replays a fixed list of values, cycling when exhausted. It is meant
// for tests that need to pin down exactly which cells come up alive.
type Sequence struct {
	values []float64
	next   int
}

// NewSequence returns an Entropy that yields values in order.
func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: values}
}

// Float64 returns the next value of the sequence, or 0 for an empty one.
func (s *Sequence) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}
