package main

import (
	"math/rand"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RNG is the sole source of non-determinism in the engine. Seeding it makes
// a whole run reproducible: shape sampling, UltraRandom restyling, and chaos
// background swaps all draw from this one stream.
type RNG struct {
	src *rand.Rand
}

// NewRNG returns a generator seeded unpredictably.
func NewRNG() *RNG {
	return &RNG{src: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeededRNG returns a generator with a deterministic stream.
func NewSeededRNG(seed int64) *RNG {
	return &RNG{src: rand.New(rand.NewSource(seed))}
}

// Reseed re-initializes the stream in place.
func (r *RNG) Reseed(seed int64) {
	r.src = rand.New(rand.NewSource(seed))
}

// UniformInt returns an integer in [lo, hi], inclusive on both ends.
// lo > hi is treated as an empty interval and returns lo.
func (r *RNG) UniformInt(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.src.Intn(hi-lo+1)
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.src.Float64()
}

// Bool is a fair coin flip.
func (r *RNG) Bool() bool {
	return r.src.Intn(2) == 0
}

// Color returns a uniformly random opaque color.
func (r *RNG) Color() colorful.Color {
	return colorful.Color{
		R: float64(r.UniformInt(0, 255)) / 255.0,
		G: float64(r.UniformInt(0, 255)) / 255.0,
		B: float64(r.UniformInt(0, 255)) / 255.0,
	}
}

// Choice picks one element uniformly. An empty set yields ErrEmptyDomain;
// callers that have a sensible default are expected to fall back themselves.
func Choice[T any](r *RNG, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmptyDomain
	}
	return items[r.src.Intn(len(items))], nil
}
