// SPDX-License-Identifier: MIT
// Package: degrees/builder
//
// options.go — functional options and the resolved builderConfig.
//
// Contract:
//   • Option constructors PANIC on meaningless inputs (nil functions).
//   • Determinism is explicit: randomness only through WithSeed / WithRand.
//   • Later options override earlier ones.

package builder

import (
	"fmt"
	"math/rand"
	"strconv"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// builderConfig is passed by value to constructors.
type builderConfig struct {
	// personID maps a person index to its ID.
	personID func(int) string
	// movieID maps (constructor tag, movie index) to a movie ID.
	movieID func(tag string, idx int) string
	// name maps a person index to a display name.
	name func(int) string
	// rng drives stochastic constructors; nil means none.
	rng *rand.Rand
	// firstYear is the year of movie 0; later movies count up from it.
	firstYear int
}

const defaultFirstYear = 1950

// DefaultPersonID renders index i as "p<i>".
func DefaultPersonID(i int) string { return "p" + strconv.Itoa(i) }

// DefaultMovieID renders (tag, i) as "<tag><i>", e.g. ("c", 3) → "c3".
func DefaultMovieID(tag string, i int) string { return tag + strconv.Itoa(i) }

// DefaultName renders index i as "Person <i>".
func DefaultName(i int) string { return fmt.Sprintf("Person %d", i) }

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		personID:  DefaultPersonID,
		movieID:   DefaultMovieID,
		name:      DefaultName,
		firstYear: defaultFirstYear,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithPersonIDs sets the person ID scheme. Panics on nil.
func WithPersonIDs(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithPersonIDs(nil)")
	}
	return func(c *builderConfig) { c.personID = fn }
}

// WithMovieIDs sets the movie ID scheme. Panics on nil.
func WithMovieIDs(fn func(tag string, idx int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithMovieIDs(nil)")
	}
	return func(c *builderConfig) { c.movieID = fn }
}

// WithNames sets the display-name scheme. Returning the same name for
// several indices produces ambiguous names. Panics on nil.
func WithNames(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithNames(nil)")
	}
	return func(c *builderConfig) { c.name = fn }
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed installs a new RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithFirstYear sets the release year of each constructor's first movie.
func WithFirstYear(year int) BuilderOption {
	return func(c *builderConfig) { c.firstYear = year }
}
