// SPDX-License-Identifier: MIT
// Package: genregraph/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//   • Constructors themselves never panic.
//   • Seeding is explicit via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// BuilderOption customizes a constructor by mutating builderConfig.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the artist ID generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithGenreScheme sets the genre label generator. Panics on nil.
func WithGenreScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithGenreScheme(nil)")
	}
	return func(c *builderConfig) { c.genreFn = fn }
}

// WithLetterIDs names artists "A", "B", … "Z", "AA", ….
func WithLetterIDs() BuilderOption {
	return WithIDScheme(Letters)
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new deterministic *rand.Rand from seed.
func WithSeed(seed int64) BuilderOption {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithConstantLength gives every artist the same length. Panics unless l > 0 and finite.
func WithConstantLength(l float64) BuilderOption {
	if !(l > 0) || math.IsInf(l, 0) {
		panic(fmt.Sprintf("builder: WithConstantLength(%v): length must be positive and finite", l))
	}
	return func(c *builderConfig) {
		c.lengthFn = func(*rand.Rand) float64 { return l }
	}
}

// WithUniformLength draws lengths from U[min, max). Requires an RNG at build
// time; without one the midpoint is used. Panics unless 0 < min <= max.
func WithUniformLength(min, max float64) BuilderOption {
	if !(min > 0) || max < min || math.IsInf(max, 0) {
		panic(fmt.Sprintf("builder: WithUniformLength(%v, %v): need 0 < min <= max", min, max))
	}
	return func(c *builderConfig) {
		c.lengthFn = func(r *rand.Rand) float64 {
			if r == nil {
				return (min + max) / 2
			}
			return min + r.Float64()*(max-min)
		}
	}
}
