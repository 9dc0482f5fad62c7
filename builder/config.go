// SPDX-License-Identifier: MIT
// Package: genregraph/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = Numbered("a")   ("a0","a1",...)
//   • genreFn  = Numbered("g")   ("g0","g1",...)
//   • rng      = nil                     (RandomGenres requires WithSeed)
//   • lengthFn = constant 1.0

package builder

import "math/rand"

const defaultLength = 1.0

type builderConfig struct {
	idFn     IDFn
	genreFn  IDFn
	rng      *rand.Rand
	lengthFn func(*rand.Rand) float64
}

// newBuilderConfig applies options in order; later options override earlier ones.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     Numbered("a"),
		genreFn:  Numbered("g"),
		lengthFn: func(*rand.Rand) float64 { return defaultLength },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func (c builderConfig) length() float64 {
	return c.lengthFn(c.rng)
}
