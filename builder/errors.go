// SPDX-License-Identifier: MIT
// Package: genregraph/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach parameters via Wrapf, never in the sentinel text.

package builder

import "github.com/cockroachdb/errors"

// ErrTooFewArtists indicates an artist count below the constructor's minimum.
var ErrTooFewArtists = errors.New("builder: too few artists")

// ErrTooFewGenres indicates a genre count that cannot satisfy the request,
// e.g. RandomGenres asking for more genres per artist than exist.
var ErrTooFewGenres = errors.New("builder: too few genres")

// ErrUnknownScheme indicates an ID scheme name ParseIDScheme does not know.
var ErrUnknownScheme = errors.New("builder: unknown id scheme")

// ErrNeedRandSource indicates a stochastic constructor was called without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")
