// SPDX-License-Identifier: MIT
// Package: genregraph/builder
//
// topologies.go — record constructors.
//
// Contract:
//   • Artists are emitted in ascending index order with IDs from cfg.idFn.
//   • Genre labels come from cfg.genreFn; each record's genres are distinct.
//   • Lengths come from cfg.lengthFn and are always > 0.
//
// Resulting graphs under core.SharedCount:
//   • Path(n):        a chain a0–a1–…–a(n-1), unit weights.
//   • Star(n):        hub a0 linked to every leaf; leaves unlinked.
//   • Clique(n):      complete graph, unit weights.
//   • Islands(k, s):  k disjoint complete graphs of s artists.

package builder

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/genregraph/core"
)

const (
	minPathArtists = 2
	minStarArtists = 2
)

// Path builds n artists where artist i holds genres i and i+1.
func Path(n int, opts ...BuilderOption) ([]core.Record, error) {
	if n < minPathArtists {
		return nil, errors.Wrapf(ErrTooFewArtists, "Path: n=%d < %d", n, minPathArtists)
	}
	cfg := newBuilderConfig(opts...)

	out := make([]core.Record, n)
	for i := range out {
		out[i] = cfg.record(i, cfg.genreFn(i), cfg.genreFn(i+1))
	}

	return out, nil
}

// Star builds a hub (index 0) holding genres 1..n-1 and n-1 leaves,
// leaf i holding genre i only.
func Star(n int, opts ...BuilderOption) ([]core.Record, error) {
	if n < minStarArtists {
		return nil, errors.Wrapf(ErrTooFewArtists, "Star: n=%d < %d", n, minStarArtists)
	}
	cfg := newBuilderConfig(opts...)

	hubGenres := make([]string, 0, n-1)
	for i := 1; i < n; i++ {
		hubGenres = append(hubGenres, cfg.genreFn(i))
	}
	out := make([]core.Record, n)
	out[0] = cfg.record(0, hubGenres...)
	for i := 1; i < n; i++ {
		out[i] = cfg.record(i, cfg.genreFn(i))
	}

	return out, nil
}

// Clique builds n artists that all hold genre 0.
func Clique(n int, opts ...BuilderOption) ([]core.Record, error) {
	if n < 1 {
		return nil, errors.Wrapf(ErrTooFewArtists, "Clique: n=%d < 1", n)
	}
	cfg := newBuilderConfig(opts...)

	out := make([]core.Record, n)
	for i := range out {
		out[i] = cfg.record(i, cfg.genreFn(0))
	}

	return out, nil
}

// Islands builds k groups of size artists; group j holds genre j only.
func Islands(k, size int, opts ...BuilderOption) ([]core.Record, error) {
	if k < 1 || size < 1 {
		return nil, errors.Wrapf(ErrTooFewArtists, "Islands: k=%d size=%d", k, size)
	}
	cfg := newBuilderConfig(opts...)

	out := make([]core.Record, 0, k*size)
	for j := 0; j < k; j++ {
		for s := 0; s < size; s++ {
			out = append(out, cfg.record(j*size+s, cfg.genreFn(j)))
		}
	}

	return out, nil
}

// RandomGenres builds n artists, each holding per distinct genres drawn
// uniformly from g. Requires WithSeed or WithRand.
func RandomGenres(n, g, per int, opts ...BuilderOption) ([]core.Record, error) {
	if n < 1 {
		return nil, errors.Wrapf(ErrTooFewArtists, "RandomGenres: n=%d < 1", n)
	}
	if g < 1 || per < 1 || per > g {
		return nil, errors.Wrapf(ErrTooFewGenres, "RandomGenres: g=%d per=%d", g, per)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, errors.Wrap(ErrNeedRandSource, "RandomGenres")
	}

	out := make([]core.Record, n)
	genres := make([]string, per)
	for i := range out {
		for j, idx := range cfg.rng.Perm(g)[:per] {
			genres[j] = cfg.genreFn(idx)
		}
		out[i] = cfg.record(i, genres...)
	}

	return out, nil
}

func (c builderConfig) record(idx int, genres ...string) core.Record {
	return core.Record{
		ID:         c.idFn(idx),
		Categories: append([]string(nil), genres...),
		Length:     c.length(),
	}
}
