// Package builder generates synthetic artist records with well-known
// genre topologies, for fixtures, benchmarks and the CLI sample command.
//
// The package offers the following key components:
//
//   - Constructors (each returns []core.Record):
//     – Path(n):                 artist i holds genres i and i+1 → a chain.
//     – Star(n):                 a hub holding every leaf's genre.
//     – Clique(n):               every artist shares one genre.
//     – Islands(k, size):        k disjoint cliques.
//     – RandomGenres(n, g, per): each artist draws per distinct genres of g.
//   - ID schemes (IDFn): Numbered(prefix), Letters, Index, selectable by
//     name through ParseIDScheme. Genres have their own scheme.
//   - Length distributions: WithConstantLength, WithUniformLength.
//
// Guarantees:
//
//   - Deterministic: equal arguments and seed give equal records.
//   - Option constructors panic on meaningless input; constructors return
//     sentinel errors (ErrTooFewArtists, ErrTooFewGenres, ErrNeedRandSource).
//   - Every record is valid input to core.Build (non-empty ID, Length > 0).
package builder
