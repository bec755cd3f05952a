// SPDX-License-Identifier: MIT

// Package builder generates synthetic cast graphs for tests, benchmarks and
// the `degrees generate` command.
//
// What:
//
//   - Constructor: a function that adds people, movies and credits to a
//     core.Builder under a resolved builderConfig.
//   - BuildCast: runs constructors in order and seals the result.
//   - Topologies:
//     Chain(n)               p0 -m- p1 -m- ... -m- p(n-1), one degree per movie
//     Ensemble(n)            one movie starring n people (everyone co-stars)
//     Loners(n)              people without any credit
//     RandomCasts(p, m, lo, hi)  m movies with lo..hi stars drawn from p people
//
// Why:
//
//   - Real datasets are large and licensed; fixtures must be small,
//     reproducible and describable in one line.
//
// Determinism:
//
//   - Person i is always cfg.personID(i), so constructors over the same
//     people share them: Chain(5) followed by Loners(8) adds p5..p7 only.
//   - Movie IDs carry a per-constructor tag ("c", "e", "r") and never clash.
//   - RandomCasts requires WithSeed or WithRand; same seed, same graph.
//
// Errors:
//
//   - ErrTooFewPeople    size parameters below the constructor minimum.
//   - ErrBadCastSize     cast bounds outside 1 <= lo <= hi <= people.
//   - ErrNeedRandSource  stochastic constructor without an RNG.
//   - ErrConstructFailed nil constructor or a core.Builder rejection.
//
// Option constructors panic on meaningless input (nil functions).
//
// Usage:
//
//	g, err := builder.BuildCast(
//	    []builder.BuilderOption{builder.WithSeed(42)},
//	    builder.Chain(4),
//	    builder.RandomCasts(1000, 300, 2, 6),
//	)
package builder
