// SPDX-License-Identifier: MIT
// Package: degrees/builder
//
// impl_random_casts.go — RandomCasts(people, movies, lo, hi).
//
// Model:
//   - Adds people p0..p(people-1) first, so isolated people exist too.
//   - Movie r(i) gets a cast size drawn uniformly from [lo, hi], then that
//     many distinct people drawn uniformly without replacement.
//
// Contract:
//   - people >= 1, movies >= 1 (else ErrTooFewPeople).
//   - 1 <= lo <= hi <= people (else ErrBadCastSize).
//   - cfg.rng must be set (else ErrNeedRandSource).
//
// Determinism: a fixed seed yields the same graph, since draws happen in
// movie order and cast members are drawn with a partial Fisher–Yates pass.
//
// Complexity: O(people + Σ cast sizes) time, O(people) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/degrees/core"
)

const (
	methodRandomCasts = "RandomCasts"
	tagRandom         = "r"
)

// RandomCasts returns a Constructor for a random credit graph.
func RandomCasts(people, movies, lo, hi int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if people < 1 || movies < 1 {
			return fmt.Errorf("%s: people=%d movies=%d: %w", methodRandomCasts, people, movies, ErrTooFewPeople)
		}
		if lo < 1 || lo > hi || hi > people {
			return fmt.Errorf("%s: cast [%d,%d] with %d people: %w", methodRandomCasts, lo, hi, people, ErrBadCastSize)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomCasts, ErrNeedRandSource)
		}

		ids := make([]string, people)
		for i := range ids {
			id, err := addPerson(b, cfg, i)
			if err != nil {
				return fmt.Errorf("%s: %w", methodRandomCasts, err)
			}
			ids[i] = id
		}

		// pool is permuted in place; the first k slots after a pass are the cast.
		pool := make([]int, people)
		for i := range pool {
			pool[i] = i
		}
		for m := 0; m < movies; m++ {
			movieID, err := addMovie(b, cfg, tagRandom, m)
			if err != nil {
				return fmt.Errorf("%s: %w", methodRandomCasts, err)
			}
			k := lo + cfg.rng.Intn(hi-lo+1)
			for j := 0; j < k; j++ {
				r := j + cfg.rng.Intn(people-j)
				pool[j], pool[r] = pool[r], pool[j]
				if err := addStar(b, ids[pool[j]], movieID); err != nil {
					return fmt.Errorf("%s: %w", methodRandomCasts, err)
				}
			}
		}

		return nil
	}
}
