// SPDX-License-Identifier: MIT
// Package: degrees/builder
//
// impl_ensemble.go — Ensemble(n): one movie e0 starring p0..p(n-1), so
// every pair is one degree apart.
//
// Complexity: O(n) time and space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/degrees/core"
)

const (
	methodEnsemble    = "Ensemble"
	minEnsemblePeople = 1
	tagEnsemble       = "e"
)

// Ensemble returns a Constructor for a single movie with an n-person cast.
func Ensemble(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minEnsemblePeople {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodEnsemble, n, minEnsemblePeople, ErrTooFewPeople)
		}
		m, err := addMovie(b, cfg, tagEnsemble, 0)
		if err != nil {
			return fmt.Errorf("%s: %w", methodEnsemble, err)
		}
		for i := 0; i < n; i++ {
			p, err := addPerson(b, cfg, i)
			if err != nil {
				return fmt.Errorf("%s: %w", methodEnsemble, err)
			}
			if err := addStar(b, p, m); err != nil {
				return fmt.Errorf("%s: %w", methodEnsemble, err)
			}
		}

		return nil
	}
}

// Loners returns a Constructor adding people p0..p(n-1) without credits.
// People added by earlier constructors keep their credits.
func Loners(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("Loners: n=%d < min=1: %w", n, ErrTooFewPeople)
		}
		for i := 0; i < n; i++ {
			if _, err := addPerson(b, cfg, i); err != nil {
				return fmt.Errorf("Loners: %w", err)
			}
		}

		return nil
	}
}
