// SPDX-License-Identifier: MIT
// Package: degrees/builder
//
// impl_chain.go — Chain(n): people p0..p(n-1), movie c(i) starring p(i)
// and p(i+1). The shortest path from p0 to p(n-1) has n-1 degrees.
//
// Complexity: O(n) time and space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/degrees/core"
)

const (
	methodChain    = "Chain"
	minChainPeople = 2
	tagChain       = "c"
)

// Chain returns a Constructor for a linear chain of n people.
func Chain(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minChainPeople {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainPeople, ErrTooFewPeople)
		}

		prev, err := addPerson(b, cfg, 0)
		if err != nil {
			return fmt.Errorf("%s: %w", methodChain, err)
		}
		for i := 1; i < n; i++ {
			cur, err := addPerson(b, cfg, i)
			if err != nil {
				return fmt.Errorf("%s: %w", methodChain, err)
			}
			m, err := addMovie(b, cfg, tagChain, i-1)
			if err != nil {
				return fmt.Errorf("%s: %w", methodChain, err)
			}
			if err := addStar(b, prev, m); err != nil {
				return fmt.Errorf("%s: %w", methodChain, err)
			}
			if err := addStar(b, cur, m); err != nil {
				return fmt.Errorf("%s: %w", methodChain, err)
			}
			prev = cur
		}

		return nil
	}
}
