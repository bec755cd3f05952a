// SPDX-License-Identifier: MIT
// Package: degrees/builder
//
// errors.go — sentinel errors for the builder package.
// Callers branch with errors.Is; implementations add context with %w.

package builder

import "errors"

// ErrTooFewPeople indicates a size parameter below the constructor minimum.
var ErrTooFewPeople = errors.New("builder: parameter too small")

// ErrBadCastSize indicates cast bounds outside 1 <= lo <= hi <= people.
var ErrBadCastSize = errors.New("builder: invalid cast size")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a rejected insertion.
var ErrConstructFailed = errors.New("builder: construction failed")
