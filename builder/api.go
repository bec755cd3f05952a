// SPDX-License-Identifier: MIT
// Package: degrees/builder
//
// api.go — Constructor type, BuildCast and shared insertion helpers.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/degrees/core"
)

// Constructor adds one topology to b.
type Constructor func(b *core.Builder, cfg builderConfig) error

// BuildCast applies bopts, runs every constructor in order on a fresh
// core.Builder and returns the sealed graph.
func BuildCast(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	b := core.NewBuilder()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildCast: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("BuildCast: %w", err)
		}
	}

	return b.Build(), nil
}

// addPerson inserts person i; an existing person is reused.
func addPerson(b *core.Builder, cfg builderConfig, i int) (string, error) {
	id := cfg.personID(i)
	err := b.AddPerson(core.Person{ID: id, Name: cfg.name(i), BirthYear: cfg.firstYear - 30 + i%50})
	if err != nil && !errors.Is(err, core.ErrDuplicateID) {
		return "", fmt.Errorf("AddPerson(%s): %v: %w", id, err, ErrConstructFailed)
	}

	return id, nil
}

// addMovie inserts movie (tag, i); an existing movie is reused.
func addMovie(b *core.Builder, cfg builderConfig, tag string, i int) (string, error) {
	id := cfg.movieID(tag, i)
	err := b.AddMovie(core.Movie{ID: id, Title: "Movie " + id, Year: cfg.firstYear + i})
	if err != nil && !errors.Is(err, core.ErrDuplicateID) {
		return "", fmt.Errorf("AddMovie(%s): %v: %w", id, err, ErrConstructFailed)
	}

	return id, nil
}

func addStar(b *core.Builder, personID, movieID string) error {
	if err := b.AddStar(personID, movieID); err != nil {
		return fmt.Errorf("AddStar(%s,%s): %v: %w", personID, movieID, err, ErrConstructFailed)
	}

	return nil
}
