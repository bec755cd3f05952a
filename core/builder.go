// File: builder.go
// Role: Mutable assembly of a cast graph, sealed into an immutable Graph by Build.
// Concurrency:
//   - A Builder is not safe for concurrent use; loaders feed it from one goroutine.
//   - The Graph returned by Build is read-only and safe for concurrent readers.

package core

import (
	"fmt"
	"strings"
)

// Builder accumulates people, movies and star credits.
// The zero value is not usable; call NewBuilder.
type Builder struct {
	g      *Graph
	sealed bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{g: newGraph()}
}

// AddPerson registers p under p.ID and indexes its lowercased name.
// p.Movies is ignored; credits are added with AddStar.
//
// Errors:
//   - ErrBuilderSealed if Build was already called.
//   - ErrEmptyID if p.ID == "".
//   - ErrDuplicateID if p.ID is already registered.
//
// Complexity: O(1) amortized.
func (b *Builder) AddPerson(p Person) error {
	if b.sealed {
		return ErrBuilderSealed
	}
	if p.ID == "" {
		return ErrEmptyID
	}
	if _, exists := b.g.people[p.ID]; exists {
		return fmt.Errorf("person %q: %w", p.ID, ErrDuplicateID)
	}
	b.g.people[p.ID] = &person{
		name:   p.Name,
		birth:  p.BirthYear,
		movies: make(map[string]struct{}),
	}

	key := strings.ToLower(p.Name)
	ids, ok := b.g.names[key]
	if !ok {
		ids = make(map[string]struct{}, 1)
		b.g.names[key] = ids
	}
	ids[p.ID] = struct{}{}

	return nil
}

// AddMovie registers m under m.ID. m.Stars is ignored.
//
// Errors:
//   - ErrBuilderSealed, ErrEmptyID, ErrDuplicateID as for AddPerson.
func (b *Builder) AddMovie(m Movie) error {
	if b.sealed {
		return ErrBuilderSealed
	}
	if m.ID == "" {
		return ErrEmptyID
	}
	if _, exists := b.g.movies[m.ID]; exists {
		return fmt.Errorf("movie %q: %w", m.ID, ErrDuplicateID)
	}
	b.g.movies[m.ID] = &movie{
		title: m.Title,
		year:  m.Year,
		stars: make(map[string]struct{}),
	}

	return nil
}

// AddStar records that personID starred in movieID, updating both
// membership sets. Repeating a credit is a no-op.
//
// Errors:
//   - ErrBuilderSealed if Build was already called.
//   - ErrPersonNotFound if personID is unknown.
//   - ErrMovieNotFound if movieID is unknown.
//
// Both references are validated before either set is touched, so a
// rejected credit leaves the builder unchanged.
func (b *Builder) AddStar(personID, movieID string) error {
	if b.sealed {
		return ErrBuilderSealed
	}
	p, ok := b.g.people[personID]
	if !ok {
		return fmt.Errorf("star %q in %q: %w", personID, movieID, ErrPersonNotFound)
	}
	m, ok := b.g.movies[movieID]
	if !ok {
		return fmt.Errorf("star %q in %q: %w", personID, movieID, ErrMovieNotFound)
	}
	if _, dup := p.movies[movieID]; dup {
		return nil
	}
	p.movies[movieID] = struct{}{}
	m.stars[personID] = struct{}{}
	b.g.credits++

	return nil
}

// Build seals the builder and returns the assembled Graph.
// Subsequent Add* calls fail with ErrBuilderSealed; calling Build again
// returns the same Graph.
func (b *Builder) Build() *Graph {
	b.sealed = true

	return b.g
}
