// File: api.go
// Role: Read-only facade over a sealed Graph: lookups, name index, stats.
// Policy:
//   - No mutation here; Graph is immutable once Build returns it.
//   - Every returned slice is freshly allocated and sorted ascending.

package core

import (
	"sort"
	"strings"
)

// Graph is the immutable cast graph produced by Builder.Build.
//
// people and movies hold the bidirectional membership sets; names maps a
// lowercased name to the IDs of everyone carrying it (names are not unique).
type Graph struct {
	people  map[string]*person
	movies  map[string]*movie
	names   map[string]map[string]struct{}
	credits int
}

func newGraph() *Graph {
	return &Graph{
		people: make(map[string]*person),
		movies: make(map[string]*movie),
		names:  make(map[string]map[string]struct{}),
	}
}

// Person returns the person stored under id together with its movie IDs.
// The boolean is false when id is unknown.
//
// Complexity: O(k log k), k = number of movies of the person.
func (g *Graph) Person(id string) (Person, bool) {
	p, ok := g.people[id]
	if !ok {
		return Person{}, false
	}

	return Person{
		ID:        id,
		Name:      p.name,
		BirthYear: p.birth,
		Movies:    sortedKeys(p.movies),
	}, true
}

// Movie returns the movie stored under id together with its star IDs.
func (g *Graph) Movie(id string) (Movie, bool) {
	m, ok := g.movies[id]
	if !ok {
		return Movie{}, false
	}

	return Movie{
		ID:    id,
		Title: m.title,
		Year:  m.year,
		Stars: sortedKeys(m.stars),
	}, true
}

// HasPerson reports whether id names a known person (empty id ⇒ false).
func (g *Graph) HasPerson(id string) bool {
	_, ok := g.people[id]

	return ok
}

// HasMovie reports whether id names a known movie.
func (g *Graph) HasMovie(id string) bool {
	_, ok := g.movies[id]

	return ok
}

// PeopleNamed returns the IDs of every person whose name matches name
// case-insensitively, or an empty slice when nobody matches.
func (g *Graph) PeopleNamed(name string) []string {
	return sortedKeys(g.names[strings.ToLower(name)])
}

// MoviesOf returns the movie IDs personID starred in, or ErrPersonNotFound.
func (g *Graph) MoviesOf(personID string) ([]string, error) {
	if personID == "" {
		return nil, ErrEmptyID
	}
	p, ok := g.people[personID]
	if !ok {
		return nil, ErrPersonNotFound
	}

	return sortedKeys(p.movies), nil
}

// StarsOf returns the person IDs in the cast of movieID, or ErrMovieNotFound.
func (g *Graph) StarsOf(movieID string) ([]string, error) {
	if movieID == "" {
		return nil, ErrEmptyID
	}
	m, ok := g.movies[movieID]
	if !ok {
		return nil, ErrMovieNotFound
	}

	return sortedKeys(m.stars), nil
}

// PersonIDs returns every person ID in ascending order.
func (g *Graph) PersonIDs() []string {
	out := make([]string, 0, len(g.people))
	for id := range g.people {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// MovieIDs returns every movie ID in ascending order.
func (g *Graph) MovieIDs() []string {
	out := make([]string, 0, len(g.movies))
	for id := range g.movies {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Stats returns the size of the graph. O(1).
func (g *Graph) Stats() Stats {
	return Stats{
		People:  len(g.people),
		Movies:  len(g.movies),
		Credits: g.credits,
		Names:   len(g.names),
	}
}

// sortedKeys copies the keys of set into a new ascending slice.
func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
