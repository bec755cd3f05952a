// File: types.go
// Role: Person, Movie, Neighbor and Stats value types, sentinel errors.
// Policy:
//   - Value types returned by Graph are copies; mutating them never touches the graph.
//   - Set-valued fields are exposed as sorted slices.

package core

import "errors"

// Sentinel errors for cast graph operations.
var (
	// ErrEmptyID indicates that a person or movie ID is the empty string.
	ErrEmptyID = errors.New("core: empty ID")

	// ErrDuplicateID indicates that a person or movie ID was added twice.
	ErrDuplicateID = errors.New("core: duplicate ID")

	// ErrPersonNotFound indicates an operation referenced a non-existent person.
	ErrPersonNotFound = errors.New("core: person not found")

	// ErrMovieNotFound indicates an operation referenced a non-existent movie.
	ErrMovieNotFound = errors.New("core: movie not found")

	// ErrBuilderSealed indicates a Builder was mutated after Build.
	ErrBuilderSealed = errors.New("core: builder already built")
)

// Person is one row of the people table.
//
// BirthYear is 0 when the dataset does not record it.
// Movies lists the IDs of every movie the person starred in, sorted
// ascending; it is ignored by Builder.AddPerson and filled by Graph.Person.
type Person struct {
	ID        string
	Name      string
	BirthYear int
	Movies    []string
}

// Movie is one row of the movies table.
//
// Year is 0 when unknown. Stars lists the IDs of the cast, sorted
// ascending; it is ignored by Builder.AddMovie and filled by Graph.Movie.
type Movie struct {
	ID    string
	Title string
	Year  int
	Stars []string
}

// Neighbor is a single co-star edge derived from the cast sets:
// PersonID starred in MovieID together with the queried person.
type Neighbor struct {
	MovieID  string
	PersonID string
}

// Stats is a point-in-time size summary of a Graph.
type Stats struct {
	People  int // number of people
	Movies  int // number of movies
	Credits int // number of (person, movie) star credits
	Names   int // number of distinct lowercased names
}

// person and movie are the internal records; membership sets are maps so
// that duplicate credits collapse.
type person struct {
	name   string
	birth  int
	movies map[string]struct{}
}

type movie struct {
	title string
	year  int
	stars map[string]struct{}
}
