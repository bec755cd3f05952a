// Package core provides the in-memory cast graph: people, movies, and the
// many-to-many "starred in" relationship between them, plus the
// case-insensitive name index used to resolve people by name.
//
// The graph G = (P ∪ M, S) is bipartite: P is the set of people, M the set
// of movies and S the star credits. It is never materialized as an edge
// list. Instead, person→movies and movie→stars membership sets are kept
// side by side, and co-star edges are derived lazily by Neighbors.
//
// Lifecycle
//
//	A Graph is assembled with a Builder and sealed by Build. After Build the
//	Graph is immutable: every read method is safe for concurrent use without
//	locking, and every returned slice is a fresh copy the caller may keep.
//
//	b := core.NewBuilder()
//	_ = b.AddPerson(core.Person{ID: "102", Name: "Kevin Bacon", BirthYear: 1958})
//	_ = b.AddMovie(core.Movie{ID: "104257", Title: "A Few Good Men", Year: 1992})
//	_ = b.AddStar("102", "104257")
//	g := b.Build()
//
// Data tolerance
//
//	AddStar rejects credits that reference an unknown person or movie with
//	ErrPersonNotFound / ErrMovieNotFound. Loaders treat those as malformed
//	rows and skip them; the graph never holds a dangling reference.
//
// Determinism
//
//	Maps are used for storage, but every enumeration (MoviesOf, StarsOf,
//	PeopleNamed, Neighbors) returns IDs sorted ascending, so output is
//	reproducible across runs.
//
// Complexity
//
//   - Person / Movie / HasPerson / HasMovie: O(1)
//   - PeopleNamed:                           O(k log k), k = matches
//   - Neighbors(p):                          O(Σ|stars(m)| log) over m ∈ movies(p)
//
// Errors
//
//	ErrEmptyID        - empty person or movie ID.
//	ErrDuplicateID    - person or movie ID added twice.
//	ErrPersonNotFound - reference to an unknown person.
//	ErrMovieNotFound  - reference to an unknown movie.
//	ErrBuilderSealed  - Builder used after Build.
package core
