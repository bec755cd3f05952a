// File: methods_adjacent.go
// Role: Neighborhood API: co-star pairs derived lazily from the cast sets.
// Determinism:
//   - Neighbors() sorts by (MovieID, PersonID) asc.

package core

import "sort"

// Neighbors returns every (movie, co-star) pair reachable from personID in
// one hop: for each movie the person starred in, one pair per member of
// that movie's cast.
//
// Neighborhood policy:
//   - The queried person is not filtered out; a movie contributes a
//     (movie, personID) self pair. Searches skip those themselves.
//   - A movie whose only recorded star is personID contributes only the
//     self pair; a person without movies has no neighbors.
//   - Pairs are unique because both membership sets are sets.
//
// Errors:
//   - ErrEmptyID if personID == "".
//   - ErrPersonNotFound if the person does not exist.
//
// Complexity:
//   - Time O(n log n), Space O(n), n = Σ |stars(m)| over the person's movies.
func (g *Graph) Neighbors(personID string) ([]Neighbor, error) {
	if personID == "" {
		return nil, ErrEmptyID
	}
	p, ok := g.people[personID]
	if !ok {
		return nil, ErrPersonNotFound
	}

	size := 0
	for mid := range p.movies {
		size += len(g.movies[mid].stars)
	}
	out := make([]Neighbor, 0, size)
	for mid := range p.movies {
		for sid := range g.movies[mid].stars {
			out = append(out, Neighbor{MovieID: mid, PersonID: sid})
		}
	}
	// Map order is random; sort for reproducible expansion order.
	sort.Slice(out, func(i, j int) bool {
		if out[i].MovieID != out[j].MovieID {
			return out[i].MovieID < out[j].MovieID
		}
		return out[i].PersonID < out[j].PersonID
	})

	return out, nil
}
