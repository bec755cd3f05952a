// Package core_test contains fixtures shared by the cast graph tests.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/degrees/core"
)

// Person and movie IDs used across core tests.
const (
	P1 = "p1"
	P2 = "p2"
	P3 = "p3"
	P4 = "p4"
	P5 = "p5"

	M1 = "m1"
	M2 = "m2"
	M3 = "m3"

	Missing = "missing"
)

// buildChain returns the canonical fixture:
//
//	p1 ─m1─ p2 ─m2─ p3      p4 (no movies)      p5 alone in m3
//
// p2 and p5 share the name "Chris Doe" in different letter cases.
func buildChain(t *testing.T) *core.Graph {
	t.Helper()
	b := core.NewBuilder()
	for _, p := range []core.Person{
		{ID: P1, Name: "Alice Smith", BirthYear: 1960},
		{ID: P2, Name: "Chris Doe", BirthYear: 1971},
		{ID: P3, Name: "Bob Stone"},
		{ID: P4, Name: "Dana Lone", BirthYear: 1990},
		{ID: P5, Name: "chris doe", BirthYear: 1985},
	} {
		require.NoError(t, b.AddPerson(p))
	}
	for _, m := range []core.Movie{
		{ID: M1, Title: "First Light", Year: 1999},
		{ID: M2, Title: "Second Wind", Year: 2003},
		{ID: M3, Title: "Solo", Year: 2010},
	} {
		require.NoError(t, b.AddMovie(m))
	}
	for _, s := range [][2]string{{P1, M1}, {P2, M1}, {P2, M2}, {P3, M2}, {P5, M3}} {
		require.NoError(t, b.AddStar(s[0], s[1]))
	}

	return b.Build()
}
