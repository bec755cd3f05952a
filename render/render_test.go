package render_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/degrees/bfs"
	"github.com/katalvlaran/degrees/core"
	"github.com/katalvlaran/degrees/render"
)

func cast(t *testing.T) *core.Graph {
	t.Helper()
	b := core.NewBuilder()
	require.NoError(t, b.AddPerson(core.Person{ID: "1", Name: "Alice Smith"}))
	require.NoError(t, b.AddPerson(core.Person{ID: "2", Name: "Chris Doe"}))
	require.NoError(t, b.AddPerson(core.Person{ID: "3", Name: "Bob Stone"}))
	require.NoError(t, b.AddMovie(core.Movie{ID: "10", Title: "First Light"}))
	require.NoError(t, b.AddMovie(core.Movie{ID: "20", Title: "Second Wind"}))
	for _, c := range [][2]string{{"1", "10"}, {"2", "10"}, {"2", "20"}, {"3", "20"}} {
		require.NoError(t, b.AddStar(c[0], c[1]))
	}

	return b.Build()
}

func TestLines(t *testing.T) {
	g := cast(t)
	res, err := bfs.ShortestPath(g, "1", "3")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"2 degrees of separation.",
		"1: Alice Smith and Chris Doe starred in First Light",
		"2: Chris Doe and Bob Stone starred in Second Wind",
	}, render.Lines(g, "1", res))

	assert.Equal(t, []string{"Not connected."},
		render.Lines(g, "1", bfs.PathResult{Outcome: bfs.NoConnection}))
	assert.Equal(t, []string{"0 degrees of separation.", "Source and target are the same person."},
		render.Lines(g, "1", bfs.PathResult{Outcome: bfs.SameOrigin}))
}

func TestLines_UnknownIDsFallBack(t *testing.T) {
	res := bfs.PathResult{Outcome: bfs.Connected, Steps: []bfs.Step{{MovieID: "m?", PersonID: "p?"}}}
	assert.Equal(t, []string{
		"1 degrees of separation.",
		"1: Alice Smith and p? starred in m?",
	}, render.Lines(cast(t), "1", res))
}

func TestPrinter_Plain(t *testing.T) {
	g := cast(t)
	var buf bytes.Buffer
	res, err := bfs.ShortestPath(g, "2", "3")
	require.NoError(t, err)

	require.NoError(t, render.New(&buf, g).Print("2", res))
	assert.Equal(t, "1 degrees of separation.\n1: Chris Doe and Bob Stone starred in Second Wind\n", buf.String())
}

func TestPrinter_StyledKeepsText(t *testing.T) {
	var buf bytes.Buffer
	p := render.New(&buf, cast(t), render.WithStyle(true))
	require.NoError(t, p.Print("1", bfs.PathResult{Outcome: bfs.NoConnection}))
	assert.Contains(t, buf.String(), "Not connected.")
}

func ExamplePrinter_Print() {
	b := core.NewBuilder()
	_ = b.AddPerson(core.Person{ID: "1", Name: "Alice"})
	_ = b.AddPerson(core.Person{ID: "2", Name: "Bob"})
	_ = b.AddMovie(core.Movie{ID: "m", Title: "Heat"})
	_ = b.AddStar("1", "m")
	_ = b.AddStar("2", "m")
	g := b.Build()

	res, _ := bfs.ShortestPath(g, "1", "2")
	_ = render.New(os.Stdout, g, render.WithStyle(false)).Print("1", res)
	// Output:
	// 1 degrees of separation.
	// 1: Alice and Bob starred in Heat
}
