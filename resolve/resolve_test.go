package resolve_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/degrees/core"
	"github.com/katalvlaran/degrees/resolve"
)

func directory(t *testing.T) *core.Graph {
	t.Helper()
	b := core.NewBuilder()
	for _, p := range []core.Person{
		{ID: "1", Name: "Alice Smith", BirthYear: 1960},
		{ID: "2", Name: "Chris Doe", BirthYear: 1971},
		{ID: "5", Name: "chris doe"},
	} {
		require.NoError(t, b.AddPerson(p))
	}

	return b.Build()
}

// stubPrompter answers Choose with a fixed ID and records what it saw.
type stubPrompter struct {
	answer string
	err    error
	seen   []core.Person
}

func (s *stubPrompter) AskName(context.Context, string) (string, error) { return s.answer, s.err }

func (s *stubPrompter) Choose(_ context.Context, _ string, c []core.Person) (string, error) {
	s.seen = c
	return s.answer, s.err
}

func TestResolve_UniqueAndMissing(t *testing.T) {
	r := resolve.New(directory(t), nil)
	ctx := context.Background()

	id, err := r.Resolve(ctx, "ALICE smith")
	require.NoError(t, err)
	assert.Equal(t, "1", id)

	_, err = r.Resolve(ctx, "Nobody")
	require.ErrorIs(t, err, resolve.ErrNameNotFound)
}

func TestResolve_AmbiguousWithoutPrompter(t *testing.T) {
	r := resolve.New(directory(t), nil)

	_, err := r.Resolve(context.Background(), "Chris Doe")
	require.ErrorIs(t, err, resolve.ErrAmbiguousName)

	var amb *resolve.AmbiguousError
	require.True(t, errors.As(err, &amb))
	assert.Equal(t, "Chris Doe", amb.Name)
	require.Len(t, amb.Candidates, 2)
	assert.Equal(t, "2", amb.Candidates[0].ID)
	assert.Equal(t, "5", amb.Candidates[1].ID)
}

func TestResolve_AmbiguousChoice(t *testing.T) {
	p := &stubPrompter{answer: " 5 "}
	r := resolve.New(directory(t), p)

	id, err := r.Resolve(context.Background(), "chris DOE")
	require.NoError(t, err)
	assert.Equal(t, "5", id)
	assert.Len(t, p.seen, 2)

	p.answer = "1" // a real person, but not a candidate
	_, err = r.Resolve(context.Background(), "chris doe")
	require.ErrorIs(t, err, resolve.ErrInvalidSelection)
	require.ErrorIs(t, err, resolve.ErrAmbiguousName)

	p.err = errors.New("stdin closed")
	_, err = r.Resolve(context.Background(), "chris doe")
	require.ErrorContains(t, err, "stdin closed")
}

func TestLinePrompter_Protocol(t *testing.T) {
	in := strings.NewReader("Chris Doe\n2\n")
	var out bytes.Buffer
	r := resolve.New(directory(t), resolve.NewLinePrompter(in, &out))

	id, err := r.Ask(context.Background(), "Name")
	require.NoError(t, err)
	assert.Equal(t, "2", id)

	want := "Name: " +
		"Which 'Chris Doe'?\n" +
		"ID: 2, Name: Chris Doe, Birth: 1971\n" +
		"ID: 5, Name: chris doe, Birth: \n" +
		"Intended Person ID: "
	assert.Equal(t, want, out.String())
}

func TestLinePrompter_LastLineWithoutNewline(t *testing.T) {
	p := resolve.NewLinePrompter(strings.NewReader("Alice Smith"), &bytes.Buffer{})
	name, err := p.AskName(context.Background(), "Name")
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", name)

	_, err = p.AskName(context.Background(), "Name")
	require.Error(t, err)
}

func TestLinePrompter_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := resolve.NewLinePrompter(strings.NewReader("x\n"), &bytes.Buffer{})
	_, err := p.AskName(ctx, "Name")
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewPrompter_NonTerminalFallsBackToLines(t *testing.T) {
	p := resolve.NewPrompter(strings.NewReader(""), &bytes.Buffer{})
	_, ok := p.(*resolve.LinePrompter)
	assert.True(t, ok)
}

func TestAsk_WithoutPrompter(t *testing.T) {
	_, err := resolve.New(directory(t), nil).Ask(context.Background(), "Name")
	require.Error(t, err)
}
