// Package render prints search results as the human-readable report:
//
//	2 degrees of separation.
//	1: Alice Smith and Chris Doe starred in First Light
//	2: Chris Doe and Bob Stone starred in Second Wind
package render

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/degrees/bfs"
	"github.com/katalvlaran/degrees/core"
)

// Lookup resolves IDs to display records; *core.Graph satisfies it.
type Lookup interface {
	Person(id string) (core.Person, bool)
	Movie(id string) (core.Movie, bool)
}

// Printer writes results to an io.Writer.
type Printer struct {
	out      io.Writer
	lookup   Lookup
	headline lipgloss.Style
	styled   bool
}

// Option configures a Printer.
type Option func(*Printer)

// WithStyle forces styled (bold headline) output on or off. By default
// output is styled only when out is a terminal.
func WithStyle(on bool) Option {
	return func(p *Printer) { p.styled = on }
}

// New returns a Printer writing to out.
func New(out io.Writer, lookup Lookup, opts ...Option) *Printer {
	p := &Printer{
		out:      out,
		lookup:   lookup,
		headline: lipgloss.NewRenderer(out).NewStyle().Bold(true),
	}
	if f, ok := out.(*os.File); ok {
		p.styled = isatty.IsTerminal(f.Fd())
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Print writes the report for a search from source.
func (p *Printer) Print(source string, res bfs.PathResult) error {
	lines := Lines(p.lookup, source, res)
	if p.styled && len(lines) > 0 {
		lines[0] = p.headline.Render(lines[0])
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(p.out, l); err != nil {
			return err
		}
	}

	return nil
}

// Lines builds the unstyled report. Unknown IDs fall back to the raw ID.
func Lines(lookup Lookup, source string, res bfs.PathResult) []string {
	switch res.Outcome {
	case bfs.SameOrigin:
		return []string{
			"0 degrees of separation.",
			"Source and target are the same person.",
		}
	case bfs.Connected:
	default:
		return []string{"Not connected."}
	}

	out := make([]string, 0, len(res.Steps)+1)
	out = append(out, fmt.Sprintf("%d degrees of separation.", res.Degrees()))
	prev := source
	for i, s := range res.Steps {
		out = append(out, fmt.Sprintf("%d: %s and %s starred in %s",
			i+1, personName(lookup, prev), personName(lookup, s.PersonID), movieTitle(lookup, s.MovieID)))
		prev = s.PersonID
	}

	return out
}

func personName(l Lookup, id string) string {
	if p, ok := l.Person(id); ok {
		return p.Name
	}
	return id
}

func movieTitle(l Lookup, id string) string {
	if m, ok := l.Movie(id); ok {
		return m.Title
	}
	return id
}
