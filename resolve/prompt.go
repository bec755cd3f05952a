package resolve

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/degrees/core"
)

// NewPrompter returns a FormPrompter when both in and out are terminals,
// and a LinePrompter otherwise (pipes, files, tests).
func NewPrompter(in io.Reader, out io.Writer) Prompter {
	if isTerminal(in) && isTerminal(out) {
		return &FormPrompter{in: in, out: out}
	}

	return NewLinePrompter(in, out)
}

func isTerminal(v any) bool {
	f, ok := v.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// LinePrompter speaks a plain line protocol:
//
//	Name: <name>
//	Which 'Chris Doe'?
//	ID: 2, Name: Chris Doe, Birth: 1971
//	ID: 5, Name: chris doe, Birth: 1985
//	Intended Person ID: <id>
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter reads answers from in and writes prompts to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// AskName writes "label: " and reads one line.
func (p *LinePrompter) AskName(ctx context.Context, label string) (string, error) {
	if _, err := fmt.Fprintf(p.out, "%s: ", label); err != nil {
		return "", err
	}

	return p.readLine(ctx)
}

// Choose lists the candidates and reads the intended ID.
func (p *LinePrompter) Choose(ctx context.Context, name string, candidates []core.Person) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Which '%s'?\n", name)
	for _, c := range candidates {
		fmt.Fprintf(&b, "ID: %s, Name: %s, Birth: %s\n", c.ID, c.Name, birth(c.BirthYear))
	}
	b.WriteString("Intended Person ID: ")
	if _, err := io.WriteString(p.out, b.String()); err != nil {
		return "", err
	}

	return p.readLine(ctx)
}

func (p *LinePrompter) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

// FormPrompter renders interactive huh forms on a terminal.
type FormPrompter struct {
	in  io.Reader
	out io.Writer
}

// AskName shows a text input titled label.
func (p *FormPrompter) AskName(ctx context.Context, label string) (string, error) {
	var name string
	input := huh.NewInput().
		Title(label).
		Value(&name).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("name is required")
			}
			return nil
		})
	if err := p.run(ctx, input); err != nil {
		return "", err
	}

	return strings.TrimSpace(name), nil
}

// Choose shows a select list with one entry per candidate.
func (p *FormPrompter) Choose(ctx context.Context, name string, candidates []core.Person) (string, error) {
	options := make([]huh.Option[string], 0, len(candidates))
	for _, c := range candidates {
		label := fmt.Sprintf("%s (born %s), ID %s", c.Name, birth(c.BirthYear), c.ID)
		options = append(options, huh.NewOption(label, c.ID))
	}
	var chosen string
	sel := huh.NewSelect[string]().
		Title(fmt.Sprintf("Which '%s'?", name)).
		Options(options...).
		Value(&chosen)
	if err := p.run(ctx, sel); err != nil {
		return "", err
	}

	return chosen, nil
}

func (p *FormPrompter) run(ctx context.Context, field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithInput(p.in).
		WithOutput(p.out)
	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return fmt.Errorf("resolve: prompt aborted: %w", err)
		}
		return err
	}

	return nil
}

// birth renders an unknown (zero) year as an empty string.
func birth(year int) string {
	if year == 0 {
		return ""
	}

	return strconv.Itoa(year)
}
