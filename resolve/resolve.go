// Package resolve turns a typed name into a unique person ID, asking the
// user to disambiguate when several people share the name.
package resolve

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/degrees/core"
)

// Sentinel errors for name resolution.
var (
	// ErrNameNotFound is returned when no person carries the name.
	ErrNameNotFound = errors.New("resolve: person not found")

	// ErrAmbiguousName is returned when several people carry the name and
	// no valid choice was made.
	ErrAmbiguousName = errors.New("resolve: ambiguous name")

	// ErrInvalidSelection is returned when the chosen ID is not one of the
	// candidates. It wraps ErrAmbiguousName.
	ErrInvalidSelection = fmt.Errorf("%w: selection is not a candidate", ErrAmbiguousName)
)

// AmbiguousError carries the candidates of an unresolved name.
type AmbiguousError struct {
	Name       string
	Candidates []core.Person
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("resolve: %d people named %q", len(e.Candidates), e.Name)
}

// Unwrap makes errors.Is(err, ErrAmbiguousName) hold.
func (e *AmbiguousError) Unwrap() error { return ErrAmbiguousName }

// Directory is the lookup surface a Resolver needs; *core.Graph satisfies it.
type Directory interface {
	PeopleNamed(name string) []string
	Person(id string) (core.Person, bool)
}

// Prompter is the interactive collaborator: it reads names and picks one
// candidate among several.
type Prompter interface {
	// AskName prompts with label and returns the entered name.
	AskName(ctx context.Context, label string) (string, error)
	// Choose presents candidates for name and returns the chosen ID.
	Choose(ctx context.Context, name string, candidates []core.Person) (string, error)
}

// Resolver maps names to person IDs.
type Resolver struct {
	dir      Directory
	prompter Prompter
}

// New returns a Resolver over dir. A nil prompter makes every ambiguous
// name fail with *AmbiguousError.
func New(dir Directory, prompter Prompter) *Resolver {
	return &Resolver{dir: dir, prompter: prompter}
}

// Candidates returns every person whose name matches, sorted by ID.
func (r *Resolver) Candidates(name string) []core.Person {
	ids := r.dir.PeopleNamed(name)
	out := make([]core.Person, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.dir.Person(id); ok {
			out = append(out, p)
		}
	}

	return out
}

// Resolve returns the unique ID for name.
//
//   - no match:       ErrNameNotFound
//   - one match:      its ID
//   - several:        the prompter's choice; ErrInvalidSelection when the
//     choice is not a candidate, *AmbiguousError without a prompter.
func (r *Resolver) Resolve(ctx context.Context, name string) (string, error) {
	candidates := r.Candidates(name)
	switch len(candidates) {
	case 0:
		return "", fmt.Errorf("%w: %q", ErrNameNotFound, name)
	case 1:
		return candidates[0].ID, nil
	}
	if r.prompter == nil {
		return "", &AmbiguousError{Name: name, Candidates: candidates}
	}

	chosen, err := r.prompter.Choose(ctx, name, candidates)
	if err != nil {
		return "", fmt.Errorf("resolve: choose %q: %w", name, err)
	}
	chosen = strings.TrimSpace(chosen)
	for _, c := range candidates {
		if c.ID == chosen {
			return chosen, nil
		}
	}

	return "", fmt.Errorf("%w: %q for %q", ErrInvalidSelection, chosen, name)
}

// Ask prompts for a name with label and resolves it.
func (r *Resolver) Ask(ctx context.Context, label string) (string, error) {
	if r.prompter == nil {
		return "", errors.New("resolve: no prompter configured")
	}
	name, err := r.prompter.AskName(ctx, label)
	if err != nil {
		return "", err
	}

	return r.Resolve(ctx, name)
}
