package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/multierr"

	"github.com/katalvlaran/degrees/core"
)

// Write stores g under dir as the three CSV files Load reads, creating dir
// when needed. Rows are written in ascending ID order.
func Write(dir string, g *core.Graph) (err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("dataset: %w", err)
	}
	writers := []struct {
		name string
		fn   func(io.Writer, *core.Graph) error
	}{
		{PeopleFile, WritePeople},
		{MoviesFile, WriteMovies},
		{StarsFile, WriteStars},
	}
	for _, w := range writers {
		if err := writeFile(filepath.Join(dir, w.name), g, w.fn); err != nil {
			return err
		}
	}

	return nil
}

func writeFile(path string, g *core.Graph, fn func(io.Writer, *core.Graph) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dataset: %w", err)
	}
	defer func() { err = multierr.Append(err, f.Close()) }()

	return fn(f, g)
}

// WritePeople writes the id,name,birth table.
func WritePeople(w io.Writer, g *core.Graph) error {
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"id", "name", "birth"})
	for _, id := range g.PersonIDs() {
		p, _ := g.Person(id)
		_ = cw.Write([]string{p.ID, p.Name, year(p.BirthYear)})
	}

	return flush(cw, PeopleFile)
}

// WriteMovies writes the id,title,year table.
func WriteMovies(w io.Writer, g *core.Graph) error {
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"id", "title", "year"})
	for _, id := range g.MovieIDs() {
		m, _ := g.Movie(id)
		_ = cw.Write([]string{m.ID, m.Title, year(m.Year)})
	}

	return flush(cw, MoviesFile)
}

// WriteStars writes the person_id,movie_id table, grouped by person.
func WriteStars(w io.Writer, g *core.Graph) error {
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"person_id", "movie_id"})
	for _, id := range g.PersonIDs() {
		movies, _ := g.MoviesOf(id)
		for _, m := range movies {
			_ = cw.Write([]string{id, m})
		}
	}

	return flush(cw, StarsFile)
}

// flush surfaces the first error csv.Writer deferred.
func flush(cw *csv.Writer, name string) error {
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("dataset: write %s: %w", name, err)
	}

	return nil
}

func year(y int) string {
	if y == 0 {
		return ""
	}

	return strconv.Itoa(y)
}
