package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/degrees/core"
)

// File names inside a dataset directory.
const (
	PeopleFile = "people.csv"
	MoviesFile = "movies.csv"
	StarsFile  = "stars.csv"
)

// ErrMissingColumn is returned when a header lacks a required column.
var ErrMissingColumn = errors.New("dataset: missing column")

// Report summarizes what a load kept and what it dropped.
type Report struct {
	People int
	Movies int
	Stars  int

	SkippedPeople int
	SkippedMovies int
	SkippedStars  int
}

// Option configures a load.
type Option func(*options)

type options struct {
	log *zap.Logger
}

// WithLogger routes load diagnostics to log. Defaults to a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// Dir joins a data root and a dataset name ("small", "large", ...).
func Dir(root, name string) string {
	return filepath.Join(root, name)
}

// openFile is swapped in tests to observe Close failures.
var openFile = func(path string) (io.ReadCloser, error) { return os.Open(path) }

// Load reads people.csv, movies.csv and stars.csv from dir. It never returns
// a graph together with an error, including when closing a file fails.
func Load(ctx context.Context, dir string, opts ...Option) (g *core.Graph, rep Report, err error) {
	files := make([]io.ReadCloser, 0, 3)
	defer func() {
		for _, f := range files {
			err = multierr.Append(err, f.Close())
		}
		if err != nil {
			g, rep = nil, Report{}
		}
	}()
	for _, name := range []string{PeopleFile, MoviesFile, StarsFile} {
		f, openErr := openFile(filepath.Join(dir, name))
		if openErr != nil {
			return nil, Report{}, fmt.Errorf("dataset: open %s: %w", name, openErr)
		}
		files = append(files, f)
	}

	return LoadFrom(ctx, files[0], files[1], files[2], opts...)
}

// LoadFrom builds a graph from three CSV streams.
func LoadFrom(ctx context.Context, people, movies, stars io.Reader, opts ...Option) (*core.Graph, Report, error) {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	var (
		rep       Report
		personRow []core.Person
		movieRow  []core.Movie
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		personRow, rep.SkippedPeople, err = readPeople(egCtx, o.log, people)
		return err
	})
	eg.Go(func() error {
		var err error
		movieRow, rep.SkippedMovies, err = readMovies(egCtx, o.log, movies)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, Report{}, err
	}

	// A repeated ID replaces the earlier row, as a dict keyed by ID would.
	personRow = lastByID(personRow, func(p core.Person) string { return p.ID }, func(p core.Person) {
		o.log.Debug("person row superseded", zap.String("id", p.ID))
		rep.SkippedPeople++
	})
	movieRow = lastByID(movieRow, func(m core.Movie) string { return m.ID }, func(m core.Movie) {
		o.log.Debug("movie row superseded", zap.String("id", m.ID))
		rep.SkippedMovies++
	})

	b := core.NewBuilder()
	for _, p := range personRow {
		if err := b.AddPerson(p); err != nil {
			o.log.Debug("skipping person row", zap.String("id", p.ID), zap.Error(err))
			rep.SkippedPeople++
			continue
		}
		rep.People++
	}
	for _, m := range movieRow {
		if err := b.AddMovie(m); err != nil {
			o.log.Debug("skipping movie row", zap.String("id", m.ID), zap.Error(err))
			rep.SkippedMovies++
			continue
		}
		rep.Movies++
	}

	malformed, err := readTable(ctx, o.log, stars, StarsFile, []string{"person_id", "movie_id"}, func(row []string) {
		if err := b.AddStar(row[0], row[1]); err != nil {
			o.log.Debug("skipping star row",
				zap.String("person_id", row[0]),
				zap.String("movie_id", row[1]),
				zap.Error(err),
			)
			rep.SkippedStars++
			return
		}
		rep.Stars++
	})
	if err != nil {
		return nil, Report{}, err
	}
	rep.SkippedStars += malformed

	o.log.Debug("dataset loaded",
		zap.Int("people", rep.People),
		zap.Int("movies", rep.Movies),
		zap.Int("stars", rep.Stars),
		zap.Int("skipped_people", rep.SkippedPeople),
		zap.Int("skipped_movies", rep.SkippedMovies),
		zap.Int("skipped_stars", rep.SkippedStars),
	)

	return b.Build(), rep, nil
}

// lastByID keeps only the final row for each ID. Earlier rows go to drop.
func lastByID[T any](rows []T, id func(T) string, drop func(T)) []T {
	last := make(map[string]int, len(rows))
	for i, r := range rows {
		last[id(r)] = i
	}
	out := rows[:0]
	for i, r := range rows {
		if last[id(r)] != i {
			drop(r)
			continue
		}
		out = append(out, r)
	}

	return out
}

func readPeople(ctx context.Context, log *zap.Logger, r io.Reader) ([]core.Person, int, error) {
	var (
		out     []core.Person
		skipped int
	)
	malformed, err := readTable(ctx, log, r, PeopleFile, []string{"id", "name", "birth"}, func(row []string) {
		if row[0] == "" {
			skipped++
			return
		}
		out = append(out, core.Person{ID: row[0], Name: row[1], BirthYear: parseYear(row[2])})
	})

	return out, skipped + malformed, err
}

func readMovies(ctx context.Context, log *zap.Logger, r io.Reader) ([]core.Movie, int, error) {
	var (
		out     []core.Movie
		skipped int
	)
	malformed, err := readTable(ctx, log, r, MoviesFile, []string{"id", "title", "year"}, func(row []string) {
		if row[0] == "" {
			skipped++
			return
		}
		out = append(out, core.Movie{ID: row[0], Title: row[1], Year: parseYear(row[2])})
	})

	return out, skipped + malformed, err
}

// readTable streams r as CSV, projects every record onto columns (in the
// given order) and hands the projection to fn. Missing trailing fields
// read as "". The projected slice is reused between calls.
//
// Bare quotes inside unquoted fields are kept literally. Rows the CSV
// parser still rejects are logged, counted in malformed and skipped; only
// header and I/O errors abort the read.
func readTable(ctx context.Context, log *zap.Logger, r io.Reader, name string, columns []string, fn func(row []string)) (malformed int, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		return 0, fmt.Errorf("dataset: %s header: %w", name, err)
	}
	index := make([]int, len(columns))
	for i, col := range columns {
		index[i] = -1
		for j, h := range header {
			if strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")) == col {
				index[i] = j
				break
			}
		}
		if index[i] < 0 {
			return 0, fmt.Errorf("%w: %s has no %q", ErrMissingColumn, name, col)
		}
	}

	row := make([]string, len(columns))
	for line := 2; ; line++ {
		if line%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return malformed, err
			}
		}
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return malformed, nil
		}
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			log.Debug("skipping malformed row", zap.String("file", name), zap.Int("line", pe.StartLine), zap.Error(err))
			malformed++
			continue
		}
		if err != nil {
			return malformed, fmt.Errorf("dataset: %s: %w", name, err)
		}
		for i, j := range index {
			if j < len(rec) {
				row[i] = rec[j]
			} else {
				row[i] = ""
			}
		}
		fn(row)
	}
}

// parseYear returns the year in s, or 0 when s is empty or not a number.
func parseYear(s string) int {
	y, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}

	return y
}
