package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/degrees/builder"
	"github.com/katalvlaran/degrees/dataset"
)

type generateFlags struct {
	people  int
	movies  int
	minCast int
	maxCast int
	seed    int64
}

func newGenerateCmd() *cobra.Command {
	f := generateFlags{people: 1000, movies: 400, minCast: 2, maxCast: 6, seed: 1}
	cmd := &cobra.Command{
		Use:   "generate <directory>",
		Short: "Write a synthetic dataset with random casts",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := builder.BuildCast(
				[]builder.BuilderOption{builder.WithSeed(f.seed)},
				builder.RandomCasts(f.people, f.movies, f.minCast, f.maxCast),
			)
			if err != nil {
				return err
			}
			if err := dataset.Write(args[0], g); err != nil {
				return err
			}
			st := g.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d people, %d movies and %d credits to %s.\n",
				st.People, st.Movies, st.Credits, args[0])
			return nil
		},
	}
	fl := cmd.Flags()
	fl.IntVar(&f.people, "people", f.people, "number of people")
	fl.IntVar(&f.movies, "movies", f.movies, "number of movies")
	fl.IntVar(&f.minCast, "min-cast", f.minCast, "smallest cast per movie")
	fl.IntVar(&f.maxCast, "max-cast", f.maxCast, "largest cast per movie")
	fl.Int64Var(&f.seed, "seed", f.seed, "random seed")

	return cmd
}
