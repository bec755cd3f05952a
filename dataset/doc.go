// Package dataset loads a movie-credit dataset from CSV files into a
// core.Graph.
//
// A dataset directory holds three files, each with a header row; columns
// are matched by name, so their order does not matter:
//
//	people.csv  id,name,birth
//	movies.csv  id,title,year
//	stars.csv   person_id,movie_id
//
// People and movies are parsed concurrently; star credits are applied once
// both are in the builder. A credit naming an unknown person or movie is a
// data inconsistency: it is skipped, counted in Report.SkippedStars and
// logged at debug level, never surfaced as an error. People or movies rows
// without an ID, or repeating an ID, are skipped the same way.
//
// An unreadable file, a missing header column or a CSV syntax error is
// fatal.
package dataset
