// Package degrees finds the shortest chain of co-stars linking two people
// in a movie dataset: the "six degrees of Kevin Bacon" game.
//
// People are nodes; two people are adjacent when they starred in the same
// movie. A breadth-first search over that implicit graph returns the fewest
// hops, each hop labelled with the movie that links the pair.
//
// Layout:
//
//	core/      — immutable cast graph, name index and co-star neighbors
//	dataset/   — CSV loader (people, movies, stars) and writer
//	bfs/       — frontier-based shortest-path search with hooks and limits
//	builder/   — deterministic synthetic casts (chain, ensemble, random)
//	resolve/   — name → person ID, with interactive disambiguation
//	render/    — "N degrees of separation." report lines
//	service/   — cached, traced, metered search on top of bfs
//	httpapi/   — JSON HTTP API over service
//	config/    — YAML + .env + DEGREES_* environment configuration
//	logging/   — zap logger construction
//	telemetry/ — OpenTelemetry tracing and Prometheus registry
//	cmd/degrees — CLI: search, serve, generate
//
// Quick ASCII example:
//
//	Kevin Bacon ─(A Few Good Men)─ Tom Cruise ─(Top Gun)─ Val Kilmer
//
// is two degrees of separation between Kevin Bacon and Val Kilmer.
//
//	go install github.com/katalvlaran/degrees/cmd/degrees@latest
package degrees
