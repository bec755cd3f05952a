package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/degrees/config"
	"github.com/katalvlaran/degrees/core"
	"github.com/katalvlaran/degrees/dataset"
	"github.com/katalvlaran/degrees/logging"
	"github.com/katalvlaran/degrees/render"
	"github.com/katalvlaran/degrees/resolve"
	"github.com/katalvlaran/degrees/service"
	"github.com/katalvlaran/degrees/telemetry"
)

// errReported marks failures whose message was already printed.
var errReported = errors.New("reported")

type rootFlags struct {
	configPath string
	dataRoot   string
	logLevel   string
	source     string
	target     string
}

func newRootCmd() *cobra.Command {
	var f rootFlags
	cmd := &cobra.Command{
		Use:           "degrees [directory]",
		Short:         "Find the degrees of separation between two people",
		Args:          usageArgs(cobra.MaximumNArgs(1)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, f, args)
		},
	}
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		showUsage(c)
		return err
	})
	pf := cmd.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "YAML config file")
	pf.StringVar(&f.dataRoot, "data-root", "", "directory holding datasets (overrides data.root)")
	pf.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error (overrides log.level)")
	cmd.Flags().StringVar(&f.source, "source", "", "source name; prompts when empty")
	cmd.Flags().StringVar(&f.target, "target", "", "target name; prompts when empty")

	cmd.AddCommand(newServeCmd(&f), newGenerateCmd())

	return cmd
}

// usageArgs re-enables the usage text when positional arguments are wrong.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			showUsage(cmd)
			return err
		}
		return nil
	}
}

func showUsage(cmd *cobra.Command) {
	cmd.SilenceUsage = false
	cmd.Root().SilenceUsage = false
}

// env is everything a subcommand needs after startup.
type env struct {
	cfg      config.Config
	log      *zap.Logger
	registry *prometheus.Registry
	graph    *core.Graph
	svc      *service.Service
	shutdown func(context.Context) error
}

func (e *env) close(ctx context.Context) {
	if err := e.shutdown(ctx); err != nil {
		e.log.Warn("telemetry shutdown", zap.Error(err))
	}
	_ = e.log.Sync()
}

// setup loads configuration, applies flag and positional overrides, and
// loads the dataset while printing progress to the command's stdout.
func setup(cmd *cobra.Command, f rootFlags, args []string) (*env, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	if f.dataRoot != "" {
		cfg.Data.Root = f.dataRoot
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if len(args) == 1 {
		cfg.Data.Directory = args[0]
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return nil, err
	}
	ctx := cmd.Context()
	shutdown, err := telemetry.SetupTracing(ctx, telemetry.TracingConfig{
		Enabled:     cfg.Telemetry.Tracing,
		ServiceName: "degrees",
		Writer:      cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, err
	}
	e := &env{cfg: cfg, log: log, registry: telemetry.NewRegistry(), shutdown: shutdown}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Loading data...")
	g, rep, err := dataset.Load(ctx, dataset.Dir(cfg.Data.Root, cfg.Data.Directory), dataset.WithLogger(log))
	if err != nil {
		e.close(ctx)
		return nil, err
	}
	fmt.Fprintln(out, "Data loaded.")
	log.Info("dataset ready",
		zap.String("directory", cfg.Data.Directory),
		zap.Int("people", rep.People),
		zap.Int("movies", rep.Movies),
		zap.Int("stars", rep.Stars),
		zap.Int("skipped_stars", rep.SkippedStars),
	)

	svc, err := service.New(g,
		service.WithLogger(log),
		service.WithRegisterer(e.registry),
		service.WithCacheSize(cfg.Cache.Size),
		service.WithLimits(service.Limits{
			MaxExplored: cfg.Search.MaxExplored,
			MaxDepth:    cfg.Search.MaxDepth,
			Timeout:     cfg.Search.Timeout,
		}),
	)
	if err != nil {
		e.close(ctx)
		return nil, err
	}
	e.graph, e.svc = g, svc

	return e, nil
}

func runSearch(cmd *cobra.Command, f rootFlags, args []string) error {
	e, err := setup(cmd, f, args)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	defer e.close(ctx)

	resolver := resolve.New(e.graph, resolve.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout()))
	source, err := lookup(ctx, resolver, f.source)
	if err != nil {
		return notFound(cmd, err)
	}
	target, err := lookup(ctx, resolver, f.target)
	if err != nil {
		return notFound(cmd, err)
	}

	res, err := e.svc.FindShortestPath(ctx, source, target)
	if err != nil {
		return err
	}

	return render.New(cmd.OutOrStdout(), e.graph).Print(source, res)
}

// lookup resolves name, prompting for it when empty.
func lookup(ctx context.Context, r *resolve.Resolver, name string) (string, error) {
	if name == "" {
		return r.Ask(ctx, "Name")
	}

	return r.Resolve(ctx, name)
}

// notFound prints the user-facing message for resolution failures.
func notFound(cmd *cobra.Command, err error) error {
	if errors.Is(err, resolve.ErrNameNotFound) || errors.Is(err, resolve.ErrAmbiguousName) {
		fmt.Fprintln(cmd.ErrOrStderr(), "Person not found.")
		return fmt.Errorf("%w: %v", errReported, err)
	}

	return err
}
