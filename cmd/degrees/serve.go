package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/degrees/httpapi"
	"github.com/katalvlaran/degrees/telemetry"
)

const shutdownGrace = 10 * time.Second

func newServeCmd(root *rootFlags) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve [directory]",
		Short: "Serve the search API over HTTP",
		Args:  usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, *root, args)
			if err != nil {
				return err
			}
			defer e.close(context.Background())
			if addr != "" {
				e.cfg.Server.Addr = addr
			}

			ln, err := net.Listen("tcp", e.cfg.Server.Addr)
			if err != nil {
				return fmt.Errorf("serve: %w", err)
			}
			return serve(cmd.Context(), ln, e)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")

	return cmd
}

// serve runs the API on ln until ctx is done, then drains connections.
func serve(ctx context.Context, ln net.Listener, e *env) error {
	srv := &http.Server{
		Handler: httpapi.NewRouter(e.svc,
			httpapi.WithLogger(e.log),
			httpapi.WithMetrics(telemetry.MetricsHandler(e.registry)),
		),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		e.log.Info("listening", zap.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("serve: shutdown: %w", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	e.log.Info("server stopped")

	return nil
}
