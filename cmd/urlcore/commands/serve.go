package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jongio/browser-core/logutil"
	"github.com/jongio/browser-core/metrics"
	"github.com/jongio/browser-core/server"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

func newServeCommand() *cobra.Command {
	var (
		addr string
		opts server.Options
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the parser over HTTP with Prometheus metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, metrics.CreateServer(addr, server.NewHandler(opts)))
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	cmd.Flags().IntVar(&opts.RateLimit, "rate-limit", 0, "Max /parse requests per second (0 disables)")
	return cmd
}

// runServer serves until ctx is done, then shuts down gracefully.
func runServer(ctx context.Context, srv *http.Server) error {
	log := logutil.NewLogger("serve")

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
