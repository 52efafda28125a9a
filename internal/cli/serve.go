package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/example/storefinder/internal/httpserver"
	"github.com/example/storefinder/internal/wire"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the store directory as a JSON API",
		Long: `Load the store data and serve it over HTTP:

  GET  /api/stores?q=&city=&district=
  GET  /api/cities
  GET  /api/cities/{city}/districts
  POST /api/reload
  GET  /healthz
  GET  /metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if addr == "" {
				addr = wire.Config().ListenAddr
			}
			logger := wire.Logger()

			if _, err := wire.DirectoryService().Load(ctx); err != nil {
				logger.WarnContext(ctx, "serving empty directory until reload succeeds")
			}

			srv := httpserver.New(addr, wire.HTTPHandler())

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				logger.InfoContext(gctx, "storefinder listening", "addr", addr)
				if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("server error: %w", err)
				}
				return nil
			})
			g.Go(func() error {
				<-gctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					return fmt.Errorf("graceful shutdown failed: %w", err)
				}
				return nil
			})

			return g.Wait()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config, :8080)")

	return cmd
}
