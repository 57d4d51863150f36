package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mouse-blink/modegen/internal/controller"
	m "github.com/mouse-blink/modegen/internal/model"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

// serveCmd represents the serve command.
var serveCmd = newServeCmd()
var serveAddrFlag string
var serveOriginsFlag []string
var serveRateFlag float64
var serveBurstFlag int

// serveHTTP runs handler on addr until ctx is done.
var serveHTTP = listenAndServe

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the generated script over HTTP",
		Long: `Start a preview server:
  GET  /mode.js    script generated from the config file, on every request
  POST /generate   script generated from the JSON config in the body
  GET  /healthz    liveness`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			handler := controller.NewPreviewRouter(workflow, controller.PreviewConfig{
				Config:            m.Path(configFlag),
				AllowedOrigins:    serveOriginsFlag,
				RequestsPerSecond: serveRateFlag,
				Burst:             serveBurstFlag,
			}, logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serveHTTP(ctx, serveAddrFlag, handler)
		},
	}
	cmd.Flags().StringVarP(&serveAddrFlag, "addr", "a", "127.0.0.1:8080", "listen address")
	cmd.Flags().StringSliceVar(&serveOriginsFlag, "allow-origin", nil, "CORS allowed origins (default any)")
	cmd.Flags().Float64Var(&serveRateFlag, "rate", 5, "POST /generate requests per second per client, 0 disables the limit")
	cmd.Flags().IntVar(&serveBurstFlag, "burst", 10, "POST /generate burst per client")

	return cmd
}

func listenAndServe(ctx context.Context, addr string, handler http.Handler) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		logger.Info("preview server listening", slog.String("addr", addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	logger.Info("preview server stopped")

	return nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
