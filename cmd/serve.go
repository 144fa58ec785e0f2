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

	"github.com/spf13/cobra"

	"github.com/Divyanshgupta04/lern-deployment/internal/api"
	"github.com/Divyanshgupta04/lern-deployment/internal/generate"
	"github.com/Divyanshgupta04/lern-deployment/internal/llm"
	"github.com/Divyanshgupta04/lern-deployment/internal/store"
)

var (
	serveAddr   string
	serveDBPath string
	serveNoDB   bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().StringVar(&serveDBPath, "db", "", "SQLite path for usage events (default: user state dir)")
	serveCmd.Flags().BoolVar(&serveNoDB, "no-db", false, "disable usage-event recording")
	rootCmd.AddCommand(serveCmd)
}

func runServe(ctx context.Context) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration: %w", err)
	}

	var events store.EventRepo
	if !serveNoDB {
		dbPath := serveDBPath
		if dbPath == "" {
			var err error
			dbPath, err = store.DefaultDBPath()
			if err != nil {
				return err
			}
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening event store: %w", err)
		}
		defer st.Close()
		events = st.EventRepo()
		logger.Info("usage events enabled", "path", dbPath)
	}

	provider, err := llm.NewProvider(ctx, cfg, events)
	if err != nil {
		return err
	}

	svc := generate.NewService(provider, logger)
	srv := &http.Server{
		Addr:              serveAddr,
		Handler:           api.NewServer(svc, events, logger).Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", serveAddr, "provider", cfg.Provider, "model", provider.ModelID())
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
