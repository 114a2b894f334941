package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/at-ishikawa/glossa/internal/bootstrap"
	"github.com/at-ishikawa/glossa/internal/config"
	"github.com/at-ishikawa/glossa/internal/dictionary/freedictionary"
	"github.com/at-ishikawa/glossa/internal/history"
	"github.com/at-ishikawa/glossa/internal/lookup"
	"github.com/at-ishikawa/glossa/internal/server"
	"github.com/at-ishikawa/glossa/internal/storage"
)

var configFile string

func main() {
	var debugMode bool
	rootCmd := &cobra.Command{
		Use:           "glossa-server",
		Short:         "Glossa lookup HTTP server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode)
			return run(cmd.Context())
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug mode")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}
	app := bootstrap.New(time.Duration(cfg.Server.ShutdownTimeoutSeconds) * time.Second)

	backend, err := storage.Open(ctx, cfg.Storage, cfg.Database)
	if err != nil {
		return fmt.Errorf("storage.Open() > %w", err)
	}
	app.AddShutdownHook("storage", func(ctx context.Context) error {
		return backend.Close()
	})

	recorder := history.NewRecorder(backend.Store, history.Setting{Enabled: cfg.History.DefaultEnabled})
	client := freedictionary.NewClient(cfg.Dictionary.Endpoint, cfg.Dictionary.Timeout())
	service := lookup.NewService(client, recorder)
	app.AddShutdownHook("history writes", service.Shutdown)

	var checks []server.HealthCheck
	if backend.Ping != nil {
		checks = append(checks, server.HealthCheck{Name: string(backend.Name), Check: backend.Ping})
	}
	handler := server.Chain(
		h2c.NewHandler(server.NewHandler(service, recorder, checks...), &http2.Server{}),
		server.RequestID,
		server.AccessLog,
		server.CORS(cfg.Server.CORS.AllowedOrigins),
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	app.AddShutdownHook("http server", srv.Shutdown)

	return app.Run(ctx, func(ctx context.Context) error {
		slog.Default().Info("starting server", "addr", srv.Addr, "storage", backend.Name)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}

// setupLogger configures the default logger based on debug mode
func setupLogger(debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})),
	)
}
