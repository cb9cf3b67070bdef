package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/lightlink-network/dai-tracker/api"
	"github.com/lightlink-network/dai-tracker/explorer"
	"github.com/lightlink-network/dai-tracker/graphql"
	"github.com/lightlink-network/dai-tracker/metrics"
	"github.com/lightlink-network/dai-tracker/tracker"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus"
)

// Version will be set at build time
var Version = "development"

func main() {
	// the environment alone is enough, .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	Logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(Logger)

	Logger.Info("Starting dai-tracker ("+Version+")",
		"Go Version", runtime.Version(),
		"Operating System", runtime.GOOS,
		"Architecture", runtime.GOARCH)

	cfg, err := loadConfigFromEnv()
	if err != nil {
		log.Fatal(err)
	}

	links, err := explorer.New(cfg.ExplorerURL)
	if err != nil {
		log.Fatal(err)
	}

	m := metrics.NewMetrics(prometheus.DefaultRegisterer)

	client, err := graphql.NewClient(graphql.ClientOpts{
		Endpoint: cfg.GraphQLEndpoint,
		Logger:   Logger.With("component", "graphql"),
		Timeout:  cfg.FetchTimeout,
	})
	if err != nil {
		log.Fatalf("failed to create graphql client: %v", err)
	}

	t, err := tracker.NewTracker(tracker.TrackerOpts{
		Source:  client,
		Logger:  Logger.With("component", "tracker"),
		Metrics: m,
		First:   cfg.First,
	})
	if err != nil {
		log.Fatalf("failed to create tracker: %v", err)
	}

	server, err := api.NewServer(api.ServerOpts{
		Logger:   Logger.With("component", "api-server"),
		Port:     cfg.Port,
		View:     t,
		Explorer: links,
		Metrics:  m,
	})
	if err != nil {
		log.Fatalf("failed to create api server: %v", err)
	}

	// Create context that will be canceled on SIGINT or SIGTERM
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// The fetch runs once; its outcome stays until the process exits
	go func() {
		_ = t.Run(ctx)
	}()

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.StartServer()
	}()

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("server error: %v", err)
		}
	case <-ctx.Done():
		Logger.Info("Shutting down gracefully...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			Logger.Error("error during shutdown", "error", err)
		}
	}
}
