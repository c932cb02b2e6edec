package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/FallThunder/rajuTracker/internal/config"
	"github.com/FallThunder/rajuTracker/internal/healthlogs"
	"github.com/FallThunder/rajuTracker/internal/ingestion"
	"github.com/FallThunder/rajuTracker/internal/metrics"
	"github.com/FallThunder/rajuTracker/pkg/db"
	"github.com/FallThunder/rajuTracker/pkg/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		addr       string
	)

	cmd := &cobra.Command{
		Use:          "local-server",
		Short:        "Run the health logging function behind a local HTTP server",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.ListenAddress = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return run(ctx, cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides the config file)")
	return cmd
}

func run(ctx context.Context, cfg *config.Config) error {
	log := logger.InitLogger(cfg.LogLevel)

	client, err := db.NewDynamoDBClient(ctx, cfg.DynamoDB.Endpoint)
	if err != nil {
		return fmt.Errorf("init dynamodb: %w", err)
	}

	store, err := healthlogs.NewLogStore(client, healthlogs.CollectionsFromConfig(cfg.Tables), log)
	if err != nil {
		return fmt.Errorf("init health log store: %w", err)
	}

	m := metrics.New()
	service := &ingestion.Service{Logger: log, Store: store, Metrics: m}

	srv := &http.Server{
		Addr:         cfg.Server.ListenAddress,
		Handler:      newMux(service, m),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("Local server listening", "addr", cfg.Server.ListenAddress,
		"medication_table", cfg.Tables.Medication, "sentiment_table", cfg.Tables.Sentiment)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func newMux(service *ingestion.Service, m *metrics.Metrics) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})
	mux.Handle("/", service.HTTPHandler())
	return mux
}
