package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/FallThunder/rajuTracker/internal/config"
	"github.com/FallThunder/rajuTracker/internal/healthlogs"
	"github.com/FallThunder/rajuTracker/internal/ingestion"
	"github.com/FallThunder/rajuTracker/pkg/db"
	"github.com/FallThunder/rajuTracker/pkg/logger"
)

var (
	log      *slog.Logger
	logStore *healthlogs.LogStore
)

func init() {
	cfg := config.FromEnv()

	log = logger.InitLogger(cfg.LogLevel)
	log.Info("Health Logging: Cold Start")

	client, err := db.NewDynamoDBClient(context.Background(), cfg.DynamoDB.Endpoint)
	if err != nil {
		log.Error("Failed to initialize DynamoDB", "error", err)
		panic(err)
	}

	logStore, err = healthlogs.NewLogStore(client, healthlogs.CollectionsFromConfig(cfg.Tables), log)
	if err != nil {
		panic(fmt.Errorf("failed to init health log store: %w", err))
	}
}

func main() {
	// no scrape endpoint in Lambda, counters are only served by cmd/local-server
	service := &ingestion.Service{
		Logger: log,
		Store:  logStore,
	}

	lambda.Start(service.HandleRequest)
}
