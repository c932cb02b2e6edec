package healthlogs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"

	"github.com/FallThunder/rajuTracker/models"
)

// ServerTimestampLayout is ISO-8601 with microseconds and a numeric UTC offset.
const ServerTimestampLayout = "2006-01-02T15:04:05.000000-07:00"

var ErrStoreFailed = errors.New("failed to store health log")

// PutItemAPI is the part of *dynamodb.Client the store needs.
type PutItemAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

type LogStore struct {
	Client      PutItemAPI
	Collections Collections
	Logger      *slog.Logger

	// Now and NewID default to the wall clock and random UUIDs.
	Now   func() time.Time
	NewID func() string
}

func NewLogStore(client PutItemAPI, collections Collections, logger *slog.Logger) (*LogStore, error) {
	if client == nil {
		return nil, fmt.Errorf("dynamodb client is not initialized")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &LogStore{
		Client:      client,
		Collections: collections,
		Logger:      logger,
		Now:         time.Now,
		NewID:       uuid.NewString,
	}, nil
}

// NewDocument builds the item for a validated log. Only known fields are kept.
func (store *LogStore) NewDocument(log models.HealthLog) models.LogDocument {
	doc := models.LogDocument{
		ID:              store.newID(),
		LogType:         log.LogType,
		Timestamp:       log.Timestamp,
		Date:            log.Date,
		ServerTimestamp: store.now().UTC().Format(ServerTimestampLayout),
	}

	if log.LogType == models.LogTypeSentiment {
		doc.Status = log.Status
	}

	return doc
}

// SaveLog writes the log as a new document and returns its id.
func (store *LogStore) SaveLog(ctx context.Context, log models.HealthLog) (string, error) {
	tableName, err := store.Collections.Resolve(log.LogType)
	if err != nil {
		return "", err
	}

	doc := store.NewDocument(log)

	item, err := attributevalue.MarshalMap(doc)
	if err != nil {
		store.Logger.Error("Error marshalling health log", "error", err, "log_type", log.LogType)
		return "", fmt.Errorf("%w: marshal document: %v", ErrStoreFailed, err)
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(tableName),
		Item:      item,
		// new entries only, an id collision must never overwrite a log
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	}

	if _, err := store.Client.PutItem(ctx, input); err != nil {
		store.Logger.Error("Error storing health log", "error", err, "log_type", log.LogType, "table", tableName)
		return "", fmt.Errorf("%w: %w", ErrStoreFailed, err)
	}

	store.Logger.Info("Stored health log", "log_type", log.LogType, "id", doc.ID, "table", tableName)
	return doc.ID, nil
}

func (store *LogStore) now() time.Time {
	if store.Now == nil {
		return time.Now()
	}
	return store.Now()
}

func (store *LogStore) newID() string {
	if store.NewID == nil {
		return uuid.NewString()
	}
	return store.NewID()
}
