package db

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

var (
	client  *dynamodb.Client
	initErr error
	once    sync.Once // one client per execution environment
)

// NewDynamoDBClient creates the shared DynamoDB client on first use and
// returns the same client afterwards. endpoint overrides the AWS endpoint
// (DynamoDB Local); pass "" for the default.
func NewDynamoDBClient(ctx context.Context, endpoint string) (*dynamodb.Client, error) {
	once.Do(func() {
		// failed writes are reported straight back to the caller, no SDK retries
		cfg, err := config.LoadDefaultConfig(ctx,
			config.WithRetryer(func() aws.Retryer { return aws.NopRetryer{} }),
		)
		if err != nil {
			initErr = fmt.Errorf("unable to load SDK config: %w", err)
			return
		}

		client = dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
			if endpoint != "" {
				o.BaseEndpoint = aws.String(endpoint)
			}
		})
	})

	if initErr != nil {
		return nil, initErr
	}
	return client, nil
}
