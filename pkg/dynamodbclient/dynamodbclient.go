package dynamodbclient

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	_defaultConnAttempts = 10
	_defaultConnTimeout  = time.Second
)

type DynamoDBClient struct {
	connAttempts int
	connTimeout  time.Duration

	region    string
	endpoint  string
	accessKey string
	secretKey string

	Client *dynamodb.Client
}

func New(ctx context.Context, region string, opts ...Option) (*DynamoDBClient, error) {
	c := &DynamoDBClient{
		connAttempts: _defaultConnAttempts,
		connTimeout:  _defaultConnTimeout,
		region:       region,
	}

	for _, opt := range opts {
		opt(c)
	}

	var err error
	for c.connAttempts > 0 {
		err = c.connect(ctx)
		if err == nil {
			break
		}

		log.Printf("DynamoDB is trying to connect, attempts left: %d", c.connAttempts)

		time.Sleep(c.connTimeout)

		c.connAttempts--
	}

	if err != nil {
		return nil, fmt.Errorf("DynamoDBClient - New - connAttempts == 0: %w", err)
	}

	return c, nil
}

func (c *DynamoDBClient) connect(ctx context.Context) error {
	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(c.region)}
	if c.accessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.accessKey, c.secretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return fmt.Errorf("DynamoDBClient - config.LoadDefaultConfig: %w", err)
	}

	c.Client = dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if c.endpoint != "" {
			o.BaseEndpoint = aws.String(c.endpoint)
		}
	})

	// check connection; the images table itself may not exist yet
	_, err = c.Client.ListTables(ctx, &dynamodb.ListTablesInput{
		Limit: aws.Int32(1),
	})
	if err != nil {
		return fmt.Errorf("DynamoDBClient - c.Client.ListTables: %w", err)
	}

	return nil
}
