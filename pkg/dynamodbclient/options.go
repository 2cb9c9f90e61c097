package dynamodbclient

import "time"

type Option func(c *DynamoDBClient)

func ConnAttempts(attempts int) Option {
	return func(c *DynamoDBClient) {
		c.connAttempts = attempts
	}
}

func ConnTimeout(timeout time.Duration) Option {
	return func(c *DynamoDBClient) {
		c.connTimeout = timeout
	}
}

// Endpoint points the client at DynamoDB Local or localstack.
func Endpoint(endpoint string) Option {
	return func(c *DynamoDBClient) {
		c.endpoint = endpoint
	}
}

func StaticCredentials(accessKey, secretKey string) Option {
	return func(c *DynamoDBClient) {
		c.accessKey = accessKey
		c.secretKey = secretKey
	}
}
