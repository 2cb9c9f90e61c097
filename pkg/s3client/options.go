package s3client

import "time"

type Option func(c *S3Client)

func ConnAttempts(attempts int) Option {
	return func(c *S3Client) {
		c.connAttempts = attempts
	}
}

func ConnTimeout(timeout time.Duration) Option {
	return func(c *S3Client) {
		c.connTimeout = timeout
	}
}

// Endpoint overrides the AWS endpoint, e.g. for MinIO or localstack.
func Endpoint(endpoint string) Option {
	return func(c *S3Client) {
		c.endpoint = endpoint
	}
}

// StaticCredentials pins the access key pair. Without it the default credential chain is used.
func StaticCredentials(accessKey, secretKey string) Option {
	return func(c *S3Client) {
		c.accessKey = accessKey
		c.secretKey = secretKey
	}
}

func UsePathStyle(use bool) Option {
	return func(c *S3Client) {
		c.usePathStyle = use
	}
}
