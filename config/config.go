package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	envPrefix = "IMAGE_SERVICE_"

	CatalogDynamoDB = "dynamodb"
	CatalogPostgres = "postgres"
)

type (
	Config struct {
		HTTP    HTTP
		Log     Log
		AWS     AWS
		S3      S3
		Catalog Catalog
		PG      PG
		Kafka   Kafka
		Store   Store
	}

	HTTP struct {
		Port            string        `env:"HTTP_PORT" envDefault:"8080"`
		UsePreforkMode  bool          `env:"HTTP_USE_PREFORK_MODE" envDefault:"false"`
		BodyLimit       int           `env:"HTTP_BODY_LIMIT" envDefault:"10485760"`
		ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"30s"`
		WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
		ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	}

	Log struct {
		Level string `env:"LOG_LEVEL" envDefault:"info"`
	}

	AWS struct {
		Region         string        `env:"AWS_REGION" envDefault:"us-east-1"`
		Endpoint       string        `env:"AWS_ENDPOINT"`
		AccessKey      string        `env:"AWS_ACCESS_KEY"`
		SecretKey      string        `env:"AWS_SECRET_KEY"`
		CfgLoadTimeout time.Duration `env:"AWS_CFG_LOAD_TIMEOUT" envDefault:"10s"`
		ConnAttempts   int           `env:"AWS_CONN_ATTEMPTS" envDefault:"10"`
		ConnTimeout    time.Duration `env:"AWS_CONN_TIMEOUT" envDefault:"1s"`
	}

	S3 struct {
		Bucket            string `env:"IMAGES_BUCKET" envDefault:"image-service-bucket"`
		UsePathStyle      bool   `env:"S3_USE_PATH_STYLE" envDefault:"false"`
		PresignTTLSeconds int    `env:"PRESIGN_TTL_SECONDS" envDefault:"900"`
	}

	Catalog struct {
		Backend     string `env:"CATALOG_BACKEND" envDefault:"dynamodb"`
		Table       string `env:"IMAGES_TABLE" envDefault:"Images"`
		OwnerIndex  string `env:"IMAGES_OWNER_INDEX" envDefault:"GSI1"`
		CreateTable bool   `env:"DYNAMODB_CREATE_TABLE" envDefault:"false"`
	}

	PG struct {
		URL          string        `env:"PG_URL"`
		PoolMax      int           `env:"PG_POOL_MAX" envDefault:"10"`
		Migrate      bool          `env:"PG_MIGRATE" envDefault:"true"`
		ConnAttempts int           `env:"PG_CONN_ATTEMPTS" envDefault:"10"`
		ConnTimeout  time.Duration `env:"PG_CONN_TIMEOUT" envDefault:"1s"`
	}

	Kafka struct {
		Enabled      bool          `env:"KAFKA_ENABLED" envDefault:"false"`
		Brokers      []string      `env:"KAFKA_BROKERS"`
		Topic        string        `env:"KAFKA_TOPIC" envDefault:"image-events"`
		ConnAttempts int           `env:"KAFKA_CONN_ATTEMPTS" envDefault:"10"`
		ConnTimeout  time.Duration `env:"KAFKA_CONN_TIMEOUT" envDefault:"1s"`
		WriteTimeout time.Duration `env:"KAFKA_WRITE_TIMEOUT" envDefault:"5s"`
	}

	Store struct {
		CallTimeout   time.Duration `env:"STORE_CALL_TIMEOUT" envDefault:"5s"`
		UploadTimeout time.Duration `env:"STORE_UPLOAD_TIMEOUT" envDefault:"60s"`
	}
)

func New() (*Config, error) {
	cfg := &Config{}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	return cfg, nil
}

// PresignTTL is the lifetime of every signed upload and download URL.
func (s S3) PresignTTL() time.Duration {
	return time.Duration(s.PresignTTLSeconds) * time.Second
}

func (c *Config) validate() error {
	var errList []error

	if c.S3.PresignTTLSeconds <= 0 {
		errList = append(errList, errors.New("PRESIGN_TTL_SECONDS must be positive"))
	}

	if c.S3.Bucket == "" {
		errList = append(errList, errors.New("IMAGES_BUCKET is required"))
	}

	if c.Catalog.Table == "" {
		errList = append(errList, errors.New("IMAGES_TABLE is required"))
	}

	switch c.Catalog.Backend {
	case CatalogDynamoDB:
		if c.Catalog.OwnerIndex == "" {
			errList = append(errList, errors.New("IMAGES_OWNER_INDEX is required for the dynamodb catalog"))
		}
	case CatalogPostgres:
		if c.PG.URL == "" {
			errList = append(errList, errors.New("PG_URL is required for the postgres catalog"))
		}
	default:
		errList = append(errList, fmt.Errorf("unknown CATALOG_BACKEND %q", c.Catalog.Backend))
	}

	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		errList = append(errList, errors.New("KAFKA_BROKERS is required when KAFKA_ENABLED is set"))
	}

	if c.AWS.ConnAttempts <= 0 || c.PG.ConnAttempts <= 0 || c.Kafka.ConnAttempts <= 0 {
		errList = append(errList, errors.New("connect attempts must be positive"))
	}

	if c.HTTP.ShutdownTimeout <= 0 || c.Kafka.WriteTimeout <= 0 {
		errList = append(errList, errors.New("HTTP_SHUTDOWN_TIMEOUT and KAFKA_WRITE_TIMEOUT must be positive"))
	}

	if c.Store.CallTimeout <= 0 || c.Store.UploadTimeout <= 0 {
		errList = append(errList, errors.New("store timeouts must be positive"))
	}

	return errors.Join(errList...)
}
