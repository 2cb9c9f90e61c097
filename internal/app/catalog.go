package app

import (
	"context"
	"fmt"

	"github.com/kshecodes/image-service/config"
	"github.com/kshecodes/image-service/internal/repo"
	"github.com/kshecodes/image-service/internal/repo/persistent"
	"github.com/kshecodes/image-service/pkg/dynamodbclient"
	"github.com/kshecodes/image-service/pkg/logger"
	"github.com/kshecodes/image-service/pkg/postgres"
)

// newCatalog connects the configured catalog backend. The returned func releases it.
func newCatalog(ctx context.Context, cfg *config.Config, l logger.Interface) (repo.CatalogStore, func(), error) {
	switch cfg.Catalog.Backend {
	case config.CatalogPostgres:
		return newPostgresCatalog(cfg, l)
	default:
		return newDynamoDBCatalog(ctx, cfg, l)
	}
}

func newDynamoDBCatalog(ctx context.Context, cfg *config.Config, l logger.Interface) (repo.CatalogStore, func(), error) {
	opts := []dynamodbclient.Option{
		dynamodbclient.ConnAttempts(cfg.AWS.ConnAttempts),
		dynamodbclient.ConnTimeout(cfg.AWS.ConnTimeout),
	}
	if cfg.AWS.Endpoint != "" {
		opts = append(opts, dynamodbclient.Endpoint(cfg.AWS.Endpoint))
	}
	if cfg.AWS.AccessKey != "" {
		opts = append(opts, dynamodbclient.StaticCredentials(cfg.AWS.AccessKey, cfg.AWS.SecretKey))
	}

	connCtx, connCancel := context.WithTimeout(ctx, cfg.AWS.CfgLoadTimeout)
	defer connCancel()

	ddb, err := dynamodbclient.New(connCtx, cfg.AWS.Region, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("dynamodbclient.New: %w", err)
	}

	catalog := persistent.NewImageCatalogDynamoDB(ddb, cfg.Catalog.Table, cfg.Catalog.OwnerIndex)

	if cfg.Catalog.CreateTable {
		created, err := catalog.EnsureTable(ctx, cfg.AWS.CfgLoadTimeout)
		if err != nil {
			return nil, nil, fmt.Errorf("catalog.EnsureTable: %w", err)
		}
		if created {
			l.Info("app - Run - created dynamodb table %s", cfg.Catalog.Table)
		}
	}

	return catalog, func() {}, nil
}

func newPostgresCatalog(cfg *config.Config, l logger.Interface) (repo.CatalogStore, func(), error) {
	if cfg.PG.Migrate {
		if err := persistent.MigratePostgres(cfg.PG.URL); err != nil {
			return nil, nil, fmt.Errorf("persistent.MigratePostgres: %w", err)
		}
		l.Info("app - Run - postgres migrations applied")
	}

	pg, err := postgres.New(cfg.PG.URL,
		postgres.MaxPoolSize(cfg.PG.PoolMax),
		postgres.ConnAttempts(cfg.PG.ConnAttempts),
		postgres.ConnTimeout(cfg.PG.ConnTimeout),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("postgres.New: %w", err)
	}

	return persistent.NewImageCatalogPostgres(pg), pg.Close, nil
}
