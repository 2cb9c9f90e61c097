package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kshecodes/image-service/config"
	"github.com/kshecodes/image-service/internal/controller/restapi"
	"github.com/kshecodes/image-service/internal/infrastructure"
	infrakafka "github.com/kshecodes/image-service/internal/infrastructure/kafka"
	"github.com/kshecodes/image-service/internal/repo/persistent"
	"github.com/kshecodes/image-service/internal/usecase/image"
	"github.com/kshecodes/image-service/pkg/httpserver"
	"github.com/kshecodes/image-service/pkg/kafka/producer"
	"github.com/kshecodes/image-service/pkg/logger"
	"github.com/kshecodes/image-service/pkg/s3client"
)

func Run(cfg *config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Logger
	l := logger.New(cfg.Log.Level)

	// Repository

	// s3
	s3Ctx, s3Cancel := context.WithTimeout(ctx, cfg.AWS.CfgLoadTimeout)
	defer s3Cancel()
	s3c, err := s3client.New(s3Ctx, cfg.AWS.Region, cfg.S3.Bucket, s3Options(cfg)...)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - s3client.New: %w", err))
	}

	// catalog
	catalog, closeCatalog, err := newCatalog(ctx, cfg, l)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - newCatalog: %w", err))
	}
	defer closeCatalog()

	// Events
	var events infrastructure.EventsSender = infrastructure.NopEventsSender{}
	if cfg.Kafka.Enabled {
		kafkaProducer, err := producer.New(ctx, cfg.Kafka.Brokers, cfg.Kafka.Topic,
			producer.ConnAttempts(cfg.Kafka.ConnAttempts),
			producer.ConnTimeout(cfg.Kafka.ConnTimeout),
			producer.WriteTimeout(cfg.Kafka.WriteTimeout),
		)
		if err != nil {
			l.Fatal(fmt.Errorf("app - Run - producer.New: %w", err))
		}
		events = infrakafka.NewEventProducer(kafkaProducer)
	}

	// Use-Case
	imageUseCase := image.New(
		persistent.NewObjectRepo(s3c, cfg.S3.Bucket),
		catalog,
		events,
		l,
		image.PresignTTL(cfg.S3.PresignTTL()),
		image.CallTimeout(cfg.Store.CallTimeout),
		image.UploadTimeout(cfg.Store.UploadTimeout),
	)

	// HTTP Server
	httpServer := httpserver.New(l,
		httpserver.Port(cfg.HTTP.Port),
		httpserver.Prefork(cfg.HTTP.UsePreforkMode),
		httpserver.ReadTimeout(cfg.HTTP.ReadTimeout),
		httpserver.WriteTimeout(cfg.HTTP.WriteTimeout),
		httpserver.BodyLimit(cfg.HTTP.BodyLimit),
		httpserver.ShutdownTimeout(cfg.HTTP.ShutdownTimeout),
	)
	restapi.NewRouter(httpServer.App, imageUseCase, l)

	// Start Components
	httpServer.Start()

	// Waiting Signal
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		l.Info("app - Run - signal: %s", s.String())
	case err = <-httpServer.Notify():
		l.Error(fmt.Errorf("app - Run - httpServer.Notify: %w", err))
	}

	// Shutdown
	err = httpServer.Shutdown()
	if err != nil {
		l.Error(fmt.Errorf("app - Run - httpServer.Shutdown: %w", err))
	}

	err = events.Close()
	if err != nil {
		l.Error(fmt.Errorf("app - Run - events.Close: %w", err))
	}
}

func s3Options(cfg *config.Config) []s3client.Option {
	opts := []s3client.Option{
		s3client.UsePathStyle(cfg.S3.UsePathStyle),
		s3client.ConnAttempts(cfg.AWS.ConnAttempts),
		s3client.ConnTimeout(cfg.AWS.ConnTimeout),
	}

	if cfg.AWS.Endpoint != "" {
		opts = append(opts, s3client.Endpoint(cfg.AWS.Endpoint))
	}

	if cfg.AWS.AccessKey != "" {
		opts = append(opts, s3client.StaticCredentials(cfg.AWS.AccessKey, cfg.AWS.SecretKey))
	}

	return opts
}
