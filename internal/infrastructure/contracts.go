package infrastructure

import (
	"context"

	"github.com/kshecodes/image-service/internal/entity"
)

//go:generate mockgen -source=contracts.go -destination=../usecase/image/mocks_infrastructure_test.go -package=image_test

type (
	EventsSender interface {
		SendEvents(ctx context.Context, events []*entity.Event) error
		Close() error
	}
)

// NopEventsSender drops every event. It is used when no broker is configured.
type NopEventsSender struct{}

func (NopEventsSender) SendEvents(context.Context, []*entity.Event) error { return nil }

func (NopEventsSender) Close() error { return nil }
