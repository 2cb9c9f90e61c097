package image

import (
	"context"
	"strings"
	"time"

	"github.com/kshecodes/image-service/internal/entity"
)

func (uc *ImageUseCase) newImage(
	imageID string,
	objectKey string,
	userID string,
	contentType string,
	title *string,
	description *string,
	tags []string,
	status entity.Status,
) *entity.Image {
	if tags == nil {
		tags = []string{}
	}

	now := uc.now().UTC().Truncate(time.Second)

	return &entity.Image{
		ID:          imageID,
		UserID:      userID,
		Bucket:      uc.objects.Bucket(),
		ObjectKey:   objectKey,
		ContentType: contentType,
		Title:       title,
		Description: description,
		Tags:        tags,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// parseTags splits a comma-joined tag list, trimming blanks. Order and duplicates are kept.
func parseTags(raw string) []string {
	tags := []string{}

	for _, part := range strings.Split(raw, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}

	return tags
}

// publish is best effort: a lost event is logged and never fails the operation.
func (uc *ImageUseCase) publish(ctx context.Context, t entity.EventType, image *entity.Image) {
	event := entity.NewEvent(t, image, uc.now())

	err := uc.call(context.WithoutCancel(ctx), uc.callTimeout, func(ctx context.Context) error {
		return uc.events.SendEvents(ctx, []*entity.Event{event})
	})
	if err != nil {
		uc.logger.Warn("ImageUseCase - publish - %s event for image %s not sent: %v", t, image.ID, err)
	}
}

func (uc *ImageUseCase) expiresIn() int {
	return int(uc.presignTTL / time.Second)
}
