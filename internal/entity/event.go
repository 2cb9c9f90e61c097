package entity

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	ImageCreated EventType = "image.created"
	ImageDeleted EventType = "image.deleted"
)

// Event describes a completed lifecycle step of one image.
type Event struct {
	ID         uuid.UUID `json:"event_id"`
	Type       EventType `json:"type"`
	ImageID    string    `json:"image_id"`
	UserID     string    `json:"user_id"`
	ObjectKey  string    `json:"object_key"`
	Status     Status    `json:"status,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewEvent(t EventType, image *Image, at time.Time) *Event {
	return &Event{
		ID:         uuid.New(),
		Type:       t,
		ImageID:    image.ID,
		UserID:     image.UserID,
		ObjectKey:  image.ObjectKey,
		Status:     image.Status,
		OccurredAt: at.UTC(),
	}
}
