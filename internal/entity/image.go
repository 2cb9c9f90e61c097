package entity

import (
	"fmt"
	"time"
)

// TimestampLayout is the catalog's created_at/updated_at format. created_at is the sort
// key of the owner index, so values must stay UTC, second precision and lexicographically sortable.
const TimestampLayout = "2006-01-02T15:04:05Z"

type Image struct {
	ID     string `json:"image_id"`
	UserID string `json:"user_id"`

	Bucket    string `json:"bucket"`
	ObjectKey string `json:"object_key"`

	ContentType string   `json:"content_type"`
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Tags        []string `json:"tags"`
	Status      Status   `json:"status"` // PENDING, AVAILABLE

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasTag reports whether tag is an exact element of the image's tags.
func (i *Image) HasTag(tag string) bool {
	for _, t := range i.Tags {
		if t == tag {
			return true
		}
	}

	return false
}

// ObjectKey is the blob key of an image: images/{userID}/{imageID}.
func ObjectKey(userID, imageID string) string {
	return fmt.Sprintf("images/%s/%s", userID, imageID)
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(TimestampLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("entity - ParseTimestamp: %w", err)
	}

	return t, nil
}
