package response

import "github.com/kshecodes/image-service/internal/entity"

type Error struct {
	Error string `json:"error"`
}

type Health struct {
	Status string `json:"status"`
}

type PresignedUpload struct {
	ImageID   string `json:"image_id"`
	UploadURL string `json:"upload_url"`
	ObjectKey string `json:"object_key"`
	ExpiresIn int    `json:"expires_in"`
}

type UploadedImage struct {
	ImageID   string `json:"image_id"`
	ObjectKey string `json:"object_key"`
}

type ImageMetadata struct {
	ContentType string   `json:"content_type"`
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Tags        []string `json:"tags"`
	CreatedAt   string   `json:"created_at"`
	Status      string   `json:"status"`
}

type Image struct {
	ImageID     string        `json:"image_id"`
	DownloadURL string        `json:"download_url"`
	ExpiresIn   int           `json:"expires_in"`
	Metadata    ImageMetadata `json:"metadata"`
}

// ImageSummary is one listing item: the owner index projection.
type ImageSummary struct {
	ImageID   string   `json:"image_id"`
	UserID    string   `json:"user_id"`
	Title     *string  `json:"title"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"created_at"`
}

type ImageList struct {
	Items     []ImageSummary `json:"items"`
	NextToken *string        `json:"next_token"`
}

func NewImageMetadata(image *entity.Image) ImageMetadata {
	return ImageMetadata{
		ContentType: image.ContentType,
		Title:       image.Title,
		Description: image.Description,
		Tags:        tagsOrEmpty(image.Tags),
		CreatedAt:   entity.FormatTimestamp(image.CreatedAt),
		Status:      string(image.Status),
	}
}

func NewImageList(items []*entity.Image, nextToken string) ImageList {
	list := ImageList{Items: make([]ImageSummary, 0, len(items))}

	for _, image := range items {
		list.Items = append(list.Items, ImageSummary{
			ImageID:   image.ID,
			UserID:    image.UserID,
			Title:     image.Title,
			Tags:      tagsOrEmpty(image.Tags),
			CreatedAt: entity.FormatTimestamp(image.CreatedAt),
		})
	}

	if nextToken != "" {
		list.NextToken = &nextToken
	}

	return list
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}

	return tags
}
