package request

import "github.com/kshecodes/image-service/internal/dto"

type PresignUpload struct {
	UserID      string   `json:"user_id"`
	ContentType string   `json:"content_type"`
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Tags        []string `json:"tags"`
}

func (r PresignUpload) ToDTO() dto.PresignUpload {
	return dto.PresignUpload{
		UserID:      r.UserID,
		ContentType: r.ContentType,
		Title:       r.Title,
		Description: r.Description,
		Tags:        r.Tags,
	}
}
