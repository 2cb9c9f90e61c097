package dto

import (
	"io"

	"github.com/kshecodes/image-service/internal/entity"
)

const (
	DefaultListLimit = 50
	MinListLimit     = 1
	MaxListLimit     = 200
)

// PresignUpload is the input of the deferred flow.
type PresignUpload struct {
	UserID      string   `json:"user_id" validate:"required,excludes=/"`
	ContentType string   `json:"content_type" validate:"required"`
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Tags        []string `json:"tags"`
}

type PresignedUpload struct {
	ImageID   string
	UploadURL string
	ObjectKey string
	ExpiresIn int
}

// DirectUpload is the input of the direct flow. Tags is the raw comma-joined form value.
type DirectUpload struct {
	UserID      string    `json:"user_id" validate:"required,excludes=/"`
	ContentType string    `json:"content_type" validate:"required"`
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Tags        string    `json:"tags"`
	Body        io.Reader `json:"file" validate:"-"`
	Size        int64     `json:"-"`
}

type UploadedImage struct {
	ImageID   string
	ObjectKey string
}

type ImageView struct {
	ImageID     string
	DownloadURL string
	ExpiresIn   int
	Image       *entity.Image
}

type ListImages struct {
	UserID      string `json:"user_id" validate:"required"`
	Tag         string `json:"tag"`
	CreatedFrom string `json:"created_from"`
	CreatedTo   string `json:"created_to"`
	Limit       int    `json:"limit" validate:"min=1,max=200"`
	PageToken   string `json:"next_token"`
}

// ImagePage holds the narrow projection of each item (id, owner, title, tags, created_at).
type ImagePage struct {
	Items     []*entity.Image
	NextToken string
}

// CatalogQuery is an owner-scoped, time-ranged query against the owner index.
// Empty bounds are open; results are ordered by created_at descending.
type CatalogQuery struct {
	UserID      string
	CreatedFrom string
	CreatedTo   string
	Limit       int
	PageToken   string
}

type CatalogPage struct {
	Items     []*entity.Image
	NextToken string
}
