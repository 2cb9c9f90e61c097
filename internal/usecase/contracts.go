package usecase

import (
	"context"

	"github.com/kshecodes/image-service/internal/dto"
)

type (
	ImageUseCase interface {
		// CreatePresignedUpload writes a PENDING record, then mints a signed PUT URL for it.
		CreatePresignedUpload(ctx context.Context, in dto.PresignUpload) (*dto.PresignedUpload, error)
		// UploadDirect streams the object to the blob store, then writes an AVAILABLE record.
		UploadDirect(ctx context.Context, in dto.DirectUpload) (*dto.UploadedImage, error)
		GetImage(ctx context.Context, imageID string) (*dto.ImageView, error)
		ListImages(ctx context.Context, in dto.ListImages) (*dto.ImagePage, error)
		// DeleteImage removes the object, then the record. It does not roll back.
		DeleteImage(ctx context.Context, imageID string) error
	}
)
