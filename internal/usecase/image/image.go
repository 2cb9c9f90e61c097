package image

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kshecodes/image-service/internal/dto"
	"github.com/kshecodes/image-service/internal/entity"
	"github.com/kshecodes/image-service/internal/infrastructure"
	"github.com/kshecodes/image-service/internal/repo"
	"github.com/kshecodes/image-service/pkg/logger"
	"github.com/kshecodes/image-service/pkg/types/errs"
)

// ImageUseCase coordinates the object store and the catalog. The two stores fail
// independently and no step is rolled back except the direct-upload object when
// its record cannot be written.
type ImageUseCase struct {
	objects repo.ObjectStore
	catalog repo.CatalogStore
	events  infrastructure.EventsSender

	presignTTL    time.Duration
	callTimeout   time.Duration
	uploadTimeout time.Duration
	now           func() time.Time

	logger logger.Interface
}

func New(
	objects repo.ObjectStore,
	catalog repo.CatalogStore,
	events infrastructure.EventsSender,
	l logger.Interface,
	opts ...Option,
) *ImageUseCase {
	uc := &ImageUseCase{
		objects:       objects,
		catalog:       catalog,
		events:        events,
		presignTTL:    _defaultPresignTTL,
		callTimeout:   _defaultCallTimeout,
		uploadTimeout: _defaultUploadTimeout,
		now:           time.Now,
		logger:        l,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

func (uc *ImageUseCase) CreatePresignedUpload(ctx context.Context, in dto.PresignUpload) (*dto.PresignedUpload, error) {
	if err := validateInput(in); err != nil {
		return nil, fmt.Errorf("ImageUseCase - CreatePresignedUpload: %w", err)
	}

	imageID, objectKey := newIdentity(in.UserID)
	image := uc.newImage(imageID, objectKey, in.UserID, in.ContentType, in.Title, in.Description, in.Tags, entity.Pending)

	// 1. the record exists before the URL is handed out
	err := uc.call(ctx, uc.callTimeout, func(ctx context.Context) error {
		return uc.catalog.Create(ctx, image)
	})
	if err != nil {
		return nil, fmt.Errorf("ImageUseCase - CreatePresignedUpload - uc.catalog.Create: %w", err)
	}

	// 2. signed PUT for exactly this key and content type
	var uploadURL string
	err = uc.call(ctx, uc.callTimeout, func(ctx context.Context) error {
		var err error
		uploadURL, err = uc.objects.PresignUpload(ctx, objectKey, in.ContentType, uc.presignTTL)
		return err
	})
	if err != nil {
		uc.logger.Warn("ImageUseCase - CreatePresignedUpload - image %s stays PENDING without an upload url", imageID)

		return nil, fmt.Errorf("ImageUseCase - CreatePresignedUpload - uc.objects.PresignUpload: %w", err)
	}

	uc.publish(ctx, entity.ImageCreated, image)

	return &dto.PresignedUpload{
		ImageID:   imageID,
		UploadURL: uploadURL,
		ObjectKey: objectKey,
		ExpiresIn: uc.expiresIn(),
	}, nil
}

func (uc *ImageUseCase) UploadDirect(ctx context.Context, in dto.DirectUpload) (*dto.UploadedImage, error) {
	if err := validateInput(in); err != nil {
		return nil, fmt.Errorf("ImageUseCase - UploadDirect: %w", err)
	}

	if in.Body == nil {
		return nil, fmt.Errorf("ImageUseCase - UploadDirect: %w: file is required", errs.ErrValidation)
	}

	imageID, objectKey := newIdentity(in.UserID)

	// 1. object first: no record for an object that failed to land
	err := uc.call(ctx, uc.uploadTimeout, func(ctx context.Context) error {
		return uc.objects.Upload(ctx, objectKey, in.Body, in.ContentType, in.Size)
	})
	if err != nil {
		return nil, fmt.Errorf("ImageUseCase - UploadDirect - uc.objects.Upload: %w", err)
	}

	image := uc.newImage(imageID, objectKey, in.UserID, in.ContentType, in.Title, in.Description, parseTags(in.Tags), entity.Available)

	// 2. record
	err = uc.call(ctx, uc.callTimeout, func(ctx context.Context) error {
		return uc.catalog.Create(ctx, image)
	})
	if err != nil {
		// drop the object that no record points at
		delErr := uc.call(context.WithoutCancel(ctx), uc.callTimeout, func(ctx context.Context) error {
			return uc.objects.Delete(ctx, image.Bucket, objectKey)
		})
		if delErr != nil {
			uc.logger.Error(delErr, "ImageUseCase - UploadDirect - uc.objects.Delete - orphaned object", objectKey)
		}

		return nil, fmt.Errorf("ImageUseCase - UploadDirect - uc.catalog.Create: %w", err)
	}

	uc.publish(ctx, entity.ImageCreated, image)

	return &dto.UploadedImage{
		ImageID:   imageID,
		ObjectKey: objectKey,
	}, nil
}

// GetImage does not check that the object exists: a PENDING record yields a URL
// that may 404 at the blob store.
func (uc *ImageUseCase) GetImage(ctx context.Context, imageID string) (*dto.ImageView, error) {
	if strings.TrimSpace(imageID) == "" {
		return nil, fmt.Errorf("ImageUseCase - GetImage: %w: image_id is required", errs.ErrValidation)
	}

	image, err := uc.getRecord(ctx, imageID)
	if err != nil {
		return nil, fmt.Errorf("ImageUseCase - GetImage: %w", err)
	}

	var downloadURL string
	err = uc.call(ctx, uc.callTimeout, func(ctx context.Context) error {
		var err error
		downloadURL, err = uc.objects.PresignDownload(ctx, image.Bucket, image.ObjectKey, uc.presignTTL)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("ImageUseCase - GetImage - uc.objects.PresignDownload: %w", err)
	}

	return &dto.ImageView{
		ImageID:     image.ID,
		DownloadURL: downloadURL,
		ExpiresIn:   uc.expiresIn(),
		Image:       image,
	}, nil
}

// ListImages fetches one page of the owner index and then drops items without
// the requested tag. The tag filter never fetches further pages, so a page may
// hold fewer than limit items while matches exist beyond it.
func (uc *ImageUseCase) ListImages(ctx context.Context, in dto.ListImages) (*dto.ImagePage, error) {
	if err := validateInput(in); err != nil {
		return nil, fmt.Errorf("ImageUseCase - ListImages: %w", err)
	}

	if in.CreatedFrom != "" && in.CreatedTo != "" && in.CreatedFrom > in.CreatedTo {
		return nil, fmt.Errorf("ImageUseCase - ListImages: %w: created_from is after created_to", errs.ErrValidation)
	}

	var page *dto.CatalogPage
	err := uc.call(ctx, uc.callTimeout, func(ctx context.Context) error {
		var err error
		page, err = uc.catalog.QueryByOwner(ctx, dto.CatalogQuery{
			UserID:      in.UserID,
			CreatedFrom: in.CreatedFrom,
			CreatedTo:   in.CreatedTo,
			Limit:       in.Limit,
			PageToken:   in.PageToken,
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("ImageUseCase - ListImages - uc.catalog.QueryByOwner: %w", err)
	}

	items := page.Items
	if in.Tag != "" {
		items = make([]*entity.Image, 0, len(page.Items))
		for _, image := range page.Items {
			if image.HasTag(in.Tag) {
				items = append(items, image)
			}
		}
	}

	return &dto.ImagePage{
		Items:     items,
		NextToken: page.NextToken,
	}, nil
}

func (uc *ImageUseCase) DeleteImage(ctx context.Context, imageID string) error {
	if strings.TrimSpace(imageID) == "" {
		return fmt.Errorf("ImageUseCase - DeleteImage: %w: image_id is required", errs.ErrValidation)
	}

	// 1. locate the object; a missing record never touches the blob store
	image, err := uc.getRecord(ctx, imageID)
	if err != nil {
		return fmt.Errorf("ImageUseCase - DeleteImage: %w", err)
	}

	// 2. object
	err = uc.call(ctx, uc.callTimeout, func(ctx context.Context) error {
		return uc.objects.Delete(ctx, image.Bucket, image.ObjectKey)
	})
	if err != nil {
		return fmt.Errorf("ImageUseCase - DeleteImage - uc.objects.Delete: %w", err)
	}

	// 3. record
	err = uc.call(ctx, uc.callTimeout, func(ctx context.Context) error {
		return uc.catalog.Delete(ctx, image.ID)
	})
	if err != nil {
		uc.logger.Warn("ImageUseCase - DeleteImage - object %s deleted, record %s remains", image.ObjectKey, image.ID)

		return fmt.Errorf("ImageUseCase - DeleteImage - uc.catalog.Delete: %w", err)
	}

	uc.publish(ctx, entity.ImageDeleted, image)

	return nil
}

func (uc *ImageUseCase) getRecord(ctx context.Context, imageID string) (*entity.Image, error) {
	var image *entity.Image

	err := uc.call(ctx, uc.callTimeout, func(ctx context.Context) error {
		var err error
		image, err = uc.catalog.GetByID(ctx, imageID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("uc.catalog.GetByID: %w", err)
	}

	return image, nil
}

// call runs f under timeout and classifies its failure. Not-found and validation
// errors pass through; anything else is an upstream timeout or outage.
func (uc *ImageUseCase) call(ctx context.Context, timeout time.Duration, f func(ctx context.Context) error) error {
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	err := f(callCtx)
	if err == nil {
		return nil
	}

	if errors.Is(err, errs.ErrRecordNotFound) || errors.Is(err, errs.ErrValidation) {
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(callCtx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", errs.ErrUpstreamTimeout, err)
	}

	return fmt.Errorf("%w: %w", errs.ErrUpstreamUnavailable, err)
}
