package repo

import (
	"context"
	"io"
	"time"

	"github.com/kshecodes/image-service/internal/dto"
	"github.com/kshecodes/image-service/internal/entity"
)

//go:generate mockgen -source=contracts.go -destination=../usecase/image/mocks_repo_test.go -package=image_test

type (
	// ObjectStore is the blob store gateway. New objects land in Bucket(); existing
	// objects are addressed by the bucket stored on their catalog record.
	ObjectStore interface {
		Bucket() string
		Upload(ctx context.Context, key string, data io.Reader, contentType string, size int64) error
		Delete(ctx context.Context, bucket, key string) error
		PresignUpload(ctx context.Context, key, contentType string, ttl time.Duration) (string, error)
		PresignDownload(ctx context.Context, bucket, key string, ttl time.Duration) (string, error)
	}

	// CatalogStore is the metadata store gateway. Get returns errs.ErrRecordNotFound
	// for a missing id; Delete of a missing id is not an error.
	CatalogStore interface {
		Create(ctx context.Context, image *entity.Image) error
		GetByID(ctx context.Context, id string) (*entity.Image, error)
		Delete(ctx context.Context, id string) error
		QueryByOwner(ctx context.Context, q dto.CatalogQuery) (*dto.CatalogPage, error)
	}
)
