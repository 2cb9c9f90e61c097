package persistent

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/kshecodes/image-service/pkg/s3client"
)

// ObjectRepo is the S3 object store gateway.
type ObjectRepo struct {
	*s3client.S3Client
	uploader *manager.Uploader
	bucket   string
}

func NewObjectRepo(s3c *s3client.S3Client, bucket string) *ObjectRepo {
	return &ObjectRepo{
		S3Client: s3c,
		uploader: manager.NewUploader(s3c.Client),
		bucket:   bucket,
	}
}

func (r *ObjectRepo) Bucket() string {
	return r.bucket
}

// Upload streams data to the bucket. size may be -1 when unknown; the uploader
// switches to a multipart upload for large or unsized bodies.
func (r *ObjectRepo) Upload(ctx context.Context, key string, data io.Reader, contentType string, size int64) error {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(key),
		Body:        data,
		ContentType: aws.String(contentType),
	}
	if size >= 0 {
		input.ContentLength = aws.Int64(size)
	}

	_, err := r.uploader.Upload(ctx, input)
	if err != nil {
		return fmt.Errorf("ObjectRepo - Upload - r.uploader.Upload: %w", err)
	}

	return nil
}

func (r *ObjectRepo) Delete(ctx context.Context, bucket, key string) error {
	_, err := r.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("ObjectRepo - Delete - r.Client.DeleteObject: %w", err)
	}

	return nil
}

// PresignUpload signs a single PUT of exactly contentType to key in the repo bucket.
func (r *ObjectRepo) PresignUpload(ctx context.Context, key, contentType string, ttl time.Duration) (string, error) {
	req, err := r.Presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", fmt.Errorf("ObjectRepo - PresignUpload - r.Presign.PresignPutObject: %w", err)
	}

	return req.URL, nil
}

func (r *ObjectRepo) PresignDownload(ctx context.Context, bucket, key string, ttl time.Duration) (string, error) {
	req, err := r.Presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", fmt.Errorf("ObjectRepo - PresignDownload - r.Presign.PresignGetObject: %w", err)
	}

	return req.URL, nil
}
