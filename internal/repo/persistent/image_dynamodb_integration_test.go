//go:build integration

package persistent

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kshecodes/image-service/internal/dto"
	"github.com/kshecodes/image-service/internal/entity"
	"github.com/kshecodes/image-service/pkg/dynamodbclient"
	"github.com/kshecodes/image-service/pkg/types/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run against DynamoDB Local or localstack:
//
//	IMAGE_SERVICE_AWS_ENDPOINT=http://localhost:8000 go test -tags integration ./internal/repo/persistent/...
func newIntegrationCatalog(t *testing.T) *ImageCatalogDynamoDB {
	t.Helper()

	endpoint := os.Getenv("IMAGE_SERVICE_AWS_ENDPOINT")
	if endpoint == "" {
		t.Skip("IMAGE_SERVICE_AWS_ENDPOINT is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c, err := dynamodbclient.New(ctx, "us-east-1",
		dynamodbclient.Endpoint(endpoint),
		dynamodbclient.StaticCredentials("local", "local"),
		dynamodbclient.ConnAttempts(3),
	)
	require.NoError(t, err)

	r := NewImageCatalogDynamoDB(c, fmt.Sprintf("Images-test-%d", time.Now().UnixNano()), "GSI1")

	created, err := r.EnsureTable(ctx, 20*time.Second)
	require.NoError(t, err)
	require.True(t, created)

	return r
}

func TestImageCatalogDynamoDB_Lifecycle(t *testing.T) {
	r := newIntegrationCatalog(t)
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	ids := make([]string, 0, 3)

	for i := 0; i < 3; i++ {
		id := uuid.NewString()
		ids = append(ids, id)

		require.NoError(t, r.Create(ctx, &entity.Image{
			ID:          id,
			UserID:      "u1",
			Bucket:      "bucket",
			ObjectKey:   entity.ObjectKey("u1", id),
			ContentType: "image/jpeg",
			Tags:        []string{fmt.Sprintf("t%d", i)},
			Status:      entity.Pending,
			CreatedAt:   base.Add(time.Duration(i) * time.Hour),
			UpdatedAt:   base.Add(time.Duration(i) * time.Hour),
		}))
	}

	got, err := r.GetByID(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, entity.Pending, got.Status)
	assert.Equal(t, []string{"t0"}, got.Tags)

	page, err := r.QueryByOwner(ctx, dto.CatalogQuery{UserID: "u1", Limit: 2})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, ids[2], page.Items[0].ID)
	assert.Equal(t, ids[1], page.Items[1].ID)
	require.NotEmpty(t, page.NextToken)

	next, err := r.QueryByOwner(ctx, dto.CatalogQuery{UserID: "u1", Limit: 2, PageToken: page.NextToken})
	require.NoError(t, err)
	require.Len(t, next.Items, 1)
	assert.Equal(t, ids[0], next.Items[0].ID)

	ranged, err := r.QueryByOwner(ctx, dto.CatalogQuery{
		UserID:      "u1",
		CreatedFrom: "2024-05-01T11:00:00Z",
		CreatedTo:   "2024-05-01T11:00:00Z",
		Limit:       50,
	})
	require.NoError(t, err)
	require.Len(t, ranged.Items, 1)
	assert.Equal(t, ids[1], ranged.Items[0].ID)

	// sort key comparison is byte order: lowercase 't' is after every 'T'
	none, err := r.QueryByOwner(ctx, dto.CatalogQuery{UserID: "u1", CreatedFrom: "2024-05-01t", Limit: 50})
	require.NoError(t, err)
	assert.Empty(t, none.Items)

	require.NoError(t, r.Delete(ctx, ids[0]))
	require.NoError(t, r.Delete(ctx, ids[0]))

	_, err = r.GetByID(ctx, ids[0])
	assert.ErrorIs(t, err, errs.ErrRecordNotFound)
}

func TestImageCatalogDynamoDB_CreateIsCreateOnly(t *testing.T) {
	r := newIntegrationCatalog(t)
	ctx := context.Background()

	now := time.Now()
	image := &entity.Image{
		ID:        uuid.NewString(),
		UserID:    "u1",
		Status:    entity.Pending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	require.NoError(t, r.Create(ctx, image))
	assert.Error(t, r.Create(ctx, image))
}
