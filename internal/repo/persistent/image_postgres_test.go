package persistent

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/kshecodes/image-service/internal/dto"
	"github.com/kshecodes/image-service/pkg/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalogPostgres() *ImageCatalogPostgres {
	return NewImageCatalogPostgres(&postgres.Postgres{
		Builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	})
}

func TestOwnerQuery_Unbounded(t *testing.T) {
	r := newTestCatalogPostgres()

	sql, args, err := r.ownerQuery(dto.CatalogQuery{UserID: "u1", Limit: 50}, nil).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT image_id, user_id, title, tags, created_at FROM images WHERE user_id = $1 ORDER BY created_at DESC, image_id DESC LIMIT 51",
		sql,
	)
	assert.Equal(t, []interface{}{"u1"}, args)
}

func TestOwnerQuery_RangeAndCursor(t *testing.T) {
	r := newTestCatalogPostgres()

	q := dto.CatalogQuery{
		UserID:      "u1",
		CreatedFrom: "2024-01-01T00:00:00Z",
		CreatedTo:   "2024-12-31T23:59:59Z",
		Limit:       10,
	}
	after := &pageKey{ImageID: "abc", UserID: "u1", CreatedAt: "2024-06-01T00:00:00Z"}

	sql, args, err := r.ownerQuery(q, after).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "created_at >= $2")
	assert.Contains(t, sql, "created_at <= $3")
	assert.Contains(t, sql, "(created_at, image_id) < ($4, $5)")
	assert.Contains(t, sql, "LIMIT 11")
	assert.Equal(t, []interface{}{"u1", q.CreatedFrom, q.CreatedTo, after.CreatedAt, after.ImageID}, args)
}
