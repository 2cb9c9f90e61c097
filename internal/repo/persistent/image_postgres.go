package persistent

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/kshecodes/image-service/internal/dto"
	"github.com/kshecodes/image-service/internal/entity"
	"github.com/kshecodes/image-service/pkg/postgres"
	"github.com/kshecodes/image-service/pkg/types/errs"
)

const (
	// Table
	imagesTable = "images"

	// Columns
	idColumn          = "image_id"
	userIDColumn      = "user_id"
	bucketColumn      = "bucket"
	objectKeyColumn   = "object_key"
	contentTypeColumn = "content_type"
	titleColumn       = "title"
	descriptionColumn = "description"
	tagsColumn        = "tags"
	statusColumn      = "status"
	createdAtColumn   = "created_at"
	updatedAtColumn   = "updated_at"
)

// ImageCatalogPostgres is the catalog gateway over Postgres. Timestamps are stored
// as fixed-width text so ordering and range bounds behave exactly like the DynamoDB index.
type ImageCatalogPostgres struct {
	*postgres.Postgres
}

func NewImageCatalogPostgres(pg *postgres.Postgres) *ImageCatalogPostgres {
	return &ImageCatalogPostgres{pg}
}

func (r *ImageCatalogPostgres) Create(ctx context.Context, image *entity.Image) error {
	tags := image.Tags
	if tags == nil {
		tags = []string{}
	}

	sql, args, err := r.Builder.
		Insert(imagesTable).
		Columns(
			idColumn,
			userIDColumn,
			bucketColumn,
			objectKeyColumn,
			contentTypeColumn,
			titleColumn,
			descriptionColumn,
			tagsColumn,
			statusColumn,
			createdAtColumn,
			updatedAtColumn,
		).
		Values(
			image.ID,
			image.UserID,
			image.Bucket,
			image.ObjectKey,
			image.ContentType,
			image.Title,
			image.Description,
			tags,
			string(image.Status),
			entity.FormatTimestamp(image.CreatedAt),
			entity.FormatTimestamp(image.UpdatedAt),
		).ToSql()
	if err != nil {
		return fmt.Errorf("ImageCatalogPostgres - Create - r.Builder.ToSql: %w", err)
	}

	_, err = r.GetExecutor(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("ImageCatalogPostgres - Create - executor.Exec: %w", err)
	}

	return nil
}

func (r *ImageCatalogPostgres) GetByID(ctx context.Context, id string) (*entity.Image, error) {
	sql, args, err := r.Builder.
		Select(
			idColumn,
			userIDColumn,
			bucketColumn,
			objectKeyColumn,
			contentTypeColumn,
			titleColumn,
			descriptionColumn,
			tagsColumn,
			statusColumn,
			createdAtColumn,
			updatedAtColumn,
		).
		From(imagesTable).
		Where(squirrel.Eq{idColumn: id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ImageCatalogPostgres - GetByID - r.Builder.ToSql: %w", err)
	}

	var item imageItem

	err = r.GetExecutor(ctx).QueryRow(ctx, sql, args...).Scan(
		&item.ImageID,
		&item.UserID,
		&item.Bucket,
		&item.ObjectKey,
		&item.ContentType,
		&item.Title,
		&item.Description,
		&item.Tags,
		&item.Status,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("ImageCatalogPostgres - GetByID: %w", errs.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("ImageCatalogPostgres - GetByID - executor.QueryRow.Scan: %w", err)
	}
	return item.toEntity()
}

func (r *ImageCatalogPostgres) Delete(ctx context.Context, id string) error {
	sql, args, err := r.Builder.
		Delete(imagesTable).
		Where(squirrel.Eq{idColumn: id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("ImageCatalogPostgres - Delete - r.Builder.ToSql: %w", err)
	}

	// zero affected rows is fine: deleting a missing record is not an error
	_, err = r.GetExecutor(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("ImageCatalogPostgres - Delete - executor.Exec: %w", err)
	}

	return nil
}

func (r *ImageCatalogPostgres) QueryByOwner(ctx context.Context, q dto.CatalogQuery) (*dto.CatalogPage, error) {
	var after *pageKey
	if q.PageToken != "" {
		k, err := decodePageToken(q)
		if err != nil {
			return nil, fmt.Errorf("ImageCatalogPostgres - QueryByOwner: %w", err)
		}
		after = &k
	}

	sql, args, err := r.ownerQuery(q, after).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ImageCatalogPostgres - QueryByOwner - r.Builder.ToSql: %w", err)
	}

	rows, err := r.GetExecutor(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("ImageCatalogPostgres - QueryByOwner - executor.Query: %w", err)
	}
	defer rows.Close()

	items := make([]*entity.Image, 0, q.Limit)
	for rows.Next() {
		var item imageItem
		err = rows.Scan(&item.ImageID, &item.UserID, &item.Title, &item.Tags, &item.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("ImageCatalogPostgres - QueryByOwner - rows.Scan: %w", err)
		}

		image, err := item.toEntity()
		if err != nil {
			return nil, err
		}

		items = append(items, image)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("ImageCatalogPostgres - QueryByOwner - rows.Err: %w", err)
	}

	page := &dto.CatalogPage{Items: items}

	// one extra row was fetched to learn whether another page exists
	if len(items) > q.Limit {
		page.Items = items[:q.Limit]
		last := page.Items[q.Limit-1]

		page.NextToken, err = encodePageToken(pageKey{
			ImageID:   last.ID,
			UserID:    last.UserID,
			CreatedAt: entity.FormatTimestamp(last.CreatedAt),
		})
		if err != nil {
			return nil, fmt.Errorf("ImageCatalogPostgres - QueryByOwner: %w", err)
		}
	}

	return page, nil
}

func (r *ImageCatalogPostgres) ownerQuery(q dto.CatalogQuery, after *pageKey) squirrel.SelectBuilder {
	b := r.Builder.
		Select(idColumn, userIDColumn, titleColumn, tagsColumn, createdAtColumn).
		From(imagesTable).
		Where(squirrel.Eq{userIDColumn: q.UserID})

	if q.CreatedFrom != "" {
		b = b.Where(squirrel.GtOrEq{createdAtColumn: q.CreatedFrom})
	}

	if q.CreatedTo != "" {
		b = b.Where(squirrel.LtOrEq{createdAtColumn: q.CreatedTo})
	}

	if after != nil {
		b = b.Where(squirrel.Expr("("+createdAtColumn+", "+idColumn+") < (?, ?)", after.CreatedAt, after.ImageID))
	}

	return b.
		OrderBy(createdAtColumn+" DESC", idColumn+" DESC").
		Limit(uint64(q.Limit) + 1) //nolint:gosec // limit is bounded to [1,200]
}
