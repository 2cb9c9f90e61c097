package persistent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/kshecodes/image-service/internal/dto"
	"github.com/kshecodes/image-service/internal/entity"
	"github.com/kshecodes/image-service/pkg/dynamodbclient"
	"github.com/kshecodes/image-service/pkg/types/errs"
)

const (
	// Attributes
	imageIDAttr     = "image_id"
	userIDAttr      = "user_id"
	titleAttr       = "title"
	tagsAttr        = "tags"
	createdAtAttr   = "created_at"
	createOnlyGuard = "attribute_not_exists(" + imageIDAttr + ")"
)

type imageItem struct {
	ImageID     string   `dynamodbav:"image_id"`
	UserID      string   `dynamodbav:"user_id"`
	Bucket      string   `dynamodbav:"bucket,omitempty"`
	ObjectKey   string   `dynamodbav:"object_key,omitempty"`
	ContentType string   `dynamodbav:"content_type,omitempty"`
	Title       *string  `dynamodbav:"title,omitempty"`
	Description *string  `dynamodbav:"description,omitempty"`
	Tags        []string `dynamodbav:"tags"`
	Status      string   `dynamodbav:"status,omitempty"`
	CreatedAt   string   `dynamodbav:"created_at"`
	UpdatedAt   string   `dynamodbav:"updated_at,omitempty"`
}

// ImageCatalogDynamoDB keeps catalog records in a table keyed by image_id with a
// secondary index (user_id, created_at) for owner listings.
type ImageCatalogDynamoDB struct {
	*dynamodbclient.DynamoDBClient
	table      string
	ownerIndex string
}

func NewImageCatalogDynamoDB(c *dynamodbclient.DynamoDBClient, table, ownerIndex string) *ImageCatalogDynamoDB {
	return &ImageCatalogDynamoDB{
		DynamoDBClient: c,
		table:          table,
		ownerIndex:     ownerIndex,
	}
}

func (r *ImageCatalogDynamoDB) Create(ctx context.Context, image *entity.Image) error {
	av, err := attributevalue.MarshalMap(toImageItem(image))
	if err != nil {
		return fmt.Errorf("ImageCatalogDynamoDB - Create - attributevalue.MarshalMap: %w", err)
	}

	_, err = r.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.table),
		Item:                av,
		ConditionExpression: aws.String(createOnlyGuard),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return fmt.Errorf("ImageCatalogDynamoDB - Create - image id %s already exists: %w", image.ID, err)
		}
		return fmt.Errorf("ImageCatalogDynamoDB - Create - r.Client.PutItem: %w", err)
	}

	return nil
}

func (r *ImageCatalogDynamoDB) GetByID(ctx context.Context, id string) (*entity.Image, error) {
	out, err := r.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			imageIDAttr: &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("ImageCatalogDynamoDB - GetByID - r.Client.GetItem: %w", err)
	}

	if len(out.Item) == 0 {
		return nil, fmt.Errorf("ImageCatalogDynamoDB - GetByID: %w", errs.ErrRecordNotFound)
	}

	var item imageItem
	if err = attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, fmt.Errorf("ImageCatalogDynamoDB - GetByID - attributevalue.UnmarshalMap: %w", err)
	}

	return item.toEntity()
}

func (r *ImageCatalogDynamoDB) Delete(ctx context.Context, id string) error {
	_, err := r.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			imageIDAttr: &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return fmt.Errorf("ImageCatalogDynamoDB - Delete - r.Client.DeleteItem: %w", err)
	}

	return nil
}

// QueryByOwner reads one page of the owner index, newest first. Index reads are
// eventually consistent.
func (r *ImageCatalogDynamoDB) QueryByOwner(ctx context.Context, q dto.CatalogQuery) (*dto.CatalogPage, error) {
	input, err := r.ownerQueryInput(q)
	if err != nil {
		return nil, err
	}

	out, err := r.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("ImageCatalogDynamoDB - QueryByOwner - r.Client.Query: %w", err)
	}

	page := &dto.CatalogPage{
		Items: make([]*entity.Image, 0, len(out.Items)),
	}

	for _, av := range out.Items {
		var item imageItem
		if err = attributevalue.UnmarshalMap(av, &item); err != nil {
			return nil, fmt.Errorf("ImageCatalogDynamoDB - QueryByOwner - attributevalue.UnmarshalMap: %w", err)
		}

		image, err := item.toEntity()
		if err != nil {
			return nil, err
		}

		page.Items = append(page.Items, image)
	}

	if len(out.LastEvaluatedKey) > 0 {
		var k pageKey
		if err = attributevalue.UnmarshalMap(out.LastEvaluatedKey, &k); err != nil {
			return nil, fmt.Errorf("ImageCatalogDynamoDB - QueryByOwner - LastEvaluatedKey: %w", err)
		}

		page.NextToken, err = encodePageToken(k)
		if err != nil {
			return nil, fmt.Errorf("ImageCatalogDynamoDB - QueryByOwner: %w", err)
		}
	}

	return page, nil
}

func (r *ImageCatalogDynamoDB) ownerQueryInput(q dto.CatalogQuery) (*dynamodb.QueryInput, error) {
	projection := expression.NamesList(
		expression.Name(imageIDAttr),
		expression.Name(userIDAttr),
		expression.Name(titleAttr),
		expression.Name(tagsAttr),
		expression.Name(createdAtAttr),
	)

	expr, err := expression.NewBuilder().
		WithKeyCondition(ownerKeyCondition(q.UserID, q.CreatedFrom, q.CreatedTo)).
		WithProjection(projection).
		Build()
	if err != nil {
		return nil, fmt.Errorf("ImageCatalogDynamoDB - ownerQueryInput - expression.Build: %w", err)
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.table),
		IndexName:                 aws.String(r.ownerIndex),
		KeyConditionExpression:    expr.KeyCondition(),
		ProjectionExpression:      expr.Projection(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		Limit:                     aws.Int32(int32(q.Limit)), //nolint:gosec // limit is bounded to [1,200]
		ScanIndexForward:          aws.Bool(false),
	}

	if q.PageToken != "" {
		k, err := decodePageToken(q)
		if err != nil {
			return nil, fmt.Errorf("ImageCatalogDynamoDB - ownerQueryInput: %w", err)
		}

		input.ExclusiveStartKey, err = attributevalue.MarshalMap(k)
		if err != nil {
			return nil, fmt.Errorf("ImageCatalogDynamoDB - ownerQueryInput - attributevalue.MarshalMap: %w", err)
		}
	}

	return input, nil
}

// ownerKeyCondition: both bounds give BETWEEN, one bound gives >= or <=, none leaves the range open.
func ownerKeyCondition(userID, from, to string) expression.KeyConditionBuilder {
	kc := expression.Key(userIDAttr).Equal(expression.Value(userID))

	switch {
	case from != "" && to != "":
		kc = kc.And(expression.Key(createdAtAttr).Between(expression.Value(from), expression.Value(to)))
	case from != "":
		kc = kc.And(expression.Key(createdAtAttr).GreaterThanEqual(expression.Value(from)))
	case to != "":
		kc = kc.And(expression.Key(createdAtAttr).LessThanEqual(expression.Value(to)))
	}

	return kc
}

func toImageItem(image *entity.Image) imageItem {
	tags := image.Tags
	if tags == nil {
		tags = []string{}
	}

	return imageItem{
		ImageID:     image.ID,
		UserID:      image.UserID,
		Bucket:      image.Bucket,
		ObjectKey:   image.ObjectKey,
		ContentType: image.ContentType,
		Title:       image.Title,
		Description: image.Description,
		Tags:        tags,
		Status:      string(image.Status),
		CreatedAt:   entity.FormatTimestamp(image.CreatedAt),
		UpdatedAt:   entity.FormatTimestamp(image.UpdatedAt),
	}
}

func (i imageItem) toEntity() (*entity.Image, error) {
	createdAt, err := entity.ParseTimestamp(i.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("imageItem - toEntity - created_at of %s: %w", i.ImageID, err)
	}

	var updatedAt time.Time
	if i.UpdatedAt != "" {
		updatedAt, err = entity.ParseTimestamp(i.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("imageItem - toEntity - updated_at of %s: %w", i.ImageID, err)
		}
	}

	tags := i.Tags
	if tags == nil {
		tags = []string{}
	}

	return &entity.Image{
		ID:          i.ImageID,
		UserID:      i.UserID,
		Bucket:      i.Bucket,
		ObjectKey:   i.ObjectKey,
		ContentType: i.ContentType,
		Title:       i.Title,
		Description: i.Description,
		Tags:        tags,
		Status:      entity.Status(i.Status),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}
