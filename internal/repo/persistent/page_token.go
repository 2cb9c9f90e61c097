package persistent

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/kshecodes/image-service/internal/dto"
	"github.com/kshecodes/image-service/pkg/types/errs"
)

// pageKey is the position of the last item of a page in the owner index.
type pageKey struct {
	ImageID   string `json:"image_id" dynamodbav:"image_id"`
	UserID    string `json:"user_id" dynamodbav:"user_id"`
	CreatedAt string `json:"created_at" dynamodbav:"created_at"`
}

func encodePageToken(k pageKey) (string, error) {
	b, err := json.Marshal(k)
	if err != nil {
		return "", fmt.Errorf("encodePageToken - json.Marshal: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}

// decodePageToken reads q.PageToken. It rejects malformed tokens, tokens minted for
// another owner and tokens positioned outside the query's created_at bounds.
func decodePageToken(q dto.CatalogQuery) (pageKey, error) {
	var k pageKey

	b, err := base64.RawURLEncoding.DecodeString(q.PageToken)
	if err != nil {
		return k, fmt.Errorf("%w: malformed next_token", errs.ErrValidation)
	}

	if err = json.Unmarshal(b, &k); err != nil {
		return k, fmt.Errorf("%w: malformed next_token", errs.ErrValidation)
	}

	if k.ImageID == "" || k.CreatedAt == "" {
		return k, fmt.Errorf("%w: incomplete next_token", errs.ErrValidation)
	}

	if k.UserID != q.UserID {
		return k, fmt.Errorf("%w: next_token belongs to another user_id", errs.ErrValidation)
	}

	// DynamoDB refuses an ExclusiveStartKey outside the key condition
	if (q.CreatedFrom != "" && k.CreatedAt < q.CreatedFrom) || (q.CreatedTo != "" && k.CreatedAt > q.CreatedTo) {
		return k, fmt.Errorf("%w: next_token is outside the created_from/created_to range", errs.ErrValidation)
	}

	return k, nil
}
