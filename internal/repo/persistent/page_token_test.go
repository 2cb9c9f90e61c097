package persistent

import (
	"encoding/base64"
	"testing"

	"github.com/kshecodes/image-service/internal/dto"
	"github.com/kshecodes/image-service/pkg/types/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageToken_RoundTrip(t *testing.T) {
	k := pageKey{ImageID: "abc", UserID: "u1", CreatedAt: "2024-05-01T10:00:00Z"}

	token, err := encodePageToken(k)
	require.NoError(t, err)
	assert.NotContains(t, token, "=")

	got, err := decodePageToken(dto.CatalogQuery{UserID: "u1", PageToken: token})
	require.NoError(t, err)
	assert.Equal(t, k, got)
}

func TestDecodePageToken_Rejects(t *testing.T) {
	foreign, err := encodePageToken(pageKey{ImageID: "abc", UserID: "u2", CreatedAt: "2024-05-01T10:00:00Z"})
	require.NoError(t, err)

	own, err := encodePageToken(pageKey{ImageID: "abc", UserID: "u1", CreatedAt: "2024-05-01T10:00:00Z"})
	require.NoError(t, err)

	tests := []struct {
		name string
		q    dto.CatalogQuery
	}{
		{name: "not base64", q: dto.CatalogQuery{UserID: "u1", PageToken: "***"}},
		{name: "not json", q: dto.CatalogQuery{UserID: "u1", PageToken: base64.RawURLEncoding.EncodeToString([]byte("nope"))}},
		{name: "missing fields", q: dto.CatalogQuery{UserID: "u1", PageToken: base64.RawURLEncoding.EncodeToString([]byte(`{"user_id":"u1"}`))}},
		{name: "other owner", q: dto.CatalogQuery{UserID: "u1", PageToken: foreign}},
		{name: "before created_from", q: dto.CatalogQuery{UserID: "u1", PageToken: own, CreatedFrom: "2024-05-01T10:00:01Z"}},
		{name: "after created_to", q: dto.CatalogQuery{UserID: "u1", PageToken: own, CreatedTo: "2024-05-01T09:59:59Z"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodePageToken(tt.q)
			assert.ErrorIs(t, err, errs.ErrValidation)
		})
	}
}

func TestDecodePageToken_InsideRange(t *testing.T) {
	token, err := encodePageToken(pageKey{ImageID: "abc", UserID: "u1", CreatedAt: "2024-05-01T10:00:00Z"})
	require.NoError(t, err)

	// bounds are inclusive
	_, err = decodePageToken(dto.CatalogQuery{
		UserID:      "u1",
		PageToken:   token,
		CreatedFrom: "2024-05-01T10:00:00Z",
		CreatedTo:   "2024-05-01T10:00:00Z",
	})
	assert.NoError(t, err)
}
