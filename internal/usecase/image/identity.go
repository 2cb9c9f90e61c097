package image

import (
	"github.com/google/uuid"
	"github.com/kshecodes/image-service/internal/entity"
)

// newIdentity returns a random (v4) image id and the object key derived from it.
func newIdentity(userID string) (imageID, objectKey string) {
	imageID = uuid.NewString()

	return imageID, entity.ObjectKey(userID, imageID)
}
