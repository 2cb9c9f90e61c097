package v1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kshecodes/image-service/internal/usecase"
	"github.com/kshecodes/image-service/pkg/logger"
)

func NewImageRoutes(router fiber.Router, img usecase.ImageUseCase, l logger.Interface) {
	r := &V1{img: img, logger: l}

	imagesGroup := router.Group("/images")
	{
		imagesGroup.Post("/presign", r.createPresignedUpload)
		imagesGroup.Post("/", r.uploadImage)
		imagesGroup.Get("/", r.listImages)
		imagesGroup.Get("/:image_id", r.getImage)
		imagesGroup.Delete("/:image_id", r.deleteImage)
	}
}
