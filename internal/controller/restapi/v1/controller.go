package v1

import (
	"github.com/kshecodes/image-service/internal/usecase"
	"github.com/kshecodes/image-service/pkg/logger"
)

type V1 struct {
	img    usecase.ImageUseCase
	logger logger.Interface
}
