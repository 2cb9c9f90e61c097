package image

import "time"

const (
	_defaultPresignTTL    = 900 * time.Second
	_defaultCallTimeout   = 5 * time.Second
	_defaultUploadTimeout = 60 * time.Second
)

type Option func(*ImageUseCase)

// PresignTTL sets the lifetime of signed upload and download URLs.
func PresignTTL(ttl time.Duration) Option {
	return func(uc *ImageUseCase) {
		uc.presignTTL = ttl
	}
}

// CallTimeout bounds every single gateway call.
func CallTimeout(timeout time.Duration) Option {
	return func(uc *ImageUseCase) {
		uc.callTimeout = timeout
	}
}

// UploadTimeout bounds the object stream of a direct upload.
func UploadTimeout(timeout time.Duration) Option {
	return func(uc *ImageUseCase) {
		uc.uploadTimeout = timeout
	}
}

func Clock(now func() time.Time) Option {
	return func(uc *ImageUseCase) {
		uc.now = now
	}
}
