package storage

//go:generate go run go.uber.org/mock/mockgen -source=./storage.go -destination=./mocks/storage_mock.go -package=mocks

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"robles/config"
	"robles/infras/otel"
	"robles/infras/s3"
	"robles/shared/constant"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Storage persists uploaded images and resolves them to public URLs. The
// backend is selected once at startup and hidden from the domain services.
type Storage interface {
	// Save stores the file under subPath and returns its public URL.
	Save(ctx context.Context, file io.Reader, subPath, category, originalFilename, contentType string) (url string, err error)
	// Delete removes a previously stored file by its public URL. URLs that
	// do not belong to this backend are ignored.
	Delete(ctx context.Context, url string) error
}

// NewFilename builds a collision-free object name keeping only the original
// extension. Files without an extension are assumed to be JPEG.
func NewFilename(category, originalFilename string) string {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	if ext == "" {
		ext = ".jpg"
	}

	return fmt.Sprintf("%s-%s%s", category, strings.ReplaceAll(uuid.NewString(), "-", ""), ext)
}

func New(cfg *config.Config, otl otel.Otel, s3Client s3.S3) Storage {
	if cfg.Upload.Backend == constant.StorageBackendS3 {
		if cfg.External.S3.APIEndpoint == "" || cfg.External.S3.BucketName == "" {
			log.Fatal().Msg("S3 upload backend selected but S3 endpoint or bucket is not configured")
		}

		log.Info().
			Str("bucket", cfg.External.S3.BucketName).
			Msg("Using S3 upload backend")

		return NewS3Storage(otl, s3Client)
	}

	log.Info().
		Str("root", cfg.Upload.Root).
		Msg("Using local disk upload backend")

	return NewLocalStorage(cfg, otl)
}
