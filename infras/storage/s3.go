package storage

import (
	"context"
	"fmt"
	"io"

	"robles/infras/otel"
	"robles/infras/s3"
	"robles/shared/constant"
)

type s3Storage struct {
	s3   s3.S3
	otel otel.Otel
}

func NewS3Storage(otl otel.Otel, s3Client s3.S3) Storage {
	return &s3Storage{
		s3:   s3Client,
		otel: otl,
	}
}

func (s *s3Storage) Save(ctx context.Context, file io.Reader, subPath, category, originalFilename, contentType string) (url string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".Save")
	defer scope.End()
	defer scope.TraceIfError(err)

	data, err := io.ReadAll(file)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to read upload file: %w", err)
	}

	if contentType == "" {
		contentType = constant.ContentTypeOctetStream
	}

	filename := NewFilename(category, originalFilename)
	scope.SetAttribute("file_name", filename)

	return s.s3.UploadFileBytes(ctx, constant.Empty, subPath, filename, contentType, data)
}

func (s *s3Storage) Delete(ctx context.Context, url string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	objectName := s.s3.GetObjectNameFromURL(constant.Empty, url)
	if objectName == constant.Empty {
		return nil
	}

	return s.s3.DeleteFile(ctx, constant.Empty, constant.Empty, objectName)
}
