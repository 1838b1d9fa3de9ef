package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"robles/config"
	"robles/infras/otel"
	"robles/shared/constant"

	"github.com/rs/zerolog/log"
)

type localStorage struct {
	root string
	otel otel.Otel
}

func NewLocalStorage(cfg *config.Config, otl otel.Otel) Storage {
	return &localStorage{
		root: cfg.Upload.Root,
		otel: otl,
	}
}

func (l *localStorage) Save(ctx context.Context, file io.Reader, subPath, category, originalFilename, _ string) (url string, err error) {
	_, scope := l.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".Save")
	defer scope.End()
	defer scope.TraceIfError(err)

	filename := NewFilename(category, originalFilename)
	dir := filepath.Join(l.root, filepath.FromSlash(subPath))

	scope.SetAttribute("file_name", filename)

	err = os.MkdirAll(dir, 0o755)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to create upload directory: %w", err)
	}

	dst, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	_, err = io.Copy(dst, file)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to write upload file: %w", err)
	}

	return constant.UploadURLPrefix + path.Join(subPath, filename), nil
}

func (l *localStorage) Delete(ctx context.Context, url string) (err error) {
	_, scope := l.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !strings.HasPrefix(url, constant.UploadURLPrefix) {
		return nil
	}

	relative := strings.TrimPrefix(url, constant.UploadURLPrefix)
	target := filepath.Join(l.root, filepath.FromSlash(relative))

	err = os.Remove(target)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		log.Error().Err(err).Str("url", url).Msg("Failed to delete local upload")

		return fmt.Errorf("failed to delete local upload: %w", err)
	}

	return nil
}
