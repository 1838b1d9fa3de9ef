package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"robles/config"
	"robles/infras/otel/mocks"
	"robles/infras/storage"
)

func TestNewFilename(t *testing.T) {
	tests := []struct {
		name     string
		category string
		original string
		wantExt  string
	}{
		{
			name:     "keeps original extension",
			category: "room",
			original: "photo.png",
			wantExt:  ".png",
		},
		{
			name:     "lowercases extension",
			category: "venue",
			original: "PHOTO.JPG",
			wantExt:  ".jpg",
		},
		{
			name:     "defaults to jpg without extension",
			category: "hero",
			original: "photo",
			wantExt:  ".jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := storage.NewFilename(tt.category, tt.original)

			assert.True(t, strings.HasPrefix(got, tt.category+"-"))
			assert.True(t, strings.HasSuffix(got, tt.wantExt))
			assert.NotEqual(t, got, storage.NewFilename(tt.category, tt.original))
		})
	}
}

func TestLocalStorage_SaveAndDelete(t *testing.T) {
	cfg := &config.Config{}
	cfg.Upload.Root = t.TempDir()

	store := storage.NewLocalStorage(cfg, mocks.NewOtel())
	ctx := context.Background()

	url, err := store.Save(ctx, strings.NewReader("image-bytes"), "rooms", "room", "photo.png", "image/png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/rooms/room-"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	onDisk := filepath.Join(cfg.Upload.Root, strings.TrimPrefix(url, "/uploads/"))
	data, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))

	err = store.Delete(ctx, url)
	require.NoError(t, err)

	_, err = os.Stat(onDisk)
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStorage_DeleteIgnoresForeignURL(t *testing.T) {
	cfg := &config.Config{}
	cfg.Upload.Root = t.TempDir()

	store := storage.NewLocalStorage(cfg, mocks.NewOtel())
	ctx := context.Background()

	assert.NoError(t, store.Delete(ctx, "https://cdn.example.com/bucket/rooms/room-abc.jpg"))
	assert.NoError(t, store.Delete(ctx, "/uploads/rooms/room-missing.jpg"))
}
