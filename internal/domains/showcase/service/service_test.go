package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"robles/config"
	"robles/infras/otel/mocks"
	storageMocks "robles/infras/storage/mocks"
	showcaseMocks "robles/internal/domains/showcase/mocks"
	"robles/internal/domains/showcase/model"
	"robles/internal/domains/showcase/service"
	cacheMocks "robles/shared/cache/mocks"
	gDto "robles/shared/dto"
	"robles/shared/failure"
)

func newService(t *testing.T) (service.ShowcaseImage, *showcaseMocks.MockShowcaseImage, *storageMocks.MockStorage) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := showcaseMocks.NewMockShowcaseImage(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockStorage := storageMocks.NewMockStorage(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(model.HeroCarousel, mockRepo, cfg, mockCache, mocks.NewOtel(), mockStorage)

	return svc, mockRepo, mockStorage
}

func TestShowcaseService_Upload(t *testing.T) {
	svc, repo, store := newService(t)

	repo.EXPECT().MaxInt(gomock.Any(), "sort_order", gomock.Any()).Return(3, nil)
	store.EXPECT().
		Save(gomock.Any(), gomock.Any(), "hero-carousel", "hero", "lobby.jpg", gomock.Any()).
		Return("https://cdn.example.com/hero-carousel/hero-abc.jpg", nil)
	repo.EXPECT().InsertBulk(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, images []model.ShowcaseImage) error {
			require.Len(t, images, 1)
			assert.True(t, strings.HasPrefix(images[0].ID, "hero-"))
			assert.Equal(t, 4, images[0].SortOrder)
			return nil
		})
	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.ShowcaseImage{
			{ID: "hero-1", ImageURL: "a", SortOrder: 1},
			{ID: "hero-2", ImageURL: "b", SortOrder: 4},
		}, nil)

	res, err := svc.Upload(context.Background(), []gDto.FileUpload{
		{File: strings.NewReader("img"), Filename: "lobby.jpg", ContentType: "image/jpeg"},
		{File: strings.NewReader(""), Filename: ""},
	})

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "hero-1", res[0].ID)
}

func TestShowcaseService_Delete(t *testing.T) {
	t.Run("unknown image", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.ShowcaseImage{}, nil)

		err := svc.Delete(context.Background(), "hero-ghost")

		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("removes row and stored object", func(t *testing.T) {
		svc, repo, store := newService(t)

		image := model.ShowcaseImage{ID: "hero-1", ImageURL: "https://cdn.example.com/hero-carousel/hero-abc.jpg"}

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(image, nil)
		repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		store.EXPECT().Delete(gomock.Any(), image.ImageURL).Return(nil)

		err := svc.Delete(context.Background(), "hero-1")

		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
	})
}
