package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"robles/config"
	"robles/infras/otel/mocks"
	storageMocks "robles/infras/storage/mocks"
	diningMocks "robles/internal/domains/dining/mocks"
	"robles/internal/domains/dining/model"
	"robles/internal/domains/dining/model/dto"
	"robles/internal/domains/dining/service"
	cacheMocks "robles/shared/cache/mocks"
	"robles/shared/failure"
)

func newService(t *testing.T) (service.DiningArea, *diningMocks.MockDiningArea, *storageMocks.MockStorage) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := diningMocks.NewMockDiningArea(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockStorage := storageMocks.NewMockStorage(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel(), mockStorage)

	return svc, mockRepo, mockStorage
}

func TestDiningService_Create(t *testing.T) {
	t.Run("keeps client supplied id", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, area model.DiningArea) error {
				assert.Equal(t, "terraza", area.ID)
				return nil
			})

		res, err := svc.Create(context.Background(), dto.CreateDiningAreaRequest{
			ID:   "terraza",
			Name: "Terraza",
		})

		require.NoError(t, err)
		assert.Equal(t, "terraza", res.ID)
	})

	t.Run("duplicate id", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := svc.Create(context.Background(), dto.CreateDiningAreaRequest{
			ID:   "terraza",
			Name: "Terraza",
		})

		require.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})
}

func TestDiningService_Delete(t *testing.T) {
	t.Run("removes the stored image", func(t *testing.T) {
		svc, repo, store := newService(t)

		image := "https://cdn.example.com/dining/terraza.jpg"
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(model.DiningArea{ID: "terraza", Name: "Terraza", Image: &image}, nil)
		repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		store.EXPECT().Delete(gomock.Any(), image).Return(nil)

		err := svc.Delete(context.Background(), "terraza")

		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
	})

	t.Run("unknown area", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.DiningArea{}, nil)

		err := svc.Delete(context.Background(), "missing")

		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
