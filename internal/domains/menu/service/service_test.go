package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"robles/config"
	"robles/infras/otel/mocks"
	storageMocks "robles/infras/storage/mocks"
	menuMocks "robles/internal/domains/menu/mocks"
	"robles/internal/domains/menu/model"
	"robles/internal/domains/menu/model/dto"
	"robles/internal/domains/menu/service"
	cacheMocks "robles/shared/cache/mocks"
	gDto "robles/shared/dto"
	"robles/shared/failure"
)

func newService(t *testing.T) (service.MenuItem, *menuMocks.MockMenuItem) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := menuMocks.NewMockMenuItem(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockStorage := storageMocks.NewMockStorage(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel(), mockStorage)

	return svc, mockRepo
}

func TestMenuService_Create(t *testing.T) {
	t.Run("defaults available to true", func(t *testing.T) {
		svc, repo := newService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, item model.MenuItem) error {
				assert.Equal(t, "bandeja-paisa", item.ID)
				assert.True(t, item.Available)
				return nil
			})

		res, err := svc.Create(context.Background(), dto.CreateMenuItemRequest{
			ID:       "bandeja-paisa",
			Name:     "Bandeja Paisa",
			Price:    45000,
			Category: "platos-fuertes",
		})

		require.NoError(t, err)
		assert.Equal(t, "bandeja-paisa", res.ID)
		assert.True(t, res.Available)
	})

	t.Run("duplicate id", func(t *testing.T) {
		svc, repo := newService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := svc.Create(context.Background(), dto.CreateMenuItemRequest{
			ID:       "bandeja-paisa",
			Name:     "Bandeja Paisa",
			Category: "platos-fuertes",
		})

		require.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})
}

func TestMenuService_GetAll(t *testing.T) {
	t.Run("filters by category", func(t *testing.T) {
		svc, repo := newService(t)

		repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) ([]model.MenuItem, error) {
				require.Len(t, filter.Filters, 1)
				return []model.MenuItem{{ID: "limonada", Name: "Limonada", Category: "bebidas", Available: true}}, nil
			})

		res, err := svc.GetAll(context.Background(), "bebidas")

		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, "limonada", res[0].ID)
	})

	t.Run("no category returns everything", func(t *testing.T) {
		svc, repo := newService(t)

		repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) ([]model.MenuItem, error) {
				assert.Empty(t, filter.Filters)
				return nil, nil
			})

		_, err := svc.GetAll(context.Background(), "")

		require.NoError(t, err)
	})
}

func TestMenuService_Update_NotFound(t *testing.T) {
	svc, repo := newService(t)

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.MenuItem{}, nil)

	_, err := svc.Update(context.Background(), "missing", dto.UpdateMenuItemRequest{})

	require.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}
