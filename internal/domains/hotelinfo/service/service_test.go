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
	hotelinfoMocks "robles/internal/domains/hotelinfo/mocks"
	"robles/internal/domains/hotelinfo/model"
	"robles/internal/domains/hotelinfo/model/dto"
	"robles/internal/domains/hotelinfo/service"
	cacheMocks "robles/shared/cache/mocks"
)

func newService(t *testing.T) (service.HotelInfo, *hotelinfoMocks.MockHotelInfo) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := hotelinfoMocks.NewMockHotelInfo(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo
}

func TestHotelInfoService_Get_UsesCachedCopy(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := hotelinfoMocks.NewMockHotelInfo(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	phone := "310 437 4492"
	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			cached := value.(*dto.HotelInfoResponse)
			cached.Phone = &phone
			return nil
		})

	cfg := &config.Config{}
	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel())

	res, err := svc.Get(context.Background())

	require.NoError(t, err)
	require.NotNil(t, res.Phone)
	assert.Equal(t, phone, *res.Phone)
}

func TestHotelInfoService_Get_FallsBackToDefaults(t *testing.T) {
	svc, repo := newService(t)

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.HotelInfo{}, nil)

	res, err := svc.Get(context.Background())

	require.NoError(t, err)
	require.NotNil(t, res.Phone)
	assert.Equal(t, "310 437 4492", *res.Phone)
	require.NotNil(t, res.Whatsapp)
	assert.Equal(t, "+573104374492", *res.Whatsapp)
	require.NotNil(t, res.FacebookURL)
	assert.Empty(t, *res.FacebookURL)
}

func TestHotelInfoService_Update_SeedsMissingRow(t *testing.T) {
	svc, repo := newService(t)

	phone := "300 000 0000"
	saved := model.Default()
	saved.Phone = &phone

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.HotelInfo{}, nil)
	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, info model.HotelInfo) error {
			assert.Equal(t, model.RowID, info.ID)
			return nil
		})
	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
			assert.Equal(t, phone, fields["phone"])
			_, hasEmail := fields["email"]
			assert.False(t, hasEmail)
			return nil
		})
	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(saved, nil)

	res, err := svc.Update(context.Background(), dto.UpdateHotelInfoRequest{Phone: &phone})

	require.NoError(t, err)
	require.NotNil(t, res.Phone)
	assert.Equal(t, phone, *res.Phone)
}
