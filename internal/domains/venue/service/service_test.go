package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"robles/config"
	"robles/infras/otel/mocks"
	storageMocks "robles/infras/storage/mocks"
	venueMocks "robles/internal/domains/venue/mocks"
	"robles/internal/domains/venue/model"
	"robles/internal/domains/venue/model/dto"
	"robles/internal/domains/venue/service"
	cacheMocks "robles/shared/cache/mocks"
	"robles/shared/failure"
)

func newService(t *testing.T) (service.Venue, *venueMocks.MockVenue, *venueMocks.MockArrangement) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := venueMocks.NewMockVenue(ctrl)
	mockArrRepo := venueMocks.NewMockArrangement(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockStorage := storageMocks.NewMockStorage(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockArrRepo, cfg, mockCache, mocks.NewOtel(), mockStorage)

	return svc, mockRepo, mockArrRepo
}

func strPtr(s string) *string { return &s }

func TestVenueService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateVenueRequest
		setupMock func(repo *venueMocks.MockVenue)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "blank description stored as null",
			req: dto.CreateVenueRequest{
				Name:        "  Salón Principal  ",
				Description: strPtr("   "),
			},
			setupMock: func(repo *venueMocks.MockVenue) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, venue model.Venue) error {
						assert.Equal(t, "Salón Principal", venue.Name)
						assert.Nil(t, venue.Description)
						return nil
					})
			},
		},
		{
			name: "blank name rejected",
			req: dto.CreateVenueRequest{
				Name: "   ",
			},
			setupMock: func(repo *venueMocks.MockVenue) {},
			wantErr:   true,
			wantCode:  400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)
			tt.setupMock(repo)

			res, err := svc.Create(context.Background(), tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, res.ID)
			}
		})
	}
}

func TestVenueService_GetArrangements(t *testing.T) {
	svc, repo, arrRepo := newService(t)

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Venue{ID: "venue-abc"}, nil)
	arrRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.CapacityArrangement{
			{ID: "arr-1", VenueID: "venue-abc", Name: "Auditorio", Capacity: 120, SortOrder: 1},
			{ID: "arr-2", VenueID: "venue-abc", Name: "Banquete", Capacity: 80, SortOrder: 2},
		}, nil)

	res, err := svc.GetArrangements(context.Background(), "venue-abc")

	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "arr-1", res[0].ID)
	assert.Nil(t, res[0].LayoutSchema)
}

func TestVenueService_GetArrangements_VenueMissing(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Venue{}, nil)

	_, err := svc.GetArrangements(context.Background(), "venue-ghost")

	require.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestVenueService_UpdateArrangement(t *testing.T) {
	t.Run("null schema left untouched", func(t *testing.T) {
		svc, _, arrRepo := newService(t)

		existing := model.CapacityArrangement{ID: "arr-1", VenueID: "venue-abc", Name: "Auditorio"}

		arrRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)
		arrRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				_, hasSchema := fields["layout_schema"]
				assert.False(t, hasSchema)
				assert.Equal(t, 150, fields["capacity"])
				return nil
			})
		arrRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)

		capacity := 150

		_, err := svc.UpdateArrangement(context.Background(), "venue-abc", "arr-1", dto.UpdateArrangementRequest{
			Capacity:     &capacity,
			LayoutSchema: json.RawMessage("null"),
		})

		require.NoError(t, err)
	})

	t.Run("unknown arrangement", func(t *testing.T) {
		svc, _, arrRepo := newService(t)

		arrRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.CapacityArrangement{}, nil)

		_, err := svc.UpdateArrangement(context.Background(), "venue-abc", "arr-ghost", dto.UpdateArrangementRequest{})

		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestVenueService_DeleteGalleryImage(t *testing.T) {
	svc, repo, _ := newService(t)

	gallery := "https://cdn.example.com/a.jpg,https://cdn.example.com/b.jpg"

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Venue{ID: "venue-abc", Gallery: &gallery}, nil)

	_, err := svc.DeleteGalleryImage(context.Background(), "venue-abc", "https://cdn.example.com/c.jpg")

	require.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}
