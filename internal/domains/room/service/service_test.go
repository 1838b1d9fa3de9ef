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
	roomMocks "robles/internal/domains/room/mocks"
	"robles/internal/domains/room/model"
	"robles/internal/domains/room/model/dto"
	"robles/internal/domains/room/service"
	cacheMocks "robles/shared/cache/mocks"
	"robles/shared/failure"
)

func newService(t *testing.T) (service.Room, *roomMocks.MockRoom, *storageMocks.MockStorage, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockStorage := storageMocks.NewMockStorage(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel(), mockStorage)

	return svc, mockRepo, mockStorage, mockCache
}

func strPtr(s string) *string { return &s }

func TestRoomService_Create(t *testing.T) {
	tests := []struct {
		name       string
		req        dto.CreateRoomRequest
		setupMock  func(repo *roomMocks.MockRoom)
		wantErr    bool
		wantCode   int
		wantStatus string
	}{
		{
			name: "creation coerces unknown status to available",
			req: dto.CreateRoomRequest{
				Number: "101",
				Status: strPtr("flooded"),
			},
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, room model.Room) error {
						assert.Equal(t, "available", room.Status)
						assert.Equal(t, "101", room.Number)
						assert.Equal(t, 1, room.Capacity)
						return nil
					})
			},
			wantStatus: "available",
		},
		{
			name: "blank number rejected",
			req: dto.CreateRoomRequest{
				Number: "   ",
			},
			setupMock: func(repo *roomMocks.MockRoom) {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "duplicate number conflicts",
			req: dto.CreateRoomRequest{
				Number: "101",
			},
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _, _ := newService(t)
			tt.setupMock(repo)

			res, err := svc.Create(context.Background(), tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantStatus, res.Status)
				assert.NotEmpty(t, res.ID)
			}
		})
	}
}

func TestRoomService_Update_DropsInvalidStatus(t *testing.T) {
	svc, repo, _, _ := newService(t)

	existing := model.Room{ID: "room-abc", Number: "101", Status: "available"}

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
			_, hasStatus := fields["status"]
			assert.False(t, hasStatus)
			assert.Equal(t, 2, fields["floor"])
			return nil
		})
	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)

	floor := 2

	_, err := svc.Update(context.Background(), "room-abc", dto.UpdateRoomRequest{
		Floor:  &floor,
		Status: strPtr("flooded"),
	})

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
}

func TestRoomService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    string
		setupMock func(repo *roomMocks.MockRoom)
		wantErr   bool
		wantCode  int
	}{
		{
			name:   "valid status accepted",
			status: "maintenance",
			setupMock: func(repo *roomMocks.MockRoom) {
				room := model.Room{ID: "room-abc", Status: "available"}
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, "maintenance", fields["status"])
						return nil
					})
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)
			},
		},
		{
			name:   "unknown status rejected",
			status: "flooded",
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{ID: "room-abc"}, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name:   "missing room",
			status: "available",
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _, _ := newService(t)
			tt.setupMock(repo)

			_, err := svc.UpdateStatus(context.Background(), "room-abc", dto.UpdateRoomStatusRequest{Status: tt.status})

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestRoomService_DeleteGalleryImage(t *testing.T) {
	gallery := "/uploads/rooms/room-abc/gallery-1.jpg,/uploads/rooms/room-abc/gallery-2.jpg"

	tests := []struct {
		name      string
		imageURL  string
		setupMock func(repo *roomMocks.MockRoom, store *storageMocks.MockStorage)
		wantErr   bool
		wantCode  int
	}{
		{
			name:     "removes url ignoring trailing slash",
			imageURL: "/uploads/rooms/room-abc/gallery-1.jpg/",
			setupMock: func(repo *roomMocks.MockRoom, store *storageMocks.MockStorage) {
				room := model.Room{ID: "room-abc", Gallery: &gallery}
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)
				store.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, "/uploads/rooms/room-abc/gallery-2.jpg", fields["gallery"])
						return nil
					})
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)
			},
		},
		{
			name:     "unknown url not found",
			imageURL: "/uploads/rooms/room-abc/other.jpg",
			setupMock: func(repo *roomMocks.MockRoom, store *storageMocks.MockStorage) {
				room := model.Room{ID: "room-abc", Gallery: &gallery}
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name:     "blank url rejected",
			imageURL: "   ",
			setupMock: func(repo *roomMocks.MockRoom, store *storageMocks.MockStorage) {
				room := model.Room{ID: "room-abc", Gallery: &gallery}
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, store, _ := newService(t)
			tt.setupMock(repo, store)

			_, err := svc.DeleteGalleryImage(context.Background(), "room-abc", tt.imageURL)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				require.NoError(t, err)
			}
		})
	}
}
