package room_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"robles/infras/otel/mocks"
	"robles/internal/domains/room/model/dto"
	"robles/internal/domains/room/service"
	roomHandler "robles/internal/handlers/room"
	gDto "robles/shared/dto"
)

type stubService struct {
	service.Room

	gotAvailableOnly bool
	gotImageURL      string
}

func (s *stubService) GetAll(_ context.Context, _ gDto.QueryParams, availableOnly bool) ([]dto.RoomResponse, error) {
	s.gotAvailableOnly = availableOnly

	return []dto.RoomResponse{}, nil
}

func (s *stubService) DeleteGalleryImage(_ context.Context, _, imageURL string) (dto.RoomResponse, error) {
	s.gotImageURL = imageURL

	return dto.RoomResponse{}, nil
}

func newRouter(svc service.Room) chi.Router {
	handler := roomHandler.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router
}

func TestRoomHandler_GetRooms_AvailableOnlyFilter(t *testing.T) {
	svc := &stubService{}
	router := newRouter(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/rooms?available_only=true", nil)

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, svc.gotAvailableOnly)
}

func TestRoomHandler_DeleteGalleryImage_ReadsQueryParam(t *testing.T) {
	svc := &stubService{}
	router := newRouter(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/rooms/room-1/gallery?image_url=%2Fuploads%2Frooms%2Froom-1%2Fg.jpg", nil)

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/uploads/rooms/room-1/g.jpg", svc.gotImageURL)
}
