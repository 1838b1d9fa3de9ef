package venue_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"robles/infras/otel/mocks"
	"robles/internal/domains/venue/model/dto"
	"robles/internal/domains/venue/service"
	venueHandler "robles/internal/handlers/venue"
)

type stubService struct {
	service.Venue

	gotVenueID  string
	gotImageURL string
}

func (s *stubService) GetArrangements(_ context.Context, venueID string) ([]dto.ArrangementResponse, error) {
	s.gotVenueID = venueID

	return []dto.ArrangementResponse{}, nil
}

func (s *stubService) DeleteGalleryImage(_ context.Context, _, imageURL string) (dto.VenueResponse, error) {
	s.gotImageURL = imageURL

	return dto.VenueResponse{}, nil
}

func newRouter(svc service.Venue) chi.Router {
	handler := venueHandler.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router
}

func TestVenueHandler_CapacityArrangementsRoute(t *testing.T) {
	svc := &stubService{}
	router := newRouter(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/venues/salon-piedra/capacity-arrangements", nil)

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "salon-piedra", svc.gotVenueID)
}

func TestVenueHandler_DeleteGalleryImage_ReadsQueryParam(t *testing.T) {
	svc := &stubService{}
	router := newRouter(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/venues/salon-piedra/gallery?image_url=%2Fuploads%2Fvenues%2Fsalon-piedra%2Fg.jpg", nil)

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/uploads/venues/salon-piedra/g.jpg", svc.gotImageURL)
}
