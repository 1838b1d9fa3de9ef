package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"robles/infras/otel/mocks"
	"robles/internal/domains/staff/model/dto"
	authHandler "robles/internal/handlers/auth"
)

type stubService struct {
	gotEmail string
}

func (s *stubService) Login(_ context.Context, req dto.LoginRequest) (dto.LoginResponse, error) {
	s.gotEmail = req.Email

	return dto.LoginResponse{Email: req.Email, Role: "staff"}, nil
}

func TestAuthHandler_LoginMountedAtRoot(t *testing.T) {
	svc := &stubService{}
	handler := authHandler.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	body := strings.NewReader(`{"email":"admin@hotellosrobles.com","password":"secreto"}`)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", body)

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin@hotellosrobles.com", svc.gotEmail)
}
