package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"robles/infras/otel/mocks"
	staffMocks "robles/internal/domains/staff/mocks"
	"robles/internal/domains/staff/model"
	"robles/internal/domains/staff/model/dto"
	"robles/internal/domains/staff/service"
	"robles/shared/failure"
)

func newService(t *testing.T) (service.Authenticator, *staffMocks.MockStaff) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := staffMocks.NewMockStaff(ctrl)

	return service.New(mockRepo, mocks.NewOtel()), mockRepo
}

func TestStaffService_Login(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func(repo *staffMocks.MockStaff)
		wantID    string
		wantRole  string
		wantErr   bool
	}{
		{
			name: "stored account",
			req:  dto.LoginRequest{Email: "maria@robles.com", Password: "secreto"},
			setupMock: func(repo *staffMocks.MockStaff) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(model.Staff{ID: "staff-maria", Name: "María", Email: "maria@robles.com", Password: "secreto", Role: "reception"}, nil)
			},
			wantID:   "staff-maria",
			wantRole: "reception",
		},
		{
			name: "admin fallback",
			req:  dto.LoginRequest{Email: "admin@robles.com", Password: "admin123"},
			setupMock: func(repo *staffMocks.MockStaff) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Staff{}, nil)
			},
			wantID:   "admin-1",
			wantRole: "admin",
		},
		{
			name: "reception fallback",
			req:  dto.LoginRequest{Email: "recepcion@robles.com", Password: "recepcion123"},
			setupMock: func(repo *staffMocks.MockStaff) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Staff{}, nil)
			},
			wantID:   "staff-1",
			wantRole: "staff",
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Email: "admin@robles.com", Password: "nope"},
			setupMock: func(repo *staffMocks.MockStaff) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Staff{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService(t)
			tt.setupMock(repo)

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, 401, failure.GetCode(err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, res.ID)
				assert.Equal(t, tt.wantRole, res.Role)
			}
		})
	}
}
