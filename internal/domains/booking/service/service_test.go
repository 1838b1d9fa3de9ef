package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mailerMocks "robles/infras/mailer/mocks"
	"robles/infras/otel/mocks"
	bookingMocks "robles/internal/domains/booking/mocks"
	"robles/internal/domains/booking/model"
	"robles/internal/domains/booking/model/dto"
	"robles/internal/domains/booking/service"
	roomMocks "robles/internal/domains/room/mocks"
	"robles/shared/constant"
	"robles/shared/failure"
)

func newService(t *testing.T) (service.WebBooking, *bookingMocks.MockWebBooking, *roomMocks.MockRoom, *mailerMocks.MockMailer) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := bookingMocks.NewMockWebBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockMailer := mailerMocks.NewMockMailer(ctrl)

	svc := service.New(mockRepo, mockRoomRepo, mockMailer, mocks.NewOtel())

	return svc, mockRepo, mockRoomRepo, mockMailer
}

func TestBookingService_Create(t *testing.T) {
	svc, repo, _, mail := newService(t)

	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, booking model.WebBooking) error {
			assert.Equal(t, constant.BookingStatusConfirmed, booking.Status)
			assert.NotEmpty(t, booking.ID)
			return nil
		})
	mail.EXPECT().SendBookingConfirmation(gomock.Any(), gomock.Any()).Return(true)

	res, err := svc.Create(context.Background(), dto.CreateBookingRequest{
		GuestName:  "Carlos Mosquera",
		Email:      "carlos@example.com",
		Type:       "room",
		ItemID:     "room-abc",
		ItemName:   "Habitación 101",
		CheckIn:    "2026-09-10",
		CheckOut:   "2026-09-12",
		Guests:     2,
		TotalPrice: 240000,
	})

	require.NoError(t, err)
	assert.True(t, res.EmailSent)
	assert.Equal(t, "Reserva creada correctamente. Se ha enviado la confirmación por correo electrónico.", res.Message)
}

func TestBookingService_Create_ReportsUnsentEmail(t *testing.T) {
	svc, repo, _, mail := newService(t)

	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	mail.EXPECT().SendBookingConfirmation(gomock.Any(), gomock.Any()).Return(false)

	res, err := svc.Create(context.Background(), dto.CreateBookingRequest{
		GuestName: "Carlos",
		Email:     "carlos@example.com",
		Type:      "venue",
		ItemID:    "venue-abc",
		ItemName:  "Salón Principal",
		CheckIn:   "2026-09-10T14:00",
		CheckOut:  "2026-09-10T18:00",
		Guests:    40,
	})

	require.NoError(t, err)
	assert.False(t, res.EmailSent)
	assert.NotEmpty(t, res.ID)
}

func TestBookingService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    string
		setupMock func(repo *bookingMocks.MockWebBooking)
		wantErr   bool
		wantCode  int
	}{
		{
			name:   "valid transition",
			status: "checked-in",
			setupMock: func(repo *bookingMocks.MockWebBooking) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.WebBooking{ID: "wb-abc"}, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:      "unknown status",
			status:    "paused",
			setupMock: func(repo *bookingMocks.MockWebBooking) {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name:   "missing booking",
			status: "cancelled",
			setupMock: func(repo *bookingMocks.MockWebBooking) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.WebBooking{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _, _ := newService(t)
			tt.setupMock(repo)

			res, err := svc.UpdateStatus(context.Background(), "wb-abc", dto.UpdateBookingStatusRequest{Status: tt.status})

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.status, res.Status)
			}
		})
	}
}

func TestBookingService_GetStats(t *testing.T) {
	svc, repo, roomRepo, _ := newService(t)

	roomRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(20, nil)
	roomRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(7, nil)
	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(12, nil)
	repo.EXPECT().SumFloat(gomock.Any(), "total_price", gomock.Any()).Return(3600000.0, nil)

	res, err := svc.GetStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 20, res.TotalRooms)
	assert.Equal(t, 7, res.OccupiedRooms)
	assert.Equal(t, 12, res.TotalReservations)
	assert.Equal(t, 12, res.UpcomingEvents)
	assert.Equal(t, 3600000.0, res.Revenue)
}
