package service

import (
	"context"
	"strings"

	"robles/infras/mailer"
	"robles/infras/otel"
	"robles/internal/domains/booking/model"
	"robles/internal/domains/booking/model/dto"
	"robles/internal/domains/booking/repository"
	roomModel "robles/internal/domains/room/model"
	roomRepository "robles/internal/domains/room/repository"
	"robles/shared"
	"robles/shared/constant"
	gDto "robles/shared/dto"
	"robles/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	msgBookingCreated  = "Reserva creada correctamente. Se ha enviado la confirmación por correo electrónico."
	msgBookingNotFound = "Reserva no encontrada"
	msgInvalidStatus   = "status inválido"
)

type WebBooking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	GetReservations(ctx context.Context) ([]dto.ReservationResponse, error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdateBookingStatusRequest) (dto.BookingStatusResponse, error)
	GetStats(ctx context.Context) (dto.DashboardStatsResponse, error)
}

type serviceImpl struct {
	repo     repository.WebBooking
	roomRepo roomRepository.Room
	mailer   mailer.Mailer
	otel     otel.Otel
}

func New(repo repository.WebBooking, roomRepo roomRepository.Room, mailer mailer.Mailer, otel otel.Otel) WebBooking {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		mailer:   mailer,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking := req.ToModel()

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to insert booking")

		return res, err
	}

	sent := s.mailer.SendBookingConfirmation(ctx, mailer.Confirmation{
		To:          booking.Email,
		GuestName:   booking.GuestName,
		BookingType: booking.Type,
		ItemName:    booking.ItemName,
		CheckIn:     booking.CheckIn,
		CheckOut:    booking.CheckOut,
		Guests:      booking.Guests,
		TotalPrice:  booking.TotalPrice,
	})
	if !sent {
		log.Warn().Str("booking_id", booking.ID).Msg("booking confirmation email was not sent")
	}

	return dto.CreateBookingResponse{
		ID:        booking.ID,
		Message:   msgBookingCreated,
		EmailSent: sent,
	}, nil
}

func (s *serviceImpl) GetReservations(ctx context.Context) (res []dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetReservations")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookings, err := s.repo.GetAll(ctx, gDto.QueryParams{
		SortBy:  model.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, err
	}

	return dto.ReservationsFromModels(bookings), nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateBookingStatusRequest) (res dto.BookingStatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	status := strings.TrimSpace(req.Status)
	if !model.ValidStatus(status) {
		return res, failure.BadRequestFromString(msgInvalidStatus)
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, err
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound(msgBookingNotFound)
	}

	if err = s.repo.Update(ctx, map[string]any{model.FieldStatus: status}, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return res, err
	}

	return dto.BookingStatusResponse{ID: booking.ID, Status: status}, nil
}

func (s *serviceImpl) GetStats(ctx context.Context) (res dto.DashboardStatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetStats")
	defer scope.End()
	defer scope.TraceIfError(err)

	totalRooms, err := s.roomRepo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, err
	}

	occupied, err := s.roomRepo.Count(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    roomModel.FieldStatus,
				Value:    constant.RoomStatusOccupied,
				Operator: gDto.FilterOperatorEq,
				Table:    roomModel.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to count occupied rooms")

		return res, err
	}

	bookings, err := s.repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, err
	}

	revenue, err := s.repo.SumFloat(ctx, model.FieldTotalPrice, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to sum booking revenue")

		return res, err
	}

	return dto.DashboardStatsResponse{
		TotalReservations: bookings,
		OccupiedRooms:     occupied,
		TotalRooms:        totalRooms,
		UpcomingEvents:    bookings,
		Revenue:           revenue,
	}, nil
}
