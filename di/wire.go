//go:build wireinject
// +build wireinject

package di

import (
	"robles/config"
	"robles/infras/mailer"
	"robles/infras/otel"
	"robles/infras/postgres"
	"robles/infras/redis"
	"robles/infras/s3"
	"robles/infras/storage"
	"robles/shared/cache"
	"robles/transport/http"
	"robles/transport/http/middleware"
	"robles/transport/http/router"

	bookingRepository "robles/internal/domains/booking/repository"
	bookingService "robles/internal/domains/booking/service"
	contactRepository "robles/internal/domains/contact/repository"
	contactService "robles/internal/domains/contact/service"
	diningRepository "robles/internal/domains/dining/repository"
	diningService "robles/internal/domains/dining/service"
	hotelInfoRepository "robles/internal/domains/hotelinfo/repository"
	hotelInfoService "robles/internal/domains/hotelinfo/service"
	menuRepository "robles/internal/domains/menu/repository"
	menuService "robles/internal/domains/menu/service"
	reviewRepository "robles/internal/domains/review/repository"
	reviewService "robles/internal/domains/review/service"
	roomRepository "robles/internal/domains/room/repository"
	roomService "robles/internal/domains/room/service"
	staffRepository "robles/internal/domains/staff/repository"
	staffService "robles/internal/domains/staff/service"
	venueRepository "robles/internal/domains/venue/repository"
	venueService "robles/internal/domains/venue/service"

	authHandler "robles/internal/handlers/auth"
	bookingHandler "robles/internal/handlers/booking"
	contactHandler "robles/internal/handlers/contact"
	diningHandler "robles/internal/handlers/dining"
	hotelInfoHandler "robles/internal/handlers/hotelinfo"
	menuHandler "robles/internal/handlers/menu"
	reviewHandler "robles/internal/handlers/review"
	roomHandler "robles/internal/handlers/room"
	venueHandler "robles/internal/handlers/venue"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	s3.New,
	storage.New,
	mailer.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var venueDomain = wire.NewSet(
	venueRepository.New,
	venueRepository.NewArrangement,
	venueService.New,
)

var menuDomain = wire.NewSet(
	menuRepository.New,
	menuService.New,
)

var diningDomain = wire.NewSet(
	diningRepository.New,
	diningService.New,
)

var contactDomain = wire.NewSet(
	contactRepository.New,
	contactService.New,
)

var reviewDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var hotelInfoDomain = wire.NewSet(
	hotelInfoRepository.New,
	hotelInfoService.New,
)

var staffDomain = wire.NewSet(
	staffRepository.New,
	staffService.New,
)

var domains = wire.NewSet(
	roomDomain,
	venueDomain,
	menuDomain,
	diningDomain,
	contactDomain,
	reviewDomain,
	bookingDomain,
	hotelInfoDomain,
	staffDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	bookingHandler.New,
	contactHandler.New,
	diningHandler.New,
	hotelInfoHandler.New,
	menuHandler.New,
	reviewHandler.New,
	roomHandler.New,
	provideShowcaseHandler,
	venueHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
