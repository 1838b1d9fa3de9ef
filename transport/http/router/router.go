package router

import (
	"robles/internal/handlers/auth"
	"robles/internal/handlers/booking"
	"robles/internal/handlers/contact"
	"robles/internal/handlers/dining"
	"robles/internal/handlers/hotelinfo"
	"robles/internal/handlers/menu"
	"robles/internal/handlers/review"
	"robles/internal/handlers/room"
	"robles/internal/handlers/showcase"
	"robles/internal/handlers/venue"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth      auth.Handler
	Booking   booking.Handler
	Contact   contact.Handler
	Dining    dining.Handler
	HotelInfo hotelinfo.Handler
	Menu      menu.Handler
	Review    review.Handler
	Room      room.Handler
	Showcase  showcase.Handler
	Venue     venue.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Contact.Router(routerGroup)
		r.DomainHandlers.Dining.Router(routerGroup)
		r.DomainHandlers.HotelInfo.Router(routerGroup)
		r.DomainHandlers.Menu.Router(routerGroup)
		r.DomainHandlers.Review.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Showcase.Router(routerGroup)
		r.DomainHandlers.Venue.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
