package router

import (
	"github.com/go-chi/chi/v5"

	"hotelier/internal/handlers/admin"
	"hotelier/internal/handlers/booking"
	"hotelier/internal/handlers/health"
	"hotelier/internal/handlers/hotel"
)

type DomainHandlers struct {
	Hotel   hotel.Handler
	Booking booking.Handler
	Admin   admin.Handler
	Health  health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Health.Router(router)

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Hotel.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Admin.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
