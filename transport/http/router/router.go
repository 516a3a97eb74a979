package router

import (
	"agenda/internal/handlers/availability"
	"agenda/internal/handlers/booking"
	"agenda/internal/handlers/businesshours"
	"agenda/internal/handlers/calendar"
	"agenda/internal/handlers/catalog"
	"agenda/internal/handlers/slot"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Slot          slot.Handler
	Booking       booking.Handler
	Availability  availability.Handler
	BusinessHours businesshours.Handler
	Catalog       catalog.Handler
	Calendar      calendar.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Slot.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Availability.Router(routerGroup)
		r.DomainHandlers.BusinessHours.Router(routerGroup)
		r.DomainHandlers.Catalog.Router(routerGroup)
		r.DomainHandlers.Calendar.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
