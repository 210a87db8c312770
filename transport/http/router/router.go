package router

import (
	"epsec/internal/handlers/auth"
	"epsec/internal/handlers/booking"
	"epsec/internal/handlers/catalog"
	"epsec/internal/handlers/inquiry"
	"epsec/internal/handlers/stats"
	"epsec/internal/handlers/testimonial"
	"epsec/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth        auth.Handler
	User        user.Handler
	Catalog     catalog.Handler
	Booking     booking.Handler
	Inquiry     inquiry.Handler
	Testimonial testimonial.Handler
	Stats       stats.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Catalog.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Inquiry.Router(routerGroup)
		r.DomainHandlers.Testimonial.Router(routerGroup)
		r.DomainHandlers.Stats.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
