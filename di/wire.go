//go:build wireinject
// +build wireinject

package di

import (
	"epsec/config"
	"epsec/infras/kafka"
	"epsec/infras/otel"
	"epsec/infras/postgres"
	"epsec/infras/redis"
	"epsec/infras/s3"
	"epsec/permissions"
	"epsec/shared/cache"
	"epsec/transport/http"
	"epsec/transport/http/middleware"
	"epsec/transport/http/router"

	authService "epsec/internal/domains/auth/service"
	bookingRepository "epsec/internal/domains/booking/repository"
	bookingService "epsec/internal/domains/booking/service"
	catalogRepository "epsec/internal/domains/catalog/repository"
	catalogService "epsec/internal/domains/catalog/service"
	inquiryRepository "epsec/internal/domains/inquiry/repository"
	inquiryService "epsec/internal/domains/inquiry/service"
	sessionRepository "epsec/internal/domains/session/repository"
	sessionService "epsec/internal/domains/session/service"
	statsService "epsec/internal/domains/stats/service"
	testimonialRepository "epsec/internal/domains/testimonial/repository"
	testimonialService "epsec/internal/domains/testimonial/service"
	userRepository "epsec/internal/domains/user/repository"
	userService "epsec/internal/domains/user/service"

	authHandler "epsec/internal/handlers/auth"
	bookingHandler "epsec/internal/handlers/booking"
	catalogHandler "epsec/internal/handlers/catalog"
	inquiryHandler "epsec/internal/handlers/inquiry"
	statsHandler "epsec/internal/handlers/stats"
	testimonialHandler "epsec/internal/handlers/testimonial"
	userHandler "epsec/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var sessionDomain = wire.NewSet(
	sessionRepository.New,
	sessionService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var userDomain = wire.NewSet(
	userRepository.NewFavorite,
	userService.New,
)

var catalogDomain = wire.NewSet(
	catalogRepository.NewDestination,
	catalogRepository.NewPackage,
	catalogRepository.NewHotel,
	catalogRepository.NewGuide,
	catalogService.NewDestination,
	catalogService.NewPackage,
	catalogService.NewHotel,
	catalogService.NewGuide,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var inquiryDomain = wire.NewSet(
	inquiryRepository.New,
	inquiryService.New,
)

var testimonialDomain = wire.NewSet(
	testimonialRepository.New,
	testimonialService.New,
)

var statsDomain = wire.NewSet(
	statsService.New,
)

var domains = wire.NewSet(
	sessionDomain,
	authDomain,
	userDomain,
	catalogDomain,
	bookingDomain,
	inquiryDomain,
	testimonialDomain,
	statsDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	catalogHandler.New,
	bookingHandler.New,
	inquiryHandler.New,
	testimonialHandler.New,
	statsHandler.New,
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
