//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"hotelier/config"
	"hotelier/infras/jwt"
	"hotelier/infras/kafka"
	"hotelier/infras/metrics"
	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/infras/redis"
	adminModel "hotelier/internal/domains/admin/model"
	adminService "hotelier/internal/domains/admin/service"
	bookingRepository "hotelier/internal/domains/booking/repository"
	bookingService "hotelier/internal/domains/booking/service"
	"hotelier/internal/domains/hotel"
	hotelService "hotelier/internal/domains/hotel/service"
	"hotelier/internal/domains/invoice"
	"hotelier/internal/events"
	adminHandler "hotelier/internal/handlers/admin"
	bookingHandler "hotelier/internal/handlers/booking"
	healthHandler "hotelier/internal/handlers/health"
	hotelHandler "hotelier/internal/handlers/hotel"
	"hotelier/shared/cache"
	"hotelier/transport/http"
	"hotelier/transport/http/middleware"
	"hotelier/transport/http/router"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	provideRegisterer,
	metrics.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
	middleware.NewRateLimiter,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var hotelDomain = wire.NewSet(
	hotel.NewRegistry,
	hotelService.New,
)

var adminDomain = wire.NewSet(
	adminModel.NewIdentity,
	adminService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	invoice.NewGenerator,
	events.New,
	bookingService.New,
)

var domains = wire.NewSet(
	hotelDomain,
	adminDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	hotelHandler.New,
	bookingHandler.New,
	adminHandler.New,
	healthHandler.New,
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
