//go:build wireinject
// +build wireinject

package di

import (
	"agenda/config"
	"agenda/infras/jwt"
	"agenda/infras/kafka"
	"agenda/infras/otel"
	"agenda/infras/postgres"
	"agenda/infras/redis"
	"agenda/permissions"
	"agenda/shared/cache"
	"agenda/transport/http"
	"agenda/transport/http/middleware"
	"agenda/transport/http/router"

	"github.com/google/wire"

	availabilityService "agenda/internal/domains/availability/service"
	bookingRepository "agenda/internal/domains/booking/repository"
	bookingService "agenda/internal/domains/booking/service"
	businessHoursRepository "agenda/internal/domains/businesshours/repository"
	businessHoursService "agenda/internal/domains/businesshours/service"
	calendarService "agenda/internal/domains/calendar/service"
	catalogRepository "agenda/internal/domains/catalog/repository"
	catalogService "agenda/internal/domains/catalog/service"
	slotRepository "agenda/internal/domains/slot/repository"
	slotService "agenda/internal/domains/slot/service"

	availabilityHandler "agenda/internal/handlers/availability"
	bookingHandler "agenda/internal/handlers/booking"
	businessHoursHandler "agenda/internal/handlers/businesshours"
	calendarHandler "agenda/internal/handlers/calendar"
	catalogHandler "agenda/internal/handlers/catalog"
	slotHandler "agenda/internal/handlers/slot"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var catalogDomain = wire.NewSet(
	catalogRepository.New,
	catalogService.New,
)

var slotDomain = wire.NewSet(
	slotRepository.New,
	slotService.New,
)

var businessHoursDomain = wire.NewSet(
	businessHoursRepository.New,
	businessHoursService.New,
)

var availabilityDomain = wire.NewSet(
	availabilityService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var calendarDomain = wire.NewSet(
	calendarService.New,
)

var domains = wire.NewSet(
	catalogDomain,
	slotDomain,
	businessHoursDomain,
	availabilityDomain,
	bookingDomain,
	calendarDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	slotHandler.New,
	bookingHandler.New,
	availabilityHandler.New,
	businessHoursHandler.New,
	catalogHandler.New,
	calendarHandler.New,
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
