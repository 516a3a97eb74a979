package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"agenda/config"
	"agenda/infras/otel"
	availabilityModel "agenda/internal/domains/availability/model"
	availability "agenda/internal/domains/availability/service"
	availabilityDto "agenda/internal/domains/availability/model/dto"
	bookingModel "agenda/internal/domains/booking/model"
	bookingRepo "agenda/internal/domains/booking/repository"
	"agenda/internal/domains/calendar/model"
	"agenda/internal/domains/calendar/model/dto"
	slotModel "agenda/internal/domains/slot/model"
	slotRepo "agenda/internal/domains/slot/repository"
	"agenda/shared"
	"agenda/shared/cache"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	"agenda/shared/localtime"
)

const (
	cacheGetCalendarEvents = "calendar:events"

	calendarFetchLimit = 1000
)

type Calendar interface {
	Events(ctx context.Context, companyID string, from, to localtime.LocalTime) (dto.GetCalendarEventsResponse, error)
	CheckSelection(ctx context.Context, req dto.CheckSelectionRequest) (availabilityDto.CheckAvailabilityResponse, error)
}

type serviceImpl struct {
	slotRepo     slotRepo.Slot
	bookingRepo  bookingRepo.Booking
	availability availability.Availability
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	slotRepo slotRepo.Slot,
	bookingRepo bookingRepo.Booking,
	availability availability.Availability,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Calendar {
	return &serviceImpl{
		slotRepo:     slotRepo,
		bookingRepo:  bookingRepo,
		availability: availability,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// Events assembles the company calendar for a window: every slot occurrence,
// active or paused, plus every booking, mapped to render ready events.
func (s *serviceImpl) Events(ctx context.Context, companyID string, from, to localtime.LocalTime) (res dto.GetCalendarEventsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Events")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetCalendarEvents, companyID, from.String(), to.String())

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for calendar events")

		return res, nil
	}

	params := gDto.QueryParams{
		Page:    constant.DefaultValuePage,
		Limit:   calendarFetchLimit,
		SortBy:  slotModel.FieldStartAt,
		SortDir: gDto.SortDirAsc,
	}

	slots, err := s.slotRepo.GetAll(ctx, params, shared.FilterByCompany(companyID, slotModel.FieldCompanyID, slotModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get slots")

		return res, fmt.Errorf("failed to get slots: %w", err)
	}

	bookings, err := s.bookingRepo.GetAll(ctx, params, shared.FilterByCompany(companyID, bookingModel.FieldCompanyID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	events := make([]model.Event, 0, len(slots)+len(bookings))

	for _, slot := range slots {
		for _, occurrence := range availabilityModel.ExpandWeekly(slot, from, to) {
			event := model.EventFromSlot(occurrence)
			if eventInWindow(event, from, to) {
				events = append(events, event)
			}
		}
	}

	for _, booking := range bookings {
		event := model.EventFromBooking(booking)
		if eventInWindow(event, from, to) {
			events = append(events, event)
		}
	}

	res.FromEvents(events)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save calendar events to cache")
		}
	}()

	return res, nil
}

// CheckSelection runs a grid drag through the resolver. The calendar never
// decides bookability on its own.
func (s *serviceImpl) CheckSelection(ctx context.Context, req dto.CheckSelectionRequest) (res availabilityDto.CheckAvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckSelection")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.availability.Check(ctx, req.ToAvailabilityRequest())
}

func eventInWindow(event model.Event, from, to localtime.LocalTime) bool {
	if to.Before(event.Start) {
		return false
	}

	end := event.End
	if end.IsZero() {
		end = event.Start.AddDays(1).StartOfDay()
	}

	return !end.Before(from)
}
