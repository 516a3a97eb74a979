package calendar

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"agenda/infras/otel"
	"agenda/internal/domains/calendar/model/dto"
	"agenda/internal/domains/calendar/service"
	"agenda/shared/constant"
	"agenda/shared/failure"
	"agenda/shared/localtime"
	"agenda/shared/timezone"
	"agenda/shared/validator"
	"agenda/transport/http/response"
)

// defaultWindowDays is the span rendered when the widget does not ask for a
// specific window.
const defaultWindowDays = 31

type Handler struct {
	service service.Calendar
	otel    otel.Otel
}

func New(service service.Calendar, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/calendar", func(routerGroup chi.Router) {
		routerGroup.Get("/events", handler.GetCalendarEvents)
		routerGroup.Post("/selection", handler.CheckSelection)
	})
}

// GetCalendarEvents returns render ready events for the calendar widget.
// @Summary Get calendar events
// @Description Retrieve slots and bookings of a company as calendar events. Active slots render green, paused slots red, bookings indigo. Recurring slots are expanded inside the window.
// @Tags Calendar
// @Accept json
// @Produce json
// @Param company_id query string true "Company ID"
// @Param from query string false "Window start (YYYY-MM-DDTHH:MM:SS, defaults to start of today)"
// @Param to query string false "Window end (YYYY-MM-DDTHH:MM:SS, defaults to 31 days after from)"
// @Success 200 {object} response.Data[dto.GetCalendarEventsResponse] "Calendar events"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/calendar/events [get]
func (handler *Handler) GetCalendarEvents(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCalendarEvents")
	defer scope.End()

	companyID := r.URL.Query().Get(constant.RequestParamCompanyID)
	if companyID == "" {
		response.WithError(w, failure.BadRequestFromString("company_id is required"))

		return
	}

	from := localtime.FromTime(timezone.Now()).StartOfDay()
	if raw := r.URL.Query().Get("from"); raw != "" {
		parsed, err := localtime.Parse(raw)
		if err != nil {
			response.WithError(w, failure.BadRequestFromString("invalid from parameter"))

			return
		}

		from = parsed
	}

	to := from.AddDays(defaultWindowDays)
	if raw := r.URL.Query().Get("to"); raw != "" {
		parsed, err := localtime.Parse(raw)
		if err != nil {
			response.WithError(w, failure.BadRequestFromString("invalid to parameter"))

			return
		}

		to = parsed
	}

	if to.Before(from) {
		response.WithError(w, failure.BadRequestFromString("to must not be before from"))

		return
	}

	events, err := handler.service.Events(ctx, companyID, from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get calendar events")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Calendar events retrieved successfully")

	response.WithJSON(w, http.StatusOK, events)
}

// CheckSelection resolves a calendar grid drag.
// @Summary Check a calendar selection
// @Description Run a drag selection through the availability resolver. A selection is never bookable without passing the resolver.
// @Tags Calendar
// @Accept json
// @Produce json
// @Param request body dto.CheckSelectionRequest true "Check Selection Request"
// @Success 200 {object} response.Data[availabilityDto.CheckAvailabilityResponse] "Selection decision"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/calendar/selection [post]
func (handler *Handler) CheckSelection(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckSelection")
	defer scope.End()

	req := dto.CheckSelectionRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	decision, err := handler.service.CheckSelection(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check selection")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Selection checked successfully")

	response.WithJSON(w, http.StatusOK, decision)
}
