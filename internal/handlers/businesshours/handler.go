package businesshours

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"agenda/infras/otel"
	"agenda/internal/domains/businesshours/model/dto"
	"agenda/internal/domains/businesshours/service"
	"agenda/shared/constant"
	"agenda/shared/failure"
	"agenda/shared/validator"
	"agenda/transport/http/response"
)

type Handler struct {
	service service.BusinessHours
	otel    otel.Otel
}

func New(service service.BusinessHours, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/business-hours", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBusinessHours)
		routerGroup.Put("/", handler.PutBusinessHours)
	})
}

// GetBusinessHours returns a company's weekly opening envelope.
// @Summary Get business hours
// @Description Retrieve the weekly opening envelope of a company, one row per configured weekday.
// @Tags BusinessHours
// @Accept json
// @Produce json
// @Param company_id query string true "Company ID"
// @Success 200 {object} response.Data[dto.GetBusinessHoursResponse] "Business hours"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/business-hours [get]
func (handler *Handler) GetBusinessHours(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBusinessHours")
	defer scope.End()

	companyID := r.URL.Query().Get(constant.RequestParamCompanyID)
	if companyID == "" {
		response.WithError(w, failure.BadRequestFromString("company_id is required"))

		return
	}

	hours, err := handler.service.GetByCompany(ctx, companyID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get business hours")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Business hours retrieved successfully")

	response.WithJSON(w, http.StatusOK, hours)
}

// PutBusinessHours replaces a company's weekly opening envelope.
// @Summary Put business hours
// @Description Replace the company's whole weekly envelope in one call.
// @Tags BusinessHours
// @Accept json
// @Produce json
// @Param request body dto.PutBusinessHoursRequest true "Put Business Hours Request"
// @Success 200 {object} response.Message "Business hours saved successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/business-hours [put]
// @Security BearerAuth
func (handler *Handler) PutBusinessHours(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PutBusinessHours")
	defer scope.End()

	req := dto.PutBusinessHoursRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Put(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to save business hours")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Business hours saved successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Business hours saved successfully")
}
