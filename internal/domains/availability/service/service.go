package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"agenda/infras/otel"
	"agenda/internal/domains/availability/model"
	"agenda/internal/domains/availability/model/dto"
	bhModel "agenda/internal/domains/businesshours/model"
	bhRepo "agenda/internal/domains/businesshours/repository"
	slotModel "agenda/internal/domains/slot/model"
	slotRepo "agenda/internal/domains/slot/repository"
	"agenda/shared"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	"agenda/shared/failure"
	"agenda/shared/localtime"
	"agenda/shared/timezone"
)

// resolverFetchLimit bounds how many rows a single availability check pulls.
// A company's slot table stays far below this in practice.
const resolverFetchLimit = 1000

type Availability interface {
	Check(ctx context.Context, req dto.CheckAvailabilityRequest) (dto.CheckAvailabilityResponse, error)
	CheckRange(ctx context.Context, companyID string, r model.Range) (model.Decision, error)
}

type serviceImpl struct {
	slotRepo slotRepo.Slot
	bhRepo   bhRepo.BusinessHours
	otel     otel.Otel
}

func New(slotRepo slotRepo.Slot, bhRepo bhRepo.BusinessHours, otel otel.Otel) Availability {
	return &serviceImpl{
		slotRepo: slotRepo,
		bhRepo:   bhRepo,
		otel:     otel,
	}
}

func (s *serviceImpl) Check(ctx context.Context, req dto.CheckAvailabilityRequest) (res dto.CheckAvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Check")
	defer scope.End()
	defer scope.TraceIfError(err)

	r, err := req.ToRange()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse availability request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date/time format: %v", err)) // nolint:wrapcheck
	}

	decision, err := s.CheckRange(ctx, req.CompanyID, r)
	if err != nil {
		return res, err
	}

	res.FromDecision(decision)

	return res, nil
}

// CheckRange loads the company's slots and envelope and runs the pure
// resolver on them. Decisions are never cached: a stale yes is worse than
// the two reads.
func (s *serviceImpl) CheckRange(ctx context.Context, companyID string, r model.Range) (decision model.Decision, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckRange")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{
		Page:    constant.DefaultValuePage,
		Limit:   resolverFetchLimit,
		SortBy:  slotModel.FieldStartAt,
		SortDir: gDto.SortDirAsc,
	}

	slots, err := s.slotRepo.GetAll(ctx, params, shared.FilterByCompany(companyID, slotModel.FieldCompanyID, slotModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get slots")

		return decision, fmt.Errorf("failed to get slots: %w", err)
	}

	hoursParams := gDto.QueryParams{
		Page:    constant.DefaultValuePage,
		Limit:   resolverFetchLimit,
		SortBy:  bhModel.FieldWeekday,
		SortDir: gDto.SortDirAsc,
	}

	hours, err := s.bhRepo.GetAll(ctx, hoursParams, shared.FilterByCompany(companyID, bhModel.FieldCompanyID, bhModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get business hours")

		return decision, fmt.Errorf("failed to get business hours: %w", err)
	}

	return model.CheckRange(r, slots, hours, localtime.FromTime(timezone.Now())), nil
}
