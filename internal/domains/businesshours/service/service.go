package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"agenda/config"
	"agenda/infras/otel"
	"agenda/internal/domains/businesshours/model"
	"agenda/internal/domains/businesshours/model/dto"
	"agenda/internal/domains/businesshours/repository"
	"agenda/shared"
	"agenda/shared/cache"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	"agenda/shared/failure"
)

const (
	cacheGetBusinessHours = "business_hours:get"
)

type BusinessHours interface {
	GetByCompany(ctx context.Context, companyID string) (dto.GetBusinessHoursResponse, error)
	Put(ctx context.Context, req dto.PutBusinessHoursRequest) error
}

type serviceImpl struct {
	repo  repository.BusinessHours
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.BusinessHours, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) BusinessHours {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetByCompany(ctx context.Context, companyID string) (res dto.GetBusinessHoursResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByCompany")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBusinessHours, companyID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for business hours")

		return res, nil
	}

	params := gDto.QueryParams{
		Page:    constant.DefaultValuePage,
		Limit:   constant.DefaultValueLimit,
		SortBy:  model.FieldWeekday,
		SortDir: gDto.SortDirAsc,
	}

	models, err := s.repo.GetAll(ctx, params, shared.FilterByCompany(companyID, model.FieldCompanyID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get business hours")

		return res, fmt.Errorf("failed to get business hours: %w", err)
	}

	res.FromModels(companyID, models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save business hours to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Put(ctx context.Context, req dto.PutBusinessHoursRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Put")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	seen := make(map[int]bool, len(req.Days))
	for _, day := range req.Days {
		if seen[day.Weekday] {
			return failure.BadRequestFromString("duplicate weekday in request") // nolint:wrapcheck
		}

		seen[day.Weekday] = true
	}

	if err = s.repo.ReplaceForCompany(ctx, req.CompanyID, req.ToModels(user)); err != nil {
		log.Error().Err(err).Msg("failed to replace business hours")

		return fmt.Errorf("failed to replace business hours: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBusinessHours, req.CompanyID)); err != nil {
			log.Error().Err(err).Msg("failed to delete business hours from cache")
		}
	}()

	return nil
}
