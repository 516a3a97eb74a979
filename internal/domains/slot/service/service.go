package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"agenda/config"
	"agenda/infras/otel"
	catalogModel "agenda/internal/domains/catalog/model"
	catalogRepo "agenda/internal/domains/catalog/repository"
	"agenda/internal/domains/slot/model"
	"agenda/internal/domains/slot/model/dto"
	"agenda/internal/domains/slot/repository"
	"agenda/shared"
	"agenda/shared/cache"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	"agenda/shared/failure"
	"agenda/shared/localtime"
)

const (
	cacheGetSlot    = "slot:get"
	cacheGetAllSlot = "slot:gets"
	cacheCountSlot  = "slot:count"
)

type Slot interface {
	Create(ctx context.Context, req dto.CreateSlotRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetSlotsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, companyID, id string) (dto.SlotResponse, error)
	Update(ctx context.Context, req dto.UpdateSlotRequest, companyID, id string) error
	Delete(ctx context.Context, companyID, id string) error
}

type serviceImpl struct {
	repo        repository.Slot
	catalogRepo catalogRepo.Catalog
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(repo repository.Slot, catalogRepo catalogRepo.Catalog, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Slot {
	return &serviceImpl{
		repo:        repo,
		catalogRepo: catalogRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateSlotRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	slot, err := req.ToModel(user)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse slot request")

		return failure.BadRequestFromString(fmt.Sprintf("invalid date/time format: %v", err)) // nolint:wrapcheck
	}

	if !slot.HasValidRange() {
		return failure.BadRequestFromString("start_at must be before end_at") // nolint:wrapcheck
	}

	if slot.ServiceID != nil {
		if err = s.ensureServiceExists(ctx, slot.CompanyID, *slot.ServiceID); err != nil {
			return err
		}
	}

	if err = s.repo.Insert(ctx, slot); err != nil {
		log.Error().Err(err).Msg("failed to create slot")

		return fmt.Errorf("failed to create slot: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllSlot)
		shared.InvalidateCaches(c, s.cache, cacheCountSlot)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetSlotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllSlot, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for slots")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count slots")

		return res, fmt.Errorf("failed to count slots: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get slots")

		return res, fmt.Errorf("failed to get slots: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save slots to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountSlot, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for slot count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count slots")

		return res, fmt.Errorf("failed to count slots: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save slot count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, companyID, id string) (res dto.SlotResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(nil)

	cacheKey := shared.BuildCacheKey(cacheGetSlot, companyID, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for slot")

		return res, nil
	}

	slot, err := s.repo.Get(ctx, shared.FilterByCompanyAndID(companyID, id, model.FieldCompanyID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get slot")

		return res, fmt.Errorf("failed to get slot: %w", err)
	}

	if slot.ID == constant.Empty {
		return res, failure.NotFound("slot not found") // nolint:wrapcheck
	}

	res.FromModel(slot)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save slot to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateSlotRequest, companyID, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(nil)

	if req == (dto.UpdateSlotRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByCompanyAndID(companyID, id, model.FieldCompanyID, model.FieldID, model.TableName)

	slot, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get slot")

		return fmt.Errorf("failed to get slot: %w", err)
	}

	if slot.ID == constant.Empty {
		log.Error().Msg("slot not found")

		return failure.NotFound("slot not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)

	if req.HasTimeChange() {
		if err = mergeTimePatch(&slot, req, updatedFields); err != nil {
			return err
		}

		if !slot.HasValidRange() {
			return failure.BadRequestFromString("start_at must be before end_at") // nolint:wrapcheck
		}
	}

	if req.ServiceID != nil {
		if *req.ServiceID == constant.Empty {
			updatedFields[model.FieldServiceID] = nil
		} else {
			if err = s.ensureServiceExists(ctx, companyID, *req.ServiceID); err != nil {
				return err
			}

			updatedFields[model.FieldServiceID] = *req.ServiceID
		}
	}

	if req.ScheduleID != nil {
		if *req.ScheduleID == constant.Empty {
			updatedFields[model.FieldScheduleID] = nil
		} else {
			updatedFields[model.FieldScheduleID] = *req.ScheduleID
		}
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update slot")

		return fmt.Errorf("failed to update slot: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetSlot, companyID, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete slot from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllSlot)
		shared.InvalidateCaches(c, s.cache, cacheCountSlot)
	}()

	return nil
}

// Delete removes the slot only. Bookings made while the slot was open are
// kept; history is not rewritten when a company closes a window.
func (s *serviceImpl) Delete(ctx context.Context, companyID, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(nil)

	filter := shared.FilterByCompanyAndID(companyID, id, model.FieldCompanyID, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if slot exists")

		return fmt.Errorf("failed to check if slot exists: %w", err)
	}

	if !exist {
		log.Error().Msg("slot not found")

		return failure.NotFound("slot not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete slot")

		return fmt.Errorf("failed to delete slot: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetSlot, companyID, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete slot from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllSlot)
		shared.InvalidateCaches(c, s.cache, cacheCountSlot)
	}()

	return nil
}

func (s *serviceImpl) ensureServiceExists(ctx context.Context, companyID, serviceID string) error {
	exists, err := s.catalogRepo.Exist(ctx, shared.FilterByCompanyAndID(
		companyID, serviceID, catalogModel.FieldCompanyID, catalogModel.FieldID, catalogModel.TableName,
	))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if service exists")

		return fmt.Errorf("failed to check if service exists: %w", err)
	}

	if !exists {
		return failure.BadRequestFromString("service does not exist") // nolint:wrapcheck
	}

	return nil
}

// mergeTimePatch applies the time fields of a partial update onto the stored
// slot and mirrors them into the column map persisted by the repository.
func mergeTimePatch(slot *model.Slot, req dto.UpdateSlotRequest, updatedFields map[string]any) error {
	if req.StartAt != constant.Empty {
		startAt, err := localtime.Parse(req.StartAt)
		if err != nil {
			return failure.BadRequestFromString(fmt.Sprintf("invalid date/time format: %v", err)) // nolint:wrapcheck
		}

		slot.StartAt = startAt
		updatedFields[model.FieldStartAt] = startAt
	}

	if req.EndAt != constant.Empty {
		endAt, err := localtime.Parse(req.EndAt)
		if err != nil {
			return failure.BadRequestFromString(fmt.Sprintf("invalid date/time format: %v", err)) // nolint:wrapcheck
		}

		slot.EndAt = endAt
		updatedFields[model.FieldEndAt] = endAt
	}

	if req.AllDay != nil {
		slot.AllDay = *req.AllDay
	}

	return nil
}
