package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"agenda/config"
	"agenda/infras/otel/mocks"
	catalogMocks "agenda/internal/domains/catalog/mocks"
	slotMocks "agenda/internal/domains/slot/mocks"
	"agenda/internal/domains/slot/model"
	"agenda/internal/domains/slot/model/dto"
	"agenda/internal/domains/slot/service"
	cacheMocks "agenda/shared/cache/mocks"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	"agenda/shared/failure"
	"agenda/shared/localtime"
	gModel "agenda/shared/model"
	"agenda/shared/timezone"
)

func newSlotService(t *testing.T) (service.Slot, *slotMocks.MockSlot, *catalogMocks.MockCatalog, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := slotMocks.NewMockSlot(ctrl)
	mockCatalog := catalogMocks.NewMockCatalog(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	// Cache writes and invalidations run on detached goroutines.
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(mockRepo, mockCatalog, cfg, mockCache, mockOtel), mockRepo, mockCatalog, mockCache
}

func TestSlotService_Create(t *testing.T) {
	svc, mockRepo, mockCatalog, _ := newSlotService(t)

	tests := []struct {
		name      string
		req       dto.CreateSlotRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			req: dto.CreateSlotRequest{
				CompanyID: "3f1b8d52-0000-4000-8000-000000000001",
				StartAt:   "2026-09-01T09:00:00",
				EndAt:     "2026-09-01T10:00:00",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, slot model.Slot) error {
						assert.True(t, slot.IsActive)
						assert.Equal(t, "2026-09-01T09:00:00", slot.StartAt.String())

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "inverted range rejected",
			req: dto.CreateSlotRequest{
				CompanyID: "3f1b8d52-0000-4000-8000-000000000001",
				StartAt:   "2026-09-01T10:00:00",
				EndAt:     "2026-09-01T09:00:00",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "zero length range rejected",
			req: dto.CreateSlotRequest{
				CompanyID: "3f1b8d52-0000-4000-8000-000000000001",
				StartAt:   "2026-09-01T09:00:00",
				EndAt:     "2026-09-01T09:00:00",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "all day needs no end",
			req: dto.CreateSlotRequest{
				CompanyID: "3f1b8d52-0000-4000-8000-000000000001",
				StartAt:   "2026-09-01T00:00:00",
				AllDay:    true,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "unknown service rejected",
			req: dto.CreateSlotRequest{
				CompanyID: "3f1b8d52-0000-4000-8000-000000000001",
				StartAt:   "2026-09-01T09:00:00",
				EndAt:     "2026-09-01T10:00:00",
				ServiceID: "3f1b8d52-0000-4000-8000-00000000beef",
			},
			setupMock: func() {
				mockCatalog.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "repository error",
			req: dto.CreateSlotRequest{
				CompanyID: "3f1b8d52-0000-4000-8000-000000000001",
				StartAt:   "2026-09-01T09:00:00",
				EndAt:     "2026-09-01T10:00:00",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSlotService_GetAll(t *testing.T) {
	svc, mockRepo, _, mockCache := newSlotService(t)

	slots := []model.Slot{
		{
			ID:        "slot-1",
			CompanyID: "company-1",
			StartAt:   localtime.New(2026, 9, 1, 9, 0, 0),
			EndAt:     localtime.New(2026, 9, 1, 10, 0, 0),
			IsActive:  true,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  "test-user",
				ModifiedBy: "test-user",
			},
		},
		{
			ID:        "slot-2",
			CompanyID: "company-1",
			StartAt:   localtime.New(2026, 9, 1, 14, 0, 0),
			EndAt:     localtime.New(2026, 9, 1, 15, 0, 0),
			IsActive:  false,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  "test-user",
				ModifiedBy: "test-user",
			},
		},
	}

	params := gDto.QueryParams{Page: 1, Limit: 10}

	t.Run("cache miss returns active and inactive slots", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss")).
			Times(2)

		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(2, nil)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(slots, nil)

		res, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Equal(t, 2, res.TotalData)
		assert.Len(t, res.Slots, 2)
		assert.Equal(t, "2026-09-01T09:00:00", res.Slots[0].StartAt)
		assert.False(t, res.Slots[1].IsActive)
	})

	t.Run("cache hit skips repository", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

		assert.NoError(t, err)
	})

	t.Run("count error", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss")).
			Times(2)

		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, errors.New("count error"))

		_, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

		assert.Error(t, err)
	})
}

func TestSlotService_Update(t *testing.T) {
	companyID := "company-1"
	slotID := "slot-1"

	stored := model.Slot{
		ID:        slotID,
		CompanyID: companyID,
		StartAt:   localtime.New(2026, 9, 1, 9, 0, 0),
		EndAt:     localtime.New(2026, 9, 1, 10, 0, 0),
		IsActive:  true,
	}

	t.Run("empty request rejected", func(t *testing.T) {
		svc, _, _, _ := newSlotService(t)

		err := svc.Update(context.Background(), dto.UpdateSlotRequest{}, companyID, slotID)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("slot not found", func(t *testing.T) {
		svc, mockRepo, _, _ := newSlotService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Slot{}, nil)

		isActive := false
		err := svc.Update(context.Background(), dto.UpdateSlotRequest{IsActive: &isActive}, companyID, slotID)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("time only patch moves one edge", func(t *testing.T) {
		svc, mockRepo, _, _ := newSlotService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(stored, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				endAt, ok := fields[model.FieldEndAt].(localtime.LocalTime)
				assert.True(t, ok)
				assert.Equal(t, "2026-09-01T11:00:00", endAt.String())
				assert.NotContains(t, fields, model.FieldStartAt)

				return nil
			})

		err := svc.Update(context.Background(), dto.UpdateSlotRequest{EndAt: "2026-09-01T11:00:00"}, companyID, slotID)

		assert.NoError(t, err)
	})

	t.Run("patch producing inverted range rejected", func(t *testing.T) {
		svc, mockRepo, _, _ := newSlotService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(stored, nil)

		err := svc.Update(context.Background(), dto.UpdateSlotRequest{EndAt: "2026-09-01T08:00:00"}, companyID, slotID)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("pause without touching times", func(t *testing.T) {
		svc, mockRepo, _, _ := newSlotService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(stored, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.NotContains(t, fields, model.FieldStartAt)
				assert.NotContains(t, fields, model.FieldEndAt)
				assert.Contains(t, fields, model.FieldIsActive)

				return nil
			})

		isActive := false
		err := svc.Update(context.Background(), dto.UpdateSlotRequest{IsActive: &isActive}, companyID, slotID)

		assert.NoError(t, err)
	})

	t.Run("booking back-reference persists", func(t *testing.T) {
		svc, mockRepo, _, _ := newSlotService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(stored, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, "9d0a6b1e-0000-4000-8000-000000000042", fields[model.FieldScheduleID])

				return nil
			})

		scheduleID := "9d0a6b1e-0000-4000-8000-000000000042"
		err := svc.Update(context.Background(), dto.UpdateSlotRequest{ScheduleID: &scheduleID}, companyID, slotID)

		assert.NoError(t, err)
	})

	t.Run("empty service id clears the binding to null", func(t *testing.T) {
		svc, mockRepo, _, _ := newSlotService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(stored, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				value, present := fields[model.FieldServiceID]
				assert.True(t, present)
				assert.Nil(t, value)

				return nil
			})

		empty := ""
		err := svc.Update(context.Background(), dto.UpdateSlotRequest{ServiceID: &empty}, companyID, slotID)

		assert.NoError(t, err)
	})

	t.Run("rebinding to an unknown service rejected", func(t *testing.T) {
		svc, mockRepo, mockCatalog, _ := newSlotService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(stored, nil)

		mockCatalog.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		serviceID := "3f1b8d52-0000-4000-8000-00000000dead"
		err := svc.Update(context.Background(), dto.UpdateSlotRequest{ServiceID: &serviceID}, companyID, slotID)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestSlotService_Delete(t *testing.T) {
	t.Run("delete leaves bookings alone", func(t *testing.T) {
		svc, mockRepo, _, _ := newSlotService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Delete(context.Background(), "company-1", "slot-1")

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, _, _ := newSlotService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Delete(context.Background(), "company-1", "slot-1")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
