package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"agenda/infras/otel/mocks"
	"agenda/internal/domains/availability/model"
	"agenda/internal/domains/availability/model/dto"
	"agenda/internal/domains/availability/service"
	bhMocks "agenda/internal/domains/businesshours/mocks"
	bhModel "agenda/internal/domains/businesshours/model"
	slotMocks "agenda/internal/domains/slot/mocks"
	slotModel "agenda/internal/domains/slot/model"
	"agenda/shared/failure"
	"agenda/shared/localtime"
)

func newAvailabilityService(t *testing.T) (service.Availability, *slotMocks.MockSlot, *bhMocks.MockBusinessHours) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockSlotRepo := slotMocks.NewMockSlot(ctrl)
	mockBhRepo := bhMocks.NewMockBusinessHours(ctrl)

	return service.New(mockSlotRepo, mockBhRepo, mocks.NewOtel()), mockSlotRepo, mockBhRepo
}

func TestAvailabilityService_Check(t *testing.T) {
	slots := []slotModel.Slot{
		{
			ID:       "slot-1",
			StartAt:  localtime.New(2040, 6, 11, 9, 0, 0),
			EndAt:    localtime.New(2040, 6, 11, 12, 0, 0),
			IsActive: true,
		},
	}

	hours := []bhModel.BusinessHours{
		{Weekday: 1, OpensAt: "08:00", ClosesAt: "18:00", Enabled: true},
	}

	t.Run("contained range is bookable", func(t *testing.T) {
		svc, mockSlotRepo, mockBhRepo := newAvailabilityService(t)

		mockSlotRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(slots, nil)

		mockBhRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(hours, nil)

		res, err := svc.Check(context.Background(), dto.CheckAvailabilityRequest{
			CompanyID: "3f1b8d52-0000-4000-8000-000000000001",
			StartAt:   "2040-06-11T09:30:00",
			EndAt:     "2040-06-11T10:00:00",
		})

		assert.NoError(t, err)
		assert.True(t, res.Bookable)
		assert.Equal(t, model.ReasonOK, res.Reason)
		assert.Equal(t, "slot-1", res.SlotID)
	})

	t.Run("malformed datetime is a bad request", func(t *testing.T) {
		svc, _, _ := newAvailabilityService(t)

		_, err := svc.Check(context.Background(), dto.CheckAvailabilityRequest{
			CompanyID: "3f1b8d52-0000-4000-8000-000000000001",
			StartAt:   "2040-06-11 09:30:00",
			EndAt:     "2040-06-11T10:00:00",
		})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("slot repository error propagates", func(t *testing.T) {
		svc, mockSlotRepo, _ := newAvailabilityService(t)

		mockSlotRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := svc.Check(context.Background(), dto.CheckAvailabilityRequest{
			CompanyID: "3f1b8d52-0000-4000-8000-000000000001",
			StartAt:   "2040-06-11T09:30:00",
			EndAt:     "2040-06-11T10:00:00",
		})

		assert.Error(t, err)
	})
}
