package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"agenda/config"
	"agenda/infras/otel/mocks"
	availabilityMocks "agenda/internal/domains/availability/mocks"
	availabilityDto "agenda/internal/domains/availability/model/dto"
	bookingMocks "agenda/internal/domains/booking/mocks"
	bookingModel "agenda/internal/domains/booking/model"
	"agenda/internal/domains/calendar/model"
	"agenda/internal/domains/calendar/model/dto"
	"agenda/internal/domains/calendar/service"
	slotMocks "agenda/internal/domains/slot/mocks"
	slotModel "agenda/internal/domains/slot/model"
	cacheMocks "agenda/shared/cache/mocks"
	"agenda/shared/localtime"
)

func newCalendarService(t *testing.T) (service.Calendar, *slotMocks.MockSlot, *bookingMocks.MockBooking, *availabilityMocks.MockAvailability, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockSlotRepo := slotMocks.NewMockSlot(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockAvailability := availabilityMocks.NewMockAvailability(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockSlotRepo, mockBookingRepo, mockAvailability, cfg, mockCache, mocks.NewOtel())

	return svc, mockSlotRepo, mockBookingRepo, mockAvailability, mockCache
}

func TestCalendarService_Events(t *testing.T) {
	from := localtime.New(2026, 9, 1, 0, 0, 0)
	to := localtime.New(2026, 9, 30, 23, 59, 59)

	slots := []slotModel.Slot{
		{
			ID:       "slot-active",
			StartAt:  localtime.New(2026, 9, 7, 9, 0, 0),
			EndAt:    localtime.New(2026, 9, 7, 12, 0, 0),
			IsActive: true,
		},
		{
			ID:       "slot-paused",
			StartAt:  localtime.New(2026, 9, 7, 14, 0, 0),
			EndAt:    localtime.New(2026, 9, 7, 17, 0, 0),
			IsActive: false,
		},
		{
			ID:       "slot-outside",
			StartAt:  localtime.New(2026, 10, 5, 9, 0, 0),
			EndAt:    localtime.New(2026, 10, 5, 12, 0, 0),
			IsActive: true,
		},
	}

	bookings := []bookingModel.Booking{
		{
			ID:      "booking-1",
			Title:   "Corte de cabelo",
			StartAt: localtime.New(2026, 9, 7, 9, 15, 0),
			EndAt:   localtime.New(2026, 9, 7, 9, 45, 0),
			Status:  bookingModel.StatusScheduled,
		},
	}

	t.Run("composes slots and bookings inside the window", func(t *testing.T) {
		svc, mockSlotRepo, mockBookingRepo, _, mockCache := newCalendarService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockSlotRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(slots, nil)

		mockBookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(bookings, nil)

		res, err := svc.Events(context.Background(), "company-1", from, to)

		assert.NoError(t, err)
		assert.Len(t, res.Events, 3)

		colorsByID := make(map[string]string, len(res.Events))
		for _, event := range res.Events {
			colorsByID[event.ID] = event.Color
		}

		assert.Equal(t, model.ColorSlotActive, colorsByID["slot-active"])
		assert.Equal(t, model.ColorSlotInactive, colorsByID["slot-paused"])
		assert.Equal(t, model.ColorBooking, colorsByID["booking-1"])
		assert.NotContains(t, colorsByID, "slot-outside")
	})

	t.Run("recurring slot expands across the window", func(t *testing.T) {
		svc, mockSlotRepo, mockBookingRepo, _, mockCache := newCalendarService(t)

		recurring := []slotModel.Slot{
			{
				ID:          "slot-rec",
				StartAt:     localtime.New(2026, 9, 7, 9, 0, 0),
				EndAt:       localtime.New(2026, 9, 7, 12, 0, 0),
				IsActive:    true,
				IsRecurring: true,
			},
		}

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockSlotRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(recurring, nil)

		mockBookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)

		res, err := svc.Events(context.Background(), "company-1", from, to)

		assert.NoError(t, err)
		assert.Len(t, res.Events, 4)
		assert.Equal(t, "2026-09-07T09:00:00", res.Events[0].Start)
		assert.Equal(t, "2026-09-28T09:00:00", res.Events[3].Start)
	})

	t.Run("cache hit skips repositories", func(t *testing.T) {
		svc, _, _, _, mockCache := newCalendarService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := svc.Events(context.Background(), "company-1", from, to)

		assert.NoError(t, err)
	})
}

func TestCalendarService_CheckSelection(t *testing.T) {
	svc, _, _, mockAvailability, _ := newCalendarService(t)

	req := dto.CheckSelectionRequest{
		CompanyID: "3f1b8d52-0000-4000-8000-000000000001",
		StartAt:   "2026-09-07T09:15:00",
		EndAt:     "2026-09-07T09:45:00",
	}

	mockAvailability.EXPECT().
		Check(gomock.Any(), req.ToAvailabilityRequest()).
		Return(availabilityDto.CheckAvailabilityResponse{Bookable: true, Reason: "ok", SlotID: "slot-1"}, nil)

	res, err := svc.CheckSelection(context.Background(), req)

	assert.NoError(t, err)
	assert.True(t, res.Bookable)
	assert.Equal(t, "slot-1", res.SlotID)
}
