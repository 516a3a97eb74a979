package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"agenda/config"
	"agenda/infras/kafka"
	kafkaMocks "agenda/infras/kafka/mocks"
	"agenda/infras/otel/mocks"
	availabilityModel "agenda/internal/domains/availability/model"
	availabilityMocks "agenda/internal/domains/availability/mocks"
	bookingMocks "agenda/internal/domains/booking/mocks"
	"agenda/internal/domains/booking/model"
	"agenda/internal/domains/booking/model/dto"
	"agenda/internal/domains/booking/service"
	catalogMocks "agenda/internal/domains/catalog/mocks"
	cacheMocks "agenda/shared/cache/mocks"
	"agenda/shared/constant"
	"agenda/shared/failure"
	"agenda/shared/localtime"
)

type bookingServiceMocks struct {
	repo         *bookingMocks.MockBooking
	catalog      *catalogMocks.MockCatalog
	availability *availabilityMocks.MockAvailability
	kafkaClient  *kafkaMocks.MockClient
	cache        *cacheMocks.MockRedisCache
}

func newBookingService(t *testing.T) (service.Booking, bookingServiceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := bookingServiceMocks{
		repo:         bookingMocks.NewMockBooking(ctrl),
		catalog:      catalogMocks.NewMockCatalog(ctrl),
		availability: availabilityMocks.NewMockAvailability(ctrl),
		kafkaClient:  kafkaMocks.NewMockClient(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Kafka.Topics.BookingEvents = "agenda.booking-events"

	// Cache writes and invalidations run on detached goroutines.
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(m.repo, m.catalog, m.availability, m.kafkaClient, cfg, m.cache, mocks.NewOtel())

	return svc, m
}

func validCreateRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		CompanyID:       "3f1b8d52-0000-4000-8000-000000000001",
		Title:           "Corte de cabelo",
		StartAt:         "2026-09-01T09:15:00",
		EndAt:           "2026-09-01T09:45:00",
		ServiceID:       "3f1b8d52-0000-4000-8000-000000000002",
		CustomerName:    "Maria Silva",
		CustomerContact: "+55 11 98765-4321",
	}
}

func bookable() availabilityModel.Decision {
	return availabilityModel.Decision{Bookable: true, Reason: availabilityModel.ReasonOK, SlotID: "slot-1"}
}

func TestBookingService_Create(t *testing.T) {
	t.Run("happy path persists agendado and emits created event", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.catalog.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		m.availability.EXPECT().CheckRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookable(), nil)

		m.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking) error {
				assert.Equal(t, model.StatusScheduled, booking.Status)
				assert.Equal(t, "2026-09-01T09:15:00", booking.StartAt.String())
				assert.Equal(t, "indigo", booking.Color)

				return nil
			})

		published := make(chan kafka.Message, 1)
		m.kafkaClient.EXPECT().
			SendMessages(gomock.Any(), "agenda.booking-events", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
				published <- messages[0]

				return nil
			})

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "operator-1")
		res, err := svc.Create(ctx, validCreateRequest())

		assert.NoError(t, err)
		assert.Equal(t, model.StatusScheduled, res.Status)
		assert.NotEmpty(t, res.ID)

		select {
		case message := <-published:
			event, ok := message.Value.(dto.BookingEvent)
			assert.True(t, ok)
			assert.Equal(t, dto.EventBookingCreated, event.Type)
			assert.Equal(t, model.StatusScheduled, event.Status)
		case <-time.After(time.Second):
			t.Fatal("expected a booking.created event")
		}
	})

	t.Run("unknown service refused before resolving", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.catalog.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := svc.Create(context.Background(), validCreateRequest())

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("unresolvable range refused", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.catalog.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		m.availability.EXPECT().
			CheckRange(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(availabilityModel.Decision{Bookable: false, Reason: availabilityModel.ReasonNoContainingSlot}, nil)

		_, err := svc.Create(context.Background(), validCreateRequest())

		assert.Error(t, err)
		assert.Equal(t, 422, failure.GetCode(err))
	})

	t.Run("overlap race maps to conflict", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.catalog.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		m.availability.EXPECT().CheckRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookable(), nil)

		m.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(&pq.Error{Code: "23P01"})

		_, err := svc.Create(context.Background(), validCreateRequest())

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("invalid datetime", func(t *testing.T) {
		svc, _ := newBookingService(t)

		req := validCreateRequest()
		req.StartAt = "2026-09-01T09:15:00Z"

		_, err := svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestBookingService_Update(t *testing.T) {
	companyID := "company-1"
	bookingID := "booking-1"

	stored := model.Booking{
		ID:        bookingID,
		CompanyID: companyID,
		StartAt:   localtime.New(2026, 9, 1, 9, 15, 0),
		EndAt:     localtime.New(2026, 9, 1, 9, 45, 0),
		Status:    model.StatusScheduled,
	}

	t.Run("status change emits event", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		published := make(chan kafka.Message, 1)
		m.kafkaClient.EXPECT().
			SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
				published <- messages[0]

				return nil
			})

		err := svc.Update(context.Background(), dto.UpdateBookingRequest{Status: model.StatusConfirmed}, companyID, bookingID)

		assert.NoError(t, err)

		select {
		case message := <-published:
			event, ok := message.Value.(dto.BookingEvent)
			assert.True(t, ok)
			assert.Equal(t, dto.EventBookingStatusChanged, event.Type)
			assert.Equal(t, model.StatusConfirmed, event.Status)
			assert.Equal(t, model.StatusScheduled, event.PreviousStatus)
		case <-time.After(time.Second):
			t.Fatal("expected a booking.status_changed event")
		}
	})

	t.Run("re-sending the current status is a no-op patch", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.kafkaClient.EXPECT().
			SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
			Times(0)

		err := svc.Update(context.Background(), dto.UpdateBookingRequest{Status: model.StatusScheduled}, companyID, bookingID)

		assert.NoError(t, err)
	})

	t.Run("terminal booking never moves again", func(t *testing.T) {
		svc, m := newBookingService(t)

		cancelled := stored
		cancelled.Status = model.StatusCancelled

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cancelled, nil)

		err := svc.Update(context.Background(), dto.UpdateBookingRequest{Status: model.StatusConfirmed}, companyID, bookingID)

		assert.Error(t, err)
		assert.Equal(t, 422, failure.GetCode(err))
	})

	t.Run("customer patch never touches the window or the stream", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)

		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ interface{}) error {
				assert.NotContains(t, fields, model.FieldStartAt)
				assert.NotContains(t, fields, model.FieldEndAt)
				assert.Contains(t, fields, model.FieldCustomerName)

				return nil
			})

		err := svc.Update(context.Background(), dto.UpdateBookingRequest{CustomerName: "Ana Souza"}, companyID, bookingID)

		assert.NoError(t, err)
	})

	t.Run("empty request rejected", func(t *testing.T) {
		svc, _ := newBookingService(t)

		err := svc.Update(context.Background(), dto.UpdateBookingRequest{}, companyID, bookingID)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("not found", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		err := svc.Update(context.Background(), dto.UpdateBookingRequest{Location: "Sala 2"}, companyID, bookingID)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestBookingService_Get(t *testing.T) {
	t.Run("cache miss falls through to repository", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{ID: "booking-1", Status: model.StatusScheduled}, nil)

		res, err := svc.Get(context.Background(), "company-1", "booking-1")

		assert.NoError(t, err)
		assert.Equal(t, "booking-1", res.ID)
	})

	t.Run("missing booking is 404", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, nil)

		_, err := svc.Get(context.Background(), "company-1", "booking-1")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
