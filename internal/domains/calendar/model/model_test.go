package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	bookingModel "agenda/internal/domains/booking/model"
	"agenda/internal/domains/calendar/model"
	slotModel "agenda/internal/domains/slot/model"
	"agenda/shared/localtime"
)

func TestEventFromSlot(t *testing.T) {
	slot := slotModel.Slot{
		ID:       "slot-1",
		StartAt:  localtime.New(2026, 9, 1, 9, 0, 0),
		EndAt:    localtime.New(2026, 9, 1, 10, 0, 0),
		IsActive: true,
	}

	t.Run("active slot renders green", func(t *testing.T) {
		event := model.EventFromSlot(slot)

		assert.Equal(t, model.ColorSlotActive, event.Color)
		assert.Equal(t, model.KindSlot, event.Kind)
		assert.Equal(t, "Disponível", event.Title)
		assert.Equal(t, slot.StartAt, event.Start)
	})

	t.Run("paused slot renders red", func(t *testing.T) {
		paused := slot
		paused.IsActive = false

		event := model.EventFromSlot(paused)

		assert.Equal(t, model.ColorSlotInactive, event.Color)
		assert.Equal(t, "Indisponível", event.Title)
	})
}

func TestEventFromBooking(t *testing.T) {
	booking := bookingModel.Booking{
		ID:      "booking-1",
		Title:   "Corte de cabelo",
		StartAt: localtime.New(2026, 9, 1, 9, 15, 0),
		EndAt:   localtime.New(2026, 9, 1, 9, 45, 0),
		Status:  bookingModel.StatusScheduled,
	}

	t.Run("default color is indigo", func(t *testing.T) {
		event := model.EventFromBooking(booking)

		assert.Equal(t, model.ColorBooking, event.Color)
		assert.Equal(t, model.KindBooking, event.Kind)
		assert.Equal(t, "Corte de cabelo", event.Title)
	})

	t.Run("explicit color wins", func(t *testing.T) {
		tinted := booking
		tinted.Color = "teal"

		event := model.EventFromBooking(tinted)

		assert.Equal(t, "teal", event.Color)
	})
}

func TestSelection_ToRange(t *testing.T) {
	selection := model.Selection{
		Start:     localtime.New(2026, 9, 1, 9, 0, 0),
		End:       localtime.New(2026, 9, 1, 10, 0, 0),
		ServiceID: "service-1",
	}

	r := selection.ToRange()

	assert.Equal(t, selection.Start, r.Start)
	assert.Equal(t, selection.End, r.End)
	assert.Equal(t, "service-1", r.ServiceID)
	assert.False(t, r.AllDay)
}
