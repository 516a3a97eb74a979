package model

import (
	availabilityModel "agenda/internal/domains/availability/model"
	bookingModel "agenda/internal/domains/booking/model"
	slotModel "agenda/internal/domains/slot/model"
	"agenda/shared/localtime"
)

const (
	KindSlot    = "slot"
	KindBooking = "booking"
)

// Calendar colors are part of the UI contract: an open window renders
// green, a paused one red, appointments indigo.
const (
	ColorSlotActive   = "green"
	ColorSlotInactive = "red"
	ColorBooking      = "indigo"
)

const (
	titleSlotActive   = "Disponível"
	titleSlotInactive = "Indisponível"
)

// Event is what the calendar widget renders, slot and booking alike.
type Event struct {
	ID     string
	Title  string
	Start  localtime.LocalTime
	End    localtime.LocalTime
	AllDay bool
	Color  string
	Kind   string
}

func EventFromSlot(s slotModel.Slot) Event {
	color, title := ColorSlotActive, titleSlotActive
	if !s.IsActive {
		color, title = ColorSlotInactive, titleSlotInactive
	}

	return Event{
		ID:     s.ID,
		Title:  title,
		Start:  s.StartAt,
		End:    s.EndAt,
		AllDay: s.AllDay,
		Color:  color,
		Kind:   KindSlot,
	}
}

func EventFromBooking(b bookingModel.Booking) Event {
	color := b.Color
	if color == "" {
		color = ColorBooking
	}

	return Event{
		ID:     b.ID,
		Title:  b.Title,
		Start:  b.StartAt,
		End:    b.EndAt,
		AllDay: b.AllDay,
		Color:  color,
		Kind:   KindBooking,
	}
}

// Selection is a drag on the calendar grid. It carries no verdict of its
// own: it has to pass the resolver before anything can be booked.
type Selection struct {
	Start     localtime.LocalTime
	End       localtime.LocalTime
	AllDay    bool
	ServiceID string
}

func (s Selection) ToRange() availabilityModel.Range {
	return availabilityModel.Range{
		Start:     s.Start,
		End:       s.End,
		AllDay:    s.AllDay,
		ServiceID: s.ServiceID,
	}
}
