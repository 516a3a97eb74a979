package model

import (
	bhModel "agenda/internal/domains/businesshours/model"
	slotModel "agenda/internal/domains/slot/model"
	"agenda/shared/localtime"
)

// Machine readable reasons for an availability decision. The chatbot turns
// these into customer facing messages, so they are part of the contract.
const (
	ReasonOK                   = "ok"
	ReasonInvalidRange         = "invalid_range"
	ReasonPastRange            = "past_range"
	ReasonOutsideBusinessHours = "outside_business_hours"
	ReasonNoContainingSlot     = "no_containing_slot"
	ReasonServiceMismatch      = "service_mismatch"
)

// Range is a candidate appointment window in company local wall-clock time.
type Range struct {
	Start     localtime.LocalTime
	End       localtime.LocalTime
	AllDay    bool
	ServiceID string
}

// Decision is the resolver's verdict. SlotID is set when a containing slot
// admitted the range.
type Decision struct {
	Bookable bool
	Reason   string
	SlotID   string
}

func ok(slotID string) Decision {
	return Decision{Bookable: true, Reason: ReasonOK, SlotID: slotID}
}

func notBookable(reason string) Decision {
	return Decision{Bookable: false, Reason: reason}
}

// CheckRange decides whether a range can be booked. A range is bookable only
// when it is well formed, not in the past, inside the business hours
// envelope, and fully contained in a single active slot. Overlapping several
// slots without being contained in one is not enough; the containment has to
// be total.
func CheckRange(r Range, slots []slotModel.Slot, hours []bhModel.BusinessHours, now localtime.LocalTime) Decision {
	if !validRange(r) {
		return notBookable(ReasonInvalidRange)
	}

	// Anything earlier than today is gone; same day booking stays allowed
	// even when the clock already passed the start time.
	if r.Start.Before(now.StartOfDay()) {
		return notBookable(ReasonPastRange)
	}

	if !WithinBusinessHours(r, hours) {
		return notBookable(ReasonOutsideBusinessHours)
	}

	serviceMismatch := false

	for _, s := range slots {
		if !s.IsActive {
			continue
		}

		for _, occurrence := range occurrencesAround(s, r) {
			if !SlotContains(occurrence, r) {
				continue
			}

			if !slotAdmitsService(occurrence, r.ServiceID) {
				serviceMismatch = true

				continue
			}

			return ok(occurrence.ID)
		}
	}

	if serviceMismatch {
		return notBookable(ReasonServiceMismatch)
	}

	return notBookable(ReasonNoContainingSlot)
}

func validRange(r Range) bool {
	if r.Start.IsZero() {
		return false
	}

	if r.AllDay {
		return true
	}

	return !r.End.IsZero() && r.Start.Before(r.End)
}

// SlotContains reports whether the slot window fully contains the range.
// An all day slot contains any sub-range on its date; a timed slot never
// admits an all day range.
func SlotContains(s slotModel.Slot, r Range) bool {
	if s.AllDay {
		if r.AllDay {
			return r.Start.SameDate(s.StartAt)
		}

		return r.Start.SameDate(s.StartAt) && r.End.SameDate(s.StartAt)
	}

	if r.AllDay {
		return false
	}

	return !r.Start.Before(s.StartAt) && !s.EndAt.Before(r.End)
}

// WithinBusinessHours gates the range against the company envelope. A
// company with no envelope configured is always open; once any weekday row
// exists, days without an enabled row are closed. The envelope is per day,
// so a timed range that crosses midnight can never fit inside one day's
// opening bounds.
func WithinBusinessHours(r Range, hours []bhModel.BusinessHours) bool {
	if len(hours) == 0 {
		return true
	}

	if !r.AllDay && !r.End.SameDate(r.Start) {
		return false
	}

	weekday := int(r.Start.Weekday())

	for i := range hours {
		if hours[i].Weekday != weekday {
			continue
		}

		if r.AllDay {
			return hours[i].Enabled
		}

		return hours[i].Admits(r.Start.Clock(), r.End.Clock())
	}

	return false
}

// ExpandWeekly materializes the occurrences of a slot inside the window.
// Non recurring slots are their own single occurrence. Occurrences keep the
// wall-clock reading of the base slot; only the date moves, in whole weeks,
// never before the base date.
func ExpandWeekly(s slotModel.Slot, windowStart, windowEnd localtime.LocalTime) []slotModel.Slot {
	if !s.IsRecurring {
		return []slotModel.Slot{s}
	}

	var occurrences []slotModel.Slot

	for week := 0; ; week++ {
		occurrence := s
		occurrence.StartAt = s.StartAt.AddDays(week * daysPerWeek)

		if !s.EndAt.IsZero() {
			occurrence.EndAt = s.EndAt.AddDays(week * daysPerWeek)
		}

		if windowEnd.Before(occurrence.StartAt) {
			break
		}

		occurrenceEnd := occurrence.EndAt
		if occurrenceEnd.IsZero() {
			occurrenceEnd = occurrence.StartAt.AddDays(1).StartOfDay()
		}

		if occurrenceEnd.Before(windowStart) {
			continue
		}

		occurrences = append(occurrences, occurrence)
	}

	return occurrences
}

const daysPerWeek = 7

// occurrencesAround expands a recurring slot just wide enough to cover the
// candidate range.
func occurrencesAround(s slotModel.Slot, r Range) []slotModel.Slot {
	if !s.IsRecurring {
		return []slotModel.Slot{s}
	}

	windowEnd := r.End
	if windowEnd.IsZero() {
		windowEnd = r.Start.AddDays(1).StartOfDay()
	}

	return ExpandWeekly(s, r.Start.StartOfDay(), windowEnd)
}

func slotAdmitsService(s slotModel.Slot, serviceID string) bool {
	if s.ServiceID == nil {
		return true
	}

	if serviceID == "" {
		return false
	}

	return *s.ServiceID == serviceID
}
