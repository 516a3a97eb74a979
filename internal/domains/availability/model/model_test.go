package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"agenda/internal/domains/availability/model"
	bhModel "agenda/internal/domains/businesshours/model"
	slotModel "agenda/internal/domains/slot/model"
	"agenda/shared/localtime"
)

var now = localtime.New(2024, 6, 10, 8, 0, 0)

func timedSlot(id string, start, end localtime.LocalTime) slotModel.Slot {
	return slotModel.Slot{
		ID:       id,
		StartAt:  start,
		EndAt:    end,
		IsActive: true,
	}
}

func TestCheckRange_Containment(t *testing.T) {
	slot := timedSlot("slot-1",
		localtime.New(2024, 6, 10, 9, 0, 0),
		localtime.New(2024, 6, 10, 10, 0, 0),
	)

	tests := []struct {
		name       string
		start, end localtime.LocalTime
		want       bool
		wantReason string
	}{
		{
			name:  "strict sub range is bookable",
			start: localtime.New(2024, 6, 10, 9, 15, 0),
			end:   localtime.New(2024, 6, 10, 9, 45, 0),
			want:  true,
		},
		{
			name:  "exact slot window is bookable",
			start: localtime.New(2024, 6, 10, 9, 0, 0),
			end:   localtime.New(2024, 6, 10, 10, 0, 0),
			want:  true,
		},
		{
			name:       "overlap past the end is not contained",
			start:      localtime.New(2024, 6, 10, 9, 30, 0),
			end:        localtime.New(2024, 6, 10, 10, 30, 0),
			want:       false,
			wantReason: model.ReasonNoContainingSlot,
		},
		{
			name:       "overlap before the start is not contained",
			start:      localtime.New(2024, 6, 10, 8, 30, 0),
			end:        localtime.New(2024, 6, 10, 9, 30, 0),
			want:       false,
			wantReason: model.ReasonNoContainingSlot,
		},
		{
			name:       "fully outside",
			start:      localtime.New(2024, 6, 10, 11, 0, 0),
			end:        localtime.New(2024, 6, 10, 12, 0, 0),
			want:       false,
			wantReason: model.ReasonNoContainingSlot,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := model.CheckRange(
				model.Range{Start: tt.start, End: tt.end},
				[]slotModel.Slot{slot},
				nil,
				now,
			)

			assert.Equal(t, tt.want, decision.Bookable)

			if tt.want {
				assert.Equal(t, "slot-1", decision.SlotID)
			} else {
				assert.Equal(t, tt.wantReason, decision.Reason)
			}
		})
	}
}

func TestCheckRange_SpanningTwoSlotsIsNotBookable(t *testing.T) {
	// Two back to back slots; a range crossing the seam is contained in
	// neither and must be refused even though every minute of it is covered.
	slots := []slotModel.Slot{
		timedSlot("slot-1", localtime.New(2024, 6, 10, 9, 0, 0), localtime.New(2024, 6, 10, 10, 0, 0)),
		timedSlot("slot-2", localtime.New(2024, 6, 10, 10, 0, 0), localtime.New(2024, 6, 10, 11, 0, 0)),
	}

	decision := model.CheckRange(
		model.Range{
			Start: localtime.New(2024, 6, 10, 9, 30, 0),
			End:   localtime.New(2024, 6, 10, 10, 30, 0),
		},
		slots, nil, now,
	)

	assert.False(t, decision.Bookable)
	assert.Equal(t, model.ReasonNoContainingSlot, decision.Reason)
}

func TestCheckRange_InactiveSlot(t *testing.T) {
	slot := timedSlot("slot-1",
		localtime.New(2024, 6, 10, 9, 0, 0),
		localtime.New(2024, 6, 10, 10, 0, 0),
	)
	slot.IsActive = false

	decision := model.CheckRange(
		model.Range{
			Start: localtime.New(2024, 6, 10, 9, 15, 0),
			End:   localtime.New(2024, 6, 10, 9, 45, 0),
		},
		[]slotModel.Slot{slot}, nil, now,
	)

	assert.False(t, decision.Bookable)
	assert.Equal(t, model.ReasonNoContainingSlot, decision.Reason)
}

func TestCheckRange_InvalidRanges(t *testing.T) {
	slot := timedSlot("slot-1",
		localtime.New(2024, 6, 10, 0, 0, 0),
		localtime.New(2024, 6, 11, 0, 0, 0),
	)

	tests := []struct {
		name       string
		r          model.Range
		wantReason string
	}{
		{
			name: "inverted",
			r: model.Range{
				Start: localtime.New(2024, 6, 10, 10, 0, 0),
				End:   localtime.New(2024, 6, 10, 9, 0, 0),
			},
			wantReason: model.ReasonInvalidRange,
		},
		{
			name: "zero length",
			r: model.Range{
				Start: localtime.New(2024, 6, 10, 9, 0, 0),
				End:   localtime.New(2024, 6, 10, 9, 0, 0),
			},
			wantReason: model.ReasonInvalidRange,
		},
		{
			name:       "missing start",
			r:          model.Range{End: localtime.New(2024, 6, 10, 9, 0, 0)},
			wantReason: model.ReasonInvalidRange,
		},
		{
			name: "yesterday is gone",
			r: model.Range{
				Start: localtime.New(2024, 6, 9, 9, 0, 0),
				End:   localtime.New(2024, 6, 9, 10, 0, 0),
			},
			wantReason: model.ReasonPastRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := model.CheckRange(tt.r, []slotModel.Slot{slot}, nil, now)

			assert.False(t, decision.Bookable)
			assert.Equal(t, tt.wantReason, decision.Reason)
		})
	}
}

func TestCheckRange_EarlierTodayStillBookable(t *testing.T) {
	// now is 08:00; a 07:00 range the same day is not "past", only earlier
	// days are.
	slot := timedSlot("slot-1",
		localtime.New(2024, 6, 10, 6, 0, 0),
		localtime.New(2024, 6, 10, 12, 0, 0),
	)

	decision := model.CheckRange(
		model.Range{
			Start: localtime.New(2024, 6, 10, 7, 0, 0),
			End:   localtime.New(2024, 6, 10, 7, 30, 0),
		},
		[]slotModel.Slot{slot}, nil, now,
	)

	assert.True(t, decision.Bookable)
}

func TestCheckRange_AllDay(t *testing.T) {
	allDaySlot := slotModel.Slot{
		ID:       "slot-ad",
		StartAt:  localtime.New(2024, 6, 10, 0, 0, 0),
		AllDay:   true,
		IsActive: true,
	}

	t.Run("timed sub range on the same date", func(t *testing.T) {
		decision := model.CheckRange(
			model.Range{
				Start: localtime.New(2024, 6, 10, 13, 0, 0),
				End:   localtime.New(2024, 6, 10, 14, 0, 0),
			},
			[]slotModel.Slot{allDaySlot}, nil, now,
		)

		assert.True(t, decision.Bookable)
		assert.Equal(t, "slot-ad", decision.SlotID)
	})

	t.Run("sub range on another date", func(t *testing.T) {
		decision := model.CheckRange(
			model.Range{
				Start: localtime.New(2024, 6, 11, 13, 0, 0),
				End:   localtime.New(2024, 6, 11, 14, 0, 0),
			},
			[]slotModel.Slot{allDaySlot}, nil, now,
		)

		assert.False(t, decision.Bookable)
	})

	t.Run("all day range in all day slot", func(t *testing.T) {
		decision := model.CheckRange(
			model.Range{Start: localtime.New(2024, 6, 10, 0, 0, 0), AllDay: true},
			[]slotModel.Slot{allDaySlot}, nil, now,
		)

		assert.True(t, decision.Bookable)
	})

	t.Run("all day range never fits a timed slot", func(t *testing.T) {
		timed := timedSlot("slot-1",
			localtime.New(2024, 6, 10, 0, 0, 0),
			localtime.New(2024, 6, 10, 23, 0, 0),
		)

		decision := model.CheckRange(
			model.Range{Start: localtime.New(2024, 6, 10, 0, 0, 0), AllDay: true},
			[]slotModel.Slot{timed}, nil, now,
		)

		assert.False(t, decision.Bookable)
	})
}

func TestCheckRange_BusinessHours(t *testing.T) {
	// 2024-06-10 is a Monday.
	slot := timedSlot("slot-1",
		localtime.New(2024, 6, 10, 7, 0, 0),
		localtime.New(2024, 6, 10, 20, 0, 0),
	)

	hours := []bhModel.BusinessHours{
		{Weekday: 1, OpensAt: "09:00", ClosesAt: "18:00", Enabled: true},
	}

	tests := []struct {
		name       string
		start, end localtime.LocalTime
		want       bool
	}{
		{
			name:  "inside envelope",
			start: localtime.New(2024, 6, 10, 9, 0, 0),
			end:   localtime.New(2024, 6, 10, 10, 0, 0),
			want:  true,
		},
		{
			name:  "before opening despite open slot",
			start: localtime.New(2024, 6, 10, 8, 0, 0),
			end:   localtime.New(2024, 6, 10, 8, 30, 0),
			want:  false,
		},
		{
			name:  "past closing despite open slot",
			start: localtime.New(2024, 6, 10, 17, 30, 0),
			end:   localtime.New(2024, 6, 10, 18, 30, 0),
			want:  false,
		},
		{
			name:  "day without an envelope row is closed",
			start: localtime.New(2024, 6, 11, 9, 0, 0),
			end:   localtime.New(2024, 6, 11, 10, 0, 0),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := model.CheckRange(
				model.Range{Start: tt.start, End: tt.end},
				[]slotModel.Slot{slot},
				hours,
				now,
			)

			assert.Equal(t, tt.want, decision.Bookable)

			if !tt.want && !tt.start.SameDate(localtime.New(2024, 6, 10, 0, 0, 0)) {
				assert.Equal(t, model.ReasonOutsideBusinessHours, decision.Reason)
			}
		})
	}

	t.Run("range crossing midnight is outside the envelope", func(t *testing.T) {
		nightSlot := timedSlot("slot-night",
			localtime.New(2024, 6, 10, 20, 0, 0),
			localtime.New(2024, 6, 11, 4, 0, 0),
		)

		bothDays := []bhModel.BusinessHours{
			{Weekday: 1, OpensAt: "08:00", ClosesAt: "18:00", Enabled: true},
			{Weekday: 2, OpensAt: "08:00", ClosesAt: "18:00", Enabled: true},
		}

		decision := model.CheckRange(
			model.Range{
				Start: localtime.New(2024, 6, 10, 23, 0, 0),
				End:   localtime.New(2024, 6, 11, 0, 30, 0),
			},
			[]slotModel.Slot{nightSlot}, bothDays, now,
		)

		assert.False(t, decision.Bookable)
		assert.Equal(t, model.ReasonOutsideBusinessHours, decision.Reason)
	})

	t.Run("disabled weekday is closed", func(t *testing.T) {
		closed := []bhModel.BusinessHours{
			{Weekday: 1, OpensAt: "09:00", ClosesAt: "18:00", Enabled: false},
		}

		decision := model.CheckRange(
			model.Range{
				Start: localtime.New(2024, 6, 10, 9, 0, 0),
				End:   localtime.New(2024, 6, 10, 10, 0, 0),
			},
			[]slotModel.Slot{slot}, closed, now,
		)

		assert.False(t, decision.Bookable)
		assert.Equal(t, model.ReasonOutsideBusinessHours, decision.Reason)
	})

	t.Run("no envelope at all means always open", func(t *testing.T) {
		decision := model.CheckRange(
			model.Range{
				Start: localtime.New(2024, 6, 10, 8, 0, 0),
				End:   localtime.New(2024, 6, 10, 8, 30, 0),
			},
			[]slotModel.Slot{slot}, nil, now,
		)

		assert.True(t, decision.Bookable)
	})
}

func TestCheckRange_ServiceBinding(t *testing.T) {
	serviceID := "service-1"
	bound := timedSlot("slot-1",
		localtime.New(2024, 6, 10, 9, 0, 0),
		localtime.New(2024, 6, 10, 10, 0, 0),
	)
	bound.ServiceID = &serviceID

	r := model.Range{
		Start: localtime.New(2024, 6, 10, 9, 15, 0),
		End:   localtime.New(2024, 6, 10, 9, 45, 0),
	}

	t.Run("matching service admitted", func(t *testing.T) {
		r := r
		r.ServiceID = serviceID

		decision := model.CheckRange(r, []slotModel.Slot{bound}, nil, now)

		assert.True(t, decision.Bookable)
	})

	t.Run("other service refused", func(t *testing.T) {
		r := r
		r.ServiceID = "service-2"

		decision := model.CheckRange(r, []slotModel.Slot{bound}, nil, now)

		assert.False(t, decision.Bookable)
		assert.Equal(t, model.ReasonServiceMismatch, decision.Reason)
	})

	t.Run("no service against a bound slot refused", func(t *testing.T) {
		decision := model.CheckRange(r, []slotModel.Slot{bound}, nil, now)

		assert.False(t, decision.Bookable)
		assert.Equal(t, model.ReasonServiceMismatch, decision.Reason)
	})

	t.Run("unbound slot admits any service", func(t *testing.T) {
		unbound := timedSlot("slot-2",
			localtime.New(2024, 6, 10, 9, 0, 0),
			localtime.New(2024, 6, 10, 10, 0, 0),
		)

		r := r
		r.ServiceID = "service-2"

		decision := model.CheckRange(r, []slotModel.Slot{unbound}, nil, now)

		assert.True(t, decision.Bookable)
	})
}

func TestCheckRange_WeeklyRecurrence(t *testing.T) {
	recurring := slotModel.Slot{
		ID:          "slot-rec",
		StartAt:     localtime.New(2024, 6, 3, 9, 0, 0),
		EndAt:       localtime.New(2024, 6, 3, 12, 0, 0),
		IsActive:    true,
		IsRecurring: true,
	}

	t.Run("occurrence two weeks later", func(t *testing.T) {
		decision := model.CheckRange(
			model.Range{
				Start: localtime.New(2024, 6, 17, 10, 0, 0),
				End:   localtime.New(2024, 6, 17, 11, 0, 0),
			},
			[]slotModel.Slot{recurring}, nil, now,
		)

		assert.True(t, decision.Bookable)
		assert.Equal(t, "slot-rec", decision.SlotID)
	})

	t.Run("wrong weekday", func(t *testing.T) {
		decision := model.CheckRange(
			model.Range{
				Start: localtime.New(2024, 6, 18, 10, 0, 0),
				End:   localtime.New(2024, 6, 18, 11, 0, 0),
			},
			[]slotModel.Slot{recurring}, nil, now,
		)

		assert.False(t, decision.Bookable)
	})

	t.Run("clock must still be contained", func(t *testing.T) {
		decision := model.CheckRange(
			model.Range{
				Start: localtime.New(2024, 6, 17, 11, 30, 0),
				End:   localtime.New(2024, 6, 17, 12, 30, 0),
			},
			[]slotModel.Slot{recurring}, nil, now,
		)

		assert.False(t, decision.Bookable)
	})
}

func TestExpandWeekly(t *testing.T) {
	recurring := slotModel.Slot{
		ID:          "slot-rec",
		StartAt:     localtime.New(2024, 6, 3, 9, 0, 0),
		EndAt:       localtime.New(2024, 6, 3, 12, 0, 0),
		IsActive:    true,
		IsRecurring: true,
	}

	t.Run("occurrences inside a month window", func(t *testing.T) {
		occurrences := model.ExpandWeekly(recurring,
			localtime.New(2024, 6, 1, 0, 0, 0),
			localtime.New(2024, 6, 30, 23, 59, 59),
		)

		assert.Len(t, occurrences, 4)
		assert.Equal(t, "2024-06-03T09:00:00", occurrences[0].StartAt.String())
		assert.Equal(t, "2024-06-24T09:00:00", occurrences[3].StartAt.String())
		assert.Equal(t, "2024-06-24T12:00:00", occurrences[3].EndAt.String())
	})

	t.Run("window before the base date is empty", func(t *testing.T) {
		occurrences := model.ExpandWeekly(recurring,
			localtime.New(2024, 5, 1, 0, 0, 0),
			localtime.New(2024, 5, 31, 23, 59, 59),
		)

		assert.Empty(t, occurrences)
	})

	t.Run("non recurring slot is its own occurrence", func(t *testing.T) {
		single := recurring
		single.IsRecurring = false

		occurrences := model.ExpandWeekly(single,
			localtime.New(2024, 6, 1, 0, 0, 0),
			localtime.New(2024, 6, 30, 23, 59, 59),
		)

		assert.Len(t, occurrences, 1)
		assert.Equal(t, single, occurrences[0])
	})
}

func TestCheckRange_EndToEnd(t *testing.T) {
	// A company's Monday 2024-06-10: business hours 08:00-18:00, a morning
	// slot, a paused afternoon slot and an all day slot the next day.
	hours := []bhModel.BusinessHours{
		{Weekday: 1, OpensAt: "08:00", ClosesAt: "18:00", Enabled: true},
		{Weekday: 2, OpensAt: "08:00", ClosesAt: "18:00", Enabled: true},
	}

	serviceID := "service-cut"
	morning := timedSlot("slot-morning",
		localtime.New(2024, 6, 10, 9, 0, 0),
		localtime.New(2024, 6, 10, 12, 0, 0),
	)
	morning.ServiceID = &serviceID

	afternoon := timedSlot("slot-afternoon",
		localtime.New(2024, 6, 10, 14, 0, 0),
		localtime.New(2024, 6, 10, 17, 0, 0),
	)
	afternoon.IsActive = false

	openDay := slotModel.Slot{
		ID:       "slot-tuesday",
		StartAt:  localtime.New(2024, 6, 11, 0, 0, 0),
		AllDay:   true,
		IsActive: true,
	}

	slots := []slotModel.Slot{morning, afternoon, openDay}

	check := func(start, end localtime.LocalTime, service string) model.Decision {
		return model.CheckRange(
			model.Range{Start: start, End: end, ServiceID: service},
			slots, hours, now,
		)
	}

	morningCut := check(
		localtime.New(2024, 6, 10, 9, 30, 0),
		localtime.New(2024, 6, 10, 10, 0, 0),
		serviceID,
	)
	assert.True(t, morningCut.Bookable)
	assert.Equal(t, "slot-morning", morningCut.SlotID)

	wrongService := check(
		localtime.New(2024, 6, 10, 9, 30, 0),
		localtime.New(2024, 6, 10, 10, 0, 0),
		"service-other",
	)
	assert.False(t, wrongService.Bookable)
	assert.Equal(t, model.ReasonServiceMismatch, wrongService.Reason)

	pausedAfternoon := check(
		localtime.New(2024, 6, 10, 14, 30, 0),
		localtime.New(2024, 6, 10, 15, 0, 0),
		"",
	)
	assert.False(t, pausedAfternoon.Bookable)
	assert.Equal(t, model.ReasonNoContainingSlot, pausedAfternoon.Reason)

	tuesdayVisit := check(
		localtime.New(2024, 6, 11, 10, 0, 0),
		localtime.New(2024, 6, 11, 11, 0, 0),
		"",
	)
	assert.True(t, tuesdayVisit.Bookable)
	assert.Equal(t, "slot-tuesday", tuesdayVisit.SlotID)

	afterHours := check(
		localtime.New(2024, 6, 11, 18, 30, 0),
		localtime.New(2024, 6, 11, 19, 0, 0),
		"",
	)
	assert.False(t, afterHours.Bookable)
	assert.Equal(t, model.ReasonOutsideBusinessHours, afterHours.Reason)
}
