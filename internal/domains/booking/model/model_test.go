package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"agenda/internal/domains/booking/model"
)

func TestBooking_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"scheduled to confirmed", model.StatusScheduled, model.StatusConfirmed, true},
		{"scheduled to cancelled", model.StatusScheduled, model.StatusCancelled, true},
		{"scheduled to completed", model.StatusScheduled, model.StatusCompleted, true},
		{"confirmed to cancelled", model.StatusConfirmed, model.StatusCancelled, true},
		{"confirmed to completed", model.StatusConfirmed, model.StatusCompleted, true},
		{"confirmed back to scheduled", model.StatusConfirmed, model.StatusScheduled, false},
		{"cancelled is terminal", model.StatusCancelled, model.StatusScheduled, false},
		{"cancelled cannot confirm", model.StatusCancelled, model.StatusConfirmed, false},
		{"completed is terminal", model.StatusCompleted, model.StatusCancelled, false},
		{"no self transition", model.StatusScheduled, model.StatusScheduled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := model.Booking{Status: tt.from}

			assert.Equal(t, tt.want, booking.CanTransitionTo(tt.to))
		})
	}
}

func TestIsTerminalStatus(t *testing.T) {
	assert.True(t, model.IsTerminalStatus(model.StatusCancelled))
	assert.True(t, model.IsTerminalStatus(model.StatusCompleted))
	assert.False(t, model.IsTerminalStatus(model.StatusScheduled))
	assert.False(t, model.IsTerminalStatus(model.StatusConfirmed))
}
