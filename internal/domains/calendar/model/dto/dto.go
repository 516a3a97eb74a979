package dto

import (
	availabilityDto "agenda/internal/domains/availability/model/dto"
	"agenda/internal/domains/calendar/model"
)

type CalendarEventResponse struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Start  string `json:"start"`
	End    string `json:"end,omitempty"`
	AllDay bool   `json:"all_day"`
	Color  string `json:"color"`
	Kind   string `json:"kind"`
}

func (r *CalendarEventResponse) FromEvent(event model.Event) {
	r.ID = event.ID
	r.Title = event.Title
	r.Start = event.Start.String()

	if !event.End.IsZero() {
		r.End = event.End.String()
	}

	r.AllDay = event.AllDay
	r.Color = event.Color
	r.Kind = event.Kind
}

type GetCalendarEventsResponse struct {
	Events []CalendarEventResponse `json:"events"`
}

func (r *GetCalendarEventsResponse) FromEvents(events []model.Event) {
	r.Events = make([]CalendarEventResponse, len(events))
	for i, event := range events {
		r.Events[i].FromEvent(event)
	}
}

// CheckSelectionRequest is the grid drag as it arrives from the widget. It
// is the same shape the resolver takes; the indirection keeps the widget
// decoupled from resolver internals.
type CheckSelectionRequest struct {
	CompanyID string `json:"company_id" validate:"required,uuid"`
	StartAt   string `json:"start_at"   validate:"required,localdatetime"`
	EndAt     string `json:"end_at"     validate:"required_unless=AllDay true,omitempty,localdatetime"`
	AllDay    bool   `json:"all_day"    validate:"omitempty"`
	ServiceID string `json:"service_id" validate:"omitempty,uuid"`
}

func (c *CheckSelectionRequest) ToAvailabilityRequest() availabilityDto.CheckAvailabilityRequest {
	return availabilityDto.CheckAvailabilityRequest{
		CompanyID: c.CompanyID,
		StartAt:   c.StartAt,
		EndAt:     c.EndAt,
		AllDay:    c.AllDay,
		ServiceID: c.ServiceID,
	}
}
