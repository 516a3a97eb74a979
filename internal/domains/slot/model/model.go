package model

import (
	"agenda/shared/localtime"
	"agenda/shared/model"
)

const (
	TableName  = "schedule_slots"
	EntityName = "slot"

	FieldID          = "id"
	FieldCompanyID   = "company_id"
	FieldStartAt     = "start_at"
	FieldEndAt       = "end_at"
	FieldAllDay      = "all_day"
	FieldIsActive    = "is_active"
	FieldIsRecurring = "is_recurring"
	FieldServiceID   = "service_id"
	FieldScheduleID  = "schedule_id"
)

// Slot is an availability window published by a company. Times are local
// wall-clock values and are never shifted between timezones.
type Slot struct {
	ID          string              `db:"id"`
	CompanyID   string              `db:"company_id"`
	StartAt     localtime.LocalTime `db:"start_at"`
	EndAt       localtime.LocalTime `db:"end_at"`
	AllDay      bool                `db:"all_day"`
	IsActive    bool                `db:"is_active"`
	IsRecurring bool                `db:"is_recurring"`
	ServiceID   *string             `db:"service_id"`
	ScheduleID  *string             `db:"schedule_id"`
	model.Metadata
}

// HasValidRange reports whether the slot window is well formed. All-day
// slots only need a start date; timed slots need start strictly before end.
func (s *Slot) HasValidRange() bool {
	if s.AllDay {
		return !s.StartAt.IsZero()
	}

	return !s.StartAt.IsZero() && !s.EndAt.IsZero() && s.StartAt.Before(s.EndAt)
}
