package model

import (
	"agenda/shared/localtime"
	"agenda/shared/model"
)

const (
	TableName  = "schedules"
	EntityName = "booking"

	FieldID              = "id"
	FieldCompanyID       = "company_id"
	FieldTitle           = "title"
	FieldStartAt         = "start_at"
	FieldEndAt           = "end_at"
	FieldAllDay          = "all_day"
	FieldColor           = "color"
	FieldServiceID       = "service_id"
	FieldStatus          = "status"
	FieldDescription     = "description"
	FieldLocation        = "location"
	FieldCustomerName    = "customer_name"
	FieldCustomerContact = "customer_contact"
)

// Booking lifecycle statuses. The wire values are the product's own
// vocabulary and are stored verbatim.
const (
	StatusScheduled = "agendado"
	StatusConfirmed = "confirmado"
	StatusCancelled = "cancelado"
	StatusCompleted = "concluido"
)

type Booking struct {
	ID              string              `db:"id"`
	CompanyID       string              `db:"company_id"`
	Title           string              `db:"title"`
	StartAt         localtime.LocalTime `db:"start_at"`
	EndAt           localtime.LocalTime `db:"end_at"`
	AllDay          bool                `db:"all_day"`
	Color           string              `db:"color"`
	ServiceID       string              `db:"service_id"`
	Status          string              `db:"status"`
	Description     string              `db:"description"`
	Location        string              `db:"location"`
	CustomerName    string              `db:"customer_name"`
	CustomerContact string              `db:"customer_contact"`
	model.Metadata
}

// IsTerminalStatus reports whether a status admits no further transitions.
func IsTerminalStatus(status string) bool {
	return status == StatusCancelled || status == StatusCompleted
}

// CanTransitionTo enforces the lifecycle: a booking starts as agendado, may
// be confirmed, and ends in cancelado or concluido. Terminal bookings never
// move again; cancelling is a transition, not a delete.
func (b *Booking) CanTransitionTo(status string) bool {
	if status == b.Status {
		return false
	}

	switch b.Status {
	case StatusScheduled:
		return status == StatusConfirmed || status == StatusCancelled || status == StatusCompleted
	case StatusConfirmed:
		return status == StatusCancelled || status == StatusCompleted
	default:
		return false
	}
}
