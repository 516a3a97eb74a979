package dto

import (
	"github.com/google/uuid"

	"agenda/internal/domains/booking/model"
	"agenda/shared"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	"agenda/shared/localtime"
	gModel "agenda/shared/model"
	"agenda/shared/timezone"
)

const defaultBookingColor = "indigo"

type CreateBookingRequest struct {
	CompanyID       string `json:"company_id"       validate:"required,uuid"`
	Title           string `json:"title"            validate:"required,max=200"`
	StartAt         string `json:"start_at"         validate:"required,localdatetime"`
	EndAt           string `json:"end_at"           validate:"required_unless=AllDay true,omitempty,localdatetime"`
	AllDay          bool   `json:"all_day"          validate:"omitempty"`
	Color           string `json:"color"            validate:"omitempty,max=30"`
	ServiceID       string `json:"service_id"       validate:"required,uuid"`
	Description     string `json:"description"      validate:"omitempty,max=1000"`
	Location        string `json:"location"         validate:"omitempty,max=200"`
	CustomerName    string `json:"customer_name"    validate:"required,max=100"`
	CustomerContact string `json:"customer_contact" validate:"required,max=100"`
}

func (c *CreateBookingRequest) ToModel(user string) (model.Booking, error) {
	startAt, err := localtime.Parse(c.StartAt)
	if err != nil {
		return model.Booking{}, err
	}

	var endAt localtime.LocalTime
	if c.EndAt != "" {
		endAt, err = localtime.Parse(c.EndAt)
		if err != nil {
			return model.Booking{}, err
		}
	}

	color := defaultBookingColor
	if c.Color != "" {
		color = c.Color
	}

	return model.Booking{
		ID:              uuid.NewString(),
		CompanyID:       c.CompanyID,
		Title:           c.Title,
		StartAt:         startAt,
		EndAt:           endAt,
		AllDay:          c.AllDay,
		Color:           color,
		ServiceID:       c.ServiceID,
		Status:          model.StatusScheduled,
		Description:     c.Description,
		Location:        c.Location,
		CustomerName:    c.CustomerName,
		CustomerContact: c.CustomerContact,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

// UpdateBookingRequest carries the mutable half of a booking. The time
// window is not here on purpose: moving a booking means cancelling it and
// booking again through the resolver.
type UpdateBookingRequest struct {
	Title           string `db:"title"            json:"title"            validate:"omitempty,max=200"`
	Color           string `db:"color"            json:"color"            validate:"omitempty,max=30"`
	Status          string `db:"status"           json:"status"           validate:"omitempty,oneof=agendado confirmado cancelado concluido"`
	Description     string `db:"description"      json:"description"      validate:"omitempty,max=1000"`
	Location        string `db:"location"         json:"location"         validate:"omitempty,max=200"`
	CustomerName    string `db:"customer_name"    json:"customer_name"    validate:"omitempty,max=100"`
	CustomerContact string `db:"customer_contact" json:"customer_contact" validate:"omitempty,max=100"`
}

type BookingResponse struct {
	ID              string `json:"id"`
	CompanyID       string `json:"company_id"`
	Title           string `json:"title"`
	StartAt         string `json:"start_at"`
	EndAt           string `json:"end_at"`
	AllDay          bool   `json:"all_day"`
	Color           string `json:"color"`
	ServiceID       string `json:"service_id"`
	Status          string `json:"status"`
	Description     string `json:"description"`
	Location        string `json:"location"`
	CustomerName    string `json:"customer_name"`
	CustomerContact string `json:"customer_contact"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.CompanyID = model.CompanyID
	r.Title = model.Title
	r.StartAt = model.StartAt.String()

	if !model.EndAt.IsZero() {
		r.EndAt = model.EndAt.String()
	}

	r.AllDay = model.AllDay
	r.Color = model.Color
	r.ServiceID = model.ServiceID
	r.Status = model.Status
	r.Description = model.Description
	r.Location = model.Location
	r.CustomerName = model.CustomerName
	r.CustomerContact = model.CustomerContact
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// Lifecycle event types published to the booking events topic.
const (
	EventBookingCreated       = "booking.created"
	EventBookingStatusChanged = "booking.status_changed"
)

// BookingEvent is the payload the chatbot side consumes to notify customers.
type BookingEvent struct {
	Type            string `json:"type"`
	BookingID       string `json:"booking_id"`
	CompanyID       string `json:"company_id"`
	ServiceID       string `json:"service_id"`
	Status          string `json:"status"`
	PreviousStatus  string `json:"previous_status,omitempty"`
	StartAt         string `json:"start_at"`
	EndAt           string `json:"end_at,omitempty"`
	CustomerName    string `json:"customer_name"`
	CustomerContact string `json:"customer_contact"`
	OccurredAt      string `json:"occurred_at"`
}

func (e *BookingEvent) FromModel(eventType string, booking model.Booking, previousStatus string) {
	e.Type = eventType
	e.BookingID = booking.ID
	e.CompanyID = booking.CompanyID
	e.ServiceID = booking.ServiceID
	e.Status = booking.Status
	e.PreviousStatus = previousStatus
	e.StartAt = booking.StartAt.String()

	if !booking.EndAt.IsZero() {
		e.EndAt = booking.EndAt.String()
	}

	e.CustomerName = booking.CustomerName
	e.CustomerContact = booking.CustomerContact
	e.OccurredAt = timezone.Now().Format(constant.DateFormat)
}
