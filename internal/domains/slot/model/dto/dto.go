package dto

import (
	"github.com/google/uuid"

	"agenda/internal/domains/slot/model"
	"agenda/shared"
	gDto "agenda/shared/dto"
	"agenda/shared/localtime"
	gModel "agenda/shared/model"
	"agenda/shared/timezone"
)

type CreateSlotRequest struct {
	CompanyID   string `json:"company_id"   validate:"required,uuid"`
	StartAt     string `json:"start_at"     validate:"required,localdatetime"`
	EndAt       string `json:"end_at"       validate:"required_unless=AllDay true,omitempty,localdatetime"`
	AllDay      bool   `json:"all_day"      validate:"omitempty"`
	IsActive    *bool  `json:"is_active"    validate:"omitempty"`
	IsRecurring bool   `json:"is_recurring" validate:"omitempty"`
	ServiceID   string `json:"service_id"   validate:"omitempty,uuid"`
}

func (c *CreateSlotRequest) ToModel(user string) (model.Slot, error) {
	startAt, err := localtime.Parse(c.StartAt)
	if err != nil {
		return model.Slot{}, err
	}

	var endAt localtime.LocalTime
	if c.EndAt != "" {
		endAt, err = localtime.Parse(c.EndAt)
		if err != nil {
			return model.Slot{}, err
		}
	}

	// New slots are published unless explicitly created paused.
	isActive := true
	if c.IsActive != nil {
		isActive = *c.IsActive
	}

	var serviceID *string
	if c.ServiceID != "" {
		serviceID = &c.ServiceID
	}

	return model.Slot{
		ID:          uuid.NewString(),
		CompanyID:   c.CompanyID,
		StartAt:     startAt,
		EndAt:       endAt,
		AllDay:      c.AllDay,
		IsActive:    isActive,
		IsRecurring: c.IsRecurring,
		ServiceID:   serviceID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

// UpdateSlotRequest is a partial patch. Time fields are handled separately
// from the db-tagged fields so a drag-resize can move just one edge of the
// window; the service re-validates the merged range before persisting.
// ServiceID and ScheduleID are nullable references, so they carry no db tag
// either: a set pointer with an empty value clears the column to NULL.
type UpdateSlotRequest struct {
	StartAt     string  `json:"start_at"     validate:"omitempty,localdatetime"`
	EndAt       string  `json:"end_at"       validate:"omitempty,localdatetime"`
	AllDay      *bool   `db:"all_day"       json:"all_day"      validate:"omitempty"`
	IsActive    *bool   `db:"is_active"     json:"is_active"    validate:"omitempty"`
	IsRecurring *bool   `db:"is_recurring"  json:"is_recurring" validate:"omitempty"`
	ServiceID   *string `json:"service_id"   validate:"omitempty,uuid"`
	ScheduleID  *string `json:"schedule_id"  validate:"omitempty,uuid"`
}

func (u *UpdateSlotRequest) HasTimeChange() bool {
	return u.StartAt != "" || u.EndAt != "" || u.AllDay != nil
}

type SlotResponse struct {
	ID          string  `json:"id"`
	CompanyID   string  `json:"company_id"`
	StartAt     string  `json:"start_at"`
	EndAt       string  `json:"end_at"`
	AllDay      bool    `json:"all_day"`
	IsActive    bool    `json:"is_active"`
	IsRecurring bool    `json:"is_recurring"`
	ServiceID   *string `json:"service_id"`
	ScheduleID  *string `json:"schedule_id"`
	gDto.Metadata
}

func (r *SlotResponse) FromModel(model model.Slot) {
	r.ID = model.ID
	r.CompanyID = model.CompanyID
	r.StartAt = model.StartAt.String()

	if !model.EndAt.IsZero() {
		r.EndAt = model.EndAt.String()
	}

	r.AllDay = model.AllDay
	r.IsActive = model.IsActive
	r.IsRecurring = model.IsRecurring
	r.ServiceID = model.ServiceID
	r.ScheduleID = model.ScheduleID
	r.Metadata.FromModel(model.Metadata)
}

type GetSlotsResponse struct {
	Slots     []SlotResponse `json:"slots"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetSlotsResponse) FromModels(models []model.Slot, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Slots = make([]SlotResponse, len(models))
	for i, mod := range models {
		r.Slots[i].FromModel(mod)
	}
}
