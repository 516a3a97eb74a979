package dto

import (
	"agenda/internal/domains/availability/model"
	"agenda/shared/localtime"
)

type CheckAvailabilityRequest struct {
	CompanyID string `json:"company_id" validate:"required,uuid"`
	StartAt   string `json:"start_at"   validate:"required,localdatetime"`
	EndAt     string `json:"end_at"     validate:"required_unless=AllDay true,omitempty,localdatetime"`
	AllDay    bool   `json:"all_day"    validate:"omitempty"`
	ServiceID string `json:"service_id" validate:"omitempty,uuid"`
}

func (c *CheckAvailabilityRequest) ToRange() (model.Range, error) {
	start, err := localtime.Parse(c.StartAt)
	if err != nil {
		return model.Range{}, err
	}

	var end localtime.LocalTime
	if c.EndAt != "" {
		end, err = localtime.Parse(c.EndAt)
		if err != nil {
			return model.Range{}, err
		}
	}

	return model.Range{
		Start:     start,
		End:       end,
		AllDay:    c.AllDay,
		ServiceID: c.ServiceID,
	}, nil
}

type CheckAvailabilityResponse struct {
	Bookable bool   `json:"bookable"`
	Reason   string `json:"reason"`
	SlotID   string `json:"slot_id,omitempty"`
}

func (r *CheckAvailabilityResponse) FromDecision(decision model.Decision) {
	r.Bookable = decision.Bookable
	r.Reason = decision.Reason
	r.SlotID = decision.SlotID
}
