package dto

import (
	"github.com/google/uuid"

	"agenda/internal/domains/businesshours/model"
	gModel "agenda/shared/model"
	"agenda/shared/timezone"
)

type DayHoursRequest struct {
	Weekday  int    `json:"weekday"   validate:"min=0,max=6"`
	OpensAt  string `json:"opens_at"  validate:"required,clock"`
	ClosesAt string `json:"closes_at" validate:"required,clock,gtfield=OpensAt"`
	Enabled  bool   `json:"enabled"`
}

// PutBusinessHoursRequest replaces a company's whole weekly envelope in one
// call; partial weeks are not a thing the calendar can render.
type PutBusinessHoursRequest struct {
	CompanyID string            `json:"company_id" validate:"required,uuid"`
	Days      []DayHoursRequest `json:"days"       validate:"required,min=1,max=7,dive"`
}

func (p *PutBusinessHoursRequest) ToModels(user string) []model.BusinessHours {
	models := make([]model.BusinessHours, len(p.Days))
	for i, day := range p.Days {
		models[i] = model.BusinessHours{
			ID:        uuid.NewString(),
			CompanyID: p.CompanyID,
			Weekday:   day.Weekday,
			OpensAt:   day.OpensAt,
			ClosesAt:  day.ClosesAt,
			Enabled:   day.Enabled,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  user,
				ModifiedBy: user,
			},
		}
	}

	return models
}

type DayHoursResponse struct {
	Weekday  int    `json:"weekday"`
	OpensAt  string `json:"opens_at"`
	ClosesAt string `json:"closes_at"`
	Enabled  bool   `json:"enabled"`
}

type GetBusinessHoursResponse struct {
	CompanyID string             `json:"company_id"`
	Days      []DayHoursResponse `json:"days"`
}

func (r *GetBusinessHoursResponse) FromModels(companyID string, models []model.BusinessHours) {
	r.CompanyID = companyID

	r.Days = make([]DayHoursResponse, len(models))
	for i, mod := range models {
		r.Days[i] = DayHoursResponse{
			Weekday:  mod.Weekday,
			OpensAt:  mod.OpensAt,
			ClosesAt: mod.ClosesAt,
			Enabled:  mod.Enabled,
		}
	}
}
