package dto

import (
	"agenda/internal/domains/catalog/model"
	"agenda/shared"
	gDto "agenda/shared/dto"
)

type CatalogServiceResponse struct {
	ID              string  `json:"id"`
	CompanyID       string  `json:"company_id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
	IsActive        bool    `json:"is_active"`
	gDto.Metadata
}

func (r *CatalogServiceResponse) FromModel(model model.CatalogService) {
	r.ID = model.ID
	r.CompanyID = model.CompanyID
	r.Name = model.Name
	r.DurationMinutes = model.DurationMinutes
	r.Price = model.Price
	r.IsActive = model.IsActive
	r.Metadata.FromModel(model.Metadata)
}

type GetCatalogServicesResponse struct {
	Services  []CatalogServiceResponse `json:"services"`
	TotalPage int                      `json:"total_page"`
	TotalData int                      `json:"total_data"`
}

func (r *GetCatalogServicesResponse) FromModels(models []model.CatalogService, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Services = make([]CatalogServiceResponse, len(models))
	for i, mod := range models {
		r.Services[i].FromModel(mod)
	}
}
