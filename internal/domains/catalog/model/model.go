package model

import (
	"agenda/shared/model"
)

const (
	TableName  = "services"
	EntityName = "service"

	FieldID              = "id"
	FieldCompanyID       = "company_id"
	FieldName            = "name"
	FieldDurationMinutes = "duration_minutes"
	FieldPrice           = "price"
	FieldIsActive        = "is_active"
)

type CatalogService struct {
	ID              string  `db:"id"`
	CompanyID       string  `db:"company_id"`
	Name            string  `db:"name"`
	DurationMinutes int     `db:"duration_minutes"`
	Price           float64 `db:"price"`
	IsActive        bool    `db:"is_active"`
	model.Metadata
}
