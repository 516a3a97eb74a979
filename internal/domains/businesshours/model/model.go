package model

import (
	"agenda/shared/model"
)

const (
	TableName  = "business_hours"
	EntityName = "business hours"

	FieldID        = "id"
	FieldCompanyID = "company_id"
	FieldWeekday   = "weekday"
	FieldOpensAt   = "opens_at"
	FieldClosesAt  = "closes_at"
	FieldEnabled   = "enabled"
)

// BusinessHours is one weekday row of a company's opening envelope.
// Weekday follows time.Weekday numbering, Sunday is 0. Opening bounds are
// wall-clock "15:04" strings compared lexically, which is safe for zero
// padded 24h clocks.
type BusinessHours struct {
	ID        string `db:"id"`
	CompanyID string `db:"company_id"`
	Weekday   int    `db:"weekday"`
	OpensAt   string `db:"opens_at"`
	ClosesAt  string `db:"closes_at"`
	Enabled   bool   `db:"enabled"`
	model.Metadata
}

// Admits reports whether a same-day clock range fits inside the opening
// bounds of an enabled weekday.
func (b *BusinessHours) Admits(startClock, endClock string) bool {
	if !b.Enabled {
		return false
	}

	return b.OpensAt <= startClock && endClock <= b.ClosesAt
}
