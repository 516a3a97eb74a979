package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"agenda/shared"
	"agenda/shared/dto"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *bool
	}{
		{name: "empty string", input: "", want: nil},
		{name: "true", input: "true", want: boolPtr(true)},
		{name: "false", input: "false", want: boolPtr(false)},
		{name: "numeric true", input: "1", want: boolPtr(true)},
		{name: "garbage", input: "not-a-bool", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shared.ConvertStringToBool(tt.input)

			if tt.want == nil {
				assert.Nil(t, got)
			} else {
				assert.NotNil(t, got)
				assert.Equal(t, *tt.want, *got)
			}
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{name: "zero total", total: 0, limit: 10, want: 1},
		{name: "zero limit", total: 10, limit: 0, want: 1},
		{name: "exact pages", total: 20, limit: 10, want: 2},
		{name: "partial last page", total: 15, limit: 10, want: 2},
		{name: "single page", total: 5, limit: 10, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("some-id", "id", "schedule_slots")

	where, args := group.GetWhereClause()
	assert.Equal(t, "(schedule_slots.id = :id)", where)
	assert.Equal(t, "some-id", args["id"])
}

func TestFilterByCompany(t *testing.T) {
	group := shared.FilterByCompany("company-1", "company_id", "schedules")

	where, args := group.GetWhereClause()
	assert.Equal(t, "(schedules.company_id = :company_id)", where)
	assert.Equal(t, "company-1", args["company_id"])
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "slot:gets", shared.BuildCacheKey("slot:gets"))
	assert.Equal(t, "slot:gets:company-1", shared.BuildCacheKey("slot:gets", "company-1"))
	assert.Equal(t, "booking:get:a:b", shared.BuildCacheKey("booking:get", "a", "b"))
}

func TestBuildCacheKeyWithQuery_DistinctPerQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 50}

	keyA := shared.BuildCacheKeyWithQuery("booking:gets", params, shared.FilterByCompany("a", "company_id", "schedules"))
	keyB := shared.BuildCacheKeyWithQuery("booking:gets", params, shared.FilterByCompany("b", "company_id", "schedules"))

	assert.NotEqual(t, keyA, keyB)
}

func boolPtr(b bool) *bool {
	return &b
}
