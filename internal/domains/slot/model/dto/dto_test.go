package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"agenda/internal/domains/slot/model"
	"agenda/internal/domains/slot/model/dto"
	"agenda/shared/localtime"
)

func TestCreateSlotRequest_ToModel(t *testing.T) {
	t.Run("timed slot", func(t *testing.T) {
		req := dto.CreateSlotRequest{
			CompanyID: "company-1",
			StartAt:   "2026-09-01T09:00:00",
			EndAt:     "2026-09-01T10:00:00",
			ServiceID: "service-1",
		}

		slot, err := req.ToModel("user-1")

		assert.NoError(t, err)
		assert.NotEmpty(t, slot.ID)
		assert.Equal(t, "company-1", slot.CompanyID)
		assert.Equal(t, "2026-09-01T09:00:00", slot.StartAt.String())
		assert.Equal(t, "2026-09-01T10:00:00", slot.EndAt.String())
		assert.True(t, slot.IsActive)
		assert.NotNil(t, slot.ServiceID)
		assert.Equal(t, "service-1", *slot.ServiceID)
		assert.Equal(t, "user-1", slot.CreatedBy)
	})

	t.Run("explicitly paused", func(t *testing.T) {
		isActive := false
		req := dto.CreateSlotRequest{
			CompanyID: "company-1",
			StartAt:   "2026-09-01T09:00:00",
			EndAt:     "2026-09-01T10:00:00",
			IsActive:  &isActive,
		}

		slot, err := req.ToModel("user-1")

		assert.NoError(t, err)
		assert.False(t, slot.IsActive)
	})

	t.Run("invalid start", func(t *testing.T) {
		req := dto.CreateSlotRequest{
			CompanyID: "company-1",
			StartAt:   "2026-09-01T09:00:00Z",
			EndAt:     "2026-09-01T10:00:00",
		}

		_, err := req.ToModel("user-1")

		assert.Error(t, err)
	})
}

func TestSlotResponse_FromModel(t *testing.T) {
	serviceID := "service-1"
	slot := model.Slot{
		ID:        "slot-1",
		CompanyID: "company-1",
		StartAt:   localtime.New(2026, 9, 1, 9, 0, 0),
		EndAt:     localtime.New(2026, 9, 1, 10, 0, 0),
		IsActive:  true,
		ServiceID: &serviceID,
	}

	var res dto.SlotResponse
	res.FromModel(slot)

	assert.Equal(t, "slot-1", res.ID)
	assert.Equal(t, "2026-09-01T09:00:00", res.StartAt)
	assert.Equal(t, "2026-09-01T10:00:00", res.EndAt)
	assert.Equal(t, &serviceID, res.ServiceID)
}

func TestSlotResponse_FromModelAllDay(t *testing.T) {
	slot := model.Slot{
		ID:        "slot-1",
		CompanyID: "company-1",
		StartAt:   localtime.New(2026, 9, 1, 0, 0, 0),
		AllDay:    true,
	}

	var res dto.SlotResponse
	res.FromModel(slot)

	assert.True(t, res.AllDay)
	assert.Empty(t, res.EndAt)
}
