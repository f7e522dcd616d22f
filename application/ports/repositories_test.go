package ports

import (
	"testing"

	"migration-schedules/domain/core/entities"
	"migration-schedules/domain/core/valueobjects"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestScheduleChanges_Fields(t *testing.T) {
	changes := ScheduleChanges{
		LastUpdated: "now",
		Status:      strPtr("Completed"),
		WaveID:      valueobjects.Some(""),
	}

	assert.Equal(t, []string{"last_updated", "status", "wave_id"}, changes.Fields())
	assert.Equal(t, []string{"last_updated"}, ScheduleChanges{LastUpdated: "now"}.Fields())
}

func TestScheduleChanges_Apply(t *testing.T) {
	existing := &entities.MigrationSchedule{
		MigrationID:   "m-1",
		ApplicationID: "app-1",
		WaveID:        "wave-1",
		ScheduledDate: "2025-01-01",
		Status:        "Scheduled",
		LastUpdated:   "before",
	}

	updated := ScheduleChanges{
		LastUpdated: "after",
		Status:      strPtr("Completed"),
		WaveID:      valueobjects.Some(""),
	}.Apply(existing)

	assert.Equal(t, "Completed", updated.Status)
	assert.Equal(t, "after", updated.LastUpdated)
	assert.Empty(t, updated.WaveID)
	assert.Equal(t, "app-1", updated.ApplicationID)
	assert.Equal(t, "2025-01-01", updated.ScheduledDate)
	assert.Equal(t, "wave-1", existing.WaveID, "original must be untouched")
}

func TestScheduleChanges_ApplyRestoresWrittenAttributes(t *testing.T) {
	existing := &entities.MigrationSchedule{
		MigrationID: "m-1",
		Attributes:  map[string]interface{}{"status": true, "owner": "ops"},
	}
	existing.MarkMissing(entities.AttrStatus, entities.AttrLastUpdated, entities.AttrCreatedBy)

	updated := ScheduleChanges{LastUpdated: "after", Status: strPtr("Completed")}.Apply(existing)

	assert.True(t, updated.Has(entities.AttrStatus))
	assert.True(t, updated.Has(entities.AttrLastUpdated))
	assert.False(t, updated.Has(entities.AttrCreatedBy))
	assert.NotContains(t, updated.Attributes, "status")
	assert.Equal(t, "ops", updated.Attributes["owner"])
	assert.Equal(t, true, existing.Attributes["status"], "original must be untouched")
}
