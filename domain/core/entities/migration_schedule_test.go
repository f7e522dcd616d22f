package entities

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMigrationSchedule_Defaults(t *testing.T) {
	now := time.Date(2025, 1, 1, 10, 30, 0, 0, time.FixedZone("CET", 3600))

	s := NewMigrationSchedule("m-1", "app-1", "", "2025-02-01", "", "", now)

	assert.Equal(t, DefaultStatus, s.Status)
	assert.Equal(t, "unknown", s.CreatedBy)
	assert.Equal(t, "2025-01-01T09:30:00.000000+00:00", s.LastUpdated)
	assert.False(t, s.HasWave())
}

func TestMigrationSchedule_MarshalJSON(t *testing.T) {
	s := MigrationSchedule{
		MigrationID:     "m-1",
		ApplicationID:   "app-1",
		ScheduledDate:   "2025-02-01",
		Status:          "Scheduled",
		CreatedBy:       "jane@example.com",
		LastUpdated:     "2025-01-01T00:00:00.000000+00:00",
		ApplicationName: "Payroll",
		Attributes: map[string]interface{}{
			"priority":     Decimal("10.50"),
			"notes":        Blob("hello"),
			"status":       "shadowed",
			"tags":         []interface{}{"a", Decimal("1")},
			"acknowledged": true,
		},
	}

	raw, err := json.Marshal(s)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))

	assert.Equal(t, "m-1", out["migration_id"])
	assert.Equal(t, "Scheduled", out["status"])
	assert.Equal(t, "Payroll", out["application_name"])
	assert.Equal(t, "10.50", out["priority"])
	assert.Equal(t, "hello", out["notes"])
	assert.Equal(t, []interface{}{"a", "1"}, out["tags"])
	assert.Equal(t, true, out["acknowledged"])
	assert.NotContains(t, out, "wave_id")
	assert.NotContains(t, out, "wave_name")
}

func TestMigrationSchedule_MarshalPointer(t *testing.T) {
	s := &MigrationSchedule{MigrationID: "m-1", WaveID: "w-1", WaveName: "Wave 1"}

	raw, err := json.Marshal([]*MigrationSchedule{s})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"wave_id":"w-1"`)
	assert.Contains(t, string(raw), `"wave_name":"Wave 1"`)
}

func TestMigrationSchedule_Clone(t *testing.T) {
	s := &MigrationSchedule{MigrationID: "m-1", Attributes: map[string]interface{}{"k": "v"}}

	c := s.Clone()
	c.Attributes["k"] = "changed"
	c.Status = "Completed"

	assert.Equal(t, "v", s.Attributes["k"])
	assert.Empty(t, s.Status)
}

func TestReferenceDisplayNames(t *testing.T) {
	assert.Equal(t, "Payroll", (&Application{AppID: "a", AppName: "Payroll"}).DisplayName())
	assert.Equal(t, UnknownName, (&Application{AppID: "a"}).DisplayName())
	assert.Equal(t, "Wave 3", (&Wave{WaveID: "w", WaveName: "Wave 3"}).DisplayName())
	assert.Equal(t, UnknownName, (&Wave{WaveID: "w"}).DisplayName())

	app := &Application{AppID: "a"}
	app.SetName("")
	assert.Equal(t, "", app.DisplayName())

	wave := &Wave{WaveID: "w"}
	wave.SetName("")
	assert.Equal(t, "", wave.DisplayName())
}

func TestMigrationSchedule_MarshalSkipsMissingAttributes(t *testing.T) {
	s := &MigrationSchedule{MigrationID: "m-1", ApplicationID: "app-1", Status: "Scheduled"}
	s.MarkMissing(AttrScheduledDate, AttrCreatedBy, AttrLastUpdated)
	s.SetApplicationName("")

	raw, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"migration_id": "m-1",
		"application_id": "app-1",
		"status": "Scheduled",
		"application_name": ""
	}`, string(raw))

	c := s.Clone()
	c.MarkStored(AttrCreatedBy)
	c.ClearNames()
	assert.True(t, c.Has(AttrCreatedBy))
	assert.False(t, s.Has(AttrCreatedBy))

	raw, err = json.Marshal(c)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "application_name")
	assert.Contains(t, string(raw), `"created_by":""`)
}
