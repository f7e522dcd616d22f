package valueobjects

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type patch struct {
	WaveID OptionalString `json:"wave_id"`
	Status OptionalString `json:"status"`
}

func TestOptionalString_Unmarshal(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		present  bool
		value    string
		hasValue bool
	}{
		{name: "absent", body: `{}`, present: false},
		{name: "value", body: `{"wave_id":"wave-1"}`, present: true, value: "wave-1", hasValue: true},
		{name: "empty string", body: `{"wave_id":""}`, present: true},
		{name: "null", body: `{"wave_id":null}`, present: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p patch
			require.NoError(t, json.Unmarshal([]byte(tt.body), &p))

			assert.Equal(t, tt.present, p.WaveID.Present)
			assert.Equal(t, tt.value, p.WaveID.Value)
			assert.Equal(t, tt.hasValue, p.WaveID.HasValue())
			assert.Equal(t, tt.present && !tt.hasValue, p.WaveID.IsEmpty())
			assert.False(t, p.Status.Present)
		})
	}
}

func TestOptionalString_RejectsNonString(t *testing.T) {
	var p patch
	err := json.Unmarshal([]byte(`{"status": 42}`), &p)
	assert.Error(t, err)
}

func TestMigrationID(t *testing.T) {
	a := NewMigrationID()
	b := NewMigrationID()

	assert.NotEmpty(t, a.String())
	assert.NotEqual(t, a.String(), b.String())

	parsed, err := NewMigrationIDFromString(a.String())
	require.NoError(t, err)
	assert.Equal(t, a, parsed)

	_, err = NewMigrationIDFromString("")
	assert.Error(t, err)
}
