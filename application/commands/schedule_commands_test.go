package commands

import (
	"encoding/json"
	"testing"

	"migration-schedules/domain/core/valueobjects"
	pkgerrors "migration-schedules/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateScheduleCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cmd     CreateScheduleCommand
		message string
	}{
		{"missing both", CreateScheduleCommand{}, "application_id is required"},
		{"missing date", CreateScheduleCommand{ApplicationID: "app-1"}, "scheduled_date is required"},
		{"missing application", CreateScheduleCommand{ScheduledDate: "2025-01-01"}, "application_id is required"},
		{"valid", CreateScheduleCommand{ApplicationID: "app-1", ScheduledDate: "2025-01-01"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate()
			if tt.message == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, pkgerrors.IsValidation(err))
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestUpdateScheduleCommand_DecodeAndValidate(t *testing.T) {
	var cmd UpdateScheduleCommand
	require.NoError(t, json.Unmarshal([]byte(`{"status":"Completed","wave_id":""}`), &cmd))
	cmd.MigrationID = "m-1"

	assert.NoError(t, cmd.Validate())
	assert.Equal(t, valueobjects.Some("Completed"), cmd.Status)
	assert.True(t, cmd.WaveID.IsEmpty())
	assert.False(t, cmd.ApplicationID.Present)

	assert.EqualError(t, UpdateScheduleCommand{}.Validate(), "migrationId is required")
	assert.EqualError(t, UpdateScheduleCommand{MigrationID: "m-1", ApplicationID: valueobjects.Some("")}.Validate(), "application_id cannot be empty")
	assert.EqualError(t, UpdateScheduleCommand{MigrationID: "m-1", ScheduledDate: valueobjects.Some("")}.Validate(), "scheduled_date cannot be empty")
}

func TestDeleteScheduleCommand_Validate(t *testing.T) {
	assert.EqualError(t, DeleteScheduleCommand{}.Validate(), "migrationId is required")
	assert.NoError(t, DeleteScheduleCommand{MigrationID: "m-1"}.Validate())
}
