package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	ApplicationID string `json:"application_id" validate:"required"`
	ScheduledDate string `json:"scheduled_date" validate:"required"`
}

func TestValidateStruct_FirstFieldWins(t *testing.T) {
	err := ValidateStruct(sample{})
	require.Error(t, err)
	assert.Equal(t, "application_id is required", err.Error())

	err = ValidateStruct(sample{ApplicationID: "app-1"})
	require.Error(t, err)
	assert.Equal(t, "scheduled_date is required", err.Error())

	assert.NoError(t, ValidateStruct(sample{ApplicationID: "app-1", ScheduledDate: "2025-01-01"}))
}
