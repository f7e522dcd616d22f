package commands

import (
	"migration-schedules/domain/core/valueobjects"
	pkgerrors "migration-schedules/pkg/errors"
	"migration-schedules/pkg/utils"
)

// CreateScheduleCommand represents the command to create a migration schedule.
// Field order matters: required fields are reported in declaration order.
type CreateScheduleCommand struct {
	ApplicationID string `json:"application_id" validate:"required"`
	ScheduledDate string `json:"scheduled_date" validate:"required"`
	WaveID        string `json:"wave_id"`
	Status        string `json:"status"`
	CreatedBy     string `json:"-"`
}

// Validate validates the CreateScheduleCommand
func (c CreateScheduleCommand) Validate() error {
	if err := utils.ValidateStruct(c); err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}
	return nil
}

// UpdateScheduleCommand represents a partial update of a migration schedule
type UpdateScheduleCommand struct {
	MigrationID   string                      `json:"-"`
	ApplicationID valueobjects.OptionalString `json:"application_id"`
	ScheduledDate valueobjects.OptionalString `json:"scheduled_date"`
	Status        valueobjects.OptionalString `json:"status"`
	WaveID        valueobjects.OptionalString `json:"wave_id"`
	UpdatedBy     string                      `json:"-"`
}

// Validate validates the UpdateScheduleCommand
func (c UpdateScheduleCommand) Validate() error {
	if c.MigrationID == "" {
		return pkgerrors.NewValidationError("migrationId is required")
	}
	if c.ApplicationID.IsEmpty() {
		return pkgerrors.NewValidationError("application_id cannot be empty")
	}
	if c.ScheduledDate.IsEmpty() {
		return pkgerrors.NewValidationError("scheduled_date cannot be empty")
	}
	return nil
}

// DeleteScheduleCommand represents the command to delete a migration schedule
type DeleteScheduleCommand struct {
	MigrationID string
	DeletedBy   string
}

// Validate validates the DeleteScheduleCommand
func (c DeleteScheduleCommand) Validate() error {
	if c.MigrationID == "" {
		return pkgerrors.NewValidationError("migrationId is required")
	}
	return nil
}
