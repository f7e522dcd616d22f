package entities

import (
	"fmt"

	pkgerrors "migration-schedules/pkg/errors"
)

const suffixDoesNotExist = "does not exist"

// ScheduleNotFound reports a missing migration schedule
func ScheduleNotFound(migrationID string) *pkgerrors.AppError {
	return pkgerrors.NewNotFoundError(fmt.Sprintf("Migration schedule with ID %s %s", migrationID, suffixDoesNotExist))
}

// ApplicationNotFound reports a reference to a missing application. It is a
// validation failure of the request, not a missing target.
func ApplicationNotFound(appID string) *pkgerrors.AppError {
	return pkgerrors.NewValidationErrorf("Application with ID %s %s", appID, suffixDoesNotExist)
}

// WaveNotFound reports a reference to a missing wave
func WaveNotFound(waveID string) *pkgerrors.AppError {
	return pkgerrors.NewValidationErrorf("Wave with ID %s %s", waveID, suffixDoesNotExist)
}
