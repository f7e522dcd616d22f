package queries

import (
	pkgerrors "migration-schedules/pkg/errors"
)

// GetScheduleQuery represents a query for a single migration schedule
type GetScheduleQuery struct {
	MigrationID string
}

// Validate validates the GetScheduleQuery
func (q GetScheduleQuery) Validate() error {
	if q.MigrationID == "" {
		return pkgerrors.NewValidationError("migrationId is required")
	}
	return nil
}

// ListSchedulesQuery represents a query for every migration schedule.
// The list is never paginated.
type ListSchedulesQuery struct{}
