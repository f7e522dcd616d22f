package handlers

import (
	"context"
	"errors"

	"migration-schedules/application/commands"
	"migration-schedules/application/ports"
	"migration-schedules/domain/core/entities"
	"migration-schedules/domain/core/valueobjects"
	"migration-schedules/domain/events"
	pkgerrors "migration-schedules/pkg/errors"
	"migration-schedules/pkg/utils"

	"go.uber.org/zap"
)

// UpdateScheduleHandler handles partial schedule updates
type UpdateScheduleHandler struct {
	scheduleRepo ports.ScheduleRepository
	refs         referenceChecker
	publisher    ports.EventPublisher
	clock        utils.Clock
	logger       *zap.Logger
}

// NewUpdateScheduleHandler creates a new update schedule handler
func NewUpdateScheduleHandler(
	scheduleRepo ports.ScheduleRepository,
	appRepo ports.ApplicationRepository,
	waveRepo ports.WaveRepository,
	publisher ports.EventPublisher,
	clock utils.Clock,
	logger *zap.Logger,
) *UpdateScheduleHandler {
	return &UpdateScheduleHandler{
		scheduleRepo: scheduleRepo,
		refs:         referenceChecker{appRepo: appRepo, waveRepo: waveRepo},
		publisher:    publisher,
		clock:        clock,
		logger:       logger,
	}
}

// Handle executes the update schedule command and returns the stored result
func (h *UpdateScheduleHandler) Handle(ctx context.Context, cmd commands.UpdateScheduleCommand) (*entities.MigrationSchedule, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	id, err := valueobjects.NewMigrationIDFromString(cmd.MigrationID)
	if err != nil {
		return nil, pkgerrors.NewValidationError(err.Error())
	}

	existing, err := h.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("get migration schedule", err)
	}
	if existing == nil {
		return nil, entities.ScheduleNotFound(cmd.MigrationID)
	}

	// Only references that actually change are checked
	if cmd.ApplicationID.Present && cmd.ApplicationID.Value != existing.ApplicationID {
		if err := h.refs.requireApplication(ctx, cmd.ApplicationID.Value); err != nil {
			return nil, err
		}
	}
	if cmd.WaveID.HasValue() && cmd.WaveID.Value != existing.WaveID {
		if err := h.refs.requireWave(ctx, cmd.WaveID.Value); err != nil {
			return nil, err
		}
	}

	now := h.clock()
	changes := ports.ScheduleChanges{
		LastUpdated: entities.Timestamp(now),
		WaveID:      cmd.WaveID,
	}
	if cmd.ApplicationID.Present {
		changes.ApplicationID = &cmd.ApplicationID.Value
	}
	if cmd.ScheduledDate.Present {
		changes.ScheduledDate = &cmd.ScheduledDate.Value
	}
	if cmd.Status.Present {
		changes.Status = &cmd.Status.Value
	}

	updated, err := h.scheduleRepo.Update(ctx, id, changes)
	if err != nil {
		if errors.Is(err, ports.ErrScheduleNotFound) {
			return nil, entities.ScheduleNotFound(cmd.MigrationID)
		}
		return nil, pkgerrors.NewDatabaseError("update migration schedule", err)
	}

	publish(ctx, h.publisher, h.logger, events.NewScheduleUpdated(cmd.MigrationID, changes.Fields(), cmd.UpdatedBy, now))

	h.logger.Info("Migration schedule updated",
		zap.String("migrationID", cmd.MigrationID),
		zap.Strings("fields", changes.Fields()),
	)

	return updated, nil
}
