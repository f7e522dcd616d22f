package handlers

import (
	"context"

	"migration-schedules/application/commands"
	"migration-schedules/application/ports"
	"migration-schedules/domain/core/entities"
	"migration-schedules/domain/core/valueobjects"
	"migration-schedules/domain/events"
	pkgerrors "migration-schedules/pkg/errors"
	"migration-schedules/pkg/utils"

	"go.uber.org/zap"
)

// DeleteScheduleHandler handles schedule deletion
type DeleteScheduleHandler struct {
	scheduleRepo ports.ScheduleRepository
	publisher    ports.EventPublisher
	clock        utils.Clock
	logger       *zap.Logger
}

// NewDeleteScheduleHandler creates a new delete schedule handler
func NewDeleteScheduleHandler(
	scheduleRepo ports.ScheduleRepository,
	publisher ports.EventPublisher,
	clock utils.Clock,
	logger *zap.Logger,
) *DeleteScheduleHandler {
	return &DeleteScheduleHandler{
		scheduleRepo: scheduleRepo,
		publisher:    publisher,
		clock:        clock,
		logger:       logger,
	}
}

// Handle executes the delete schedule command
func (h *DeleteScheduleHandler) Handle(ctx context.Context, cmd commands.DeleteScheduleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	id, err := valueobjects.NewMigrationIDFromString(cmd.MigrationID)
	if err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}

	existing, err := h.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		return pkgerrors.NewDatabaseError("get migration schedule", err)
	}
	if existing == nil {
		return entities.ScheduleNotFound(cmd.MigrationID)
	}

	if err := h.scheduleRepo.Delete(ctx, id); err != nil {
		return pkgerrors.NewDatabaseError("delete migration schedule", err)
	}

	publish(ctx, h.publisher, h.logger, events.NewScheduleDeleted(cmd.MigrationID, existing.ApplicationID, cmd.DeletedBy, h.clock()))

	h.logger.Info("Migration schedule deleted", zap.String("migrationID", cmd.MigrationID))

	return nil
}
