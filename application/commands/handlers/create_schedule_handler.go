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

// CreateScheduleHandler handles schedule creation
type CreateScheduleHandler struct {
	scheduleRepo ports.ScheduleRepository
	refs         referenceChecker
	publisher    ports.EventPublisher
	clock        utils.Clock
	logger       *zap.Logger
}

// NewCreateScheduleHandler creates a new create schedule handler
func NewCreateScheduleHandler(
	scheduleRepo ports.ScheduleRepository,
	appRepo ports.ApplicationRepository,
	waveRepo ports.WaveRepository,
	publisher ports.EventPublisher,
	clock utils.Clock,
	logger *zap.Logger,
) *CreateScheduleHandler {
	return &CreateScheduleHandler{
		scheduleRepo: scheduleRepo,
		refs:         referenceChecker{appRepo: appRepo, waveRepo: waveRepo},
		publisher:    publisher,
		clock:        clock,
		logger:       logger,
	}
}

// Handle validates the command, checks references and persists a new schedule
func (h *CreateScheduleHandler) Handle(ctx context.Context, cmd commands.CreateScheduleCommand) (*entities.MigrationSchedule, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.refs.requireApplication(ctx, cmd.ApplicationID); err != nil {
		return nil, err
	}
	if cmd.WaveID != "" {
		if err := h.refs.requireWave(ctx, cmd.WaveID); err != nil {
			return nil, err
		}
	}

	now := h.clock()
	schedule := entities.NewMigrationSchedule(
		valueobjects.NewMigrationID().String(),
		cmd.ApplicationID,
		cmd.WaveID,
		cmd.ScheduledDate,
		cmd.Status,
		cmd.CreatedBy,
		now,
	)

	if err := h.scheduleRepo.Save(ctx, schedule); err != nil {
		return nil, pkgerrors.NewDatabaseError("put migration schedule", err)
	}

	publish(ctx, h.publisher, h.logger, events.NewScheduleCreated(
		schedule.MigrationID,
		schedule.ApplicationID,
		schedule.WaveID,
		schedule.ScheduledDate,
		schedule.Status,
		schedule.CreatedBy,
		now,
	))

	h.logger.Info("Migration schedule created",
		zap.String("migrationID", schedule.MigrationID),
		zap.String("applicationID", schedule.ApplicationID),
		zap.String("createdBy", schedule.CreatedBy),
	)

	return schedule, nil
}

// publish sends an event; failures are logged and never fail the command
func publish(ctx context.Context, publisher ports.EventPublisher, logger *zap.Logger, event events.DomainEvent) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish event",
			zap.String("eventType", event.GetEventType()),
			zap.String("aggregateID", event.GetAggregateID()),
			zap.Error(err),
		)
	}
}
