package handlers

import (
	"context"

	"migration-schedules/application/ports"
	"migration-schedules/application/queries"
	"migration-schedules/domain/core/entities"
	"migration-schedules/domain/core/valueobjects"
	pkgerrors "migration-schedules/pkg/errors"

	"go.uber.org/zap"
)

// GetScheduleHandler handles single schedule lookups
type GetScheduleHandler struct {
	scheduleRepo ports.ScheduleRepository
	enricher     *Enricher
	logger       *zap.Logger
}

// NewGetScheduleHandler creates a new get schedule handler
func NewGetScheduleHandler(scheduleRepo ports.ScheduleRepository, enricher *Enricher, logger *zap.Logger) *GetScheduleHandler {
	return &GetScheduleHandler{
		scheduleRepo: scheduleRepo,
		enricher:     enricher,
		logger:       logger,
	}
}

// Handle fetches and enriches one schedule
func (h *GetScheduleHandler) Handle(ctx context.Context, query queries.GetScheduleQuery) (*entities.MigrationSchedule, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	id, err := valueobjects.NewMigrationIDFromString(query.MigrationID)
	if err != nil {
		return nil, pkgerrors.NewValidationError(err.Error())
	}

	schedule, err := h.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("get migration schedule", err)
	}
	if schedule == nil {
		return nil, entities.ScheduleNotFound(query.MigrationID)
	}

	return h.enricher.Enrich(ctx, schedule)
}
