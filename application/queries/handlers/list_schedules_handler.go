package handlers

import (
	"context"

	"migration-schedules/application/ports"
	"migration-schedules/application/queries"
	"migration-schedules/domain/core/entities"
	pkgerrors "migration-schedules/pkg/errors"

	"go.uber.org/zap"
)

// ListSchedulesHandler handles the full listing of schedules
type ListSchedulesHandler struct {
	scheduleRepo ports.ScheduleRepository
	enricher     *Enricher
	logger       *zap.Logger
}

// NewListSchedulesHandler creates a new list schedules handler
func NewListSchedulesHandler(scheduleRepo ports.ScheduleRepository, enricher *Enricher, logger *zap.Logger) *ListSchedulesHandler {
	return &ListSchedulesHandler{
		scheduleRepo: scheduleRepo,
		enricher:     enricher,
		logger:       logger,
	}
}

// Handle returns every schedule, enriched, in storage order
func (h *ListSchedulesHandler) Handle(ctx context.Context, _ queries.ListSchedulesQuery) ([]*entities.MigrationSchedule, error) {
	schedules, err := h.scheduleRepo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("scan migration schedules", err)
	}

	enriched, err := h.enricher.EnrichAll(ctx, schedules)
	if err != nil {
		return nil, err
	}

	h.logger.Debug("Listed migration schedules", zap.Int("count", len(enriched)))
	return enriched, nil
}
