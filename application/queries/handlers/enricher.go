package handlers

import (
	"context"

	"migration-schedules/application/ports"
	"migration-schedules/domain/core/entities"
	pkgerrors "migration-schedules/pkg/errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultEnrichmentConcurrency bounds the number of schedules enriched at once
const DefaultEnrichmentConcurrency = 8

// Enricher attaches application and wave names to schedules.
// Dangling references are tolerated: the name is simply left out.
type Enricher struct {
	appRepo     ports.ApplicationRepository
	waveRepo    ports.WaveRepository
	concurrency int
	logger      *zap.Logger
}

// NewEnricher creates a new enricher
func NewEnricher(appRepo ports.ApplicationRepository, waveRepo ports.WaveRepository, concurrency int, logger *zap.Logger) *Enricher {
	if concurrency < 1 {
		concurrency = DefaultEnrichmentConcurrency
	}
	return &Enricher{
		appRepo:     appRepo,
		waveRepo:    waveRepo,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Enrich returns a copy of the schedule with application_name and wave_name filled in
func (e *Enricher) Enrich(ctx context.Context, schedule *entities.MigrationSchedule) (*entities.MigrationSchedule, error) {
	enriched := schedule.Clone()

	if enriched.ApplicationID != "" {
		app, err := e.appRepo.GetByID(ctx, enriched.ApplicationID)
		if err != nil {
			return nil, pkgerrors.NewDatabaseError("get application", err)
		}
		if app != nil {
			enriched.SetApplicationName(app.DisplayName())
		}
	}

	if enriched.HasWave() {
		wave, err := e.waveRepo.GetByID(ctx, enriched.WaveID)
		if err != nil {
			return nil, pkgerrors.NewDatabaseError("get wave", err)
		}
		if wave != nil {
			enriched.SetWaveName(wave.DisplayName())
		}
	}

	return enriched, nil
}

// EnrichAll enriches every schedule with bounded parallelism. The output keeps
// the input order; the first storage failure cancels the remaining lookups.
func (e *Enricher) EnrichAll(ctx context.Context, schedules []*entities.MigrationSchedule) ([]*entities.MigrationSchedule, error) {
	result := make([]*entities.MigrationSchedule, len(schedules))
	if len(schedules) == 0 {
		return result, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	for i, schedule := range schedules {
		i, schedule := i, schedule
		g.Go(func() error {
			enriched, err := e.Enrich(gctx, schedule)
			if err != nil {
				return err
			}
			result[i] = enriched
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		e.logger.Error("Failed to enrich migration schedules",
			zap.Int("count", len(schedules)),
			zap.Error(err),
		)
		return nil, err
	}

	return result, nil
}
