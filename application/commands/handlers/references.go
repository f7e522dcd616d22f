package handlers

import (
	"context"

	"migration-schedules/application/ports"
	"migration-schedules/domain/core/entities"
	pkgerrors "migration-schedules/pkg/errors"
)

// referenceChecker verifies that referenced applications and waves exist
type referenceChecker struct {
	appRepo  ports.ApplicationRepository
	waveRepo ports.WaveRepository
}

func (c referenceChecker) requireApplication(ctx context.Context, appID string) error {
	app, err := c.appRepo.GetByID(ctx, appID)
	if err != nil {
		return pkgerrors.NewDatabaseError("get application", err)
	}
	if app == nil {
		return entities.ApplicationNotFound(appID)
	}
	return nil
}

func (c referenceChecker) requireWave(ctx context.Context, waveID string) error {
	wave, err := c.waveRepo.GetByID(ctx, waveID)
	if err != nil {
		return pkgerrors.NewDatabaseError("get wave", err)
	}
	if wave == nil {
		return entities.WaveNotFound(waveID)
	}
	return nil
}
