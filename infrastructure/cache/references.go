package cache

import (
	"context"

	"migration-schedules/application/ports"
	"migration-schedules/domain/core/entities"
)

// Applications caches application lookups. Misses and errors are not cached,
// so a newly created application is visible immediately.
type Applications struct {
	next  ports.ApplicationRepository
	cache *TTLCache
}

// NewApplications wraps next with cache
func NewApplications(next ports.ApplicationRepository, cache *TTLCache) *Applications {
	return &Applications{next: next, cache: cache}
}

// GetByID implements ports.ApplicationRepository
func (a *Applications) GetByID(ctx context.Context, appID string) (*entities.Application, error) {
	key := "app#" + appID
	if v, ok := a.cache.Get(key); ok {
		app := v.(entities.Application)
		return &app, nil
	}

	app, err := a.next.GetByID(ctx, appID)
	if err != nil || app == nil {
		return app, err
	}
	a.cache.Set(key, *app)
	return app, nil
}

// Waves caches wave lookups the same way Applications does
type Waves struct {
	next  ports.WaveRepository
	cache *TTLCache
}

// NewWaves wraps next with cache
func NewWaves(next ports.WaveRepository, cache *TTLCache) *Waves {
	return &Waves{next: next, cache: cache}
}

// GetByID implements ports.WaveRepository
func (w *Waves) GetByID(ctx context.Context, waveID string) (*entities.Wave, error) {
	key := "wave#" + waveID
	if v, ok := w.cache.Get(key); ok {
		wave := v.(entities.Wave)
		return &wave, nil
	}

	wave, err := w.next.GetByID(ctx, waveID)
	if err != nil || wave == nil {
		return wave, err
	}
	w.cache.Set(key, *wave)
	return wave, nil
}
