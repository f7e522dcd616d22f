package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"migration-schedules/application/ports"
	"migration-schedules/domain/core/entities"
)

// ReferenceStore holds applications and waves in memory. It implements both
// ports.ApplicationRepository (via Applications) and ports.WaveRepository
// (via Waves).
type ReferenceStore struct {
	mu    sync.RWMutex
	apps  map[string]entities.Application
	waves map[string]entities.Wave
}

// NewReferenceStore creates an empty reference store
func NewReferenceStore() *ReferenceStore {
	return &ReferenceStore{
		apps:  make(map[string]entities.Application),
		waves: make(map[string]entities.Wave),
	}
}

// Seed is the on-disk format accepted by LoadSeed
type Seed struct {
	Applications []SeedApplication `json:"applications"`
	Waves        []SeedWave        `json:"waves"`
}

// SeedApplication is an application entry in a seed file
type SeedApplication struct {
	AppID   string `json:"app_id"`
	AppName *string `json:"app_name"`
}

// SeedWave is a wave entry in a seed file
type SeedWave struct {
	WaveID   string `json:"wave_id"`
	WaveName *string `json:"wave_name"`
}

// AddApplications stores or replaces applications
func (s *ReferenceStore) AddApplications(apps ...entities.Application) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, app := range apps {
		s.apps[app.AppID] = app
	}
}

// AddWaves stores or replaces waves
func (s *ReferenceStore) AddWaves(waves ...entities.Wave) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, wave := range waves {
		s.waves[wave.WaveID] = wave
	}
}

// LoadSeed reads a JSON seed file into the store
func (s *ReferenceStore) LoadSeed(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed Seed
	if err := json.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	for _, a := range seed.Applications {
		app := entities.Application{AppID: a.AppID}
		if a.AppName != nil {
			app.SetName(*a.AppName)
		}
		s.AddApplications(app)
	}
	for _, w := range seed.Waves {
		wave := entities.Wave{WaveID: w.WaveID}
		if w.WaveName != nil {
			wave.SetName(*w.WaveName)
		}
		s.AddWaves(wave)
	}
	return nil
}

// Applications returns the application view of the store
func (s *ReferenceStore) Applications() ports.ApplicationRepository {
	return applicationView{s}
}

// Waves returns the wave view of the store
func (s *ReferenceStore) Waves() ports.WaveRepository {
	return waveView{s}
}

type applicationView struct{ s *ReferenceStore }

func (v applicationView) GetByID(ctx context.Context, appID string) (*entities.Application, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	app, ok := v.s.apps[appID]
	if !ok {
		return nil, nil
	}
	return &app, nil
}

type waveView struct{ s *ReferenceStore }

func (v waveView) GetByID(ctx context.Context, waveID string) (*entities.Wave, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	wave, ok := v.s.waves[waveID]
	if !ok {
		return nil, nil
	}
	return &wave, nil
}
