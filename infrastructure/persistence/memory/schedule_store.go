package memory

import (
	"context"
	"sync"

	"migration-schedules/application/ports"
	"migration-schedules/domain/core/entities"
	"migration-schedules/domain/core/valueobjects"
)

// ScheduleStore provides an in-memory implementation of ports.ScheduleRepository.
// Records are copied on the way in and out; listing follows insertion order.
type ScheduleStore struct {
	mu        sync.RWMutex
	schedules map[string]*entities.MigrationSchedule
	order     []string
}

// NewScheduleStore creates a new in-memory schedule store
func NewScheduleStore() *ScheduleStore {
	return &ScheduleStore{
		schedules: make(map[string]*entities.MigrationSchedule),
	}
}

var _ ports.ScheduleRepository = (*ScheduleStore)(nil)

// GetByID retrieves a schedule by ID
func (s *ScheduleStore) GetByID(ctx context.Context, id valueobjects.MigrationID) (*entities.MigrationSchedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	schedule, exists := s.schedules[id.String()]
	if !exists {
		return nil, nil
	}
	return schedule.Clone(), nil
}

// Save stores a schedule, replacing any record with the same ID
func (s *ScheduleStore) Save(ctx context.Context, schedule *entities.MigrationSchedule) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.schedules[schedule.MigrationID]; !exists {
		s.order = append(s.order, schedule.MigrationID)
	}
	stored := schedule.Clone()
	stored.ClearNames()
	s.schedules[schedule.MigrationID] = stored
	return nil
}

// Update applies a partial update to an existing schedule
func (s *ScheduleStore) Update(ctx context.Context, id valueobjects.MigrationID, changes ports.ScheduleChanges) (*entities.MigrationSchedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, exists := s.schedules[id.String()]
	if !exists {
		return nil, ports.ErrScheduleNotFound
	}

	updated := changes.Apply(existing)
	s.schedules[id.String()] = updated
	return updated.Clone(), nil
}

// Delete removes a schedule; deleting a missing record is not an error
func (s *ScheduleStore) Delete(ctx context.Context, id valueobjects.MigrationID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := id.String()
	if _, exists := s.schedules[key]; !exists {
		return nil
	}
	delete(s.schedules, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// ListAll returns every schedule in insertion order
func (s *ScheduleStore) ListAll(ctx context.Context) ([]*entities.MigrationSchedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entities.MigrationSchedule, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.schedules[key].Clone())
	}
	return out, nil
}
