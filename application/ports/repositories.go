package ports

import (
	"context"
	"errors"

	"migration-schedules/domain/core/entities"
	"migration-schedules/domain/core/valueobjects"
)

// ErrScheduleNotFound is returned by ScheduleRepository.Update when the
// record vanished between the existence check and the write
var ErrScheduleNotFound = errors.New("migration schedule not found")

// ScheduleRepository defines the interface for migration schedule persistence
// This is a port in hexagonal architecture - the domain doesn't know about the implementation
type ScheduleRepository interface {
	// GetByID retrieves a schedule; a missing record yields (nil, nil)
	GetByID(ctx context.Context, id valueobjects.MigrationID) (*entities.MigrationSchedule, error)

	// Save writes the full record
	Save(ctx context.Context, schedule *entities.MigrationSchedule) error

	// Update applies a partial update and returns the record as stored afterwards
	Update(ctx context.Context, id valueobjects.MigrationID, changes ScheduleChanges) (*entities.MigrationSchedule, error)

	// Delete removes a record by key
	Delete(ctx context.Context, id valueobjects.MigrationID) error

	// ListAll returns every stored schedule
	ListAll(ctx context.Context) ([]*entities.MigrationSchedule, error)
}

// ApplicationRepository reads application records
type ApplicationRepository interface {
	// GetByID retrieves an application; a missing record yields (nil, nil)
	GetByID(ctx context.Context, appID string) (*entities.Application, error)
}

// WaveRepository reads wave records
type WaveRepository interface {
	// GetByID retrieves a wave; a missing record yields (nil, nil)
	GetByID(ctx context.Context, waveID string) (*entities.Wave, error)
}

// ScheduleChanges describes a partial update. LastUpdated is always written;
// nil fields are left untouched. WaveID is set when it has a value, removed
// when it is present but empty, and left untouched when absent.
type ScheduleChanges struct {
	LastUpdated   string
	ApplicationID *string
	ScheduledDate *string
	Status        *string
	WaveID        valueobjects.OptionalString
}

// Fields lists the attributes the update touches, in a stable order
func (c ScheduleChanges) Fields() []string {
	fields := []string{entities.AttrLastUpdated}
	if c.ApplicationID != nil {
		fields = append(fields, entities.AttrApplicationID)
	}
	if c.ScheduledDate != nil {
		fields = append(fields, entities.AttrScheduledDate)
	}
	if c.Status != nil {
		fields = append(fields, entities.AttrStatus)
	}
	if c.WaveID.Present {
		fields = append(fields, entities.AttrWaveID)
	}
	return fields
}

// Apply returns a copy of s with the changes applied
func (c ScheduleChanges) Apply(s *entities.MigrationSchedule) *entities.MigrationSchedule {
	out := s.Clone()
	out.LastUpdated = c.LastUpdated
	if c.ApplicationID != nil {
		out.ApplicationID = *c.ApplicationID
	}
	if c.ScheduledDate != nil {
		out.ScheduledDate = *c.ScheduledDate
	}
	if c.Status != nil {
		out.Status = *c.Status
	}
	if c.WaveID.Present {
		out.WaveID = c.WaveID.Value
	}
	for _, field := range c.Fields() {
		out.MarkStored(field)
		delete(out.Attributes, field)
	}
	return out
}
