package entities

import (
	"encoding/json"
	"time"
)

// DefaultStatus is assigned to schedules created without a status
const DefaultStatus = "Scheduled"

// UnknownName is reported when a referenced application or wave has no name
const UnknownName = "Unknown"

// Attribute names as stored and as rendered in responses
const (
	AttrMigrationID     = "migration_id"
	AttrApplicationID   = "application_id"
	AttrWaveID          = "wave_id"
	AttrScheduledDate   = "scheduled_date"
	AttrStatus          = "status"
	AttrCreatedBy       = "created_by"
	AttrLastUpdated     = "last_updated"
	AttrApplicationName = "application_name"
	AttrWaveName        = "wave_name"
)

// MigrationSchedule links an application, and optionally a wave, to a
// planned migration date and status.
type MigrationSchedule struct {
	MigrationID   string `dynamodbav:"migration_id"`
	ApplicationID string `dynamodbav:"application_id"`
	WaveID        string `dynamodbav:"wave_id,omitempty"`
	ScheduledDate string `dynamodbav:"scheduled_date"`
	Status        string `dynamodbav:"status"`
	CreatedBy     string `dynamodbav:"created_by"`
	LastUpdated   string `dynamodbav:"last_updated"`

	// Denormalized names attached on read, never stored
	ApplicationName string `dynamodbav:"-"`
	WaveName        string `dynamodbav:"-"`

	// Attributes holds stored attributes this service does not model, and
	// modelled ones stored with a non-scalar type.
	// Values are strings, bools, nil, Decimal, Blob, slices and maps of those.
	Attributes map[string]interface{} `dynamodbav:"-"`

	// modelled attributes the stored item did not carry as scalars
	missing map[string]struct{}

	appNamed  bool
	waveNamed bool
}

// NewMigrationSchedule builds a schedule ready to be persisted. An empty
// status falls back to DefaultStatus and an empty createdBy to "unknown".
func NewMigrationSchedule(id, applicationID, waveID, scheduledDate, status, createdBy string, now time.Time) *MigrationSchedule {
	if status == "" {
		status = DefaultStatus
	}
	if createdBy == "" {
		createdBy = "unknown"
	}
	return &MigrationSchedule{
		MigrationID:   id,
		ApplicationID: applicationID,
		WaveID:        waveID,
		ScheduledDate: scheduledDate,
		Status:        status,
		CreatedBy:     createdBy,
		LastUpdated:   Timestamp(now),
	}
}

// HasWave reports whether the schedule references a wave
func (s *MigrationSchedule) HasWave() bool {
	return s.WaveID != ""
}

// SetApplicationName attaches the application name; an empty name is still
// rendered
func (s *MigrationSchedule) SetApplicationName(name string) {
	s.ApplicationName = name
	s.appNamed = true
}

// SetWaveName attaches the wave name; an empty name is still rendered
func (s *MigrationSchedule) SetWaveName(name string) {
	s.WaveName = name
	s.waveNamed = true
}

// ClearNames drops the denormalized names attached on read
func (s *MigrationSchedule) ClearNames() {
	s.ApplicationName, s.WaveName = "", ""
	s.appNamed, s.waveNamed = false, false
}

// MarkMissing records modelled attributes the stored item did not carry.
// They are left out of the JSON rendering.
func (s *MigrationSchedule) MarkMissing(attrs ...string) {
	if s.missing == nil {
		s.missing = make(map[string]struct{}, len(attrs))
	}
	for _, attr := range attrs {
		s.missing[attr] = struct{}{}
	}
}

// MarkStored undoes MarkMissing after attrs have been written
func (s *MigrationSchedule) MarkStored(attrs ...string) {
	for _, attr := range attrs {
		delete(s.missing, attr)
	}
}

// Has reports whether the modelled attribute attr is part of the record
func (s *MigrationSchedule) Has(attr string) bool {
	_, gone := s.missing[attr]
	return !gone
}

// Clone returns a copy that shares no maps with the original
func (s *MigrationSchedule) Clone() *MigrationSchedule {
	if s == nil {
		return nil
	}
	c := *s
	if s.Attributes != nil {
		c.Attributes = make(map[string]interface{}, len(s.Attributes))
		for k, v := range s.Attributes {
			c.Attributes[k] = v
		}
	}
	if s.missing != nil {
		c.missing = make(map[string]struct{}, len(s.missing))
		for k := range s.missing {
			c.missing[k] = struct{}{}
		}
	}
	return &c
}

// MarshalJSON renders the schedule as a flat object. Unmodelled attributes
// are emitted next to the modelled ones; modelled fields win on collision
// unless the stored item lacked them.
func (s MigrationSchedule) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(s.Attributes)+9)
	for k, v := range s.Attributes {
		out[k] = v
	}

	for attr, value := range map[string]string{
		AttrMigrationID:   s.MigrationID,
		AttrApplicationID: s.ApplicationID,
		AttrScheduledDate: s.ScheduledDate,
		AttrStatus:        s.Status,
		AttrCreatedBy:     s.CreatedBy,
		AttrLastUpdated:   s.LastUpdated,
	} {
		if s.Has(attr) {
			out[attr] = value
		}
	}

	if s.WaveID != "" {
		out[AttrWaveID] = s.WaveID
	}
	if s.ApplicationName != "" || s.appNamed {
		out[AttrApplicationName] = s.ApplicationName
	}
	if s.WaveName != "" || s.waveNamed {
		out[AttrWaveName] = s.WaveName
	}

	return json.Marshal(out)
}

// Timestamp formats t as an ISO-8601 UTC timestamp with microseconds and an
// explicit +00:00 offset
func Timestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000000") + "+00:00"
}
