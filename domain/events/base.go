package events

import "time"

// Source is the EventBridge source for events emitted by this service
const Source = "migration-schedules"

// Event types
const (
	TypeScheduleCreated = "migration_schedule.created"
	TypeScheduleUpdated = "migration_schedule.updated"
	TypeScheduleDeleted = "migration_schedule.deleted"
)

// DomainEvent is the base interface for all domain events
// Events represent something that has happened in the past
type DomainEvent interface {
	GetAggregateID() string
	GetEventType() string
	GetTimestamp() time.Time
	GetVersion() int
}

// BaseEvent provides common event fields
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	Timestamp   time.Time `json:"timestamp"`
	Version     int       `json:"version"`
}

func (e BaseEvent) GetAggregateID() string  { return e.AggregateID }
func (e BaseEvent) GetEventType() string    { return e.EventType }
func (e BaseEvent) GetTimestamp() time.Time { return e.Timestamp }
func (e BaseEvent) GetVersion() int         { return e.Version }

// ScheduleCreated is raised when a migration schedule is created
type ScheduleCreated struct {
	BaseEvent
	ApplicationID string `json:"application_id"`
	WaveID        string `json:"wave_id,omitempty"`
	ScheduledDate string `json:"scheduled_date"`
	Status        string `json:"status"`
	CreatedBy     string `json:"created_by"`
}

// NewScheduleCreated creates a ScheduleCreated event
func NewScheduleCreated(migrationID, applicationID, waveID, scheduledDate, status, createdBy string, timestamp time.Time) ScheduleCreated {
	return ScheduleCreated{
		BaseEvent: BaseEvent{
			AggregateID: migrationID,
			EventType:   TypeScheduleCreated,
			Timestamp:   timestamp,
			Version:     1,
		},
		ApplicationID: applicationID,
		WaveID:        waveID,
		ScheduledDate: scheduledDate,
		Status:        status,
		CreatedBy:     createdBy,
	}
}

// ScheduleUpdated is raised when fields of a migration schedule change
type ScheduleUpdated struct {
	BaseEvent
	ChangedFields []string `json:"changed_fields"`
	UpdatedBy     string   `json:"updated_by"`
}

// NewScheduleUpdated creates a ScheduleUpdated event
func NewScheduleUpdated(migrationID string, changedFields []string, updatedBy string, timestamp time.Time) ScheduleUpdated {
	return ScheduleUpdated{
		BaseEvent: BaseEvent{
			AggregateID: migrationID,
			EventType:   TypeScheduleUpdated,
			Timestamp:   timestamp,
			Version:     1,
		},
		ChangedFields: changedFields,
		UpdatedBy:     updatedBy,
	}
}

// ScheduleDeleted is raised when a migration schedule is removed
type ScheduleDeleted struct {
	BaseEvent
	ApplicationID string `json:"application_id"`
	DeletedBy     string `json:"deleted_by"`
}

// NewScheduleDeleted creates a ScheduleDeleted event
func NewScheduleDeleted(migrationID, applicationID, deletedBy string, timestamp time.Time) ScheduleDeleted {
	return ScheduleDeleted{
		BaseEvent: BaseEvent{
			AggregateID: migrationID,
			EventType:   TypeScheduleDeleted,
			Timestamp:   timestamp,
			Version:     1,
		},
		ApplicationID: applicationID,
		DeletedBy:     deletedBy,
	}
}
