package valueobjects

import (
	"errors"

	"github.com/google/uuid"
)

// MigrationID is a value object representing a migration schedule identifier.
// New identifiers are random UUIDs; identifiers read back from storage are
// accepted as-is since other tooling may have written them.
type MigrationID struct {
	value string
}

// NewMigrationID creates a new random MigrationID
func NewMigrationID() MigrationID {
	return MigrationID{value: uuid.New().String()}
}

// NewMigrationIDFromString creates a MigrationID from an existing string
func NewMigrationIDFromString(id string) (MigrationID, error) {
	if id == "" {
		return MigrationID{}, errors.New("migration ID cannot be empty")
	}
	return MigrationID{value: id}, nil
}

// String returns the string representation of the MigrationID
func (id MigrationID) String() string {
	return id.value
}
