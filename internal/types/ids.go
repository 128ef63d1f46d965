package types

import (
	"time"

	"github.com/google/uuid"
)

// RevisionID identifies a single settings write for audit purposes.
// String alias enables type safety while maintaining JSON string
// serialization. UUIDv7 time-ordering ensures sequential revisions cluster
// in B-tree indexes.
type RevisionID string

// WidgetID identifies a mounted widget instance so host listener
// registrations can be torn down when the property row is removed.
type WidgetID string

// NewRevisionID generates a UUIDv7 revision identifier.
// Panics on clock regression (uuid.Must); acceptable for ID generation.
func NewRevisionID() RevisionID {
	return RevisionID(uuid.Must(uuid.NewV7()).String())
}

// NewWidgetID generates a UUIDv7 widget instance identifier.
// Panics on clock regression (uuid.Must); acceptable for ID generation.
func NewWidgetID() WidgetID {
	return WidgetID(uuid.Must(uuid.NewV7()).String())
}

// ParseRevisionID validates and converts a string to RevisionID.
// Rejects malformed UUIDs to prevent invalid IDs from entering the store.
func ParseRevisionID(s string) (RevisionID, error) {
	_, err := uuid.Parse(s)
	if err != nil {
		return "", err
	}
	return RevisionID(s), nil
}

// RevisionIDTime extracts the timestamp embedded in a UUIDv7 revision.
// Enables time-based audit queries without a database lookup.
// Returns zero time for invalid UUIDs; caller should check IsZero().
func RevisionIDTime(id RevisionID) time.Time {
	u, err := uuid.Parse(string(id))
	if err != nil {
		return time.Time{}
	}
	sec, nsec := u.Time().UnixTime()
	return time.Unix(sec, nsec)
}
