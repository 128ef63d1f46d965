package types

import "errors"

// Sentinel errors for typedprops operations.
var (
	// ErrUnknownType indicates a type key with no registered descriptor.
	// Callers fall back to plain rendering rather than failing the row.
	ErrUnknownType = errors.New("no descriptor registered for type key")

	// ErrReservedProperty indicates an attempt to retype a property the
	// host marks as reserved.
	ErrReservedProperty = errors.New("property key is reserved by the host")

	// ErrLastUnit indicates an attempt to delete the only remaining unit.
	ErrLastUnit = errors.New("at least one unit must remain configured")

	// ErrSeedInFlight indicates a preset prompt is already open for the
	// property; the caller must wait for the first prompt to resolve.
	ErrSeedInFlight = errors.New("preset selection already in flight for property")

	// ErrNoPersistence indicates a settings store was built without a
	// backing persistence implementation.
	ErrNoPersistence = errors.New("settings store has no persistence backend")
)
