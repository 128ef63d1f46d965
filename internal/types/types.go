// Package types provides domain models shared across typedprops components.
//
// Zero-dependency design: types.go and errors.go use only the standard
// library so widget and codec packages stay lightweight. ID utilities in
// ids.go import uuid but are isolated for selective inclusion.
package types

import "strings"

// PropertyPath identifies a property in the host document's metadata.
// Dotted paths address sub-properties, which the host has no native type
// concept for; this system types them through its own settings records.
type PropertyPath string

// TypeKey identifies a pluggable value type within a registry.
// Built-in types use bare keys; third-party types must namespace their keys
// with ExtensionKeyPrefix to avoid collisions with host-native types.
type TypeKey string

// Built-in type keys.
const (
	KeyCode        TypeKey = "code"
	KeyCurrency    TypeKey = "currency"
	KeyMeasurement TypeKey = "measurement"
	KeyUnit        TypeKey = "unit"
)

// ExtensionKeyPrefix is the reserved namespace for third-party type keys.
// The prefix exists so extension keys can never shadow a bare built-in or
// host-native key by accident.
const ExtensionKeyPrefix = "x:"

// GeneralSection is the pseudo type key under which per-property settings
// that belong to no single value type are stored (sub-property type
// assignment, icon, hidden flag).
const GeneralSection TypeKey = "general"

// ExtensionKey namespaces a third-party type name.
func ExtensionKey(name string) TypeKey {
	return TypeKey(ExtensionKeyPrefix + name)
}

// IsExtension reports whether the key lives in the third-party namespace.
func (k TypeKey) IsExtension() bool {
	return strings.HasPrefix(string(k), ExtensionKeyPrefix)
}

// Sub reports whether the path addresses a nested sub-property.
func (p PropertyPath) Sub() bool {
	return strings.Contains(string(p), ".")
}

// Root returns the top-level property the path belongs to.
// For non-nested paths Root returns the path unchanged.
func (p PropertyPath) Root() PropertyPath {
	if i := strings.IndexByte(string(p), '.'); i >= 0 {
		return p[:i]
	}
	return p
}

// CurrencyValue is the structured value of the currency type.
// Amount is never absent on a non-empty value; a missing numeric field
// coerces to zero so a lone currency selection still round-trips.
type CurrencyValue struct {
	Amount   float64 `json:"value"`
	Currency string  `json:"currency"`
}

// MeasurementValue is the structured value of the measurement type.
// Value is a pointer because "unit chosen, magnitude not yet typed" is a
// legal intermediate state that must survive a commit.
type MeasurementValue struct {
	Value *float64 `json:"value"`
	Unit  string   `json:"unit"`
}

// UnitValue is the structured value of the unit type. Same shape as
// MeasurementValue but configured through a free-form allowed-unit list
// rather than a named unit table.
type UnitValue struct {
	Value *float64 `json:"value"`
	Unit  string   `json:"unit"`
}

// Float returns a pointer to v. Convenience for building measurement and
// unit values in literals and tests.
func Float(v float64) *float64 {
	return &v
}
