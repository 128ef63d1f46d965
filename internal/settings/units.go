package settings

import (
	"strings"

	"github.com/solatis/typedprops/internal/types"
)

// Settings field names shared between codec wiring and settings panels.
const (
	FieldUnits           = "units"
	FieldDefaultUnit     = "defaultUnit"
	FieldDefaultCurrency = "defaultCurrency"
	FieldDecimalPlaces   = "decimalPlaces"
	FieldAllowedUnits    = "allowedUnits"
)

// Unit is one entry of a configurable unit list.
type Unit struct {
	Name      string `json:"name"`
	Shorthand string `json:"shorthand"`
}

// UnitsOf extracts the unit list from a record. Records loaded from JSON
// persistence carry []any of map[string]any; records built in memory carry
// []Unit. Both shapes are accepted; anything else yields an empty list.
func UnitsOf(rec Record) []Unit {
	switch v := rec[FieldUnits].(type) {
	case []Unit:
		return v
	case []any:
		units := make([]Unit, 0, len(v))
		for _, entry := range v {
			m, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			name, _ := m["name"].(string)
			shorthand, _ := m["shorthand"].(string)
			units = append(units, Unit{Name: name, Shorthand: shorthand})
		}
		return units
	default:
		return nil
	}
}

// AllowedUnits extracts the free-form unit list of the unit type. Accepts
// []string from memory and []any from JSON persistence.
func AllowedUnits(rec Record) []string {
	switch v := rec[FieldAllowedUnits].(type) {
	case []string:
		return v
	case []any:
		names := make([]string, 0, len(v))
		for _, entry := range v {
			if s, ok := entry.(string); ok {
				names = append(names, s)
			}
		}
		return names
	default:
		return nil
	}
}

// SetUnits replaces the record's unit list.
func SetUnits(rec Record, units []Unit) {
	rec[FieldUnits] = units
}

// Shorthands builds the name -> shorthand lookup the codec formats with.
func Shorthands(units []Unit) map[string]string {
	out := make(map[string]string, len(units))
	for _, u := range units {
		out[u.Name] = u.Shorthand
	}
	return out
}

// RenameUnit renames a unit list entry on the record in place. When the
// renamed entry is the configured default unit, the default reference is
// rewritten in the same update so it never dangles.
func RenameUnit(rec Record, oldName, newName string) {
	units := UnitsOf(rec)
	for i := range units {
		if units[i].Name == oldName {
			units[i].Name = newName
		}
	}
	SetUnits(rec, units)
	if def, _ := rec[FieldDefaultUnit].(string); def == oldName {
		rec[FieldDefaultUnit] = newName
	}
}

// RenameUnit loads the stored record, applies the in-place rename, and
// persists the result, so the list entry and the default-unit reference
// change in one Set.
func (s *Store) RenameUnit(property types.PropertyPath, key types.TypeKey, oldName, newName string) error {
	rec := s.Get(property, key)
	RenameUnit(rec, oldName, newName)
	return s.Set(property, key, rec)
}

// CanDeleteUnit reports whether the entry at index may be deleted. Deleting
// is refused when it is the last remaining non-blank entry: at least one
// usable unit must always exist. The settings panel consults this to omit
// the delete action rather than surface a validation error.
func CanDeleteUnit(units []Unit, index int) bool {
	if index < 0 || index >= len(units) {
		return false
	}
	remaining := 0
	for i, u := range units {
		if i != index && strings.TrimSpace(u.Name) != "" {
			remaining++
		}
	}
	return remaining > 0
}

// DeleteUnit removes the entry at index, refusing to delete the last
// non-blank entry.
func (s *Store) DeleteUnit(property types.PropertyPath, key types.TypeKey, index int) error {
	rec := s.Get(property, key)
	units := UnitsOf(rec)
	if !CanDeleteUnit(units, index) {
		return types.ErrLastUnit
	}
	SetUnits(rec, append(units[:index:index], units[index+1:]...))
	return s.Set(property, key, rec)
}

// PruneBlankUnits drops entries with blank names. Called on settings-panel
// tab change; the only case where stored settings data shrinks.
func (s *Store) PruneBlankUnits(property types.PropertyPath, key types.TypeKey) error {
	rec := s.Get(property, key)
	units := UnitsOf(rec)
	kept := units[:0:0]
	for _, u := range units {
		if strings.TrimSpace(u.Name) != "" {
			kept = append(kept, u)
		}
	}
	if len(kept) == len(units) {
		return nil
	}
	SetUnits(rec, kept)
	return s.Set(property, key, rec)
}
