package settings

import (
	"fmt"
	"log/slog"

	"github.com/solatis/typedprops/internal/types"
)

/*
 * Settings store.
 *
 * One record per (property path, type key) pair, held in memory and written
 * through to an injected persistence backend on every mutation. Reads apply
 * schema defaults and return copies; writes replace the whole record, never
 * merge. Last write wins: settings panels are modal in the host UI, so
 * concurrent mutation of the same record does not occur in practice.
 *
 * Records are never deleted automatically (user-data permanence); the only
 * destructive operation is blank-entry pruning of unit lists, triggered
 * explicitly from the settings panel.
 *
 * Not safe for concurrent use. The host drives this store from
 * single-threaded UI callbacks; the CLI drives it from a single goroutine.
 */

// Record is one settings record. Values are JSON-shaped (strings, numbers,
// bools, slices, nested maps) plus the typed Unit slice used in memory.
type Record map[string]any

// Persistence is the host-owned backing store. Save is called on every
// mutation with the revision id identifying the write.
type Persistence interface {
	Load() (map[string]map[string]Record, error)
	Save(property string, typeKey string, rec Record, rev types.RevisionID) error
	Delete(property string, typeKey string) error
}

// Store keeps per-(property, type) settings with schema defaults.
type Store struct {
	persist Persistence
	schemas map[types.TypeKey]Schema
	data    map[string]map[string]Record
	seeding map[string]bool
	log     *slog.Logger
}

// NewStore loads all records from the persistence backend.
func NewStore(persist Persistence, log *slog.Logger) (*Store, error) {
	if persist == nil {
		return nil, types.ErrNoPersistence
	}
	if log == nil {
		log = slog.Default()
	}
	data, err := persist.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if data == nil {
		data = make(map[string]map[string]Record)
	}
	return &Store{
		persist: persist,
		schemas: make(map[types.TypeKey]Schema),
		data:    data,
		seeding: make(map[string]bool),
		log:     log,
	}, nil
}

// RegisterSchema associates a schema with a type key. Called by registry
// wiring when a descriptor is registered; re-registration overwrites.
func (s *Store) RegisterSchema(key types.TypeKey, schema Schema) {
	s.schemas[key] = schema
}

// Get returns the settings record for (property, typeKey) with schema
// defaults applied. Never returns nil. The result is a copy whose top-level
// fields and unit list may be mutated freely before a Set; any other nested
// value (a map or slice inside a field) still aliases the stored data and
// must be replaced, not mutated.
func (s *Store) Get(property types.PropertyPath, key types.TypeKey) Record {
	var rec Record
	if byType, ok := s.data[string(property)]; ok {
		rec = copyRecord(byType[string(key)])
	}
	return s.schemas[key].Apply(rec)
}

// Set replaces the stored record atomically (whole-record replace, not
// merge) and writes through to persistence.
func (s *Store) Set(property types.PropertyPath, key types.TypeKey, rec Record) error {
	byType, ok := s.data[string(property)]
	if !ok {
		byType = make(map[string]Record)
		s.data[string(property)] = byType
	}
	stored := copyRecord(rec)
	byType[string(key)] = stored

	rev := types.NewRevisionID()
	if err := s.persist.Save(string(property), string(key), stored, rev); err != nil {
		return fmt.Errorf("failed to persist settings for %s/%s: %w", property, key, err)
	}
	s.log.Debug("settings saved",
		"property", string(property),
		"type", string(key),
		"revision", string(rev))
	return nil
}

// General returns the property's general settings section (icon, hidden
// flag, sub-property type assignment).
func (s *Store) General(property types.PropertyPath) Record {
	return s.Get(property, types.GeneralSection)
}

// SetGeneral replaces the property's general settings section.
func (s *Store) SetGeneral(property types.PropertyPath, rec Record) error {
	return s.Set(property, types.GeneralSection, rec)
}

// copyRecord clones a record one level deep plus the unit list, which is
// the only nested structure callers mutate in place.
func copyRecord(rec Record) Record {
	if rec == nil {
		return nil
	}
	out := make(Record, len(rec))
	for k, v := range rec {
		if units, ok := v.([]Unit); ok {
			out[k] = append([]Unit(nil), units...)
			continue
		}
		out[k] = v
	}
	return out
}
