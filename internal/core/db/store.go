package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/solatis/typedprops/internal/settings"
	"github.com/solatis/typedprops/internal/types"
)

/*
 * SQL-backed settings persistence.
 *
 * One row per (property, type key): the record serialized as JSON, the
 * revision id of the latest write, and its timestamp. The settings store
 * replaces whole records, so upsert is the only write shape and rows never
 * need partial updates.
 *
 * Hosts that own their own settings storage skip this entirely and hand
 * the store their own Persistence implementation.
 */

// SettingsStore implements settings.Persistence on a sqlx database.
type SettingsStore struct {
	queries *Queries
}

// NewSettingsStore loads the named queries and returns a store.
// The schema must already be migrated (MigrateUp).
func NewSettingsStore(database *sqlx.DB) (*SettingsStore, error) {
	queries, err := LoadQueries(database)
	if err != nil {
		return nil, err
	}
	return &SettingsStore{queries: queries}, nil
}

// settingsRow mirrors one property_settings row.
type settingsRow struct {
	Property   string `db:"property"`
	TypeKey    string `db:"type_key"`
	Record     string `db:"record"`
	RevisionID string `db:"revision_id"`
	UpdatedAt  string `db:"updated_at"`
}

// Load reads every stored record, keyed property -> type key.
func (s *SettingsStore) Load() (map[string]map[string]settings.Record, error) {
	var rows []settingsRow
	if err := s.queries.Select("list-settings", &rows); err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}

	out := make(map[string]map[string]settings.Record)
	for _, row := range rows {
		var rec settings.Record
		if err := json.Unmarshal([]byte(row.Record), &rec); err != nil {
			return nil, fmt.Errorf("corrupt settings record %s/%s: %w",
				row.Property, row.TypeKey, err)
		}
		byType, ok := out[row.Property]
		if !ok {
			byType = make(map[string]settings.Record)
			out[row.Property] = byType
		}
		byType[row.TypeKey] = rec
	}
	return out, nil
}

// Save upserts one record with its revision id.
func (s *SettingsStore) Save(property, typeKey string, rec settings.Record, rev types.RevisionID) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to serialize settings record: %w", err)
	}
	_, err = s.queries.Exec("upsert-settings",
		property, typeKey, string(data), string(rev),
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save settings %s/%s: %w", property, typeKey, err)
	}
	return nil
}

// Delete removes one record. Deleting an absent record is not an error.
func (s *SettingsStore) Delete(property, typeKey string) error {
	if _, err := s.queries.Exec("delete-settings", property, typeKey); err != nil {
		return fmt.Errorf("failed to delete settings %s/%s: %w", property, typeKey, err)
	}
	return nil
}

// Revision returns the revision id of the stored record, or "" when the
// record does not exist.
func (s *SettingsStore) Revision(property, typeKey string) (types.RevisionID, error) {
	var row settingsRow
	err := s.queries.Get("get-settings", &row, property, typeKey)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read settings %s/%s: %w", property, typeKey, err)
	}
	return types.RevisionID(row.RevisionID), nil
}
