package settings

import "github.com/solatis/typedprops/internal/types"

// MemoryPersistence is an in-memory Persistence backend for tests and for
// hosts that keep settings in their own plugin-data file and flush it
// themselves.
type MemoryPersistence struct {
	records map[string]map[string]Record
}

// NewMemoryPersistence returns an empty in-memory backend.
func NewMemoryPersistence() *MemoryPersistence {
	return &MemoryPersistence{records: make(map[string]map[string]Record)}
}

// Load returns a deep-enough copy of the stored records.
func (m *MemoryPersistence) Load() (map[string]map[string]Record, error) {
	out := make(map[string]map[string]Record, len(m.records))
	for prop, byType := range m.records {
		cp := make(map[string]Record, len(byType))
		for key, rec := range byType {
			cp[key] = copyRecord(rec)
		}
		out[prop] = cp
	}
	return out, nil
}

// Save stores the record. The revision id is ignored; in-memory storage
// keeps no audit trail.
func (m *MemoryPersistence) Save(property, typeKey string, rec Record, _ types.RevisionID) error {
	byType, ok := m.records[property]
	if !ok {
		byType = make(map[string]Record)
		m.records[property] = byType
	}
	byType[typeKey] = copyRecord(rec)
	return nil
}

// Delete removes a stored record.
func (m *MemoryPersistence) Delete(property, typeKey string) error {
	if byType, ok := m.records[property]; ok {
		delete(byType, typeKey)
	}
	return nil
}
