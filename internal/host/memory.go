package host

import "github.com/solatis/typedprops/internal/types"

// In-memory reference implementations. Embedding hosts with their own
// storage replace these; tests and the CLI use them directly.

// MemoryPropertyStore holds raw property values in a map.
type MemoryPropertyStore struct {
	values map[types.PropertyPath]any
}

// NewMemoryPropertyStore returns an empty property store.
func NewMemoryPropertyStore() *MemoryPropertyStore {
	return &MemoryPropertyStore{values: make(map[types.PropertyPath]any)}
}

// Value returns the raw value, or nil when absent.
func (m *MemoryPropertyStore) Value(path types.PropertyPath) any {
	return m.values[path]
}

// SetValue stores the raw value. nil clears the property entirely so the
// map never accumulates explicit absences.
func (m *MemoryPropertyStore) SetValue(path types.PropertyPath, v any) error {
	if v == nil {
		delete(m.values, path)
		return nil
	}
	m.values[path] = v
	return nil
}

// Has reports whether the property currently holds a value.
func (m *MemoryPropertyStore) Has(path types.PropertyPath) bool {
	_, ok := m.values[path]
	return ok
}

// MemoryBus is a synchronous in-process SignalBus.
type MemoryBus struct {
	next int
	subs map[string]map[int]func(types.PropertyPath)
}

// NewMemoryBus returns an empty bus.
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{subs: make(map[string]map[int]func(types.PropertyPath))}
}

// Subscribe registers fn for the topic and returns its cancel function.
func (b *MemoryBus) Subscribe(topic string, fn func(types.PropertyPath)) func() {
	byID, ok := b.subs[topic]
	if !ok {
		byID = make(map[int]func(types.PropertyPath))
		b.subs[topic] = byID
	}
	id := b.next
	b.next++
	byID[id] = fn
	return func() { delete(byID, id) }
}

// Publish invokes all subscribers synchronously.
func (b *MemoryBus) Publish(topic string, property types.PropertyPath) {
	for _, fn := range b.subs[topic] {
		fn(property)
	}
}

// MemoryTypeManager is a map-backed MetadataTypeManager.
type MemoryTypeManager struct {
	assigned   map[types.PropertyPath]types.TypeKey
	registered map[types.TypeKey]RegisteredWidget
}

// NewMemoryTypeManager returns a manager with the given host-native
// widgets registered.
func NewMemoryTypeManager(widgets ...RegisteredWidget) *MemoryTypeManager {
	m := &MemoryTypeManager{
		assigned:   make(map[types.PropertyPath]types.TypeKey),
		registered: make(map[types.TypeKey]RegisteredWidget),
	}
	for _, w := range widgets {
		m.registered[w.Key] = w
	}
	return m
}

// SetType assigns a type key to a top-level property.
func (m *MemoryTypeManager) SetType(path types.PropertyPath, key types.TypeKey) error {
	m.assigned[path] = key
	return nil
}

// AssignedWidget returns the assigned type key, or "" when untyped.
func (m *MemoryTypeManager) AssignedWidget(path types.PropertyPath) types.TypeKey {
	return m.assigned[path]
}

// RegisteredTypeWidgets returns the host's widget table.
func (m *MemoryTypeManager) RegisteredTypeWidgets() map[types.TypeKey]RegisteredWidget {
	return m.registered
}
