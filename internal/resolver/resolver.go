// Package resolver decides which pluggable type governs a property and
// carries out type switches.
package resolver

import (
	"fmt"
	"log/slog"

	"github.com/solatis/typedprops/internal/host"
	"github.com/solatis/typedprops/internal/registry"
	"github.com/solatis/typedprops/internal/settings"
	"github.com/solatis/typedprops/internal/types"
)

/*
 * Type assignment.
 *
 * Two disjoint assignment stores exist. Top-level properties are typed by
 * the host's own metadata type manager, which re-renders affected views on
 * its own change notification. Nested sub-properties are invisible to the
 * host manager, so their assignment lives in this system's settings store
 * (general section, customPropertyType field) and a switch publishes an
 * explicit re-render signal the host subscribes to.
 *
 * An empty assignment means untyped: the property renders through the
 * host's plain default and none of this system's widgets mount.
 */

// TopicTypeChanged is the signal topic published after a sub-property
// type switch.
const TopicTypeChanged = "property-type-changed"

// FieldCustomType is the general-section settings field holding a
// sub-property's assigned type key.
const FieldCustomType = "customPropertyType"

// Resolver answers "what type is this property" and performs switches.
type Resolver struct {
	registry *registry.Registry
	store    *settings.Store
	manager  host.MetadataTypeManager
	bus      host.SignalBus
	log      *slog.Logger
}

// New wires a resolver. The bus may be nil when the host has no
// sub-property views to re-render.
func New(reg *registry.Registry, store *settings.Store, manager host.MetadataTypeManager, bus host.SignalBus, log *slog.Logger) (*Resolver, error) {
	if reg == nil {
		return nil, fmt.Errorf("registry cannot be nil")
	}
	if store == nil {
		return nil, fmt.Errorf("settings store cannot be nil")
	}
	if manager == nil {
		return nil, fmt.Errorf("type manager cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &Resolver{
		registry: reg,
		store:    store,
		manager:  manager,
		bus:      bus,
		log:      log,
	}, nil
}

// AssignedType returns the property's assigned type key, or "" when
// untyped.
func (r *Resolver) AssignedType(path types.PropertyPath) types.TypeKey {
	if path.Sub() {
		key, _ := r.store.General(path)[FieldCustomType].(string)
		return types.TypeKey(key)
	}
	return r.manager.AssignedWidget(path)
}

// Resolve returns the descriptor governing the property. ok is false for
// untyped properties and for assignments this registry has no descriptor
// for (host-native widgets); both render through the host's plain default.
func (r *Resolver) Resolve(path types.PropertyPath) (registry.Descriptor, bool) {
	key := r.AssignedType(path)
	if key == "" {
		return registry.Descriptor{}, false
	}
	return r.registry.Resolve(key)
}

// SwitchType assigns a type to the property. An empty key clears the
// assignment back to untyped. Switching a host-reserved property is
// refused.
func (r *Resolver) SwitchType(path types.PropertyPath, key types.TypeKey) error {
	if r.ReservedProperty(path) {
		return fmt.Errorf("cannot retype %s: %w", path, types.ErrReservedProperty)
	}
	if key != "" && !r.knownType(key) {
		return fmt.Errorf("cannot assign %q to %s: %w", key, path, types.ErrUnknownType)
	}

	if !path.Sub() {
		return r.manager.SetType(path, key)
	}

	rec := r.store.General(path)
	if key == "" {
		delete(rec, FieldCustomType)
	} else {
		rec[FieldCustomType] = string(key)
	}
	if err := r.store.SetGeneral(path, rec); err != nil {
		return err
	}
	// The host manager never sees sub-properties, so its change
	// notification stays silent; signal the re-render explicitly.
	if r.bus != nil {
		r.bus.Publish(TopicTypeChanged, path)
	}
	r.log.Debug("sub-property type switched",
		"property", string(path), "type", string(key))
	return nil
}

// ReservedProperty reports whether a host-registered widget claims the
// property name exclusively.
func (r *Resolver) ReservedProperty(path types.PropertyPath) bool {
	name := string(path.Root())
	for _, w := range r.manager.RegisteredTypeWidgets() {
		for _, reserved := range w.ReservedKeys {
			if reserved == name {
				return true
			}
		}
	}
	return false
}

// knownType accepts keys this registry resolves and keys the host itself
// registered, so switching back to a host-native widget still works.
func (r *Resolver) knownType(key types.TypeKey) bool {
	if _, ok := r.registry.Resolve(key); ok {
		return true
	}
	_, ok := r.manager.RegisteredTypeWidgets()[key]
	return ok
}
