// Package registry holds the table of pluggable property value types.
package registry

import (
	"fmt"
	"log/slog"

	"github.com/solatis/typedprops/internal/codec"
	"github.com/solatis/typedprops/internal/host"
	"github.com/solatis/typedprops/internal/settings"
	"github.com/solatis/typedprops/internal/types"
	"github.com/solatis/typedprops/internal/widget"
)

/*
 * Type registry.
 *
 * A constructed object, not package-level state: hosts may embed several
 * independent instances (multiple editor panes, tests) without shared
 * mutable globals. Registering a descriptor also registers its settings
 * schema with the store, so a descriptor is usable the moment Register
 * returns.
 *
 * Built-in type keys are bare; third-party descriptors must namespace
 * their keys under the "x:" prefix so they can never shadow a built-in or
 * a host-native key by accident.
 */

// WidgetContext carries the host collaborators a descriptor needs to mount
// a widget for one property.
type WidgetContext struct {
	Property  types.PropertyPath
	Props     host.PropertyStore
	Surface   host.DisplaySurface
	Primary   host.Control
	Secondary host.Control

	Clock    widget.Clock
	Measurer widget.Measurer
	Logger   *slog.Logger
}

// SettingsContext carries the host collaborators a descriptor's settings
// panel hook needs.
type SettingsContext struct {
	Property types.PropertyPath
	Panel    host.SettingsPanel
	Prompter settings.PresetPrompter
}

// Descriptor is one pluggable value type: identity, value semantics, and
// the hooks the host calls to mount widgets and settings panels.
type Descriptor struct {
	Key  types.TypeKey
	Name string
	Icon string

	Codec  codec.Codec
	Schema settings.Schema

	// ReservedKeys lists host property names this type claims exclusively.
	// Types carrying reservations are host infrastructure and are excluded
	// from user-facing type assignment.
	ReservedKeys []string

	// NewWidget mounts the type's widget for a property.
	NewWidget func(ctx WidgetContext) (*widget.Widget, error)

	// RenderSettings prepares the type's settings panel: seeds defaults,
	// wires tab-change hooks. Optional; the host draws the controls.
	RenderSettings func(ctx SettingsContext) error
}

// Registry maps type keys to descriptors, preserving registration order.
type Registry struct {
	store *settings.Store
	log   *slog.Logger

	descriptors map[types.TypeKey]Descriptor
	order       []types.TypeKey
}

// New returns an empty registry bound to a settings store.
func New(store *settings.Store, log *slog.Logger) (*Registry, error) {
	if store == nil {
		return nil, fmt.Errorf("settings store cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &Registry{
		store:       store,
		log:         log,
		descriptors: make(map[types.TypeKey]Descriptor),
	}, nil
}

// Register adds a descriptor, overwriting any previous registration under
// the same key. Non-built-in keys must use the extension namespace.
func (r *Registry) Register(d Descriptor) error {
	if d.Key == "" {
		return fmt.Errorf("descriptor key cannot be empty")
	}
	if d.Codec.Parse == nil || d.Codec.Format == nil {
		return fmt.Errorf("descriptor %q: codec cannot be nil", d.Key)
	}
	if !builtinKey(d.Key) && !d.Key.IsExtension() {
		return fmt.Errorf("descriptor %q: third-party keys must use the %q prefix",
			d.Key, types.ExtensionKeyPrefix)
	}

	if _, exists := r.descriptors[d.Key]; !exists {
		r.order = append(r.order, d.Key)
	} else {
		r.log.Debug("type descriptor overwritten", "type", string(d.Key))
	}
	r.descriptors[d.Key] = d
	r.store.RegisterSchema(d.Key, d.Schema)
	return nil
}

// Resolve looks a descriptor up by key. Callers fall back to the host's
// plain rendering when the key is unknown.
func (r *Registry) Resolve(key types.TypeKey) (Descriptor, bool) {
	d, ok := r.descriptors[key]
	return d, ok
}

// Keys returns all registered keys in registration order.
func (r *Registry) Keys() []types.TypeKey {
	return append([]types.TypeKey(nil), r.order...)
}

// ListAssignable returns the descriptors a user may assign to a property,
// in registration order. Types reserving host property names are excluded.
func (r *Registry) ListAssignable() []Descriptor {
	out := make([]Descriptor, 0, len(r.order))
	for _, key := range r.order {
		d := r.descriptors[key]
		if len(d.ReservedKeys) > 0 {
			continue
		}
		out = append(out, d)
	}
	return out
}

// Store returns the settings store descriptors were registered against.
func (r *Registry) Store() *settings.Store {
	return r.store
}

func builtinKey(key types.TypeKey) bool {
	switch key {
	case types.KeyCode, types.KeyCurrency, types.KeyMeasurement, types.KeyUnit:
		return true
	}
	return false
}
