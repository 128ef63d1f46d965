// Package host declares the interfaces this system consumes from the
// embedding document editor. Everything here is an external collaborator:
// the host owns document storage, form controls, menus, and modals; this
// system only drives them through these capability surfaces.
package host

import "github.com/solatis/typedprops/internal/types"

// FontMetrics describes the computed font of an edit control, used for
// off-screen text measurement when fitting numeric input width.
type FontMetrics struct {
	Size          float64
	Family        string
	Weight        string
	LetterSpacing float64
}

// Control is the opaque capability a host form control exposes: a text
// input, dropdown, or similar. Values cross the boundary as strings; the
// codec layer owns all interpretation.
type Control interface {
	GetValue() string
	SetValue(value string)
	OnChange(fn func())
	OnFocus(fn func())
	OnBlur(fn func())
	OnEnter(fn func())
	Focus()
	SetWidth(px float64)
	Metrics() FontMetrics
	MinWidth() float64
	MaxWidth() float64
}

// DisplaySurface is the read-only rendering of a property value.
type DisplaySurface interface {
	SetText(text string)
	OnActivate(fn func())
}

// PropertyStore reads and writes raw property values in the host document.
// SetValue with nil clears the property.
type PropertyStore interface {
	Value(path types.PropertyPath) any
	SetValue(path types.PropertyPath, v any) error
}

// RegisteredWidget describes a property widget the host already knows
// about. ReservedKeys mark property names the host protects from retyping.
type RegisteredWidget struct {
	Key          types.TypeKey
	Name         string
	Icon         string
	ReservedKeys []string
}

// MetadataTypeManager is the host's own assignment of types to top-level
// properties. Sub-properties are invisible to it.
type MetadataTypeManager interface {
	SetType(path types.PropertyPath, key types.TypeKey) error
	AssignedWidget(path types.PropertyPath) types.TypeKey
	RegisteredTypeWidgets() map[types.TypeKey]RegisteredWidget
}

// MenuItem is one entry of a host context menu.
type MenuItem struct {
	Title    string
	Icon     string
	Section  string
	Checked  bool
	Disabled bool
	Warning  bool
	OnClick  func()
}

// Menu is a host context menu under construction.
type Menu interface {
	AddItem(item MenuItem)
	AddSubmenu(title, icon string) Menu
}

// SettingsPanel is the host modal a type's settings renderer draws into.
// Only the lifecycle hooks matter to this system; the controls themselves
// are host widgets.
type SettingsPanel interface {
	OnTabChange(fn func())
}

// SignalBus carries re-render signals the host's own change notification
// does not cover, such as type switches on nested sub-properties.
type SignalBus interface {
	Subscribe(topic string, fn func(property types.PropertyPath)) (cancel func())
	Publish(topic string, property types.PropertyPath)
}
