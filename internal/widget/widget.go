// Package widget implements the display/edit lifecycle shared by every
// typed property widget.
package widget

import (
	"fmt"
	"log/slog"

	"github.com/solatis/typedprops/internal/codec"
	"github.com/solatis/typedprops/internal/host"
	"github.com/solatis/typedprops/internal/types"
)

/*
 * Widget state machine.
 *
 * Two states: Display (read-only formatted text, initial) and Editing
 * (live form controls). Concrete types supply only a codec and a control
 * binding; the lifecycle is generic and never subclassed.
 *
 * Transitions:
 *   Display -> Editing: pointer activation on the display surface, or an
 *   external focus request from the host ("jump to property"). Focus
 *   moves to the primary control; numeric controls are resized to fit.
 *
 *   Editing -> Display: composite focus count reaches zero after the
 *   settle delay, or Enter in the primary text control. On exit the raw
 *   control contents are re-parsed and the normalized form is written
 *   back into the controls, stripping artifacts like leading zeros.
 *
 * Every control change commits immediately: read controls, parse, and
 * write through to the host property store. A nil parse result clears the
 * property to absence rather than storing an empty-shaped record. Display
 * text is not refreshed per keystroke unless the type opts into live
 * display, isolating host re-render churn from typing.
 *
 * No exceptions escape parse/format. Malformed stored input is logged at
 * warn and rendered as the empty value so a single bad field never breaks
 * the surrounding document view.
 */

// Mode is the widget lifecycle state.
type Mode int

const (
	ModeDisplay Mode = iota
	ModeEditing
)

// Binding converts between control strings and the raw value shape the
// codec parses. Concrete types supply it together with their codec.
type Binding struct {
	// Read assembles the raw value from control contents.
	Read func(primary, secondary string) any
	// Write splits a typed value (or nil) into control contents.
	Write func(v any) (primary, secondary string)
}

// Options configures a widget. Property, Codec, Binding, Props, Surface,
// and Primary are required.
type Options struct {
	Property  types.PropertyPath
	TypeKey   types.TypeKey
	Codec     codec.Codec
	Config    func() codec.Config // settings accessor, re-read on every parse
	Binding   Binding
	Props     host.PropertyStore
	Surface   host.DisplaySurface
	Primary   host.Control
	Secondary host.Control // optional second constituent (unit/currency dropdown)

	Clock    Clock    // nil -> SystemClock
	Measurer Measurer // nil -> no width fitting
	Logger   *slog.Logger

	// LiveDisplay refreshes the display text on every commit while
	// editing, for types that want immediate feedback.
	LiveDisplay bool
	// FitPrimaryWidth resizes the primary control to its content on edit
	// entry and on every change.
	FitPrimaryWidth bool
}

// Widget is one mounted typed-field widget. It lives for the lifetime of
// its property row; the host tears it down via Close.
type Widget struct {
	id     types.WidgetID
	opts   Options
	mode   Mode
	focus  *FocusTracker
	closed bool
}

// New mounts a widget in Display mode, populated from the property's
// current raw value.
func New(opts Options) (*Widget, error) {
	if opts.Property == "" {
		return nil, fmt.Errorf("property cannot be empty")
	}
	if opts.Codec.Parse == nil || opts.Codec.Format == nil {
		return nil, fmt.Errorf("codec cannot be nil")
	}
	if opts.Binding.Read == nil || opts.Binding.Write == nil {
		return nil, fmt.Errorf("binding cannot be nil")
	}
	if opts.Props == nil {
		return nil, fmt.Errorf("property store cannot be nil")
	}
	if opts.Surface == nil {
		return nil, fmt.Errorf("display surface cannot be nil")
	}
	if opts.Primary == nil {
		return nil, fmt.Errorf("primary control cannot be nil")
	}
	if opts.Clock == nil {
		opts.Clock = SystemClock()
	}
	if opts.Config == nil {
		opts.Config = func() codec.Config { return codec.Config{} }
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	w := &Widget{
		id:   types.NewWidgetID(),
		opts: opts,
		mode: ModeDisplay,
	}
	w.focus = NewFocusTracker(opts.Clock, w.exitEdit)

	opts.Surface.OnActivate(w.Activate)
	w.wireControl(opts.Primary, true)
	if opts.Secondary != nil {
		w.wireControl(opts.Secondary, false)
	}

	w.populate(opts.Props.Value(opts.Property))
	w.refreshDisplay()
	return w, nil
}

// ID identifies this instance for host listener teardown.
func (w *Widget) ID() types.WidgetID {
	return w.id
}

// Mode returns the current lifecycle state.
func (w *Widget) Mode() Mode {
	return w.mode
}

func (w *Widget) wireControl(c host.Control, primary bool) {
	c.OnChange(func() {
		if primary && w.opts.FitPrimaryWidth {
			fitWidth(c, w.opts.Measurer)
		}
		w.commit()
	})
	c.OnFocus(w.focus.Gained)
	c.OnBlur(w.focus.Lost)
	if primary {
		c.OnEnter(w.exitEdit)
	}
}

// Activate enters edit mode from a pointer activation on the display
// surface.
func (w *Widget) Activate() {
	if w.closed || w.mode == ModeEditing {
		return
	}
	w.mode = ModeEditing
	w.opts.Primary.Focus()
	if w.opts.FitPrimaryWidth {
		fitWidth(w.opts.Primary, w.opts.Measurer)
	}
}

// RequestFocus enters edit mode on an externally delivered focus request,
// e.g. the host's "jump to property" command.
func (w *Widget) RequestFocus() {
	w.Activate()
}

// commit reads all constituent controls, parses, and writes through. A
// result that is the type's empty value resets the property to absence.
func (w *Widget) commit() {
	if w.closed {
		return
	}
	v := w.parseControls()
	if v == nil {
		if err := w.opts.Props.SetValue(w.opts.Property, nil); err != nil {
			w.opts.Logger.Warn("failed to clear property",
				"property", string(w.opts.Property), "error", err)
		}
	} else if err := w.opts.Props.SetValue(w.opts.Property, v); err != nil {
		w.opts.Logger.Warn("failed to write property",
			"property", string(w.opts.Property), "error", err)
	}

	if w.mode == ModeDisplay || w.opts.LiveDisplay {
		w.refreshDisplay()
	}
}

// exitEdit leaves edit mode: re-parse, write the normalized form back into
// the controls, re-render display.
func (w *Widget) exitEdit() {
	if w.closed || w.mode != ModeEditing {
		return
	}
	w.normalizeControls()
	w.mode = ModeDisplay
	w.refreshDisplay()
}

// SyncValue applies an externally changed raw value (host-side edit of the
// same property). Controls update; display updates unless editing.
func (w *Widget) SyncValue(raw any) {
	if w.closed {
		return
	}
	w.populate(raw)
	if w.mode == ModeDisplay {
		w.refreshDisplay()
	}
}

// Close tears the widget down. Pending settle checks are cancelled; all
// later calls are no-ops. The host unregisters its own listeners using the
// widget ID.
func (w *Widget) Close() {
	w.closed = true
	w.focus.Stop()
}

func (w *Widget) parseControls() any {
	secondary := ""
	if w.opts.Secondary != nil {
		secondary = w.opts.Secondary.GetValue()
	}
	raw := w.opts.Binding.Read(w.opts.Primary.GetValue(), secondary)
	return w.opts.Codec.Parse(raw, w.opts.Config())
}

func (w *Widget) normalizeControls() {
	w.setControls(w.parseControls())
}

// populate fills controls from a raw stored value, logging malformed input
// that the codec could not salvage.
func (w *Widget) populate(raw any) {
	v := w.opts.Codec.Parse(raw, w.opts.Config())
	if v == nil && raw != nil {
		w.opts.Logger.Warn("could not parse stored property value",
			"property", string(w.opts.Property),
			"type", string(w.opts.TypeKey))
	}
	w.setControls(v)
}

func (w *Widget) setControls(v any) {
	primary, secondary := w.opts.Binding.Write(v)
	w.opts.Primary.SetValue(primary)
	if w.opts.FitPrimaryWidth {
		fitWidth(w.opts.Primary, w.opts.Measurer)
	}
	if w.opts.Secondary != nil {
		w.opts.Secondary.SetValue(secondary)
	}
}

func (w *Widget) refreshDisplay() {
	w.opts.Surface.SetText(w.opts.Codec.Format(w.parseControls(), w.opts.Config()))
}
