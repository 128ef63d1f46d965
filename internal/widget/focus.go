package widget

import "time"

// SettleDelay is how long after losing focus the tracker waits before
// deciding focus really left the composite. Long enough for focus to hop
// between sibling controls, short enough to feel immediate.
const SettleDelay = 100 * time.Millisecond

// Clock schedules deferred work. Injectable so tests drive settle checks
// deterministically instead of sleeping.
type Clock interface {
	AfterFunc(d time.Duration, fn func()) (cancel func())
}

type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

// SystemClock returns the wall-clock implementation.
func SystemClock() Clock {
	return systemClock{}
}

/*
 * Composite focus tracking.
 *
 * A structured widget has two or more constituent controls, so a single
 * blur event does not mean the user left the widget: focus may be moving
 * to a sibling control. The tracker counts currently-focused constituents
 * and fires onEmpty only when the count is still zero after a short
 * settle delay. The scheduled check reads current state at fire time, not
 * a captured intent, so stacked timers cannot race each other into a
 * wrong transition.
 */

// FocusTracker counts focused constituent controls of one widget.
type FocusTracker struct {
	clock   Clock
	onEmpty func()
	count   int
	cancel  func()
}

// NewFocusTracker returns a tracker firing onEmpty when focus has left
// every constituent control.
func NewFocusTracker(clock Clock, onEmpty func()) *FocusTracker {
	return &FocusTracker{clock: clock, onEmpty: onEmpty}
}

// Gained records a constituent control receiving focus and cancels any
// pending settle check.
func (t *FocusTracker) Gained() {
	t.count++
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}

// Lost records a constituent control losing focus and schedules the
// settle check.
func (t *FocusTracker) Lost() {
	if t.count > 0 {
		t.count--
	}
	if t.cancel != nil {
		t.cancel()
	}
	t.cancel = t.clock.AfterFunc(SettleDelay, func() {
		t.cancel = nil
		if t.count == 0 {
			t.onEmpty()
		}
	})
}

// Focused returns the number of currently-focused constituents.
func (t *FocusTracker) Focused() int {
	return t.count
}

// Stop cancels any pending settle check. Called on widget teardown.
func (t *FocusTracker) Stop() {
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}
