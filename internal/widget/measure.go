package widget

import "github.com/solatis/typedprops/internal/host"

// Measurer reports the rendered width in pixels of text under the given
// font. Hosts implement this with off-screen text measurement; tests with
// arithmetic.
type Measurer func(text string, font host.FontMetrics) float64

// widthPadding keeps the caret and number spinner clear of the text.
const widthPadding = 18

// fitWidth resizes a numeric control to its current content, clamped to
// the control's configured min/max width.
func fitWidth(c host.Control, measure Measurer) {
	if measure == nil {
		return
	}
	text := c.GetValue()
	if text == "" {
		text = "0"
	}
	width := measure(text, c.Metrics()) + widthPadding

	if min := c.MinWidth(); width < min {
		width = min
	}
	if max := c.MaxWidth(); max > 0 && width > max {
		width = max
	}
	c.SetWidth(width)
}
