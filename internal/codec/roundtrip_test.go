package codec

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/solatis/typedprops/internal/types"
)

// Property-based test: parsing is idempotent, so the normalized form is a
// fixed point. Re-parsing a committed value can never change the document.
func TestParse_PropertyIdempotent(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	cfg := Config{
		DefaultCurrency: "USD",
		DefaultUnit:     "Meter",
	}

	properties.Property("currency parse is idempotent", prop.ForAll(
		func(amount float64, currency string) bool {
			first := Currency.Parse(map[string]any{"value": amount, "currency": currency}, cfg)
			second := Currency.Parse(first, cfg)
			return first == second
		},
		gen.Float64Range(-1e12, 1e12),
		gen.OneConstOf("USD", "EUR", "JPY", ""),
	))

	properties.Property("measurement parse is idempotent", prop.ForAll(
		func(value float64, unit string) bool {
			first := Measurement.Parse(map[string]any{"value": value, "unit": unit}, cfg)
			second := Measurement.Parse(first, cfg)
			return measurementEqual(first, second)
		},
		gen.Float64Range(-1e9, 1e9),
		gen.OneConstOf("Meter", "Kilogram", "Celsius", ""),
	))

	properties.Property("unit parse is idempotent", prop.ForAll(
		func(value float64, unit string) bool {
			first := Unit.Parse(map[string]any{"value": value, "unit": unit}, cfg)
			second := Unit.Parse(first, cfg)
			return unitEqual(first, second)
		},
		gen.Float64Range(-1e9, 1e9),
		gen.OneConstOf("mm", "cm", "m", ""),
	))

	properties.TestingRun(t)
}

// Property-based test: a non-empty well-formed record round-trips to its
// normalized form. Numeric text in the record coerces to the same value as
// the number it denotes.
func TestParse_PropertyRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	cfg := Config{DefaultCurrency: "USD", DefaultUnit: "Meter"}

	properties.Property("currency string amounts coerce to numbers", prop.ForAll(
		func(amount float64) bool {
			text := formatNumber(amount, 0)
			fromText := Currency.Parse(map[string]any{"value": text, "currency": "EUR"}, cfg)
			fromNum := Currency.Parse(map[string]any{"value": amount, "currency": "EUR"}, cfg)
			return fromText == fromNum
		},
		gen.Float64Range(-1e9, 1e9),
	))

	properties.Property("measurement bare scalar picks default unit", prop.ForAll(
		func(value float64) bool {
			parsed := Measurement.Parse(formatNumber(value, 0), cfg)
			m, ok := parsed.(types.MeasurementValue)
			return ok && m.Unit == "Meter" && m.Value != nil && *m.Value == value
		},
		gen.Float64Range(-1e9, 1e9),
	))

	properties.TestingRun(t)
}

// Property-based test: parsing never panics regardless of input shape.
func TestParse_PropertyNeverPanics(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	codecs := []Codec{Code, Currency, Measurement, Unit}

	properties.Property("arbitrary raw input never panics", prop.ForAll(
		func(pick int, useMap bool, field string, scalar string) (ok bool) {
			c := codecs[pick%len(codecs)]
			var raw any = scalar
			if useMap {
				raw = map[string]any{field: scalar, "unit": []any{1, 2}}
			}

			defer func() {
				if r := recover(); r != nil {
					ok = false
				}
			}()

			_ = c.Format(c.Parse(raw, Config{}), Config{})
			return true
		},
		gen.IntRange(0, 3),
		gen.Bool(),
		gen.OneConstOf("value", "currency", "unit", "bogus"),
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
