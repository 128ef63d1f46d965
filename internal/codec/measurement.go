package codec

import (
	"github.com/solatis/typedprops/internal/types"
)

// UnknownUnit is the placeholder unit shown before the user picks one.
// A record carrying only the placeholder counts as empty.
const UnknownUnit = "Unknown"

// Measurement parses and formats physical measurements against a configured
// unit table. Display appends the unit's shorthand, falling back to the raw
// unit name when no shorthand is configured.
var Measurement = Codec{
	Parse:  parseMeasurement,
	Format: formatMeasurement,
}

func parseMeasurement(raw any, cfg Config) any {
	switch v := raw.(type) {
	case nil:
		return nil
	case types.MeasurementValue:
		return normalizeMeasurement(v.Value, v.Unit, cfg)
	case map[string]any:
		value, unit := v["value"], v["unit"]
		if emptyField(value) && emptyField(unit) {
			return nil
		}
		var num *float64
		if n, ok := asNumber(value); ok {
			num = types.Float(n)
		}
		name := ""
		if s, ok := asString(unit); ok {
			name = s
		}
		return normalizeMeasurement(num, name, cfg)
	default:
		// Bare scalar upgrade path: "12" becomes 12 of the default unit.
		if n, ok := asNumber(raw); ok {
			return normalizeMeasurement(types.Float(n), "", cfg)
		}
		return nil
	}
}

// normalizeMeasurement applies the unit default and the empty policy: a
// record with no magnitude and only the placeholder unit is absence.
func normalizeMeasurement(value *float64, unit string, cfg Config) any {
	if unit == "" {
		unit = cfg.DefaultUnit
	}
	if unit == "" {
		unit = UnknownUnit
	}
	if value == nil && unit == UnknownUnit {
		return nil
	}
	return types.MeasurementValue{Value: value, Unit: unit}
}

func formatMeasurement(v any, cfg Config) string {
	m, ok := v.(types.MeasurementValue)
	if !ok {
		parsed := parseMeasurement(v, cfg)
		if parsed == nil {
			return ""
		}
		m = parsed.(types.MeasurementValue)
	}
	if m.Value == nil {
		return ""
	}

	shorthand, ok := cfg.Shorthands[m.Unit]
	if !ok {
		shorthand = m.Unit
	}
	return formatNumber(*m.Value, 0) + shorthand
}
