package codec

import (
	"github.com/solatis/typedprops/internal/types"
)

// Unit parses and formats value+unit pairs against a free-form allowed-unit
// list. Unlike measurement, the unit strings are their own display labels
// and the decimal-places setting controls numeric rendering.
var Unit = Codec{
	Parse:  parseUnit,
	Format: formatUnit,
}

func parseUnit(raw any, cfg Config) any {
	switch v := raw.(type) {
	case nil:
		return nil
	case types.UnitValue:
		return normalizeUnit(v.Value, v.Unit, cfg)
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
		return normalizeUnit(num, name, cfg)
	default:
		if n, ok := asNumber(raw); ok {
			return normalizeUnit(types.Float(n), "", cfg)
		}
		return nil
	}
}

func normalizeUnit(value *float64, unit string, cfg Config) any {
	if unit == "" {
		unit = cfg.DefaultUnit
	}
	if value == nil && unit == "" {
		return nil
	}
	return types.UnitValue{Value: value, Unit: unit}
}

func formatUnit(v any, cfg Config) string {
	u, ok := v.(types.UnitValue)
	if !ok {
		parsed := parseUnit(v, cfg)
		if parsed == nil {
			return ""
		}
		u = parsed.(types.UnitValue)
	}
	if u.Value == nil {
		return ""
	}
	return formatNumber(*u.Value, cfg.DecimalPlaces) + u.Unit
}
