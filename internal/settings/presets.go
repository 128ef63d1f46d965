package settings

import "sort"

/*
 * Domain data: unit presets and currency symbols.
 *
 * Presets are named bundles of units offered during first-time
 * configuration of a measurement property. The tables are data, not logic;
 * no conversion math happens anywhere in this module.
 */

// FallbackPreset is used when the user cancels preset selection.
const FallbackPreset = "length"

// UnitPresets maps preset keys to their unit bundles.
var UnitPresets = map[string][]Unit{
	"length": {
		{Name: "Millimeter", Shorthand: "mm"},
		{Name: "Centimeter", Shorthand: "cm"},
		{Name: "Meter", Shorthand: "m"},
		{Name: "Kilometer", Shorthand: "km"},
		{Name: "Inch", Shorthand: "in"},
		{Name: "Foot", Shorthand: "ft"},
		{Name: "Yard", Shorthand: "yd"},
		{Name: "Mile", Shorthand: "mi"},
	},
	"weight": {
		{Name: "Milligram", Shorthand: "mg"},
		{Name: "Gram", Shorthand: "g"},
		{Name: "Kilogram", Shorthand: "kg"},
		{Name: "Metric Ton", Shorthand: "t"},
		{Name: "Ounce", Shorthand: "oz"},
		{Name: "Pound", Shorthand: "lb"},
	},
	"volume": {
		{Name: "Milliliter", Shorthand: "ml"},
		{Name: "Liter", Shorthand: "l"},
		{Name: "Teaspoon", Shorthand: "tsp"},
		{Name: "Tablespoon", Shorthand: "tbsp"},
		{Name: "Fluid Ounce", Shorthand: "fl oz"},
		{Name: "Cup", Shorthand: "cup"},
		{Name: "Pint", Shorthand: "pt"},
		{Name: "Quart", Shorthand: "qt"},
		{Name: "Gallon", Shorthand: "gal"},
	},
	"time": {
		{Name: "Millisecond", Shorthand: "ms"},
		{Name: "Second", Shorthand: "s"},
		{Name: "Minute", Shorthand: "min"},
		{Name: "Hour", Shorthand: "h"},
		{Name: "Day", Shorthand: "d"},
		{Name: "Week", Shorthand: "wk"},
		{Name: "Month", Shorthand: "mo"},
		{Name: "Year", Shorthand: "yr"},
	},
	"temperature": {
		{Name: "Celsius", Shorthand: "°C"},
		{Name: "Fahrenheit", Shorthand: "°F"},
		{Name: "Kelvin", Shorthand: "K"},
	},
	"area": {
		{Name: "Square Millimeter", Shorthand: "mm²"},
		{Name: "Square Centimeter", Shorthand: "cm²"},
		{Name: "Square Meter", Shorthand: "m²"},
		{Name: "Square Kilometer", Shorthand: "km²"},
		{Name: "Square Inch", Shorthand: "in²"},
		{Name: "Square Foot", Shorthand: "ft²"},
		{Name: "Square Yard", Shorthand: "yd²"},
		{Name: "Acre", Shorthand: "acre"},
	},
	"speed": {
		{Name: "Meters per Second", Shorthand: "m/s"},
		{Name: "Kilometers per Hour", Shorthand: "km/h"},
		{Name: "Miles per Hour", Shorthand: "mph"},
		{Name: "Knots", Shorthand: "kn"},
	},
}

// PresetKeys returns preset names in deterministic order for menus and
// prompts.
func PresetKeys() []string {
	keys := make([]string, 0, len(UnitPresets))
	for k := range UnitPresets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DefaultUnits is the hardcoded seed used when a unit list is empty and no
// explicit preset choice is required: the union of the common presets.
func DefaultUnits() []Unit {
	var units []Unit
	for _, key := range PresetKeys() {
		units = append(units, UnitPresets[key]...)
	}
	return units
}

// CurrencySymbols maps ISO currency codes to display symbols. Codes
// without a symbol here render as the raw code.
var CurrencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"JPY": "¥",
	"GBP": "£",
	"AUD": "$",
	"CAD": "$",
	"CHF": "CHF",
	"CNY": "¥",
	"HKD": "$",
	"NZD": "$",
	"SEK": "kr",
	"KRW": "₩",
	"SGD": "$",
	"NOK": "kr",
	"MXN": "$",
	"INR": "₹",
	"RUB": "₽",
	"ZAR": "R",
	"TRY": "₺",
	"BRL": "R$",
}

// CurrencyCodes returns the configured currency codes in deterministic
// order for dropdown population.
func CurrencyCodes() []string {
	codes := make([]string, 0, len(CurrencySymbols))
	for c := range CurrencySymbols {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}
