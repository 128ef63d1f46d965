// Package codec implements the value parse/format contract for pluggable
// property types.
package codec

import (
	"golang.org/x/text/language"
)

/*
 * Value codec contract.
 *
 * Each pluggable type supplies a Codec: a pure parse/format pair defining the
 * type's value semantics. Parse is total: it never returns an error and
 * never panics. Unparsable input maps to the type's empty value, which is
 * represented as untyped nil, never as a record of empty fields. This keeps
 * empty-shaped structures like {value: null, unit: ""} out of the document.
 *
 * Parsing policy, by shape of raw input:
 *   1. nil -> nil
 *   2. Structured value matching the record shape -> field-wise coercion
 *      (numeric strings to numbers, missing string fields to configured
 *      defaults)
 *   3. Bare scalar (number or numeric string) -> scalar field plus the
 *      configured default secondary field. Enables backward-compatible
 *      upgrade from simpler stored representations.
 *   4. Anything else -> nil
 *
 * Why function-based: preference for functional composition over interface
 * polymorphism. Four codecs via function fields are cleaner than four
 * interface implementations with minimal behavior variation, and concrete
 * widgets stay free to compose a codec without subclassing anything.
 */

// Config carries the per-property configuration a codec consults.
// Populated from the settings store by the descriptor wiring; zero value is
// usable and falls back to built-in defaults.
type Config struct {
	DefaultCurrency string            // currency used for bare scalars, "" -> USD
	Symbols         map[string]string // currency code -> display symbol
	DefaultUnit     string            // unit used for bare scalars
	Shorthands      map[string]string // unit name -> display shorthand
	DecimalPlaces   int               // 0 or negative -> shortest representation
	Locale          language.Tag      // zero value -> English grouping
}

// Codec is a type's value semantics: a total parse function and a display
// formatter. Parse returns the typed value or nil for empty; Format renders
// a compact human-scale display string and returns "" for empty.
type Codec struct {
	Parse  func(raw any, cfg Config) any
	Format func(v any, cfg Config) string
}

// locale returns the configured locale or the English fallback.
func (c Config) locale() language.Tag {
	if c.Locale == (language.Tag{}) {
		return language.English
	}
	return c.Locale
}
