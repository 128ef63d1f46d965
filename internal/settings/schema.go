// Package settings validates and persists per-(property, type)
// configuration records.
package settings

/*
 * Settings schema.
 *
 * Each pluggable type declares an optional schema: field name, value kind,
 * and default. Schemas never reject stored data. Unknown fields pass
 * through untouched so newer plugin versions can read older records; the
 * schema only fills absent fields with defaults at read time. Defaults are applied
 * to the returned copy, not written back, so a record only materializes in
 * the store once something actually changes it.
 */

// FieldKind describes the value shape of a settings field.
type FieldKind int

const (
	KindString FieldKind = iota
	KindNumber
	KindBool
	KindStringList
	KindUnitList
)

// Field declares one settings field and its default.
type Field struct {
	Name    string
	Kind    FieldKind
	Default any
}

// Schema is the declarative shape of a type's settings record.
type Schema struct {
	Fields []Field
}

// Apply fills absent fields in rec with schema defaults. rec may be nil;
// the result is always non-nil. List defaults are copied so callers cannot
// alias the schema's backing slices.
func (s Schema) Apply(rec Record) Record {
	out := rec
	if out == nil {
		out = Record{}
	}
	for _, f := range s.Fields {
		if v, ok := out[f.Name]; ok && v != nil {
			continue
		}
		if f.Default == nil {
			continue
		}
		out[f.Name] = copyDefault(f.Default)
	}
	return out
}

func copyDefault(v any) any {
	switch d := v.(type) {
	case []string:
		return append([]string(nil), d...)
	case []Unit:
		return append([]Unit(nil), d...)
	default:
		return v
	}
}
