package registry

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"golang.org/x/text/language"

	"github.com/solatis/typedprops/internal/codec"
	"github.com/solatis/typedprops/internal/settings"
	"github.com/solatis/typedprops/internal/types"
	"github.com/solatis/typedprops/internal/widget"
)

/*
 * Built-in descriptors.
 *
 * Four value types ship with the framework: code, currency, measurement,
 * and unit. Each descriptor binds a codec to a settings-backed Config
 * accessor, so configuration edits take effect on the next parse without
 * remounting widgets.
 *
 * Display refresh policy differs per type: measurement and unit update
 * the display text live while editing; currency and code wait for edit
 * exit, since partial amounts render misleadingly ("$1" while typing
 * "$1200").
 */

// NewBuiltinRegistry returns a registry with the four built-in types
// registered against the store.
func NewBuiltinRegistry(store *settings.Store, locale language.Tag, log *slog.Logger) (*Registry, error) {
	if log == nil {
		log = slog.Default()
	}
	r, err := New(store, log)
	if err != nil {
		return nil, err
	}
	for _, d := range []Descriptor{
		codeDescriptor(),
		currencyDescriptor(store, locale),
		measurementDescriptor(store, locale, log),
		unitDescriptor(store, locale),
	} {
		if err := r.Register(d); err != nil {
			return nil, fmt.Errorf("failed to register built-in %q: %w", d.Key, err)
		}
	}
	return r, nil
}

func codeDescriptor() Descriptor {
	binding := widget.Binding{
		Read: func(primary, _ string) any { return primary },
		Write: func(v any) (string, string) {
			s, _ := v.(string)
			return s, ""
		},
	}
	return Descriptor{
		Key:       types.KeyCode,
		Name:      "Code",
		Icon:      "code",
		Codec:     codec.Code,
		NewWidget: mountWidget(codec.Code, types.KeyCode, staticConfig(codec.Config{}), binding, false, false),
	}
}

func currencyDescriptor(store *settings.Store, locale language.Tag) Descriptor {
	cfgFor := func(property types.PropertyPath) func() codec.Config {
		return func() codec.Config {
			rec := store.Get(property, types.KeyCurrency)
			return codec.Config{
				DefaultCurrency: recString(rec, settings.FieldDefaultCurrency),
				Symbols:         settings.CurrencySymbols,
				Locale:          locale,
			}
		}
	}
	binding := widget.Binding{
		Read: func(primary, secondary string) any {
			return map[string]any{"value": primary, "currency": secondary}
		},
		Write: func(v any) (string, string) {
			cur, ok := v.(types.CurrencyValue)
			if !ok {
				return "", ""
			}
			return formatControlNumber(cur.Amount), cur.Currency
		},
	}
	return Descriptor{
		Key:   types.KeyCurrency,
		Name:  "Currency",
		Icon:  "banknote",
		Codec: codec.Currency,
		Schema: settings.Schema{Fields: []settings.Field{
			{Name: settings.FieldDefaultCurrency, Kind: settings.KindString, Default: codec.FallbackCurrency},
		}},
		NewWidget: mountWidget(codec.Currency, types.KeyCurrency, cfgFor, binding, false, true),
		RenderSettings: func(ctx SettingsContext) error {
			// Opening the panel persists the record with the schema default
			// filled in, so the dropdown shows a committed selection.
			return store.Set(ctx.Property, types.KeyCurrency,
				store.Get(ctx.Property, types.KeyCurrency))
		},
	}
}

func measurementDescriptor(store *settings.Store, locale language.Tag, log *slog.Logger) Descriptor {
	cfgFor := func(property types.PropertyPath) func() codec.Config {
		return func() codec.Config {
			rec := store.Get(property, types.KeyMeasurement)
			return codec.Config{
				DefaultUnit: recString(rec, settings.FieldDefaultUnit),
				Shorthands:  settings.Shorthands(settings.UnitsOf(rec)),
				Locale:      locale,
			}
		}
	}
	return Descriptor{
		Key:   types.KeyMeasurement,
		Name:  "Measurement",
		Icon:  "ruler",
		Codec: codec.Measurement,
		Schema: settings.Schema{Fields: []settings.Field{
			{Name: settings.FieldUnits, Kind: settings.KindUnitList},
			{Name: settings.FieldDefaultUnit, Kind: settings.KindString},
		}},
		NewWidget: mountWidget(codec.Measurement, types.KeyMeasurement, cfgFor, unitPairBinding(), true, true),
		RenderSettings: func(ctx SettingsContext) error {
			var err error
			if ctx.Prompter == nil {
				_, err = store.EnsureUnits(ctx.Property, types.KeyMeasurement)
			} else {
				_, err = store.EnsureUnitsWithPrompt(ctx.Property, types.KeyMeasurement, ctx.Prompter)
			}
			if err != nil {
				// A prompt already in flight for this property means the
				// panel reopened mid-selection; nothing to do.
				if errors.Is(err, types.ErrSeedInFlight) {
					return nil
				}
				return err
			}
			if ctx.Panel != nil {
				property := ctx.Property
				ctx.Panel.OnTabChange(func() {
					if err := store.PruneBlankUnits(property, types.KeyMeasurement); err != nil {
						log.Warn("failed to prune blank units",
							"property", string(property), "error", err)
					}
				})
			}
			return nil
		},
	}
}

func unitDescriptor(store *settings.Store, locale language.Tag) Descriptor {
	cfgFor := func(property types.PropertyPath) func() codec.Config {
		return func() codec.Config {
			rec := store.Get(property, types.KeyUnit)
			return codec.Config{
				DefaultUnit:   recString(rec, settings.FieldDefaultUnit),
				DecimalPlaces: recInt(rec, settings.FieldDecimalPlaces),
				Locale:        locale,
			}
		}
	}
	return Descriptor{
		Key:   types.KeyUnit,
		Name:  "Unit",
		Icon:  "variable",
		Codec: codec.Unit,
		Schema: settings.Schema{Fields: []settings.Field{
			{Name: settings.FieldDefaultUnit, Kind: settings.KindString},
			{Name: settings.FieldDecimalPlaces, Kind: settings.KindNumber, Default: 0},
			{Name: settings.FieldAllowedUnits, Kind: settings.KindStringList, Default: []string{}},
		}},
		NewWidget: mountWidget(codec.Unit, types.KeyUnit, cfgFor, unitPairBinding(), true, true),
	}
}

// unitPairBinding maps the number+unit control pair shared by the
// measurement and unit widgets.
func unitPairBinding() widget.Binding {
	return widget.Binding{
		Read: func(primary, secondary string) any {
			return map[string]any{"value": primary, "unit": secondary}
		},
		Write: func(v any) (string, string) {
			switch m := v.(type) {
			case types.MeasurementValue:
				return formatControlPointer(m.Value), m.Unit
			case types.UnitValue:
				return formatControlPointer(m.Value), m.Unit
			default:
				return "", ""
			}
		},
	}
}

func mountWidget(
	c codec.Codec,
	key types.TypeKey,
	cfgFor func(types.PropertyPath) func() codec.Config,
	binding widget.Binding,
	liveDisplay, fitWidth bool,
) func(ctx WidgetContext) (*widget.Widget, error) {
	return func(ctx WidgetContext) (*widget.Widget, error) {
		return widget.New(widget.Options{
			Property:        ctx.Property,
			TypeKey:         key,
			Codec:           c,
			Config:          cfgFor(ctx.Property),
			Binding:         binding,
			Props:           ctx.Props,
			Surface:         ctx.Surface,
			Primary:         ctx.Primary,
			Secondary:       ctx.Secondary,
			Clock:           ctx.Clock,
			Measurer:        ctx.Measurer,
			Logger:          ctx.Logger,
			LiveDisplay:     liveDisplay,
			FitPrimaryWidth: fitWidth,
		})
	}
}

func staticConfig(cfg codec.Config) func(types.PropertyPath) func() codec.Config {
	return func(types.PropertyPath) func() codec.Config {
		return func() codec.Config { return cfg }
	}
}

func recString(rec settings.Record, field string) string {
	s, _ := rec[field].(string)
	return s
}

// recInt tolerates the two numeric shapes a record can carry: int from
// in-memory writes and float64 from JSON persistence.
func recInt(rec settings.Record, field string) int {
	switch v := rec[field].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return 0
	}
}

// formatControlNumber renders a numeric field for an edit control in its
// shortest exact form.
func formatControlNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatControlPointer(v *float64) string {
	if v == nil {
		return ""
	}
	return formatControlNumber(*v)
}
