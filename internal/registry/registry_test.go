package registry

import (
	"log/slog"
	"testing"

	"golang.org/x/text/language"

	"github.com/solatis/typedprops/internal/codec"
	"github.com/solatis/typedprops/internal/host"
	"github.com/solatis/typedprops/internal/settings"
	"github.com/solatis/typedprops/internal/types"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	store, err := settings.NewStore(settings.NewMemoryPersistence(), slog.Default())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	r, err := NewBuiltinRegistry(store, language.English, slog.Default())
	if err != nil {
		t.Fatalf("NewBuiltinRegistry: %v", err)
	}
	return r
}

func TestBuiltinRegistration(t *testing.T) {
	r := newTestRegistry(t)

	want := []types.TypeKey{types.KeyCode, types.KeyCurrency, types.KeyMeasurement, types.KeyUnit}
	got := r.Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	for i, key := range want {
		if got[i] != key {
			t.Fatalf("Keys()[%d] = %v, want %v", i, got[i], key)
		}
		if _, ok := r.Resolve(key); !ok {
			t.Fatalf("Resolve(%q) failed", key)
		}
	}

	if _, ok := r.Resolve("nonsense"); ok {
		t.Fatal("Resolve should reject unknown keys")
	}
}

func TestRegisterValidation(t *testing.T) {
	r := newTestRegistry(t)

	cases := []struct {
		name string
		d    Descriptor
		ok   bool
	}{
		{"empty key", Descriptor{Codec: codec.Code}, false},
		{"nil codec", Descriptor{Key: "x:foo"}, false},
		{"bare third-party key", Descriptor{Key: "foo", Codec: codec.Code}, false},
		{"namespaced key", Descriptor{Key: types.ExtensionKey("foo"), Codec: codec.Code}, true},
		{"builtin overwrite", Descriptor{Key: types.KeyCode, Codec: codec.Code}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := r.Register(tc.d)
			if tc.ok && err != nil {
				t.Fatalf("Register: %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatal("Register should have failed")
			}
		})
	}
}

func TestListAssignableExcludesReservedTypes(t *testing.T) {
	r := newTestRegistry(t)

	err := r.Register(Descriptor{
		Key:          types.ExtensionKey("kanban"),
		Codec:        codec.Code,
		ReservedKeys: []string{"kanban-plugin"},
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	for _, d := range r.ListAssignable() {
		if d.Key == types.ExtensionKey("kanban") {
			t.Fatal("reserved type listed as assignable")
		}
	}
	if len(r.ListAssignable()) != 4 {
		t.Fatalf("ListAssignable() = %d entries, want the 4 built-ins", len(r.ListAssignable()))
	}
}

func TestRegisterInstallsSchema(t *testing.T) {
	r := newTestRegistry(t)

	rec := r.Store().Get("price", types.KeyCurrency)
	if rec[settings.FieldDefaultCurrency] != codec.FallbackCurrency {
		t.Fatalf("defaultCurrency = %v, want %v",
			rec[settings.FieldDefaultCurrency], codec.FallbackCurrency)
	}

	rec = r.Store().Get("speed", types.KeyUnit)
	if rec[settings.FieldDecimalPlaces] != 0 {
		t.Fatalf("decimalPlaces = %v, want 0", rec[settings.FieldDecimalPlaces])
	}
}

func TestCurrencyRenderSettingsMaterializesDefault(t *testing.T) {
	r := newTestRegistry(t)
	d, _ := r.Resolve(types.KeyCurrency)

	if err := d.RenderSettings(SettingsContext{Property: "price"}); err != nil {
		t.Fatalf("RenderSettings: %v", err)
	}

	rec := r.Store().Get("price", types.KeyCurrency)
	if rec[settings.FieldDefaultCurrency] != codec.FallbackCurrency {
		t.Fatalf("defaultCurrency = %v, want persisted %v",
			rec[settings.FieldDefaultCurrency], codec.FallbackCurrency)
	}
}

type fakePanel struct {
	tabChange func()
}

func (p *fakePanel) OnTabChange(fn func()) { p.tabChange = fn }

func TestMeasurementRenderSettingsSeedsAndPrunes(t *testing.T) {
	r := newTestRegistry(t)
	d, _ := r.Resolve(types.KeyMeasurement)

	panel := &fakePanel{}
	prompter := settings.PresetPrompterFunc(func(keys []string) (string, bool) {
		return "weight", true
	})
	err := d.RenderSettings(SettingsContext{Property: "mass", Panel: panel, Prompter: prompter})
	if err != nil {
		t.Fatalf("RenderSettings: %v", err)
	}

	rec := r.Store().Get("mass", types.KeyMeasurement)
	units := settings.UnitsOf(rec)
	if len(units) == 0 {
		t.Fatal("unit list should be seeded from the chosen preset")
	}

	// Blank a unit name and switch tabs; the blank entry is pruned.
	units[0].Name = "  "
	settings.SetUnits(rec, units)
	if err := r.Store().Set("mass", types.KeyMeasurement, rec); err != nil {
		t.Fatalf("Set: %v", err)
	}
	panel.tabChange()

	pruned := settings.UnitsOf(r.Store().Get("mass", types.KeyMeasurement))
	if len(pruned) != len(units)-1 {
		t.Fatalf("units after prune = %d, want %d", len(pruned), len(units)-1)
	}
}

// mountControl is a minimal host.Control for descriptor widget tests.
type mountControl struct {
	value    string
	onChange func()
}

func (c *mountControl) GetValue() string          { return c.value }
func (c *mountControl) SetValue(v string)         { c.value = v }
func (c *mountControl) OnChange(fn func())        { c.onChange = fn }
func (c *mountControl) OnFocus(func())            {}
func (c *mountControl) OnBlur(func())             {}
func (c *mountControl) OnEnter(func())            {}
func (c *mountControl) Focus()                    {}
func (c *mountControl) SetWidth(float64)          {}
func (c *mountControl) Metrics() host.FontMetrics { return host.FontMetrics{} }
func (c *mountControl) MinWidth() float64         { return 0 }
func (c *mountControl) MaxWidth() float64         { return 0 }

func (c *mountControl) change(v string) {
	c.value = v
	if c.onChange != nil {
		c.onChange()
	}
}

type mountSurface struct {
	text string
}

func (s *mountSurface) SetText(text string) { s.text = text }
func (s *mountSurface) OnActivate(func())   {}

func TestCurrencyDescriptorMountsWorkingWidget(t *testing.T) {
	r := newTestRegistry(t)
	d, _ := r.Resolve(types.KeyCurrency)

	props := host.NewMemoryPropertyStore()
	props.SetValue("price", map[string]any{"value": 1234567.0, "currency": "USD"})

	primary := &mountControl{}
	secondary := &mountControl{}
	surface := &mountSurface{}
	w, err := d.NewWidget(WidgetContext{
		Property:  "price",
		Props:     props,
		Surface:   surface,
		Primary:   primary,
		Secondary: secondary,
	})
	if err != nil {
		t.Fatalf("NewWidget: %v", err)
	}
	defer w.Close()

	if surface.text != "$1.23M" {
		t.Fatalf("display = %q, want $1.23M", surface.text)
	}

	secondary.change("EUR")
	got, ok := props.Value("price").(types.CurrencyValue)
	if !ok {
		t.Fatalf("stored value = %#v, want CurrencyValue", props.Value("price"))
	}
	if got.Currency != "EUR" || got.Amount != 1234567 {
		t.Fatalf("stored value = %#v", got)
	}
}

func TestMeasurementConfigTracksSettingsEdits(t *testing.T) {
	r := newTestRegistry(t)
	d, _ := r.Resolve(types.KeyMeasurement)

	rec := r.Store().Get("distance", types.KeyMeasurement)
	settings.SetUnits(rec, []settings.Unit{{Name: "meter", Shorthand: "m"}})
	rec[settings.FieldDefaultUnit] = "meter"
	if err := r.Store().Set("distance", types.KeyMeasurement, rec); err != nil {
		t.Fatalf("Set: %v", err)
	}

	props := host.NewMemoryPropertyStore()
	props.SetValue("distance", "12")

	surface := &mountSurface{}
	w, err := d.NewWidget(WidgetContext{
		Property:  "distance",
		Props:     props,
		Surface:   surface,
		Primary:   &mountControl{},
		Secondary: &mountControl{},
	})
	if err != nil {
		t.Fatalf("NewWidget: %v", err)
	}
	defer w.Close()

	// Bare scalar upgraded against the configured default unit.
	if surface.text != "12m" {
		t.Fatalf("display = %q, want 12m", surface.text)
	}
}
