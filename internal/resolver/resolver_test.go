package resolver

import (
	"errors"
	"log/slog"
	"testing"

	"golang.org/x/text/language"

	"github.com/solatis/typedprops/internal/host"
	"github.com/solatis/typedprops/internal/registry"
	"github.com/solatis/typedprops/internal/settings"
	"github.com/solatis/typedprops/internal/types"
)

type fixture struct {
	resolver *Resolver
	store    *settings.Store
	manager  *host.MemoryTypeManager
	bus      *host.MemoryBus
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store, err := settings.NewStore(settings.NewMemoryPersistence(), slog.Default())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	reg, err := registry.NewBuiltinRegistry(store, language.English, slog.Default())
	if err != nil {
		t.Fatalf("NewBuiltinRegistry: %v", err)
	}

	manager := host.NewMemoryTypeManager(
		host.RegisteredWidget{Key: "text", Name: "Text"},
		host.RegisteredWidget{
			Key:          "x:kanban",
			Name:         "Kanban",
			ReservedKeys: []string{"kanban-plugin"},
		},
	)
	bus := host.NewMemoryBus()

	r, err := New(reg, store, manager, bus, slog.Default())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return &fixture{resolver: r, store: store, manager: manager, bus: bus}
}

func TestAssignedTypeTopLevel(t *testing.T) {
	f := newFixture(t)

	if got := f.resolver.AssignedType("price"); got != "" {
		t.Fatalf("AssignedType = %q, want untyped", got)
	}

	if err := f.resolver.SwitchType("price", types.KeyCurrency); err != nil {
		t.Fatalf("SwitchType: %v", err)
	}
	if got := f.resolver.AssignedType("price"); got != types.KeyCurrency {
		t.Fatalf("AssignedType = %q, want currency", got)
	}
	if got := f.manager.AssignedWidget("price"); got != types.KeyCurrency {
		t.Fatal("top-level switch should go through the host manager")
	}
	if f.store.General("price")[FieldCustomType] != nil {
		t.Fatal("top-level switch should not touch settings")
	}
}

func TestAssignedTypeSubProperty(t *testing.T) {
	f := newFixture(t)

	var signalled []types.PropertyPath
	f.bus.Subscribe(TopicTypeChanged, func(p types.PropertyPath) {
		signalled = append(signalled, p)
	})

	if err := f.resolver.SwitchType("order.total", types.KeyCurrency); err != nil {
		t.Fatalf("SwitchType: %v", err)
	}

	if got := f.resolver.AssignedType("order.total"); got != types.KeyCurrency {
		t.Fatalf("AssignedType = %q, want currency", got)
	}
	if got := f.manager.AssignedWidget("order.total"); got != "" {
		t.Fatal("sub-property switch must not reach the host manager")
	}
	if len(signalled) != 1 || signalled[0] != "order.total" {
		t.Fatalf("signals = %v, want one for order.total", signalled)
	}
}

func TestSwitchTypeClearsAssignment(t *testing.T) {
	f := newFixture(t)

	if err := f.resolver.SwitchType("order.total", types.KeyUnit); err != nil {
		t.Fatalf("SwitchType: %v", err)
	}
	if err := f.resolver.SwitchType("order.total", ""); err != nil {
		t.Fatalf("SwitchType clear: %v", err)
	}
	if got := f.resolver.AssignedType("order.total"); got != "" {
		t.Fatalf("AssignedType = %q, want untyped after clear", got)
	}
}

func TestSwitchTypeRejectsUnknownKey(t *testing.T) {
	f := newFixture(t)

	err := f.resolver.SwitchType("price", "x:nonsense")
	if !errors.Is(err, types.ErrUnknownType) {
		t.Fatalf("err = %v, want ErrUnknownType", err)
	}
}

func TestSwitchTypeAcceptsHostNativeKey(t *testing.T) {
	f := newFixture(t)

	if err := f.resolver.SwitchType("notes", "text"); err != nil {
		t.Fatalf("SwitchType to host-native type: %v", err)
	}

	// Host-native assignments resolve to no descriptor here; the host
	// renders them itself.
	if _, ok := f.resolver.Resolve("notes"); ok {
		t.Fatal("host-native type should not resolve to a descriptor")
	}
}

func TestSwitchTypeRefusesReservedProperty(t *testing.T) {
	f := newFixture(t)

	for _, path := range []types.PropertyPath{"kanban-plugin", "kanban-plugin.lane"} {
		err := f.resolver.SwitchType(path, types.KeyCode)
		if !errors.Is(err, types.ErrReservedProperty) {
			t.Fatalf("SwitchType(%s) = %v, want ErrReservedProperty", path, err)
		}
	}
}

func TestResolveReturnsDescriptor(t *testing.T) {
	f := newFixture(t)

	if err := f.resolver.SwitchType("price", types.KeyCurrency); err != nil {
		t.Fatalf("SwitchType: %v", err)
	}
	d, ok := f.resolver.Resolve("price")
	if !ok || d.Key != types.KeyCurrency {
		t.Fatalf("Resolve = (%v, %v), want currency descriptor", d.Key, ok)
	}

	if _, ok := f.resolver.Resolve("untyped"); ok {
		t.Fatal("untyped property should not resolve")
	}
}

// fakeMenu records added items; submenus share the recording root.
type fakeMenu struct {
	items    []host.MenuItem
	submenus map[string]*fakeMenu
}

func newFakeMenu() *fakeMenu {
	return &fakeMenu{submenus: make(map[string]*fakeMenu)}
}

func (m *fakeMenu) AddItem(item host.MenuItem) { m.items = append(m.items, item) }

func (m *fakeMenu) AddSubmenu(title, _ string) host.Menu {
	sub := newFakeMenu()
	m.submenus[title] = sub
	return sub
}

func (m *fakeMenu) find(title string) (host.MenuItem, bool) {
	for _, item := range m.items {
		if item.Title == title {
			return item, true
		}
	}
	return host.MenuItem{}, false
}

func TestBuildTypeMenu(t *testing.T) {
	f := newFixture(t)
	if err := f.resolver.SwitchType("price", types.KeyCurrency); err != nil {
		t.Fatalf("SwitchType: %v", err)
	}

	menu := newFakeMenu()
	f.resolver.BuildTypeMenu(menu, "price")

	if len(menu.items) != 4 {
		t.Fatalf("menu has %d entries, want the 4 built-ins", len(menu.items))
	}
	for _, item := range menu.items {
		wantChecked := item.Title == "Currency"
		if item.Checked != wantChecked {
			t.Fatalf("%s: Checked = %v, want %v", item.Title, item.Checked, wantChecked)
		}
		if item.Disabled {
			t.Fatalf("%s should not be disabled", item.Title)
		}
	}

	// Clicking an entry performs the switch.
	item, ok := menu.find("Measurement")
	if !ok {
		t.Fatal("missing Measurement entry")
	}
	item.OnClick()
	if got := f.resolver.AssignedType("price"); got != types.KeyMeasurement {
		t.Fatalf("AssignedType = %q after click, want measurement", got)
	}
}

func TestBuildTypeMenuDisabledForReservedProperty(t *testing.T) {
	f := newFixture(t)

	menu := newFakeMenu()
	f.resolver.BuildTypeMenu(menu, "kanban-plugin")

	for _, item := range menu.items {
		if !item.Disabled {
			t.Fatalf("%s should be disabled for a reserved property", item.Title)
		}
	}
}

func TestBuildPropertyMenuTopLevel(t *testing.T) {
	f := newFixture(t)

	menu := newFakeMenu()
	f.resolver.BuildPropertyMenu(menu, "price", PropertyActions{
		OpenSettings: func(types.PropertyPath) {},
		Rename:       func(types.PropertyPath) {},
		SetIcon:      func(types.PropertyPath) {},
		Delete:       func(types.PropertyPath) {},
	})

	if _, ok := menu.submenus["Property type"]; !ok {
		t.Fatal("missing type submenu")
	}
	for _, title := range []string{"Settings", "Set icon", "Rename", "Delete"} {
		if _, ok := menu.find(title); !ok {
			t.Fatalf("missing %s entry", title)
		}
	}

	del, _ := menu.find("Delete")
	if !del.Warning || del.Section != "danger" {
		t.Fatal("delete entry should be a warning in the danger section")
	}
}

func TestBuildPropertyMenuSubPropertySuppressesStructuralActions(t *testing.T) {
	f := newFixture(t)

	menu := newFakeMenu()
	f.resolver.BuildPropertyMenu(menu, "order.total", PropertyActions{
		OpenSettings: func(types.PropertyPath) {},
		Rename:       func(types.PropertyPath) {},
		SetIcon:      func(types.PropertyPath) {},
		Delete:       func(types.PropertyPath) {},
	})

	for _, title := range []string{"Rename", "Delete"} {
		if _, ok := menu.find(title); ok {
			t.Fatalf("%s should be suppressed for sub-properties", title)
		}
	}
	if _, ok := menu.find("Settings"); !ok {
		t.Fatal("settings entry should remain for sub-properties")
	}
}
