package cmd

import (
	"github.com/solatis/typedprops/internal/host"
	"github.com/solatis/typedprops/internal/settings"
	"github.com/solatis/typedprops/internal/types"
)

// fieldPropertyType is the general-section field the CLI host keeps
// top-level type assignments in. An embedding editor would supply its own
// metadata type manager instead.
const fieldPropertyType = "propertyType"

// storeTypeManager implements host.MetadataTypeManager on the settings
// store so CLI assignments survive between invocations.
type storeTypeManager struct {
	store *settings.Store
}

func newStoreTypeManager(store *settings.Store) *storeTypeManager {
	return &storeTypeManager{store: store}
}

func (m *storeTypeManager) SetType(path types.PropertyPath, key types.TypeKey) error {
	rec := m.store.General(path)
	if key == "" {
		delete(rec, fieldPropertyType)
	} else {
		rec[fieldPropertyType] = string(key)
	}
	return m.store.SetGeneral(path, rec)
}

func (m *storeTypeManager) AssignedWidget(path types.PropertyPath) types.TypeKey {
	key, _ := m.store.General(path)[fieldPropertyType].(string)
	return types.TypeKey(key)
}

// RegisteredTypeWidgets is empty: the CLI has no host-native widgets and
// reserves no property names.
func (m *storeTypeManager) RegisteredTypeWidgets() map[types.TypeKey]host.RegisteredWidget {
	return nil
}
