package resolver

import (
	"github.com/solatis/typedprops/internal/host"
	"github.com/solatis/typedprops/internal/types"
)

// PropertyActions are the host callbacks behind property editor menu
// entries. The modals themselves (rename dialog, icon picker, delete
// confirmation) are host UI; this system only composes the menu.
type PropertyActions struct {
	OpenSettings func(path types.PropertyPath)
	Rename       func(path types.PropertyPath)
	SetIcon      func(path types.PropertyPath)
	Delete       func(path types.PropertyPath)
}

// BuildTypeMenu fills a menu with one entry per assignable type. The
// current assignment is checked; every entry is disabled when the property
// name is host-reserved.
func (r *Resolver) BuildTypeMenu(menu host.Menu, path types.PropertyPath) {
	current := r.AssignedType(path)
	reserved := r.ReservedProperty(path)

	for _, d := range r.registry.ListAssignable() {
		key := d.Key
		menu.AddItem(host.MenuItem{
			Title:    d.Name,
			Icon:     d.Icon,
			Checked:  current == key,
			Disabled: reserved,
			OnClick: func() {
				if err := r.SwitchType(path, key); err != nil {
					r.log.Warn("type switch failed",
						"property", string(path),
						"type", string(key),
						"error", err)
				}
			},
		})
	}
}

// BuildPropertyMenu composes the property editor context menu: type
// submenu, settings, and the structural actions. Rename and delete operate
// on the host's top-level metadata keys, so both are suppressed for
// sub-properties, which have no key of their own to rename or remove.
func (r *Resolver) BuildPropertyMenu(menu host.Menu, path types.PropertyPath, actions PropertyActions) {
	r.BuildTypeMenu(menu.AddSubmenu("Property type", "archive"), path)

	if actions.OpenSettings != nil {
		menu.AddItem(host.MenuItem{
			Title:   "Settings",
			Icon:    "settings",
			OnClick: func() { actions.OpenSettings(path) },
		})
	}
	if actions.SetIcon != nil {
		menu.AddItem(host.MenuItem{
			Title:   "Set icon",
			Icon:    "image",
			OnClick: func() { actions.SetIcon(path) },
		})
	}
	if path.Sub() {
		return
	}
	if actions.Rename != nil {
		menu.AddItem(host.MenuItem{
			Title:   "Rename",
			Icon:    "pencil",
			OnClick: func() { actions.Rename(path) },
		})
	}
	if actions.Delete != nil {
		menu.AddItem(host.MenuItem{
			Title:   "Delete",
			Icon:    "trash",
			Section: "danger",
			Warning: true,
			OnClick: func() { actions.Delete(path) },
		})
	}
}
