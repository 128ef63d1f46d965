package settings

import (
	"github.com/solatis/typedprops/internal/types"
)

/*
 * First-access seeding of list-valued settings.
 *
 * An empty unit list is seeded on first access, either with the hardcoded
 * default set or, when the type wants an explicit choice, through a
 * blocking preset prompt. Seeding writes back immediately so the prompt is
 * asked at most once per property. "Awaiting preset selection" is an
 * explicit initialization state guarded by a per-(property, type) in-flight
 * flag: a second mount of the same property while the prompt is open gets
 * ErrSeedInFlight instead of racing the first.
 */

// PresetPrompter blocks the caller until the user picks a preset or
// dismisses the prompt (ok=false). Host UIs implement this with a modal;
// the CLI implements it with a flag.
type PresetPrompter interface {
	SelectPreset(keys []string) (preset string, ok bool)
}

// PresetPrompterFunc adapts a function to the PresetPrompter interface.
type PresetPrompterFunc func(keys []string) (string, bool)

// SelectPreset calls f.
func (f PresetPrompterFunc) SelectPreset(keys []string) (string, bool) {
	return f(keys)
}

// EnsureUnits seeds an empty unit list with the hardcoded default set and
// persists the result. A non-empty list is returned unchanged.
func (s *Store) EnsureUnits(property types.PropertyPath, key types.TypeKey) (Record, error) {
	rec := s.Get(property, key)
	if len(UnitsOf(rec)) > 0 {
		return rec, nil
	}
	SetUnits(rec, DefaultUnits())
	if err := s.Set(property, key, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// EnsureUnitsWithPrompt seeds an empty unit list by suspending behind a
// preset prompt. Cancelling falls back to FallbackPreset. Returns
// ErrSeedInFlight when a prompt for the same (property, type) is already
// open.
func (s *Store) EnsureUnitsWithPrompt(property types.PropertyPath, key types.TypeKey, prompter PresetPrompter) (Record, error) {
	rec := s.Get(property, key)
	if len(UnitsOf(rec)) > 0 {
		return rec, nil
	}

	guard := string(property) + "/" + string(key)
	if s.seeding[guard] {
		return nil, types.ErrSeedInFlight
	}
	s.seeding[guard] = true
	defer delete(s.seeding, guard)

	preset, ok := prompter.SelectPreset(PresetKeys())
	if !ok {
		preset = FallbackPreset
	}
	units, found := UnitPresets[preset]
	if !found {
		units = UnitPresets[FallbackPreset]
	}

	// Re-read: the prompt may have suspended long enough for another path
	// to seed the list (e.g. the settings panel was opened meanwhile).
	rec = s.Get(property, key)
	if len(UnitsOf(rec)) > 0 {
		return rec, nil
	}
	SetUnits(rec, append([]Unit(nil), units...))
	if err := s.Set(property, key, rec); err != nil {
		return nil, err
	}
	return rec, nil
}
