package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/solatis/typedprops/internal/settings"
	"github.com/solatis/typedprops/internal/types"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Inspect and edit per-property type settings",
}

var settingsGetCmd = &cobra.Command{
	Use:   "get <property> <type>",
	Short: "Print a settings record as JSON",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsGet,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <property> <type> <json>",
	Short: "Replace a settings record",
	Args:  cobra.ExactArgs(3),
	RunE:  runSettingsSet,
}

var settingsSeedCmd = &cobra.Command{
	Use:   "seed <property>",
	Short: "Seed the property's measurement unit table from a preset",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsSeed,
}

var seedPreset string

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsSeedCmd)
	settingsSeedCmd.Flags().StringVar(&seedPreset, "preset", "", "unit preset to seed from (defaults to the configured preset)")
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.close()

	rec := env.store.Get(types.PropertyPath(args[0]), types.TypeKey(args[1]))
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.close()

	var rec settings.Record
	if err := json.Unmarshal([]byte(args[2]), &rec); err != nil {
		return fmt.Errorf("invalid settings JSON: %w", err)
	}
	return env.store.Set(types.PropertyPath(args[0]), types.TypeKey(args[1]), rec)
}

func runSettingsSeed(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.close()

	preset := seedPreset
	if preset == "" {
		preset = env.cfg.DefaultPreset
	}

	// The flag stands in for the host's preset prompt.
	prompter := settings.PresetPrompterFunc(func(keys []string) (string, bool) {
		for _, key := range keys {
			if key == preset {
				return preset, true
			}
		}
		return "", false
	})

	rec, err := env.store.EnsureUnitsWithPrompt(types.PropertyPath(args[0]), types.KeyMeasurement, prompter)
	if err != nil {
		return err
	}
	for _, u := range settings.UnitsOf(rec) {
		fmt.Printf("%-16s %s\n", u.Name, u.Shorthand)
	}
	return nil
}
