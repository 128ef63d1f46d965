package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solatis/typedprops/internal/types"
)

var assignClear bool

var assignCmd = &cobra.Command{
	Use:   "assign <property> [type-key]",
	Short: "Show or change a property's assigned value type",
	Long: `With one argument, prints the property's current type assignment.
With two, assigns the given type. Dotted paths address sub-properties.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runAssign,
}

func init() {
	rootCmd.AddCommand(assignCmd)
	assignCmd.Flags().BoolVar(&assignClear, "clear", false, "clear the assignment back to untyped")
}

func runAssign(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.close()

	path := types.PropertyPath(args[0])

	switch {
	case assignClear:
		if err := env.resolver.SwitchType(path, ""); err != nil {
			return err
		}
		fmt.Printf("%s: untyped\n", path)
		return nil

	case len(args) == 2:
		key := types.TypeKey(args[1])
		if err := env.resolver.SwitchType(path, key); err != nil {
			return err
		}
		fmt.Printf("%s: %s\n", path, key)
		return nil

	default:
		key := env.resolver.AssignedType(path)
		if key == "" {
			fmt.Printf("%s: untyped\n", path)
			return nil
		}
		scope := "top-level"
		if path.Sub() {
			scope = "sub-property"
		}
		fmt.Printf("%s: %s (%s)\n", path, key, scope)
		return nil
	}
}
