package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List registered value types",
	RunE:  runTypes,
}

func init() {
	rootCmd.AddCommand(typesCmd)
}

func runTypes(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.close()

	assignable := make(map[string]bool)
	for _, d := range env.registry.ListAssignable() {
		assignable[string(d.Key)] = true
	}

	fmt.Printf("%-16s %-16s %s\n", "KEY", "NAME", "ASSIGNABLE")
	for _, key := range env.registry.Keys() {
		d, _ := env.registry.Resolve(key)
		yesNo := "no"
		if assignable[string(d.Key)] {
			yesNo = "yes"
		}
		fmt.Printf("%-16s %-16s %s\n", d.Key, d.Name, yesNo)
	}
	return nil
}
