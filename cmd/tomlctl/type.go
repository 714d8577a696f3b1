package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/tomlkit/pkg/host"
)

func init() {
	rootCmd.AddCommand(newTypeCmd())
}

func newTypeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "type <file> [path]",
		Short: "Report the kind of the value at a path",
		Long: `The type command reports the kind of value stored at a path together
with its type code (0 none, 1 table, 2 array, 3 timestamp).

Example:
  tomlctl type config.toml owner.dob
  tomlctl type config.toml products --json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runType(args)
		},
	}
	return cmd
}

func runType(args []string) error {
	file := args[0]
	var path string
	if len(args) > 1 {
		path = args[1]
	}

	v, release, err := openValue(file, path)
	if err != nil {
		return err
	}
	defer release()

	class := host.Classify(v.Interface())
	if jsonOut {
		return printJSON(map[string]interface{}{
			"path":  path,
			"kind":  v.Kind().String(),
			"class": int(class),
		})
	}

	printInfo("%s (%d)\n", kindColor(v.Kind().String()), int(class))
	printVerbose("  %s\n", host.Describe(v.Interface()))
	return nil
}
