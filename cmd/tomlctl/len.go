package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/tomlkit/pkg/host"
)

func init() {
	rootCmd.AddCommand(newLenCmd())
}

func newLenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "len <file> [path]",
		Short: "Print the number of entries of a table or array",
		Long: `The len command prints the number of entries of the table or array at a
path, or -1 when the value is neither.

Example:
  tomlctl len config.toml
  tomlctl len config.toml database.ports`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLen(args)
		},
	}
	return cmd
}

func runLen(args []string) error {
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

	n := host.LengthOf(v.Interface())
	if jsonOut {
		return printJSON(map[string]interface{}{"path": path, "len": n})
	}
	printInfo("%d\n", n)
	return nil
}
