package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/tomlkit/pkg/host"
	"github.com/joshuapare/tomlkit/tomldoc"
)

var keysIndexed bool

func init() {
	cmd := newKeysCmd()
	cmd.Flags().BoolVarP(&keysIndexed, "index", "i", false, "Prefix each key with its position")
	rootCmd.AddCommand(cmd)
}

func newKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys <file> [path]",
		Short: "List the keys of a table in declaration order",
		Long: `The keys command lists the keys of a table in the order they were
declared. If no path is specified, lists the keys of the root table.

Example:
  tomlctl keys config.toml
  tomlctl keys config.toml servers.alpha
  tomlctl keys config.toml products[1] --index
  tomlctl keys config.toml database --json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeys(args)
		},
	}
	return cmd
}

func runKeys(args []string) error {
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

	t, ok := v.Table()
	if !ok {
		return fmt.Errorf("%q is a %s, not a table", path, v.Kind())
	}
	keys, err := host.AllKeys(t)
	if err != nil {
		return fmt.Errorf("failed to list keys: %w", err)
	}

	// Output as JSON if requested
	if jsonOut {
		result := map[string]interface{}{
			"file":  file,
			"path":  path,
			"keys":  keys,
			"count": len(keys),
		}
		return printJSON(result)
	}

	if path != "" {
		printInfo("\nKeys in %s:\n", titleColor(path))
	} else {
		printInfo("\nKeys at root:\n")
	}

	for i, key := range keys {
		if keysIndexed {
			printInfo("  %3d  %s\n", i+1, keyColor(tomldoc.FormatKey(key)))
		} else {
			printInfo("  %s\n", keyColor(tomldoc.FormatKey(key)))
		}
	}

	printInfo("\nTotal: %d keys\n", len(keys))

	return nil
}
