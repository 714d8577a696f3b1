package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/tomlkit/tomldoc"
	"github.com/joshuapare/tomlkit/tomldoc/printer"
)

var (
	getShowType bool
	getFormat   string
)

func init() {
	cmd := newGetCmd()
	cmd.Flags().BoolVar(&getShowType, "type", false, "Show type information")
	cmd.Flags().StringVar(&getFormat, "format", "text", "Output format (text, json, yaml)")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <file> <path>",
		Short: "Get the value at a dotted path",
		Long: `The get command resolves a dotted path and prints the value found there.
Bracketed indices are 1-based; 0 and negative indices count from the end.

Example:
  tomlctl get config.toml title
  tomlctl get config.toml servers.alpha.ports[0]
  tomlctl get config.toml 'owner."full name"' --type
  tomlctl get config.toml database --format yaml`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	file := args[0]
	path := args[1]

	v, release, err := openValue(file, path)
	if err != nil {
		return err
	}
	defer release()

	opts := printer.DefaultOptions()
	opts.ShowTypes = getShowType
	if jsonOut {
		opts.Format = printer.FormatJSON
	} else {
		format, err := printer.ParseFormat(getFormat)
		if err != nil {
			return err
		}
		opts.Format = format
	}

	if opts.Format == printer.FormatText && getShowType {
		switch v.Kind() {
		case tomldoc.KindTable, tomldoc.KindArray:
		default:
			printInfo("%s %s\n", v, kindColor("["+v.Kind().String()+"]"))
			return nil
		}
	}

	if quiet {
		return nil
	}
	if err := printer.New(os.Stdout, opts).PrintValue(v); err != nil {
		return fmt.Errorf("failed to print %q: %w", path, err)
	}
	return nil
}
