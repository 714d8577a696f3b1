package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/tomlkit/internal/writer"
	"github.com/joshuapare/tomlkit/tomldoc/printer"
)

var (
	dumpFormat    string
	dumpDepth     int
	dumpShowTypes bool
	dumpMaxString int
	dumpOutput    string
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().StringVar(&dumpFormat, "format", "text", "Output format (text, json, yaml)")
	cmd.Flags().IntVar(&dumpDepth, "depth", 0, "Maximum depth to expand (0 = unlimited)")
	cmd.Flags().BoolVar(&dumpShowTypes, "show-types", false, "Show value kinds (text format)")
	cmd.Flags().IntVar(&dumpMaxString, "max-string", 0, "Truncate strings longer than this (text format, 0 = no limit)")
	cmd.Flags().StringVarP(&dumpOutput, "output", "o", "", "Write to a file (replaced atomically) instead of stdout")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file> [path]",
		Short: "Dump a document or subtree",
		Long: `The dump command prints a whole document, or the subtree at a path,
with keys in declaration order.

Example:
  tomlctl dump config.toml
  tomlctl dump config.toml servers --depth 2
  tomlctl dump config.toml --format yaml
  tomlctl dump config.toml --json
  tomlctl dump config.toml --format json -o config.json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) error {
	file := args[0]
	var path string
	if len(args) > 1 {
		path = args[1]
	}

	opts := printer.DefaultOptions()
	opts.MaxDepth = dumpDepth
	opts.ShowTypes = dumpShowTypes
	opts.MaxStringBytes = dumpMaxString
	if jsonOut {
		opts.Format = printer.FormatJSON
	} else {
		format, err := printer.ParseFormat(dumpFormat)
		if err != nil {
			return err
		}
		opts.Format = format
	}

	v, release, err := openValue(file, path)
	if err != nil {
		return err
	}
	defer release()

	if dumpOutput != "" {
		var buf writer.Buffer
		if err := printer.New(&buf, opts).PrintValue(v); err != nil {
			return fmt.Errorf("failed to dump %s: %w", file, err)
		}
		if err := buf.Flush(&writer.FileWriter{Path: dumpOutput}); err != nil {
			return fmt.Errorf("failed to write %s: %w", dumpOutput, err)
		}
		printVerbose("Wrote %d bytes to %s\n", buf.Len(), dumpOutput)
		return nil
	}

	if quiet {
		return nil
	}
	if err := printer.New(os.Stdout, opts).PrintValue(v); err != nil {
		return fmt.Errorf("failed to dump %s: %w", file, err)
	}
	return nil
}
