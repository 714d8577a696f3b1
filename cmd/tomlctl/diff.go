package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/joshuapare/tomlkit/tomldoc"
	"github.com/joshuapare/tomlkit/tomldoc/printer"
)

var (
	diffPath   string
	diffFormat string
)

func init() {
	cmd := newDiffCmd()
	cmd.Flags().StringVar(&diffPath, "path", "", "Compare only the subtree at this path")
	cmd.Flags().StringVar(&diffFormat, "format", "text", "Output format (text, json, unified)")
	rootCmd.AddCommand(cmd)
}

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <file1> <file2>",
		Short: "Compare two documents and show differences",
		Long: `The diff command compares two TOML documents slot by slot and shows
added, deleted and modified values.

Example:
  tomlctl diff before.toml after.toml
  tomlctl diff before.toml after.toml --path servers
  tomlctl diff before.toml after.toml --format unified`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(args)
		},
	}
	return cmd
}

type DiffResult struct {
	Added    []ValueDiff `json:"added"`
	Deleted  []ValueDiff `json:"deleted"`
	Modified []ValueDiff `json:"modified"`
}

type ValueDiff struct {
	Path     string `json:"path"`
	OldValue string `json:"old,omitempty"`
	NewValue string `json:"new,omitempty"`
}

// Empty reports whether the two documents matched.
func (r DiffResult) Empty() bool {
	return len(r.Added)+len(r.Deleted)+len(r.Modified) == 0
}

// flatDoc maps every slot path to a rendering of its value, keeping
// declaration order.
type flatDoc struct {
	paths  []string
	values map[string]string
}

func flatten(v tomldoc.Value) (*flatDoc, error) {
	fd := &flatDoc{values: make(map[string]string)}
	add := func(path string, v tomldoc.Value) error {
		var s string
		switch v.Kind() {
		case tomldoc.KindTable, tomldoc.KindArray:
			s = "<" + v.Kind().String() + ">"
		default:
			s = v.String()
		}
		fd.paths = append(fd.paths, path)
		fd.values[path] = s
		return nil
	}

	var err error
	switch v.Kind() {
	case tomldoc.KindTable:
		t, _ := v.Table()
		err = t.Walk(add)
	case tomldoc.KindArray:
		a, _ := v.Array()
		err = a.Walk(add)
	default:
		err = add("", v)
	}
	return fd, err
}

func compare(before, after *flatDoc) DiffResult {
	result := DiffResult{
		Added:    make([]ValueDiff, 0),
		Deleted:  make([]ValueDiff, 0),
		Modified: make([]ValueDiff, 0),
	}
	for _, p := range before.paths {
		old := before.values[p]
		cur, ok := after.values[p]
		switch {
		case !ok:
			result.Deleted = append(result.Deleted, ValueDiff{Path: p, OldValue: old})
		case cur != old:
			result.Modified = append(result.Modified, ValueDiff{Path: p, OldValue: old, NewValue: cur})
		}
	}
	for _, p := range after.paths {
		if _, ok := before.values[p]; !ok {
			result.Added = append(result.Added, ValueDiff{Path: p, NewValue: after.values[p]})
		}
	}
	return result
}

func runDiff(args []string) error {
	file1 := args[0]
	file2 := args[1]

	printVerbose("Comparing %s and %s...\n", file1, file2)

	v1, release1, err := openValue(file1, diffPath)
	if err != nil {
		return err
	}
	defer release1()
	v2, release2, err := openValue(file2, diffPath)
	if err != nil {
		return err
	}
	defer release2()

	if diffFormat == "unified" && !jsonOut {
		return printUnifiedDiff(file1, file2, v1, v2)
	}

	before, err := flatten(v1)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", file1, err)
	}
	after, err := flatten(v2)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", file2, err)
	}
	result := compare(before, after)

	// Output as JSON if requested
	if jsonOut || diffFormat == "json" {
		return printJSON(result)
	}

	printInfo("\nComparing %s and %s...\n\n", file1, file2)

	if len(result.Added) > 0 {
		printInfo("Added (%d):\n", len(result.Added))
		for _, d := range result.Added {
			printInfo("  %s %s = %s\n", addColor("+"), d.Path, d.NewValue)
		}
		printInfo("\n")
	}

	if len(result.Deleted) > 0 {
		printInfo("Deleted (%d):\n", len(result.Deleted))
		for _, d := range result.Deleted {
			printInfo("  %s %s = %s\n", delColor("-"), d.Path, d.OldValue)
		}
		printInfo("\n")
	}

	if len(result.Modified) > 0 {
		printInfo("Modified (%d):\n", len(result.Modified))
		for _, d := range result.Modified {
			printInfo("  %s %s: %s → %s\n", modColor("~"), d.Path, d.OldValue, d.NewValue)
		}
		printInfo("\n")
	}

	printInfo("Summary: +%d -%d ~%d\n", len(result.Added), len(result.Deleted), len(result.Modified))
	return nil
}

// printUnifiedDiff renders both sides as text and prints a line diff.
func printUnifiedDiff(file1, file2 string, v1, v2 tomldoc.Value) error {
	text1, err := renderText(v1)
	if err != nil {
		return err
	}
	text2, err := renderText(v2)
	if err != nil {
		return err
	}

	dmp := diffmatchpatch.New()
	chars1, chars2, lines := dmp.DiffLinesToChars(text1, text2)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(chars1, chars2, false), lines)

	printInfo("--- %s\n", file1)
	printInfo("+++ %s\n", file2)
	for _, d := range diffs {
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			line = strings.TrimSuffix(line, "\n")
			switch d.Type {
			case diffmatchpatch.DiffInsert:
				printInfo("%s\n", addColor("+"+line))
			case diffmatchpatch.DiffDelete:
				printInfo("%s\n", delColor("-"+line))
			default:
				printInfo(" %s\n", line)
			}
		}
	}
	return nil
}

func renderText(v tomldoc.Value) (string, error) {
	var buf bytes.Buffer
	if err := printer.New(&buf, printer.DefaultOptions()).PrintValue(v); err != nil {
		return "", err
	}
	return buf.String(), nil
}
