package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/joshuapare/tomlkit/internal/logger"
	"github.com/joshuapare/tomlkit/pkg/host"
	"github.com/joshuapare/tomlkit/pkg/types"
	"github.com/joshuapare/tomlkit/tomldoc"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	noColor    bool
	logToFile  bool
	maxDecode  int
	useReadAll bool
)

var rootCmd = &cobra.Command{
	Use:   "tomlctl",
	Short: "Inspect TOML documents",
	Long: `tomlctl is a tool for inspecting TOML documents. It can resolve
dotted paths, list keys in declaration order, report value kinds and
lengths, dump whole documents as text, JSON or YAML, and compare two
documents.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupColor()
		return setupLogging()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output (debug trace on stderr)")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&logToFile, "log", false, "Write a debug log to ~/.tomlkit/logs")
	rootCmd.PersistentFlags().
		IntVar(&maxDecode, "max-decode", 0, "Largest string or timestamp to decode in bytes (0 = no limit)")
	rootCmd.PersistentFlags().BoolVar(&useReadAll, "no-mmap", false, "Read files instead of memory-mapping them")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

func setupColor() {
	color.NoColor = noColor ||
		!(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))
}

func setupLogging() error {
	switch {
	case logToFile:
		return logger.Init(logger.Options{Enabled: true, Level: slog.LevelDebug})
	case verbose && !quiet:
		return logger.Init(logger.Options{Enabled: true, Writer: os.Stderr, Level: slog.LevelDebug})
	default:
		return logger.Init(logger.Options{})
	}
}

var (
	keyColor   = color.New(color.FgCyan).SprintFunc()
	kindColor  = color.New(color.FgYellow).SprintFunc()
	addColor   = color.New(color.FgGreen).SprintFunc()
	delColor   = color.New(color.FgRed).SprintFunc()
	modColor   = color.New(color.FgMagenta).SprintFunc()
	titleColor = color.New(color.Bold).SprintFunc()
)

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// parseOptions builds document options from the global flags.
func parseOptions() *types.ParseOptions {
	return &types.ParseOptions{MaxDecodeBytes: maxDecode, NoMmap: useReadAll}
}

// openDoc parses the document at path.
func openDoc(path string) (*tomldoc.Table, error) {
	printVerbose("Parsing: %s\n", path)
	doc, err := host.ParsePath(path, parseOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}

// openValue parses file and resolves path in it; an empty path selects the
// root table. release closes every view that was opened.
func openValue(file, path string) (v tomldoc.Value, release func(), err error) {
	doc, err := openDoc(file)
	if err != nil {
		return tomldoc.Value{}, nil, err
	}
	if path == "" {
		return tomldoc.TableValue(doc), func() { doc.Close() }, nil
	}
	v, err = doc.Lookup(path)
	if err != nil {
		doc.Close()
		return tomldoc.Value{}, nil, fmt.Errorf("failed to resolve %q: %w", path, err)
	}
	if v.IsAbsent() {
		doc.Close()
		return tomldoc.Value{}, nil, fmt.Errorf("%q not found in %s", path, file)
	}
	return v, func() {
		v.Close()
		doc.Close()
	}, nil
}
