package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/tomlkit/internal/logger"
	"github.com/joshuapare/tomlkit/pkg/types"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	args := os.Args[1:]
	debugMode := false
	noMmap := false

	// Extract flags that may appear anywhere
	filteredArgs := make([]string, 0, len(args))
	for _, arg := range args {
		switch arg {
		case "--debug", "-d":
			debugMode = true
		case "--no-mmap":
			noMmap = true
		default:
			filteredArgs = append(filteredArgs, arg)
		}
	}

	// Initialize logger (must be before any logging calls)
	if err := logger.Init(logger.Options{
		Enabled: debugMode,
		Level:   slog.LevelDebug,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
	}

	if len(filteredArgs) < 1 {
		printUsage()
		os.Exit(1)
	}

	if filteredArgs[0] == "--help" || filteredArgs[0] == "-h" {
		printHelp()
		os.Exit(0)
	}

	if filteredArgs[0] == "--version" || filteredArgs[0] == "-v" {
		fmt.Printf("tomlexplorer %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
		os.Exit(0)
	}

	docPath := filteredArgs[0]
	logger.Info("starting tomlexplorer", "path", docPath, "debug", debugMode)

	if _, err := os.Stat(docPath); err != nil {
		logger.Error("document not found", "path", docPath, "error", err)
		fmt.Fprintf(os.Stderr, "Error: file not found: %s\n", docPath)
		os.Exit(1)
	}

	released := false
	m := NewModel(docPath, &types.ParseOptions{
		NoMmap:    noMmap,
		OnRelease: func() { released = true },
	})

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	finalModel, err := p.Run()
	if err != nil {
		logger.Error("TUI error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}

	if model, ok := finalModel.(Model); ok {
		if err := model.Close(); err != nil {
			logger.Warn("error closing views", "error", err)
		}
	}

	logger.Info("tomlexplorer exited normally", "released", released)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: tomlexplorer [options] <file.toml>\n")
	fmt.Fprintf(os.Stderr, "Try 'tomlexplorer --help' for more information.\n")
}

func printHelp() {
	fmt.Println("tomlexplorer - Interactive TUI for TOML documents")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  tomlexplorer [options] <file.toml>")
	fmt.Println()
	fmt.Println("DESCRIPTION:")
	fmt.Println("  Browses a TOML document one table or array at a time. Keys are listed")
	fmt.Println("  in declaration order; the status bar shows the live view count.")
	fmt.Println()
	fmt.Println("  Navigation:")
	fmt.Println("    ↑/k, ↓/j       Navigate up/down")
	fmt.Println("    →/l, Enter     Open table, array or value")
	fmt.Println("    ←/h, Esc       Back to parent")
	fmt.Println("    c, y           Copy path, copy value")
	fmt.Println("    ?              Show help")
	fmt.Println("    q              Quit")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -d, --debug    Enable debug logging to ~/.tomlkit/logs/")
	fmt.Println("      --no-mmap  Read the file instead of memory-mapping it")
	fmt.Println("  -h, --help     Show this help message")
	fmt.Println("  -v, --version  Show version information")
	fmt.Println()
	fmt.Println("For non-interactive operations, use the 'tomlctl' command instead.")
}
