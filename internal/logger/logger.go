// Package logger is the slog sink shared by tomldoc, tomlctl and
// tomlexplorer. Library code logs through the package helpers; only the
// binaries call Init.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// L receives every record. It stays silent until a binary calls Init, so
// importing tomldoc never writes anything on its own.
var L = slog.New(slog.NewTextHandler(io.Discard, nil))

const (
	filePrefix = "tomlkit-"
	fileExt    = ".log"
	dayLayout  = "2006-01-02"
	keepDays   = 30
)

// Options selects where records go.
type Options struct {
	Enabled bool
	// Writer gets plain text records, e.g. os.Stderr for tomlctl --trace.
	Writer io.Writer
	// LogDir holds one JSON file per day when Writer is nil.
	// Empty means ~/.tomlkit/logs.
	LogDir string
	Level  slog.Level
}

// Init swaps L for a logger built from opts. A disabled Options value
// restores the silent default, which tests use for cleanup.
func Init(opts Options) error {
	h, err := handlerFor(opts, time.Now())
	if err != nil {
		return err
	}
	L = slog.New(h)
	return nil
}

func handlerFor(opts Options, now time.Time) (slog.Handler, error) {
	if !opts.Enabled {
		return slog.NewTextHandler(io.Discard, nil), nil
	}
	hopts := &slog.HandlerOptions{Level: opts.Level}
	if opts.Writer != nil {
		return slog.NewTextHandler(opts.Writer, hopts), nil
	}
	f, err := openDaily(opts.LogDir, now)
	if err != nil {
		return nil, err
	}
	return slog.NewJSONHandler(f, hopts), nil
}

// openDaily opens today's file under dir for appending, after pruning
// files past keepDays.
func openDaily(dir string, now time.Time) (*os.File, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(home, ".tomlkit", "logs")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	pruneLogs(dir, now)

	name := filepath.Join(dir, filePrefix+now.Format(dayLayout)+fileExt)
	return os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}

// pruneLogs deletes tomlkit-<day>.log files older than keepDays. Other
// files in dir are left alone and failures are ignored.
func pruneLogs(dir string, now time.Time) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	cutoff := now.AddDate(0, 0, -keepDays)
	for _, e := range entries {
		if day, ok := fileDay(e.Name()); ok && day.Before(cutoff) {
			_ = os.Remove(filepath.Join(dir, e.Name()))
		}
	}
}

func fileDay(name string) (time.Time, bool) {
	rest, ok := strings.CutPrefix(name, filePrefix)
	if !ok {
		return time.Time{}, false
	}
	rest, ok = strings.CutSuffix(rest, fileExt)
	if !ok {
		return time.Time{}, false
	}
	day, err := time.Parse(dayLayout, rest)
	return day, err == nil
}

// Level helpers log through L.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }
func Info(msg string, args ...any) { L.Info(msg, args...) }
func Warn(msg string, args ...any) { L.Warn(msg, args...) }
func Error(msg string, args ...any) { L.Error(msg, args...) }
