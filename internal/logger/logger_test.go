package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_Disabled(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Options{Enabled: false, Writer: &buf}))
	Info("dropped")
	assert.Empty(t, buf.String())
}

func TestInit_Writer(t *testing.T) {
	t.Cleanup(func() { _ = Init(Options{}) })

	var buf bytes.Buffer
	require.NoError(t, Init(Options{Enabled: true, Writer: &buf, Level: slog.LevelDebug}))
	Debug("view created", "refs", 2)
	assert.Contains(t, buf.String(), "view created")
	assert.Contains(t, buf.String(), "refs=2")
}

func TestInit_LogDir(t *testing.T) {
	t.Cleanup(func() { _ = Init(Options{}) })

	dir := t.TempDir()
	require.NoError(t, Init(Options{Enabled: true, LogDir: dir}))
	Warn("hello")

	name := filePrefix + time.Now().Format(dayLayout) + fileExt
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}

func TestPruneLogs(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	old := filePrefix + "2024-01-01" + fileExt
	recent := filePrefix + "2024-02-25" + fileExt
	other := "notes.txt"
	for _, n := range []string{old, recent, other} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), nil, 0o644))
	}

	pruneLogs(dir, now)

	assert.NoFileExists(t, filepath.Join(dir, old))
	assert.FileExists(t, filepath.Join(dir, recent))
	assert.FileExists(t, filepath.Join(dir, other))
}

func TestFileDay(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{"tomlkit-2024-01-05.log", true},
		{"tomlkit-2024-01-05.txt", false},
		{"other-2024-01-05.log", false},
		{"tomlkit-today.log", false},
	}
	for _, tt := range tests {
		day, ok := fileDay(tt.name)
		assert.Equal(t, tt.ok, ok, tt.name)
		if ok {
			assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), day)
		}
	}
}
