package writer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileWriter_WriteDoc(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.yaml")
	require.NoError(t, os.WriteFile(path, []byte("old contents\n"), 0o600))

	w := &FileWriter{Path: path}
	require.NoError(t, w.WriteDoc([]byte("title: demo\n")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "title: demo\n", string(got))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	// No temp files are left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileWriter_MissingDir(t *testing.T) {
	w := &FileWriter{Path: filepath.Join(t.TempDir(), "nope", "out.json")}
	err := w.WriteDoc([]byte("{}"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create temp file")
}

func TestBuffer_Flush(t *testing.T) {
	var b Buffer
	b.WriteString("a = 1\n")

	var mem MemWriter
	require.NoError(t, b.Flush(&mem))
	assert.Equal(t, "a = 1\n", string(mem.Buf))

	var out bytes.Buffer
	require.NoError(t, b.Flush(StreamWriter{W: &out}))
	assert.Equal(t, "a = 1\n", out.String())
}
