// Package writer provides sinks for rendered documents.
package writer

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Sink receives a fully rendered document in one call.
type Sink interface {
	WriteDoc(data []byte) error
}

// FileWriter writes documents to a filesystem path atomically: readers of
// Path see either the old contents or the new ones, never a partial file.
type FileWriter struct {
	Path string
	Perm os.FileMode // zero means 0644
}

// WriteDoc writes data to a temp file next to Path, syncs it and renames it
// over Path.
func (w *FileWriter) WriteDoc(data []byte) error {
	dir := filepath.Dir(w.Path)
	tmpFile, err := os.CreateTemp(dir, ".tomlkit-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	perm := w.Perm
	if perm == 0 {
		perm = 0o644
	}
	if err := tmpFile.Chmod(perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	tmpFile = nil

	if err := os.Rename(tmpPath, w.Path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// StreamWriter passes documents straight through to an io.Writer.
type StreamWriter struct {
	W io.Writer
}

// WriteDoc implements Sink.
func (w StreamWriter) WriteDoc(data []byte) error {
	_, err := w.W.Write(data)
	return err
}

// Buffer collects output for a Sink. It is an io.Writer so renderers can
// stream into it; Flush hands the result to the sink in one piece.
type Buffer struct {
	bytes.Buffer
}

// Flush writes the buffered document to s.
func (b *Buffer) Flush(s Sink) error {
	return s.WriteDoc(b.Bytes())
}
