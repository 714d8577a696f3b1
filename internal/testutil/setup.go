// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/tomlkit/pkg/types"
	"github.com/joshuapare/tomlkit/tomldoc"
)

// FleetDoc exercises every slot kind: nested tables, an inline table, an
// array of tables and all four timestamp forms.
const FleetDoc = `
name = "fleet"
updated = 1979-05-27T07:32:00Z

[owner]
first = "Tom"
dob = 1979-05-27T07:32:00.999-08:00

[servers.alpha]
ip = "10.0.0.1"
ports = [ 8000, 8001 ]

[servers.beta]
ip = "10.0.0.2"
limits = { cpu = 2.5, mem = 512 }

[[crew]]
name = "Ann"
shift = 07:30:00

[[crew]]
name = "Bo"
since = 2020-01-02
local = 2020-01-02T08:00:00
`

// WriteFile writes data to name inside a fresh temp directory and returns
// the full path.
func WriteFile(t testing.TB, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// WriteDoc is WriteFile for TOML text.
func WriteDoc(t testing.TB, name, content string) string {
	t.Helper()
	return WriteFile(t, name, []byte(content))
}

// OpenDoc parses content and closes the root view when the test ends. A
// test that closes the view itself is fine: the second Close is ignored.
//
// Example:
//
//	doc := testutil.OpenDoc(t, testutil.FleetDoc, nil)
//	v, err := doc.Lookup("servers.alpha.ip")
func OpenDoc(t testing.TB, content string, opts *types.ParseOptions) *tomldoc.Table {
	t.Helper()
	doc, err := tomldoc.Parse(content, opts)
	if err != nil {
		t.Fatalf("failed to parse test document: %v", err)
	}
	t.Cleanup(func() { _ = doc.Close() })
	return doc
}

// UTF16 encodes s as UTF-16 with a leading byte order mark.
func UTF16(t testing.TB, s string, endian unicode.Endianness) []byte {
	t.Helper()
	out, err := unicode.UTF16(endian, unicode.UseBOM).NewEncoder().String(s)
	if err != nil {
		t.Fatalf("failed to encode UTF-16: %v", err)
	}
	return []byte(out)
}
