package tomldoc_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/tomlkit/internal/testutil"
	"github.com/joshuapare/tomlkit/pkg/types"
	"github.com/joshuapare/tomlkit/tomldoc"
)

const nestedDoc = `
name = "fleet"

[servers.alpha]
ip = "10.0.0.1"
ports = [ 80, 443 ]

[servers."beta.local"]
ip = "10.0.0.2"

[[servers.alpha.disks]]
size = 100

[[servers.alpha.disks]]
size = 200
`

func TestLookup(t *testing.T) {
	doc := mustParse(t, nestedDoc, nil)
	defer doc.Close()

	tests := []struct {
		path string
		want any
	}{
		{"name", "fleet"},
		{"servers.alpha.ip", "10.0.0.1"},
		{`servers."beta.local".ip`, "10.0.0.2"},
		{"servers.alpha.ports[1]", int64(80)},
		{"servers.alpha.ports[0]", int64(443)},
		{"servers.alpha.disks[2].size", int64(200)},
		{"servers.alpha.disks[-1].size", int64(100)},
		{"[1]", "fleet"},
		{"servers.gamma.ip", nil},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			v, err := doc.Lookup(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Interface())
		})
	}
	assert.EqualValues(t, 1, doc.Refs(), "intermediate views must be released")
}

func TestLookup_ReturnsView(t *testing.T) {
	doc := mustParse(t, nestedDoc, nil)
	defer doc.Close()

	disks := mustArray(t)(doc.Lookup("servers.alpha.disks"))
	assert.EqualValues(t, 2, doc.Refs())

	v, err := disks.Lookup("[1].size")
	require.NoError(t, err)
	n, _ := v.Int()
	assert.EqualValues(t, 100, n)

	require.NoError(t, disks.Close())
	assert.EqualValues(t, 1, doc.Refs())
}

func TestLookup_Errors(t *testing.T) {
	doc := mustParse(t, nestedDoc, nil)
	defer doc.Close()

	_, err := doc.Lookup("name.first")
	assert.ErrorIs(t, err, types.ErrNotIndexable)

	_, err = doc.Lookup("servers.alpha.ports.first")
	assert.ErrorIs(t, err, types.ErrNotIndexable)

	_, err = doc.Lookup("servers.alpha.ports[3]")
	assert.ErrorIs(t, err, types.ErrIndexOutOfRange)

	_, err = doc.Lookup("servers..alpha")
	assert.ErrorIs(t, err, types.ErrArgument)

	assert.EqualValues(t, 1, doc.Refs(), "failed lookups must not leak views")
}

func TestWalk(t *testing.T) {
	doc := mustParse(t, nestedDoc, nil)
	defer doc.Close()

	var paths []string
	err := doc.Walk(func(path string, v tomldoc.Value) error {
		paths = append(paths, path+"="+v.Kind().String())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"name=string",
		"servers=table",
		"servers.alpha=table",
		"servers.alpha.ip=string",
		"servers.alpha.ports=array",
		"servers.alpha.ports[1]=int",
		"servers.alpha.ports[2]=int",
		"servers.alpha.disks=array",
		"servers.alpha.disks[1]=table",
		"servers.alpha.disks[1].size=int",
		"servers.alpha.disks[2]=table",
		"servers.alpha.disks[2].size=int",
		`servers."beta.local"=table`,
		`servers."beta.local".ip=string`,
	}, paths)
	assert.EqualValues(t, 1, doc.Refs())

	// Every reported path resolves through Lookup.
	for _, p := range paths {
		path := p[:strings.LastIndex(p, "=")]
		v, err := doc.Lookup(path)
		require.NoError(t, err, path)
		assert.False(t, v.IsAbsent(), path)
		require.NoError(t, v.Close())
	}
}

func TestWalk_SkipAndStop(t *testing.T) {
	doc := mustParse(t, nestedDoc, nil)
	defer doc.Close()

	var visited []string
	err := doc.Walk(func(path string, v tomldoc.Value) error {
		visited = append(visited, path)
		if path == "servers" {
			return tomldoc.SkipChildren
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "servers"}, visited)

	stop := errors.New("stop")
	err = doc.Walk(func(path string, v tomldoc.Value) error {
		if path == "servers.alpha.ip" {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.EqualValues(t, 1, doc.Refs())
}

func TestParseFile(t *testing.T) {
	path := testutil.WriteFile(t, "fleet.toml", []byte(nestedDoc))

	for _, noMmap := range []bool{false, true} {
		doc, err := tomldoc.ParseFile(path, &types.ParseOptions{NoMmap: noMmap})
		require.NoError(t, err)
		v, err := doc.Lookup("servers.alpha.ip")
		require.NoError(t, err)
		assert.Equal(t, "10.0.0.1", v.Interface())
		require.NoError(t, doc.Close())
	}
}

func TestParseFile_Encodings(t *testing.T) {
	const text = "name = \"Zoë\"\n"

	bom := testutil.WriteFile(t, "bom.toml", append([]byte{0xEF, 0xBB, 0xBF}, text...))
	wide := testutil.WriteFile(t, "wide.toml", testutil.UTF16(t, text, unicode.LittleEndian))
	big := testutil.WriteFile(t, "big.toml", testutil.UTF16(t, text, unicode.BigEndian))

	for _, path := range []string{bom, wide, big} {
		doc, err := tomldoc.ParseFile(path, nil)
		require.NoError(t, err, path)
		v, err := doc.Get("name")
		require.NoError(t, err)
		assert.Equal(t, "Zoë", v.Interface())
		require.NoError(t, doc.Close())
	}
}

func TestParseFile_Errors(t *testing.T) {
	_, err := tomldoc.ParseFile(filepath.Join(t.TempDir(), "missing.toml"), nil)
	assert.ErrorIs(t, err, types.ErrIO)
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := testutil.WriteFile(t, "bad.toml", []byte("a = \n"))
	_, err = tomldoc.ParseFile(bad, nil)
	assert.ErrorIs(t, err, types.ErrParse)

	large := testutil.WriteFile(t, "large.toml", []byte("a = 1\n"))
	_, err = tomldoc.ParseFile(large, &types.ParseOptions{MaxInputSize: 3})
	assert.ErrorIs(t, err, types.ErrIO)
}

func TestParseReader(t *testing.T) {
	doc, err := tomldoc.ParseReader(strings.NewReader("b = 1\na = 2"), nil)
	require.NoError(t, err)
	defer doc.Close()
	keys, err := doc.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, keys)

	_, err = tomldoc.ParseReader(strings.NewReader("a = 1"), &types.ParseOptions{MaxInputSize: 2})
	assert.ErrorIs(t, err, types.ErrIO)
}

func TestLookup_TimestampForms(t *testing.T) {
	doc := testutil.OpenDoc(t, testutil.FleetDoc, nil)

	tests := []struct {
		path string
		kind tomldoc.TimestampKind
		text string
	}{
		{path: "updated", kind: tomldoc.OffsetDateTime, text: "1979-05-27T07:32:00.000Z"},
		{path: "owner.dob", kind: tomldoc.OffsetDateTime, text: "1979-05-27T07:32:00.999-08:00"},
		{path: "crew[1].shift", kind: tomldoc.LocalTime, text: "07:30:00.000"},
		{path: "crew[2].since", kind: tomldoc.LocalDate, text: "2020-01-02"},
		{path: "crew[0].local", kind: tomldoc.LocalDateTime, text: "2020-01-02T08:00:00.000"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			v, err := doc.Lookup(tt.path)
			require.NoError(t, err)
			ts, ok := v.Timestamp()
			require.True(t, ok, "kind %s", v.Kind())
			assert.Equal(t, tt.kind, ts.Kind)
			assert.Equal(t, tt.text, ts.String())
		})
	}
	assert.EqualValues(t, 1, doc.Refs(), "lookups release intermediate views")
}
