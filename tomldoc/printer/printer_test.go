package printer

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/joshuapare/tomlkit/tomldoc"
)

const testDoc = `
title = "demo"
count = 3

[server]
host = "localhost"
ports = [ 80, 443 ]

[[users]]
name = "ann"
when = 1979-05-27
`

func parseTestDoc(t *testing.T, text string) *tomldoc.Table {
	t.Helper()
	doc, err := tomldoc.Parse(text, nil)
	require.NoError(t, err)
	t.Cleanup(func() { doc.Close() })
	return doc
}

func render(t *testing.T, doc *tomldoc.Table, opts Options) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, New(&buf, opts).PrintTable(doc))
	assert.EqualValues(t, 1, doc.Refs(), "printing must release every view it opens")
	return buf.String()
}

func TestPrinter_Text(t *testing.T) {
	doc := parseTestDoc(t, testDoc)
	out := render(t, doc, DefaultOptions())

	want := `title = "demo"
count = 3
server: TOML Table (len = 2)
  host = "localhost"
  ports: TOML Array (len = 2)
    [1] = 80
    [2] = 443
users: TOML Array (len = 1)
  [1]: TOML Table (len = 2)
    name = "ann"
    when = 1979-05-27
`
	assert.Equal(t, want, out)
}

func TestPrinter_TextOptions(t *testing.T) {
	doc := parseTestDoc(t, "s = \"abcdefghij\"\nf = 2.0\n[a.b]\nc = 1\n")

	opts := DefaultOptions()
	opts.ShowTypes = true
	opts.MaxStringBytes = 4
	opts.MaxDepth = 1
	out := render(t, doc, opts)

	assert.Contains(t, out, `s = "abcd"... (truncated, 10 total bytes) [string]`)
	assert.Contains(t, out, "f = 2.0 [float]")
	assert.Contains(t, out, "a: TOML Table (len = 1)")
	assert.NotContains(t, out, "b:", "MaxDepth stops expansion")
}

func TestPrinter_JSON(t *testing.T) {
	doc := parseTestDoc(t, testDoc)
	opts := DefaultOptions()
	opts.Format = FormatJSON
	out := render(t, doc, opts)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "demo", decoded["title"])
	assert.EqualValues(t, 3, decoded["count"])
	users := decoded["users"].([]any)
	require.Len(t, users, 1)
	assert.Equal(t, "1979-05-27", users[0].(map[string]any)["when"])

	// Declaration order survives.
	assert.Less(t, strings.Index(out, `"title"`), strings.Index(out, `"count"`))
	assert.Less(t, strings.Index(out, `"count"`), strings.Index(out, `"server"`))
	assert.Contains(t, out, "\n  \"server\": {\n    \"host\": \"localhost\",")
}

func TestPrinter_JSONSpecialFloats(t *testing.T) {
	doc := parseTestDoc(t, "a = inf\nb = nan\nc = -inf\n")
	opts := DefaultOptions()
	opts.Format = FormatJSON
	out := render(t, doc, opts)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, map[string]any{"a": "inf", "b": "nan", "c": "-inf"}, decoded)
}

func TestPrinter_YAML(t *testing.T) {
	doc := parseTestDoc(t, testDoc)
	opts := DefaultOptions()
	opts.Format = FormatYAML
	out := render(t, doc, opts)

	assert.True(t, strings.HasPrefix(out, "title: demo\ncount: 3\nserver:\n"), out)
	assert.Contains(t, out, "host: localhost")

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, 3, decoded["count"])
	server := decoded["server"].(map[string]any)
	assert.Equal(t, []any{80, 443}, server["ports"])
}

func TestPrinter_YAMLQuotesAmbiguousStrings(t *testing.T) {
	doc := parseTestDoc(t, "flag = \"true\"\nnum = \"42\"\n")
	opts := DefaultOptions()
	opts.Format = FormatYAML
	out := render(t, doc, opts)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "true", decoded["flag"])
	assert.Equal(t, "42", decoded["num"])
}

func TestPrinter_PrintValue(t *testing.T) {
	doc := parseTestDoc(t, testDoc)

	v, err := doc.Get("title")
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, New(&buf, DefaultOptions()).PrintValue(v))
	assert.Equal(t, "\"demo\"\n", buf.String())

	ports, err := doc.Lookup("server.ports")
	require.NoError(t, err)
	defer ports.Close()
	arr, _ := ports.Array()

	buf.Reset()
	opts := DefaultOptions()
	opts.Format = FormatJSON
	require.NoError(t, New(&buf, opts).PrintArray(arr))
	assert.JSONEq(t, "[80, 443]", buf.String())
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"text", "json", "yaml"} {
		f, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, Format(name), f)
	}
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}
