package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDumpCommand(t *testing.T) {
	file := writeTOML(t, "example.toml", testDocument)

	tests := []struct {
		name           string
		path           string
		format         string
		depth          int
		showTypes      bool
		wantJSON       bool
		wantErr        bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name:        "text",
			format:      "text",
			wantContain: []string{`title = "TOML Example"`, "owner: TOML Table (len = 2)", "    [1] = 8000"},
		},
		{
			name:           "depth limited",
			format:         "text",
			depth:          1,
			wantContain:    []string{"servers: TOML Table (len = 2)"},
			wantNotContain: []string{"alpha"},
		},
		{
			name:        "show types",
			format:      "text",
			path:        "database",
			showTypes:   true,
			wantContain: []string{"enabled = true [bool]", "cpu = 79.5 [float]"},
		},
		{
			name:        "json",
			wantJSON:    true,
			wantContain: []string{`"dob": "1979-05-27T07:32:00.000-08:00"`},
		},
		{
			name:        "yaml",
			format:      "yaml",
			path:        "servers",
			wantContain: []string{"alpha:", "ip: 10.0.0.1"},
		},
		{
			name:    "missing path",
			format:  "text",
			path:    "nowhere",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			jsonOut = tt.wantJSON
			dumpFormat = tt.format
			if dumpFormat == "" {
				dumpFormat = "text"
			}
			dumpDepth = tt.depth
			dumpShowTypes = tt.showTypes
			dumpMaxString = 0

			args := []string{file}
			if tt.path != "" {
				args = append(args, tt.path)
			}
			output, err := captureOutput(t, func() error {
				return runDump(args)
			})

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantJSON {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}

func TestDumpCommand_YAMLRoundTrip(t *testing.T) {
	file := writeTOML(t, "example.toml", testDocument)
	resetFlags()
	dumpFormat = "yaml"
	dumpDepth = 0

	output, err := captureOutput(t, func() error {
		return runDump([]string{file})
	})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(output), &decoded))
	assert.Equal(t, "TOML Example", decoded["title"])
	db := decoded["database"].(map[string]any)
	assert.Equal(t, []any{8000, 8001, 8002}, db["ports"])
	assert.Equal(t, true, db["enabled"])
}

func TestDumpCommand_Quiet(t *testing.T) {
	file := writeTOML(t, "example.toml", testDocument)
	resetFlags()
	quiet = true
	dumpFormat = "text"

	output, err := captureOutput(t, func() error {
		return runDump([]string{file})
	})
	require.NoError(t, err)
	assert.Empty(t, output)
}

func TestDumpCommand_Output(t *testing.T) {
	file := writeTOML(t, "example.toml", testDocument)
	out := filepath.Join(t.TempDir(), "example.json")
	resetFlags()
	dumpFormat = "json"
	dumpDepth = 0
	dumpOutput = out
	t.Cleanup(func() { dumpOutput = "" })

	output, err := captureOutput(t, func() error {
		return runDump([]string{file, "servers"})
	})
	require.NoError(t, err)
	assert.Empty(t, output, "nothing goes to stdout when writing a file")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	alpha := decoded["alpha"].(map[string]any)
	assert.Equal(t, "10.0.0.1", alpha["ip"])
}
