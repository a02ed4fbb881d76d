package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prateek/lifelens/sourcemap"
)

const sample = `
input: file:///tmp/unreach.json
format: json
sort: insertion
object: 7
sourcemap:
  scripts:
    1: foo.js
  mappings:
    - {sid: 1, iid: 10, line: 10, col: 3}
metrics:
  textfile: /tmp/lifelens.prom
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file:///tmp/unreach.json", c.Input)
	assert.Equal(t, FormatJSON, c.Format)
	assert.Equal(t, FormatJSON, c.OutputFormat)
	assert.Equal(t, SortInsertion, c.Sort)
	assert.Equal(t, 7, c.Object)
	assert.Equal(t, "/tmp/lifelens.prom", c.Metrics.Textfile)

	sm := c.BuildSourceMap()
	id, ok := sm.Resolve(sourcemap.RawLoc{SID: 1, IID: 10})
	require.True(t, ok)
	assert.Equal(t, "foo.js:10:3", id.String())
}

func TestReadSkipsValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("sort: insertion\n"), 0o644))

	c, err := Read(path)
	require.NoError(t, err)
	assert.Empty(t, c.Input)
	assert.Empty(t, c.Format)

	_, err = Load(path)
	assert.EqualError(t, err, "input is required")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestParseDefaults(t *testing.T) {
	c, err := Parse([]byte("input: log.json\n"))
	require.NoError(t, err)

	assert.Equal(t, FormatAuto, c.Format)
	assert.Equal(t, FormatJSON, c.OutputFormat)
	assert.Equal(t, SortTime, c.Sort)
	assert.Zero(t, c.Object)
	assert.Equal(t, 0, c.BuildSourceMap().NumScripts())
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		description string
		input       string
		errContains string
	}{
		{description: "no input", input: "format: json\n", errContains: "input is required"},
		{description: "bad format", input: "input: a\nformat: xml\n", errContains: `unsupported format "xml"`},
		{description: "bad output format", input: "input: a\noutput_format: csv\n", errContains: "unsupported output_format"},
		{description: "bad sort", input: "input: a\nsort: size\n", errContains: `unsupported sort "size"`},
		{description: "bad yaml", input: "input: [\n", errContains: "yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}
