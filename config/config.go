package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/prateek/lifelens/sourcemap"
)

const (
	FormatAuto = "auto"
	FormatJSON = "json"
	FormatYAML = "yaml"

	SortTime      = "time"
	SortInsertion = "insertion"
)

type MappingConfig struct {
	SID  int `yaml:"sid"`
	IID  int `yaml:"iid"`
	Line int `yaml:"line"`
	Col  int `yaml:"col"`
}

// SourceMapConfig seeds the source map used to resolve raw sid:iid entries
type SourceMapConfig struct {
	Scripts  map[int]string  `yaml:"scripts"` // script id -> file name
	Mappings []MappingConfig `yaml:"mappings"`
}

type MetricsConfig struct {
	Textfile string `yaml:"textfile"` // prometheus textfile path, empty disables
}

type Config struct {
	Input        string          `yaml:"input"`         // URL or local path
	Format       string          `yaml:"format"`        // auto | json | yaml
	Output       string          `yaml:"output"`        // empty prints to stdout
	OutputFormat string          `yaml:"output_format"` // json | yaml
	Sort         string          `yaml:"sort"`          // time | insertion
	Object       int             `yaml:"object"`        // non-zero filters to one object
	SourceMap    SourceMapConfig `yaml:"sourcemap"`
	Metrics      MetricsConfig   `yaml:"metrics"`
}

// Load reads a config file, applies defaults and validates it
func Load(path string) (Config, error) {
	c, err := Read(path)
	if err != nil {
		return Config{}, err
	}
	c.ApplyDefaults()
	return c, c.Validate()
}

// Read decodes a config file as-is, for callers that override fields
// before calling ApplyDefaults and Validate
func Read(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Parse decodes config bytes, applies defaults and validates the result
func Parse(b []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return Config{}, err
	}
	c.ApplyDefaults()
	return c, c.Validate()
}

// ApplyDefaults fills unset fields
func (c *Config) ApplyDefaults() {
	if c.Format == "" {
		c.Format = FormatAuto
	}
	if c.OutputFormat == "" {
		c.OutputFormat = FormatJSON
	}
	if c.Sort == "" {
		c.Sort = SortTime
	}
}

// Validate reports the first invalid setting
func (c Config) Validate() error {
	if c.Input == "" {
		return errors.New("input is required")
	}
	switch c.Format {
	case FormatAuto, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unsupported format %q", c.Format)
	}
	switch c.OutputFormat {
	case FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unsupported output_format %q", c.OutputFormat)
	}
	switch c.Sort {
	case SortTime, SortInsertion:
	default:
		return fmt.Errorf("unsupported sort %q", c.Sort)
	}
	return nil
}

// BuildSourceMap creates a source map from the configured scripts and mappings
func (c Config) BuildSourceMap() *sourcemap.SourceMap {
	sm := sourcemap.New()
	for sid, file := range c.SourceMap.Scripts {
		sm.AddScript(sid, file)
	}
	for _, m := range c.SourceMap.Mappings {
		sm.AddMapping(m.SID, m.IID, m.Line, m.Col)
	}
	return sm
}
