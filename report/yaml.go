// ABOUTME: YAML codec for unreachability logs
// ABOUTME: Reads and writes documents with a top-level unreachable list

package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/prateek/lifelens/heap"
	"github.com/prateek/lifelens/sourcemap"
)

// YAML is the codec for YAML logs
type YAML struct{}

// Name returns "yaml"
func (c *YAML) Name() string { return "yaml" }

// CanDecode checks for an unindented "unreachable:" key in the preview
func (c *YAML) CanDecode(r io.Reader) bool {
	scanner := bufio.NewScanner(io.LimitReader(r, previewSize))
	for scanner.Scan() {
		if strings.HasPrefix(scanner.Text(), "unreachable:") {
			return true
		}
	}
	return false
}

// Decode reads a YAML log
func (c *YAML) Decode(r io.Reader, sm *sourcemap.SourceMap) (*heap.Log, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode YAML: %w", err)
	}
	return buildLog(doc, sm)
}

// Encode writes a YAML log
func (c *YAML) Encode(w io.Writer, recs []heap.Unreachability) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(buildDocument(recs)); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}

func init() {
	Register(&YAML{})
}
