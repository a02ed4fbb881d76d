// ABOUTME: JSON codec for unreachability logs
// ABOUTME: Reads and writes {"unreachable": [...]} documents

package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/prateek/lifelens/heap"
	"github.com/prateek/lifelens/sourcemap"
)

// JSON is the codec for JSON logs
type JSON struct{}

// Name returns "json"
func (c *JSON) Name() string { return "json" }

// CanDecode checks for a top-level object with an "unreachable" key.
// Keys before it are skipped; a preview cut inside one of them is rejected.
func (c *JSON) CanDecode(r io.Reader) bool {
	buf, err := io.ReadAll(io.LimitReader(r, previewSize))
	if err != nil || len(bytes.TrimSpace(buf)) == 0 {
		return false
	}

	dec := json.NewDecoder(bytes.NewReader(buf))
	tok, err := dec.Token()
	if err != nil || tok != json.Delim('{') {
		return false
	}
	for dec.More() {
		key, err := dec.Token()
		if err != nil {
			return false
		}
		if key == "unreachable" {
			return true
		}
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return false
		}
	}
	return false
}

// Decode reads a JSON log
func (c *JSON) Decode(r io.Reader, sm *sourcemap.SourceMap) (*heap.Log, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}
	return buildLog(doc, sm)
}

// Encode writes an indented JSON log
func (c *JSON) Encode(w io.Writer, recs []heap.Unreachability) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(buildDocument(recs)); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func init() {
	Register(&JSON{})
}
