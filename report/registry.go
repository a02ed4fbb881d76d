// ABOUTME: Registry for unreachability log codecs
// ABOUTME: Manages codec plugins and selects the codec for an input

package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/prateek/lifelens/heap"
	"github.com/prateek/lifelens/sourcemap"
)

var (
	// ErrNoCodec is returned when no codec can handle the input
	ErrNoCodec = errors.New("no codec found for log format")

	// ErrUnknownFormat is returned when a named format is not registered
	ErrUnknownFormat = errors.New("unknown log format")
)

const previewSize = 4096

// codecRegistry holds registered codecs
type codecRegistry struct {
	mu     sync.RWMutex
	codecs []Codec
}

// Global registry instance
var registry = &codecRegistry{
	codecs: make([]Codec, 0),
}

// Register adds a codec to the registry
func Register(c Codec) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.codecs = append(registry.codecs, c)
}

// Names returns the registered format names in registration order
func Names() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	names := make([]string, 0, len(registry.codecs))
	for _, c := range registry.codecs {
		names = append(names, c.Name())
	}
	return names
}

// Lookup returns the codec registered under name.
// The most recently registered codec wins on duplicates.
func Lookup(name string) (Codec, error) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	for i := len(registry.codecs) - 1; i >= 0; i-- {
		if registry.codecs[i].Name() == name {
			return registry.codecs[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Detect returns the first codec that accepts the input together with a
// reader positioned at the start of the input
func Detect(r io.Reader) (Codec, io.Reader, error) {
	preview := make([]byte, previewSize)
	n, err := io.ReadFull(r, preview)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, nil, err
	}
	preview = preview[:n]

	registry.mu.RLock()
	defer registry.mu.RUnlock()

	for _, c := range registry.codecs {
		if c.CanDecode(bytes.NewReader(preview)) {
			return c, io.MultiReader(bytes.NewReader(preview), r), nil
		}
	}
	return nil, nil, ErrNoCodec
}

// Open reads a log using the first codec that accepts the input
func Open(r io.Reader, sm *sourcemap.SourceMap) (*heap.Log, error) {
	c, full, err := Detect(r)
	if err != nil {
		return nil, err
	}
	return c.Decode(full, sm)
}
