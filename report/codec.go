// ABOUTME: Codec interface and shared document layout for unreachability logs
// ABOUTME: Converts between persisted entries and heap records

package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/prateek/lifelens/heap"
	"github.com/prateek/lifelens/sourcemap"
)

// Codec reads and writes one persisted log format
type Codec interface {
	// Name is the format name used in configuration
	Name() string

	// CanDecode checks if this codec can handle the input.
	// The reader is a preview and may end before the document does.
	CanDecode(r io.Reader) bool

	// Decode reads a complete log. Entries carrying a raw trace location
	// are resolved through sm; a nil sm resolves them all to Unknown.
	Decode(r io.Reader, sm *sourcemap.SourceMap) (*heap.Log, error)

	// Encode writes records in the given order
	Encode(w io.Writer, recs []heap.Unreachability) error
}

var errNoLocation = errors.New("entry has neither loc nor raw")

// document is the persisted layout shared by all codecs
type document struct {
	Unreachable []entry `json:"unreachable" yaml:"unreachable"`
}

// entry is one persisted record
type entry struct {
	Obj  heap.ObjID     `json:"obj" yaml:"obj"`
	Loc  string         `json:"loc,omitempty" yaml:"loc,omitempty"`
	Raw  string         `json:"raw,omitempty" yaml:"raw,omitempty"`
	Time heap.Timestamp `json:"time" yaml:"time"`
}

func (e entry) location(sm *sourcemap.SourceMap) (sourcemap.SourceLocID, error) {
	switch {
	case e.Loc != "":
		return sourcemap.ParseSourceLocID(e.Loc)
	case e.Raw != "":
		raw, err := sourcemap.ParseRawLoc(e.Raw)
		if err != nil {
			return sourcemap.SourceLocID{}, err
		}
		if sm == nil {
			return sourcemap.Unknown, nil
		}
		return sm.MustResolve(raw), nil
	default:
		return sourcemap.SourceLocID{}, errNoLocation
	}
}

// buildLog converts a decoded document into a log
func buildLog(doc document, sm *sourcemap.SourceMap) (*heap.Log, error) {
	log := heap.NewLog()
	for i, e := range doc.Unreachable {
		slID, err := e.location(sm)
		if err != nil {
			return nil, fmt.Errorf("entry at index %d: %w", i, err)
		}
		log.Add(heap.NewUnreachability(e.Obj, slID, e.Time))
	}
	return log, nil
}

// buildDocument converts records into the persisted layout
func buildDocument(recs []heap.Unreachability) document {
	doc := document{Unreachable: make([]entry, 0, len(recs))}
	for _, u := range recs {
		doc.Unreachable = append(doc.Unreachable, entry{
			Obj:  u.ObjID,
			Loc:  u.SLID.String(),
			Time: u.Time,
		})
	}
	return doc
}
