// ABOUTME: Source location value types shared by trace consumers
// ABOUTME: Defines SourceLocID and the raw sid:iid form found in traces

package sourcemap

import (
	"fmt"
	"strconv"
	"strings"
)

// SourceLocID identifies a position in program source
type SourceLocID struct {
	File string // Script file name
	Line int    // 1-based line, 0 when unknown
	Col  int    // 1-based column, 0 when unknown
}

// Unknown is returned for trace locations with no mapping
var Unknown = SourceLocID{File: "<unknown>"}

// String renders the location as file:line:col
func (id SourceLocID) String() string {
	return fmt.Sprintf("%s:%d:%d", id.File, id.Line, id.Col)
}

// ParseSourceLocID parses the file:line:col form produced by String.
// The file part may itself contain colons.
func ParseSourceLocID(s string) (SourceLocID, error) {
	colIdx := strings.LastIndexByte(s, ':')
	if colIdx < 0 {
		return SourceLocID{}, fmt.Errorf("invalid source location %q: missing column", s)
	}
	lineIdx := strings.LastIndexByte(s[:colIdx], ':')
	if lineIdx < 0 {
		return SourceLocID{}, fmt.Errorf("invalid source location %q: missing line", s)
	}

	line, err := strconv.Atoi(s[lineIdx+1 : colIdx])
	if err != nil {
		return SourceLocID{}, fmt.Errorf("invalid line in source location %q: %w", s, err)
	}
	col, err := strconv.Atoi(s[colIdx+1:])
	if err != nil {
		return SourceLocID{}, fmt.Errorf("invalid column in source location %q: %w", s, err)
	}

	return SourceLocID{File: s[:lineIdx], Line: line, Col: col}, nil
}

// RawLoc is a location as written by the tracer: script id and instruction id
type RawLoc struct {
	SID int
	IID int
}

// UnknownRaw is the tracer's sentinel for an unknown location
var UnknownRaw = RawLoc{SID: 0, IID: -1}

// String renders the location as sid:iid
func (r RawLoc) String() string {
	return strconv.Itoa(r.SID) + ":" + strconv.Itoa(r.IID)
}

// ParseRawLoc parses the sid:iid form
func ParseRawLoc(s string) (RawLoc, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return RawLoc{}, fmt.Errorf("invalid raw location %q: want sid:iid", s)
	}
	sid, err := strconv.Atoi(parts[0])
	if err != nil {
		return RawLoc{}, fmt.Errorf("invalid script id in %q: %w", s, err)
	}
	iid, err := strconv.Atoi(parts[1])
	if err != nil {
		return RawLoc{}, fmt.Errorf("invalid instruction id in %q: %w", s, err)
	}
	return RawLoc{SID: sid, IID: iid}, nil
}
