// ABOUTME: In-memory source map fed by script and mapping trace facts
// ABOUTME: Resolves raw sid:iid trace locations to file:line:col

package sourcemap

import "sync"

// position is the start of an instrumented instruction
type position struct {
	line int
	col  int
}

// SourceMap maps raw trace locations to source locations
type SourceMap struct {
	mu       sync.RWMutex
	scripts  map[int]string
	mappings map[RawLoc]position
}

// New creates an empty source map
func New() *SourceMap {
	return &SourceMap{
		scripts:  make(map[int]string),
		mappings: make(map[RawLoc]position),
	}
}

// AddScript records the file name for a script id.
// A later call for the same id replaces the name.
func (m *SourceMap) AddScript(sid int, file string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scripts[sid] = file
}

// AddMapping records the start position of instruction iid in script sid
func (m *SourceMap) AddMapping(sid, iid, line, col int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mappings[RawLoc{SID: sid, IID: iid}] = position{line: line, col: col}
}

// NumScripts returns the number of known scripts
func (m *SourceMap) NumScripts() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.scripts)
}

// Resolve looks up a raw location. Both the script and the instruction
// must be known.
func (m *SourceMap) Resolve(raw RawLoc) (SourceLocID, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	file, ok := m.scripts[raw.SID]
	if !ok {
		return SourceLocID{}, false
	}
	pos, ok := m.mappings[raw]
	if !ok {
		return SourceLocID{}, false
	}
	return SourceLocID{File: file, Line: pos.line, Col: pos.col}, true
}

// MustResolve is Resolve with Unknown as the fallback
func (m *SourceMap) MustResolve(raw RawLoc) SourceLocID {
	if id, ok := m.Resolve(raw); ok {
		return id
	}
	return Unknown
}
