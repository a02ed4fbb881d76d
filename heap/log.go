// ABOUTME: Concurrency-safe ordered log of unreachability records
// ABOUTME: Supports per-object lookup and stable time ordering

package heap

import (
	"cmp"
	"slices"
	"sync"
)

// Log collects unreachability records in insertion order
type Log struct {
	mu       sync.RWMutex
	records  []Unreachability
	byObject map[ObjID][]int
}

// NewLog creates an empty log
func NewLog() *Log {
	return &Log{
		byObject: make(map[ObjID][]int),
	}
}

// Add appends a record
func (l *Log) Add(u Unreachability) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.byObject[u.ObjID] = append(l.byObject[u.ObjID], len(l.records))
	l.records = append(l.records, u)
}

// Len returns the number of records
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}

// ForEach iterates over records in insertion order
func (l *Log) ForEach(fn func(Unreachability)) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, u := range l.records {
		fn(u)
	}
}

// ByObject returns the records for one object in insertion order
func (l *Log) ByObject(id ObjID) []Unreachability {
	l.mu.RLock()
	defer l.mu.RUnlock()

	idx := l.byObject[id]
	if len(idx) == 0 {
		return nil
	}
	result := make([]Unreachability, len(idx))
	for i, n := range idx {
		result[i] = l.records[n]
	}
	return result
}

// Records returns a copy of the records in insertion order
func (l *Log) Records() []Unreachability {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.records)
}

// Sorted returns a copy ordered by timestamp. Equal timestamps keep
// insertion order.
func (l *Log) Sorted() []Unreachability {
	result := l.Records()
	SortByTime(result)
	return result
}

// SortByTime orders records by timestamp in place, keeping the relative
// order of equal timestamps
func SortByTime(recs []Unreachability) {
	slices.SortStableFunc(recs, func(a, b Unreachability) int {
		return cmp.Compare(a.Time, b.Time)
	})
}
