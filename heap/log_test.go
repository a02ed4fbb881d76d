// ABOUTME: Tests for the unreachability log
// ABOUTME: Validates ordering, per-object lookup and concurrent appends

package heap

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prateek/lifelens/sourcemap"
)

func loc(line int) sourcemap.SourceLocID {
	return sourcemap.SourceLocID{File: "t.js", Line: line, Col: 1}
}

func TestLogInsertionOrder(t *testing.T) {
	l := NewLog()
	l.Add(NewUnreachability(1, loc(1), 30))
	l.Add(NewUnreachability(2, loc(2), 10))
	l.Add(NewUnreachability(3, loc(3), 20))

	assert.Equal(t, 3, l.Len())

	var ids []ObjID
	l.ForEach(func(u Unreachability) {
		ids = append(ids, u.ObjID)
	})
	assert.Equal(t, []ObjID{1, 2, 3}, ids)

	recs := l.Records()
	require.Len(t, recs, 3)
	assert.Equal(t, ObjID(1), recs[0].ObjID)
}

func TestLogSortedIsStable(t *testing.T) {
	l := NewLog()
	l.Add(NewUnreachability(1, loc(1), 20))
	l.Add(NewUnreachability(2, loc(2), 10))
	l.Add(NewUnreachability(3, loc(3), 20))
	l.Add(NewUnreachability(4, loc(4), 10))

	var ids []ObjID
	for _, u := range l.Sorted() {
		ids = append(ids, u.ObjID)
	}
	assert.Equal(t, []ObjID{2, 4, 1, 3}, ids)

	// Sorting must not reorder the log itself
	assert.Equal(t, ObjID(1), l.Records()[0].ObjID)
}

func TestLogByObject(t *testing.T) {
	l := NewLog()
	l.Add(NewUnreachability(1, loc(1), 1))
	l.Add(NewUnreachability(2, loc(2), 2))
	l.Add(NewUnreachability(1, loc(3), 3))

	got := l.ByObject(1)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].SLID.Line)
	assert.Equal(t, 3, got[1].SLID.Line)

	assert.Nil(t, l.ByObject(99))
}

func TestLogRecordsIsCopy(t *testing.T) {
	l := NewLog()
	l.Add(NewUnreachability(1, loc(1), 1))

	recs := l.Records()
	recs[0] = NewUnreachability(9, loc(9), 9)

	assert.Equal(t, ObjID(1), l.Records()[0].ObjID)
}

func TestLogEmpty(t *testing.T) {
	l := NewLog()
	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.Records())
	assert.Empty(t, l.Sorted())
}

func TestLogConcurrentAdd(t *testing.T) {
	l := NewLog()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				l.Add(NewUnreachability(ObjID(id), loc(j), Timestamp(j)))
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1000, l.Len())
	for i := 0; i < 10; i++ {
		assert.Len(t, l.ByObject(ObjID(i)), 100)
	}
}
