// ABOUTME: Unreachability fact produced by lifetime analysis of a trace
// ABOUTME: Immutable value carrying object id, source location and timestamp

package heap

import (
	"strconv"

	"github.com/prateek/lifelens/sourcemap"
)

// ObjID identifies a traced heap object. Its meaning is owned by the tracer.
type ObjID int

// Timestamp orders trace events
type Timestamp int64

// Unreachability records that an object became unreachable at a source
// location and time. Values are never modified after construction.
type Unreachability struct {
	ObjID ObjID
	SLID  sourcemap.SourceLocID
	Time  Timestamp
}

// NewUnreachability creates a record. No input is rejected.
func NewUnreachability(objID ObjID, slID sourcemap.SourceLocID, time Timestamp) Unreachability {
	return Unreachability{ObjID: objID, SLID: slID, Time: time}
}

// String renders the record for diagnostics. The timestamp is not included.
func (u Unreachability) String() string {
	return "Unreachability{obj=" + strconv.Itoa(int(u.ObjID)) + ", slId=" + u.SLID.String() + "}"
}
