package autocomplete

import (
	"encoding/json"

	"github.com/emirpasic/gods/v2/lists/arraylist"
)

// debugDepth is how many snapshots the trace keeps.
const debugDepth = 5

// Snapshot is the state observed by one render.
type Snapshot struct {
	ID    int   `json:"id"`
	State State `json:"state"`
}

// DebugTrace keeps the most recent render snapshots.
type DebugTrace struct {
	entries *arraylist.List[Snapshot]
	seq     int
}

func newDebugTrace() *DebugTrace {
	return &DebugTrace{entries: arraylist.New[Snapshot]()}
}

// Record appends a snapshot, dropping the oldest past the trace depth.
func (d *DebugTrace) Record(s State) {
	d.entries.Add(Snapshot{ID: d.seq, State: s})
	d.seq++
	for d.entries.Size() > debugDepth {
		d.entries.Remove(0)
	}
}

// Snapshots returns the retained snapshots, oldest first.
func (d *DebugTrace) Snapshots() []Snapshot {
	return d.entries.Values()
}

// JSON renders the retained snapshots as indented JSON.
func (d *DebugTrace) JSON() string {
	data, err := json.MarshalIndent(d.Snapshots(), "", "  ")
	if err != nil {
		return "[]"
	}
	return string(data)
}
