package autocomplete

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugTraceKeepsLastFive(t *testing.T) {
	d := newDebugTrace()
	for i := 0; i < 8; i++ {
		d.Record(State{HighlightedIndex: i})
	}

	snaps := d.Snapshots()
	require.Len(t, snaps, 5)
	for i, s := range snaps {
		assert.Equal(t, i+3, s.ID)
		assert.Equal(t, i+3, s.State.HighlightedIndex)
	}
}

func TestDebugTraceJSON(t *testing.T) {
	d := newDebugTrace()
	assert.Equal(t, "[]", d.JSON())

	d.Record(State{IsOpen: true, HighlightedIndex: NoHighlight})

	var decoded []Snapshot
	require.NoError(t, json.Unmarshal([]byte(d.JSON()), &decoded))
	require.Len(t, decoded, 1)
	assert.True(t, decoded[0].State.IsOpen)
	assert.Equal(t, NoHighlight, decoded[0].State.HighlightedIndex)
}
