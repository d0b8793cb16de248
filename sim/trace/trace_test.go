package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankingTrace_RecordRanking_AppendsRecord(t *testing.T) {
	// GIVEN a trace configured for decisions
	rt := NewRankingTrace(TraceLevelDecisions)

	// WHEN a ranking record is recorded
	rt.RecordRanking(RankRecord{
		Policy: "fcfs",
		Now:    10,
		Entries: []RankedEntry{
			{RequestID: "A", Score: 10, Position: 0},
			{RequestID: "C", Score: 8, Position: 1},
		},
	})

	// THEN the trace contains one record with correct data
	require.Len(t, rt.Rankings, 1)
	assert.Equal(t, "fcfs", rt.Rankings[0].Policy)
	assert.Equal(t, "C", rt.Rankings[0].Entries[1].RequestID)
}

func TestRankingTrace_LevelNone_DropsRecords(t *testing.T) {
	for _, level := range []TraceLevel{TraceLevelNone, ""} {
		rt := NewRankingTrace(level)
		rt.RecordRanking(RankRecord{Policy: "sjf"})
		assert.Empty(t, rt.Rankings, "level %q", level)
	}
}

func TestRankingTrace_NilIsDisabled(t *testing.T) {
	var rt *RankingTrace
	assert.False(t, rt.Enabled())
	rt.RecordRanking(RankRecord{Policy: "fcfs"}) // must not panic
}

func TestRankingTrace_MultipleRecords_PreservesOrder(t *testing.T) {
	rt := NewRankingTrace(TraceLevelDecisions)
	rt.RecordRanking(RankRecord{Policy: "fcfs", Now: 1})
	rt.RecordRanking(RankRecord{Policy: "lcfs", Now: 2})
	rt.RecordRanking(RankRecord{Policy: "fcfs", Now: 3})

	require.Len(t, rt.Rankings, 3)
	assert.Equal(t, []float64{1, 2, 3}, []float64{rt.Rankings[0].Now, rt.Rankings[1].Now, rt.Rankings[2].Now})
}

func TestIsValidTraceLevel(t *testing.T) {
	assert.True(t, IsValidTraceLevel("none"))
	assert.True(t, IsValidTraceLevel("decisions"))
	assert.True(t, IsValidTraceLevel(""))
	assert.False(t, IsValidTraceLevel("verbose"))
}
