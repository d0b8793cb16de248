package trace

// TraceLevel controls the verbosity of decision tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing.
	TraceLevelNone TraceLevel = "none"
	// TraceLevelDecisions captures every ranking decision.
	TraceLevelDecisions TraceLevel = "decisions"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:      true,
	TraceLevelDecisions: true,
	"":                  true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// RankingTrace collects ranking records.
type RankingTrace struct {
	Level    TraceLevel
	Rankings []RankRecord
}

// NewRankingTrace creates a RankingTrace ready for recording.
func NewRankingTrace(level TraceLevel) *RankingTrace {
	return &RankingTrace{
		Level:    level,
		Rankings: make([]RankRecord, 0),
	}
}

// Enabled reports whether records are kept at this level.
func (rt *RankingTrace) Enabled() bool {
	return rt != nil && rt.Level == TraceLevelDecisions
}

// RecordRanking appends a ranking record. It is a no-op when tracing is disabled.
func (rt *RankingTrace) RecordRanking(record RankRecord) {
	if !rt.Enabled() {
		return
	}
	rt.Rankings = append(rt.Rankings, record)
}
