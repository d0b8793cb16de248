package trace

import "math"

// TraceSummary aggregates statistics from a RankingTrace.
type TraceSummary struct {
	TotalRankings      int
	TotalEntries       int
	NegInfScores       int            // entries scored -Inf (no explicit priority under static)
	MeanQueueLength    float64
	PolicyDistribution map[string]int // policy name → number of rankings
}

// Summarize computes aggregate statistics from a RankingTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(rt *RankingTrace) *TraceSummary {
	summary := &TraceSummary{
		PolicyDistribution: make(map[string]int),
	}
	if rt == nil {
		return summary
	}

	summary.TotalRankings = len(rt.Rankings)
	for _, r := range rt.Rankings {
		summary.PolicyDistribution[r.Policy]++
		summary.TotalEntries += len(r.Entries)
		for _, e := range r.Entries {
			if math.IsInf(e.Score, -1) {
				summary.NegInfScores++
			}
		}
	}

	if summary.TotalRankings > 0 {
		summary.MeanQueueLength = float64(summary.TotalEntries) / float64(summary.TotalRankings)
	}

	return summary
}
