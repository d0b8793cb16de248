// Package trace provides ranking-decision recording for policy analysis.
// This package has no dependencies on sim/ — it stores pure data types.
package trace

// RankedEntry captures one request's place in a ranking.
type RankedEntry struct {
	RequestID string
	Score     float64
	Position  int // 0-based; 0 is scheduled first
}

// RankRecord captures a single ranking call: which policy ran, at what time, and the order it produced.
type RankRecord struct {
	Policy  string
	Now     float64
	Entries []RankedEntry // in ranked order
}
