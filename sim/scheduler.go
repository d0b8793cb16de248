package sim

import (
	"cmp"
	"sort"
)

// ScoredRequest pairs a request with the score a policy assigned to it.
type ScoredRequest struct {
	Request *Request
	Score   float64
}

// ScoreAll scores every request once and returns them in descending score order.
// Equal scores keep their input order. reqs itself is left untouched.
//
// The comparison is a total order: -Inf sorts after every finite score and
// NaN, which only a caller-supplied NaN field can produce, sorts after -Inf.
func ScoreAll(p Policy, now float64, reqs []*Request) []ScoredRequest {
	scored := make([]ScoredRequest, len(reqs))
	for i, r := range reqs {
		scored[i] = ScoredRequest{Request: r, Score: p.Score(now, r)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return cmp.Compare(scored[i].Score, scored[j].Score) > 0
	})
	return scored
}

// Rank returns reqs ordered by descending p.Score(now, ·), stable on ties.
// The result is a new slice with the same elements; reqs is not reordered.
// Callers must not mutate the requests until Rank returns.
func Rank(p Policy, now float64, reqs []*Request) []*Request {
	scored := ScoreAll(p, now, reqs)
	ranked := make([]*Request, len(scored))
	for i, s := range scored {
		ranked[i] = s.Request
	}
	return ranked
}
