package sim

import "math"

// PolicyKind names a built-in priority policy.
type PolicyKind string

const (
	KindFCFS   PolicyKind = "fcfs"
	KindStatic PolicyKind = "static"
	KindSJF    PolicyKind = "sjf"
	KindLDF    PolicyKind = "ldf"
	KindLCFS   PolicyKind = "lcfs"
)

// Policy computes a priority score for a request at a point in time.
// Higher scores are scheduled first.
// Implementations MUST NOT modify the request and MUST be safe for concurrent use.
type Policy interface {
	Name() string
	Score(now float64, req *Request) float64
}

// FCFS scores requests by how long they have waited. Older requests rank first.
// Formula: now - req.ArrivalTime
type FCFS struct{}

func (FCFS) Name() string { return string(KindFCFS) }

func (FCFS) Score(now float64, req *Request) float64 {
	return now - req.ArrivalTime
}

// StaticPriority scores requests by their explicit priority.
// Requests without one score -Inf and therefore rank after every request that has one.
type StaticPriority struct{}

func (StaticPriority) Name() string { return string(KindStatic) }

func (StaticPriority) Score(_ float64, req *Request) float64 {
	if req.Priority == nil {
		return math.Inf(-1)
	}
	return *req.Priority
}

// SJF (shortest job first) ranks requests with a smaller output-token budget first.
// Warning: SJF can starve long requests under sustained load.
type SJF struct{}

func (SJF) Name() string { return string(KindSJF) }

func (SJF) Score(_ float64, req *Request) float64 {
	return -float64(req.MaxTokens)
}

// LDF (largest data first) ranks requests carrying more prompt and generated
// tokens, summed across all of their sequences, first.
type LDF struct{}

func (LDF) Name() string { return string(KindLDF) }

func (LDF) Score(_ float64, req *Request) float64 {
	return float64(req.NumTokens())
}

// LCFS scores requests by negative waiting time, the exact inverse of FCFS.
// Newer requests rank first.
// Formula: req.ArrivalTime - now
type LCFS struct{}

func (LCFS) Name() string { return string(KindLCFS) }

func (LCFS) Score(now float64, req *Request) float64 {
	return req.ArrivalTime - now
}
