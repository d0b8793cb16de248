// Defines the Request struct that models a sequence group as seen by the ranking layer.
// Tracks arrival time, optional static priority, the output-token budget, and per-sequence token counts.

package sim

import (
	"fmt"
	"strconv"
)

// Sequence is one token-generation stream belonging to a request.
type Sequence struct {
	ID        int // Sequence identifier, unique within its request
	PromptLen int // Number of prompt (input) tokens
	OutputLen int // Number of output tokens generated so far
}

// Request models a sequence group: one client request and its sequences.
// The ranking layer only reads requests; the request lifecycle manager owns every field.
type Request struct {
	ID string // Unique identifier for the request

	ArrivalTime float64  // Seconds on the scheduler's monotonic clock, set once at creation
	Priority    *float64 // Operator-supplied static priority; nil means no explicit priority
	MaxTokens   int      // Upper bound on output tokens, used as a job-size proxy

	Sequences map[int]*Sequence // Sequence ID -> generation state
}

// PriorityOf returns a pointer suitable for Request.Priority.
func PriorityOf(v float64) *float64 {
	return &v
}

// HasPriority reports whether the request carries an explicit static priority.
func (req *Request) HasPriority() bool {
	return req.Priority != nil
}

// NumTokens returns prompt plus generated tokens summed over all sequences.
func (req *Request) NumTokens() int {
	total := 0
	for _, seq := range req.Sequences {
		total += seq.PromptLen + seq.OutputLen
	}
	return total
}

// This method returns a human-readable string representation of a Request.
func (req Request) String() string {
	priority := "none"
	if req.Priority != nil {
		priority = strconv.FormatFloat(*req.Priority, 'g', -1, 64)
	}
	return fmt.Sprintf("Request: (ID: %s, ArrivalTime: %g, Priority: %s, MaxTokens: %d, Sequences: %d)",
		req.ID, req.ArrivalTime, priority, req.MaxTokens, len(req.Sequences))
}
