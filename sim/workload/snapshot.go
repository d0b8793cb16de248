// Package workload loads request snapshots: a point in time plus the
// requests a scheduler would hand to the ranking layer at that moment.
package workload

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/inference-sim/policy-rank/sim"
)

// Snapshot is the YAML form of a ranking input.
type Snapshot struct {
	Now      float64       `yaml:"now"`
	Requests []RequestSpec `yaml:"requests"`
}

// RequestSpec describes one request (sequence group).
type RequestSpec struct {
	ID          string         `yaml:"id"`
	ArrivalTime float64        `yaml:"arrival_time"`
	Priority    *float64       `yaml:"priority,omitempty"`
	MaxTokens   int            `yaml:"max_tokens"`
	Sequences   []SequenceSpec `yaml:"sequences"`
}

// SequenceSpec describes one sequence of a request.
type SequenceSpec struct {
	ID        int `yaml:"id"`
	PromptLen int `yaml:"prompt_len"`
	OutputLen int `yaml:"output_len"`
}

// LoadSnapshot reads and parses a YAML snapshot file. It does not validate.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	return ParseSnapshot(data)
}

// ParseSnapshot parses YAML snapshot data. Unknown keys are rejected.
// Empty data yields an empty snapshot (now=0, no requests).
func ParseSnapshot(data []byte) (*Snapshot, error) {
	var snap Snapshot
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&snap); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	return &snap, nil
}

// Validate checks that the snapshot describes well-formed requests.
func (s *Snapshot) Validate() error {
	if math.IsNaN(s.Now) || math.IsInf(s.Now, 0) {
		return fmt.Errorf("now must be finite, got %v", s.Now)
	}
	seen := make(map[string]bool, len(s.Requests))
	for i, r := range s.Requests {
		if r.ID == "" {
			return fmt.Errorf("requests[%d]: id must not be empty", i)
		}
		if seen[r.ID] {
			return fmt.Errorf("requests[%d]: duplicate request id %q", i, r.ID)
		}
		seen[r.ID] = true
		if err := r.validate(); err != nil {
			return fmt.Errorf("request %q: %w", r.ID, err)
		}
	}
	return nil
}

func (r *RequestSpec) validate() error {
	if math.IsNaN(r.ArrivalTime) || math.IsInf(r.ArrivalTime, 0) {
		return fmt.Errorf("arrival_time must be finite, got %v", r.ArrivalTime)
	}
	// -Inf is reserved for an absent priority.
	if r.Priority != nil && (math.IsNaN(*r.Priority) || math.IsInf(*r.Priority, 0)) {
		return fmt.Errorf("priority must be finite, got %v", *r.Priority)
	}
	if r.MaxTokens < 0 {
		return fmt.Errorf("max_tokens must be non-negative, got %d", r.MaxTokens)
	}
	if len(r.Sequences) == 0 {
		return fmt.Errorf("at least one sequence is required")
	}
	seqIDs := make(map[int]bool, len(r.Sequences))
	for _, seq := range r.Sequences {
		if seqIDs[seq.ID] {
			return fmt.Errorf("duplicate sequence id %d", seq.ID)
		}
		seqIDs[seq.ID] = true
		if seq.PromptLen < 0 || seq.OutputLen < 0 {
			return fmt.Errorf("sequence %d: token lengths must be non-negative, got prompt_len=%d output_len=%d",
				seq.ID, seq.PromptLen, seq.OutputLen)
		}
	}
	return nil
}

// ToRequests converts the snapshot into sim requests, preserving file order.
func (s *Snapshot) ToRequests() []*sim.Request {
	reqs := make([]*sim.Request, 0, len(s.Requests))
	for _, rs := range s.Requests {
		req := &sim.Request{
			ID:          rs.ID,
			ArrivalTime: rs.ArrivalTime,
			MaxTokens:   rs.MaxTokens,
			Sequences:   make(map[int]*sim.Sequence, len(rs.Sequences)),
		}
		if rs.Priority != nil {
			req.Priority = sim.PriorityOf(*rs.Priority)
		}
		for _, seq := range rs.Sequences {
			req.Sequences[seq.ID] = &sim.Sequence{ID: seq.ID, PromptLen: seq.PromptLen, OutputLen: seq.OutputLen}
		}
		reqs = append(reqs, req)
	}
	return reqs
}
