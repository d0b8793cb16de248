// Package testutil provides shared test infrastructure for the ranking layer.
// It holds the golden ranking dataset types and assertion helpers used by sim/ tests.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldenranking.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is one ranking scenario with its expected output.
type GoldenTestCase struct {
	Name     string          `json:"name"`
	Policy   string          `json:"policy"`
	Now      float64         `json:"now"`
	Requests []GoldenRequest `json:"requests"`
	// Expected ranked order (request IDs) and per-request scores.
	WantOrder  []string           `json:"want_order"`
	WantScores map[string]float64 `json:"want_scores"`
	// Request IDs whose expected score is -Inf (JSON cannot encode it).
	WantNegInf []string `json:"want_neg_inf"`
}

// GoldenRequest is the JSON form of a request.
type GoldenRequest struct {
	ID          string           `json:"id"`
	ArrivalTime float64          `json:"arrival_time"`
	Priority    *float64         `json:"priority"`
	MaxTokens   int              `json:"max_tokens"`
	Sequences   []GoldenSequence `json:"sequences"`
}

// GoldenSequence is the JSON form of a sequence.
type GoldenSequence struct {
	ID        int `json:"id"`
	PromptLen int `json:"prompt_len"`
	OutputLen int `json:"output_len"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldenranking.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
// Infinities compare equal only to the same infinity.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == got {
		return
	}
	if math.IsInf(want, 0) || math.IsInf(got, 0) {
		t.Errorf("%s: got %v, want %v", name, got, want)
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
