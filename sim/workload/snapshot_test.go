package workload

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validSnapshot = `
now: 10
requests:
  - id: A
    arrival_time: 0
    priority: 3
    max_tokens: 128
    sequences:
      - id: 0
        prompt_len: 100
        output_len: 20
      - id: 1
        prompt_len: 5
        output_len: 0
  - id: B
    arrival_time: 5
    max_tokens: 16
    sequences:
      - id: 0
        prompt_len: 50
        output_len: 0
`

func writeSnapshot(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSnapshot_ValidYAML_LoadsCorrectly(t *testing.T) {
	snap, err := LoadSnapshot(writeSnapshot(t, validSnapshot))
	require.NoError(t, err)
	require.NoError(t, snap.Validate())

	assert.Equal(t, 10.0, snap.Now)
	require.Len(t, snap.Requests, 2)
	require.NotNil(t, snap.Requests[0].Priority)
	assert.Equal(t, 3.0, *snap.Requests[0].Priority)
	assert.Nil(t, snap.Requests[1].Priority, "absent priority must stay nil")
}

func TestSnapshot_Requests_PreservesOrderAndTokens(t *testing.T) {
	snap, err := ParseSnapshot([]byte(validSnapshot))
	require.NoError(t, err)

	reqs := snap.ToRequests()

	require.Len(t, reqs, 2)
	assert.Equal(t, "A", reqs[0].ID)
	assert.Equal(t, "B", reqs[1].ID)
	assert.Equal(t, 125, reqs[0].NumTokens())
	assert.Equal(t, 50, reqs[1].NumTokens())
	assert.True(t, reqs[0].HasPriority())
	assert.False(t, reqs[1].HasPriority())
	assert.Equal(t, 16, reqs[1].MaxTokens)
}

func TestSnapshot_Requests_PriorityIsCopied(t *testing.T) {
	snap, err := ParseSnapshot([]byte(validSnapshot))
	require.NoError(t, err)

	reqs := snap.ToRequests()
	*snap.Requests[0].Priority = 99

	assert.Equal(t, 3.0, *reqs[0].Priority)
}

func TestParseSnapshot_UnknownField_ReturnsError(t *testing.T) {
	_, err := ParseSnapshot([]byte("now: 1\nrequests: []\nbogus: true\n"))
	assert.Error(t, err)
}

func TestParseSnapshot_EmptyData_ReturnsEmptySnapshot(t *testing.T) {
	for _, data := range []string{"", "\n", "# no requests yet\n"} {
		snap, err := ParseSnapshot([]byte(data))
		require.NoError(t, err, "data %q", data)
		assert.Equal(t, 0.0, snap.Now)
		assert.Empty(t, snap.Requests)
		assert.NoError(t, snap.Validate())
		assert.Empty(t, snap.ToRequests())
	}
}

func TestSnapshot_ExplicitPriorityNeverTiesWithAbsent(t *testing.T) {
	// GIVEN a request without priority listed before one with an explicit -Inf priority
	snap, err := ParseSnapshot([]byte(`
requests:
  - id: none
    sequences: [{id: 0, prompt_len: 1}]
  - id: explicit
    priority: -.inf
    sequences: [{id: 0, prompt_len: 1}]
`))
	require.NoError(t, err)

	// THEN validation rejects it, so an explicit priority can never rank behind an absent one
	assert.ErrorContains(t, snap.Validate(), `request "explicit": priority must be finite`)
}

func TestLoadSnapshot_MissingFile_ReturnsError(t *testing.T) {
	_, err := LoadSnapshot(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading snapshot")
}

func TestSnapshot_Validate_RejectsMalformedRequests(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "empty id",
			yaml: `
requests:
  - arrival_time: 0
    sequences: [{id: 0, prompt_len: 1}]
`,
			wantErr: "id must not be empty",
		},
		{
			name: "duplicate request id",
			yaml: `
requests:
  - id: a
    sequences: [{id: 0, prompt_len: 1}]
  - id: a
    sequences: [{id: 0, prompt_len: 1}]
`,
			wantErr: "duplicate request id",
		},
		{
			name: "no sequences",
			yaml: `
requests:
  - id: a
`,
			wantErr: "at least one sequence",
		},
		{
			name: "duplicate sequence id",
			yaml: `
requests:
  - id: a
    sequences: [{id: 0, prompt_len: 1}, {id: 0, prompt_len: 2}]
`,
			wantErr: "duplicate sequence id",
		},
		{
			name: "negative prompt length",
			yaml: `
requests:
  - id: a
    sequences: [{id: 0, prompt_len: -1}]
`,
			wantErr: "non-negative",
		},
		{
			name: "negative max tokens",
			yaml: `
requests:
  - id: a
    max_tokens: -4
    sequences: [{id: 0, prompt_len: 1}]
`,
			wantErr: "max_tokens",
		},
		{
			name: "infinite arrival",
			yaml: `
requests:
  - id: a
    arrival_time: .inf
    sequences: [{id: 0, prompt_len: 1}]
`,
			wantErr: "arrival_time must be finite",
		},
		{
			name: "NaN priority",
			yaml: `
requests:
  - id: a
    priority: .nan
    sequences: [{id: 0, prompt_len: 1}]
`,
			wantErr: "priority must be finite",
		},
		{
			name: "positive infinite priority",
			yaml: `
requests:
  - id: a
    priority: .inf
    sequences: [{id: 0, prompt_len: 1}]
`,
			wantErr: "priority must be finite",
		},
		{
			name: "negative infinite priority",
			yaml: `
requests:
  - id: a
    priority: -.inf
    sequences: [{id: 0, prompt_len: 1}]
`,
			wantErr: "priority must be finite",
		},
		{
			name:    "infinite now",
			yaml:    "now: -.inf\n",
			wantErr: "now must be finite",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			snap, err := ParseSnapshot([]byte(tc.yaml))
			require.NoError(t, err)
			assert.ErrorContains(t, snap.Validate(), tc.wantErr)
		})
	}
}
