package workload

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kernel-sim/kernel-sim/sim"
)

func TestParseText_ValidInput(t *testing.T) {
	// GIVEN a workload with a comment, a blank line and mixed separators
	input := `# pid arrival cpu io_freq io_dur priority size
1 0 5 0 0 1 0

2, 3, 8, 2, 4, 0, 250
  3	4	2	1	1	2	100
`
	// WHEN parsed
	entries, err := ParseText(strings.NewReader(input))

	// THEN every process line becomes one entry, in file order
	require.NoError(t, err)
	assert.Equal(t, []sim.WorkloadEntry{
		{PID: 1, ArrivalTime: 0, CPUTime: 5, IOFrequency: 0, IODuration: 0, Priority: 1, Size: 0},
		{PID: 2, ArrivalTime: 3, CPUTime: 8, IOFrequency: 2, IODuration: 4, Priority: 0, Size: 250},
		{PID: 3, ArrivalTime: 4, CPUTime: 2, IOFrequency: 1, IODuration: 1, Priority: 2, Size: 100},
	}, entries)
}

func TestParseText_NegativeValuesPassThrough(t *testing.T) {
	// Range checks belong to sim.ValidateWorkload, not the parser.
	entries, err := ParseText(strings.NewReader("1 -2 5 0 0 0 0\n"))
	require.NoError(t, err)
	assert.Equal(t, int64(-2), entries[0].ArrivalTime)
}

func TestParseText_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{"too few fields", "1 0 5 0 0 1\n", "line 1: expected 7 fields, got 6"},
		{"too many fields", "# header\n1 0 5 0 0 1 0 9\n", "line 2: expected 7 fields, got 8"},
		{"not an integer", "1 0 five 0 0 1 0\n", "line 1 field 3"},
		{"float", "1 0 5 0 0 1.5 0\n", "line 1 field 6"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseText(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestParseText_Empty(t *testing.T) {
	entries, err := ParseText(strings.NewReader("# nothing here\n\n"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFormat_ParseText_RoundTrip(t *testing.T) {
	// GIVEN entries with every field populated
	entries := []sim.WorkloadEntry{
		{PID: 4, ArrivalTime: 1, CPUTime: 9, IOFrequency: 3, IODuration: 2, Priority: 5, Size: 350},
		{PID: 9, ArrivalTime: 7, CPUTime: 1, Priority: 0, Size: 50},
	}

	// WHEN formatted and parsed back
	var buf bytes.Buffer
	require.NoError(t, Format(&buf, entries))
	got, err := ParseText(&buf)

	// THEN the entries survive unchanged
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestFormat_Layout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Format(&buf, []sim.WorkloadEntry{{PID: 1, ArrivalTime: 0, CPUTime: 5, Priority: 1}}))
	assert.Equal(t, "1 0 5 0 0 1 0\n", buf.String())
}
