package sim

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Summary_Averages(t *testing.T) {
	// GIVEN accumulated totals for four processes
	m := NewMetrics(4)
	m.FinalTick = 30
	m.TotalTurnaround = 50
	m.TotalWait = 18
	m.TotalCPUBurst = 22
	m.InterIOTicks = 12
	m.IOEvents = 3
	m.Preemptions = 2

	// WHEN summarized
	s := m.Summary()

	// THEN every average divides by the process count
	assert.Equal(t, 4, s.Processes)
	assert.InDelta(t, 7.5, s.Throughput, 1e-9)
	assert.InDelta(t, 12.5, s.AvgTurnaround, 1e-9)
	assert.InDelta(t, 4.5, s.AvgWait, 1e-9)
	assert.InDelta(t, 5.5, s.AvgCPUBurst, 1e-9)
	assert.True(t, s.ResponseTimeDefined)
	assert.InDelta(t, 4.0, s.AvgResponse, 1e-9)
	assert.Equal(t, int64(2), s.Preemptions)
}

func TestMetrics_Summary_NoIO_ResponseUndefined(t *testing.T) {
	m := NewMetrics(1)
	m.InterIOTicks = 6
	s := m.Summary()
	assert.False(t, s.ResponseTimeDefined)
	assert.Zero(t, s.AvgResponse)
}

func TestMetrics_Summary_NoProcesses(t *testing.T) {
	s := NewMetrics(0).Summary()
	assert.Zero(t, s.Throughput)
	assert.Zero(t, s.AvgTurnaround)
}

func TestSummary_JSON_OmitsUndefinedResponse(t *testing.T) {
	// GIVEN a summary without I/O
	s := Summary{Scheduler: SchedulerFCFS, Memory: MemoryOff, Processes: 1, FinalTick: 5, Throughput: 5}

	// WHEN marshaled
	data, err := json.Marshal(s)
	require.NoError(t, err)

	// THEN avg_response is absent and the definedness flag says why
	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	_, has := out["avg_response"]
	assert.False(t, has)
	assert.Equal(t, false, out["response_time_defined"])
	assert.Equal(t, "fcfs", out["scheduler"])
}
