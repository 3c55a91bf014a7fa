package schedulers

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
)

func testRunner(buf *bytes.Buffer) *Runner {
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	return NewRunner(logger, 2)
}

func scenarioRequest() requests.ScheduleRequests {
	return requests.ScheduleRequests{Jobs: []requests.Job{
		{ProcessId: "P1", ArrivalTime: 0, BurstTime: 5},
		{ProcessId: "P2", ArrivalTime: 1, BurstTime: 3},
		{ProcessId: "P3", ArrivalTime: 2, BurstTime: 1},
	}}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRunnerRoundRobinUsesDefaultQuantum(t *testing.T) {
	var buf bytes.Buffer
	response, err := testRunner(&buf).RoundRobin(scenarioRequest())
	if err != nil {
		t.Fatalf("RoundRobin: %v", err)
	}
	if response.TimeQuantum != 2 {
		t.Errorf("time quantum = %d, want default 2", response.TimeQuantum)
	}
	if len(response.Timeline) != 6 {
		t.Errorf("timeline = %+v", response.Timeline)
	}
	if response.RunId == "" {
		t.Error("run id is empty")
	}
	if response.TotalTime != 9 || response.IdleTime != 0 {
		t.Errorf("total/idle = %d/%d, want 9/0", response.TotalTime, response.IdleTime)
	}
	// waiting: P1=4, P2=4, P3=2
	if !almostEqual(response.AverageWaitingTime, 10.0/3) {
		t.Errorf("average waiting = %v", response.AverageWaitingTime)
	}
	// response: P1=0, P2=1, P3=2
	if !almostEqual(response.AverageResponseTime, 1) {
		t.Errorf("average response = %v", response.AverageResponseTime)
	}
	if !strings.Contains(buf.String(), "algorithm=rr") || !strings.Contains(buf.String(), "time_quantum=2") {
		t.Errorf("run not logged: %s", buf.String())
	}
}

func TestRunnerRequestQuantumOverridesDefault(t *testing.T) {
	var buf bytes.Buffer
	request := scenarioRequest()
	q := 100
	request.TimeQuantum = &q
	response, err := testRunner(&buf).RoundRobin(request)
	if err != nil {
		t.Fatalf("RoundRobin: %v", err)
	}
	if response.TimeQuantum != 100 || len(response.Timeline) != 3 {
		t.Errorf("quantum %d, timeline %+v", response.TimeQuantum, response.Timeline)
	}

	zero := 0
	request.TimeQuantum = &zero
	if _, err := testRunner(&buf).RoundRobin(request); !errors.Is(err, core.ErrInvalidQuantum) {
		t.Errorf("zero quantum: err = %v", err)
	}
}

func TestRunnerAnalyticsWithIdleTime(t *testing.T) {
	var buf bytes.Buffer
	response, err := testRunner(&buf).FirstComeFirstServe(requests.ScheduleRequests{Jobs: []requests.Job{
		{ProcessId: "P1", ArrivalTime: 3, BurstTime: 2},
	}})
	if err != nil {
		t.Fatalf("FirstComeFirstServe: %v", err)
	}
	if response.TimeQuantum != 0 {
		t.Errorf("fcfs reports quantum %d", response.TimeQuantum)
	}
	if response.TotalTime != 5 || response.IdleTime != 3 {
		t.Errorf("total/idle = %d/%d, want 5/3", response.TotalTime, response.IdleTime)
	}
	if !almostEqual(response.CpuUtilization, 0.4) {
		t.Errorf("utilization = %v, want 0.4", response.CpuUtilization)
	}
	if !almostEqual(response.CpuThroughput, 0.2) {
		t.Errorf("throughput = %v, want 0.2", response.CpuThroughput)
	}
	if !response.Timeline[0].IsIdle || response.Timeline[0].ProcessId != core.IdleID {
		t.Errorf("first block = %+v, want idle", response.Timeline[0])
	}
	d := response.Details[0]
	if d.StartTime != 3 || d.CompletionTime != 5 || d.TurnAroundTime != 2 || d.WaitingTime != 0 || d.ResponseTime != 0 {
		t.Errorf("details = %+v", d)
	}
}

func TestRunnerRejectsEmptyAndUnknown(t *testing.T) {
	var buf bytes.Buffer
	runner := testRunner(&buf)
	if _, err := runner.ShortestJobFirst(requests.ScheduleRequests{}); !errors.Is(err, core.ErrNoProcesses) {
		t.Errorf("empty request: err = %v", err)
	}
	if _, err := runner.Run("lottery", scenarioRequest()); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("unknown algorithm: err = %v", err)
	}
}

func TestRunnerAll(t *testing.T) {
	var buf bytes.Buffer
	compare, err := testRunner(&buf).All(scenarioRequest())
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(compare.Results) != 3 {
		t.Fatalf("got %d results", len(compare.Results))
	}
	seen := map[string]bool{}
	for i, r := range compare.Results {
		if r.Algorithm != Names()[i] {
			t.Errorf("result %d algorithm = %q, want %q", i, r.Algorithm, Names()[i])
		}
		if seen[r.RunId] {
			t.Errorf("duplicate run id %s", r.RunId)
		}
		seen[r.RunId] = true
		if r.TotalTime != 9 {
			t.Errorf("%s total time = %d, want 9", r.Algorithm, r.TotalTime)
		}
	}
}
