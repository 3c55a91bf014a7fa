package schedulers

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"cpu-scheduler/internal/core"
)

// Scheduler computes the metrics table and Gantt timeline for one run.
// Implementations hold no state and never modify the processes slice.
// quantum is ignored by non-preemptive strategies.
type Scheduler interface {
	Name() string
	Schedule(processes []core.Process, quantum int) ([]core.ScheduleResult, []core.TimelineBlock, error)
}

var ErrUnknownAlgorithm = errors.New("unknown scheduling algorithm")

const (
	FCFS = "fcfs"
	SJF  = "sjf"
	RR   = "rr"
)

var registry = map[string]Scheduler{
	FCFS: FirstComeFirstServe{},
	SJF:  ShortestJobFirst{},
	RR:   RoundRobin{},
}

// Lookup returns the scheduler registered under name (case-insensitive).
func Lookup(name string) (Scheduler, error) {
	s, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return s, nil
}

// Names lists the registered algorithms in presentation order.
func Names() []string {
	return []string{FCFS, SJF, RR}
}

// sortByArrival returns a copy of processes ordered by arrival, then order.
func sortByArrival(processes []core.Process) []core.Process {
	sorted := make([]core.Process, len(processes))
	copy(sorted, processes)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Arrival != sorted[j].Arrival {
			return sorted[i].Arrival < sorted[j].Arrival
		}
		return sorted[i].Order < sorted[j].Order
	})
	return sorted
}

func finish(results []core.ScheduleResult, cpu *core.Cpu) ([]core.ScheduleResult, []core.TimelineBlock, error) {
	timeline := cpu.Timeline()
	if err := core.CheckInvariants(results, timeline); err != nil {
		return nil, nil, err
	}
	return results, timeline, nil
}
