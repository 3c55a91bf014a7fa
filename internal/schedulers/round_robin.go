package schedulers

import (
	"sort"

	"cpu-scheduler/internal/core"
)

// RoundRobin preempts the running process after a fixed time quantum and
// sends it to the back of a FIFO ready queue.
type RoundRobin struct{}

func (RoundRobin) Name() string { return RR }

func (RoundRobin) Schedule(processes []core.Process, quantum int) ([]core.ScheduleResult, []core.TimelineBlock, error) {
	if err := core.Validate(processes); err != nil {
		return nil, nil, err
	}
	if err := core.ValidateQuantum(quantum); err != nil {
		return nil, nil, err
	}

	n := len(processes)
	// arrivals holds indexes into processes, in arrival-then-order sequence
	arrivals := make([]int, n)
	for i := range arrivals {
		arrivals[i] = i
	}
	sort.SliceStable(arrivals, func(i, j int) bool {
		a, b := processes[arrivals[i]], processes[arrivals[j]]
		if a.Arrival != b.Arrival {
			return a.Arrival < b.Arrival
		}
		return a.Order < b.Order
	})

	var (
		cpu        = core.NewCpu()
		remaining  = make([]int, n)
		start      = make([]int, n)
		completion = make([]int, n)
		readyQueue = make([]int, 0, n)
		next       = 0
	)
	for i, p := range processes {
		remaining[i] = p.Burst
		start[i] = -1
	}

	admit := func() {
		for next < n && processes[arrivals[next]].Arrival <= cpu.Now() {
			readyQueue = append(readyQueue, arrivals[next])
			next++
		}
	}

	for next < n || len(readyQueue) > 0 {
		admit()
		if len(readyQueue) == 0 {
			cpu.IdleUntil(processes[arrivals[next]].Arrival)
			continue
		}

		i := readyQueue[0]
		readyQueue = readyQueue[1:]

		slice := min(quantum, remaining[i])
		sliceStart, _ := cpu.Execute(processes[i].ID, slice)
		if start[i] < 0 {
			start[i] = sliceStart
		}
		remaining[i] -= slice

		// processes that arrived during the slice queue up ahead of the preempted one
		admit()
		if remaining[i] > 0 {
			readyQueue = append(readyQueue, i)
		} else {
			completion[i] = cpu.Now()
		}
	}

	results := make([]core.ScheduleResult, n)
	for i, p := range processes {
		results[i] = core.NewResult(p, start[i], completion[i])
	}
	return finish(results, cpu)
}
