package schedulers

import (
	"math"

	"cpu-scheduler/internal/core"
)

// ShortestJobFirst is non-preemptive: whenever the CPU frees up it picks the
// arrived process with the smallest burst, and that process runs to the end
// even if a shorter one arrives meanwhile.
type ShortestJobFirst struct{}

func (ShortestJobFirst) Name() string { return SJF }

func (ShortestJobFirst) Schedule(processes []core.Process, _ int) ([]core.ScheduleResult, []core.TimelineBlock, error) {
	if err := core.Validate(processes); err != nil {
		return nil, nil, err
	}

	var (
		cpu        = core.NewCpu()
		dispatched = make([]bool, len(processes))
		results    = make([]core.ScheduleResult, 0, len(processes))
	)
	for len(results) < len(processes) {
		shortest := -1
		nextArrival := math.MaxInt
		for i, p := range processes {
			if dispatched[i] {
				continue
			}
			if p.Arrival > cpu.Now() {
				nextArrival = min(nextArrival, p.Arrival)
				continue
			}
			if shortest < 0 || shorterJob(p, processes[shortest]) {
				shortest = i
			}
		}

		if shortest < 0 {
			cpu.IdleUntil(nextArrival)
			continue
		}

		p := processes[shortest]
		start, completion := cpu.Execute(p.ID, p.Burst)
		results = append(results, core.NewResult(p, start, completion))
		dispatched[shortest] = true
	}
	return finish(results, cpu)
}

// shorterJob orders by burst, then arrival, then insertion order.
func shorterJob(a, b core.Process) bool {
	if a.Burst != b.Burst {
		return a.Burst < b.Burst
	}
	if a.Arrival != b.Arrival {
		return a.Arrival < b.Arrival
	}
	return a.Order < b.Order
}
