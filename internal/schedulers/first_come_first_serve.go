package schedulers

import (
	"cpu-scheduler/internal/core"
)

// FirstComeFirstServe runs processes to completion in arrival order.
type FirstComeFirstServe struct{}

func (FirstComeFirstServe) Name() string { return FCFS }

func (FirstComeFirstServe) Schedule(processes []core.Process, _ int) ([]core.ScheduleResult, []core.TimelineBlock, error) {
	if err := core.Validate(processes); err != nil {
		return nil, nil, err
	}

	cpu := core.NewCpu()
	results := make([]core.ScheduleResult, 0, len(processes))
	for _, p := range sortByArrival(processes) {
		cpu.IdleUntil(p.Arrival)
		start, completion := cpu.Execute(p.ID, p.Burst)
		results = append(results, core.NewResult(p, start, completion))
	}
	return finish(results, cpu)
}
