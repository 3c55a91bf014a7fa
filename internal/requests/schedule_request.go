package requests

import "cpu-scheduler/internal/core"

type Job struct {
	ProcessId   string `json:"process_id"`
	ArrivalTime int    `json:"arrival_time"`
	BurstTime   int    `json:"burst_time"`
}

type ScheduleRequests struct {
	Jobs []Job `json:"jobs"`
	// TimeQuantum is only read by round robin; nil means the configured default.
	TimeQuantum *int `json:"time_quantum,omitempty"`
}

// Processes converts the jobs into scheduler input. A job's position in the
// list becomes its tie-breaking order.
func (r ScheduleRequests) Processes() []core.Process {
	set := core.NewProcessSet()
	for _, job := range r.Jobs {
		set.Add(job.ProcessId, job.ArrivalTime, job.BurstTime)
	}
	return set.Snapshot()
}

// Quantum returns the requested time quantum, or fallback when none was sent.
func (r ScheduleRequests) Quantum(fallback int) int {
	if r.TimeQuantum == nil {
		return fallback
	}
	return *r.TimeQuantum
}
