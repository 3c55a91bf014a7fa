package core

import (
	"errors"
	"fmt"
)

// Process is a schedulable unit of work. Order is the insertion sequence
// number and only serves to break ties deterministically.
type Process struct {
	ID      string
	Arrival int
	Burst   int
	Order   int
}

// ScheduleResult is one row of the metrics table. Start is the time the
// process was first dispatched.
type ScheduleResult struct {
	ID         string
	Arrival    int
	Burst      int
	Start      int
	Completion int
	Turnaround int
	Waiting    int
}

func NewResult(p Process, start, completion int) ScheduleResult {
	turnaround := completion - p.Arrival
	return ScheduleResult{
		ID:         p.ID,
		Arrival:    p.Arrival,
		Burst:      p.Burst,
		Start:      start,
		Completion: completion,
		Turnaround: turnaround,
		Waiting:    turnaround - p.Burst,
	}
}

var (
	ErrNoProcesses        = errors.New("at least one process is required")
	ErrInvalidArrival     = errors.New("arrival time must be non-negative")
	ErrInvalidBurst       = errors.New("burst time must be positive")
	ErrInvalidQuantum     = errors.New("time quantum must be positive")
	ErrInvariantViolation = errors.New("schedule invariant violated")
)

// IsValidationError reports whether err was caused by invalid caller input
// rather than a scheduling defect.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrNoProcesses) ||
		errors.Is(err, ErrInvalidArrival) ||
		errors.Is(err, ErrInvalidBurst) ||
		errors.Is(err, ErrInvalidQuantum)
}

func Validate(processes []Process) error {
	if len(processes) == 0 {
		return ErrNoProcesses
	}
	for _, p := range processes {
		if p.Arrival < 0 {
			return fmt.Errorf("%w: process %q has arrival %d", ErrInvalidArrival, p.ID, p.Arrival)
		}
		if p.Burst <= 0 {
			return fmt.Errorf("%w: process %q has burst %d", ErrInvalidBurst, p.ID, p.Burst)
		}
	}
	return nil
}

func ValidateQuantum(quantum int) error {
	if quantum <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantum, quantum)
	}
	return nil
}
