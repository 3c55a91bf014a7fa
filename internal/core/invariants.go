package core

import "fmt"

// CheckInvariants verifies a finished run. A non-nil error always wraps
// ErrInvariantViolation and means the scheduler is broken, not the input.
func CheckInvariants(results []ScheduleResult, timeline []TimelineBlock) error {
	maxCompletion := 0
	for _, r := range results {
		switch {
		case r.Completion < r.Arrival+r.Burst:
			return violation("process %q completes at %d before arrival+burst %d", r.ID, r.Completion, r.Arrival+r.Burst)
		case r.Start < r.Arrival:
			return violation("process %q starts at %d before arriving at %d", r.ID, r.Start, r.Arrival)
		case r.Turnaround != r.Completion-r.Arrival:
			return violation("process %q turnaround %d != completion-arrival %d", r.ID, r.Turnaround, r.Completion-r.Arrival)
		case r.Waiting != r.Turnaround-r.Burst:
			return violation("process %q waiting %d != turnaround-burst %d", r.ID, r.Waiting, r.Turnaround-r.Burst)
		case r.Waiting < 0:
			return violation("process %q has negative waiting time %d", r.ID, r.Waiting)
		}
		maxCompletion = max(maxCompletion, r.Completion)
	}

	if len(timeline) == 0 {
		return violation("empty timeline")
	}
	if timeline[0].Start != 0 {
		return violation("timeline starts at %d", timeline[0].Start)
	}
	for i, b := range timeline {
		if b.End <= b.Start {
			return violation("block %d (%s) spans [%d, %d)", i, b.ID, b.Start, b.End)
		}
		if i > 0 && timeline[i-1].End != b.Start {
			return violation("block %d (%s) starts at %d but previous block ends at %d", i, b.ID, b.Start, timeline[i-1].End)
		}
	}
	if end := timeline[len(timeline)-1].End; end != maxCompletion {
		return violation("timeline ends at %d, last completion is %d", end, maxCompletion)
	}
	return nil
}

func violation(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvariantViolation}, args...)...)
}
