package schedulers

import (
	"log/slog"

	"github.com/google/uuid"

	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// Runner turns schedule requests into responses. It adds the configured
// default quantum, analytics and logging around the stateless schedulers.
type Runner struct {
	logger         *slog.Logger
	defaultQuantum int
}

func NewRunner(logger *slog.Logger, defaultQuantum int) *Runner {
	return &Runner{
		logger:         logger.With("component", "scheduler"),
		defaultQuantum: defaultQuantum,
	}
}

func (r *Runner) FirstComeFirstServe(request requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	return r.Run(FCFS, request)
}

func (r *Runner) ShortestJobFirst(request requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	return r.Run(SJF, request)
}

func (r *Runner) RoundRobin(request requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	return r.Run(RR, request)
}

// Run schedules the request with the named algorithm.
func (r *Runner) Run(algorithm string, request requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	scheduler, err := Lookup(algorithm)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	runID := uuid.New().String()
	processes := request.Processes()
	quantum := 0
	if scheduler.Name() == RR {
		quantum = request.Quantum(r.defaultQuantum)
	}

	logger := r.logger.With("run_id", runID, "algorithm", scheduler.Name())
	logger.Info("running algorithm", "processes", len(processes), "time_quantum", quantum)

	results, timeline, err := scheduler.Schedule(processes, quantum)
	if err != nil {
		logger.Warn("run rejected", "error", err)
		return responses.ScheduleResponse{}, err
	}
	for _, block := range timeline {
		logger.Debug("slice", "pid", block.ID, "start", block.Start, "end", block.End, "idle", block.IsIdle)
	}

	response := generateResponse(scheduler.Name(), results, timeline)
	response.RunId = runID
	response.TimeQuantum = quantum
	logger.Info("run completed", "total_time", response.TotalTime, "average_waiting_time", response.AverageWaitingTime)
	return response, nil
}

// All runs every registered algorithm on the same request. Each run gets its
// own snapshot of the process list.
func (r *Runner) All(request requests.ScheduleRequests) (responses.CompareResponse, error) {
	compare := responses.CompareResponse{Results: make([]responses.ScheduleResponse, 0, len(Names()))}
	for _, name := range Names() {
		response, err := r.Run(name, request)
		if err != nil {
			return responses.CompareResponse{}, err
		}
		compare.Results = append(compare.Results, response)
	}
	return compare, nil
}
