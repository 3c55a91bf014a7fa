package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/util"
)

func generateResponse(algorithm string, results []core.ScheduleResult, timeline []core.TimelineBlock) responses.ScheduleResponse {
	proccessDetails := make([]responses.ProcessResponse, 0, len(results))
	for _, result := range results {
		proccessDetails = append(proccessDetails, generateProcessDetails(result))
	}
	averageWaitingTime, averageResponseTime, averageTimeAroundTime := util.CalculateAverage(proccessDetails)

	cpuMetric := core.MetricOf(timeline)
	var response = responses.ScheduleResponse{
		Algorithm:             algorithm,
		TotalTime:             cpuMetric.TotalTime,
		IdleTime:              cpuMetric.IdleTime,
		CpuUtilization:        util.Ratio(cpuMetric.UtilizationTime, cpuMetric.TotalTime),
		CpuThroughput:         util.Ratio(len(results), cpuMetric.TotalTime),
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTimeAroundTime,
		Details:               proccessDetails,
		Timeline:              generateGantt(timeline),
	}
	return response
}

func generateProcessDetails(result core.ScheduleResult) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      result.ID,
		ArrivalTime:    result.Arrival,
		BurstTime:      result.Burst,
		StartTime:      result.Start,
		CompletionTime: result.Completion,
		TurnAroundTime: result.Turnaround,
		WaitingTime:    result.Waiting,
		ResponseTime:   result.Start - result.Arrival,
	}
}

func generateGantt(timeline []core.TimelineBlock) []responses.GanttBlock {
	blocks := make([]responses.GanttBlock, 0, len(timeline))
	for _, b := range timeline {
		blocks = append(blocks, responses.GanttBlock{
			ProcessId: b.ID,
			Start:     b.Start,
			End:       b.End,
			IsIdle:    b.IsIdle,
		})
	}
	return blocks
}
