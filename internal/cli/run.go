package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"cpu-scheduler/internal/loader"
	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/schedulers"
)

func newRunCmd() *cobra.Command {
	var (
		algorithm string
		quantum   int
		output    string
	)

	cmd := &cobra.Command{
		Use:   "run <process-file>",
		Short: "Schedule the processes in a CSV or YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := loadRequest(args[0], cmd.Flags().Changed("quantum"), quantum)
			if err != nil {
				return err
			}
			runner := schedulers.NewRunner(logger, cfg.RoundRobinTimeQuantum)
			response, err := runner.Run(algorithm, request)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if output == "json" {
				return writeJSON(w, response)
			}
			report.Write(w, response)
			return nil
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", schedulers.FCFS, "Algorithm (fcfs, sjf, rr)")
	cmd.Flags().IntVarP(&quantum, "quantum", "q", 0, "Round robin time quantum (overrides file and config)")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format (table, json)")
	return cmd
}

func newCompareCmd() *cobra.Command {
	var (
		quantum int
		output  string
	)

	cmd := &cobra.Command{
		Use:   "compare <process-file>",
		Short: "Schedule the processes with every algorithm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := loadRequest(args[0], cmd.Flags().Changed("quantum"), quantum)
			if err != nil {
				return err
			}
			runner := schedulers.NewRunner(logger, cfg.RoundRobinTimeQuantum)
			compare, err := runner.All(request)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if output == "json" {
				return writeJSON(w, compare)
			}
			report.WriteComparison(w, compare)
			return nil
		},
	}

	cmd.Flags().IntVarP(&quantum, "quantum", "q", 0, "Round robin time quantum (overrides file and config)")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format (table, json)")
	return cmd
}

// loadRequest reads a process file. The quantum flag wins over the file's
// quantum, which wins over the configured default.
func loadRequest(path string, quantumSet bool, quantum int) (requests.ScheduleRequests, error) {
	workload, err := loader.Load(path)
	if err != nil {
		return requests.ScheduleRequests{}, err
	}
	logger.Debug("loaded process file", "path", path, "processes", len(workload.Processes))

	request := requests.ScheduleRequests{Jobs: make([]requests.Job, 0, len(workload.Processes))}
	for _, p := range workload.Processes {
		request.Jobs = append(request.Jobs, requests.Job{
			ProcessId:   p.ID,
			ArrivalTime: p.Arrival,
			BurstTime:   p.Burst,
		})
	}
	switch {
	case quantumSet:
		request.TimeQuantum = &quantum
	case workload.Quantum != nil:
		request.TimeQuantum = workload.Quantum
	}
	return request, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
