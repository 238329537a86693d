package workload

import (
	"time"

	"go.uber.org/zap"
)

type Report struct {
	RunID   string
	Workers int

	// Throughput is the sum over workers of successful runs per second.
	Throughput float64
	// AvgLatency is total measured time over total successful runs.
	AvgLatency time.Duration

	TotalRuns     int
	FailedRuns    int
	FailureRate   float64 // percent
	CustomerRatio float64 // percent of runs that were customer interactions
}

func NewReport(runID string, results []Result) Report {
	rep := Report{RunID: runID, Workers: len(results)}

	var elapsed time.Duration
	var successful, customer int
	for _, r := range results {
		if r.Elapsed > 0 {
			rep.Throughput += float64(r.Successful) / r.Elapsed.Seconds()
		}
		elapsed += r.Elapsed
		successful += r.Successful
		customer += r.CustomerRuns
		rep.TotalRuns += r.Total
		rep.FailedRuns += r.Total - r.Successful
	}

	if successful > 0 {
		rep.AvgLatency = elapsed / time.Duration(successful)
	}
	if rep.TotalRuns > 0 {
		rep.FailureRate = float64(rep.FailedRuns) / float64(rep.TotalRuns) * 100
		rep.CustomerRatio = float64(customer) / float64(rep.TotalRuns) * 100
	}
	return rep
}

func (r Report) Log(log *zap.Logger) {
	log.Info("workload finished",
		zap.String("run_id", r.RunID),
		zap.Int("workers", r.Workers),
		zap.Float64("throughput_runs_per_sec", r.Throughput),
		zap.Duration("avg_latency", r.AvgLatency),
		zap.Int("total_runs", r.TotalRuns),
		zap.Int("failed_runs", r.FailedRuns),
		zap.Float64("failure_rate_pct", r.FailureRate),
		zap.Float64("customer_ratio_pct", r.CustomerRatio),
	)
}
