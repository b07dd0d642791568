// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of active jobs per worker",
		},
		[]string{"task_type"},
	)

	AnalysesComposed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analyses_composed_total",
			Help: "Total number of funding analyses composed, by confidence band",
		},
		[]string{"confidence"},
	)

	AnalysisCacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analysis_cache_requests_total",
			Help: "Analysis cache lookups, by outcome (hit or miss)",
		},
		[]string{"outcome"},
	)

	QueriesByLanguage = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "queries_by_language_total",
			Help: "Queries processed, by detected language",
		},
		[]string{"language"},
	)
)
