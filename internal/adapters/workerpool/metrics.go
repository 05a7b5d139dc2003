package workerpool

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "shrink"
	metricsSubsystem = "pool"
)

// Metrics holds the Prometheus collectors for a pool.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	TasksSubmitted prometheus.Counter
	TasksCompleted prometheus.Counter
	TasksFailed    prometheus.Counter
	TasksCollapsed prometheus.Counter
	ActiveWorkers  prometheus.Gauge
	TaskLatency    prometheus.Histogram
}

// NewMetrics creates the pool collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		TasksSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "tasks_submitted_total",
			Help:      "Total number of minify jobs submitted to the pool",
		}),
		TasksCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "tasks_completed_total",
			Help:      "Total number of minify jobs completed successfully",
		}),
		TasksFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "tasks_failed_total",
			Help:      "Total number of minify jobs that failed",
		}),
		TasksCollapsed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "tasks_collapsed_total",
			Help:      "Total number of submissions served by an identical in-flight job",
		}),
		ActiveWorkers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "active_workers",
			Help:      "Current number of workers running a minify job",
		}),
		TaskLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "task_latency_seconds",
			Help:      "Histogram of minify job execution latency",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	for _, c := range []prometheus.Collector{
		m.TasksSubmitted,
		m.TasksCompleted,
		m.TasksFailed,
		m.TasksCollapsed,
		m.ActiveWorkers,
		m.TaskLatency,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) submitted() {
	if m != nil {
		m.TasksSubmitted.Inc()
	}
}

func (m *Metrics) collapsed() {
	if m != nil {
		m.TasksCollapsed.Inc()
	}
}

func (m *Metrics) started() {
	if m != nil {
		m.ActiveWorkers.Inc()
	}
}

func (m *Metrics) finished(elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	m.ActiveWorkers.Dec()
	m.TaskLatency.Observe(elapsed.Seconds())
	if err != nil {
		m.TasksFailed.Inc()
		return
	}
	m.TasksCompleted.Inc()
}
