package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "flowsample"

// Recorder holds the Prometheus collectors for one program run. It uses its
// own registry, so several recorders can coexist in tests.
type Recorder struct {
	registry       *prometheus.Registry
	nodesAllocated prometheus.Counter
	nodesReleased  prometheus.Counter
	nodesLive      prometheus.Gauge
	stepDuration   *prometheus.HistogramVec
	stepFailures   *prometheus.CounterVec
	fibonacciValue prometheus.Gauge
}

// NewRecorder creates a Recorder with all collectors registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		nodesAllocated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nodes_allocated_total",
			Help:      "List nodes acquired from the arena.",
		}),
		nodesReleased: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nodes_released_total",
			Help:      "List nodes returned to the arena.",
		}),
		nodesLive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "nodes_live",
			Help:      "List nodes currently held.",
		}),
		stepDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "step_duration_seconds",
			Help:      "Wall time of each demonstration step.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 7),
		}, []string{"step"}),
		stepFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "step_failures_total",
			Help:      "Demonstration steps that returned an error.",
		}, []string{"step"}),
		fibonacciValue: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "fibonacci_value",
			Help:      "Last Fibonacci value computed.",
		}),
	}
	r.registry.MustRegister(
		r.nodesAllocated,
		r.nodesReleased,
		r.nodesLive,
		r.stepDuration,
		r.stepFailures,
		r.fibonacciValue,
	)
	return r
}

// NodeAllocated records one node acquisition.
func (r *Recorder) NodeAllocated() {
	r.nodesAllocated.Inc()
	r.nodesLive.Inc()
}

// NodeReleased records one node release.
func (r *Recorder) NodeReleased() {
	r.nodesReleased.Inc()
	r.nodesLive.Dec()
}

// ObserveStep records the duration of a step and whether it failed.
func (r *Recorder) ObserveStep(step string, d time.Duration, err error) {
	r.stepDuration.WithLabelValues(step).Observe(d.Seconds())
	if err != nil {
		r.stepFailures.WithLabelValues(step).Inc()
	}
}

// SetFibonacci records the computed Fibonacci value.
func (r *Recorder) SetFibonacci(v int) {
	r.fibonacciValue.Set(float64(v))
}

// Registry exposes the underlying registry as a Gatherer.
func (r *Recorder) Registry() prometheus.Gatherer {
	return r.registry
}

// WriteToFile writes the current metrics in the Prometheus text format.
// The file is written atomically.
func (r *Recorder) WriteToFile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
