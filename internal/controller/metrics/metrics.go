// Package metrics implements C8: per-controller run/failure counters, a duration
// histogram, and a process-wide diagnostics struct, registered into the manager's
// own Prometheus registry (sigs.k8s.io/controller-runtime/pkg/metrics) so the existing
// /metrics endpoint serves them without any additional HTTP surface.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	crmetrics "sigs.k8s.io/controller-runtime/pkg/metrics"
)

// durationBuckets are the histogram buckets specified by §4.2/§4.8.
var durationBuckets = []float64{0.01, 0.1, 0.25, 0.5, 1, 5, 15, 60}

// Recorder is the metrics surface for a single controller (lrgs-controller or
// database-controller). One Recorder is created per binary and shared by reference
// across all reconciles, per §9's "process-wide singleton" design note.
type Recorder struct {
	runs        prometheus.Counter
	failures    *prometheus.CounterVec
	duration    prometheus.Histogram
	Diagnostics *Diagnostics
}

// NewRecorder builds and registers a Recorder under the given controller name, e.g.
// "lrgs" or "database". Label/metric names follow the prefix_noun_unit convention.
func NewRecorder(controller string) *Recorder {
	r := &Recorder{
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        controller + "_controller_runs_total",
			Help:        "Total number of reconcile invocations.",
			ConstLabels: prometheus.Labels{"controller": controller},
		}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: controller + "_controller_failures_total",
			Help: "Total number of reconcile failures, labeled by instance and error category.",
		}, []string{"instance", "error"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        controller + "_controller_reconcile_duration_seconds",
			Help:        "Reconcile duration in seconds.",
			Buckets:     durationBuckets,
			ConstLabels: prometheus.Labels{"controller": controller},
		}),
		Diagnostics: &Diagnostics{Reporter: controller},
	}
	crmetrics.Registry.MustRegister(r.runs, r.failures, r.duration)
	return r
}

// ObserveRun increments the run counter, stamps the diagnostics clock, and returns a
// function that must be deferred to record elapsed duration regardless of outcome -
// "the histogram sample is collected by a scope-bound timer that observes on scope
// exit, regardless of outcome" (§4.8).
func (r *Recorder) ObserveRun() func() {
	r.runs.Inc()
	r.Diagnostics.Touch()
	start := time.Now()
	return func() {
		r.duration.Observe(time.Since(start).Seconds())
	}
}

// Failure increments the failure counter for instance under errorLabel, a lowercased,
// fingerprinted error category (§4.2).
func (r *Recorder) Failure(instance, errorLabel string) {
	r.failures.WithLabelValues(instance, errorLabel).Inc()
}

// Diagnostics is the read-mostly process-wide struct consumed by the out-of-scope HTTP
// admin surface (§4.8/§6.2). LastEvent is guarded by an RWMutex: writes happen once per
// reconcile, reads happen from the HTTP surface's own goroutine pool.
type Diagnostics struct {
	mu        sync.RWMutex
	lastEvent time.Time
	Reporter  string
}

// Touch stamps LastEvent to now. Called once per reconcile invocation.
func (d *Diagnostics) Touch() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lastEvent = time.Now()
}

// LastEvent returns the last time a reconcile was observed.
func (d *Diagnostics) LastEvent() time.Time {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.lastEvent
}
