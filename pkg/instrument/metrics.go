package instrument

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	verr "github.com/vango-dev/vrec/internal/errors"
	"github.com/vango-dev/vrec/pkg/surface"
	"github.com/vango-dev/vrec/pkg/vdom"
	"github.com/vango-dev/vrec/pkg/vrec"
)

// MetricsConfig configures the Prometheus collectors.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "vrec").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for commit duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus collectors.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "vrec",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics collects runtime metrics. It implements vrec.Observer.
type Metrics struct {
	renders        *prometheus.CounterVec
	commits        *prometheus.CounterVec
	commitDuration *prometheus.HistogramVec
	faults         *prometheus.CounterVec
	surfaceOps     *prometheus.CounterVec
	batchFlushes   prometheus.Counter
	batchUpdates   prometheus.Histogram

	now func() time.Time
}

var _ vrec.Observer = (*Metrics)(nil)

// NewMetrics registers the collectors and returns them.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		renders: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "renders_total",
			Help:        "Total number of component invocations",
			ConstLabels: config.ConstLabels,
		}, []string{"kind", "component"}),

		commits: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "commits_total",
			Help:        "Total number of reconcile passes",
			ConstLabels: config.ConstLabels,
		}, []string{"reason", "status"}),

		commitDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "commit_duration_seconds",
			Help:        "Reconcile pass duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"reason"}),

		faults: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "faults_total",
			Help:        "Total number of reconcile passes aborted by a fault",
			ConstLabels: config.ConstLabels,
		}, []string{"code"}),

		surfaceOps: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "surface_ops_total",
			Help:        "Total number of surface mutations",
			ConstLabels: config.ConstLabels,
		}, []string{"op"}),

		batchFlushes: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "batch_flushes_total",
			Help:        "Total number of batch windows that flushed updates",
			ConstLabels: config.ConstLabels,
		}),

		batchUpdates: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "batch_updates",
			Help:        "Distinct components updated per batch flush",
			ConstLabels: config.ConstLabels,
			Buckets:     []float64{1, 2, 5, 10, 25, 50, 100},
		}),

		now: time.Now,
	}
}

// ComponentRendered implements vrec.Observer.
func (m *Metrics) ComponentRendered(kind vdom.VKind, name string) {
	m.renders.WithLabelValues(kind.String(), name).Inc()
}

// CommitStarted implements vrec.Observer.
func (m *Metrics) CommitStarted(reason, name string) func(err error) {
	start := m.now()
	return func(err error) {
		m.commitDuration.WithLabelValues(reason).Observe(m.now().Sub(start).Seconds())
		if err != nil {
			m.commits.WithLabelValues(reason, "fault").Inc()
			m.faults.WithLabelValues(faultCode(err)).Inc()
			return
		}
		m.commits.WithLabelValues(reason, "ok").Inc()
	}
}

// BatchFlushed implements vrec.Observer.
func (m *Metrics) BatchFlushed(updates int) {
	m.batchFlushes.Inc()
	m.batchUpdates.Observe(float64(updates))
}

// RecordSurfaceOp counts one surface mutation.
func (m *Metrics) RecordSurfaceOp(op surface.Op) {
	m.surfaceOps.WithLabelValues(op.String()).Inc()
}

// Surface wraps s so that every mutation is counted.
func (m *Metrics) Surface(s surface.Surface) surface.Surface {
	return surface.Observe(s, func(mu surface.Mutation) {
		m.RecordSurfaceOp(mu.Op)
	})
}

func faultCode(err error) string {
	if f, ok := verr.AsFault(err); ok {
		return f.Code
	}
	return "unknown"
}
