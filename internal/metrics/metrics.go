// Package metrics holds the Prometheus collectors of the messaging core.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics groups every collector the daemon exports.
type Metrics struct {
	Registry *prometheus.Registry

	operations    *prometheus.CounterVec
	bestEffort    *prometheus.CounterVec
	rateLimited   *prometheus.CounterVec
	subscriptions *prometheus.GaugeVec
	deliveries    *prometheus.CounterVec
	coalesced     *prometheus.CounterVec
	loadSeconds   *prometheus.HistogramVec
	busLag        prometheus.Counter
}

// New creates the collectors on a fresh registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dmsync",
			Name:      "operations_total",
			Help:      "Messaging operations by name and result class.",
		}, []string{"op", "result"}),
		bestEffort: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dmsync",
			Name:      "best_effort_failures_total",
			Help:      "Presence and unread writes that failed and were only logged.",
		}, []string{"component"}),
		rateLimited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dmsync",
			Name:      "rate_limited_total",
			Help:      "Write operations rejected by the per-user limiter.",
		}, []string{"op"}),
		subscriptions: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "dmsync",
			Name:      "subscriptions_active",
			Help:      "Live sync subscriptions by namespace kind.",
		}, []string{"kind"}),
		deliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dmsync",
			Name:      "deliveries_total",
			Help:      "Snapshots handed to subscribers.",
		}, []string{"kind"}),
		coalesced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dmsync",
			Name:      "deliveries_coalesced_total",
			Help:      "Undelivered snapshots replaced by a newer one.",
		}, []string{"kind"}),
		loadSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "dmsync",
			Name:      "snapshot_load_seconds",
			Help:      "Time to load a namespace snapshot from the store.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 14),
		}, []string{"kind"}),
		busLag: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "dmsync",
			Name:      "bus_lag_total",
			Help:      "Times the sync engine fell behind the event bus and reloaded every namespace.",
		}),
	}
	m.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.operations,
		m.bestEffort,
		m.rateLimited,
		m.subscriptions,
		m.deliveries,
		m.coalesced,
		m.loadSeconds,
		m.busLag,
	)
	return m
}

// Operation records the outcome of a facade operation.
func (m *Metrics) Operation(op, result string) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(op, result).Inc()
}

// BestEffortFailure records a swallowed presence or unread failure.
func (m *Metrics) BestEffortFailure(component string) {
	if m == nil {
		return
	}
	m.bestEffort.WithLabelValues(component).Inc()
}

// RateLimited records a rejected write.
func (m *Metrics) RateLimited(op string) {
	if m == nil {
		return
	}
	m.rateLimited.WithLabelValues(op).Inc()
}

// SubscriptionAdded and SubscriptionRemoved track live subscriptions.
func (m *Metrics) SubscriptionAdded(kind string) {
	if m == nil {
		return
	}
	m.subscriptions.WithLabelValues(kind).Inc()
}

func (m *Metrics) SubscriptionRemoved(kind string) {
	if m == nil {
		return
	}
	m.subscriptions.WithLabelValues(kind).Dec()
}

// Delivered records a snapshot placed in a subscriber mailbox; coalesced
// is true when it replaced one the subscriber had not read yet.
func (m *Metrics) Delivered(kind string, coalesced bool) {
	if m == nil {
		return
	}
	m.deliveries.WithLabelValues(kind).Inc()
	if coalesced {
		m.coalesced.WithLabelValues(kind).Inc()
	}
}

// ObserveLoad records how long a snapshot load took.
func (m *Metrics) ObserveLoad(kind string, d time.Duration) {
	if m == nil {
		return
	}
	m.loadSeconds.WithLabelValues(kind).Observe(d.Seconds())
}

// BusLag records a full reload caused by missed bus events.
func (m *Metrics) BusLag() {
	if m == nil {
		return
	}
	m.busLag.Inc()
}
