package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// AcquireCounter tracks the number of lock acquisitions.
	AcquireCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hostmutex_acquire_total",
		Help: "Total number of lock acquisitions",
	})
	// ReleaseCounter tracks the number of lock releases.
	ReleaseCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hostmutex_release_total",
		Help: "Total number of lock releases",
	})
	// WaitSeconds observes the time spent blocked waiting for ownership.
	WaitSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "hostmutex_wait_seconds",
		Help:    "Time spent blocked waiting for lock ownership",
		Buckets: prometheus.ExponentialBuckets(1e-6, 10, 8),
	})
)

// NewRegistry creates a new Prometheus registry.
func NewRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}

// RegisterLockMetrics registers the hostmutex metrics on the provided registry.
func RegisterLockMetrics(reg prometheus.Registerer) {
	reg.MustRegister(AcquireCounter, ReleaseCounter, WaitSeconds)
}
