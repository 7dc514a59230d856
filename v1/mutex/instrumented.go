package mutex

import (
	"time"

	"github.com/mirkobrombin/go-hostmutex/v1/metrics"
)

// Instrumented wraps a Mutex and reports acquisitions, releases and
// lock-wait time through the collectors in the metrics package. The
// plain Mutex stays free of this overhead; wrap only the locks worth
// observing.
type Instrumented struct {
	mu *Mutex
}

// NewInstrumented returns an instrumented view of m. The caller remains
// responsible for closing m.
func NewInstrumented(m *Mutex) *Instrumented {
	return &Instrumented{mu: m}
}

// Lock acquires the underlying mutex, recording the time spent waiting.
func (i *Instrumented) Lock() {
	start := time.Now()
	i.mu.Lock()
	metrics.WaitSeconds.Observe(time.Since(start).Seconds())
	metrics.AcquireCounter.Inc()
}

// Unlock releases the underlying mutex.
func (i *Instrumented) Unlock() {
	i.mu.Unlock()
	metrics.ReleaseCounter.Inc()
}

// Do runs fn while holding the underlying mutex.
func (i *Instrumented) Do(fn func()) {
	i.Lock()
	defer i.Unlock()
	fn()
}
