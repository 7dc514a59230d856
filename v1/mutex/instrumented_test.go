package mutex

import (
	"testing"

	"github.com/mirkobrombin/go-hostmutex/v1/metrics"
)

func TestInstrumentedCountsAcquisitions(t *testing.T) {
	reg := metrics.NewRegistry()
	metrics.RegisterLockMetrics(reg)

	m := New()
	defer m.Close()
	im := NewInstrumented(m)
	for i := 0; i < 3; i++ {
		im.Lock()
		im.Unlock()
	}
	im.Do(func() {})

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	var acquires float64
	for _, mf := range mfs {
		if mf.GetName() == "hostmutex_acquire_total" {
			acquires = mf.GetMetric()[0].GetCounter().GetValue()
		}
	}
	if acquires < 4 {
		t.Fatalf("expected at least 4 acquisitions recorded, got %v", acquires)
	}
}
