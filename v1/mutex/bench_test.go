package mutex

import (
	"sync"
	"testing"
)

func BenchmarkMutexUncontended(b *testing.B) {
	m := New()
	defer m.Close()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Lock()
		m.Unlock()
	}
}

func BenchmarkMutexContended(b *testing.B) {
	m := New()
	defer m.Close()
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			m.Lock()
			m.Unlock()
		}
	})
}

func BenchmarkInstrumentedUncontended(b *testing.B) {
	m := New()
	defer m.Close()
	im := NewInstrumented(m)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		im.Lock()
		im.Unlock()
	}
}

func BenchmarkSyncMutexBaseline(b *testing.B) {
	var m sync.Mutex
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			m.Lock()
			m.Unlock()
		}
	})
}
