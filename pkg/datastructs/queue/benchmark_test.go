package queue

import (
	"sync"
	"testing"
)

// ===========================================================================
// Benchmark Configuration
// ===========================================================================

type queueBenchConfig struct {
	name     string
	capacity int
}

var benchConfigs = []queueBenchConfig{
	{"Small/Cap64", 64},
	{"Medium/Cap1K", 1024},
	{"Large/Cap64K", 64 * 1024},
}

// ===========================================================================
// Queue Factory Registry
// ===========================================================================

// queueFactory creates a Queue[int] with the given capacity.
type queueFactory func(capacity int) Queue[int]

var queueImplementations = map[string]queueFactory{
	"Circular": func(capacity int) Queue[int] { return MustCircular[int](capacity) },
	"Locked": func(capacity int) Queue[int] {
		q, _ := NewLocked[int](capacity)
		return q
	},
}

// ===========================================================================
// Single-Threaded Benchmarks
// ===========================================================================

func BenchmarkEnqueue(b *testing.B) {
	for implName, factory := range queueImplementations {
		for _, cfg := range benchConfigs {
			b.Run(implName+"/"+cfg.name, func(b *testing.B) {
				q := factory(cfg.capacity)
				b.ResetTimer()
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if !q.Enqueue(i) {
						b.StopTimer()
						for !q.IsEmpty() {
							q.Dequeue()
						}
						b.StartTimer()
					}
				}
			})
		}
	}
}

func BenchmarkDequeue(b *testing.B) {
	for implName, factory := range queueImplementations {
		for _, cfg := range benchConfigs {
			b.Run(implName+"/"+cfg.name, func(b *testing.B) {
				q := factory(cfg.capacity)
				for i := 0; i < cfg.capacity; i++ {
					q.Enqueue(i)
				}

				b.ResetTimer()
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if _, ok := q.Dequeue(); !ok {
						b.StopTimer()
						for j := 0; j < cfg.capacity; j++ {
							q.Enqueue(j)
						}
						b.StartTimer()
					}
				}
			})
		}
	}
}

// BenchmarkEnqueueDequeue measures roundtrip Enqueue+Dequeue, which keeps
// head and tail wrapping around the backing slice.
func BenchmarkEnqueueDequeue(b *testing.B) {
	for implName, factory := range queueImplementations {
		for _, cfg := range benchConfigs {
			b.Run(implName+"/"+cfg.name, func(b *testing.B) {
				q := factory(cfg.capacity)
				b.ResetTimer()
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					q.Enqueue(i)
					q.Dequeue()
				}
			})
		}
	}
}

func BenchmarkItems(b *testing.B) {
	for implName, factory := range queueImplementations {
		b.Run(implName, func(b *testing.B) {
			q := factory(1024)
			for i := 0; i < 1024; i++ {
				q.Enqueue(i)
			}
			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = q.Items()
			}
		})
	}
}

// ===========================================================================
// Concurrent Benchmarks (Locked only)
// ===========================================================================

var concurrencyConfigs = []struct {
	name      string
	producers int
	consumers int
}{
	{"1P1C", 1, 1},
	{"4P4C", 4, 4},
}

func BenchmarkLocked_Concurrent(b *testing.B) {
	const capacity = 1024
	const opsPerGoroutine = 10000

	for _, cc := range concurrencyConfigs {
		b.Run(cc.name, func(b *testing.B) {
			for n := 0; n < b.N; n++ {
				q, _ := NewLocked[int](capacity)
				var wg sync.WaitGroup
				total := cc.producers * opsPerGoroutine

				wg.Add(cc.producers + cc.consumers)
				for p := 0; p < cc.producers; p++ {
					go func(id int) {
						defer wg.Done()
						for i := 0; i < opsPerGoroutine; i++ {
							for !q.Enqueue(id*opsPerGoroutine + i) {
								// Spin until a consumer frees a slot
							}
						}
					}(p)
				}

				perConsumer := total / cc.consumers
				for c := 0; c < cc.consumers; c++ {
					go func() {
						defer wg.Done()
						for got := 0; got < perConsumer; {
							if _, ok := q.Dequeue(); ok {
								got++
							}
						}
					}()
				}
				wg.Wait()
			}
		})
	}
}
