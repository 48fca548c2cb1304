package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestPool_Create(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		want    int
	}{
		{"four", 4, 4},
		{"zero uses GOMAXPROCS", 0, runtime.GOMAXPROCS(0)},
		{"negative uses GOMAXPROCS", -5, runtime.GOMAXPROCS(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(tt.workers, 4)
			defer pool.Close()

			if pool.Workers() != tt.want {
				t.Errorf("Workers() = %d, want %d", pool.Workers(), tt.want)
			}
			if !pool.IsRunning() {
				t.Error("Pool should be running after creation")
			}
		})
	}
}

func TestPool_SubmitToRunsOnSlot(t *testing.T) {
	pool := NewPool(3, 16)
	defer pool.Close()

	// Each slot appends to its own slice without locking; the race
	// detector flags any slot running on two goroutines at once.
	results := make([][]int, 3)
	var wg sync.WaitGroup
	for i := range 30 {
		slot := i % 3
		wg.Add(1)
		if !pool.SubmitTo(slot, func() {
			defer wg.Done()
			results[slot] = append(results[slot], i)
		}) {
			t.Fatalf("SubmitTo(%d) = false", slot)
		}
	}
	wg.Wait()

	for slot, got := range results {
		if len(got) != 10 {
			t.Fatalf("slot %d ran %d items, want 10", slot, len(got))
		}
		for k := 1; k < len(got); k++ {
			if got[k] < got[k-1] {
				t.Errorf("slot %d ran out of submission order: %v", slot, got)
				break
			}
		}
	}
}

func TestPool_SubmitToInvalid(t *testing.T) {
	pool := NewPool(2, 1)
	defer pool.Close()

	tests := []struct {
		name string
		slot int
		fn   func()
	}{
		{"nil func", 0, nil},
		{"negative slot", -1, func() {}},
		{"slot out of range", 2, func() {}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if pool.SubmitTo(tt.slot, tt.fn) {
				t.Error("SubmitTo() = true, want false")
			}
		})
	}
}

func TestPool_CloseDrainsQueuedWork(t *testing.T) {
	pool := NewPool(2, 64)

	var counter atomic.Int64
	for i := range 100 {
		pool.SubmitTo(i%2, func() {
			counter.Add(1)
		})
	}
	pool.Close()

	if got := counter.Load(); got != 100 {
		t.Errorf("completed %d items before Close returned, want 100", got)
	}
	if pool.IsRunning() {
		t.Error("Pool should not be running after close")
	}
}

func TestPool_CloseIdempotent(t *testing.T) {
	pool := NewPool(4, 1)

	pool.Close()
	pool.Close()
	pool.Close()

	if pool.IsRunning() {
		t.Error("Pool should not be running after close")
	}
}

func TestPool_SubmitAfterClose(t *testing.T) {
	pool := NewPool(4, 1)
	pool.Close()

	var executed atomic.Bool
	if pool.SubmitTo(0, func() { executed.Store(true) }) {
		t.Error("SubmitTo() after Close = true")
	}

	time.Sleep(20 * time.Millisecond)
	if executed.Load() {
		t.Error("Work was executed on closed pool")
	}
}

func TestPool_Concurrent(t *testing.T) {
	pool := NewPool(4, 8)
	defer pool.Close()

	var counter atomic.Int64
	const goroutines, perGoroutine = 10, 50

	var done sync.WaitGroup
	var submitters sync.WaitGroup
	submitters.Add(goroutines)
	for g := range goroutines {
		go func() {
			defer submitters.Done()
			for range perGoroutine {
				done.Add(1)
				pool.SubmitTo(g%4, func() {
					defer done.Done()
					counter.Add(1)
				})
			}
		}()
	}
	submitters.Wait()
	done.Wait()

	if got := counter.Load(); got != goroutines*perGoroutine {
		t.Errorf("counter = %d, want %d", got, goroutines*perGoroutine)
	}
}

func TestPool_NoGoroutineLeak(t *testing.T) {
	before := runtime.NumGoroutine()

	for range 10 {
		pool := NewPool(4, 1)
		pool.Close()
	}

	time.Sleep(50 * time.Millisecond)
	if after := runtime.NumGoroutine(); after > before+2 {
		t.Errorf("goroutines before = %d, after = %d", before, after)
	}
}

func TestPool_QueuedWork(t *testing.T) {
	pool := NewPool(1, 4)
	defer pool.Close()

	release := make(chan struct{})
	started := make(chan struct{})
	pool.SubmitTo(0, func() {
		close(started)
		<-release
	})
	<-started
	for range 3 {
		pool.SubmitTo(0, func() {})
	}
	if got := pool.QueuedWork(); got != 3 {
		t.Errorf("QueuedWork() = %d, want 3", got)
	}
	close(release)
}
