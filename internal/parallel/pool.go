// Package parallel provides a worker pool whose work items are addressed
// to a fixed worker slot.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of worker goroutines, each with its own queue.
//
// Work submitted to a slot always runs on that slot's goroutine, in
// submission order, so state owned by a slot is never touched by two
// goroutines at once.
//
// Thread safety: Pool is safe for concurrent use.
type Pool struct {
	workers int

	// queues holds the per-slot work queues.
	queues []chan func()

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to finish.
	wg sync.WaitGroup

	// mu orders submissions against Close.
	mu      sync.RWMutex
	running atomic.Bool
}

// NewPool creates a pool with the given number of worker slots.
// If workers is 0 or negative, GOMAXPROCS is used.
// The pool starts immediately and workers begin waiting for work.
func NewPool(workers, queueSize int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if queueSize < 1 {
		queueSize = 1
	}

	p := &Pool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *Pool) worker(slot int) {
	defer p.wg.Done()

	queue := p.queues[slot]
	for {
		select {
		case <-p.done:
			// Drain remaining work before exiting
			p.drainQueue(queue)
			return
		case work := <-queue:
			if work != nil {
				work()
			}
		}
	}
}

func (p *Pool) drainQueue(queue chan func()) {
	for {
		select {
		case work := <-queue:
			if work != nil {
				work()
			}
		default:
			return
		}
	}
}

// SubmitTo queues fn on the worker of slot. It blocks while that queue is
// full and returns false without queuing when the pool is closed or slot
// is out of range.
func (p *Pool) SubmitTo(slot int, fn func()) bool {
	if fn == nil || slot < 0 || slot >= p.workers {
		return false
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.running.Load() {
		return false
	}
	select {
	case p.queues[slot] <- fn:
		return true
	case <-p.done:
		return false
	}
}

// Close stops accepting work, runs everything already queued and stops
// the workers. Close is safe to call multiple times.
func (p *Pool) Close() {
	p.mu.Lock()
	if !p.running.CompareAndSwap(true, false) {
		p.mu.Unlock()
		return
	}
	close(p.done)
	p.mu.Unlock()

	p.wg.Wait()
}

// Workers returns the number of worker slots.
func (p *Pool) Workers() int {
	return p.workers
}

// IsRunning returns true if the pool is still accepting work.
func (p *Pool) IsRunning() bool {
	return p.running.Load()
}

// QueuedWork returns the number of queued work items.
// This is an approximation as queues can change while iterating.
func (p *Pool) QueuedWork() int {
	total := 0
	for _, q := range p.queues {
		total += len(q)
	}
	return total
}
