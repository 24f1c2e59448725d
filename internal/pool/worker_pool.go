package pool

import (
	"context"
	"sync"
)

// Task is one unit of scoring work. The context is the pool's run context;
// tasks should return early when it is cancelled.
type Task func(ctx context.Context) error

type Result struct {
	Err error
}

// WorkerPool fans scoring tasks out over a fixed number of goroutines.
// The data-store fetch dominates each task's latency, so the pool is
// sized to I/O concurrency rather than CPU count.
type WorkerPool struct {
	workers int
	tasks   chan Task
	wg      sync.WaitGroup
}

// New creates a pool with the given worker count and task buffer. Both
// are clamped to sane minimums.
func New(workers, buffer int) *WorkerPool {
	if workers <= 0 {
		workers = 1
	}
	if buffer < 0 {
		buffer = 0
	}
	return &WorkerPool{
		workers: workers,
		tasks:   make(chan Task, buffer),
	}
}

// Submit enqueues a task. Blocks when the buffer is full.
func (p *WorkerPool) Submit(t Task) {
	if p == nil || t == nil {
		return
	}
	p.tasks <- t
}

// Close signals that no more tasks will be submitted.
func (p *WorkerPool) Close() {
	if p == nil {
		return
	}
	close(p.tasks)
}

// Run starts the workers and returns a channel carrying one Result per
// executed task. The channel closes once all workers drain. Cancelling
// ctx stops the workers best-effort; tasks already running finish on
// their own terms.
func (p *WorkerPool) Run(ctx context.Context) <-chan Result {
	out := make(chan Result, p.workers+cap(p.tasks))

	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case t, ok := <-p.tasks:
					if !ok {
						return
					}
					err := t(ctx)
					select {
					case <-ctx.Done():
						return
					case out <- Result{Err: err}:
					}
				}
			}
		}()
	}

	go func() {
		p.wg.Wait()
		close(out)
	}()

	return out
}
