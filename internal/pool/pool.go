// Package pool provides a bounded worker pool for executing CPU-bound tasks
// off the caller's goroutine, with future-style completion handles.
//
// A fixed set of worker goroutines is started when the pool opens and drains
// a FIFO submission queue. Submission never blocks the caller: the queue has
// no fixed capacity, and the degree of real parallelism is bounded only by
// the worker count. Close drains every accepted task before releasing the
// workers, so an accepted submission is always executed.
package pool

import (
	"sync"

	"github.com/rs/zerolog"

	apperrors "github.com/abdullahfazal969-alt/News-agent/internal/errors"
	"github.com/abdullahfazal969-alt/News-agent/internal/logging"
)

// Pool is a bounded worker pool. Open it with Open, hand it tasks with
// Submit, and release it with Close. The zero value is not usable.
type Pool struct {
	workers int
	log     zerolog.Logger

	mu        sync.Mutex
	cond      *sync.Cond
	queue     []func()
	closed    bool
	active    int
	completed int

	wg sync.WaitGroup
}

// Stats is a point-in-time snapshot of pool activity.
type Stats struct {
	// Workers is the fixed worker count the pool was opened with.
	Workers int
	// Active is the number of tasks currently executing.
	Active int
	// Queued is the number of accepted tasks waiting for a worker.
	Queued int
	// Completed is the number of tasks that have finished, in error or not.
	Completed int
}

// Open starts a pool with maxWorkers resident workers. It fails with
// apperrors.PoolInitError when maxWorkers < 1; no goroutines are started in
// that case.
//
// Callers own the pool lifecycle and should pair Open with a deferred Close
// so the workers are released on every exit path.
func Open(maxWorkers int) (*Pool, error) {
	if maxWorkers < 1 {
		return nil, apperrors.PoolInitError{Workers: maxWorkers}
	}

	p := &Pool{
		workers: maxWorkers,
		log:     logging.NewLogger("pool"),
	}
	p.cond = sync.NewCond(&p.mu)

	p.wg.Add(maxWorkers)
	for i := 0; i < maxWorkers; i++ {
		go p.worker(i)
	}

	p.log.Debug().Int("workers", maxWorkers).Msg("worker pool opened")
	return p, nil
}

// worker drains the submission queue until the pool is closed and empty.
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for {
		p.mu.Lock()
		for len(p.queue) == 0 && !p.closed {
			p.cond.Wait()
		}
		if len(p.queue) == 0 {
			// Closed and drained.
			p.mu.Unlock()
			p.log.Debug().Int("worker", id).Msg("worker exiting")
			return
		}
		job := p.queue[0]
		p.queue = p.queue[1:]
		p.active++
		p.mu.Unlock()

		queueDepth.Dec()
		activeWorkers.Inc()
		job()
		activeWorkers.Dec()

		p.mu.Lock()
		p.active--
		p.completed++
		p.mu.Unlock()
	}
}

// Close blocks until every accepted task (queued or executing) has completed,
// then releases the worker goroutines. It is idempotent and safe to call with
// no submissions; concurrent callers all block until the pool is drained.
// Submissions arriving after Close has begun fail with apperrors.ErrPoolClosed.
func (p *Pool) Close() {
	p.mu.Lock()
	already := p.closed
	p.closed = true
	queued := len(p.queue)
	p.mu.Unlock()

	if !already {
		p.log.Debug().Int("queued", queued).Msg("worker pool closing")
	}
	p.cond.Broadcast()
	p.wg.Wait()

	if !already {
		p.mu.Lock()
		completed := p.completed
		p.mu.Unlock()
		p.log.Debug().Int("completed", completed).Msg("worker pool closed")
	}
}

// Stats returns a snapshot of the pool's current activity.
func (p *Pool) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Stats{
		Workers:   p.workers,
		Active:    p.active,
		Queued:    len(p.queue),
		Completed: p.completed,
	}
}

// submit appends a wrapped job to the FIFO queue. It reports false when the
// pool is closed, in which case the job was not accepted.
func (p *Pool) submit(job func()) bool {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return false
	}
	p.queue = append(p.queue, job)
	p.cond.Signal()
	p.mu.Unlock()

	tasksSubmitted.Inc()
	queueDepth.Inc()
	return true
}
