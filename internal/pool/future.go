package pool

import (
	"context"
	"fmt"
	"time"

	apperrors "github.com/abdullahfazal969-alt/News-agent/internal/errors"
)

// Future is the completion handle for a submitted task. It is resolved
// exactly once by the worker that runs the task.
type Future[R any] struct {
	done  chan struct{}
	value R
	err   error
}

// Submit enqueues fn for execution on the pool and returns its future
// without blocking: the queue has no fixed capacity, so callers never wait
// for a free worker here. After Close has begun it fails with
// apperrors.ErrPoolClosed.
//
// A fn that returns an error or panics resolves the future with
// apperrors.WorkerExecutionError wrapping the cause; the pool itself keeps
// running. Submit is a package-level function because methods cannot
// introduce type parameters.
func Submit[R any](p *Pool, fn func() (R, error)) (*Future[R], error) {
	f := &Future[R]{done: make(chan struct{})}

	accepted := p.submit(func() {
		start := time.Now()
		value, err := runTask(p, fn)
		taskDuration.Observe(time.Since(start).Seconds())

		if err != nil {
			tasksCompleted.WithLabelValues("error").Inc()
			f.resolve(value, apperrors.WorkerExecutionError{Cause: err})
			return
		}
		tasksCompleted.WithLabelValues("ok").Inc()
		f.resolve(value, nil)
	})
	if !accepted {
		return nil, apperrors.ErrPoolClosed
	}
	return f, nil
}

// runTask executes fn, converting a panic into an error so one bad task
// cannot take down a worker.
func runTask[R any](p *Pool, fn func() (R, error)) (value R, err error) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Error().Interface("panic", r).Msg("task panicked in worker")
			err = fmt.Errorf("task panicked: %v", r)
		}
	}()
	return fn()
}

// resolve publishes the task outcome and wakes every waiter.
func (f *Future[R]) resolve(value R, err error) {
	f.value = value
	f.err = err
	close(f.done)
}

// Wait blocks the calling goroutine until the task completes or ctx is done,
// whichever comes first. On ctx expiry the task itself keeps running to
// completion inside the pool; only the wait is abandoned.
func (f *Future[R]) Wait(ctx context.Context) (R, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero R
		return zero, ctx.Err()
	}
}

// Done exposes completion for select-based consumers such as progress views.
// The channel is closed once the task has resolved.
func (f *Future[R]) Done() <-chan struct{} {
	return f.done
}
