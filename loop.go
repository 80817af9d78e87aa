package dragdrop

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Timer is a pending call scheduled through a Scheduler.
type Timer interface {
	// Stop cancels the call. It reports whether the call was still pending.
	Stop() bool
}

// Scheduler defers work onto the execution context that owns the Manager.
// Callbacks must never run concurrently with Manager methods.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// Loop is a Scheduler backed by a task queue. Tasks run serially on the goroutine
// calling Run, or inside a host event loop selecting on Tasks.
type Loop struct {
	tasks     chan func()
	closed    chan struct{}
	closeOnce sync.Once
}

var _ Scheduler = (*Loop)(nil)

// NewLoop creates a loop with a buffered task queue.
func NewLoop() *Loop {
	return &Loop{
		tasks:  make(chan func(), 64),
		closed: make(chan struct{}),
	}
}

// Post queues fn for execution on the loop. It is safe to call from any goroutine.
// Tasks posted after Close are dropped.
func (l *Loop) Post(fn func()) {
	select {
	case <-l.closed:
		return
	default:
	}
	select {
	case <-l.closed:
	case l.tasks <- fn:
	}
}

// Tasks exposes the task queue, so that a host event loop can run the tasks
// in its own select statement.
func (l *Loop) Tasks() <-chan func() {
	return l.tasks
}

// Run executes the queued tasks until the context is done or the loop is closed.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.closed:
			return nil
		case fn := <-l.tasks:
			fn()
		}
	}
}

// Drain runs the tasks already queued without waiting for new ones
// and returns the number of tasks executed.
func (l *Loop) Drain() int {
	var n int
	for {
		select {
		case fn := <-l.tasks:
			fn()
			n++
		default:
			return n
		}
	}
}

// Close stops Run and drops further tasks.
func (l *Loop) Close() {
	l.closeOnce.Do(func() { close(l.closed) })
}

// AfterFunc runs fn on the loop once the duration elapsed.
func (l *Loop) AfterFunc(d time.Duration, fn func()) Timer {
	t := &loopTimer{}
	t.timer = time.AfterFunc(d, func() {
		l.Post(func() {
			// A timer stopped after its task was queued must not run.
			if t.stopped.Load() {
				return
			}
			t.fired.Store(true)
			fn()
		})
	})
	return t
}

type loopTimer struct {
	timer   *time.Timer
	stopped atomic.Bool
	fired   atomic.Bool
}

func (t *loopTimer) Stop() bool {
	t.timer.Stop()
	if t.stopped.Swap(true) {
		return false
	}
	return !t.fired.Load()
}
