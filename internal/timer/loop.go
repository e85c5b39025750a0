package timer

import (
	"context"
	"sync"
	"time"
)

// Loop is a Clock whose callbacks all run on the goroutine executing Run,
// one at a time. State touched only from callbacks needs no locking.
type Loop struct {
	tasks  chan func()
	done   chan struct{}
	exited chan struct{}
	once   sync.Once
}

func NewLoop() *Loop {
	return &Loop{
		tasks:  make(chan func()),
		done:   make(chan struct{}),
		exited: make(chan struct{}),
	}
}

// AfterFunc queues f onto the loop once d has elapsed.
func (l *Loop) AfterFunc(d time.Duration, f func()) Handle {
	return time.AfterFunc(d, func() { l.Post(f) })
}

// Post hands f to the loop and waits until the loop accepts it. It returns
// false if the loop is closing. Post must not be called from a callback
// running on the loop itself.
func (l *Loop) Post(f func()) bool {
	select {
	case l.tasks <- f:
		return true
	case <-l.done:
		return false
	}
}

// Run executes queued callbacks until ctx is cancelled or Close is called.
// It must be called at most once.
func (l *Loop) Run(ctx context.Context) {
	defer close(l.exited)
	defer l.Close()

	for {
		select {
		case f := <-l.tasks:
			f()
		case <-ctx.Done():
			return
		case <-l.done:
			return
		}
	}
}

// Close asks Run to return. Safe to call more than once.
func (l *Loop) Close() {
	l.once.Do(func() { close(l.done) })
}

// Closing is closed as soon as the loop starts shutting down.
func (l *Loop) Closing() <-chan struct{} {
	return l.done
}

// Done is closed once Run has returned and no callback is executing.
func (l *Loop) Done() <-chan struct{} {
	return l.exited
}
