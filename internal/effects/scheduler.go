// Package effects holds the timed and stateful behaviours behind the page's
// animations: reveal triggers, the typewriter and count-up schedulers, the
// contact submission state machine and the detail overlays.
//
// Components never lock. Each one is driven by a Scheduler whose callbacks
// run one at a time, so all state belonging to one page view is touched from
// a single goroutine.
package effects

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
)

const loopQueueSize = 64

// ErrLoopClosed is returned by Do once the runtime has been closed.
var ErrLoopClosed = errors.New("event loop closed")

// Timer is a scheduled callback that can be cancelled.
type Timer interface {
	Stop()
}

// Scheduler schedules callbacks. Callbacks from the same Scheduler never run
// concurrently and fire in the order they became due.
type Scheduler interface {
	After(d time.Duration, fn func()) Timer
	Every(d time.Duration, fn func()) Timer
}

// Runtime is a Scheduler that outside goroutines can hand work to.
type Runtime interface {
	Scheduler

	// Do runs fn on the runtime and waits for it to return.
	// It must not be called from inside a callback.
	Do(fn func()) error

	// Close stops every pending timer and waits for a running callback.
	// Callbacks never run after Close returns. Like Do, it must not be called
	// from inside a callback.
	Close()
}

// Loop is a Runtime backed by a single goroutine and wall-clock timers.
type Loop struct {
	tasks   chan func()
	done    chan struct{}
	stopped chan struct{}

	mu     sync.Mutex
	closed bool
	timers map[*loopTimer]struct{}
	once   sync.Once
}

// NewLoop starts a loop goroutine.
func NewLoop() *Loop {
	l := &Loop{
		tasks:   make(chan func(), loopQueueSize),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
		timers:  make(map[*loopTimer]struct{}),
	}
	go l.run()
	return l
}

func (l *Loop) run() {
	defer close(l.stopped)
	for {
		select {
		case <-l.done:
			return
		case fn := <-l.tasks:
			// select picks at random when both are ready.
			select {
			case <-l.done:
				return
			default:
			}
			fn()
		}
	}
}

func (l *Loop) post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.tasks <- fn:
		return true
	case <-l.done:
		return false
	}
}

// Do implements Runtime.
func (l *Loop) Do(fn func()) error {
	finished := make(chan struct{})
	if !l.post(func() {
		defer close(finished)
		fn()
	}) {
		return ErrLoopClosed
	}
	select {
	case <-finished:
		return nil
	case <-l.stopped:
		// run may have finished fn just before exiting.
		select {
		case <-finished:
			return nil
		default:
			return ErrLoopClosed
		}
	}
}

// Done is closed when the loop is closed.
func (l *Loop) Done() <-chan struct{} { return l.done }

// After implements Scheduler.
func (l *Loop) After(d time.Duration, fn func()) Timer {
	t := &loopTimer{loop: l}
	if !l.track(t) {
		t.stopped.Store(true)
		return t
	}
	t.mu.Lock()
	t.timer = time.AfterFunc(d, func() {
		l.post(func() {
			if t.stopped.Swap(true) {
				return
			}
			l.forget(t)
			fn()
		})
	})
	t.mu.Unlock()
	return t
}

// Every implements Scheduler. A non-positive interval yields a stopped timer.
func (l *Loop) Every(d time.Duration, fn func()) Timer {
	t := &loopTimer{loop: l, quit: make(chan struct{})}
	if d <= 0 || !l.track(t) {
		t.stopped.Store(true)
		return t
	}
	ticker := time.NewTicker(d)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-t.quit:
				return
			case <-l.done:
				return
			case <-ticker.C:
				l.post(func() {
					if t.stopped.Load() {
						return
					}
					fn()
				})
			}
		}
	}()
	return t
}

// Close implements Runtime.
func (l *Loop) Close() {
	l.once.Do(func() {
		l.mu.Lock()
		l.closed = true
		timers := l.timers
		l.timers = nil
		l.mu.Unlock()

		for t := range timers {
			t.Stop()
		}
		close(l.done)
	})
	<-l.stopped
}

func (l *Loop) track(t *loopTimer) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return false
	}
	l.timers[t] = struct{}{}
	return true
}

func (l *Loop) forget(t *loopTimer) {
	l.mu.Lock()
	delete(l.timers, t)
	l.mu.Unlock()
}

type loopTimer struct {
	loop    *Loop
	stopped atomic.Bool

	mu    sync.Mutex
	timer *time.Timer
	quit  chan struct{}
}

func (t *loopTimer) Stop() {
	if t.stopped.Swap(true) {
		return
	}
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
	}
	if t.quit != nil {
		close(t.quit)
	}
	t.mu.Unlock()
	t.loop.forget(t)
}
