package effects

import (
	"sync"
	"time"
)

// Virtual is a Runtime driven by virtual time. Nothing fires until Advance is
// called; callbacks then run on the caller's goroutine in due order.
// Scheduling from other goroutines is safe.
type Virtual struct {
	mu     sync.Mutex
	now    time.Duration
	seq    uint64
	queue  []*virtualTimer
	closed bool
}

// NewVirtual returns a Virtual runtime at time zero.
func NewVirtual() *Virtual {
	return &Virtual{}
}

type virtualTimer struct {
	v       *Virtual
	at      time.Duration
	every   time.Duration
	seq     uint64
	fn      func()
	stopped bool
}

func (t *virtualTimer) Stop() {
	t.v.mu.Lock()
	t.stopped = true
	t.v.mu.Unlock()
}

// After implements Scheduler.
func (v *Virtual) After(d time.Duration, fn func()) Timer {
	return v.schedule(d, 0, fn)
}

// Every implements Scheduler.
func (v *Virtual) Every(d time.Duration, fn func()) Timer {
	if d <= 0 {
		return &virtualTimer{v: v, stopped: true}
	}
	return v.schedule(d, d, fn)
}

func (v *Virtual) schedule(d, every time.Duration, fn func()) *virtualTimer {
	if d < 0 {
		d = 0
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.seq++
	t := &virtualTimer{v: v, at: v.now + d, every: every, seq: v.seq, fn: fn}
	if v.closed {
		t.stopped = true
		return t
	}
	v.queue = append(v.queue, t)
	return t
}

// Do implements Runtime. fn runs immediately on the caller's goroutine.
func (v *Virtual) Do(fn func()) error {
	v.mu.Lock()
	closed := v.closed
	v.mu.Unlock()
	if closed {
		return ErrLoopClosed
	}
	fn()
	return nil
}

// Close implements Runtime.
func (v *Virtual) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
	for _, t := range v.queue {
		t.stopped = true
	}
	v.queue = nil
}

// Now reports the virtual time elapsed since creation.
func (v *Virtual) Now() time.Duration {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.now
}

// Pending reports how many live timers are queued.
func (v *Virtual) Pending() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	n := 0
	for _, t := range v.queue {
		if !t.stopped {
			n++
		}
	}
	return n
}

// Advance moves virtual time forward by d, running every callback that
// becomes due, including ones scheduled by callbacks along the way.
func (v *Virtual) Advance(d time.Duration) {
	v.mu.Lock()
	deadline := v.now + d
	v.mu.Unlock()

	for {
		v.mu.Lock()
		t := v.popDue(deadline)
		if t == nil {
			if v.now < deadline {
				v.now = deadline
			}
			v.mu.Unlock()
			return
		}
		v.now = t.at
		if t.every > 0 {
			v.seq++
			t.at += t.every
			t.seq = v.seq
			v.queue = append(v.queue, t)
		}
		fn := t.fn
		v.mu.Unlock()

		fn()
	}
}

// popDue removes and returns the earliest live timer due by deadline.
// Stopped timers are dropped along the way.
func (v *Virtual) popDue(deadline time.Duration) *virtualTimer {
	live := v.queue[:0]
	for _, t := range v.queue {
		if !t.stopped {
			live = append(live, t)
		}
	}
	v.queue = live

	best := -1
	for i, t := range v.queue {
		if t.at > deadline {
			continue
		}
		if best < 0 || t.at < v.queue[best].at || (t.at == v.queue[best].at && t.seq < v.queue[best].seq) {
			best = i
		}
	}
	if best < 0 {
		return nil
	}
	t := v.queue[best]
	v.queue = append(v.queue[:best], v.queue[best+1:]...)
	return t
}
