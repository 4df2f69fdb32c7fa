package page

import (
	"sync"
)

// Kind says how the browser applies a frame.
type Kind string

const (
	// KindText replaces the target's text content.
	KindText Kind = "text"
	// KindToggle adds (On) or removes a class on the target.
	KindToggle Kind = "toggle"
	// KindHTML replaces the target's markup.
	KindHTML Kind = "html"
)

// Frame is one DOM update addressed to an element id.
type Frame struct {
	Kind   Kind   `json:"kind"`
	Target string `json:"target"`
	Text   string `json:"text,omitempty"`
	Class  string `json:"class,omitempty"`
	On     bool   `json:"on,omitempty"`
	HTML   string `json:"html,omitempty"`
}

type frameKey struct {
	kind   Kind
	target string
	class  string
}

func (f Frame) key() frameKey {
	return frameKey{kind: f.Kind, target: f.Target, class: f.Class}
}

// Outbox holds frames until the stream drains them. Only the newest frame per
// (kind, target, class) is kept; the order of first publication is kept too.
type Outbox struct {
	mu     sync.Mutex
	order  []frameKey
	frames map[frameKey]Frame
	ready  chan struct{}
}

// NewOutbox returns an empty outbox.
func NewOutbox() *Outbox {
	return &Outbox{
		frames: make(map[frameKey]Frame),
		ready:  make(chan struct{}, 1),
	}
}

// Publish queues f, replacing any pending frame for the same target.
func (o *Outbox) Publish(f Frame) {
	o.mu.Lock()
	k := f.key()
	if _, ok := o.frames[k]; !ok {
		o.order = append(o.order, k)
	}
	o.frames[k] = f
	o.mu.Unlock()

	select {
	case o.ready <- struct{}{}:
	default:
	}
}

// Ready is signalled after Publish. One signal may cover many frames.
func (o *Outbox) Ready() <-chan struct{} {
	return o.ready
}

// Drain returns the pending frames and empties the outbox.
func (o *Outbox) Drain() []Frame {
	o.mu.Lock()
	defer o.mu.Unlock()

	if len(o.order) == 0 {
		return nil
	}
	out := make([]Frame, 0, len(o.order))
	for _, k := range o.order {
		out = append(out, o.frames[k])
	}
	o.order = o.order[:0]
	clear(o.frames)
	return out
}

// Len reports how many frames are pending.
func (o *Outbox) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.order)
}
