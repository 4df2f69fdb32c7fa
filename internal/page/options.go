package page

import (
	"time"

	"go.uber.org/zap"

	"github.com/Zachkp/folio/internal/effects"
)

// Timing holds every effect interval and delay of a view.
type Timing struct {
	Typing    time.Duration
	Cursor    time.Duration
	Count     time.Duration
	Send      time.Duration
	Reset     time.Duration
	Threshold float64
}

// DefaultTiming returns the stock timings.
func DefaultTiming() Timing {
	return Timing{
		Typing:    60 * time.Millisecond,
		Cursor:    500 * time.Millisecond,
		Count:     50 * time.Millisecond,
		Send:      effects.DefaultSendDelay,
		Reset:     effects.DefaultResetDelay,
		Threshold: effects.DefaultThreshold,
	}
}

// Metrics is what a view reports. *metrics.Manager satisfies it.
type Metrics interface {
	ViewMounted()
	ViewUnmounted()
	FramePublished(kind string)
	SectionRevealed(section string)
	Submission(outcome string)
}

type nopMetrics struct{}

func (nopMetrics) ViewMounted()           {}
func (nopMetrics) ViewUnmounted()         {}
func (nopMetrics) FramePublished(string)  {}
func (nopMetrics) SectionRevealed(string) {}
func (nopMetrics) Submission(string)      {}

// ContactRenderer renders the contact status block (button and notice) for a
// submission state. The form inputs are never part of a frame.
type ContactRenderer func(viewID string, status effects.Status, draft effects.Draft) string

type settings struct {
	runtime  func() effects.Runtime
	log      *zap.Logger
	courier  effects.Courier
	contact  ContactRenderer
	metrics  Metrics
	timing   Timing
	ttl      time.Duration
	now      func() time.Time
	idSource func() string
}

// Option configures a Registry and the views it mounts.
type Option func(*settings)

// WithRuntime sets the event loop factory, one runtime per view.
func WithRuntime(fn func() effects.Runtime) Option {
	return func(s *settings) {
		if fn != nil {
			s.runtime = fn
		}
	}
}

// WithLogger sets the logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *settings) {
		if log != nil {
			s.log = log
		}
	}
}

// WithCourier delivers contact submissions. Nil simulates.
func WithCourier(c effects.Courier) Option {
	return func(s *settings) {
		s.courier = c
	}
}

// WithContactRenderer sets how the contact status frame is rendered.
func WithContactRenderer(r ContactRenderer) Option {
	return func(s *settings) {
		if r != nil {
			s.contact = r
		}
	}
}

// WithMetrics reports view activity.
func WithMetrics(m Metrics) Option {
	return func(s *settings) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithTiming overrides the effect timings.
func WithTiming(t Timing) Option {
	return func(s *settings) {
		s.timing = t
	}
}

// WithTTL bounds how long an unattached view lives.
func WithTTL(ttl time.Duration) Option {
	return func(s *settings) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithClock replaces time.Now for view expiry.
func WithClock(now func() time.Time) Option {
	return func(s *settings) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDs replaces the view id generator.
func WithIDs(next func() string) Option {
	return func(s *settings) {
		if next != nil {
			s.idSource = next
		}
	}
}
