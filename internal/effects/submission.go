package effects

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Default submission timings.
const (
	DefaultSendDelay  = time.Second
	DefaultResetDelay = 3 * time.Second
)

var (
	// ErrSubmissionBusy is returned when Submit is called outside the idle state.
	ErrSubmissionBusy = errors.New("submission already in progress")
	// ErrUnknownField is returned when updating a field the draft does not have.
	ErrUnknownField = errors.New("unknown draft field")
)

// Status is the state of a Submission.
type Status int

const (
	StatusIdle Status = iota
	StatusSending
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSending:
		return "sending"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Draft is the contact form as typed so far.
type Draft struct {
	Name    string
	Email   string
	Message string
}

// Complete reports whether every field is non-empty.
func (d Draft) Complete() bool {
	return d.Name != "" && d.Email != "" && d.Message != ""
}

// Set assigns one field by its form name.
func (d *Draft) Set(field, value string) error {
	switch field {
	case "name":
		d.Name = value
	case "email":
		d.Email = value
	case "message":
		d.Message = value
	default:
		return errors.Wrap(ErrUnknownField, field)
	}
	return nil
}

// Courier delivers a completed draft somewhere real.
type Courier interface {
	Deliver(ctx context.Context, d Draft) error
}

// SubmissionOption configures a Submission.
type SubmissionOption func(*Submission)

// WithDelays overrides the send and reset delays. Non-positive values keep
// the defaults.
func WithDelays(send, reset time.Duration) SubmissionOption {
	return func(s *Submission) {
		if send > 0 {
			s.sendDelay = send
		}
		if reset > 0 {
			s.resetDelay = reset
		}
	}
}

// WithCourier delivers complete drafts while the send delay runs.
func WithCourier(c Courier) SubmissionOption {
	return func(s *Submission) {
		s.courier = c
	}
}

// WithObserver is called on the scheduler after every status change.
func WithObserver(fn func(Status, Draft)) SubmissionOption {
	return func(s *Submission) {
		s.observe = fn
	}
}

// WithSubmissionLogger sets the logger used for delivery failures.
func WithSubmissionLogger(log *zap.Logger) SubmissionOption {
	return func(s *Submission) {
		if log != nil {
			s.log = log
		}
	}
}

// Submission is the contact form state machine:
//
//	idle -> sending -> success|error -> idle
//
// Submit enters sending at once. After the send delay the snapshot taken at
// submit time decides between success and error; either one falls back to
// idle after the reset delay. Success clears the draft, error keeps it.
type Submission struct {
	ctx        context.Context
	sched      Scheduler
	courier    Courier
	sendDelay  time.Duration
	resetDelay time.Duration
	observe    func(Status, Draft)
	log        *zap.Logger

	status      Status
	draft       Draft
	sent        Draft
	pending     int
	deliveryErr error
	attempt     int
	timer       Timer
	stopped     bool
}

// NewSubmission creates an idle submission. ctx bounds courier deliveries.
func NewSubmission(ctx context.Context, s Scheduler, opts ...SubmissionOption) *Submission {
	sub := &Submission{
		ctx:        ctx,
		sched:      s,
		sendDelay:  DefaultSendDelay,
		resetDelay: DefaultResetDelay,
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(sub)
	}
	return sub
}

// Status returns the current state.
func (s *Submission) Status() Status { return s.status }

// Draft returns the current draft.
func (s *Submission) Draft() Draft { return s.draft }

// Update changes one draft field. Fields stay editable in every state.
func (s *Submission) Update(field, value string) error {
	return s.draft.Set(field, value)
}

// Replace overwrites the whole draft.
func (s *Submission) Replace(d Draft) {
	s.draft = d
}

// Submit starts a submission. It fails with ErrSubmissionBusy unless idle.
func (s *Submission) Submit() error {
	if s.stopped || s.status != StatusIdle {
		return ErrSubmissionBusy
	}
	s.attempt++
	s.sent = s.draft
	s.deliveryErr = nil
	s.pending = 1
	s.transition(StatusSending)

	if s.courier != nil && s.sent.Complete() {
		s.pending++
		attempt := s.attempt
		sent := s.sent
		go func() {
			err := s.courier.Deliver(s.ctx, sent)
			s.sched.After(0, func() {
				if s.stopped || attempt != s.attempt {
					return
				}
				s.deliveryErr = err
				s.settle()
			})
		}()
	}

	s.timer = s.sched.After(s.sendDelay, s.settle)
	return nil
}

func (s *Submission) settle() {
	s.pending--
	if s.pending > 0 || s.stopped {
		return
	}

	if s.deliveryErr != nil {
		s.log.Warn("contact delivery failed", zap.Error(s.deliveryErr))
	}
	if s.sent.Complete() && s.deliveryErr == nil {
		s.draft = Draft{}
		s.transition(StatusSuccess)
	} else {
		s.transition(StatusError)
	}
	s.timer = s.sched.After(s.resetDelay, func() {
		s.transition(StatusIdle)
	})
}

func (s *Submission) transition(to Status) {
	s.status = to
	if s.observe != nil {
		s.observe(to, s.draft)
	}
}

// Stop cancels pending transitions. A stopped submission never changes state
// again.
func (s *Submission) Stop() {
	s.stopped = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
