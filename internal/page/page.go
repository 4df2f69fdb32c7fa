// Package page mounts one page view: its event loop, the effects that run on
// it, and the outbox of DOM frames streamed to the browser.
package page

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/effects"
)

var (
	// ErrViewNotFound is returned for unknown or unmounted views.
	ErrViewNotFound = errors.New("view not found")
	// ErrRecordNotFound is returned when opening an unknown project or certificate.
	ErrRecordNotFound = errors.New("record not found")
	// ErrUnknownArea is returned for hover events outside the hover areas.
	ErrUnknownArea = errors.New("unknown hover area")
)

// Page is one mounted view. Every exported method hands its work to the
// view's event loop, so component state is only ever touched from there.
type Page struct {
	id      string
	content *content.Content
	rt      effects.Runtime
	set     *settings
	log     *zap.Logger
	out     *Outbox

	ctx    context.Context
	cancel context.CancelFunc

	// Loop-owned state.
	attached   bool
	typewriter *effects.Typewriter
	cursor     *effects.Blinker
	triggers   map[string]*effects.VisibilityTrigger
	counters   []*effects.CountUp
	submission *effects.Submission
	projects   effects.Modal[content.Project]
	certs      effects.Modal[content.Certificate]
	hovers     map[string]*effects.Hover

	streaming atomic.Bool
	lastSeen  atomic.Int64
	once      sync.Once
	done      chan struct{}
}

func newPage(id string, c *content.Content, set *settings) *Page {
	ctx, cancel := context.WithCancel(context.Background())
	p := &Page{
		id:       id,
		content:  c,
		rt:       set.runtime(),
		set:      set,
		log:      set.log.With(zap.String("view", id)),
		out:      NewOutbox(),
		ctx:      ctx,
		cancel:   cancel,
		triggers: make(map[string]*effects.VisibilityTrigger, len(content.Sections)),
		hovers: map[string]*effects.Hover{
			AreaProjects:       {},
			AreaSkills:         {},
			AreaCertifications: {},
		},
		done: make(chan struct{}),
	}
	p.touch()

	p.typewriter = effects.NewTypewriter(c.Profile.Headline)
	p.cursor = effects.NewBlinker()

	for _, section := range content.Sections {
		section := section
		p.triggers[section] = effects.NewVisibilityTrigger(set.timing.Threshold, func() {
			p.reveal(section)
		})
	}

	for _, stat := range c.Stats {
		target, err := stat.Target()
		if err != nil {
			p.log.Warn("statistic skipped", zap.String("label", stat.Label), zap.Error(err))
			target = effects.Target{}
		}
		p.counters = append(p.counters, effects.NewCountUp(target))
	}

	p.submission = effects.NewSubmission(ctx, p.rt,
		effects.WithDelays(set.timing.Send, set.timing.Reset),
		effects.WithCourier(set.courier),
		effects.WithSubmissionLogger(p.log),
		effects.WithObserver(p.contactChanged),
	)
	return p
}

// ID returns the view id.
func (p *Page) ID() string { return p.id }

// Outbox returns the frames waiting for the stream.
func (p *Page) Outbox() *Outbox { return p.out }

// Done is closed once the view is unmounted.
func (p *Page) Done() <-chan struct{} { return p.done }

// LastSeen is the time of the last interaction.
func (p *Page) LastSeen() time.Time {
	return time.Unix(0, p.lastSeen.Load())
}

// Streaming reports whether a stream is attached right now.
func (p *Page) Streaming() bool { return p.streaming.Load() }

func (p *Page) touch() {
	p.lastSeen.Store(p.set.now().UnixNano())
}

func (p *Page) do(fn func()) error {
	p.touch()
	if err := p.rt.Do(fn); err != nil {
		return errors.Wrap(ErrViewNotFound, p.id)
	}
	return nil
}

func (p *Page) publish(f Frame) {
	p.out.Publish(f)
	p.set.metrics.FramePublished(string(f.Kind))
}

// Attach marks the stream as connected and starts the hero effects. A second
// attach is a no-op.
func (p *Page) Attach() error {
	p.streaming.Store(true)
	return p.do(func() {
		if p.attached {
			return
		}
		p.attached = true

		p.typewriter.Start(p.rt, p.set.timing.Typing, func(text string) {
			p.publish(Frame{Kind: KindText, Target: HeroTypedID, Text: text})
		})
		p.cursor.Start(p.rt, p.set.timing.Cursor, func(visible bool) {
			p.publish(Frame{Kind: KindToggle, Target: HeroCursorID, Class: CursorHiddenClass, On: !visible})
		})
	})
}

// Detach marks the stream as gone.
func (p *Page) Detach() {
	p.streaming.Store(false)
	p.touch()
}

// Reveal feeds a visibility ratio to a section's trigger and reports whether
// this observation revealed it. Unknown sections are ignored.
func (p *Page) Reveal(section string, ratio float64) (bool, error) {
	var fired bool
	err := p.do(func() {
		fired = p.triggers[section].Observe(ratio)
	})
	return fired, err
}

// Revealed reports whether a section has been revealed.
func (p *Page) Revealed(section string) (bool, error) {
	var fired bool
	err := p.do(func() {
		if t := p.triggers[section]; t != nil {
			fired = t.Fired()
		}
	})
	return fired, err
}

func (p *Page) reveal(section string) {
	p.publish(Frame{Kind: KindToggle, Target: SectionID(section), Class: RevealClass, On: true})
	p.set.metrics.SectionRevealed(section)

	if section != "about" {
		return
	}
	for i, c := range p.counters {
		target := StatID(i)
		c.Start(p.rt, p.set.timing.Count, func(text string) {
			p.publish(Frame{Kind: KindText, Target: target, Text: text})
		})
	}
}

// Hover records a pointer entering or leaving an element and reports whether
// key is now the hovered element of its area.
func (p *Page) Hover(area, key string, enter bool) (bool, error) {
	var hovered bool
	var known bool
	err := p.do(func() {
		h, ok := p.hovers[area]
		if !ok {
			return
		}
		known = true
		if enter {
			h.Enter(key)
		} else {
			h.Leave(key)
		}
		hovered = h.Is(key)
	})
	if err != nil {
		return false, err
	}
	if !known {
		return false, errors.Wrap(ErrUnknownArea, area)
	}
	return hovered, nil
}

// UpdateDraft changes one contact form field.
func (p *Page) UpdateDraft(field, value string) error {
	var ferr error
	if err := p.do(func() { ferr = p.submission.Update(field, value) }); err != nil {
		return err
	}
	return ferr
}

// Submit replaces the draft with the posted form and submits it. It returns
// the state after the call; a busy submission keeps its draft untouched.
func (p *Page) Submit(d effects.Draft) (effects.Status, effects.Draft, error) {
	var status effects.Status
	var draft effects.Draft
	var serr error
	err := p.do(func() {
		if p.submission.Status() == effects.StatusIdle {
			p.submission.Replace(d)
		}
		serr = p.submission.Submit()
		if serr != nil {
			p.set.metrics.Submission("busy")
		}
		status, draft = p.submission.Status(), p.submission.Draft()
	})
	if err != nil {
		return 0, effects.Draft{}, err
	}
	return status, draft, serr
}

// Contact returns the submission state and draft.
func (p *Page) Contact() (effects.Status, effects.Draft, error) {
	var status effects.Status
	var draft effects.Draft
	err := p.do(func() {
		status, draft = p.submission.Status(), p.submission.Draft()
	})
	return status, draft, err
}

func (p *Page) contactChanged(status effects.Status, draft effects.Draft) {
	switch status {
	case effects.StatusSuccess, effects.StatusError:
		p.set.metrics.Submission(status.String())
	}
	p.publish(Frame{Kind: KindHTML, Target: ContactID, HTML: p.set.contact(p.id, status, draft)})
}

// OpenProject opens the project overlay. Opening replaces any open project.
func (p *Page) OpenProject(slug string) (content.Project, error) {
	proj, ok := p.content.Project(slug)
	if !ok {
		return content.Project{}, errors.Wrapf(ErrRecordNotFound, "project %s", slug)
	}
	return proj, p.do(func() { p.projects.Open(proj) })
}

// CloseProject closes the project overlay.
func (p *Page) CloseProject() error {
	return p.do(func() { p.projects.Close() })
}

// Project returns the open project, if any.
func (p *Page) Project() (content.Project, bool, error) {
	var proj content.Project
	var open bool
	err := p.do(func() { proj, open = p.projects.Current() })
	return proj, open, err
}

// OpenCertificate opens the certificate overlay.
func (p *Page) OpenCertificate(slug string) (content.Certificate, error) {
	cert, ok := p.content.Certificate(slug)
	if !ok {
		return content.Certificate{}, errors.Wrapf(ErrRecordNotFound, "certificate %s", slug)
	}
	return cert, p.do(func() { p.certs.Open(cert) })
}

// CloseCertificate closes the certificate overlay.
func (p *Page) CloseCertificate() error {
	return p.do(func() { p.certs.Close() })
}

// Certificate returns the open certificate, if any.
func (p *Page) Certificate() (content.Certificate, bool, error) {
	var cert content.Certificate
	var open bool
	err := p.do(func() { cert, open = p.certs.Current() })
	return cert, open, err
}

// Unmount stops every timer, releases every trigger and closes the loop.
// It is safe to call more than once.
func (p *Page) Unmount() {
	p.once.Do(func() {
		_ = p.rt.Do(func() {
			p.typewriter.Stop()
			p.cursor.Stop()
			for _, c := range p.counters {
				c.Stop()
			}
			p.submission.Stop()
			for _, t := range p.triggers {
				t.Release()
			}
		})
		p.cancel()
		p.rt.Close()
		p.streaming.Store(false)
		p.set.metrics.ViewUnmounted()
		p.log.Debug("view unmounted")
		close(p.done)
	})
}
