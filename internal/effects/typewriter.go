package effects

import (
	"iter"
	"time"
)

// Prefixes yields every prefix of text from "" up to text itself, one rune
// longer each step. Ranging over it again starts from the empty prefix.
func Prefixes(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		runes := []rune(text)
		for i := 0; i <= len(runes); i++ {
			if !yield(string(runes[:i])) {
				return
			}
		}
	}
}

// Typewriter reveals a fixed string one rune per tick.
type Typewriter struct {
	text  []rune
	shown int
	timer Timer
}

// NewTypewriter returns a typewriter showing nothing yet.
func NewTypewriter(text string) *Typewriter {
	return &Typewriter{text: []rune(text)}
}

// Text returns the prefix currently shown.
func (t *Typewriter) Text() string { return string(t.text[:t.shown]) }

// Done reports whether the full string is shown.
func (t *Typewriter) Done() bool { return t.shown >= len(t.text) }

// Running reports whether a tick is scheduled.
func (t *Typewriter) Running() bool { return t.timer != nil }

// Advance reveals one more rune. Once the full string is shown it returns
// false and changes nothing.
func (t *Typewriter) Advance() bool {
	if t.Done() {
		return false
	}
	t.shown++
	return true
}

// Start resets to the empty prefix, emits it, and then emits one longer
// prefix per interval until the string is complete.
func (t *Typewriter) Start(s Scheduler, interval time.Duration, emit func(string)) {
	t.Stop()
	t.shown = 0
	emit(t.Text())
	if t.Done() {
		return
	}
	t.timer = s.Every(interval, func() {
		if t.Advance() {
			emit(t.Text())
		}
		if t.Done() {
			t.Stop()
		}
	})
}

// Stop cancels the pending tick.
func (t *Typewriter) Stop() {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

// Blinker flips a visibility flag on a fixed cadence until stopped.
type Blinker struct {
	visible bool
	timer   Timer
}

// NewBlinker returns a visible blinker.
func NewBlinker() *Blinker {
	return &Blinker{visible: true}
}

// Visible reports the current phase.
func (b *Blinker) Visible() bool { return b.visible }

// Start emits the visible phase and then every toggle.
func (b *Blinker) Start(s Scheduler, interval time.Duration, emit func(bool)) {
	b.Stop()
	b.visible = true
	emit(b.visible)
	b.timer = s.Every(interval, func() {
		b.visible = !b.visible
		emit(b.visible)
	})
}

// Stop cancels the toggle.
func (b *Blinker) Stop() {
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}
