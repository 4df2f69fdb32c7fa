package effects

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// CountUpSteps is the number of increments from zero to the target.
const CountUpSteps = 50

// ErrInvalidTarget is returned for a count-up value without a numeric part.
var ErrInvalidTarget = errors.New("invalid count-up target")

// Display selects how a count-up value is printed.
type Display int

const (
	// DisplayInteger truncates toward zero.
	DisplayInteger Display = iota
	// DisplayOneDecimal prints one decimal place.
	DisplayOneDecimal
)

// Target is a parsed statistic such as "7.4", "95%" or "3+".
type Target struct {
	Value   float64
	Display Display
	Suffix  string
}

// ParseTarget splits raw into its numeric part (digits and dots) and its
// suffix (everything else). A dot anywhere selects one-decimal display.
func ParseTarget(raw string) (Target, error) {
	var num, suffix strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			num.WriteRune(r)
			continue
		}
		suffix.WriteRune(r)
	}

	value, err := strconv.ParseFloat(num.String(), 64)
	if err != nil {
		return Target{}, errors.Wrapf(ErrInvalidTarget, "%q", raw)
	}

	display := DisplayInteger
	if strings.Contains(raw, ".") {
		display = DisplayOneDecimal
	}
	return Target{Value: value, Display: display, Suffix: suffix.String()}, nil
}

// Render formats v the way the target is displayed.
func (t Target) Render(v float64) string {
	var s string
	switch t.Display {
	case DisplayOneDecimal:
		s = strconv.FormatFloat(v, 'f', 1, 64)
	default:
		s = strconv.FormatFloat(math.Floor(v), 'f', 0, 64)
	}
	return s + t.Suffix
}

// CountUp animates a number from zero to its target in CountUpSteps ticks.
type CountUp struct {
	target   Target
	value    float64
	finished bool
	timer    Timer
}

// NewCountUp returns a counter at zero.
func NewCountUp(target Target) *CountUp {
	return &CountUp{target: target}
}

// Target returns the parsed target.
func (c *CountUp) Target() Target { return c.target }

// Value returns the running total.
func (c *CountUp) Value() float64 { return c.value }

// Display returns the running total as shown.
func (c *CountUp) Display() string { return c.target.Render(c.value) }

// Done reports whether the target has been reached.
func (c *CountUp) Done() bool { return c.finished }

// Step adds one increment, clamping to the target instead of passing it.
// It returns false once the target has been reached.
func (c *CountUp) Step() bool {
	if c.finished {
		return false
	}
	inc := c.target.Value / CountUpSteps
	if c.value+inc >= c.target.Value {
		c.value = c.target.Value
		c.finished = true
		return true
	}
	c.value += inc
	return true
}

// Start resets to zero, emits that frame and then one frame per tick until
// the target is shown.
func (c *CountUp) Start(s Scheduler, interval time.Duration, emit func(string)) {
	c.Stop()
	c.value = 0
	c.finished = c.target.Value <= 0
	emit(c.Display())
	if c.finished {
		return
	}
	c.timer = s.Every(interval, func() {
		if c.Step() {
			emit(c.Display())
		}
		if c.finished {
			c.Stop()
		}
	})
}

// Stop cancels the pending tick.
func (c *CountUp) Stop() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
