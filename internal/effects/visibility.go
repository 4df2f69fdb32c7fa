package effects

// DefaultThreshold is the visible fraction of a region that counts as seen.
const DefaultThreshold = 0.1

// VisibilityTrigger fires its callback once, the first time an observed
// region becomes visible past the threshold. Leaving and re-entering the
// viewport never fires it again.
type VisibilityTrigger struct {
	threshold float64
	fire      func()
	fired     bool
	released  bool
}

// NewVisibilityTrigger creates a trigger. Thresholds outside (0, 1] fall back
// to DefaultThreshold.
func NewVisibilityTrigger(threshold float64, fire func()) *VisibilityTrigger {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	return &VisibilityTrigger{threshold: threshold, fire: fire}
}

// Observe reports an intersection ratio and returns true only for the call
// that fired the trigger. A nil trigger ignores every observation.
func (v *VisibilityTrigger) Observe(ratio float64) bool {
	if v == nil || v.released || v.fired || ratio < v.threshold {
		return false
	}
	v.fired = true
	if v.fire != nil {
		v.fire()
	}
	return true
}

// Fired reports whether the trigger has fired.
func (v *VisibilityTrigger) Fired() bool {
	return v != nil && v.fired
}

// Release drops the observation registration.
func (v *VisibilityTrigger) Release() {
	if v == nil {
		return
	}
	v.released = true
	v.fire = nil
}
