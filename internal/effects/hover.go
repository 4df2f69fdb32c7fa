package effects

// Hover remembers which element of a section the pointer is over.
type Hover struct {
	key    string
	active bool
}

// Enter marks key as hovered.
func (h *Hover) Enter(key string) {
	h.key = key
	h.active = true
}

// Leave clears the hover if key is the hovered element.
func (h *Hover) Leave(key string) {
	if h.active && h.key == key {
		h.key = ""
		h.active = false
	}
}

// Is reports whether key is hovered.
func (h *Hover) Is(key string) bool {
	return h.active && h.key == key
}

// Current returns the hovered key.
func (h *Hover) Current() (string, bool) {
	return h.key, h.active
}
