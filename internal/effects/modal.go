package effects

// Modal holds the record shown in a detail overlay. The record and the open
// flag always change together.
type Modal[T any] struct {
	record *T
	open   bool
}

// Open shows record, replacing whatever was open.
func (m *Modal[T]) Open(record T) {
	r := record
	m.record = &r
	m.open = true
}

// Close hides the overlay and forgets the record.
func (m *Modal[T]) Close() {
	m.record = nil
	m.open = false
}

// Current returns the open record. An overlay flagged open without a record
// counts as closed.
func (m *Modal[T]) Current() (T, bool) {
	var zero T
	if !m.open || m.record == nil {
		return zero, false
	}
	return *m.record, true
}

// IsOpen reports whether Current would return a record.
func (m *Modal[T]) IsOpen() bool {
	_, ok := m.Current()
	return ok
}
