package page

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/effects"
)

// DefaultTTL is how long a view may wait for its stream.
const DefaultTTL = 2 * time.Minute

// Registry owns the mounted views.
type Registry struct {
	content *content.Content
	set     *settings

	mu    sync.RWMutex
	views map[string]*Page
}

// NewRegistry creates a registry that mounts views of c.
func NewRegistry(c *content.Content, opts ...Option) *Registry {
	set := &settings{
		runtime:  func() effects.Runtime { return effects.NewLoop() },
		log:      zap.NewNop(),
		metrics:  nopMetrics{},
		timing:   DefaultTiming(),
		ttl:      DefaultTTL,
		now:      time.Now,
		idSource: uuid.NewString,
	}
	set.contact = func(_ string, status effects.Status, _ effects.Draft) string { return status.String() }
	for _, opt := range opts {
		opt(set)
	}
	return &Registry{
		content: c,
		set:     set,
		views:   make(map[string]*Page),
	}
}

// Mount creates a view with a fresh id.
func (r *Registry) Mount() *Page {
	p := newPage(r.set.idSource(), r.content, r.set)

	r.mu.Lock()
	r.views[p.id] = p
	r.mu.Unlock()

	r.set.metrics.ViewMounted()
	p.log.Debug("view mounted")
	return p
}

// Get finds a mounted view.
func (r *Registry) Get(id string) (*Page, error) {
	r.mu.RLock()
	p, ok := r.views[id]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.Wrap(ErrViewNotFound, id)
	}
	return p, nil
}

// Unmount removes and unmounts a view. Unknown ids are ignored.
func (r *Registry) Unmount(id string) {
	r.mu.Lock()
	p, ok := r.views[id]
	delete(r.views, id)
	r.mu.Unlock()

	if ok {
		p.Unmount()
	}
}

// Len reports how many views are mounted.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.views)
}

// Sweep unmounts views with no stream that have been idle past the TTL and
// reports how many went.
func (r *Registry) Sweep() int {
	cutoff := r.set.now().Add(-r.set.ttl)

	r.mu.Lock()
	var stale []*Page
	for id, p := range r.views {
		if !p.Streaming() && p.LastSeen().Before(cutoff) {
			stale = append(stale, p)
			delete(r.views, id)
		}
	}
	r.mu.Unlock()

	for _, p := range stale {
		p.Unmount()
	}
	if len(stale) > 0 {
		r.set.log.Debug("swept idle views", zap.Int("count", len(stale)))
	}
	return len(stale)
}

// Run sweeps every interval until ctx is done, then unmounts everything.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			r.Close()
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}

// Close unmounts every view.
func (r *Registry) Close() {
	r.mu.Lock()
	views := r.views
	r.views = make(map[string]*Page)
	r.mu.Unlock()

	for _, p := range views {
		p.Unmount()
	}
}
