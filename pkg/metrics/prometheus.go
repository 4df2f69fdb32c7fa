package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager manages all Prometheus metrics for the site. A nil *Manager is
// valid and records nothing.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         *prometheus.Registry

	// Page views
	viewsMounted   prometheus.Counter
	viewsUnmounted prometheus.Counter
	viewsActive    prometheus.Gauge

	// Effects
	framesPublished  *prometheus.CounterVec
	sectionsRevealed *prometheus.CounterVec
	submissions      *prometheus.CounterVec

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// NewManager creates a metrics manager on its own registry unless one is
// given.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "folio",
		subsystem:        "site",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.viewsMounted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "views_mounted_total",
		Help:      "Total number of page views mounted",
	})
	m.viewsUnmounted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "views_unmounted_total",
		Help:      "Total number of page views unmounted",
	})
	m.viewsActive = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "views_active",
		Help:      "Page views currently mounted",
	})

	m.framesPublished = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "frames_published_total",
		Help:      "Frames published to page views by kind",
	}, []string{"kind"})
	m.sectionsRevealed = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "sections_revealed_total",
		Help:      "Sections revealed by scrolling into view",
	}, []string{"section"})
	m.submissions = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "contact_submissions_total",
		Help:      "Contact submissions by outcome",
	}, []string{"outcome"})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by endpoint and method",
	}, []string{"endpoint", "method", "status_code"})
	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration in seconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status_code"})
}

func (m *Manager) on() bool { return m != nil && m.enabled }

// ViewMounted records a new page view.
func (m *Manager) ViewMounted() {
	if !m.on() {
		return
	}
	m.viewsMounted.Inc()
	m.viewsActive.Inc()
}

// ViewUnmounted records a page view going away.
func (m *Manager) ViewUnmounted() {
	if !m.on() {
		return
	}
	m.viewsUnmounted.Inc()
	m.viewsActive.Dec()
}

// FramePublished counts a frame of the given kind.
func (m *Manager) FramePublished(kind string) {
	if !m.on() {
		return
	}
	m.framesPublished.WithLabelValues(kind).Inc()
}

// SectionRevealed counts a section reveal.
func (m *Manager) SectionRevealed(section string) {
	if !m.on() {
		return
	}
	m.sectionsRevealed.WithLabelValues(section).Inc()
}

// Submission counts a contact submission outcome.
func (m *Manager) Submission(outcome string) {
	if !m.on() {
		return
	}
	m.submissions.WithLabelValues(outcome).Inc()
}

// ObserveHTTP records one served request.
func (m *Manager) ObserveHTTP(endpoint, method string, status int, d time.Duration) {
	if !m.on() {
		return
	}
	code := strconv.Itoa(status)
	m.httpRequests.WithLabelValues(endpoint, method, code).Inc()
	m.httpRequestDuration.WithLabelValues(endpoint, method, code).Observe(d.Seconds())
}

// Middleware records request counts and latency by route pattern.
func (m *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		m.ObserveHTTP(endpoint, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Manager) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry.
func (m *Manager) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}
