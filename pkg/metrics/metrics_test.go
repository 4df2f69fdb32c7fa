package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManager(t *testing.T) {
	Convey("Given a metrics manager on its own registry", t, func() {
		registry := prometheus.NewRegistry()
		m := NewManager(WithPrometheusRegistry(registry), WithNamespace("test"))

		Convey("When views mount and unmount", func() {
			m.ViewMounted()
			m.ViewMounted()
			m.ViewUnmounted()

			Convey("Then the gauge tracks the live views", func() {
				So(testutil.ToFloat64(m.viewsMounted), ShouldEqual, 2)
				So(testutil.ToFloat64(m.viewsUnmounted), ShouldEqual, 1)
				So(testutil.ToFloat64(m.viewsActive), ShouldEqual, 1)
			})
		})

		Convey("When effects report", func() {
			m.FramePublished("text")
			m.FramePublished("text")
			m.SectionRevealed("about")
			m.Submission("success")

			Convey("Then the labelled counters move", func() {
				So(testutil.ToFloat64(m.framesPublished.WithLabelValues("text")), ShouldEqual, 2)
				So(testutil.ToFloat64(m.sectionsRevealed.WithLabelValues("about")), ShouldEqual, 1)
				So(testutil.ToFloat64(m.submissions.WithLabelValues("success")), ShouldEqual, 1)
			})
		})

		Convey("When metrics are disabled", func() {
			off := NewManager(WithPrometheusRegistry(prometheus.NewRegistry()), WithMetricsEnabled(false))
			off.ViewMounted()
			So(testutil.ToFloat64(off.viewsMounted), ShouldEqual, 0)
		})
	})

	Convey("A nil manager records nothing", t, func() {
		var m *Manager
		So(func() {
			m.ViewMounted()
			m.ViewUnmounted()
			m.FramePublished("html")
			m.SectionRevealed("skills")
			m.Submission("error")
			m.ObserveHTTP("/", http.MethodGet, 200, time.Millisecond)
		}, ShouldNotPanic)
		So(m.Registry(), ShouldBeNil)
	})
}

func TestMiddlewareAndHandler(t *testing.T) {
	Convey("Given a router instrumented by the manager", t, func() {
		gin.SetMode(gin.TestMode)
		m := NewManager()

		r := gin.New()
		r.Use(m.Middleware())
		r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
		r.GET("/metrics", gin.WrapH(m.Handler()))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		So(w.Code, ShouldEqual, http.StatusOK)

		Convey("Then the request is counted by route", func() {
			c := m.httpRequests.WithLabelValues("/healthz", http.MethodGet, "200")
			So(testutil.ToFloat64(c), ShouldEqual, 1)
		})

		Convey("Then /metrics exposes it", func() {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, "folio_site_http_requests_total")
		})
	})
}
