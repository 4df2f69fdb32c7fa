package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/Zachkp/folio/internal/config"
)

func loginCookie(f *fixture) *http.Cookie {
	w := f.do(http.MethodPost, "/admin/login", url.Values{"username": {"admin"}, "password": {"secret"}}, nil)
	So(w.Code, ShouldEqual, http.StatusFound)
	for _, c := range w.Result().Cookies() {
		if c.Name == adminCookie {
			return c
		}
	}
	return nil
}

func withCookie(c *http.Cookie) http.Header {
	return http.Header{"Cookie": {c.Name + "=" + c.Value}}
}

func TestAdmin(t *testing.T) {
	Convey("Given a server with admin credentials", t, func() {
		f := newFixture(t, nil)

		Convey("Wrong credentials are refused", func() {
			w := f.do(http.MethodPost, "/admin/login", url.Values{"username": {"admin"}, "password": {"nope"}}, nil)
			So(w.Code, ShouldEqual, http.StatusUnauthorized)
			So(w.Body.String(), ShouldContainSubstring, "Invalid credentials")
		})

		Convey("Protected pages redirect without a session", func() {
			w := f.do(http.MethodGet, "/admin/dashboard", nil, nil)
			So(w.Code, ShouldEqual, http.StatusFound)
			So(w.Header().Get("Location"), ShouldEqual, "/admin/login")

			w = f.do(http.MethodGet, "/admin/dashboard", nil, http.Header{"Cookie": {adminCookie + "=forged"}})
			So(w.Code, ShouldEqual, http.StatusFound)
		})

		Convey("A logged in admin sees the dashboard and its data", func() {
			cookie := loginCookie(f)
			So(cookie, ShouldNotBeNil)
			So(cookie.HttpOnly, ShouldBeTrue)

			_, err := f.store.SaveMessage(context.Background(), "Ada", "ada@example.com", "Hello there")
			So(err, ShouldBeNil)

			w := f.do(http.MethodGet, "/admin/dashboard", nil, withCookie(cookie))
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, "Hello there")

			w = f.do(http.MethodGet, "/admin/messages", nil, withCookie(cookie))
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, "ada@example.com")

			w = f.do(http.MethodGet, "/admin/api/stats", nil, withCookie(cookie))
			So(w.Code, ShouldEqual, http.StatusOK)
			var payload struct {
				Stats struct {
					TotalMessages int64 `json:"total_messages"`
				} `json:"stats"`
			}
			So(json.Unmarshal(w.Body.Bytes(), &payload), ShouldBeNil)
			So(payload.Stats.TotalMessages, ShouldEqual, 1)

			w = f.do(http.MethodGet, "/admin/export/stats", nil, withCookie(cookie))
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Header().Get("Content-Disposition"), ShouldContainSubstring, "admin-stats.json")

			w = f.do(http.MethodPost, "/admin/privacy/prune", nil, withCookie(cookie))
			So(w.Code, ShouldEqual, http.StatusSeeOther)

			w = f.do(http.MethodGet, "/admin/logout", nil, withCookie(cookie))
			So(w.Code, ShouldEqual, http.StatusFound)
		})
	})

	Convey("Given a server without an admin password", t, func() {
		f := newFixture(t, func(cfg *config.Config) { cfg.AdminPassword = "" })

		Convey("Login is disabled", func() {
			w := f.do(http.MethodPost, "/admin/login", url.Values{"username": {"admin"}, "password": {""}}, nil)
			So(w.Code, ShouldEqual, http.StatusForbidden)
		})
	})
}

func TestVisitorTracking(t *testing.T) {
	Convey("Given a server", t, func() {
		f := newFixture(t, nil)
		ctx := context.Background()

		Convey("Page loads are recorded hashed", func() {
			f.do(http.MethodGet, "/", nil, http.Header{"User-Agent": {"probe"}})
			f.srv.tracking.Wait()

			stats, err := f.store.Stats(ctx)
			So(err, ShouldBeNil)
			So(stats.TotalVisitors, ShouldEqual, 1)
			So(stats.RecentVisitors[0].UserAgent, ShouldEqual, "probe")
			So(stats.RecentVisitors[0].HashedIP, ShouldHaveLength, 16)
			So(stats.RecentVisitors[0].HashedIP, ShouldEqual, f.srv.admin.hashIP("192.0.2.1"))
		})

		Convey("Do Not Track and untracked paths are skipped", func() {
			f.do(http.MethodGet, "/", nil, http.Header{"Dnt": {"1"}})
			f.do(http.MethodGet, "/privacy", nil, nil)
			f.do(http.MethodGet, "/healthz", nil, nil)
			f.srv.tracking.Wait()

			stats, err := f.store.Stats(ctx)
			So(err, ShouldBeNil)
			So(stats.TotalVisitors, ShouldEqual, 0)
		})
	})
}

func TestAmbientRoutes(t *testing.T) {
	Convey("Given a server", t, func() {
		f := newFixture(t, nil)

		Convey("Health reports the mounted views", func() {
			f.mount()
			w := f.do(http.MethodGet, "/healthz", nil, nil)
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, `"views":1`)
		})

		Convey("Metrics are exported", func() {
			f.mount()
			w := f.do(http.MethodGet, "/metrics", nil, nil)
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, "folio_site_views_mounted_total 1")
		})

		Convey("Embedded assets come first, then the static directory", func() {
			w := f.do(http.MethodGet, "/static/folio.js", nil, nil)
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, "EventSource")

			So(os.WriteFile(filepath.Join(f.cfg.StaticDir, "resume.pdf"), []byte("%PDF"), 0o600), ShouldBeNil)
			w = f.do(http.MethodGet, "/static/resume.pdf", nil, nil)
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldEqual, "%PDF")

			So(f.do(http.MethodGet, "/static/missing.txt", nil, nil).Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("Pages carry hardening headers and unknown paths 404", func() {
			w := f.do(http.MethodGet, "/privacy", nil, nil)
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Header().Get("X-Content-Type-Options"), ShouldEqual, "nosniff")
			So(w.Body.String(), ShouldContainSubstring, "deleted after 365 days")

			So(f.do(http.MethodGet, "/nowhere", nil, nil).Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestIPLimiter(t *testing.T) {
	Convey("Given a limiter of one per minute with a burst of two", t, func() {
		now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		l := newIPLimiter(1, 2)
		l.now = func() time.Time { return now }

		Convey("Each client gets its own bucket", func() {
			So(l.allow("a"), ShouldBeTrue)
			So(l.allow("a"), ShouldBeTrue)
			So(l.allow("a"), ShouldBeFalse)
			So(l.allow("b"), ShouldBeTrue)

			now = now.Add(time.Minute)
			So(l.allow("a"), ShouldBeTrue)
		})

		Convey("Idle clients are forgotten", func() {
			l.allow("a")
			now = now.Add(time.Hour)
			l.allow("b")
			So(l.prune(10*time.Minute), ShouldEqual, 1)
			So(l.clients, ShouldContainKey, "b")
			So(l.clients, ShouldNotContainKey, "a")
		})
	})
}
